package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ukydev/service-docs/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no exported record matches a lookup.
var ErrNotFound = errors.New("ground truth not found")

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// MongoCollection wraps a MongoDB collection of exported service records.
type MongoCollection struct {
	Collection *mongo.Collection
}

// InsertGroundTruth stores the record behind one rendered document.
func (c *MongoCollection) InsertGroundTruth(ctx context.Context, gt models.GroundTruth) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	if gt.CreatedAt.IsZero() {
		gt.CreatedAt = time.Now()
	}
	_, err := c.Collection.InsertOne(ctx, gt)
	return err
}

// FindGroundTruth finds the exported record for a document id.
func (c *MongoCollection) FindGroundTruth(ctx context.Context, documentID string) (*models.GroundTruth, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}

	var gt models.GroundTruth
	err := c.Collection.FindOne(ctx, bson.M{"document_id": documentID}).Decode(&gt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	gt.Record.LaborHours = models.LaborHoursFor(gt.Record.DurationMinutes)
	return &gt, nil
}

// DeleteAll deletes every exported record from the collection.
func (c *MongoCollection) DeleteAll(ctx context.Context) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}
