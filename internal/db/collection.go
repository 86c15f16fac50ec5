package db

import (
	"context"

	"github.com/ukydev/service-docs/internal/models"
)

// GroundTruthCollection defines the operations used to export generated records.
type GroundTruthCollection interface {
	InsertGroundTruth(ctx context.Context, gt models.GroundTruth) error
	FindGroundTruth(ctx context.Context, documentID string) (*models.GroundTruth, error)
	DeleteAll(ctx context.Context) error
}
