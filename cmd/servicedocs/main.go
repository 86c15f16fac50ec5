// Command servicedocs generates synthetic commercial kitchen service report PDFs.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/service-docs/internal/config"
	"github.com/ukydev/service-docs/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log.SetLevel(cfg.LogLevel)

	root := newRootCmd(cfg, connectExporter)
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// connectFunc opens the ground-truth export collection and returns a closer.
type connectFunc func(ctx context.Context, cfg config.MongoConfig) (db.GroundTruthCollection, func(), error)

func newRootCmd(cfg config.Config, connect connectFunc) *cobra.Command {
	root := &cobra.Command{
		Use:          "servicedocs",
		Short:        "Generate synthetic service report PDFs",
		Long:         `Generates realistic commercial kitchen equipment service reports for test and demo data.`,
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(cfg, connect))
	root.AddCommand(newSKUCmd(cfg, connect))
	return root
}

func connectExporter(ctx context.Context, cfg config.MongoConfig) (db.GroundTruthCollection, func(), error) {
	client, err := db.ConnectMongo(ctx, cfg.URI)
	if err != nil {
		return nil, nil, err
	}
	coll := &db.MongoCollection{Collection: client.Database(cfg.Database).Collection(cfg.Collection)}
	closer := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}
	return coll, closer, nil
}
