package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/service-docs/internal/catalog"
	"github.com/ukydev/service-docs/internal/config"
	"github.com/ukydev/service-docs/internal/db"
	"github.com/ukydev/service-docs/internal/models"
	"github.com/ukydev/service-docs/internal/report"
)

// commonFlags are shared by every generating subcommand.
type commonFlags struct {
	count   int
	output  string
	seed    uint64
	verbose bool
	export  bool
	catalog string
}

func (f *commonFlags) register(cmd *cobra.Command, cfg config.Config, defaultCount int) {
	cmd.Flags().IntVarP(&f.count, "count", "n", defaultCount, "Number of documents to generate")
	cmd.Flags().StringVarP(&f.output, "output", "o", cfg.OutputDir, "Output directory")
	cmd.Flags().Uint64VarP(&f.seed, "seed", "s", 0, "Random seed for reproducibility")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVar(&f.export, "export", cfg.Export, "Export each record to MongoDB as ground truth")
	cmd.Flags().StringVar(&f.catalog, "catalog", cfg.CatalogPath, "Catalog YAML file (default: built-in catalog)")
}

func loadCatalog(path string) (*models.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// batch describes a run of documents produced by one record source.
type batch struct {
	count int
	name  func(i int) string
	next  func() (models.ServiceRecord, error)
}

// summary reports what a batch produced.
type summary struct {
	Documents int
	Bytes     uint64
	Paths     []string
}

// runBatch renders every record of b into the renderer's directory, exporting
// each one when an exporter is set. The output directory is created first.
func runBatch(ctx context.Context, renderer *report.Renderer, exporter db.GroundTruthCollection, b batch, verbose bool) (summary, error) {
	var sum summary
	if b.count < 0 {
		return sum, fmt.Errorf("count must not be negative, got %d", b.count)
	}
	if err := os.MkdirAll(renderer.OutputDir(), 0o755); err != nil {
		return sum, fmt.Errorf("create output directory: %w", err)
	}

	for i := 0; i < b.count; i++ {
		rec, err := b.next()
		if err != nil {
			return sum, err
		}

		filename := b.name(i)
		path, err := renderer.GeneratePDF(rec, filename)
		if err != nil {
			return sum, fmt.Errorf("render %s: %w", filename, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return sum, fmt.Errorf("stat %s: %w", path, err)
		}

		if exporter != nil {
			gt := models.NewGroundTruth(uuid.NewString(), filename, path, info.Size(), rec)
			if err := exporter.InsertGroundTruth(ctx, gt); err != nil {
				return sum, fmt.Errorf("export %s: %w", filename, err)
			}
		}

		sum.Documents++
		sum.Bytes += uint64(info.Size())
		sum.Paths = append(sum.Paths, path)
		logDocument(i, b.count, filename, rec, verbose)
	}
	return sum, nil
}

func logDocument(i, count int, filename string, rec models.ServiceRecord, verbose bool) {
	entry := log.WithFields(log.Fields{
		"progress": fmt.Sprintf("%d/%d", i+1, count),
		"file":     filename,
	})
	if verbose {
		entry = entry.WithFields(log.Fields{
			"client":  rec.ClientName,
			"machine": fmt.Sprintf("%s (%s)", rec.MachineModel, rec.MachineType),
			"problem": excerpt(rec.ProblemDescription, 50),
		})
	}
	entry.Info("Generated document")
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// openExporter connects to the export collection when exporting is enabled.
func openExporter(ctx context.Context, enabled bool, cfg config.MongoConfig, connect connectFunc) (db.GroundTruthCollection, func(), error) {
	if !enabled {
		return nil, func() {}, nil
	}
	exporter, closer, err := connect(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect ground truth export: %w", err)
	}
	log.WithFields(log.Fields{
		"database":   cfg.Database,
		"collection": cfg.Collection,
	}).Info("Exporting ground truth records")
	return exporter, closer, nil
}

func printSummary(cmd *cobra.Command, sum summary, output string) {
	fmt.Fprintf(cmd.OutOrStdout(), "Done! %d documents saved to '%s/'\n", sum.Documents, output)
	fmt.Fprintf(cmd.OutOrStdout(), "Total size: %s\n", humanize.Bytes(sum.Bytes))
}
