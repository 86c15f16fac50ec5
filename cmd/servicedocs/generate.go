package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/service-docs/internal/config"
	"github.com/ukydev/service-docs/internal/generator"
	"github.com/ukydev/service-docs/internal/models"
	"github.com/ukydev/service-docs/internal/report"
)

func newGenerateCmd(cfg config.Config, connect connectFunc) *cobra.Command {
	var flags commonFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random service report PDFs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				log.SetLevel(log.DebugLevel)
			}

			cat, err := loadCatalog(flags.catalog)
			if err != nil {
				return err
			}

			var opts []generator.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, generator.WithSeed(flags.seed))
			}
			gen, err := generator.New(cat, opts...)
			if err != nil {
				return err
			}

			exporter, closeExporter, err := openExporter(cmd.Context(), flags.export, cfg.Mongo, connect)
			if err != nil {
				return err
			}
			defer closeExporter()

			fields := log.Fields{"count": flags.count, "output": flags.output}
			if cmd.Flags().Changed("seed") {
				fields["seed"] = flags.seed
			}
			log.WithFields(fields).Info("Generating service documents")

			sum, err := runBatch(cmd.Context(), report.NewRenderer(flags.output), exporter, batch{
				count: flags.count,
				name:  func(i int) string { return fmt.Sprintf("service_doc_%04d.pdf", i+1) },
				next:  func() (models.ServiceRecord, error) { return gen.Generate(), nil },
			}, flags.verbose)
			if err != nil {
				return err
			}

			printSummary(cmd, sum, flags.output)
			return nil
		},
	}
	flags.register(cmd, cfg, 10)
	return cmd
}
