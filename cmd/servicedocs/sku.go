package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/service-docs/internal/catalog"
	"github.com/ukydev/service-docs/internal/config"
	"github.com/ukydev/service-docs/internal/generator"
	"github.com/ukydev/service-docs/internal/models"
	"github.com/ukydev/service-docs/internal/report"
)

// maxListedSKUs limits the SKU listing to a readable length.
const maxListedSKUs = 20

func newSKUCmd(cfg config.Config, connect connectFunc) *cobra.Command {
	var flags commonFlags
	var list bool
	cmd := &cobra.Command{
		Use:   "sku [SKU]",
		Short: "Generate service report PDFs that use one specific part",
		Long: `Generates documents whose parts list is a single catalog part, looked up by SKU prefix.

Example: servicedocs sku SKU-TC-001834 --count 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				log.SetLevel(log.DebugLevel)
			}

			cat, err := loadCatalog(flags.catalog)
			if err != nil {
				return err
			}

			if list {
				listSKUs(cmd, cat)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("SKU argument required, use --list to see available SKUs")
			}
			sku := args[0]

			match, err := catalog.FindPartBySKU(cat, sku)
			if err != nil {
				return fmt.Errorf("%w (use --list to see available SKUs)", err)
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

			log.WithFields(log.Fields{
				"part":     match.Part,
				"category": match.Category.Name,
				"models":   strings.Join(match.Category.Models, ", "),
				"count":    flags.count,
			}).Info("Generating documents for part")

			prefix := "sku_" + strings.ReplaceAll(sku, "-", "_")
			sum, err := runBatch(cmd.Context(), report.NewRenderer(flags.output), exporter, batch{
				count: flags.count,
				name:  func(i int) string { return fmt.Sprintf("%s_%04d.pdf", prefix, i+1) },
				next:  func() (models.ServiceRecord, error) { return gen.GenerateForPart(match) },
			}, flags.verbose)
			if err != nil {
				return err
			}

			printSummary(cmd, sum, flags.output)
			return nil
		},
	}
	flags.register(cmd, cfg, 5)
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List available SKUs")
	return cmd
}

func listSKUs(cmd *cobra.Command, cat *models.Catalog) {
	out := cmd.OutOrStdout()
	skus := catalog.ListSKUs(cat)
	if len(skus) == 0 {
		fmt.Fprintln(out, "No SKUs found. Parts may not have SKU prefixes yet.")
		return
	}

	fmt.Fprintf(out, "Available SKUs (%d total):\n\n", len(skus))
	for i, entry := range skus {
		if i == maxListedSKUs {
			break
		}
		fmt.Fprintf(out, "  %-16s [%s] %s\n", entry.SKU, entry.Category, excerpt(models.PartName(entry.Part), 50))
	}
	if len(skus) > maxListedSKUs {
		fmt.Fprintf(out, "\n  ... and %d more\n", len(skus)-maxListedSKUs)
	}
}
