package cmd

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/aklbites/jamwhopper/internal/export"
	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the order ledger to a parquet file",
	Long: `Exports every order in the ledger as parquet, either to a local file or,
when cloud storage is configured, to the same object path in the bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		ctx := context.Background()
		repo, cleanup, err := buildRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		all, err := repo.GetAll(ctx)
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(cfg)
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" {
			path = filepath.Join(cfg.ExportPath, fmt.Sprintf("orders_%s.parquet", time.Now().Format("20060102T150405")))
		}
		if err := exporter.Export(all, path); err != nil {
			return err
		}

		log.Printf("Exported %d orders to %s", len(all), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Destination path for the parquet file")
	rootCmd.AddCommand(exportCmd)
}
