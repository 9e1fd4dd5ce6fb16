package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/aklbites/jamwhopper/internal/cli"
	"github.com/aklbites/jamwhopper/internal/maps"
	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/aklbites/jamwhopper/internal/orders"
	"github.com/aklbites/jamwhopper/internal/output"
	"github.com/aklbites/jamwhopper/internal/store"
	pgstore "github.com/aklbites/jamwhopper/internal/store/postgres"
	"github.com/aklbites/jamwhopper/internal/traffic"
	"github.com/aklbites/jamwhopper/internal/whopper"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "jamwhopper",
	Short: "Simulates the Traffic Jam Whopper promotional ordering feature",
	Long: `jamwhopper is a CLI tool that simulates the Traffic Jam Whopper promotion:
it detects congestion on Auckland arterial routes through a mock directions
provider and takes food orders for locations that are currently jammed.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()

		repo, cleanup, err := buildRepository(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening order store: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()

		orderService, err := orders.NewService(ctx, repo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing order service: %v\n", err)
			os.Exit(1)
		}

		client := maps.NewMockClient(cfg.Seed)
		detector := traffic.NewDetector(client, cfg.Center(), cfg.SearchRadius, cfg.SpeedThresholdKm)
		detector.ShowProgress = true

		sink := output.Determine(cfg)
		defer sink.Close()

		menu := cli.NewMenu(whopper.New(detector, orderService, sink), os.Stdin, os.Stdout)
		if err := menu.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// buildRepository opens the configured order store: Postgres when enabled,
// the flat-file ledger otherwise.
func buildRepository(ctx context.Context, cfg *models.Config) (store.OrderRepository, func(), error) {
	if cfg.PostgresEnabled {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		repo := pgstore.NewRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to ensure orders schema: %w", err)
		}
		return repo, pool.Close, nil
	}

	repo, err := store.NewFileRepository(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() {}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 0, "Random seed for trip simulation (0 uses the clock)")
	rootCmd.Flags().Float64("center-lat", -36.8485, "Latitude of the detection center")
	rootCmd.Flags().Float64("center-lon", 174.7633, "Longitude of the detection center")
	rootCmd.Flags().Int("radius", 5000, "Detection radius in meters")
	rootCmd.Flags().Float64("speed-threshold", 10.0, "Average speed (km/h) below which a route counts as jammed")
	rootCmd.Flags().String("data-dir", "data", "Directory holding the order ledger")
	rootCmd.Flags().Bool("kafka-enabled", false, "Publish promo events to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-path", "", "Write promo events to partitioned JSON files under this path")
	rootCmd.Flags().Bool("postgres-enabled", false, "Store orders in Postgres instead of the JSON ledger")
	rootCmd.Flags().String("database-url", "", "Postgres connection string")

	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("center_latitude", rootCmd.Flags().Lookup("center-lat"))
	viper.BindPFlag("center_longitude", rootCmd.Flags().Lookup("center-lon"))
	viper.BindPFlag("search_radius", rootCmd.Flags().Lookup("radius"))
	viper.BindPFlag("speed_threshold_kmh", rootCmd.Flags().Lookup("speed-threshold"))
	viper.BindPFlag("data_dir", rootCmd.Flags().Lookup("data-dir"))
	viper.BindPFlag("kafka_enabled", rootCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
	viper.BindPFlag("output_path", rootCmd.Flags().Lookup("output-path"))
	viper.BindPFlag("postgres_enabled", rootCmd.Flags().Lookup("postgres-enabled"))
	viper.BindPFlag("database_url", rootCmd.Flags().Lookup("database-url"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
