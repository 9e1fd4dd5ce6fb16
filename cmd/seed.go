package cmd

import (
	"context"
	"log"

	"github.com/aklbites/jamwhopper/internal/factories"
	"github.com/aklbites/jamwhopper/internal/maps"
	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/aklbites/jamwhopper/internal/orders"
	"github.com/spf13/cobra"
)

var seedCount int

// seedCmd populates the ledger with demo orders, bypassing the congestion
// gate. Useful for demoing the list/cancel flows on a fresh install.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seeds the order ledger with demo orders",
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

		orderService, err := orders.NewService(ctx, repo)
		if err != nil {
			return err
		}

		client := maps.NewMockClient(cfg.Seed)
		routes, err := client.PlacesNearby(ctx, cfg.Center(), cfg.SearchRadius)
		if err != nil {
			return err
		}

		factory := &factories.OrderFactory{}
		for i := 0; i < seedCount; i++ {
			if _, err := orderService.CreateOrder(ctx, factory.DemoCustomerName(), factory.DemoLocation(routes)); err != nil {
				return err
			}
		}

		log.Printf("Seeded %d demo orders", seedCount)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 5, "Number of demo orders to create")
	rootCmd.AddCommand(seedCmd)
}
