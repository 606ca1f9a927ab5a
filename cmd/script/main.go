package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"portfolioledger/api"
	"portfolioledger/cmd"
	"portfolioledger/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

func newRootCmd(handler *api.ApiHandler) *cobra.Command {
	root := &cobra.Command{
		Use:           "ledger",
		Short:         "maintenance tasks for the portfolio ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newImportTradesCmd(handler), newRefreshPricesCmd(handler))
	return root
}

func newImportTradesCmd(handler *api.ApiHandler) *cobra.Command {
	var userID int64
	var file string

	c := &cobra.Command{
		Use:   "import-trades",
		Short: "import a trade CSV export into a user's ledger",
		RunE: func(c *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			trades, err := handler.TradeService.ImportTrades(c.Context(), userID, data)
			if err != nil {
				return err
			}
			logger.FromContext(c.Context()).Infof("imported %d trades for user %d", len(trades), userID)
			return nil
		},
	}
	c.Flags().Int64Var(&userID, "user", 0, "owner of the imported trades")
	c.Flags().StringVar(&file, "file", "", "path to the csv file")
	_ = c.MarkFlagRequired("user")
	_ = c.MarkFlagRequired("file")
	return c
}

func newRefreshPricesCmd(handler *api.ApiHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-prices",
		Short: "pull latest quotes and revalue every active holding",
		RunE: func(c *cobra.Command, _ []string) error {
			if handler.PriceRefreshService == nil {
				return fmt.Errorf("price refresh is not configured")
			}
			result, err := handler.PriceRefreshService.RefreshPrices(c.Context())
			if err != nil {
				return err
			}
			log := logger.FromContext(c.Context())
			log.Infof("priced %d of %d assets, updated %d holdings", result.AssetsPriced, result.AssetsRequested, result.HoldingsUpdated)
			if len(result.UnpricedSymbols) > 0 {
				log.Warnf("no quote for %v", result.UnpricedSymbols)
			}
			if len(result.FailedHoldingIDs) > 0 {
				log.Warnf("failed to update holdings %v", result.FailedHoldingIDs)
			}
			return nil
		},
	}
}

func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	ctx := logger.WithContext(context.Background(), zap.S().With("entrypoint", "script"))
	if err := newRootCmd(handler).ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
