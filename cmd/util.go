package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"portfolioledger/api"
	"portfolioledger/internal/repository"
	"portfolioledger/internal/service"
	"portfolioledger/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// priceFeeds returns the quote sources in the order they are tried.
// Yahoo covers every market, so it always closes the chain.
func priceFeeds(secrets util.Secrets) ([]repository.LatestPriceRepository, error) {
	switch strings.ToLower(secrets.PriceProvider) {
	case "none":
		return nil, nil
	case "yahoo":
		return []repository.LatestPriceRepository{repository.NewYahooRepository()}, nil
	case "alpaca":
		feeds := []repository.LatestPriceRepository{}
		if secrets.Alpaca.ApiKey != "" {
			feeds = append(feeds, repository.NewAlpacaRepository(
				secrets.Alpaca.ApiKey,
				secrets.Alpaca.ApiSecret,
				secrets.Alpaca.Endpoint,
			))
		}
		return append(feeds, repository.NewYahooRepository()), nil
	}
	return nil, fmt.Errorf("unknown price provider %q", secrets.PriceProvider)
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	feeds, err := priceFeeds(*secrets)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	tradeRepository := repository.NewTradeRepository(dbConn)
	userHoldingRepository := repository.NewUserHoldingRepository(dbConn)

	tradeService := service.NewTradeService(dbConn, tradeRepository)
	holdingService := service.NewHoldingService(dbConn, userHoldingRepository)

	apiHandler := &api.ApiHandler{
		Db:             dbConn,
		TradeService:   tradeService,
		HoldingService: holdingService,
	}
	if len(feeds) > 0 {
		apiHandler.PriceRefreshService = service.NewPriceRefreshService(
			userHoldingRepository,
			holdingService,
			feeds...,
		)
	}

	return apiHandler, nil
}
