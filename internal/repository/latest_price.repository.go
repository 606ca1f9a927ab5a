package repository

import (
	"context"

	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
)

//go:generate mockgen -source=latest_price.repository.go -destination=mocks/mock_latest_price.repository.go

// LatestPriceRepository is a market data feed that can quote the latest
// price for held assets. Results are keyed by the requested asset, so a
// symbol listed on two markets gets one quote per market.
type LatestPriceRepository interface {
	Name() string
	Supports(market model.Market) bool
	GetLatestPrices(ctx context.Context, assets []domain.HeldAsset) (map[domain.HeldAsset]domain.AssetPrice, error)
}
