package domain

import (
	"time"

	"portfolioledger/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

// HeldAsset identifies a (symbol, market) pair with at least one active
// holding.
type HeldAsset struct {
	Symbol string
	Market model.Market
}
