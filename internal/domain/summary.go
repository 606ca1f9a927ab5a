package domain

import (
	"portfolioledger/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// TradeSummary is the realized side of a user's book.
type TradeSummary struct {
	UserID                   int64
	TotalProfitLoss          decimal.Decimal
	TotalInvestedAmount      decimal.Decimal
	OpenTradesCount          int
	PartiallySoldTradesCount int
	ClosedTradesCount        int
	AverageHoldingDays       float64
	MedianHoldingDays        float64
}

// HoldingSummary is the unrealized side of a user's book.
type HoldingSummary struct {
	UserID                      int64
	TotalInvestedAmount         decimal.Decimal
	TotalCurrentValue           decimal.Decimal
	TotalUnrealizedPl           decimal.Decimal
	TotalUnrealizedPlPercentage decimal.Decimal
	TotalHoldings               int
	Holdings                    []model.UserHolding
}
