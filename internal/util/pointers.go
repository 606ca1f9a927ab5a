package util

import (
	"time"

	"portfolioledger/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

func StringPointer(s string) *string {
	return &s
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

func Int32Pointer(i int32) *int32 {
	return &i
}

func TradeStatusPointer(s model.TradeStatus) *model.TradeStatus {
	return &s
}

func DecimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
