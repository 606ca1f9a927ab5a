package calculator

import (
	"fmt"
	"strings"
	"time"

	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/util"

	"github.com/shopspring/decimal"
)

type AccreteInput struct {
	UserID      int64
	Market      model.Market
	Symbol      string
	CompanyName *string
	Currency    *string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
}

// Accrete merges a purchase into a holding. A nil existing holding starts a
// new one bought on asOf; otherwise the average cost becomes the
// quantity-weighted mean of the old position and the purchase.
func Accrete(existing *model.UserHolding, in AccreteInput, asOf time.Time) (model.UserHolding, error) {
	if !in.Quantity.IsPositive() {
		return model.UserHolding{}, fmt.Errorf("%w: quantity must be positive, got %s", domain.ErrValidation, in.Quantity.String())
	}
	if !in.Price.IsPositive() {
		return model.UserHolding{}, fmt.Errorf("%w: price must be positive, got %s", domain.ErrValidation, in.Price.String())
	}

	if existing == nil {
		if in.Market == "" || strings.TrimSpace(in.Symbol) == "" {
			return model.UserHolding{}, fmt.Errorf("%w: market and symbol are required", domain.ErrValidation)
		}
		currency := in.Currency
		if currency == nil {
			currency = util.StringPointer(domain.DefaultCurrency(in.Market))
		}
		h := model.UserHolding{
			UserID:          in.UserID,
			Market:          in.Market,
			Symbol:          NormalizeSymbol(in.Symbol),
			CompanyName:     in.CompanyName,
			Currency:        currency,
			Quantity:        in.Quantity,
			AverageBuyPrice: in.Price,
			BoughtOn:        util.TimePointer(util.DateOnly(asOf)),
		}
		return DeriveHoldingFields(h), nil
	}

	h := *existing
	h.AverageBuyPrice, h.Quantity = weightedAverage(h.Quantity, h.AverageBuyPrice, in.Quantity, in.Price)
	return DeriveHoldingFields(h), nil
}

func weightedAverage(oldQuantity, oldAverage, quantity, price decimal.Decimal) (average, total decimal.Decimal) {
	total = oldQuantity.Add(quantity)
	value := oldQuantity.Mul(oldAverage).Add(quantity.Mul(price))
	return value.DivRound(total, moneyPlaces), total
}

// Reduce removes quantity from the holding. The average cost is left as is.
func Reduce(h model.UserHolding, quantity decimal.Decimal) (model.UserHolding, error) {
	if !quantity.IsPositive() {
		return model.UserHolding{}, fmt.Errorf("%w: quantity must be positive, got %s", domain.ErrValidation, quantity.String())
	}
	if quantity.GreaterThan(h.Quantity) {
		return model.UserHolding{}, fmt.Errorf(
			"%w: cannot sell more than held quantity. Held: %s",
			domain.ErrInvalidOperation,
			h.Quantity.String(),
		)
	}

	h.Quantity = h.Quantity.Sub(quantity)
	return DeriveHoldingFields(h), nil
}

func UpdateCurrentPrice(h model.UserHolding, price decimal.Decimal) model.UserHolding {
	h.CurrentPrice = util.DecimalPointer(price)
	return DeriveHoldingFields(h)
}

func DeriveHoldingFields(h model.UserHolding) model.UserHolding {
	invested := roundMoney(h.Quantity.Mul(h.AverageBuyPrice))
	h.InvestedAmount = util.DecimalPointer(invested)

	if h.CurrentPrice != nil {
		currentValue := roundMoney(h.Quantity.Mul(*h.CurrentPrice))
		h.CurrentValue = util.DecimalPointer(currentValue)

		if invested.IsPositive() {
			pl := roundMoney(currentValue.Sub(invested))
			h.UnrealizedPl = util.DecimalPointer(pl)
			h.UnrealizedPlPercentage = util.DecimalPointer(percentOf(pl, invested))
		}
	}

	return h
}

// SummarizeHoldings totals the active holdings of a user. Holdings with no
// quantity left are skipped. Totals are zero, not absent, when nothing is
// held.
func SummarizeHoldings(userID int64, holdings []model.UserHolding) domain.HoldingSummary {
	out := domain.HoldingSummary{
		UserID:                      userID,
		TotalInvestedAmount:         decimal.Zero,
		TotalCurrentValue:           decimal.Zero,
		TotalUnrealizedPl:           decimal.Zero,
		TotalUnrealizedPlPercentage: decimal.Zero,
		Holdings:                    []model.UserHolding{},
	}

	for _, h := range holdings {
		if !h.Quantity.IsPositive() {
			continue
		}
		out.TotalInvestedAmount = out.TotalInvestedAmount.Add(decimalOrZero(h.InvestedAmount))
		out.TotalCurrentValue = out.TotalCurrentValue.Add(decimalOrZero(h.CurrentValue))
		out.TotalUnrealizedPl = out.TotalUnrealizedPl.Add(decimalOrZero(h.UnrealizedPl))
		out.Holdings = append(out.Holdings, h)
	}
	out.TotalHoldings = len(out.Holdings)

	if out.TotalInvestedAmount.IsPositive() {
		out.TotalUnrealizedPlPercentage = percentOf(out.TotalUnrealizedPl, out.TotalInvestedAmount)
	}

	return out
}
