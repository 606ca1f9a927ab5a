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

const notesSeparator = " | "

type NewTradeInput struct {
	Market       model.Market
	Symbol       string
	CompanyName  *string
	Currency     *string
	BuyDate      time.Time
	BuyPrice     decimal.Decimal
	BuyQuantity  decimal.Decimal
	SellDate     *time.Time
	SellPrice    *decimal.Decimal
	SellQuantity *decimal.Decimal
	Status       *model.TradeStatus
	Notes        *string
}

// TradePatch holds a partial update. Nil fields are left untouched.
type TradePatch struct {
	Market       *model.Market
	Symbol       *string
	CompanyName  *string
	Currency     *string
	BuyDate      *time.Time
	BuyPrice     *decimal.Decimal
	BuyQuantity  *decimal.Decimal
	SellDate     *time.Time
	SellPrice    *decimal.Decimal
	SellQuantity *decimal.Decimal
	Status       *model.TradeStatus
	Notes        *string
}

type SellInput struct {
	SellDate     time.Time
	SellPrice    decimal.Decimal
	SellQuantity decimal.Decimal
	Notes        *string
}

func validateNewTrade(in NewTradeInput) error {
	if in.Market == "" {
		return fmt.Errorf("%w: market is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Symbol) == "" {
		return fmt.Errorf("%w: symbol is required", domain.ErrValidation)
	}
	if in.BuyDate.IsZero() {
		return fmt.Errorf("%w: buy date is required", domain.ErrValidation)
	}
	if !in.BuyPrice.IsPositive() {
		return fmt.Errorf("%w: buy price must be positive, got %s", domain.ErrValidation, in.BuyPrice.String())
	}
	if !in.BuyQuantity.IsPositive() {
		return fmt.Errorf("%w: buy quantity must be positive, got %s", domain.ErrValidation, in.BuyQuantity.String())
	}
	return validateOptionalSell(in.SellPrice, in.SellQuantity)
}

func validateOptionalSell(price, quantity *decimal.Decimal) error {
	if price != nil && !price.IsPositive() {
		return fmt.Errorf("%w: sell price must be positive, got %s", domain.ErrValidation, price.String())
	}
	if quantity != nil && !quantity.IsPositive() {
		return fmt.Errorf("%w: sell quantity must be positive, got %s", domain.ErrValidation, quantity.String())
	}
	return nil
}

// NewTrade builds an unsaved trade for userID. The status defaults to OPEN
// but a caller-supplied status is kept as given.
func NewTrade(userID int64, in NewTradeInput, asOf time.Time) (model.Trade, error) {
	if err := validateNewTrade(in); err != nil {
		return model.Trade{}, err
	}

	currency := in.Currency
	if currency == nil {
		currency = util.StringPointer(domain.DefaultCurrency(in.Market))
	}
	status := model.TradeStatus_Open
	if in.Status != nil {
		status = *in.Status
	}

	t := model.Trade{
		UserID:       userID,
		Market:       in.Market,
		Symbol:       NormalizeSymbol(in.Symbol),
		CompanyName:  in.CompanyName,
		Currency:     currency,
		BuyDate:      util.DateOnly(in.BuyDate),
		BuyPrice:     in.BuyPrice,
		BuyQuantity:  in.BuyQuantity,
		SellDate:     in.SellDate,
		SellPrice:    in.SellPrice,
		SellQuantity: in.SellQuantity,
		Status:       status,
		Notes:        in.Notes,
	}

	return DeriveTradeFields(t, asOf), nil
}

// ApplyTradePatch overlays the non-nil fields of p on t and re-derives the
// computed fields. The remaining quantity is never patched directly.
func ApplyTradePatch(t model.Trade, p TradePatch, asOf time.Time) (model.Trade, error) {
	if p.Symbol != nil && strings.TrimSpace(*p.Symbol) == "" {
		return model.Trade{}, fmt.Errorf("%w: symbol must not be blank", domain.ErrValidation)
	}
	if p.BuyPrice != nil && !p.BuyPrice.IsPositive() {
		return model.Trade{}, fmt.Errorf("%w: buy price must be positive, got %s", domain.ErrValidation, p.BuyPrice.String())
	}
	if p.BuyQuantity != nil && !p.BuyQuantity.IsPositive() {
		return model.Trade{}, fmt.Errorf("%w: buy quantity must be positive, got %s", domain.ErrValidation, p.BuyQuantity.String())
	}
	if err := validateOptionalSell(p.SellPrice, p.SellQuantity); err != nil {
		return model.Trade{}, err
	}

	if p.Market != nil {
		t.Market = *p.Market
	}
	if p.Symbol != nil {
		t.Symbol = NormalizeSymbol(*p.Symbol)
	}
	if p.CompanyName != nil {
		t.CompanyName = p.CompanyName
	}
	if p.Currency != nil {
		t.Currency = p.Currency
	}
	if p.BuyDate != nil {
		t.BuyDate = util.DateOnly(*p.BuyDate)
	}
	if p.BuyPrice != nil {
		t.BuyPrice = *p.BuyPrice
	}
	if p.BuyQuantity != nil {
		t.BuyQuantity = *p.BuyQuantity
	}
	if p.SellDate != nil {
		t.SellDate = p.SellDate
	}
	if p.SellPrice != nil {
		t.SellPrice = p.SellPrice
	}
	if p.SellQuantity != nil {
		t.SellQuantity = p.SellQuantity
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Notes != nil {
		t.Notes = p.Notes
	}

	if t.RemainingQuantity != nil && t.RemainingQuantity.GreaterThan(t.BuyQuantity) {
		return model.Trade{}, fmt.Errorf(
			"%w: buy quantity %s is below the remaining quantity %s",
			domain.ErrValidation,
			t.BuyQuantity.String(),
			t.RemainingQuantity.String(),
		)
	}

	return DeriveTradeFields(t, asOf), nil
}

// NormalizeSymbol is the stored form of a ticker.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// AvailableQuantity is what can still be sold from the lot.
func AvailableQuantity(t model.Trade) decimal.Decimal {
	if t.RemainingQuantity != nil {
		return *t.RemainingQuantity
	}
	return t.BuyQuantity
}

// RecordSell applies a sale against the lot. The sell date, price and
// quantity replace whatever a previous sale recorded; only the remaining
// quantity accumulates across sales.
func RecordSell(t model.Trade, in SellInput, asOf time.Time) (model.Trade, error) {
	if t.Status == model.TradeStatus_Closed {
		return model.Trade{}, fmt.Errorf("%w: trade %d is already closed", domain.ErrInvalidOperation, t.TradeID)
	}
	if !in.SellPrice.IsPositive() {
		return model.Trade{}, fmt.Errorf("%w: sell price must be positive, got %s", domain.ErrValidation, in.SellPrice.String())
	}
	if !in.SellQuantity.IsPositive() {
		return model.Trade{}, fmt.Errorf("%w: sell quantity must be positive, got %s", domain.ErrValidation, in.SellQuantity.String())
	}

	available := AvailableQuantity(t)
	if in.SellQuantity.GreaterThan(available) {
		return model.Trade{}, fmt.Errorf(
			"%w: sell quantity exceeds available quantity. Available: %s",
			domain.ErrInvalidOperation,
			available.String(),
		)
	}

	t.SellDate = util.TimePointer(util.DateOnly(in.SellDate))
	t.SellPrice = util.DecimalPointer(in.SellPrice)
	t.SellQuantity = util.DecimalPointer(in.SellQuantity)
	t.RemainingQuantity = util.DecimalPointer(available.Sub(in.SellQuantity))
	t.Notes = appendNotes(t.Notes, in.Notes)

	return DeriveTradeFields(t, asOf), nil
}

func appendNotes(existing, added *string) *string {
	if added == nil {
		return existing
	}
	if existing == nil {
		return util.StringPointer(*added)
	}
	return util.StringPointer(*existing + notesSeparator + *added)
}

// DeriveTradeFields recomputes every computed column of t. asOf stands in
// for "today" when the lot has no sell date.
func DeriveTradeFields(t model.Trade, asOf time.Time) model.Trade {
	t.InvestedAmount = util.DecimalPointer(roundMoney(t.BuyPrice.Mul(t.BuyQuantity)))

	if t.RemainingQuantity == nil {
		t.RemainingQuantity = util.DecimalPointer(t.BuyQuantity)
	}

	if t.SellPrice != nil && t.SellQuantity != nil {
		soldValue := t.SellPrice.Mul(*t.SellQuantity)
		costBasis := t.BuyPrice.Mul(*t.SellQuantity)
		profitLoss := roundMoney(soldValue.Sub(costBasis))
		t.ProfitLoss = util.DecimalPointer(profitLoss)
		if costBasis.IsPositive() {
			t.ProfitLossPercentage = util.DecimalPointer(percentOf(profitLoss, costBasis))
		}
		t.CurrentValue = util.DecimalPointer(roundMoney(soldValue))
	}

	if !t.BuyDate.IsZero() {
		end := asOf
		if t.SellDate != nil {
			end = *t.SellDate
		}
		t.PositionHeldDays = util.Int32Pointer(int32(util.DaysBetween(t.BuyDate, end)))
	}

	remaining := *t.RemainingQuantity
	if remaining.IsZero() {
		t.Status = model.TradeStatus_Closed
	} else if remaining.LessThan(t.BuyQuantity) {
		t.Status = model.TradeStatus_PartiallySold
	}

	return t
}
