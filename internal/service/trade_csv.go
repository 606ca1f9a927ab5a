package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"portfolioledger/internal/calculator"
	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/logger"
	"portfolioledger/internal/repository"
	"portfolioledger/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// tradeCsvRow is the on-disk shape of a trade for export and bulk import.
// Derived columns are written on export and ignored on import.
type tradeCsvRow struct {
	TradeID              string `csv:"trade_id"`
	Market               string `csv:"market"`
	Symbol               string `csv:"symbol"`
	CompanyName          string `csv:"company_name"`
	Currency             string `csv:"currency"`
	BuyDate              string `csv:"buy_date"`
	BuyPrice             string `csv:"buy_price"`
	BuyQuantity          string `csv:"buy_quantity"`
	SellDate             string `csv:"sell_date"`
	SellPrice            string `csv:"sell_price"`
	SellQuantity         string `csv:"sell_quantity"`
	Status               string `csv:"status"`
	RemainingQuantity    string `csv:"remaining_quantity"`
	InvestedAmount       string `csv:"invested_amount"`
	ProfitLoss           string `csv:"profit_loss"`
	ProfitLossPercentage string `csv:"profit_loss_percentage"`
	PositionHeldDays     string `csv:"position_held_days"`
	Notes                string `csv:"notes"`
}

func csvString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func csvDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func csvDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

func newTradeCsvRow(t model.Trade) tradeCsvRow {
	held := ""
	if t.PositionHeldDays != nil {
		held = fmt.Sprintf("%d", *t.PositionHeldDays)
	}
	return tradeCsvRow{
		TradeID:              fmt.Sprintf("%d", t.TradeID),
		Market:               t.Market.String(),
		Symbol:               t.Symbol,
		CompanyName:          csvString(t.CompanyName),
		Currency:             csvString(t.Currency),
		BuyDate:              t.BuyDate.Format(time.DateOnly),
		BuyPrice:             t.BuyPrice.String(),
		BuyQuantity:          t.BuyQuantity.String(),
		SellDate:             csvDate(t.SellDate),
		SellPrice:            csvDecimal(t.SellPrice),
		SellQuantity:         csvDecimal(t.SellQuantity),
		Status:               t.Status.String(),
		RemainingQuantity:    csvDecimal(t.RemainingQuantity),
		InvestedAmount:       csvDecimal(t.InvestedAmount),
		ProfitLoss:           csvDecimal(t.ProfitLoss),
		ProfitLossPercentage: csvDecimal(t.ProfitLossPercentage),
		PositionHeldDays:     held,
		Notes:                csvString(t.Notes),
	}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalDecimal(field, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%s %q is not a number: %w", field, s, domain.ErrValidation)
	}
	return &d, nil
}

func requiredDecimal(field, s string) (decimal.Decimal, error) {
	d, err := optionalDecimal(field, s)
	if err != nil {
		return decimal.Zero, err
	}
	if d == nil {
		return decimal.Zero, fmt.Errorf("%s is required: %w", field, domain.ErrValidation)
	}
	return *d, nil
}

func (r tradeCsvRow) toInput() (calculator.NewTradeInput, error) {
	market, err := domain.ParseMarket(r.Market)
	if err != nil {
		return calculator.NewTradeInput{}, err
	}

	buyDate, err := util.ParseDate(strings.TrimSpace(r.BuyDate))
	if err != nil {
		return calculator.NewTradeInput{}, fmt.Errorf("buy_date %q: %w", r.BuyDate, domain.ErrValidation)
	}
	buyPrice, err := requiredDecimal("buy_price", r.BuyPrice)
	if err != nil {
		return calculator.NewTradeInput{}, err
	}
	buyQuantity, err := requiredDecimal("buy_quantity", r.BuyQuantity)
	if err != nil {
		return calculator.NewTradeInput{}, err
	}

	in := calculator.NewTradeInput{
		Market:      market,
		Symbol:      strings.TrimSpace(r.Symbol),
		CompanyName: optionalString(r.CompanyName),
		Currency:    optionalString(r.Currency),
		BuyDate:     buyDate,
		BuyPrice:    buyPrice,
		BuyQuantity: buyQuantity,
		Notes:       optionalString(r.Notes),
	}

	if s := optionalString(r.SellDate); s != nil {
		sellDate, err := util.ParseDate(*s)
		if err != nil {
			return calculator.NewTradeInput{}, fmt.Errorf("sell_date %q: %w", *s, domain.ErrValidation)
		}
		in.SellDate = &sellDate
	}
	if in.SellPrice, err = optionalDecimal("sell_price", r.SellPrice); err != nil {
		return calculator.NewTradeInput{}, err
	}
	if in.SellQuantity, err = optionalDecimal("sell_quantity", r.SellQuantity); err != nil {
		return calculator.NewTradeInput{}, err
	}
	if s := optionalString(r.Status); s != nil {
		status, err := domain.ParseTradeStatus(*s)
		if err != nil {
			return calculator.NewTradeInput{}, err
		}
		in.Status = &status
	}

	return in, nil
}

// ExportTrades renders every trade of a user as CSV, newest buy first.
func (h tradeServiceHandler) ExportTrades(ctx context.Context, userID int64) ([]byte, error) {
	trades, err := h.TradeRepository.List(nil, repository.TradeListFilter{
		UserID: &userID,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]tradeCsvRow, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, newTradeCsvRow(t))
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to write trades csv: %w", err)
	}
	return out, nil
}

// ImportTrades creates one trade per CSV row. The import is all or
// nothing.
func (h tradeServiceHandler) ImportTrades(ctx context.Context, userID int64, csvData []byte) ([]model.Trade, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := h.importTrades(ctx, tx, userID, csvData)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit trade import: %w", err)
	}
	return out, nil
}

func (h tradeServiceHandler) importTrades(ctx context.Context, tx *sql.Tx, userID int64, csvData []byte) ([]model.Trade, error) {
	rows := []tradeCsvRow{}
	if err := gocsv.UnmarshalBytes(csvData, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse trades csv: %v: %w", err, domain.ErrValidation)
	}

	out := []model.Trade{}
	for i, row := range rows {
		in, err := row.toInput()
		if err != nil {
			// header is line 1
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		t, err := h.createTrade(ctx, tx, userID, in)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		out = append(out, *t)
	}

	logger.FromContext(ctx).Infof("imported %d trades for user %d", len(out), userID)
	return out, nil
}
