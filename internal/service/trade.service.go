package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolioledger/internal/calculator"
	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/logger"
	"portfolioledger/internal/repository"
	"portfolioledger/internal/util"
)

//go:generate mockgen -source=trade.service.go -destination=mocks/mock_trade.service.go

type TradeService interface {
	CreateTrade(ctx context.Context, userID int64, in calculator.NewTradeInput) (*model.Trade, error)
	UpdateTrade(ctx context.Context, userID, tradeID int64, patch calculator.TradePatch) (*model.Trade, error)
	RecordSell(ctx context.Context, userID, tradeID int64, in calculator.SellInput) (*model.Trade, error)
	GetTrade(ctx context.Context, userID, tradeID int64) (*model.Trade, error)
	DeleteTrade(ctx context.Context, userID, tradeID int64) error
	ListTrades(ctx context.Context, filter repository.TradeListFilter, page domain.PageRequest) (*domain.Page[model.Trade], error)
	ListOpenPositions(ctx context.Context, symbol string) ([]model.Trade, error)
	GetSummary(ctx context.Context, userID int64) (*domain.TradeSummary, error)
	ExportTrades(ctx context.Context, userID int64) ([]byte, error)
	ImportTrades(ctx context.Context, userID int64, csvData []byte) ([]model.Trade, error)
}

type tradeServiceHandler struct {
	Db              *sql.DB
	TradeRepository repository.TradeRepository
	Now             func() time.Time
}

func NewTradeService(db *sql.DB, tradeRepository repository.TradeRepository) TradeService {
	return tradeServiceHandler{
		Db:              db,
		TradeRepository: tradeRepository,
		Now:             time.Now,
	}
}

func (h tradeServiceHandler) asOf() time.Time {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return util.DateOnly(now().UTC())
}

func (h tradeServiceHandler) CreateTrade(ctx context.Context, userID int64, in calculator.NewTradeInput) (*model.Trade, error) {
	return h.createTrade(ctx, nil, userID, in)
}

func (h tradeServiceHandler) createTrade(ctx context.Context, tx *sql.Tx, userID int64, in calculator.NewTradeInput) (*model.Trade, error) {
	log := logger.FromContext(ctx)

	t, err := calculator.NewTrade(userID, in, h.asOf())
	if err != nil {
		return nil, err
	}

	out, err := h.TradeRepository.Add(tx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	log.Infof("created trade %d: user %d bought %s %s @ %s", out.TradeID, userID, out.BuyQuantity, out.Symbol, out.BuyPrice)
	return out, nil
}

// getOwned loads a trade and hides trades that belong to someone else.
func (h tradeServiceHandler) getOwned(tx *sql.Tx, userID, tradeID int64, forUpdate bool) (*model.Trade, error) {
	var (
		t   *model.Trade
		err error
	)
	if forUpdate {
		t, err = h.TradeRepository.GetForUpdate(tx, tradeID)
	} else {
		t, err = h.TradeRepository.Get(tx, tradeID)
	}
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, fmt.Errorf("trade %d for user %d: %w", tradeID, userID, domain.ErrNotFound)
	}
	return t, nil
}

func (h tradeServiceHandler) UpdateTrade(ctx context.Context, userID, tradeID int64, patch calculator.TradePatch) (*model.Trade, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := h.updateTrade(ctx, tx, userID, tradeID, patch)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit trade update: %w", err)
	}
	return out, nil
}

func (h tradeServiceHandler) updateTrade(ctx context.Context, tx *sql.Tx, userID, tradeID int64, patch calculator.TradePatch) (*model.Trade, error) {
	existing, err := h.getOwned(tx, userID, tradeID, true)
	if err != nil {
		return nil, err
	}

	updated, err := calculator.ApplyTradePatch(*existing, patch, h.asOf())
	if err != nil {
		return nil, err
	}

	out, err := h.TradeRepository.Update(tx, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update trade %d: %w", tradeID, err)
	}

	logger.FromContext(ctx).Infof("updated trade %d (status %s)", tradeID, out.Status)
	return out, nil
}

func (h tradeServiceHandler) RecordSell(ctx context.Context, userID, tradeID int64, in calculator.SellInput) (*model.Trade, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := h.recordSell(ctx, tx, userID, tradeID, in)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sell: %w", err)
	}
	return out, nil
}

func (h tradeServiceHandler) recordSell(ctx context.Context, tx *sql.Tx, userID, tradeID int64, in calculator.SellInput) (*model.Trade, error) {
	existing, err := h.getOwned(tx, userID, tradeID, true)
	if err != nil {
		return nil, err
	}

	sold, err := calculator.RecordSell(*existing, in, h.asOf())
	if err != nil {
		return nil, err
	}

	out, err := h.TradeRepository.Update(tx, sold)
	if err != nil {
		return nil, fmt.Errorf("failed to record sell on trade %d: %w", tradeID, err)
	}

	logger.FromContext(ctx).Infof("sold %s of trade %d, remaining %s", in.SellQuantity, tradeID, util.DecimalOrZero(out.RemainingQuantity))
	return out, nil
}

func (h tradeServiceHandler) GetTrade(ctx context.Context, userID, tradeID int64) (*model.Trade, error) {
	return h.getOwned(nil, userID, tradeID, false)
}

func (h tradeServiceHandler) DeleteTrade(ctx context.Context, userID, tradeID int64) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := h.deleteTrade(ctx, tx, userID, tradeID); err != nil {
		return err
	}

	return tx.Commit()
}

func (h tradeServiceHandler) deleteTrade(ctx context.Context, tx *sql.Tx, userID, tradeID int64) error {
	if _, err := h.getOwned(tx, userID, tradeID, true); err != nil {
		return err
	}
	if err := h.TradeRepository.Delete(tx, tradeID); err != nil {
		return fmt.Errorf("failed to delete trade %d: %w", tradeID, err)
	}

	logger.FromContext(ctx).Infof("deleted trade %d for user %d", tradeID, userID)
	return nil
}

func (h tradeServiceHandler) ListTrades(ctx context.Context, filter repository.TradeListFilter, page domain.PageRequest) (*domain.Page[model.Trade], error) {
	if filter.BuyDateFrom != nil && filter.BuyDateTo != nil && filter.BuyDateTo.Before(*filter.BuyDateFrom) {
		return nil, fmt.Errorf("end date %s is before start date %s: %w",
			filter.BuyDateTo.Format(time.DateOnly), filter.BuyDateFrom.Format(time.DateOnly), domain.ErrValidation)
	}
	return h.TradeRepository.ListPage(nil, filter, page)
}

// ListOpenPositions returns every lot with quantity left for a symbol,
// across users.
func (h tradeServiceHandler) ListOpenPositions(ctx context.Context, symbol string) ([]model.Trade, error) {
	return h.TradeRepository.List(nil, repository.TradeListFilter{
		Symbol: &symbol,
		Statuses: []model.TradeStatus{
			model.TradeStatus_Open,
			model.TradeStatus_PartiallySold,
		},
	})
}

func (h tradeServiceHandler) GetSummary(ctx context.Context, userID int64) (*domain.TradeSummary, error) {
	totals, err := h.TradeRepository.GetTotals(nil, userID)
	if err != nil {
		return nil, err
	}

	counts, err := h.TradeRepository.CountByStatus(nil, userID)
	if err != nil {
		return nil, err
	}

	closed, err := h.TradeRepository.List(nil, repository.TradeListFilter{
		UserID:   &userID,
		Statuses: []model.TradeStatus{model.TradeStatus_Closed},
	})
	if err != nil {
		return nil, err
	}

	period, err := calculator.HoldingPeriodStats(closed)
	if err != nil {
		return nil, fmt.Errorf("failed to compute holding period stats: %w", err)
	}

	return &domain.TradeSummary{
		UserID:                   userID,
		TotalProfitLoss:          totals.TotalProfitLoss,
		TotalInvestedAmount:      totals.TotalInvestedAmount,
		OpenTradesCount:          counts[model.TradeStatus_Open],
		PartiallySoldTradesCount: counts[model.TradeStatus_PartiallySold],
		ClosedTradesCount:        counts[model.TradeStatus_Closed],
		AverageHoldingDays:       period.Mean,
		MedianHoldingDays:        period.Median,
	}, nil
}
