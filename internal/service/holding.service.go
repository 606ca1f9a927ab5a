package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolioledger/internal/calculator"
	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/logger"
	"portfolioledger/internal/repository"
	"portfolioledger/internal/util"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=holding.service.go -destination=mocks/mock_holding.service.go

type HoldingService interface {
	Accrete(ctx context.Context, in calculator.AccreteInput) (*model.UserHolding, error)
	Reduce(ctx context.Context, key repository.HoldingKey, quantity decimal.Decimal) (*model.UserHolding, error)
	// UpdateCurrentPrice returns nil without error when the holding does
	// not exist.
	UpdateCurrentPrice(ctx context.Context, key repository.HoldingKey, price decimal.Decimal) (*model.UserHolding, error)
	GetHolding(ctx context.Context, key repository.HoldingKey) (*model.UserHolding, error)
	ListHoldings(ctx context.Context, filter repository.HoldingListFilter) ([]model.UserHolding, error)
	ListHoldingsPage(ctx context.Context, userID int64, page domain.PageRequest) (*domain.Page[model.UserHolding], error)
	GetSummary(ctx context.Context, userID int64) (*domain.HoldingSummary, error)
	ListHolderIDs(ctx context.Context) ([]int64, error)
}

type holdingServiceHandler struct {
	Db                    *sql.DB
	UserHoldingRepository repository.UserHoldingRepository
	Now                   func() time.Time
}

func NewHoldingService(db *sql.DB, userHoldingRepository repository.UserHoldingRepository) HoldingService {
	return holdingServiceHandler{
		Db:                    db,
		UserHoldingRepository: userHoldingRepository,
		Now:                   time.Now,
	}
}

func (h holdingServiceHandler) asOf() time.Time {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return util.DateOnly(now().UTC())
}

func normalizeKey(key repository.HoldingKey) repository.HoldingKey {
	key.Symbol = calculator.NormalizeSymbol(key.Symbol)
	return key
}

func isUniqueViolation(err error) bool {
	pqErr := &pq.Error{}
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (h holdingServiceHandler) Accrete(ctx context.Context, in calculator.AccreteInput) (*model.UserHolding, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := h.accrete(ctx, tx, in)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit accretion: %w", err)
	}
	return out, nil
}

func (h holdingServiceHandler) accrete(ctx context.Context, tx *sql.Tx, in calculator.AccreteInput) (*model.UserHolding, error) {
	key := normalizeKey(repository.HoldingKey{
		UserID: in.UserID,
		Symbol: in.Symbol,
		Market: in.Market,
	})

	existing, err := h.UserHoldingRepository.GetBySymbolForUpdate(tx, key)
	if err != nil {
		return nil, err
	}

	merged, err := calculator.Accrete(existing, in, h.asOf())
	if err != nil {
		return nil, err
	}

	var out *model.UserHolding
	if existing == nil {
		out, err = h.UserHoldingRepository.Add(tx, merged)
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s holding for user %d was created concurrently: %w", key.Symbol, key.UserID, domain.ErrInvalidOperation)
		}
	} else {
		out, err = h.UserHoldingRepository.Update(tx, merged)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save %s holding: %w", key.Symbol, err)
	}

	logger.FromContext(ctx).Infof("user %d now holds %s %s @ avg %s", key.UserID, out.Quantity, out.Symbol, out.AverageBuyPrice)
	return out, nil
}

func (h holdingServiceHandler) Reduce(ctx context.Context, key repository.HoldingKey, quantity decimal.Decimal) (*model.UserHolding, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := h.reduce(ctx, tx, key, quantity)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reduction: %w", err)
	}
	return out, nil
}

func (h holdingServiceHandler) reduce(ctx context.Context, tx *sql.Tx, key repository.HoldingKey, quantity decimal.Decimal) (*model.UserHolding, error) {
	key = normalizeKey(key)
	existing, err := h.UserHoldingRepository.GetBySymbolForUpdate(tx, key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%s holding on %s for user %d: %w", key.Symbol, key.Market, key.UserID, domain.ErrNotFound)
	}

	reduced, err := calculator.Reduce(*existing, quantity)
	if err != nil {
		return nil, err
	}

	out, err := h.UserHoldingRepository.Update(tx, reduced)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce %s holding: %w", key.Symbol, err)
	}

	logger.FromContext(ctx).Infof("user %d reduced %s by %s, %s left", key.UserID, key.Symbol, quantity, out.Quantity)
	return out, nil
}

func (h holdingServiceHandler) UpdateCurrentPrice(ctx context.Context, key repository.HoldingKey, price decimal.Decimal) (*model.UserHolding, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive, got %s", domain.ErrValidation, price.String())
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := h.updateCurrentPrice(ctx, tx, key, price)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit price update: %w", err)
	}
	return out, nil
}

func (h holdingServiceHandler) updateCurrentPrice(ctx context.Context, tx *sql.Tx, key repository.HoldingKey, price decimal.Decimal) (*model.UserHolding, error) {
	key = normalizeKey(key)
	existing, err := h.UserHoldingRepository.GetBySymbolForUpdate(tx, key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		logger.FromContext(ctx).Debugf("no %s holding on %s for user %d, skipping price update", key.Symbol, key.Market, key.UserID)
		return nil, nil
	}

	out, err := h.UserHoldingRepository.Update(tx, calculator.UpdateCurrentPrice(*existing, price))
	if err != nil {
		return nil, fmt.Errorf("failed to update %s price: %w", key.Symbol, err)
	}
	return out, nil
}

func (h holdingServiceHandler) GetHolding(ctx context.Context, key repository.HoldingKey) (*model.UserHolding, error) {
	key = normalizeKey(key)
	out, err := h.UserHoldingRepository.GetBySymbol(nil, key)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%s holding on %s for user %d: %w", key.Symbol, key.Market, key.UserID, domain.ErrNotFound)
	}
	return out, nil
}

func (h holdingServiceHandler) ListHoldings(ctx context.Context, filter repository.HoldingListFilter) ([]model.UserHolding, error) {
	filter.ActiveOnly = true
	return h.UserHoldingRepository.List(nil, filter)
}

func (h holdingServiceHandler) ListHoldingsPage(ctx context.Context, userID int64, page domain.PageRequest) (*domain.Page[model.UserHolding], error) {
	return h.UserHoldingRepository.ListPage(nil, repository.HoldingListFilter{
		UserID:     &userID,
		ActiveOnly: true,
	}, page)
}

func (h holdingServiceHandler) GetSummary(ctx context.Context, userID int64) (*domain.HoldingSummary, error) {
	holdings, err := h.UserHoldingRepository.List(nil, repository.HoldingListFilter{
		UserID:     &userID,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	summary := calculator.SummarizeHoldings(userID, holdings)
	return &summary, nil
}

func (h holdingServiceHandler) ListHolderIDs(ctx context.Context) ([]int64, error) {
	return h.UserHoldingRepository.ListHolderIDs(nil)
}
