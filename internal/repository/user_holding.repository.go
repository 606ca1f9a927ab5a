package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/db/models/postgres/public/table"
	"portfolioledger/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

//go:generate mockgen -source=user_holding.repository.go -destination=mocks/mock_user_holding.repository.go

type UserHoldingRepository interface {
	Add(tx *sql.Tx, h model.UserHolding) (*model.UserHolding, error)
	Update(tx *sql.Tx, h model.UserHolding) (*model.UserHolding, error)
	// GetBySymbol returns nil when the user does not hold the symbol.
	GetBySymbol(tx *sql.Tx, key HoldingKey) (*model.UserHolding, error)
	GetBySymbolForUpdate(tx *sql.Tx, key HoldingKey) (*model.UserHolding, error)
	List(tx *sql.Tx, filter HoldingListFilter) ([]model.UserHolding, error)
	ListPage(tx *sql.Tx, filter HoldingListFilter, page domain.PageRequest) (*domain.Page[model.UserHolding], error)
	ListHolderIDs(tx *sql.Tx) ([]int64, error)
	ListHeldAssets(tx *sql.Tx) ([]domain.HeldAsset, error)
}

type HoldingKey struct {
	UserID int64
	Symbol string
	Market model.Market
}

type HoldingListFilter struct {
	UserID     *int64
	Market     *model.Market
	Symbol     *string
	ActiveOnly bool
}

type userHoldingRepositoryHandler struct {
	Db *sql.DB
}

func NewUserHoldingRepository(db *sql.DB) UserHoldingRepository {
	return userHoldingRepositoryHandler{Db: db}
}

func (h userHoldingRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h userHoldingRepositoryHandler) Add(tx *sql.Tx, m model.UserHolding) (*model.UserHolding, error) {
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = time.Now().UTC()
	if m.Quantity.IsNegative() {
		return nil, fmt.Errorf("failed to insert user holding: quantity must be >= 0, got %s", m.Quantity.String())
	}

	query := table.UserHolding.
		INSERT(table.UserHolding.MutableColumns).
		MODEL(m).
		RETURNING(table.UserHolding.AllColumns)

	out := model.UserHolding{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user holding: %w", err)
	}

	return &out, nil
}

func (h userHoldingRepositoryHandler) Update(tx *sql.Tx, m model.UserHolding) (*model.UserHolding, error) {
	m.ModifiedAt = time.Now().UTC()
	if m.Quantity.IsNegative() {
		return nil, fmt.Errorf("failed to update user holding %d: quantity must be >= 0, got %s", m.UserHoldingID, m.Quantity.String())
	}

	query := table.UserHolding.
		UPDATE(table.UserHolding.MutableColumns).
		MODEL(m).
		WHERE(table.UserHolding.UserHoldingID.EQ(postgres.Int(m.UserHoldingID))).
		RETURNING(table.UserHolding.AllColumns)

	out := model.UserHolding{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("user holding %d: %w", m.UserHoldingID, domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update user holding %d: %w", m.UserHoldingID, err)
	}

	return &out, nil
}

func (h userHoldingRepositoryHandler) getBySymbol(tx *sql.Tx, key HoldingKey, forUpdate bool) (*model.UserHolding, error) {
	query := table.UserHolding.
		SELECT(table.UserHolding.AllColumns).
		WHERE(
			table.UserHolding.UserID.EQ(postgres.Int(key.UserID)).
				AND(table.UserHolding.Symbol.EQ(postgres.String(strings.ToUpper(strings.TrimSpace(key.Symbol))))).
				AND(table.UserHolding.Market.EQ(postgres.NewEnumValue(key.Market.String()))),
		)
	if forUpdate {
		query = query.FOR(postgres.UPDATE())
	}

	out := model.UserHolding{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %s holding for user %d: %w", key.Symbol, key.UserID, err)
	}

	return &out, nil
}

func (h userHoldingRepositoryHandler) GetBySymbol(tx *sql.Tx, key HoldingKey) (*model.UserHolding, error) {
	return h.getBySymbol(tx, key, false)
}

func (h userHoldingRepositoryHandler) GetBySymbolForUpdate(tx *sql.Tx, key HoldingKey) (*model.UserHolding, error) {
	if tx == nil {
		return nil, fmt.Errorf("failed to lock %s holding for user %d: no transaction", key.Symbol, key.UserID)
	}
	return h.getBySymbol(tx, key, true)
}

func (f HoldingListFilter) where() postgres.BoolExpression {
	where := postgres.Bool(true)
	if f.UserID != nil {
		where = where.AND(table.UserHolding.UserID.EQ(postgres.Int(*f.UserID)))
	}
	if f.Market != nil {
		where = where.AND(table.UserHolding.Market.EQ(postgres.NewEnumValue(f.Market.String())))
	}
	if f.Symbol != nil {
		where = where.AND(table.UserHolding.Symbol.EQ(postgres.String(strings.ToUpper(strings.TrimSpace(*f.Symbol)))))
	}
	if f.ActiveOnly {
		where = where.AND(table.UserHolding.Quantity.GT(postgres.Float(0)))
	}
	return where
}

func (h userHoldingRepositoryHandler) List(tx *sql.Tx, filter HoldingListFilter) ([]model.UserHolding, error) {
	query := table.UserHolding.
		SELECT(table.UserHolding.AllColumns).
		WHERE(filter.where()).
		ORDER_BY(
			table.UserHolding.InvestedAmount.DESC(),
			table.UserHolding.UserHoldingID.ASC(),
		)

	out := []model.UserHolding{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list user holdings: %w", err)
	}

	return out, nil
}

func (h userHoldingRepositoryHandler) ListPage(tx *sql.Tx, filter HoldingListFilter, page domain.PageRequest) (*domain.Page[model.UserHolding], error) {
	db := h.queryable(tx)
	where := filter.where()

	countQuery := postgres.
		SELECT(postgres.COUNT(postgres.STAR).AS("row_count.count")).
		FROM(table.UserHolding).
		WHERE(where)

	count := rowCount{}
	err := countQuery.Query(db, &count)
	if err != nil {
		return nil, fmt.Errorf("failed to count user holdings: %w", err)
	}

	query := table.UserHolding.
		SELECT(table.UserHolding.AllColumns).
		WHERE(where).
		ORDER_BY(
			table.UserHolding.InvestedAmount.DESC(),
			table.UserHolding.UserHoldingID.ASC(),
		).
		LIMIT(int64(page.Size)).
		OFFSET(page.Offset())

	content := []model.UserHolding{}
	err = query.Query(db, &content)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list user holdings page: %w", err)
	}

	return &domain.Page[model.UserHolding]{
		Content:       content,
		PageNumber:    page.Page,
		PageSize:      page.Size,
		TotalElements: count.Count,
	}, nil
}

type holder struct {
	UserID int64
}

// ListHolderIDs returns every user with at least one active holding.
func (h userHoldingRepositoryHandler) ListHolderIDs(tx *sql.Tx) ([]int64, error) {
	query := postgres.
		SELECT(table.UserHolding.UserID.AS("holder.user_id")).
		DISTINCT().
		FROM(table.UserHolding).
		WHERE(table.UserHolding.Quantity.GT(postgres.Float(0))).
		ORDER_BY(table.UserHolding.UserID.ASC())

	rows := []holder{}
	err := query.Query(h.queryable(tx), &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list holders: %w", err)
	}

	out := []int64{}
	for _, r := range rows {
		out = append(out, r.UserID)
	}
	return out, nil
}

// ListHeldAssets returns the distinct (symbol, market) pairs that need
// pricing.
func (h userHoldingRepositoryHandler) ListHeldAssets(tx *sql.Tx) ([]domain.HeldAsset, error) {
	query := postgres.
		SELECT(
			table.UserHolding.Symbol.AS("held_asset.symbol"),
			table.UserHolding.Market.AS("held_asset.market"),
		).
		DISTINCT().
		FROM(table.UserHolding).
		WHERE(table.UserHolding.Quantity.GT(postgres.Float(0))).
		ORDER_BY(table.UserHolding.Symbol.ASC(), table.UserHolding.Market.ASC())

	out := []domain.HeldAsset{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list held assets: %w", err)
	}

	return out, nil
}
