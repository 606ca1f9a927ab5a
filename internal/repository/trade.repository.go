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
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=trade.repository.go -destination=mocks/mock_trade.repository.go

type TradeRepository interface {
	Add(tx *sql.Tx, t model.Trade) (*model.Trade, error)
	Get(tx *sql.Tx, tradeID int64) (*model.Trade, error)
	GetForUpdate(tx *sql.Tx, tradeID int64) (*model.Trade, error)
	Update(tx *sql.Tx, t model.Trade) (*model.Trade, error)
	Delete(tx *sql.Tx, tradeID int64) error
	List(tx *sql.Tx, filter TradeListFilter) ([]model.Trade, error)
	ListPage(tx *sql.Tx, filter TradeListFilter, page domain.PageRequest) (*domain.Page[model.Trade], error)
	GetTotals(tx *sql.Tx, userID int64) (*TradeTotals, error)
	CountByStatus(tx *sql.Tx, userID int64) (map[model.TradeStatus]int, error)
}

type TradeListFilter struct {
	UserID      *int64
	Market      *model.Market
	Symbol      *string
	Statuses    []model.TradeStatus
	BuyDateFrom *time.Time
	BuyDateTo   *time.Time
}

type TradeTotals struct {
	TotalProfitLoss     decimal.Decimal
	TotalInvestedAmount decimal.Decimal
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h tradeRepositoryHandler) Add(tx *sql.Tx, t model.Trade) (*model.Trade, error) {
	t.CreatedAt = time.Now().UTC()
	t.ModifiedAt = time.Now().UTC()

	query := table.Trade.
		INSERT(table.Trade.MutableColumns).
		MODEL(t).
		RETURNING(table.Trade.AllColumns)

	out := model.Trade{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade: %w", err)
	}

	return &out, nil
}

func (h tradeRepositoryHandler) get(tx *sql.Tx, tradeID int64, forUpdate bool) (*model.Trade, error) {
	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		WHERE(table.Trade.TradeID.EQ(postgres.Int(tradeID)))
	if forUpdate {
		query = query.FOR(postgres.UPDATE())
	}

	out := model.Trade{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("trade %d: %w", tradeID, domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get trade %d: %w", tradeID, err)
	}

	return &out, nil
}

func (h tradeRepositoryHandler) Get(tx *sql.Tx, tradeID int64) (*model.Trade, error) {
	return h.get(tx, tradeID, false)
}

// GetForUpdate locks the row until tx ends.
func (h tradeRepositoryHandler) GetForUpdate(tx *sql.Tx, tradeID int64) (*model.Trade, error) {
	if tx == nil {
		return nil, fmt.Errorf("failed to lock trade %d: no transaction", tradeID)
	}
	return h.get(tx, tradeID, true)
}

func (h tradeRepositoryHandler) Update(tx *sql.Tx, t model.Trade) (*model.Trade, error) {
	t.ModifiedAt = time.Now().UTC()

	query := table.Trade.
		UPDATE(table.Trade.MutableColumns).
		MODEL(t).
		WHERE(table.Trade.TradeID.EQ(postgres.Int(t.TradeID))).
		RETURNING(table.Trade.AllColumns)

	out := model.Trade{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("trade %d: %w", t.TradeID, domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update trade %d: %w", t.TradeID, err)
	}

	return &out, nil
}

func (h tradeRepositoryHandler) Delete(tx *sql.Tx, tradeID int64) error {
	query := table.Trade.
		DELETE().
		WHERE(table.Trade.TradeID.EQ(postgres.Int(tradeID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete trade %d: %w", tradeID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete trade %d: %w", tradeID, err)
	}
	if n == 0 {
		return fmt.Errorf("trade %d: %w", tradeID, domain.ErrNotFound)
	}

	return nil
}

func (f TradeListFilter) where() postgres.BoolExpression {
	where := postgres.Bool(true)
	if f.UserID != nil {
		where = where.AND(table.Trade.UserID.EQ(postgres.Int(*f.UserID)))
	}
	if f.Market != nil {
		where = where.AND(table.Trade.Market.EQ(postgres.NewEnumValue(f.Market.String())))
	}
	if f.Symbol != nil {
		where = where.AND(table.Trade.Symbol.EQ(postgres.String(strings.ToUpper(strings.TrimSpace(*f.Symbol)))))
	}
	if len(f.Statuses) > 0 {
		statuses := []postgres.Expression{}
		for _, s := range f.Statuses {
			statuses = append(statuses, postgres.NewEnumValue(s.String()))
		}
		where = where.AND(table.Trade.Status.IN(statuses...))
	}
	if f.BuyDateFrom != nil {
		where = where.AND(table.Trade.BuyDate.GT_EQ(postgres.DateT(*f.BuyDateFrom)))
	}
	if f.BuyDateTo != nil {
		where = where.AND(table.Trade.BuyDate.LT_EQ(postgres.DateT(*f.BuyDateTo)))
	}
	return where
}

var tradeSortColumns = map[string]postgres.Expression{
	"buydate":        table.Trade.BuyDate,
	"buyprice":       table.Trade.BuyPrice,
	"buyquantity":    table.Trade.BuyQuantity,
	"symbol":         table.Trade.Symbol,
	"market":         table.Trade.Market,
	"status":         table.Trade.Status,
	"investedamount": table.Trade.InvestedAmount,
	"profitloss":     table.Trade.ProfitLoss,
	"selldate":       table.Trade.SellDate,
	"createdat":      table.Trade.CreatedAt,
}

// tradeOrderBy resolves a client sort key, falling back to buy date. The
// id is always the tie breaker so pages are stable.
func tradeOrderBy(sortBy, direction string) []postgres.OrderByClause {
	column, ok := tradeSortColumns[strings.ToLower(sortBy)]
	if !ok {
		column = table.Trade.BuyDate
	}
	if strings.EqualFold(direction, "asc") {
		return []postgres.OrderByClause{column.ASC(), table.Trade.TradeID.ASC()}
	}
	return []postgres.OrderByClause{column.DESC(), table.Trade.TradeID.DESC()}
}

func (h tradeRepositoryHandler) List(tx *sql.Tx, filter TradeListFilter) ([]model.Trade, error) {
	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		WHERE(filter.where()).
		ORDER_BY(tradeOrderBy("buyDate", "desc")...)

	out := []model.Trade{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	return out, nil
}

type rowCount struct {
	Count int64
}

func (h tradeRepositoryHandler) ListPage(tx *sql.Tx, filter TradeListFilter, page domain.PageRequest) (*domain.Page[model.Trade], error) {
	db := h.queryable(tx)
	where := filter.where()

	countQuery := postgres.
		SELECT(postgres.COUNT(postgres.STAR).AS("row_count.count")).
		FROM(table.Trade).
		WHERE(where)

	count := rowCount{}
	err := countQuery.Query(db, &count)
	if err != nil {
		return nil, fmt.Errorf("failed to count trades: %w", err)
	}

	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		WHERE(where).
		ORDER_BY(tradeOrderBy(page.SortBy, page.SortDirection)...).
		LIMIT(int64(page.Size)).
		OFFSET(page.Offset())

	content := []model.Trade{}
	err = query.Query(db, &content)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list trades page: %w", err)
	}

	return &domain.Page[model.Trade]{
		Content:       content,
		PageNumber:    page.Page,
		PageSize:      page.Size,
		TotalElements: count.Count,
	}, nil
}

type tradeSum struct {
	Total decimal.Decimal
}

func (h tradeRepositoryHandler) sum(db qrm.Queryable, column postgres.ColumnFloat, where postgres.BoolExpression) (decimal.Decimal, error) {
	query := postgres.
		SELECT(postgres.COALESCE(postgres.SUMf(column), postgres.Float(0)).AS("trade_sum.total")).
		FROM(table.Trade).
		WHERE(where)

	out := tradeSum{}
	err := query.Query(db, &out)
	if err != nil {
		return decimal.Zero, err
	}
	return out.Total, nil
}

// GetTotals sums realized profit over closed lots and the cost of lots that
// are still (partly) open.
func (h tradeRepositoryHandler) GetTotals(tx *sql.Tx, userID int64) (*TradeTotals, error) {
	db := h.queryable(tx)
	closed := TradeListFilter{
		UserID:   &userID,
		Statuses: []model.TradeStatus{model.TradeStatus_Closed},
	}
	open := TradeListFilter{
		UserID:   &userID,
		Statuses: []model.TradeStatus{model.TradeStatus_Open, model.TradeStatus_PartiallySold},
	}

	profitLoss, err := h.sum(db, table.Trade.ProfitLoss, closed.where())
	if err != nil {
		return nil, fmt.Errorf("failed to sum profit/loss for user %d: %w", userID, err)
	}
	invested, err := h.sum(db, table.Trade.InvestedAmount, open.where())
	if err != nil {
		return nil, fmt.Errorf("failed to sum invested amount for user %d: %w", userID, err)
	}

	return &TradeTotals{
		TotalProfitLoss:     profitLoss,
		TotalInvestedAmount: invested,
	}, nil
}

type statusCount struct {
	Status model.TradeStatus
	Count  int64
}

func (h tradeRepositoryHandler) CountByStatus(tx *sql.Tx, userID int64) (map[model.TradeStatus]int, error) {
	query := postgres.
		SELECT(
			table.Trade.Status.AS("status_count.status"),
			postgres.COUNT(table.Trade.TradeID).AS("status_count.count"),
		).
		FROM(table.Trade).
		WHERE(table.Trade.UserID.EQ(postgres.Int(userID))).
		GROUP_BY(table.Trade.Status)

	rows := []statusCount{}
	err := query.Query(h.queryable(tx), &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to count trades for user %d: %w", userID, err)
	}

	out := map[model.TradeStatus]int{}
	for _, s := range model.TradeStatusAllValues {
		out[s] = 0
	}
	for _, r := range rows {
		out[r.Status] = int(r.Count)
	}

	return out, nil
}
