package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/db/models/postgres/public/table"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func openTestDb(t *testing.T) *sql.DB {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}
	return db
}

func cleanupLedger(db *sql.DB) error {
	if _, err := table.Trade.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.UserHolding.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func beginTestTx(t *testing.T, db *sql.DB) *sql.Tx {
	require.NoError(t, cleanupLedger(db))
	tx, err := db.Begin()
	require.NoError(t, err)
	t.Cleanup(func() {
		err := tx.Rollback()
		require.NoError(t, err)
	})
	return tx
}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// seedTrades inserts three lots for user 1 and one for user 2.
func seedTrades(tx *sql.Tx) ([]model.Trade, error) {
	now := time.Now().UTC()
	modelsToInsert := []model.Trade{
		{
			UserID:            1,
			Market:            model.Market_Nasdaq,
			Symbol:            "AAPL",
			BuyDate:           day("2024-01-10"),
			BuyPrice:          decimal.RequireFromString("100"),
			BuyQuantity:       decimal.RequireFromString("10"),
			Status:            model.TradeStatus_Open,
			RemainingQuantity: decPtr("10"),
			InvestedAmount:    decPtr("1000"),
		},
		{
			UserID:            1,
			Market:            model.Market_Nse,
			Symbol:            "INFY",
			BuyDate:           day("2024-02-15"),
			BuyPrice:          decimal.RequireFromString("1500"),
			BuyQuantity:       decimal.RequireFromString("4"),
			SellDate:          util.TimePointer(day("2024-04-01")),
			SellPrice:         decPtr("1600"),
			SellQuantity:      decPtr("4"),
			ProfitLoss:        decPtr("400"),
			Status:            model.TradeStatus_Closed,
			RemainingQuantity: decPtr("0"),
			InvestedAmount:    decPtr("0"),
		},
		{
			UserID:            1,
			Market:            model.Market_Nasdaq,
			Symbol:            "AAPL",
			BuyDate:           day("2024-03-01"),
			BuyPrice:          decimal.RequireFromString("120"),
			BuyQuantity:       decimal.RequireFromString("5"),
			SellQuantity:      decPtr("3"),
			ProfitLoss:        decPtr("30"),
			Status:            model.TradeStatus_PartiallySold,
			RemainingQuantity: decPtr("2"),
			InvestedAmount:    decPtr("240"),
		},
		{
			UserID:            2,
			Market:            model.Market_Nyse,
			Symbol:            "IBM",
			BuyDate:           day("2024-01-05"),
			BuyPrice:          decimal.RequireFromString("150"),
			BuyQuantity:       decimal.RequireFromString("1"),
			Status:            model.TradeStatus_Open,
			RemainingQuantity: decPtr("1"),
			InvestedAmount:    decPtr("150"),
		},
	}
	for i := range modelsToInsert {
		modelsToInsert[i].CreatedAt = now
		modelsToInsert[i].ModifiedAt = now
	}

	query := table.Trade.
		INSERT(table.Trade.MutableColumns).
		MODELS(modelsToInsert).
		RETURNING(table.Trade.AllColumns)
	inserted := []model.Trade{}
	err := query.Query(tx, &inserted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trades: %w", err)
	}

	return inserted, nil
}

func tradeSymbols(trades []model.Trade) []string {
	out := []string{}
	for _, t := range trades {
		out = append(out, fmt.Sprintf("%s@%s", t.Symbol, t.BuyDate.Format(time.DateOnly)))
	}
	return out
}

func Test_tradeRepositoryHandler_List(t *testing.T) {
	db := openTestDb(t)
	userID := int64(1)

	t.Run("user filter newest first", func(t *testing.T) {
		tx := beginTestTx(t, db)
		_, err := seedTrades(tx)
		require.NoError(t, err)

		handler := tradeRepositoryHandler{Db: db}
		trades, err := handler.List(tx, TradeListFilter{UserID: &userID})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL@2024-03-01", "INFY@2024-02-15", "AAPL@2024-01-10"}, tradeSymbols(trades))
	})

	t.Run("symbol market status and date filters", func(t *testing.T) {
		tx := beginTestTx(t, db)
		_, err := seedTrades(tx)
		require.NoError(t, err)

		handler := tradeRepositoryHandler{Db: db}

		trades, err := handler.List(tx, TradeListFilter{UserID: &userID, Symbol: util.StringPointer(" aapl ")})
		require.NoError(t, err)
		require.Equal(t, 2, len(trades))

		nse := model.Market_Nse
		trades, err = handler.List(tx, TradeListFilter{Market: &nse})
		require.NoError(t, err)
		require.Equal(t, []string{"INFY@2024-02-15"}, tradeSymbols(trades))

		trades, err = handler.List(tx, TradeListFilter{
			UserID:   &userID,
			Statuses: []model.TradeStatus{model.TradeStatus_Open, model.TradeStatus_PartiallySold},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL@2024-03-01", "AAPL@2024-01-10"}, tradeSymbols(trades))

		from, to := day("2024-02-01"), day("2024-03-01")
		trades, err = handler.List(tx, TradeListFilter{BuyDateFrom: &from, BuyDateTo: &to})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL@2024-03-01", "INFY@2024-02-15"}, tradeSymbols(trades))
	})
}

func Test_tradeRepositoryHandler_ListPage(t *testing.T) {
	db := openTestDb(t)
	userID := int64(1)

	t.Run("sorted second page", func(t *testing.T) {
		tx := beginTestTx(t, db)
		_, err := seedTrades(tx)
		require.NoError(t, err)

		handler := tradeRepositoryHandler{Db: db}
		page, err := handler.ListPage(tx, TradeListFilter{UserID: &userID}, domain.PageRequest{
			Page:          1,
			Size:          2,
			SortBy:        "buyPrice",
			SortDirection: "asc",
		})
		require.NoError(t, err)
		require.Equal(t, int64(3), page.TotalElements)
		require.Equal(t, 1, page.PageNumber)
		require.Equal(t, []string{"INFY@2024-02-15"}, tradeSymbols(page.Content))
	})

	t.Run("unknown sort key falls back to buy date", func(t *testing.T) {
		tx := beginTestTx(t, db)
		_, err := seedTrades(tx)
		require.NoError(t, err)

		handler := tradeRepositoryHandler{Db: db}
		page, err := handler.ListPage(tx, TradeListFilter{UserID: &userID}, domain.PageRequest{
			Page:   0,
			Size:   2,
			SortBy: "nope; DROP TABLE trade",
		})
		require.NoError(t, err)
		require.Equal(t, int64(3), page.TotalElements)
		require.Equal(t, []string{"AAPL@2024-03-01", "INFY@2024-02-15"}, tradeSymbols(page.Content))
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		tx := beginTestTx(t, db)
		_, err := seedTrades(tx)
		require.NoError(t, err)

		handler := tradeRepositoryHandler{Db: db}
		page, err := handler.ListPage(tx, TradeListFilter{UserID: &userID}, domain.PageRequest{Page: 5, Size: 2})
		require.NoError(t, err)
		require.Equal(t, int64(3), page.TotalElements)
		require.Empty(t, page.Content)
	})
}

func Test_tradeRepositoryHandler_crud(t *testing.T) {
	db := openTestDb(t)

	t.Run("get update delete", func(t *testing.T) {
		tx := beginTestTx(t, db)
		seeded, err := seedTrades(tx)
		require.NoError(t, err)

		handler := tradeRepositoryHandler{Db: db}
		id := seeded[0].TradeID

		locked, err := handler.GetForUpdate(tx, id)
		require.NoError(t, err)
		require.Equal(t, "AAPL", locked.Symbol)

		locked.Notes = util.StringPointer("long term")
		updated, err := handler.Update(tx, *locked)
		require.NoError(t, err)
		require.Equal(t, "long term", *updated.Notes)
		require.False(t, updated.ModifiedAt.Before(locked.ModifiedAt))

		got, err := handler.Get(tx, id)
		require.NoError(t, err)
		require.Equal(t, "long term", *got.Notes)
		require.True(t, got.BuyPrice.Equal(decimal.NewFromInt(100)))

		err = handler.Delete(tx, id)
		require.NoError(t, err)

		_, err = handler.Get(tx, id)
		require.True(t, errors.Is(err, domain.ErrNotFound))

		err = handler.Delete(tx, id)
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("update of a missing trade", func(t *testing.T) {
		tx := beginTestTx(t, db)
		handler := tradeRepositoryHandler{Db: db}

		_, err := handler.Update(tx, model.Trade{
			TradeID:     -1,
			UserID:      1,
			Market:      model.Market_Nasdaq,
			Symbol:      "AAPL",
			BuyDate:     day("2024-01-10"),
			BuyPrice:    decimal.NewFromInt(1),
			BuyQuantity: decimal.NewFromInt(1),
			Status:      model.TradeStatus_Open,
		})
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("lock needs a transaction", func(t *testing.T) {
		handler := tradeRepositoryHandler{Db: db}
		_, err := handler.GetForUpdate(nil, 1)
		require.Error(t, err)
	})
}

func Test_tradeRepositoryHandler_GetTotals(t *testing.T) {
	db := openTestDb(t)

	t.Run("realized from closed lots and cost of open lots", func(t *testing.T) {
		tx := beginTestTx(t, db)
		_, err := seedTrades(tx)
		require.NoError(t, err)

		handler := tradeRepositoryHandler{Db: db}
		totals, err := handler.GetTotals(tx, 1)
		require.NoError(t, err)
		require.Equal(t, "400", totals.TotalProfitLoss.String())
		require.Equal(t, "1240", totals.TotalInvestedAmount.String())
	})

	t.Run("user without trades", func(t *testing.T) {
		tx := beginTestTx(t, db)
		_, err := seedTrades(tx)
		require.NoError(t, err)

		handler := tradeRepositoryHandler{Db: db}
		totals, err := handler.GetTotals(tx, 99)
		require.NoError(t, err)
		require.True(t, totals.TotalProfitLoss.IsZero())
		require.True(t, totals.TotalInvestedAmount.IsZero())
	})
}

func Test_tradeRepositoryHandler_CountByStatus(t *testing.T) {
	db := openTestDb(t)

	tx := beginTestTx(t, db)
	_, err := seedTrades(tx)
	require.NoError(t, err)

	handler := tradeRepositoryHandler{Db: db}

	counts, err := handler.CountByStatus(tx, 1)
	require.NoError(t, err)
	require.Equal(t, map[model.TradeStatus]int{
		model.TradeStatus_Open:          1,
		model.TradeStatus_PartiallySold: 1,
		model.TradeStatus_Closed:        1,
	}, counts)

	counts, err = handler.CountByStatus(tx, 2)
	require.NoError(t, err)
	require.Equal(t, map[model.TradeStatus]int{
		model.TradeStatus_Open:          1,
		model.TradeStatus_PartiallySold: 0,
		model.TradeStatus_Closed:        0,
	}, counts)
}

func Test_tradeQueries(t *testing.T) {
	t.Run("filter normalizes the symbol", func(t *testing.T) {
		userID := int64(4)
		nse := model.Market_Nse
		query := table.Trade.
			SELECT(table.Trade.TradeID).
			WHERE(TradeListFilter{UserID: &userID, Market: &nse, Symbol: util.StringPointer(" infy ")}.where())

		debugSql := query.DebugSql()
		require.Contains(t, debugSql, "trade.user_id = 4")
		require.Contains(t, debugSql, "trade.market = 'NSE'")
		require.Contains(t, debugSql, "trade.symbol = 'INFY'")
	})

	t.Run("sort keys are case insensitive with id tie breaker", func(t *testing.T) {
		query := table.Trade.
			SELECT(table.Trade.TradeID).
			ORDER_BY(tradeOrderBy("PROFITLOSS", "ASC")...)
		require.Contains(t, query.DebugSql(), "ORDER BY trade.profit_loss ASC, trade.trade_id ASC")

		query = table.Trade.
			SELECT(table.Trade.TradeID).
			ORDER_BY(tradeOrderBy("", "")...)
		require.Contains(t, query.DebugSql(), "ORDER BY trade.buy_date DESC, trade.trade_id DESC")
	})
}
