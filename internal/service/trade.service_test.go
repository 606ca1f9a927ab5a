package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"portfolioledger/internal/calculator"
	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/repository"
	mock_repository "portfolioledger/internal/repository/mocks"
	"portfolioledger/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDecimal(t *testing.T, expected string, actual *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, actual)
	require.True(t, dec(expected).Equal(*actual), "expected %s, got %s", expected, actual.String())
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 30, 9, 30, 0, 0, time.UTC)
}

func newTestTradeService(ctrl *gomock.Controller) (tradeServiceHandler, *mock_repository.MockTradeRepository) {
	tradeRepository := mock_repository.NewMockTradeRepository(ctrl)
	return tradeServiceHandler{
		TradeRepository: tradeRepository,
		Now:             fixedNow,
	}, tradeRepository
}

func openTrade() model.Trade {
	t, _ := calculator.NewTrade(7, calculator.NewTradeInput{
		Market:      model.Market_Nse,
		Symbol:      "infy",
		BuyDate:     util.NewDate(2024, 1, 1),
		BuyPrice:    dec("100.00"),
		BuyQuantity: dec("10"),
	}, fixedNow())
	t.TradeID = 42
	return t
}

func Test_tradeServiceHandler_createTrade(t *testing.T) {
	t.Run("derives fields before insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		tradeRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ any, trade model.Trade) (*model.Trade, error) {
				require.Equal(t, int64(7), trade.UserID)
				require.Equal(t, "INFY", trade.Symbol)
				require.Equal(t, "INR", *trade.Currency)
				require.Equal(t, model.TradeStatus_Open, trade.Status)
				requireDecimal(t, "1000.00", trade.InvestedAmount)
				requireDecimal(t, "10", trade.RemainingQuantity)
				trade.TradeID = 1
				return &trade, nil
			})

		out, err := handler.createTrade(context.Background(), nil, 7, calculator.NewTradeInput{
			Market:      model.Market_Nse,
			Symbol:      "infy",
			BuyDate:     util.NewDate(2024, 1, 1),
			BuyPrice:    dec("100.00"),
			BuyQuantity: dec("10"),
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), out.TradeID)
	})

	t.Run("rejects invalid input without touching the db", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newTestTradeService(ctrl)

		_, err := handler.createTrade(context.Background(), nil, 7, calculator.NewTradeInput{
			Market:      model.Market_Nse,
			Symbol:      "INFY",
			BuyDate:     util.NewDate(2024, 1, 1),
			BuyPrice:    dec("0"),
			BuyQuantity: dec("10"),
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func Test_tradeServiceHandler_recordSell(t *testing.T) {
	t.Run("partial then full sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		existing := openTrade()
		tradeRepository.EXPECT().GetForUpdate(nil, int64(42)).Return(&existing, nil)
		tradeRepository.EXPECT().
			Update(nil, gomock.Any()).
			DoAndReturn(func(_ any, trade model.Trade) (*model.Trade, error) {
				return &trade, nil
			})

		out, err := handler.recordSell(context.Background(), nil, 7, 42, calculator.SellInput{
			SellDate:     util.NewDate(2024, 3, 1),
			SellPrice:    dec("120.00"),
			SellQuantity: dec("4"),
		})
		require.NoError(t, err)
		requireDecimal(t, "80.00", out.ProfitLoss)
		requireDecimal(t, "20.00", out.ProfitLossPercentage)
		requireDecimal(t, "6", out.RemainingQuantity)
		require.Equal(t, model.TradeStatus_PartiallySold, out.Status)

		tradeRepository.EXPECT().GetForUpdate(nil, int64(42)).Return(out, nil)
		tradeRepository.EXPECT().
			Update(nil, gomock.Any()).
			DoAndReturn(func(_ any, trade model.Trade) (*model.Trade, error) {
				return &trade, nil
			})

		out, err = handler.recordSell(context.Background(), nil, 7, 42, calculator.SellInput{
			SellDate:     util.NewDate(2024, 4, 1),
			SellPrice:    dec("90.00"),
			SellQuantity: dec("6"),
		})
		require.NoError(t, err)
		requireDecimal(t, "0", out.RemainingQuantity)
		require.Equal(t, model.TradeStatus_Closed, out.Status)
	})

	t.Run("another user's trade is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		existing := openTrade()
		tradeRepository.EXPECT().GetForUpdate(nil, int64(42)).Return(&existing, nil)

		_, err := handler.recordSell(context.Background(), nil, 8, 42, calculator.SellInput{
			SellDate:     util.NewDate(2024, 3, 1),
			SellPrice:    dec("120.00"),
			SellQuantity: dec("4"),
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("over sell is rejected and nothing is written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		existing := openTrade()
		tradeRepository.EXPECT().GetForUpdate(nil, int64(42)).Return(&existing, nil)

		_, err := handler.recordSell(context.Background(), nil, 7, 42, calculator.SellInput{
			SellDate:     util.NewDate(2024, 3, 1),
			SellPrice:    dec("120.00"),
			SellQuantity: dec("11"),
		})
		require.ErrorIs(t, err, domain.ErrInvalidOperation)
		require.ErrorContains(t, err, "Available: 10")
	})

	t.Run("missing trade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		tradeRepository.EXPECT().GetForUpdate(nil, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := handler.recordSell(context.Background(), nil, 7, 99, calculator.SellInput{
			SellDate:     util.NewDate(2024, 3, 1),
			SellPrice:    dec("120.00"),
			SellQuantity: dec("1"),
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func Test_tradeServiceHandler_updateTrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, tradeRepository := newTestTradeService(ctrl)

	existing := openTrade()
	tradeRepository.EXPECT().GetForUpdate(nil, int64(42)).Return(&existing, nil)
	tradeRepository.EXPECT().
		Update(nil, gomock.Any()).
		DoAndReturn(func(_ any, trade model.Trade) (*model.Trade, error) {
			return &trade, nil
		})

	out, err := handler.updateTrade(context.Background(), nil, 7, 42, calculator.TradePatch{
		BuyPrice: util.DecimalPointer(dec("110.00")),
		Notes:    util.StringPointer("rebooked"),
	})
	require.NoError(t, err)
	requireDecimal(t, "1100.00", out.InvestedAmount)
	require.Equal(t, "rebooked", *out.Notes)
	require.Equal(t, "INFY", out.Symbol)
}

func Test_tradeServiceHandler_deleteTrade(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		existing := openTrade()
		tradeRepository.EXPECT().GetForUpdate(nil, int64(42)).Return(&existing, nil)
		tradeRepository.EXPECT().Delete(nil, int64(42)).Return(nil)

		require.NoError(t, handler.deleteTrade(context.Background(), nil, 7, 42))
	})

	t.Run("other users cannot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		existing := openTrade()
		tradeRepository.EXPECT().GetForUpdate(nil, int64(42)).Return(&existing, nil)

		err := handler.deleteTrade(context.Background(), nil, 8, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func Test_tradeServiceHandler_GetSummary(t *testing.T) {
	t.Run("combines totals counts and holding periods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		userID := int64(7)
		tradeRepository.EXPECT().GetTotals(nil, userID).Return(&repository.TradeTotals{
			TotalProfitLoss:     dec("250.50"),
			TotalInvestedAmount: dec("4000.00"),
		}, nil)
		tradeRepository.EXPECT().CountByStatus(nil, userID).Return(map[model.TradeStatus]int{
			model.TradeStatus_Open:   2,
			model.TradeStatus_Closed: 3,
		}, nil)
		tradeRepository.EXPECT().
			List(nil, repository.TradeListFilter{
				UserID:   &userID,
				Statuses: []model.TradeStatus{model.TradeStatus_Closed},
			}).
			Return([]model.Trade{
				{Status: model.TradeStatus_Closed, PositionHeldDays: util.Int32Pointer(10)},
				{Status: model.TradeStatus_Closed, PositionHeldDays: util.Int32Pointer(20)},
				{Status: model.TradeStatus_Closed, PositionHeldDays: util.Int32Pointer(60)},
			}, nil)

		out, err := handler.GetSummary(context.Background(), userID)
		require.NoError(t, err)
		require.Equal(t, userID, out.UserID)
		require.True(t, dec("250.50").Equal(out.TotalProfitLoss))
		require.True(t, dec("4000.00").Equal(out.TotalInvestedAmount))
		require.Equal(t, 2, out.OpenTradesCount)
		require.Equal(t, 0, out.PartiallySoldTradesCount)
		require.Equal(t, 3, out.ClosedTradesCount)
		require.Equal(t, 30.0, out.AverageHoldingDays)
		require.Equal(t, 20.0, out.MedianHoldingDays)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		tradeRepository.EXPECT().GetTotals(nil, int64(7)).Return(nil, errors.New("connection reset"))

		_, err := handler.GetSummary(context.Background(), 7)
		require.ErrorContains(t, err, "connection reset")
	})
}

func Test_tradeServiceHandler_ListTrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, _ := newTestTradeService(ctrl)

	_, err := handler.ListTrades(context.Background(), repository.TradeListFilter{
		BuyDateFrom: util.TimePointer(util.NewDate(2024, 5, 1)),
		BuyDateTo:   util.TimePointer(util.NewDate(2024, 4, 1)),
	}, domain.PageRequest{Size: 20})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func Test_tradeServiceHandler_ListOpenPositions(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, tradeRepository := newTestTradeService(ctrl)

	symbol := "INFY"
	tradeRepository.EXPECT().
		List(nil, repository.TradeListFilter{
			Symbol:   &symbol,
			Statuses: []model.TradeStatus{model.TradeStatus_Open, model.TradeStatus_PartiallySold},
		}).
		Return([]model.Trade{openTrade()}, nil)

	out, err := handler.ListOpenPositions(context.Background(), symbol)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func Test_tradeServiceHandler_csv(t *testing.T) {
	t.Run("export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		userID := int64(7)
		tradeRepository.EXPECT().
			List(nil, repository.TradeListFilter{UserID: &userID}).
			Return([]model.Trade{openTrade()}, nil)

		out, err := handler.ExportTrades(context.Background(), userID)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(out)), "\n")
		require.Len(t, lines, 2)
		require.True(t, strings.HasPrefix(lines[0], "trade_id,market,symbol,"))
		require.True(t, strings.HasPrefix(lines[1], "42,NSE,INFY,,INR,2024-01-01,100,10,"))
	})

	t.Run("import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		csvData := []byte(strings.Join([]string{
			"market,symbol,buy_date,buy_price,buy_quantity,sell_date,sell_price,sell_quantity,notes",
			"NASDAQ,aapl,2024-01-02,150.00,10,,,,first lot",
			"NSE,TCS,2024-02-01,3500.00,2,2024-03-01,3600.00,2,",
		}, "\n"))

		added := []model.Trade{}
		tradeRepository.EXPECT().
			Add(nil, gomock.Any()).
			Times(2).
			DoAndReturn(func(_ any, trade model.Trade) (*model.Trade, error) {
				added = append(added, trade)
				return &trade, nil
			})

		out, err := handler.importTrades(context.Background(), nil, 7, csvData)
		require.NoError(t, err)
		require.Len(t, out, 2)

		require.Equal(t, "AAPL", added[0].Symbol)
		require.Equal(t, "USD", *added[0].Currency)
		require.Equal(t, "first lot", *added[0].Notes)
		require.Equal(t, model.TradeStatus_Open, added[0].Status)

		// sell columns are taken as-is, they do not consume quantity
		require.Equal(t, model.TradeStatus_Open, added[1].Status)
		requireDecimal(t, "200.00", added[1].ProfitLoss)
		requireDecimal(t, "2", added[1].RemainingQuantity)
	})

	t.Run("import reports the bad line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, tradeRepository := newTestTradeService(ctrl)

		csvData := []byte(strings.Join([]string{
			"market,symbol,buy_date,buy_price,buy_quantity",
			"NASDAQ,AAPL,2024-01-02,150.00,10",
			"MOON,XYZ,2024-01-02,1.00,10",
		}, "\n"))

		tradeRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ any, trade model.Trade) (*model.Trade, error) {
				return &trade, nil
			})

		_, err := handler.importTrades(context.Background(), nil, 7, csvData)
		require.ErrorIs(t, err, domain.ErrValidation)
		require.ErrorContains(t, err, "line 3")
	})
}
