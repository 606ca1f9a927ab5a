package service

import (
	"context"
	"testing"

	"portfolioledger/internal/calculator"
	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/repository"
	mock_repository "portfolioledger/internal/repository/mocks"
	"portfolioledger/internal/util"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHoldingService(ctrl *gomock.Controller) (holdingServiceHandler, *mock_repository.MockUserHoldingRepository) {
	userHoldingRepository := mock_repository.NewMockUserHoldingRepository(ctrl)
	return holdingServiceHandler{
		UserHoldingRepository: userHoldingRepository,
		Now:                   fixedNow,
	}, userHoldingRepository
}

func passThroughHolding(_ any, h model.UserHolding) (*model.UserHolding, error) {
	return &h, nil
}

var infyKey = repository.HoldingKey{
	UserID: 7,
	Symbol: "INFY",
	Market: model.Market_Nse,
}

func Test_holdingServiceHandler_accrete(t *testing.T) {
	t.Run("first purchase inserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(nil, nil)
		userHoldingRepository.EXPECT().Add(nil, gomock.Any()).DoAndReturn(passThroughHolding)

		out, err := handler.accrete(context.Background(), nil, calculator.AccreteInput{
			UserID:   7,
			Market:   model.Market_Nse,
			Symbol:   "infy",
			Quantity: dec("10"),
			Price:    dec("50.00"),
		})
		require.NoError(t, err)
		require.Equal(t, "INFY", out.Symbol)
		require.True(t, dec("50.00").Equal(out.AverageBuyPrice))
		require.Equal(t, util.DateOnly(fixedNow()), *out.BoughtOn)
		requireDecimal(t, "500.00", out.InvestedAmount)
	})

	t.Run("later purchase averages in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		existing, err := calculator.Accrete(nil, calculator.AccreteInput{
			UserID:   7,
			Market:   model.Market_Nse,
			Symbol:   "INFY",
			Quantity: dec("10"),
			Price:    dec("50.00"),
		}, fixedNow())
		require.NoError(t, err)
		existing.UserHoldingID = 3

		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(&existing, nil)
		userHoldingRepository.EXPECT().Update(nil, gomock.Any()).DoAndReturn(passThroughHolding)

		out, err := handler.accrete(context.Background(), nil, calculator.AccreteInput{
			UserID:   7,
			Market:   model.Market_Nse,
			Symbol:   "INFY",
			Quantity: dec("10"),
			Price:    dec("70.00"),
		})
		require.NoError(t, err)
		require.Equal(t, int64(3), out.UserHoldingID)
		require.True(t, dec("20").Equal(out.Quantity))
		require.True(t, dec("60.00").Equal(out.AverageBuyPrice))
	})

	t.Run("padded symbol finds the stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(nil, nil)
		userHoldingRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ any, h model.UserHolding) (*model.UserHolding, error) {
				require.Equal(t, infyKey.Symbol, h.Symbol)
				return &h, nil
			})

		_, err := handler.accrete(context.Background(), nil, calculator.AccreteInput{
			UserID:   7,
			Market:   model.Market_Nse,
			Symbol:   " infy ",
			Quantity: dec("1"),
			Price:    dec("50.00"),
		})
		require.NoError(t, err)
	})

	t.Run("concurrent first purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(nil, nil)
		userHoldingRepository.EXPECT().Add(nil, gomock.Any()).Return(nil, &pq.Error{Code: "23505"})

		_, err := handler.accrete(context.Background(), nil, calculator.AccreteInput{
			UserID:   7,
			Market:   model.Market_Nse,
			Symbol:   "INFY",
			Quantity: dec("1"),
			Price:    dec("50.00"),
		})
		require.ErrorIs(t, err, domain.ErrInvalidOperation)
	})
}

func Test_holdingServiceHandler_reduce(t *testing.T) {
	existing := model.UserHolding{
		UserHoldingID:   3,
		UserID:          7,
		Market:          model.Market_Nse,
		Symbol:          "INFY",
		Quantity:        dec("20"),
		AverageBuyPrice: dec("60.00"),
	}

	t.Run("keeps the average", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		held := existing
		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(&held, nil)
		userHoldingRepository.EXPECT().Update(nil, gomock.Any()).DoAndReturn(passThroughHolding)

		out, err := handler.reduce(context.Background(), nil, repository.HoldingKey{
			UserID: 7,
			Symbol: " infy ",
			Market: model.Market_Nse,
		}, dec("5"))
		require.NoError(t, err)
		require.True(t, dec("15").Equal(out.Quantity))
		require.True(t, dec("60.00").Equal(out.AverageBuyPrice))
		requireDecimal(t, "900.00", out.InvestedAmount)
	})

	t.Run("cannot exceed held quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		held := existing
		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(&held, nil)

		_, err := handler.reduce(context.Background(), nil, infyKey, dec("21"))
		require.ErrorIs(t, err, domain.ErrInvalidOperation)
	})

	t.Run("missing holding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(nil, nil)

		_, err := handler.reduce(context.Background(), nil, infyKey, dec("1"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func Test_holdingServiceHandler_updateCurrentPrice(t *testing.T) {
	t.Run("derives unrealized p&l", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		held := model.UserHolding{
			UserID:          7,
			Market:          model.Market_Nse,
			Symbol:          "INFY",
			Quantity:        dec("20"),
			AverageBuyPrice: dec("60.00"),
		}
		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(&held, nil)
		userHoldingRepository.EXPECT().Update(nil, gomock.Any()).DoAndReturn(passThroughHolding)

		out, err := handler.updateCurrentPrice(context.Background(), nil, infyKey, dec("80.00"))
		require.NoError(t, err)
		requireDecimal(t, "1600.00", out.CurrentValue)
		requireDecimal(t, "1200.00", out.InvestedAmount)
		requireDecimal(t, "400.00", out.UnrealizedPl)
		requireDecimal(t, "33.33", out.UnrealizedPlPercentage)
	})

	t.Run("missing holding is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		userHoldingRepository.EXPECT().GetBySymbolForUpdate(nil, infyKey).Return(nil, nil)

		out, err := handler.updateCurrentPrice(context.Background(), nil, infyKey, dec("80.00"))
		require.NoError(t, err)
		require.Nil(t, out)
	})

	t.Run("rejects non-positive prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newTestHoldingService(ctrl)

		_, err := handler.UpdateCurrentPrice(context.Background(), infyKey, dec("0"))
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func Test_holdingServiceHandler_GetHolding(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, userHoldingRepository := newTestHoldingService(ctrl)

	userHoldingRepository.EXPECT().GetBySymbol(nil, infyKey).Return(nil, nil)

	_, err := handler.GetHolding(context.Background(), infyKey)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func Test_holdingServiceHandler_GetSummary(t *testing.T) {
	t.Run("no holdings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		userID := int64(7)
		userHoldingRepository.EXPECT().
			List(nil, repository.HoldingListFilter{UserID: &userID, ActiveOnly: true}).
			Return([]model.UserHolding{}, nil)

		out, err := handler.GetSummary(context.Background(), userID)
		require.NoError(t, err)
		require.True(t, out.TotalInvestedAmount.IsZero())
		require.True(t, out.TotalCurrentValue.IsZero())
		require.True(t, out.TotalUnrealizedPl.IsZero())
		require.True(t, out.TotalUnrealizedPlPercentage.IsZero())
		require.Equal(t, 0, out.TotalHoldings)
		require.NotNil(t, out.Holdings)
	})

	t.Run("totals active holdings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, userHoldingRepository := newTestHoldingService(ctrl)

		a := calculator.UpdateCurrentPrice(model.UserHolding{
			UserID: 7, Symbol: "A", Market: model.Market_Nse,
			Quantity: dec("20"), AverageBuyPrice: dec("60.00"),
		}, dec("80.00"))
		b := calculator.UpdateCurrentPrice(model.UserHolding{
			UserID: 7, Symbol: "B", Market: model.Market_Nse,
			Quantity: dec("10"), AverageBuyPrice: dec("20.00"),
		}, dec("8.00"))

		userID := int64(7)
		userHoldingRepository.EXPECT().
			List(nil, repository.HoldingListFilter{UserID: &userID, ActiveOnly: true}).
			Return([]model.UserHolding{a, b}, nil)

		out, err := handler.GetSummary(context.Background(), userID)
		require.NoError(t, err)
		require.True(t, dec("1400.00").Equal(out.TotalInvestedAmount))
		require.True(t, dec("1680.00").Equal(out.TotalCurrentValue))
		require.True(t, dec("280.00").Equal(out.TotalUnrealizedPl))
		require.True(t, dec("20.00").Equal(out.TotalUnrealizedPlPercentage))
		require.Equal(t, 2, out.TotalHoldings)
	})
}

func Test_holdingServiceHandler_ListHoldings(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, userHoldingRepository := newTestHoldingService(ctrl)

	userID := int64(7)
	market := model.Market_Nasdaq
	userHoldingRepository.EXPECT().
		List(nil, repository.HoldingListFilter{UserID: &userID, Market: &market, ActiveOnly: true}).
		Return([]model.UserHolding{}, nil)

	out, err := handler.ListHoldings(context.Background(), repository.HoldingListFilter{UserID: &userID, Market: &market})
	require.NoError(t, err)
	require.Empty(t, out)
}

func Test_holdingServiceHandler_ListHoldingsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, userHoldingRepository := newTestHoldingService(ctrl)

	userID := int64(7)
	page := domain.PageRequest{Page: 1, Size: 10, SortBy: "investedAmount", SortDirection: "desc"}
	userHoldingRepository.EXPECT().
		ListPage(nil, repository.HoldingListFilter{UserID: &userID, ActiveOnly: true}, page).
		Return(&domain.Page[model.UserHolding]{Content: []model.UserHolding{}, PageNumber: 1, PageSize: 10}, nil)

	out, err := handler.ListHoldingsPage(context.Background(), userID, page)
	require.NoError(t, err)
	require.True(t, out.Empty())
}
