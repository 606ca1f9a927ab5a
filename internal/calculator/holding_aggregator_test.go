package calculator

import (
	"testing"

	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func accreteAll(t *testing.T, buys [][2]string) model.UserHolding {
	t.Helper()
	var holding *model.UserHolding
	for _, b := range buys {
		h, err := Accrete(holding, AccreteInput{
			UserID:   1,
			Market:   model.Market_Nasdaq,
			Symbol:   "nvda",
			Quantity: dec(b[0]),
			Price:    dec(b[1]),
		}, asOf)
		require.NoError(t, err)
		holding = &h
	}
	return *holding
}

func TestAccrete(t *testing.T) {
	t.Run("first purchase opens a holding", func(t *testing.T) {
		h := accreteAll(t, [][2]string{{"10", "50.00"}})
		require.Equal(t, "NVDA", h.Symbol)
		require.Equal(t, "USD", *h.Currency)
		require.Equal(t, asOf, *h.BoughtOn)
		require.True(t, dec("10").Equal(h.Quantity))
		require.True(t, dec("50").Equal(h.AverageBuyPrice))
		requireDecimal(t, "500.00", h.InvestedAmount)
		require.Nil(t, h.CurrentValue)
		require.Nil(t, h.UnrealizedPl)
	})

	t.Run("symbol is trimmed and upper-cased", func(t *testing.T) {
		h, err := Accrete(nil, AccreteInput{
			UserID:   1,
			Market:   model.Market_Nasdaq,
			Symbol:   " aapl ",
			Quantity: dec("1"),
			Price:    dec("190"),
		}, asOf)
		require.NoError(t, err)
		require.Equal(t, "AAPL", h.Symbol)
	})

	t.Run("weighted average and valuation", func(t *testing.T) {
		h := accreteAll(t, [][2]string{{"10", "50.00"}, {"10", "70.00"}})
		require.True(t, dec("20").Equal(h.Quantity))
		require.True(t, dec("60.00").Equal(h.AverageBuyPrice))

		h = UpdateCurrentPrice(h, dec("80.00"))
		requireDecimal(t, "1600.00", h.CurrentValue)
		requireDecimal(t, "1200.00", h.InvestedAmount)
		requireDecimal(t, "400.00", h.UnrealizedPl)
		requireDecimal(t, "33.33", h.UnrealizedPlPercentage)
	})

	t.Run("average rounds half up", func(t *testing.T) {
		h := accreteAll(t, [][2]string{{"1", "10.00"}, {"2", "10.01"}})
		// 30.02 / 3 = 10.00666...
		require.True(t, dec("10.01").Equal(h.AverageBuyPrice), h.AverageBuyPrice.String())
	})

	t.Run("order of purchases does not matter", func(t *testing.T) {
		cases := [][2][2]string{
			{{"10", "50"}, {"10", "70"}},
			{{"3", "12.34"}, {"7", "56.78"}},
			{{"0.5", "1000"}, {"12.25", "3.5"}},
		}
		for _, c := range cases {
			forward := accreteAll(t, [][2]string{c[0], c[1]})
			backward := accreteAll(t, [][2]string{c[1], c[0]})
			require.True(t, forward.Quantity.Equal(backward.Quantity))
			diff := forward.AverageBuyPrice.Sub(backward.AverageBuyPrice).Abs()
			require.True(t, diff.LessThanOrEqual(dec("0.01")), "averages differ by %s", diff.String())
		}
	})

	t.Run("existing holding keeps identity fields", func(t *testing.T) {
		existing := model.UserHolding{
			UserHoldingID:   42,
			UserID:          9,
			Market:          model.Market_Lse,
			Symbol:          "VOD",
			Currency:        util.StringPointer("GBP"),
			Quantity:        dec("100"),
			AverageBuyPrice: dec("0.70"),
			BoughtOn:        util.TimePointer(util.NewDate(2020, 5, 5)),
		}
		h, err := Accrete(&existing, AccreteInput{
			UserID:   9,
			Market:   model.Market_Lse,
			Symbol:   "vod",
			Quantity: dec("100"),
			Price:    dec("0.90"),
		}, asOf)
		require.NoError(t, err)
		require.Equal(t, int64(42), h.UserHoldingID)
		require.Equal(t, util.NewDate(2020, 5, 5), *h.BoughtOn)
		require.True(t, dec("0.80").Equal(h.AverageBuyPrice))
		require.True(t, dec("100").Equal(existing.Quantity), "input holding was modified")
	})

	t.Run("rejects non-positive input", func(t *testing.T) {
		_, err := Accrete(nil, AccreteInput{Market: model.Market_Nse, Symbol: "TCS", Quantity: decimal.Zero, Price: dec("1")}, asOf)
		require.ErrorIs(t, err, domain.ErrValidation)
		_, err = Accrete(nil, AccreteInput{Market: model.Market_Nse, Symbol: "TCS", Quantity: dec("1"), Price: dec("-1")}, asOf)
		require.ErrorIs(t, err, domain.ErrValidation)
		_, err = Accrete(nil, AccreteInput{Market: model.Market_Nse, Symbol: " ", Quantity: dec("1"), Price: dec("1")}, asOf)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestReduce(t *testing.T) {
	t.Run("keeps cost basis", func(t *testing.T) {
		h := accreteAll(t, [][2]string{{"10", "50.00"}, {"10", "70.00"}})
		h = UpdateCurrentPrice(h, dec("80"))

		reduced, err := Reduce(h, dec("5"))
		require.NoError(t, err)
		require.True(t, dec("15").Equal(reduced.Quantity))
		require.True(t, h.AverageBuyPrice.Equal(reduced.AverageBuyPrice))
		requireDecimal(t, "900.00", reduced.InvestedAmount)
		requireDecimal(t, "1200.00", reduced.CurrentValue)
		requireDecimal(t, "300.00", reduced.UnrealizedPl)
	})

	t.Run("down to zero", func(t *testing.T) {
		h := accreteAll(t, [][2]string{{"10", "50.00"}})
		h = UpdateCurrentPrice(h, dec("80"))
		reduced, err := Reduce(h, dec("10"))
		require.NoError(t, err)
		require.True(t, reduced.Quantity.IsZero())
		requireDecimal(t, "0", reduced.InvestedAmount)
		requireDecimal(t, "0", reduced.CurrentValue)
		require.True(t, dec("50").Equal(reduced.AverageBuyPrice))
	})

	t.Run("cannot reduce below zero", func(t *testing.T) {
		h := accreteAll(t, [][2]string{{"10", "50.00"}})
		_, err := Reduce(h, dec("10.5"))
		require.ErrorIs(t, err, domain.ErrInvalidOperation)
	})
}

func TestSummarizeHoldings(t *testing.T) {
	t.Run("no holdings gives zero totals", func(t *testing.T) {
		summary := SummarizeHoldings(5, nil)
		expected := domain.HoldingSummary{
			UserID:                      5,
			TotalInvestedAmount:         decimal.Zero,
			TotalCurrentValue:           decimal.Zero,
			TotalUnrealizedPl:           decimal.Zero,
			TotalUnrealizedPlPercentage: decimal.Zero,
			TotalHoldings:               0,
			Holdings:                    []model.UserHolding{},
		}
		require.Empty(t, cmp.Diff(expected, summary, decimalComparer))
	})

	t.Run("sums active holdings only", func(t *testing.T) {
		a := UpdateCurrentPrice(accreteAll(t, [][2]string{{"10", "50"}, {"10", "70"}}), dec("80"))
		b := UpdateCurrentPrice(accreteAll(t, [][2]string{{"4", "25"}}), dec("20"))
		unpriced := accreteAll(t, [][2]string{{"1", "100"}})
		closed, err := Reduce(UpdateCurrentPrice(accreteAll(t, [][2]string{{"2", "10"}}), dec("15")), dec("2"))
		require.NoError(t, err)

		summary := SummarizeHoldings(1, []model.UserHolding{a, b, unpriced, closed})
		require.Equal(t, 3, summary.TotalHoldings)
		require.True(t, dec("1400").Equal(summary.TotalInvestedAmount), summary.TotalInvestedAmount.String())
		require.True(t, dec("1680").Equal(summary.TotalCurrentValue), summary.TotalCurrentValue.String())
		require.True(t, dec("380").Equal(summary.TotalUnrealizedPl), summary.TotalUnrealizedPl.String())
		// 380 / 1400 = 0.2714
		require.True(t, dec("27.14").Equal(summary.TotalUnrealizedPlPercentage), summary.TotalUnrealizedPlPercentage.String())
	})
}
