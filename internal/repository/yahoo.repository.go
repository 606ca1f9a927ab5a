package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/logger"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type yahooRepositoryHandler struct {
	// Lookback bounds how far back the chart query goes to find the most
	// recent close, so weekends and holidays still yield a price.
	Lookback time.Duration
	fetch    func(yahooSymbol string, start, end time.Time) ([]domain.AssetPrice, error)
	now      func() time.Time
}

func NewYahooRepository() LatestPriceRepository {
	return yahooRepositoryHandler{
		Lookback: 7 * 24 * time.Hour,
		fetch:    fetchYahooChart,
		now:      time.Now,
	}
}

func (h yahooRepositoryHandler) Name() string {
	return "yahoo"
}

func (h yahooRepositoryHandler) Supports(market model.Market) bool {
	return yahooSuffix(market) != "" || market == model.Market_Nasdaq || market == model.Market_Nyse
}

func yahooSuffix(market model.Market) string {
	switch market {
	case model.Market_Nse:
		return ".NS"
	case model.Market_Bse:
		return ".BO"
	case model.Market_Lse:
		return ".L"
	case model.Market_Crypto:
		return "-USD"
	}
	return ""
}

// yahooSymbol maps a ledger symbol onto the ticker yahoo quotes it under,
// e.g. RELIANCE on NSE is RELIANCE.NS.
func yahooSymbol(a domain.HeldAsset) string {
	symbol := strings.ToUpper(a.Symbol)
	suffix := yahooSuffix(a.Market)
	if suffix == "" || strings.HasSuffix(symbol, suffix) {
		return symbol
	}
	return symbol + suffix
}

func fetchYahooChart(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	for iter.Next() {
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Price:  iter.Bar().Close,
			Date:   time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return out, nil
}

func (h yahooRepositoryHandler) GetLatestPrices(ctx context.Context, assets []domain.HeldAsset) (map[domain.HeldAsset]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)
	end := h.now().UTC()
	start := end.Add(-h.Lookback)

	out := map[domain.HeldAsset]domain.AssetPrice{}
	for _, a := range assets {
		if !h.Supports(a.Market) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bars, err := h.fetch(yahooSymbol(a), start, end)
		if err != nil {
			// one delisted symbol should not block the rest of the batch
			log.Warnf("skipping %s: %v", a.Symbol, err)
			continue
		}

		var latest *domain.AssetPrice
		for i := range bars {
			if bars[i].Price.IsPositive() && (latest == nil || bars[i].Date.After(latest.Date)) {
				latest = &bars[i]
			}
		}
		if latest == nil {
			log.Warnf("no recent close for %s", a.Symbol)
			continue
		}

		out[a] = domain.AssetPrice{
			Symbol: a.Symbol,
			Price:  latest.Price,
			Date:   latest.Date,
		}
	}

	return out, nil
}
