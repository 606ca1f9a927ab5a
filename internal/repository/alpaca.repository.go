package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

type alpacaQuoteClient interface {
	GetLatestQuotes(symbols []string, req marketdata.GetLatestQuoteRequest) (map[string]marketdata.Quote, error)
	GetLatestCryptoQuotes(symbols []string, req marketdata.GetLatestCryptoQuoteRequest) (map[string]marketdata.CryptoQuote, error)
}

type alpacaRepositoryHandler struct {
	MdClient alpacaQuoteClient
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) LatestPriceRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

func (h alpacaRepositoryHandler) Name() string {
	return "alpaca"
}

func (h alpacaRepositoryHandler) Supports(market model.Market) bool {
	switch market {
	case model.Market_Nasdaq, model.Market_Nyse, model.Market_Crypto:
		return true
	}
	return false
}

func cryptoPair(symbol string) string {
	if strings.Contains(symbol, "/") {
		return symbol
	}
	return symbol + "/USD"
}

func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, assets []domain.HeldAsset) (map[domain.HeldAsset]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)
	out := map[domain.HeldAsset]domain.AssetPrice{}

	// alpaca quotes the consolidated US tape, so one ticker held on both
	// NASDAQ and NYSE shares a quote
	equities := map[string][]domain.HeldAsset{}
	pairs := map[string][]domain.HeldAsset{}
	for _, a := range assets {
		switch {
		case a.Market == model.Market_Crypto:
			pair := cryptoPair(strings.ToUpper(a.Symbol))
			pairs[pair] = append(pairs[pair], a)
		case h.Supports(a.Market):
			symbol := strings.ToUpper(a.Symbol)
			equities[symbol] = append(equities[symbol], a)
		default:
			log.Debugf("alpaca does not quote %s on %s", a.Symbol, a.Market)
		}
	}

	if len(equities) > 0 {
		symbols := make([]string, 0, len(equities))
		for symbol := range equities {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)
		results, err := h.MdClient.GetLatestQuotes(symbols, marketdata.GetLatestQuoteRequest{})
		if err != nil {
			return nil, fmt.Errorf("failed to get latest quotes from alpaca: %w", err)
		}
		for symbol, result := range results {
			price := decimal.NewFromFloat(result.BidPrice)
			if price.IsZero() {
				log.Warnf("alpaca returned 0 price for %s, skipping", symbol)
				continue
			}
			for _, a := range equities[symbol] {
				out[a] = domain.AssetPrice{
					Symbol: a.Symbol,
					Price:  price,
					Date:   result.Timestamp.UTC(),
				}
			}
		}
	}

	if len(pairs) > 0 {
		symbols := make([]string, 0, len(pairs))
		for pair := range pairs {
			symbols = append(symbols, pair)
		}
		sort.Strings(symbols)
		results, err := h.MdClient.GetLatestCryptoQuotes(symbols, marketdata.GetLatestCryptoQuoteRequest{})
		if err != nil {
			return nil, fmt.Errorf("failed to get latest crypto quotes from alpaca: %w", err)
		}
		for pair, result := range results {
			price := decimal.NewFromFloat(result.BidPrice)
			if price.IsZero() {
				log.Warnf("alpaca returned 0 price for %s, skipping", pair)
				continue
			}
			for _, a := range pairs[pair] {
				out[a] = domain.AssetPrice{
					Symbol: a.Symbol,
					Price:  price,
					Date:   result.Timestamp.UTC(),
				}
			}
		}
	}

	return out, nil
}
