package domain

import (
	"fmt"
	"strings"

	"portfolioledger/internal/db/models/postgres/public/model"
)

var defaultCurrencies = map[model.Market]string{
	model.Market_Nse:    "INR",
	model.Market_Bse:    "INR",
	model.Market_Nasdaq: "USD",
	model.Market_Nyse:   "USD",
	model.Market_Lse:    "GBP",
	model.Market_Crypto: "USD",
}

// DefaultCurrency returns the currency trades on the market settle in
// unless the caller says otherwise.
func DefaultCurrency(m model.Market) string {
	return defaultCurrencies[m]
}

func ParseMarket(s string) (model.Market, error) {
	for _, m := range model.MarketAllValues {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown market %q", ErrValidation, s)
}

func ParseTradeStatus(s string) (model.TradeStatus, error) {
	for _, st := range model.TradeStatusAllValues {
		if strings.EqualFold(st.String(), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown trade status %q", ErrValidation, s)
}
