package calculator

import (
	"portfolioledger/internal/db/models/postgres/public/model"

	"github.com/montanaflynn/stats"
)

type HoldingPeriod struct {
	Mean   float64
	Median float64
}

// HoldingPeriodStats describes how long closed lots were held. Lots without
// a computed holding period are ignored.
func HoldingPeriodStats(trades []model.Trade) (HoldingPeriod, error) {
	days := stats.Float64Data{}
	for _, t := range trades {
		if t.Status != model.TradeStatus_Closed || t.PositionHeldDays == nil {
			continue
		}
		days = append(days, float64(*t.PositionHeldDays))
	}
	if len(days) == 0 {
		return HoldingPeriod{}, nil
	}

	mean, err := days.Mean()
	if err != nil {
		return HoldingPeriod{}, err
	}
	median, err := days.Median()
	if err != nil {
		return HoldingPeriod{}, err
	}

	return HoldingPeriod{
		Mean:   mean,
		Median: median,
	}, nil
}
