package api

import (
	"time"

	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"

	"github.com/shopspring/decimal"
)

type tradeResponse struct {
	ID                   int64            `json:"id"`
	UserID               int64            `json:"userId"`
	Market               string           `json:"market"`
	Symbol               string           `json:"symbol"`
	CompanyName          *string          `json:"companyName"`
	Currency             *string          `json:"currency"`
	BuyDate              string           `json:"buyDate"`
	BuyPrice             decimal.Decimal  `json:"buyPrice"`
	BuyQuantity          decimal.Decimal  `json:"buyQuantity"`
	SellDate             *string          `json:"sellDate"`
	SellPrice            *decimal.Decimal `json:"sellPrice"`
	SellQuantity         *decimal.Decimal `json:"sellQuantity"`
	ProfitLoss           *decimal.Decimal `json:"profitLoss"`
	ProfitLossPercentage *decimal.Decimal `json:"profitLossPercentage"`
	PositionHeldDays     *int32           `json:"positionHeldDays"`
	RemainingQuantity    *decimal.Decimal `json:"remainingQuantity"`
	InvestedAmount       *decimal.Decimal `json:"investedAmount"`
	CurrentValue         *decimal.Decimal `json:"currentValue"`
	Status               string           `json:"status"`
	Notes                *string          `json:"notes"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func newTradeResponse(t model.Trade) tradeResponse {
	return tradeResponse{
		ID:                   t.TradeID,
		UserID:               t.UserID,
		Market:               t.Market.String(),
		Symbol:               t.Symbol,
		CompanyName:          t.CompanyName,
		Currency:             t.Currency,
		BuyDate:              t.BuyDate.Format(time.DateOnly),
		BuyPrice:             t.BuyPrice,
		BuyQuantity:          t.BuyQuantity,
		SellDate:             formatDate(t.SellDate),
		SellPrice:            t.SellPrice,
		SellQuantity:         t.SellQuantity,
		ProfitLoss:           t.ProfitLoss,
		ProfitLossPercentage: t.ProfitLossPercentage,
		PositionHeldDays:     t.PositionHeldDays,
		RemainingQuantity:    t.RemainingQuantity,
		InvestedAmount:       t.InvestedAmount,
		CurrentValue:         t.CurrentValue,
		Status:               t.Status.String(),
		Notes:                t.Notes,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.ModifiedAt,
	}
}

func newTradeResponses(trades []model.Trade) []tradeResponse {
	out := make([]tradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, newTradeResponse(t))
	}
	return out
}

type holdingResponse struct {
	ID                     int64            `json:"id"`
	UserID                 int64            `json:"userId"`
	Market                 string           `json:"market"`
	Symbol                 string           `json:"symbol"`
	CompanyName            *string          `json:"companyName"`
	Currency               *string          `json:"currency"`
	Quantity               decimal.Decimal  `json:"quantity"`
	AverageBuyPrice        decimal.Decimal  `json:"averageBuyPrice"`
	BoughtOn               *string          `json:"boughtOn"`
	InvestedAmount         *decimal.Decimal `json:"investedAmount"`
	CurrentPrice           *decimal.Decimal `json:"currentPrice"`
	CurrentValue           *decimal.Decimal `json:"currentValue"`
	UnrealizedPL           *decimal.Decimal `json:"unrealizedPL"`
	UnrealizedPLPercentage *decimal.Decimal `json:"unrealizedPLPercentage"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

func newHoldingResponse(h model.UserHolding) holdingResponse {
	return holdingResponse{
		ID:                     h.UserHoldingID,
		UserID:                 h.UserID,
		Market:                 h.Market.String(),
		Symbol:                 h.Symbol,
		CompanyName:            h.CompanyName,
		Currency:               h.Currency,
		Quantity:               h.Quantity,
		AverageBuyPrice:        h.AverageBuyPrice,
		BoughtOn:               formatDate(h.BoughtOn),
		InvestedAmount:         h.InvestedAmount,
		CurrentPrice:           h.CurrentPrice,
		CurrentValue:           h.CurrentValue,
		UnrealizedPL:           h.UnrealizedPl,
		UnrealizedPLPercentage: h.UnrealizedPlPercentage,
		CreatedAt:              h.CreatedAt,
		UpdatedAt:              h.ModifiedAt,
	}
}

func newHoldingResponses(holdings []model.UserHolding) []holdingResponse {
	out := make([]holdingResponse, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, newHoldingResponse(h))
	}
	return out
}

type pageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}

func newPageResponse[M any, T any](page domain.Page[M], convert func(M) T) pageResponse[T] {
	content := make([]T, 0, len(page.Content))
	for _, m := range page.Content {
		content = append(content, convert(m))
	}
	return pageResponse[T]{
		Content:       content,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
		First:         page.First(),
		Last:          page.Last(),
		Empty:         page.Empty(),
	}
}

type tradeSummaryResponse struct {
	UserID                   int64           `json:"userId"`
	TotalProfitLoss          decimal.Decimal `json:"totalProfitLoss"`
	TotalInvestedAmount      decimal.Decimal `json:"totalInvestedAmount"`
	OpenTradesCount          int             `json:"openTradesCount"`
	PartiallySoldTradesCount int             `json:"partiallySoldTradesCount"`
	ClosedTradesCount        int             `json:"closedTradesCount"`
	AverageHoldingDays       float64         `json:"averageHoldingDays"`
	MedianHoldingDays        float64         `json:"medianHoldingDays"`
}

func newTradeSummaryResponse(s domain.TradeSummary) tradeSummaryResponse {
	return tradeSummaryResponse{
		UserID:                   s.UserID,
		TotalProfitLoss:          s.TotalProfitLoss,
		TotalInvestedAmount:      s.TotalInvestedAmount,
		OpenTradesCount:          s.OpenTradesCount,
		PartiallySoldTradesCount: s.PartiallySoldTradesCount,
		ClosedTradesCount:        s.ClosedTradesCount,
		AverageHoldingDays:       s.AverageHoldingDays,
		MedianHoldingDays:        s.MedianHoldingDays,
	}
}

type holdingSummaryResponse struct {
	UserID                      int64             `json:"userId"`
	TotalInvestedAmount         decimal.Decimal   `json:"totalInvestedAmount"`
	TotalCurrentValue           decimal.Decimal   `json:"totalCurrentValue"`
	TotalUnrealizedPL           decimal.Decimal   `json:"totalUnrealizedPL"`
	TotalUnrealizedPLPercentage decimal.Decimal   `json:"totalUnrealizedPLPercentage"`
	TotalHoldings               int               `json:"totalHoldings"`
	Holdings                    []holdingResponse `json:"holdings"`
}

func newHoldingSummaryResponse(s domain.HoldingSummary) holdingSummaryResponse {
	return holdingSummaryResponse{
		UserID:                      s.UserID,
		TotalInvestedAmount:         s.TotalInvestedAmount,
		TotalCurrentValue:           s.TotalCurrentValue,
		TotalUnrealizedPL:           s.TotalUnrealizedPl,
		TotalUnrealizedPLPercentage: s.TotalUnrealizedPlPercentage,
		TotalHoldings:               s.TotalHoldings,
		Holdings:                    newHoldingResponses(s.Holdings),
	}
}
