package api

import (
	"fmt"
	"net/http"
	"time"

	"portfolioledger/internal/calculator"
	"portfolioledger/internal/db/models/postgres/public/model"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/repository"
	"portfolioledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createTradeRequest struct {
	Market       string           `json:"market" binding:"required"`
	Symbol       string           `json:"symbol" binding:"required,max=20"`
	CompanyName  *string          `json:"companyName"`
	Currency     *string          `json:"currency" binding:"omitempty,max=10"`
	BuyDate      string           `json:"buyDate" binding:"required,datetime=2006-01-02"`
	BuyPrice     decimal.Decimal  `json:"buyPrice" binding:"required,gt=0"`
	BuyQuantity  decimal.Decimal  `json:"buyQuantity" binding:"required,gt=0"`
	SellDate     *string          `json:"sellDate" binding:"omitempty,datetime=2006-01-02"`
	SellPrice    *decimal.Decimal `json:"sellPrice" binding:"omitempty,gt=0"`
	SellQuantity *decimal.Decimal `json:"sellQuantity" binding:"omitempty,gt=0"`
	Status       *string          `json:"status"`
	Notes        *string          `json:"notes"`
}

// updateTradeRequest only changes the fields that are present.
type updateTradeRequest struct {
	Market       *string          `json:"market"`
	Symbol       *string          `json:"symbol" binding:"omitempty,max=20"`
	CompanyName  *string          `json:"companyName"`
	Currency     *string          `json:"currency" binding:"omitempty,max=10"`
	BuyDate      *string          `json:"buyDate" binding:"omitempty,datetime=2006-01-02"`
	BuyPrice     *decimal.Decimal `json:"buyPrice" binding:"omitempty,gt=0"`
	BuyQuantity  *decimal.Decimal `json:"buyQuantity" binding:"omitempty,gt=0"`
	SellDate     *string          `json:"sellDate" binding:"omitempty,datetime=2006-01-02"`
	SellPrice    *decimal.Decimal `json:"sellPrice" binding:"omitempty,gt=0"`
	SellQuantity *decimal.Decimal `json:"sellQuantity" binding:"omitempty,gt=0"`
	Status       *string          `json:"status"`
	Notes        *string          `json:"notes"`
}

type sellTradeRequest struct {
	SellDate     string          `json:"sellDate" binding:"required,datetime=2006-01-02"`
	SellPrice    decimal.Decimal `json:"sellPrice" binding:"required,gt=0"`
	SellQuantity decimal.Decimal `json:"sellQuantity" binding:"required,gt=0"`
	Notes        *string         `json:"notes"`
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := util.ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, *s)
	}
	return &d, nil
}

func optionalStatus(s *string) (*model.TradeStatus, error) {
	if s == nil {
		return nil, nil
	}
	status, err := domain.ParseTradeStatus(*s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r createTradeRequest) toInput() (calculator.NewTradeInput, error) {
	market, err := domain.ParseMarket(r.Market)
	if err != nil {
		return calculator.NewTradeInput{}, err
	}
	buyDate, err := util.ParseDate(r.BuyDate)
	if err != nil {
		return calculator.NewTradeInput{}, fmt.Errorf("%w: invalid buyDate %q", domain.ErrValidation, r.BuyDate)
	}
	sellDate, err := optionalDate(r.SellDate)
	if err != nil {
		return calculator.NewTradeInput{}, err
	}
	status, err := optionalStatus(r.Status)
	if err != nil {
		return calculator.NewTradeInput{}, err
	}

	return calculator.NewTradeInput{
		Market:       market,
		Symbol:       r.Symbol,
		CompanyName:  r.CompanyName,
		Currency:     r.Currency,
		BuyDate:      buyDate,
		BuyPrice:     r.BuyPrice,
		BuyQuantity:  r.BuyQuantity,
		SellDate:     sellDate,
		SellPrice:    r.SellPrice,
		SellQuantity: r.SellQuantity,
		Status:       status,
		Notes:        r.Notes,
	}, nil
}

func (r updateTradeRequest) toPatch() (calculator.TradePatch, error) {
	patch := calculator.TradePatch{
		Symbol:       r.Symbol,
		CompanyName:  r.CompanyName,
		Currency:     r.Currency,
		BuyPrice:     r.BuyPrice,
		BuyQuantity:  r.BuyQuantity,
		SellPrice:    r.SellPrice,
		SellQuantity: r.SellQuantity,
		Notes:        r.Notes,
	}
	if r.Market != nil {
		market, err := domain.ParseMarket(*r.Market)
		if err != nil {
			return calculator.TradePatch{}, err
		}
		patch.Market = &market
	}

	var err error
	if patch.BuyDate, err = optionalDate(r.BuyDate); err != nil {
		return calculator.TradePatch{}, err
	}
	if patch.SellDate, err = optionalDate(r.SellDate); err != nil {
		return calculator.TradePatch{}, err
	}
	if patch.Status, err = optionalStatus(r.Status); err != nil {
		return calculator.TradePatch{}, err
	}
	return patch, nil
}

func (m ApiHandler) createTrade(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	req := createTradeRequest{}
	if err := bindJson(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}
	in, err := req.toInput()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	trade, err := m.TradeService.CreateTrade(c, userID, in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusCreated, "Trade recorded successfully", newTradeResponse(*trade))
}

func (m ApiHandler) updateTrade(c *gin.Context) {
	tradeID, err := int64Param(c, "tradeID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	req := updateTradeRequest{}
	if err := bindJson(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	trade, err := m.TradeService.UpdateTrade(c, userID, tradeID, patch)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "Trade updated successfully", newTradeResponse(*trade))
}

func (m ApiHandler) sellTrade(c *gin.Context) {
	tradeID, err := int64Param(c, "tradeID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	req := sellTradeRequest{}
	if err := bindJson(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}
	sellDate, err := util.ParseDate(req.SellDate)
	if err != nil {
		returnErrorJson(fmt.Errorf("%w: invalid sellDate %q", domain.ErrValidation, req.SellDate), c)
		return
	}

	trade, err := m.TradeService.RecordSell(c, userID, tradeID, calculator.SellInput{
		SellDate:     sellDate,
		SellPrice:    req.SellPrice,
		SellQuantity: req.SellQuantity,
		Notes:        req.Notes,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "Sell recorded successfully", newTradeResponse(*trade))
}

func (m ApiHandler) getTrade(c *gin.Context) {
	tradeID, err := int64Param(c, "tradeID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	trade, err := m.TradeService.GetTrade(c, userID, tradeID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newTradeResponse(*trade))
}

func (m ApiHandler) deleteTrade(c *gin.Context) {
	tradeID, err := int64Param(c, "tradeID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := m.TradeService.DeleteTrade(c, userID, tradeID); err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "Trade deleted successfully", nil)
}

func (m ApiHandler) respondTradePage(c *gin.Context, filter repository.TradeListFilter, page domain.PageRequest) {
	out, err := m.TradeService.ListTrades(c, filter, page)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	returnOk(c, http.StatusOK, "", newPageResponse(*out, newTradeResponse))
}

func (m ApiHandler) listTrades(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	page, err := pageRequest(c, "buyDate")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	m.respondTradePage(c, repository.TradeListFilter{UserID: &userID}, page)
}

func (m ApiHandler) filterTrades(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	page, err := pageRequest(c, "buyDate")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	filter := repository.TradeListFilter{UserID: &userID}
	if raw := c.Query("market"); raw != "" {
		market, err := domain.ParseMarket(raw)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		filter.Market = &market
	}
	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseTradeStatus(raw)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		filter.Statuses = []model.TradeStatus{status}
	}

	m.respondTradePage(c, filter, page)
}

func (m ApiHandler) listTradesByStatus(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	status, err := domain.ParseTradeStatus(c.Param("status"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	page, err := pageRequest(c, "buyDate")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	m.respondTradePage(c, repository.TradeListFilter{
		UserID:   &userID,
		Statuses: []model.TradeStatus{status},
	}, page)
}

func (m ApiHandler) listTradesByDateRange(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	start, err := dateQuery(c, "startDate")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	end, err := dateQuery(c, "endDate")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	page, err := pageRequest(c, "buyDate")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	m.respondTradePage(c, repository.TradeListFilter{
		UserID:      &userID,
		BuyDateFrom: start,
		BuyDateTo:   end,
	}, page)
}

func (m ApiHandler) listAllTrades(c *gin.Context) {
	page, err := pageRequest(c, "createdAt")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	m.respondTradePage(c, repository.TradeListFilter{}, page)
}

func (m ApiHandler) listOpenPositions(c *gin.Context) {
	trades, err := m.TradeService.ListOpenPositions(c, c.Param("symbol"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newTradeResponses(trades))
}

func (m ApiHandler) getTradeSummary(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	summary, err := m.TradeService.GetSummary(c, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newTradeSummaryResponse(*summary))
}

func (m ApiHandler) exportTrades(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	data, err := m.TradeService.ExportTrades(c, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=trades-%d.csv", userID))
	c.Data(http.StatusOK, "text/csv", data)
}
