package api

import (
	"net/http"

	"portfolioledger/internal/calculator"
	"portfolioledger/internal/domain"
	"portfolioledger/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type accreteHoldingRequest struct {
	Market      string          `json:"market" binding:"required"`
	Symbol      string          `json:"symbol" binding:"required,max=20"`
	CompanyName *string         `json:"companyName"`
	Currency    *string         `json:"currency" binding:"omitempty,max=10"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required,gt=0"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
}

type reduceHoldingRequest struct {
	Market   string          `json:"market" binding:"required"`
	Symbol   string          `json:"symbol" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required,gt=0"`
}

type updateHoldingPriceRequest struct {
	Market string          `json:"market" binding:"required"`
	Symbol string          `json:"symbol" binding:"required"`
	Price  decimal.Decimal `json:"price" binding:"required,gt=0"`
}

func holdingKey(userID int64, market, symbol string) (repository.HoldingKey, error) {
	m, err := domain.ParseMarket(market)
	if err != nil {
		return repository.HoldingKey{}, err
	}
	return repository.HoldingKey{
		UserID: userID,
		Symbol: symbol,
		Market: m,
	}, nil
}

func (m ApiHandler) listHoldings(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	holdings, err := m.HoldingService.ListHoldings(c, repository.HoldingListFilter{UserID: &userID})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newHoldingResponses(holdings))
}

func (m ApiHandler) listHoldingsPaged(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	page, err := pageRequest(c, "investedAmount")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := m.HoldingService.ListHoldingsPage(c, userID, page)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newPageResponse(*out, newHoldingResponse))
}

func (m ApiHandler) listHoldingsByMarket(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	market, err := domain.ParseMarket(c.Param("market"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	holdings, err := m.HoldingService.ListHoldings(c, repository.HoldingListFilter{
		UserID: &userID,
		Market: &market,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newHoldingResponses(holdings))
}

func (m ApiHandler) getHoldingSummary(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	summary, err := m.HoldingService.GetSummary(c, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newHoldingSummaryResponse(*summary))
}

func (m ApiHandler) getHolding(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	key, err := holdingKey(userID, c.Query("market"), c.Param("symbol"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	holding, err := m.HoldingService.GetHolding(c, key)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newHoldingResponse(*holding))
}

func (m ApiHandler) accreteHolding(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	req := accreteHoldingRequest{}
	if err := bindJson(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}
	market, err := domain.ParseMarket(req.Market)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	holding, err := m.HoldingService.Accrete(c, calculator.AccreteInput{
		UserID:      userID,
		Market:      market,
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Currency:    req.Currency,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "Holding updated successfully", newHoldingResponse(*holding))
}

func (m ApiHandler) reduceHolding(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	req := reduceHoldingRequest{}
	if err := bindJson(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}
	key, err := holdingKey(userID, req.Market, req.Symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	holding, err := m.HoldingService.Reduce(c, key, req.Quantity)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "Holding reduced successfully", newHoldingResponse(*holding))
}

func (m ApiHandler) updateHoldingPrice(c *gin.Context) {
	userID, err := int64Param(c, "userID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	req := updateHoldingPriceRequest{}
	if err := bindJson(c, &req); err != nil {
		returnErrorJson(err, c)
		return
	}
	key, err := holdingKey(userID, req.Market, req.Symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	holding, err := m.HoldingService.UpdateCurrentPrice(c, key, req.Price)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if holding == nil {
		returnOk(c, http.StatusOK, "No holding to update", nil)
		return
	}

	returnOk(c, http.StatusOK, "Price updated successfully", newHoldingResponse(*holding))
}

func (m ApiHandler) listHoldingsBySymbol(c *gin.Context) {
	symbol := c.Param("symbol")
	filter := repository.HoldingListFilter{Symbol: &symbol}
	if raw := c.Query("market"); raw != "" {
		market, err := domain.ParseMarket(raw)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		filter.Market = &market
	}

	holdings, err := m.HoldingService.ListHoldings(c, filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", newHoldingResponses(holdings))
}

func (m ApiHandler) listHolderIDs(c *gin.Context) {
	ids, err := m.HoldingService.ListHolderIDs(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", ids)
}

type refreshPricesResponse struct {
	AssetsRequested  int      `json:"assetsRequested"`
	AssetsPriced     int      `json:"assetsPriced"`
	HoldingsUpdated  int      `json:"holdingsUpdated"`
	UnpricedSymbols  []string `json:"unpricedSymbols"`
	FailedHoldingIDs []int64  `json:"failedHoldingIds"`
}

func (m ApiHandler) refreshPrices(c *gin.Context) {
	if m.PriceRefreshService == nil {
		returnErrorJsonCode(errPriceFeedDisabled, c, http.StatusServiceUnavailable)
		return
	}

	result, err := m.PriceRefreshService.RefreshPrices(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnOk(c, http.StatusOK, "", refreshPricesResponse{
		AssetsRequested:  result.AssetsRequested,
		AssetsPriced:     result.AssetsPriced,
		HoldingsUpdated:  result.HoldingsUpdated,
		UnpricedSymbols:  result.UnpricedSymbols,
		FailedHoldingIDs: result.FailedHoldingIDs,
	})
}
