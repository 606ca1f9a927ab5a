package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfolioledger/internal/domain"
	"portfolioledger/internal/logger"
	"portfolioledger/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                  *sql.DB
	TradeService        service.TradeService
	HoldingService      service.HoldingService
	PriceRefreshService service.PriceRefreshService
}

var errPriceFeedDisabled = errors.New("price refresh is not configured")

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func returnOk(c *gin.Context, code int, message string, data any) {
	c.JSON(code, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c)
	if code >= 500 {
		log.Errorf("request failed: %v", err)
	} else {
		log.Infof("request rejected (%d): %v", code, err)
	}
	c.AbortWithStatusJSON(code, envelope{
		Success: false,
		Message: err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddleware attaches a request scoped logger to the gin context
// under logger.ContextKey, so handlers and services can pull it back out
// with logger.FromContext(c).
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := zap.S().With(
		"requestID", requestID,
		"method", c.Request.Method,
		"route", c.FullPath(),
	)
	c.Set(logger.ContextKey, log)
	c.Header("X-Request-ID", requestID)

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
	c.Writer = w

	start := time.Now().UTC()
	c.Next()

	log.Infow("handled request",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"responseBytes", w.body.Len(),
		"ip", c.ClientIP(),
	)
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	// money and quantities go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(c *gin.Context) {
		returnOk(c, http.StatusOK, "welcome to portfolio ledger", nil)
	})

	trades := router.Group("/api/v1/trades")
	trades.POST("/user/:userID", m.createTrade)
	trades.GET("/user/:userID", m.listTrades)
	trades.GET("/user/:userID/filter", m.filterTrades)
	trades.GET("/user/:userID/status/:status", m.listTradesByStatus)
	trades.GET("/user/:userID/date-range", m.listTradesByDateRange)
	trades.GET("/user/:userID/summary", m.getTradeSummary)
	trades.GET("/user/:userID/export", m.exportTrades)
	trades.GET("/:tradeID/user/:userID", m.getTrade)
	trades.PUT("/:tradeID/user/:userID", m.updateTrade)
	trades.POST("/:tradeID/user/:userID/sell", m.sellTrade)
	trades.DELETE("/:tradeID/user/:userID", m.deleteTrade)
	trades.GET("/admin/all", m.listAllTrades)
	trades.GET("/admin/open/:symbol", m.listOpenPositions)

	holdings := router.Group("/api/v1/holdings")
	holdings.GET("/user/:userID", m.listHoldings)
	holdings.GET("/user/:userID/paged", m.listHoldingsPaged)
	holdings.GET("/user/:userID/market/:market", m.listHoldingsByMarket)
	holdings.GET("/user/:userID/summary", m.getHoldingSummary)
	holdings.GET("/user/:userID/symbol/:symbol", m.getHolding)
	holdings.POST("/user/:userID", m.accreteHolding)
	holdings.POST("/user/:userID/reduce", m.reduceHolding)
	holdings.PUT("/user/:userID/price", m.updateHoldingPrice)
	holdings.GET("/admin/symbol/:symbol", m.listHoldingsBySymbol)
	holdings.GET("/admin/users-with-holdings", m.listHolderIDs)
	holdings.POST("/admin/refresh-prices", m.refreshPrices)

	router.GET("/api/v1/portfolio/user/:userID", m.getPortfolio)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}
