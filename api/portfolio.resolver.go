package api

import (
	"net/http"

	"portfolioledger/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// portfolioResponse is the per-user rollup of the holdings book. It is
// derived on read, so a user with no holdings gets zeros.
type portfolioResponse struct {
	UserID            int64           `json:"userId"`
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	CurrentValue      decimal.Decimal `json:"currentValue"`
	TotalReturns      decimal.Decimal `json:"totalReturns"`
	ReturnsPercentage decimal.Decimal `json:"returnsPercentage"`
}

func newPortfolioResponse(s domain.HoldingSummary) portfolioResponse {
	return portfolioResponse{
		UserID:            s.UserID,
		TotalInvested:     s.TotalInvestedAmount,
		CurrentValue:      s.TotalCurrentValue,
		TotalReturns:      s.TotalUnrealizedPl,
		ReturnsPercentage: s.TotalUnrealizedPlPercentage,
	}
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
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

	returnOk(c, http.StatusOK, "", newPortfolioResponse(*summary))
}
