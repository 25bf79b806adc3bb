package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/usecase/dashboard"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// DashboardController handles derived read-model endpoints.
type DashboardController struct {
	balanceUseCase *dashboard.GetBalanceUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(balanceUseCase *dashboard.GetBalanceUseCase) *DashboardController {
	return &DashboardController{balanceUseCase: balanceUseCase}
}

// Balance handles GET /dashboard/balance requests.
func (c *DashboardController) Balance(ctx *gin.Context) {
	output, err := c.balanceUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute balance",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output))
}
