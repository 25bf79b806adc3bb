package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/usecase/bot"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// BotController handles structured chat-bot intent endpoints.
type BotController struct {
	applyIntentUseCase *bot.ApplyIntentUseCase
}

// NewBotController creates a new bot controller instance.
func NewBotController(applyIntentUseCase *bot.ApplyIntentUseCase) *BotController {
	return &BotController{applyIntentUseCase: applyIntentUseCase}
}

// ApplyIntent handles POST /bot/intents requests. The request carries a
// structured intent already extracted by the external message parser.
func (c *BotController) ApplyIntent(ctx *gin.Context) {
	var request dto.BotIntentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.applyIntentUseCase.Execute(ctx.Request.Context(), bot.Intent{
		Kind:        bot.IntentKind(request.Kind),
		Type:        entity.TransactionType(request.Type),
		Amount:      request.Amount,
		Category:    request.Category,
		Date:        request.Date,
		Description: request.Description,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, bot.ErrUnknownIntent) {
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	response := dto.BotIntentResponse{}
	if output.Transaction != nil {
		tx := dto.ToTransactionResponse(output.Transaction)
		response.Transaction = &tx
	}
	if output.Balance != nil {
		balance := dto.ToBalanceResponse(output.Balance)
		response.Balance = &balance
	}

	ctx.JSON(http.StatusOK, response)
}
