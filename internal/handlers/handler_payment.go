package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
	"github.com/SscSPs/sacco_ledger/internal/dto"
	"github.com/SscSPs/sacco_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler accepts payment confirmations and puts them on the notification stream.
type paymentHandler struct {
	publisher portssvc.PaymentPublisher
}

func registerPaymentRoutes(rg *gin.RouterGroup, publisher portssvc.PaymentPublisher) {
	h := &paymentHandler{publisher: publisher}

	payments := rg.Group("/payments", middleware.RequireRole(middleware.RoleSystemAdmin))
	{
		payments.POST("/confirmations", h.confirmPayment)
	}
}

// confirmPayment godoc
// @Summary Confirm a payment
// @Description Queues a completed mobile-money payment for the ledger and membership consumers
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.PaymentConfirmationRequest true "Payment confirmation"
// @Success 202 {object} dto.PaymentConfirmationResponse
// @Failure 400 {object} errorResponse "Invalid input"
// @Failure 503 {object} errorResponse "Notification stream not configured"
// @Security BearerAuth
// @Router /payments/confirmations [post]
func (h *paymentHandler) confirmPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if h.publisher == nil {
		logger.Error("Payment confirmation received but no publisher is configured")
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "Payment notifications are not available"})
		return
	}

	var req dto.PaymentConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "amount must be positive"})
		return
	}

	logger = logger.With(slog.String("payment_id", req.PaymentID), slog.String("account_reference", req.AccountReference))
	if err := h.publisher.PublishPaymentConfirmed(c.Request.Context(), req.ToDomain()); err != nil {
		respondError(c, logger, err, "queue payment confirmation")
		return
	}

	c.JSON(http.StatusAccepted, dto.PaymentConfirmationResponse{PaymentID: req.PaymentID, Status: "QUEUED"})
}
