package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	Reference string `json:"referenceNumber,omitempty"`
	Account   string `json:"accountCode,omitempty"`
	Line      int    `json:"lineIndex,omitempty"`
	// Totals are set for TRIAL_BALANCE_MISMATCH only.
	TotalDebits  string `json:"totalDebits,omitempty"`
	TotalCredits string `json:"totalCredits,omitempty"`
}

// respondError maps service errors onto HTTP statuses. Rule violations carry
// their kind so clients can react without parsing the message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, errorResponse{Error: "Failed to " + action})
		return
	}

	logger.Warn("Rejected request to "+action, slog.String("error", err.Error()))
	body := errorResponse{Error: err.Error()}
	var le *apperrors.LedgerError
	if errors.As(err, &le) {
		body.Kind = string(le.Kind)
		body.Reference = le.Reference
		body.Account = le.AccountCode
		body.Line = le.LineIndex
		if le.Kind == apperrors.KindTrialBalanceMismatch {
			body.TotalDebits = le.TotalDebits.StringFixed(2)
			body.TotalCredits = le.TotalCredits.StringFixed(2)
		}
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.Warn(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg + ": " + err.Error()})
}
