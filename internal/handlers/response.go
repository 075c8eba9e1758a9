package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/accounts_service/internal/apperrors"
	"github.com/SscSPs/accounts_service/internal/dto"
	"github.com/SscSPs/accounts_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// offeredFormats lists the representations every endpoint can produce; the
// first one wins when the client sends no Accept header.
var offeredFormats = []string{gin.MIMEJSON, gin.MIMEXML, gin.MIMEXML2}

func respond(c *gin.Context, code int, data any) {
	c.Negotiate(code, gin.Negotiate{Offered: offeredFormats, Data: data})
}

// respondList sends a bare array to JSON clients and a wrapped list to XML clients.
func respondList(c *gin.Context, code int, jsonData, xmlData any) {
	c.Negotiate(code, gin.Negotiate{Offered: offeredFormats, JSONData: jsonData, XMLData: xmlData})
}

// writeServiceError maps err to its HTTP status and writes the error body.
func writeServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	body := dto.ErrorResponse{
		Error:   err.Error(),
		Kind:    apperrors.Kind(err),
		Details: errorDetails(err),
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			body.Error = appErr.Message
		} else {
			body.Error = http.StatusText(status)
		}
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	respond(c, status, body)
}

func errorDetails(err error) dto.ErrorDetails {
	var (
		notFound     *apperrors.NotFoundError
		validation   *apperrors.ValidationError
		ownership    *apperrors.OwnershipMismatchError
		invalidAmt   *apperrors.InvalidAmountError
		insufficient *apperrors.InsufficientFundsError
	)
	switch {
	case errors.As(err, &notFound):
		return dto.ErrorDetails{"resource": notFound.Resource, "id": notFound.ID}
	case errors.As(err, &validation):
		return dto.ErrorDetails{"field": validation.Field, "reason": validation.Reason}
	case errors.As(err, &ownership):
		return dto.ErrorDetails{"accountId": ownership.AccountID, "ownerId": ownership.OwnerID}
	case errors.As(err, &invalidAmt):
		return dto.ErrorDetails{"amount": invalidAmt.Amount, "reason": invalidAmt.Reason}
	case errors.As(err, &insufficient):
		return dto.ErrorDetails{
			"accountId": insufficient.AccountID,
			"balance":   insufficient.Balance,
			"amount":    insufficient.Amount,
		}
	default:
		return nil
	}
}
