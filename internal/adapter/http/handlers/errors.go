package handlers

import (
	"errors"
	"net/http"

	"laporan_zakat/internal/usecase"
	"laporan_zakat/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload   = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid message payload", http.StatusBadRequest)
	errMissingAttachment     = pkg.NewDomainErrorSimple("INVALID_ATTACHMENT_INPUT", "Multipart field \"file\" is required", http.StatusBadRequest)
	errMissingToken          = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Kode relawan atau password salah.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found or expired", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found or expired", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmptyUtterance):
		return pkg.NewDomainErrorSimple("EMPTY_MESSAGE", "Message text is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionBusy):
		return pkg.NewDomainErrorSimple("SESSION_BUSY", "A previous message is still being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAttachmentExpected):
		return pkg.NewDomainErrorSimple("ATTACHMENT_EXPECTED", "Upload the proof of transfer instead of sending text", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAwaitingAttachment):
		return pkg.NewDomainErrorSimple("NOT_AWAITING_ATTACHMENT", "No attachment is expected right now", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapStoreError keeps the store's user-facing message.
func mapStoreError(err error) *pkg.AppError {
	msg := err.Error()
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", msg, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", msg, http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", msg, http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", msg, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", msg, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
