package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/usecase"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Code: code, Message: message})
}

// writeUsecaseError maps use case errors onto HTTP statuses.
// Technical messages carry store details, so only the short message reaches the client.
func writeUsecaseError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeErrorResponse(w, domainStatus(de.Code), de.Code, de.Message)
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		logger.Error("request failed", zap.String("code", te.Code), zap.Error(err))
		writeErrorResponse(w, http.StatusBadGateway, te.Code, te.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
}

func domainStatus(code string) int {
	switch code {
	case usecase.CodeProductNotFound, usecase.CodeLeadNotFound:
		return http.StatusNotFound
	case usecase.CodeDuplicateSlug:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
