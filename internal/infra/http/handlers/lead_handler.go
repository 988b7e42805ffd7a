package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
	"github.com/xavierca1/nicsan-site/internal/usecase"
	"github.com/xavierca1/nicsan-site/pkg/logging"
)

type LeadSubmitter interface {
	Execute(ctx context.Context, req entity.LeadRequest) (*entity.Lead, error)
}

var _ LeadSubmitter = (*usecase.SubmitLeadUseCase)(nil)

type LeadHandler struct {
	Submitter LeadSubmitter
	Logger    *zap.Logger
}

func NewLeadHandler(submitter LeadSubmitter, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		Submitter: submitter,
		Logger:    logging.OrNop(logger),
	}
}

type CaptureLeadResponse struct {
	Success bool         `json:"success"`
	Lead    *entity.Lead `json:"lead"`
}

// CaptureLead handles POST /api/leads. Every field is optional.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var req entity.LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	lead, err := h.Submitter.Execute(r.Context(), req)
	if err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, CaptureLeadResponse{Success: true, Lead: lead})
}

// RateLimited is the JSON rejection used with middleware.RateLimit.
func RateLimited(w http.ResponseWriter, _ *http.Request) {
	writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
}
