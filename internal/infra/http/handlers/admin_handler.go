package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
	"github.com/xavierca1/nicsan-site/internal/infra/http/middleware"
	"github.com/xavierca1/nicsan-site/internal/usecase"
	"github.com/xavierca1/nicsan-site/pkg/logging"
)

// AdminHandler serves the back-office API. Routes are mounted behind middleware.AdminJWT.
type AdminHandler struct {
	Leads    *usecase.ManageLeadsUseCase
	Stats    *usecase.LeadStatsUseCase
	Products *usecase.ManageProductsUseCase
	Logger   *zap.Logger
}

func NewAdminHandler(
	leads *usecase.ManageLeadsUseCase,
	stats *usecase.LeadStatsUseCase,
	products *usecase.ManageProductsUseCase,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		Leads:    leads,
		Stats:    stats,
		Products: products,
		Logger:   logging.OrNop(logger),
	}
}

type LeadListResponse struct {
	Leads []entity.Lead `json:"leads"`
	Count int           `json:"count"`
}

// ListLeads handles GET /api/admin/leads?status=&product_id=&limit=
func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.LeadFilter{Status: entity.LeadStatus(q.Get("status"))}

	if v := q.Get("product_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "product_id must be an integer")
			return
		}
		filter.ProductID = &id
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "limit must be an integer")
			return
		}
		filter.Limit = limit
	}

	leads, err := h.Leads.List(r.Context(), filter)
	if err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, LeadListResponse{Leads: leads, Count: len(leads)})
}

func (h *AdminHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Leads.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// UpdateLeadStatus handles PATCH /api/admin/leads/{id}.
func (h *AdminHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var update entity.LeadStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	lead, err := h.Leads.UpdateStatus(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}
	h.audit(r, "lead status updated", zap.String("lead_id", lead.ID), zap.String("status", string(lead.Status)))
	writeJSON(w, http.StatusOK, lead)
}

func (h *AdminHandler) LeadStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Execute(r.Context())
	if err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input usecase.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	p, err := h.Products.Create(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}
	h.audit(r, "product created", zap.Int64("product_id", p.ID), zap.String("slug", p.Slug))
	writeJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var input usecase.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	p, err := h.Products.Update(r.Context(), id, input)
	if err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}
	h.audit(r, "product updated", zap.Int64("product_id", p.ID), zap.String("slug", p.Slug))
	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct soft-deletes: the row stays and existing leads keep their reference.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := h.Products.Deactivate(r.Context(), id); err != nil {
		writeUsecaseError(w, h.Logger, err)
		return
	}
	h.audit(r, "product deactivated", zap.Int64("product_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// audit records back-office writes with the operator from the admin token.
func (h *AdminHandler) audit(r *http.Request, msg string, fields ...zap.Field) {
	operator := "unknown"
	if op, ok := middleware.OperatorFromContext(r.Context()); ok {
		operator = op.Subject
	}
	h.Logger.Info(msg, append([]zap.Field{zap.String("operator", operator)}, fields...)...)
}

func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "product id must be a positive integer")
		return 0, false
	}
	return id, true
}
