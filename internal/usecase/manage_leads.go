package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

const (
	defaultLeadListLimit = 50
	maxLeadListLimit     = 500
)

// ManageLeadsUseCase backs the back-office lead workflow.
type ManageLeadsUseCase struct {
	Leads  entity.LeadRepository
	Logger *zap.Logger
}

func NewManageLeadsUseCase(leads entity.LeadRepository, logger *zap.Logger) *ManageLeadsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManageLeadsUseCase{Leads: leads, Logger: logger}
}

// List returns leads newest first. The limit is clamped to a sane window.
func (uc *ManageLeadsUseCase) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, &DomainError{Code: CodeInvalidStatus, Message: "unknown status filter", Err: entity.ErrInvalidStatus}
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultLeadListLimit
	case filter.Limit > maxLeadListLimit:
		filter.Limit = maxLeadListLimit
	}

	leads, err := uc.Leads.List(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: CodeStoreFailure, Message: "could not list leads", Err: err}
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}

func (uc *ManageLeadsUseCase) Get(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, leadStoreError(err, "could not load lead")
	}
	return lead, nil
}

func (uc *ManageLeadsUseCase) UpdateStatus(ctx context.Context, id string, update entity.LeadStatusUpdate) (*entity.Lead, error) {
	if errs := ValidateStatusUpdate(update); len(errs) > 0 {
		de := validationDomainError(errs)
		if !update.Status.Valid() {
			de.Code = CodeInvalidStatus
			de.Err = entity.ErrInvalidStatus
		}
		return nil, de
	}

	lead, err := uc.Leads.UpdateStatus(ctx, id, update)
	if err != nil {
		return nil, leadStoreError(err, "could not update lead")
	}
	uc.Logger.Info("lead status updated", zap.String("lead_id", id), zap.String("status", string(update.Status)))
	return lead, nil
}

func leadStoreError(err error, msg string) error {
	if errors.Is(err, entity.ErrLeadNotFound) {
		return &DomainError{Code: CodeLeadNotFound, Message: "lead not found", Err: err}
	}
	return &TechnicalError{Code: CodeStoreFailure, Message: msg, Err: err}
}
