package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

const (
	GeneralInquiry = "General Inquiry"
	UnknownProduct = "Unknown Product"

	defaultNotifyTimeout = 10 * time.Second
)

type SubmitLeadUseCase struct {
	Leads         entity.LeadRepository
	Products      entity.ProductRepository
	Dispatcher    NotificationDispatcher
	NotifyTimeout time.Duration
	Logger        *zap.Logger
}

func NewSubmitLeadUseCase(
	leads entity.LeadRepository,
	products entity.ProductRepository,
	dispatcher NotificationDispatcher,
	notifyTimeout time.Duration,
	logger *zap.Logger,
) *SubmitLeadUseCase {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmitLeadUseCase{
		Leads:         leads,
		Products:      products,
		Dispatcher:    dispatcher,
		NotifyTimeout: notifyTimeout,
		Logger:        logger,
	}
}

// Execute stores the lead and then notifies operators.
// Only the store write can fail the submission; notification problems are logged and counted.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, req entity.LeadRequest) (*entity.Lead, error) {
	req = NormalizeLeadInput(req)

	lead, err := uc.Leads.Create(ctx, &req)
	if err != nil {
		leadsSubmittedTotal.WithLabelValues("persist_failed").Inc()
		uc.Logger.Error("lead persist failed", zap.Error(err), zap.Int64p("product_id", req.ProductID))
		return nil, &TechnicalError{
			Code:    CodeLeadPersistFailed,
			Message: "could not save your request",
			Err:     err,
		}
	}
	leadsSubmittedTotal.WithLabelValues("stored").Inc()
	uc.Logger.Info("lead stored", zap.String("lead_id", lead.ID), zap.Int64p("product_id", lead.ProductID))

	uc.notify(ctx, *lead)

	return lead, nil
}

func (uc *SubmitLeadUseCase) notify(ctx context.Context, lead entity.Lead) {
	if uc.Dispatcher == nil {
		uc.Logger.Warn("no notification dispatcher configured", zap.String("lead_id", lead.ID))
		return
	}

	// The visitor may disconnect once the row exists; delivery keeps its own timeout.
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.NotifyTimeout)
	defer cancel()

	n := entity.LeadNotification{
		Lead:        lead,
		ProductName: uc.productName(nctx, lead.ProductID),
	}
	if err := uc.Dispatcher.Dispatch(nctx, n); err != nil {
		uc.Logger.Warn("lead notification failed", zap.String("lead_id", lead.ID), zap.Error(err))
	}
}

func (uc *SubmitLeadUseCase) productName(ctx context.Context, id *int64) string {
	if id == nil {
		return GeneralInquiry
	}
	if uc.Products == nil {
		return UnknownProduct
	}
	p, err := uc.Products.FindByID(ctx, *id)
	if err != nil || p == nil {
		uc.Logger.Debug("product name lookup failed", zap.Int64("product_id", *id), zap.Error(err))
		return UnknownProduct
	}
	return p.Name
}
