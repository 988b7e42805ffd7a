package usecase

import "errors"

// DomainError is a failure caused by the caller's input or by the state of the data.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is a failure of a collaborator (store, queue, network).
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

const (
	CodeLeadPersistFailed  = "LEAD_PERSIST_FAILED"
	CodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	CodeStatsUnavailable   = "STATS_UNAVAILABLE"
	CodeStoreFailure       = "STORE_FAILURE"

	CodeValidation      = "VALIDATION_ERROR"
	CodeProductNotFound = "PRODUCT_NOT_FOUND"
	CodeLeadNotFound    = "LEAD_NOT_FOUND"
	CodeDuplicateSlug   = "DUPLICATE_SLUG"
	CodeInvalidStatus   = "INVALID_STATUS"
)
