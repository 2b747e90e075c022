package errors

// Error codes for standardized error responses
const (
	// Request errors
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeNotFound         = "not_found"

	// Data errors
	ErrCodeInsufficientData = "insufficient_data"
	ErrCodeStoreUnavailable = "store_unavailable"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
