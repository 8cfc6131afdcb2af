package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query layers
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingConflict     = errors.New("booking conflict")
	ErrInvalidInterval     = errors.New("invalid booking interval")
	ErrDurationExceeded    = errors.New("maximum booking duration exceeded")
	ErrForbidden           = errors.New("requester does not own this booking")
	ErrCancellationTooLate = errors.New("cancellation deadline has passed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
