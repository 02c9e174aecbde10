package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrPropertyNotFound = errors.New("property not found")

	// Booking quote errors
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrStayTooShort       = errors.New("stay is shorter than the minimum stay")
	ErrStayTooLong        = errors.New("stay exceeds the maximum stay")
	ErrGuestCountExceeded = errors.New("guest count is outside property capacity")

	// Conversation errors
	ErrConversationNotFound = errors.New("conversation not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrNotParticipant       = errors.New("user is not a participant of the conversation")
	ErrEmptyContent         = errors.New("message content cannot be empty")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
