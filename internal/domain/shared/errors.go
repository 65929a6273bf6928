package shared

// DomainError is an error with a stable machine-readable code. Callers match
// on the sentinels below with errors.Is, or unwrap with errors.As to read
// the code.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError builds a DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Sentinel errors shared across the domain. Wrap them with %w and a
// context-specific message at the call site.
var (
	ErrNotFound             = NewDomainError("NOT_FOUND", "record not found")
	ErrAlreadyExists        = NewDomainError("ALREADY_EXISTS", "record already exists")
	ErrInvalidInput         = NewDomainError("INVALID_INPUT", "invalid input")
	ErrConcurrencyConflict  = NewDomainError("CONCURRENCY_CONFLICT", "record was modified by another process")
	ErrInvalidState         = NewDomainError("INVALID_STATE", "operation not allowed in current state")
	ErrOrganizationMismatch = NewDomainError("ORGANIZATION_MISMATCH", "record belongs to a different organization")
)
