package posting

import (
	"fmt"

	"github.com/hera-erp/core/internal/domain/core"
)

// Error code prefixes carried in Result.Errors. Dispatch never returns a
// Go error; callers inspect Errors before trusting Entries.
const (
	ErrCodeMalformed          = "MALFORMED_CODE"
	ErrCodeUnsupportedSubtype = "UNSUPPORTED_SUBTYPE"
	ErrCodeProcessorFault     = "PROCESSOR_FAULT"
	ErrCodeMissingInput       = "MISSING_INPUT"
)

// Result is the outcome of running a rule processor over one transaction.
// Failure is part of the signature: a processor reports problems here
// instead of panicking or returning a Go error. Partial tolerance is per
// line - an unrecognized line contributes an error and no entries while
// its siblings still process.
type Result struct {
	Entries []GLEntry `json:"gl_entries"`
	Errors  []string  `json:"errors"`
}

// OK returns true when the result carries no errors
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// AddEntries appends entries to the result
func (r *Result) AddEntries(entries ...GLEntry) {
	r.Entries = append(r.Entries, entries...)
}

// AddError appends a formatted error string to the result
func (r *Result) AddError(code, format string, args ...any) {
	r.Errors = append(r.Errors, code+": "+fmt.Sprintf(format, args...))
}

// FailureResult builds a result with no entries and one error
func FailureResult(code, format string, args ...any) Result {
	var r Result
	r.AddError(code, format, args...)
	return r
}

// RuleProcessor turns one business domain's transactions into GL entries.
// Implementations are pure: no I/O, no persistence, no shared mutable
// state, so concurrent calls for different transactions are safe.
type RuleProcessor interface {
	// Domain returns the smart-code domain segment this processor handles
	Domain() string
	// Process derives GL entries for the transaction. Lines are walked
	// exactly once, in the order supplied - later lines may depend on
	// running totals from earlier ones.
	Process(header *core.TransactionHeader, lines []core.TransactionLine, fc *FinanceContext) Result
}
