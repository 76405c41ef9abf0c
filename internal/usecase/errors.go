package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every rule violation returned by a use case matches exactly
// one of these through errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrAlreadyAssigned    = errors.New("already assigned")
	ErrNoActiveAssignment = errors.New("no active assignment")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrOverPayment        = errors.New("over payment")
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
	ErrInvoiceVoided      = errors.New("invoice voided")
	ErrEmptyItems         = errors.New("empty items")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrValidation         = errors.New("validation error")
	ErrPaymentDeclined    = errors.New("payment declined")

	// ErrWorkLogNotRecorded is not a failure of the operation it comes with:
	// the state change was committed, only the audit entry is missing.
	ErrWorkLogNotRecorded = errors.New("work log not recorded")
)

// Refinements of ErrValidation.
var (
	ErrEmptyNote    = fmt.Errorf("empty note: %w", ErrValidation)
	ErrInvalidHours = fmt.Errorf("invalid hours: %w", ErrValidation)
)

// RuleError carries the kind of a rule violation plus a message specific to
// the action, so the console can show more than a generic failure banner.
type RuleError struct {
	Kind    error
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

func (e *RuleError) Unwrap() error {
	return e.Kind
}

func ruleErr(kind error, format string, args ...any) error {
	return &RuleError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFound(entity, id string) error {
	return ruleErr(ErrNotFound, "%s %s not found", entity, id)
}

func workLogNotRecorded(cause error) error {
	return ruleErr(ErrWorkLogNotRecorded, "change saved but the work log entry could not be recorded: %v", cause)
}

// IsAuditOnly reports whether err only signals a missing audit entry after a
// committed change.
func IsAuditOnly(err error) bool {
	return err != nil && errors.Is(err, ErrWorkLogNotRecorded)
}
