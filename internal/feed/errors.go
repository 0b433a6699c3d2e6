package feed

import "errors"

type Kind string

const (
	KindMissingOwner    Kind = "MissingOwner"
	KindInvalidPlan     Kind = "InvalidPlan"
	KindForbidden       Kind = "Forbidden"
	KindQuotaExceeded   Kind = "QuotaExceeded"
	KindValidationError Kind = "ValidationError"
	KindNotFound        Kind = "NotFound"
	KindNotAllowed      Kind = "NotAllowed"
)

// RuleError is an expected business-rule rejection. Callers branch on it; anything
// else coming out of the engine is an infrastructure fault.
type RuleError struct {
	Kind   Kind
	Reason string
}

func (e *RuleError) Error() string { return e.Reason }

// Is matches on Kind so errors.Is(err, ErrQuotaExceeded) holds for every plan message.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingOwner  = &RuleError{Kind: KindMissingOwner, Reason: "Missing owner."}
	ErrInvalidPlan   = &RuleError{Kind: KindInvalidPlan, Reason: "Invalid plan type."}
	ErrForbidden     = &RuleError{Kind: KindForbidden, Reason: "WELCOME pack is developer-controlled"}
	ErrQuotaExceeded = &RuleError{Kind: KindQuotaExceeded, Reason: "Plan quota exceeded."}
	ErrValidation    = &RuleError{Kind: KindValidationError, Reason: "Title, business name and category are required."}
	ErrNotFound      = &RuleError{Kind: KindNotFound, Reason: "Post not found."}
	ErrNotAllowed    = &RuleError{Kind: KindNotAllowed, Reason: "Not allowed."}
)

func quotaError(reason string) *RuleError {
	return &RuleError{Kind: KindQuotaExceeded, Reason: reason}
}

// AsRule extracts the business-rule rejection from err, if it is one.
func AsRule(err error) (*RuleError, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
