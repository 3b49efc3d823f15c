package apperr

import "errors"

type Kind int

const (
	Unexpected Kind = iota
	Validation
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "unexpected"
	}
}

// Error is a domain error carrying the category the transport layer maps to a status code.
// Domain packages declare package-level *Error sentinels so callers can match with errors.Is.
type Error struct {
	Kind    Kind
	Message string
}

func New(k Kind, msg string) *Error { return &Error{Kind: k, Message: msg} }

func (e *Error) Error() string { return e.Message }

// KindOf reports the kind of the first *Error in err's chain, or Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

// Message returns the user-facing message for domain errors and "" for anything else.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
