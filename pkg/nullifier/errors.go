package nullifier

import "errors"

// Kind is the stable identifier callers branch on and log. It never changes
// between releases.
type Kind string

const (
	KindInvalidAddress         Kind = "InvalidAddress"
	KindInvalidXPAmount        Kind = "InvalidXPAmount"
	KindInvalidSeason          Kind = "InvalidSeason"
	KindInvalidSecret          Kind = "InvalidSecret"
	KindInvalidInputsArray     Kind = "InvalidInputsArray"
	KindInvalidNullifierFormat Kind = "InvalidNullifierFormat"
	KindInvalidPlayerAddress   Kind = "InvalidPlayerAddress"
	KindEntropyUnavailable     Kind = "EntropyUnavailable"
	KindUnknownHashScheme      Kind = "UnknownHashScheme"
)

type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

// Kind returns the stable identifier of the error.
func (e *kindError) Kind() Kind { return e.kind }

// Generation errors
var (
	ErrInvalidAddress         error = &kindError{KindInvalidAddress, "invalid address format"}
	ErrInvalidXPAmount        error = &kindError{KindInvalidXPAmount, "invalid XP amount"}
	ErrInvalidSeason          error = &kindError{KindInvalidSeason, "invalid season"}
	ErrInvalidSecret          error = &kindError{KindInvalidSecret, "invalid secret"}
	ErrInvalidNullifierFormat error = &kindError{KindInvalidNullifierFormat, "invalid nullifier format"}
	ErrEntropy                error = &kindError{KindEntropyUnavailable, "random source failed"}
	ErrUnknownHashScheme      error = &kindError{KindUnknownHashScheme, "unknown hash scheme"}
)

// KindOf extracts the Kind carried by err, looking through wrapping.
// It returns the empty Kind for errors that did not originate here.
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return ""
}
