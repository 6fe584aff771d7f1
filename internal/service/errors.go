package service

import "errors"

// Base error kinds. Specific validation failures wrap one of these so
// callers can classify with errors.Is without matching message text.
//
//   - ErrInvalidArgument: the input itself violates a rule; a client error.
//   - ErrIllegalState: well-formed input, but the target entity or its
//     dependents forbid the transition; a conflict.
//   - ErrNotFound: a referenced entity id does not resolve.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")
	ErrNotFound        = errors.New("not found")
)
