package multierr

import (
	"bytes"
	"errors"
	"fmt"
)

// Error collects multiple errors so that callers see every failure at once
// instead of fixing them one at a time.
type Error []error

func (e Error) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"

	case 1:
		return e[0].Error()

	default:
		buf := new(bytes.Buffer)
		fmt.Fprintf(buf, "%d errors occurred:", len(e))
		for _, err := range e {
			fmt.Fprintf(buf, `
	* %v`, err)
		}
		return buf.String()
	}
}

// Append mutates e, appending err. No-ops when err is nil, so it can be
// called unconditionally on the result of each check:
//
//	var errs Error
//	errs.Append(check())
func (e *Error) Append(err error) {
	switch {
	case e == nil:
		// nothing we can do without the pointer

	case err == nil:
		// no-op

	case *e == nil:
		*e = Error{err}

	default:
		*e = append(*e, err)
	}
}

// ErrOrNil converts e into a plain error. A typed nil Error compares non-nil
// as an error interface value, so callers must return through this instead
// of returning e directly. A single-element Error unwraps to its sole member.
func (e Error) ErrOrNil() error {
	switch len(e) {
	case 0:
		return nil

	case 1:
		return e[0]

	default:
		return e
	}
}

// Unwrap implements the interface used in [errors.Unwrap].
func (e Error) Unwrap() error {
	switch len(e) {
	case 0:
		return nil

	case 1:
		return e[0]

	default:
		return e[1:]
	}
}

// As implements the interface used in [errors.As] by iterating through the
// members, returning true on the first match.
func (e Error) As(target interface{}) bool {
	for _, err := range e {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

// Is implements the interface used in [errors.Is] by iterating through the
// members, returning true on the first match.
func (e Error) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
