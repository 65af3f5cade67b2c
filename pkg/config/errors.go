package config

import (
	"fmt"

	"github.com/stackmason/ebsplan/pkg/multierr"
)

// ValidationError carries every rule violation found in a Config. Validation
// never stops at the first failure, so a caller can fix all problems in one
// pass.
type ValidationError struct {
	Violations multierr.Error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Violations.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Violations
}
