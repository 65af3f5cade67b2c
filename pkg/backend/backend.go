// Package backend defines the boundary to the provisioning system that
// realizes planned intents. The planner core never talks to a cloud API;
// it hands an ordered intent sequence to a Backend and gets identifiers
// back. Retry and backoff live behind this interface, never in the core.
package backend

import (
	"context"
	"fmt"

	"github.com/stackmason/ebsplan/pkg/construct"
)

type (
	Backend interface {
		// Apply realizes the given intents. The result may be partial:
		// intents missing from the result are pending or failed. Apply
		// must not reorder intents; the sequence is already dependency
		// ordered.
		Apply(ctx context.Context, intents []construct.ResourceIntent) (Result, error)
	}

	// Result maps logical names to the identifiers the backend assigned.
	Result struct {
		Resources map[string]Assigned
	}

	// Assigned holds the backend-assigned identity of one realized resource.
	Assigned struct {
		ID     string
		Arn    string
		Fields map[string]string
	}
)

// Realized returns the assignment for the given logical name, reporting
// whether the backend realized that intent.
func (r Result) Realized(logicalName string) (Assigned, bool) {
	assigned, ok := r.Resources[logicalName]
	return assigned, ok
}

// BackendError names the intent the backend could not realize. The wrapped
// error is provider-specific and passed through uninterpreted.
type BackendError struct {
	LogicalName string
	Err         error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend failed to realize %q: %v", e.LogicalName, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
