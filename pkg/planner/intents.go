package planner

import (
	"sort"

	"github.com/stackmason/ebsplan/pkg/construct"
)

// Graph exposes the underlying resource graph, mainly for inspection and
// tests.
func (plan *Plan) Graph() *construct.ResourceGraph {
	return plan.graph
}

// LogicalNameOf returns the logical name assigned to the given resource id,
// or "" when the id was not planned.
func (plan *Plan) LogicalNameOf(id construct.ResourceId) string {
	return plan.logicalNames[id]
}

// Intents renders the plan as the ordered intent sequence handed to the
// backend: every dependency appears before its dependents, and the order is
// stable across runs for the same Config.
func (plan *Plan) Intents() ([]construct.ResourceIntent, error) {
	order, err := plan.graph.TopologicalSort()
	if err != nil {
		return nil, &InvariantViolation{Cause: err}
	}

	intents := make([]construct.ResourceIntent, 0, len(order))
	for _, id := range order {
		logicalName, ok := plan.logicalNames[id]
		if !ok {
			return nil, &InvariantViolation{Msg: "resource " + id.String() + " has no logical name"}
		}
		resource := plan.graph.GetResource(id)
		if resource == nil {
			return nil, &InvariantViolation{Msg: "resource " + id.String() + " missing from graph"}
		}

		deps := plan.graph.Dependencies(id)
		dependsOn := make([]string, 0, len(deps))
		for _, dep := range deps {
			depName, ok := plan.logicalNames[dep]
			if !ok {
				return nil, &InvariantViolation{Msg: "dependency " + dep.String() + " of " + id.String() + " was not planned"}
			}
			dependsOn = append(dependsOn, depName)
		}
		sort.Strings(dependsOn)

		intents = append(intents, construct.ResourceIntent{
			Kind:        id.Type,
			LogicalName: logicalName,
			Fields:      resource.Properties(),
			DependsOn:   dependsOn,
		})
	}
	return intents, nil
}

// checkInvariants verifies the structural guarantees the rest of the system
// relies on. Failures here indicate a planner bug, not bad input.
func (plan *Plan) checkInvariants() error {
	if plan.Volume == nil {
		return &InvariantViolation{Msg: "plan has no volume"}
	}
	if !plan.Volume.Encrypted {
		return &InvariantViolation{Msg: "planned volume is not encrypted"}
	}
	if plan.Volume.KmsKeyId.IsLiteral() && plan.Volume.KmsKeyId.Property == "" {
		return &InvariantViolation{Msg: "planned volume is bound to no encryption key"}
	}
	// Rendering walks every dependency edge, so a dangling reference or a
	// cycle surfaces here.
	if _, err := plan.Intents(); err != nil {
		return err
	}
	return nil
}
