// Package outputs projects a realized plan into the published output set.
// Every optional output carries an explicit created flag so downstream
// consumers can branch on "deliberately absent" without guessing.
package outputs

import (
	"github.com/stackmason/ebsplan/pkg/backend"
	"github.com/stackmason/ebsplan/pkg/planner"
)

type (
	// Value is one published output. Created is false both for resources
	// the plan deliberately skipped and for intents the backend has not
	// realized yet; in either case Value is empty.
	Value struct {
		Created bool   `yaml:"created" json:"created"`
		Value   string `yaml:"value,omitempty" json:"value,omitempty"`
	}

	OutputSet struct {
		VolumeID         Value  `yaml:"volume_id" json:"volume_id"`
		VolumeArn        Value  `yaml:"volume_arn" json:"volume_arn"`
		VolumeSize       int    `yaml:"volume_size" json:"volume_size"`
		VolumeType       string `yaml:"volume_type" json:"volume_type"`
		Encrypted        bool   `yaml:"encrypted" json:"encrypted"`
		AvailabilityZone string `yaml:"availability_zone" json:"availability_zone"`
		KmsKeyID         Value  `yaml:"kms_key_id" json:"kms_key_id"`
		KmsKeyArn        Value  `yaml:"kms_key_arn" json:"kms_key_arn"`
		KmsAliasName     Value  `yaml:"kms_alias_name" json:"kms_alias_name"`
		LogGroupArn      Value  `yaml:"log_group_arn" json:"log_group_arn"`
		TrailArn         Value  `yaml:"trail_arn" json:"trail_arn"`
		AccessPolicyArn  Value  `yaml:"access_policy_arn" json:"access_policy_arn"`
	}
)

// NotCreated is the sentinel for an output whose resource does not exist.
func NotCreated() Value {
	return Value{}
}

func Of(v string) Value {
	return Value{Created: true, Value: v}
}

// Project renders the output set from a plan and the backend's (possibly
// partial) result. Static fields come from the plan; identifiers come from
// the backend and stay NotCreated until the backend realizes their intent.
func Project(plan *planner.Plan, result backend.Result) OutputSet {
	out := OutputSet{
		VolumeSize:       plan.Volume.Size,
		VolumeType:       plan.Volume.VolumeType,
		Encrypted:        plan.Volume.Encrypted,
		AvailabilityZone: plan.Volume.AvailabilityZone,
		KmsKeyID:         NotCreated(),
		KmsKeyArn:        NotCreated(),
		KmsAliasName:     NotCreated(),
		LogGroupArn:      NotCreated(),
		TrailArn:         NotCreated(),
		AccessPolicyArn:  NotCreated(),
	}

	if assigned, ok := result.Realized(planner.LogicalVolume); ok {
		out.VolumeID = Of(assigned.ID)
		out.VolumeArn = Of(assigned.Arn)
	}
	if plan.KmsKey != nil {
		if assigned, ok := result.Realized(planner.LogicalKmsKey); ok {
			out.KmsKeyID = Of(assigned.ID)
			out.KmsKeyArn = Of(assigned.Arn)
		}
	}
	if plan.KmsAlias != nil {
		out.KmsAliasName = Of(plan.KmsAlias.AliasName)
	}
	if plan.LogGroup != nil {
		if assigned, ok := result.Realized(planner.LogicalLogGroup); ok {
			out.LogGroupArn = Of(assigned.Arn)
		}
	}
	if plan.Trail != nil {
		if assigned, ok := result.Realized(planner.LogicalTrail); ok {
			out.TrailArn = Of(assigned.Arn)
		}
	}
	if plan.AccessPolicy != nil {
		if assigned, ok := result.Realized(planner.LogicalAccessPolicy); ok {
			out.AccessPolicyArn = Of(assigned.Arn)
		}
	}
	return out
}
