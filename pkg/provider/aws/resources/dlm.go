package resources

import (
	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/sanitization/aws"
)

const DLM_LIFECYCLE_POLICY_TYPE = "dlm_lifecycle_policy"

type (
	DlmLifecyclePolicy struct {
		Name          string
		Description   string
		State         string
		ExecutionRole *IamRole
		ResourceTypes []string
		// TargetTags selects the volumes the policy snapshots; the planner
		// targets exactly the planned volume's Name tag.
		TargetTags map[string]string
		Schedule   DlmSchedule
		Tags       map[string]string
	}

	DlmSchedule struct {
		Name         string   `yaml:"name" json:"name"`
		Interval     int      `yaml:"interval" json:"interval"`
		IntervalUnit string   `yaml:"interval_unit" json:"interval_unit"`
		Times        []string `yaml:"times" json:"times"`
		RetainCount  int      `yaml:"retain_count" json:"retain_count"`
		CopyTags     bool     `yaml:"copy_tags" json:"copy_tags"`
	}
)

func NewDlmLifecyclePolicy(baseName string, role *IamRole, schedule DlmSchedule, targetTags map[string]string, tags map[string]string) *DlmLifecyclePolicy {
	return &DlmLifecyclePolicy{
		Name:          aws.DlmPolicySanitizer.Apply(baseName + "-lifecycle"),
		Description:   aws.DlmPolicySanitizer.Apply("Snapshot lifecycle for volume " + baseName),
		State:         "ENABLED",
		ExecutionRole: role,
		ResourceTypes: []string{"VOLUME"},
		TargetTags:    targetTags,
		Schedule:      schedule,
		Tags:          tags,
	}
}

// Id returns the id of the cloud resource
func (policy *DlmLifecyclePolicy) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     DLM_LIFECYCLE_POLICY_TYPE,
		Name:     policy.Name,
	}
}

func (policy *DlmLifecyclePolicy) Properties() map[string]any {
	return map[string]any{
		"description":    policy.Description,
		"state":          policy.State,
		"execution_role": construct.Ref(policy.ExecutionRole.Id(), construct.ArnProperty),
		"resource_types": policy.ResourceTypes,
		"target_tags":    policy.TargetTags,
		"schedule":       policy.Schedule,
		"tags":           policy.Tags,
	}
}
