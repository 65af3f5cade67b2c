package resources

import (
	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/sanitization/aws"
)

const (
	IAM_ROLE_TYPE        = "iam_role"
	IAM_POLICY_TYPE      = "iam_policy"
	IAM_ROLE_POLICY_TYPE = "iam_role_policy"
	VERSION              = "2012-10-17"
)

var roleSanitizer = aws.IamRoleSanitizer
var policySanitizer = aws.IamPolicySanitizer

// DLM_ASSUME_ROLE_POLICY restricts role assumption to the Data Lifecycle
// Manager service principal.
var DLM_ASSUME_ROLE_POLICY = &PolicyDocument{
	Version: VERSION,
	Statement: []StatementEntry{
		{
			Action: []string{"sts:AssumeRole"},
			Principal: &Principal{
				Service: "dlm.amazonaws.com",
			},
			Effect: "Allow",
		},
	},
}

type (
	IamRole struct {
		Name                string
		AssumeRolePolicyDoc *PolicyDocument
		Tags                map[string]string
	}

	// IamPolicy is a standalone customer-managed policy.
	IamPolicy struct {
		Name   string
		Policy *PolicyDocument
		Tags   map[string]string
	}

	// IamRolePolicy is a policy inlined into a role rather than attached as
	// a managed policy.
	IamRolePolicy struct {
		Name   string
		Role   *IamRole
		Policy *PolicyDocument
	}

	PolicyDocument struct {
		Version   string           `yaml:"version" json:"Version"`
		Statement []StatementEntry `yaml:"statement" json:"Statement"`
	}

	StatementEntry struct {
		Effect    string               `yaml:"effect" json:"Effect"`
		Action    []string             `yaml:"action" json:"Action"`
		Resource  []construct.IaCValue `yaml:"resource,omitempty" json:"Resource,omitempty"`
		Principal *Principal           `yaml:"principal,omitempty" json:"Principal,omitempty"`
		Condition *Condition           `yaml:"condition,omitempty" json:"Condition,omitempty"`
	}

	Principal struct {
		Service string               `yaml:"service,omitempty" json:"Service,omitempty"`
		AWS     []construct.IaCValue `yaml:"aws,omitempty" json:"AWS,omitempty"`
	}

	Condition struct {
		StringEquals map[string]construct.IaCValue `yaml:"string_equals,omitempty" json:"StringEquals,omitempty"`
		Bool         map[string]string             `yaml:"bool,omitempty" json:"Bool,omitempty"`
	}
)

func NewIamRole(baseName string, suffix string, trust *PolicyDocument, tags map[string]string) *IamRole {
	return &IamRole{
		Name:                roleSanitizer.Apply(baseName + suffix),
		AssumeRolePolicyDoc: trust,
		Tags:                tags,
	}
}

func NewIamPolicy(baseName string, suffix string, policy *PolicyDocument, tags map[string]string) *IamPolicy {
	return &IamPolicy{
		Name:   policySanitizer.Apply(baseName + suffix),
		Policy: policy,
		Tags:   tags,
	}
}

func NewIamRolePolicy(baseName string, suffix string, role *IamRole, policy *PolicyDocument) *IamRolePolicy {
	return &IamRolePolicy{
		Name:   policySanitizer.Apply(baseName + suffix),
		Role:   role,
		Policy: policy,
	}
}

func CreateAllowPolicyDocument(actions []string, resources []construct.IaCValue) *PolicyDocument {
	return &PolicyDocument{
		Version: VERSION,
		Statement: []StatementEntry{
			{
				Effect:   "Allow",
				Action:   actions,
				Resource: resources,
			},
		},
	}
}

// Id returns the id of the cloud resource
func (role *IamRole) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     IAM_ROLE_TYPE,
		Name:     role.Name,
	}
}

func (role *IamRole) Properties() map[string]any {
	return map[string]any{
		"role_name":          role.Name,
		"assume_role_policy": role.AssumeRolePolicyDoc,
		"tags":               role.Tags,
	}
}

// Id returns the id of the cloud resource
func (policy *IamPolicy) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     IAM_POLICY_TYPE,
		Name:     policy.Name,
	}
}

func (policy *IamPolicy) Properties() map[string]any {
	return map[string]any{
		"policy_name": policy.Name,
		"policy":      policy.Policy,
		"tags":        policy.Tags,
	}
}

// Id returns the id of the cloud resource
func (rp *IamRolePolicy) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     IAM_ROLE_POLICY_TYPE,
		Name:     rp.Name,
	}
}

func (rp *IamRolePolicy) Properties() map[string]any {
	return map[string]any{
		"policy_name": rp.Name,
		"role":        construct.Ref(rp.Role.Id(), construct.NameProperty),
		"policy":      rp.Policy,
	}
}
