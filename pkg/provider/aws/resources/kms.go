package resources

import (
	"fmt"

	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/sanitization/aws"
)

const (
	KMS_KEY_TYPE   = "kms_key"
	KMS_ALIAS_TYPE = "kms_alias"
)

type (
	KmsKey struct {
		Name                string
		Description         string
		Enabled             bool
		EnableKeyRotation   bool
		KeyPolicy           *PolicyDocument
		KeySpec             string
		KeyUsage            string
		MultiRegion         bool
		PendingWindowInDays int
		Tags                map[string]string
	}

	KmsAlias struct {
		Name      string
		AliasName string
		TargetKey *KmsKey
	}
)

func NewKmsKey(baseName string, tags map[string]string) *KmsKey {
	key := &KmsKey{
		Name:        aws.KmsKeySanitizer.Apply(baseName + "-key"),
		Description: fmt.Sprintf("Encryption key for EBS volume %s", baseName),
		Tags:        tags,
	}
	key.Configure()
	return key
}

// Configure applies the provider defaults for a symmetric encryption key.
func (key *KmsKey) Configure() {
	key.Enabled = true
	key.MultiRegion = false
	key.KeySpec = "SYMMETRIC_DEFAULT"
	key.KeyUsage = "ENCRYPT_DECRYPT"
}

func NewKmsAlias(key *KmsKey) *KmsAlias {
	return &KmsAlias{
		Name:      aws.KmsAliasSanitizer.Apply(key.Name + "-alias"),
		AliasName: aws.KmsAliasSanitizer.Apply("alias/" + key.Name),
		TargetKey: key,
	}
}

// Id returns the id of the cloud resource
func (key *KmsKey) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     KMS_KEY_TYPE,
		Name:     key.Name,
	}
}

func (key *KmsKey) Properties() map[string]any {
	return map[string]any{
		"description":            key.Description,
		"enabled":                key.Enabled,
		"enable_key_rotation":    key.EnableKeyRotation,
		"key_policy":             key.KeyPolicy,
		"key_spec":               key.KeySpec,
		"key_usage":              key.KeyUsage,
		"multi_region":           key.MultiRegion,
		"pending_window_in_days": key.PendingWindowInDays,
		"tags":                   key.Tags,
	}
}

// ArnRef is the placeholder for this key's ARN, resolvable once the backend
// has realized the key.
func (key *KmsKey) ArnRef() construct.IaCValue {
	return construct.Ref(key.Id(), construct.ArnProperty)
}

// Id returns the id of the cloud resource
func (alias *KmsAlias) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     KMS_ALIAS_TYPE,
		Name:     alias.Name,
	}
}

func (alias *KmsAlias) Properties() map[string]any {
	return map[string]any{
		"alias_name": alias.AliasName,
		"target_key": construct.Ref(alias.TargetKey.Id(), construct.IdProperty),
	}
}
