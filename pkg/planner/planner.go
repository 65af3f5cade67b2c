// Package planner derives the resource intent graph for one encrypted
// volume configuration. Planning is pure: the same Config and Environment
// always produce a structurally identical plan, and planning cannot fail for
// a Config that passed validation.
package planner

import (
	"github.com/stackmason/ebsplan/pkg/config"
	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/provider/aws/resources"
)

// Logical names identify each intent to the backend and in outputs,
// independent of the display names resources carry.
const (
	LogicalKmsKey          = "kms_key"
	LogicalKmsAlias        = "kms_alias"
	LogicalVolume          = "volume"
	LogicalLogGroup        = "log_group"
	LogicalTrail           = "trail"
	LogicalAccessPolicy    = "access_policy"
	LogicalInitialSnapshot = "initial_snapshot"
	LogicalLifecyclePolicy = "lifecycle_policy"
	LogicalDlmRole         = "dlm_role"
	LogicalDlmRolePolicy   = "dlm_role_policy"
)

// Fixed provenance tags stamped on every planned resource.
const (
	managedByTag   = "managed-by"
	managedByValue = "ebsplan"
	moduleTag      = "module"
	moduleValue    = "ebs-encrypted-volume"
)

type (
	// Environment carries the ambient provider context as explicit inputs,
	// so planning needs no live provider connection.
	Environment struct {
		AccountID string
		Region    string
	}

	Planner struct {
		Env Environment
	}

	// Plan is the result of one planning run. The volume is always present;
	// every conditional resource is a pointer that is nil exactly when its
	// config gate is off.
	Plan struct {
		Volume          *resources.EbsVolume
		KmsKey          *resources.KmsKey
		KmsAlias        *resources.KmsAlias
		LogGroup        *resources.LogGroup
		Trail           *resources.CloudtrailTrail
		AccessPolicy    *resources.IamPolicy
		InitialSnapshot *resources.EbsSnapshot
		LifecyclePolicy *resources.DlmLifecyclePolicy
		DlmRole         *resources.IamRole
		DlmRolePolicy   *resources.IamRolePolicy

		graph        *construct.ResourceGraph
		logicalNames map[construct.ResourceId]string
	}
)

func New(env Environment) Planner {
	return Planner{Env: env}
}

// Plan maps a validated Config to its resource graph. Config must have been
// resolved by pkg/config; an unvalidated Config has undefined behavior.
func (p Planner) Plan(cfg *config.Config) (*Plan, error) {
	baseName := cfg.BaseName()
	plan := &Plan{
		graph:        construct.NewResourceGraph(),
		logicalNames: make(map[construct.ResourceId]string),
	}

	var keyArn construct.IaCValue
	if *cfg.Kms.Create {
		key := resources.NewKmsKey(baseName, p.tagsFor(cfg, baseName, "kms-key"))
		key.EnableKeyRotation = *cfg.Kms.EnableKeyRotation
		key.PendingWindowInDays = cfg.Kms.DeletionWindowDays
		key.KeyPolicy = p.kmsKeyPolicy(cfg)
		plan.KmsKey = key
		plan.add(key, LogicalKmsKey)

		alias := resources.NewKmsAlias(key)
		plan.KmsAlias = alias
		plan.add(alias, LogicalKmsAlias)
		plan.graph.AddDependency(alias, key)

		keyArn = key.ArnRef()
	} else {
		keyArn = construct.Literal(cfg.Kms.KeyArn)
	}

	volume := resources.NewEbsVolume(baseName, p.tagsFor(cfg, baseName, "volume"))
	volume.AvailabilityZone = cfg.Volume.AvailabilityZone
	volume.Size = cfg.Volume.Size
	volume.VolumeType = cfg.Volume.Type
	volume.KmsKeyId = keyArn
	volume.FinalSnapshot = *cfg.Volume.FinalSnapshot
	switch cfg.Volume.Type {
	case config.VolumeTypeGp3:
		volume.Iops = cfg.Volume.Iops
		volume.Throughput = cfg.Volume.Throughput
	case config.VolumeTypeIo1, config.VolumeTypeIo2:
		volume.Iops = cfg.Volume.Iops
	}
	plan.Volume = volume
	plan.add(volume, LogicalVolume)
	if plan.KmsKey != nil {
		plan.graph.AddDependency(volume, plan.KmsKey)
	}

	if cfg.Logging.Mode != config.LoggingModeDisabled {
		logGroup := resources.NewLogGroup(baseName, cfg.Logging.RetentionDays, p.tagsFor(cfg, baseName, "log-group"))
		logGroup.KmsKeyArn = keyArn
		plan.LogGroup = logGroup
		plan.add(logGroup, LogicalLogGroup)
		if plan.KmsKey != nil {
			plan.graph.AddDependency(logGroup, plan.KmsKey)
		}

		trail := resources.NewCloudtrailTrail(baseName, cfg.Logging.CloudtrailBucketName, volume, p.tagsFor(cfg, baseName, "trail"))
		plan.Trail = trail
		plan.add(trail, LogicalTrail)
		plan.graph.AddDependency(trail, volume)
	}

	if *cfg.Volume.CreateAccessPolicy {
		policy := resources.NewIamPolicy(baseName, "-volume-access",
			p.accessPolicy(baseName, volume), p.tagsFor(cfg, baseName, "access-policy"))
		plan.AccessPolicy = policy
		plan.add(policy, LogicalAccessPolicy)
		plan.graph.AddDependency(policy, volume)
	}

	if *cfg.Volume.CreateInitialSnapshot {
		snapshot := resources.NewEbsSnapshot(volume, p.tagsFor(cfg, baseName, "snapshot"))
		plan.InitialSnapshot = snapshot
		plan.add(snapshot, LogicalInitialSnapshot)
		plan.graph.AddDependency(snapshot, volume)
	}

	if *cfg.Volume.SnapshotPolicyEnabled {
		role := resources.NewIamRole(baseName, "-dlm-role",
			resources.DLM_ASSUME_ROLE_POLICY, p.tagsFor(cfg, baseName, "dlm-role"))
		plan.DlmRole = role
		plan.add(role, LogicalDlmRole)

		rolePolicy := resources.NewIamRolePolicy(baseName, "-dlm-role-policy", role, p.dlmRolePolicy())
		plan.DlmRolePolicy = rolePolicy
		plan.add(rolePolicy, LogicalDlmRolePolicy)
		plan.graph.AddDependency(rolePolicy, role)

		schedule := resources.DlmSchedule{
			Name:         "daily",
			Interval:     cfg.Volume.SnapshotSchedule.Interval,
			IntervalUnit: cfg.Volume.SnapshotSchedule.IntervalUnit,
			Times:        cfg.Volume.SnapshotSchedule.Times,
			RetainCount:  cfg.Volume.SnapshotSchedule.RetainCount,
			CopyTags:     true,
		}
		lifecycle := resources.NewDlmLifecyclePolicy(baseName, role, schedule,
			map[string]string{"Name": baseName}, p.tagsFor(cfg, baseName, "lifecycle-policy"))
		plan.LifecyclePolicy = lifecycle
		plan.add(lifecycle, LogicalLifecyclePolicy)
		plan.graph.AddDependency(lifecycle, role)
	}

	if err := plan.checkInvariants(); err != nil {
		return nil, err
	}
	return plan, nil
}

func (plan *Plan) add(r construct.Resource, logicalName string) {
	plan.graph.AddResource(r)
	plan.logicalNames[r.Id()] = logicalName
}

// tagsFor is the union of the user's tags, the fixed provenance tags, and
// the per-resource Name/Type discriminators. User tags never override the
// discriminators.
func (p Planner) tagsFor(cfg *config.Config, baseName string, resourceType string) map[string]string {
	tags := make(map[string]string, len(cfg.Tags)+4)
	for k, v := range cfg.Tags {
		tags[k] = v
	}
	tags[managedByTag] = managedByValue
	tags[moduleTag] = moduleValue
	tags["Name"] = baseName
	tags["Type"] = resourceType
	return tags
}
