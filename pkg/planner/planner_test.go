package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackmason/ebsplan/pkg/config"
	"github.com/stackmason/ebsplan/pkg/construct"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(v int) *int    { return &v }

func testEnv() Environment {
	return Environment{AccountID: "123456789012", Region: "us-east-1"}
}

func testConfig(t *testing.T, mutate func(c *config.Config)) *config.Config {
	t.Helper()
	cfg := &config.Config{
		VolumeName: "data",
		Tags: map[string]string{
			config.TagEnvironment: "prod",
			config.TagOwner:       "team",
		},
		Volume: config.VolumeSpec{
			AvailabilityZone: "us-east-1a",
			Size:             100,
			Type:             config.VolumeTypeGp3,
			Iops:             intPtr(3000),
			Throughput:       intPtr(250),
		},
		Logging: config.LoggingSpec{Mode: config.LoggingModeDisabled},
	}
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("test config does not validate: %v", err)
	}
	return cfg
}

func logicalNames(intents []construct.ResourceIntent) []string {
	names := make([]string, 0, len(intents))
	for _, intent := range intents {
		names = append(names, intent.LogicalName)
	}
	return names
}

func Test_FullPlan(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(t, nil)
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}

	intents, err := plan.Intents()
	if !assert.NoError(err) {
		return
	}
	assert.Len(intents, 8)
	assert.ElementsMatch([]string{
		LogicalKmsKey,
		LogicalKmsAlias,
		LogicalVolume,
		LogicalAccessPolicy,
		LogicalInitialSnapshot,
		LogicalLifecyclePolicy,
		LogicalDlmRole,
		LogicalDlmRolePolicy,
	}, logicalNames(intents))

	// the volume's key binding is a placeholder for the planned key's ARN
	if assert.NotNil(plan.KmsKey) {
		assert.Equal(plan.KmsKey.ArnRef(), plan.Volume.KmsKeyId)
	}
	assert.Nil(plan.LogGroup)
	assert.Nil(plan.Trail)
}

func Test_ExistingKeyPlan(t *testing.T) {
	assert := assert.New(t)

	existingArn := "arn:aws:kms:us-east-1:123456789012:key/existing"
	cfg := testConfig(t, func(c *config.Config) {
		c.Kms.Create = boolPtr(false)
		c.Kms.KeyArn = existingArn
	})
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}

	assert.Nil(plan.KmsKey)
	assert.Nil(plan.KmsAlias)
	assert.True(plan.Volume.KmsKeyId.IsLiteral())
	assert.Equal(existingArn, plan.Volume.KmsKeyId.Property)

	intents, err := plan.Intents()
	if !assert.NoError(err) {
		return
	}
	assert.NotContains(logicalNames(intents), LogicalKmsKey)
	assert.NotContains(logicalNames(intents), LogicalKmsAlias)
}

func Test_VolumeOnlyPlan(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(t, func(c *config.Config) {
		c.Kms.Create = boolPtr(false)
		c.Kms.KeyArn = "arn:aws:kms:us-east-1:123456789012:key/existing"
		c.Volume.CreateAccessPolicy = boolPtr(false)
		c.Volume.CreateInitialSnapshot = boolPtr(false)
		c.Volume.SnapshotPolicyEnabled = boolPtr(false)
	})
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}

	intents, err := plan.Intents()
	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{LogicalVolume}, logicalNames(intents))
}

func Test_LoggingPlan(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(t, func(c *config.Config) {
		c.Logging.Mode = config.LoggingModeCreateNew
		c.Logging.CloudtrailBucketName = "audit-bucket"
	})
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}

	if assert.NotNil(plan.LogGroup) {
		assert.Equal(90, plan.LogGroup.RetentionInDays)
		assert.Equal(plan.KmsKey.ArnRef(), plan.LogGroup.KmsKeyArn)
	}
	if assert.NotNil(plan.Trail) {
		assert.Equal("audit-bucket", plan.Trail.S3BucketName)
		assert.False(plan.Trail.IsMultiRegionTrail)
		assert.False(plan.Trail.IncludeGlobalServiceEvents)
		if assert.Len(plan.Trail.EventSelectors, 1) {
			selectors := plan.Trail.EventSelectors[0].DataResources
			if assert.Len(selectors, 2) {
				assert.Equal(plan.Volume.Id(), selectors[0].Values[0].ResourceId)
				assert.Equal("/*", selectors[1].Values[0].Suffix)
			}
		}
	}

	intents, err := plan.Intents()
	assert.NoError(err)
	assert.Len(intents, 10)
}

func Test_VolumeIsAlwaysEncrypted(t *testing.T) {
	mutations := []func(c *config.Config){
		nil,
		func(c *config.Config) {
			c.Kms.Create = boolPtr(false)
			c.Kms.KeyArn = "arn:aws:kms:us-east-1:123456789012:key/existing"
		},
		func(c *config.Config) {
			c.Volume.Type = config.VolumeTypeSc1
			c.Volume.Iops = nil
			c.Volume.Throughput = nil
		},
	}
	for _, mutate := range mutations {
		cfg := testConfig(t, mutate)
		plan, err := New(testEnv()).Plan(cfg)
		if assert.NoError(t, err) {
			assert.True(t, plan.Volume.Encrypted)
		}
	}
}

func Test_IopsAndThroughputGating(t *testing.T) {
	cases := []struct {
		name           string
		volumeType     string
		wantIops       bool
		wantThroughput bool
	}{
		{name: "gp3", volumeType: config.VolumeTypeGp3, wantIops: true, wantThroughput: true},
		{name: "io2", volumeType: config.VolumeTypeIo2, wantIops: true},
		{name: "gp2", volumeType: config.VolumeTypeGp2},
		{name: "st1", volumeType: config.VolumeTypeSt1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			cfg := testConfig(t, func(c *config.Config) {
				c.Volume.Type = tt.volumeType
				if tt.volumeType != config.VolumeTypeGp3 {
					c.Volume.Throughput = nil
				}
			})
			plan, err := New(testEnv()).Plan(cfg)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tt.wantIops, plan.Volume.Iops != nil)
			assert.Equal(tt.wantThroughput, plan.Volume.Throughput != nil)
		})
	}
}

func Test_DependenciesResolveWithinPlan(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(t, func(c *config.Config) {
		c.Logging.Mode = config.LoggingModeCreateNew
		c.Logging.CloudtrailBucketName = "audit-bucket"
	})
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}
	intents, err := plan.Intents()
	if !assert.NoError(err) {
		return
	}

	seen := make(map[string]bool, len(intents))
	for _, intent := range intents {
		for _, dep := range intent.DependsOn {
			assert.True(seen[dep], "intent %s depends on %s which is not ordered before it", intent.LogicalName, dep)
		}
		seen[intent.LogicalName] = true
	}
}

func Test_PlanIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	build := func() []construct.ResourceIntent {
		cfg := testConfig(t, func(c *config.Config) {
			c.Prefix = "team-alpha"
			c.Logging.Mode = config.LoggingModeCreateNew
			c.Logging.CloudtrailBucketName = "audit-bucket"
			c.Kms.KeyUsers = []string{"arn:aws:iam::123456789012:role/app"}
		})
		plan, err := New(testEnv()).Plan(cfg)
		if !assert.NoError(err) {
			t.FailNow()
		}
		intents, err := plan.Intents()
		if !assert.NoError(err) {
			t.FailNow()
		}
		return intents
	}

	assert.Equal(build(), build())
}

func Test_ResourceNaming(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(t, func(c *config.Config) {
		c.Prefix = "team-alpha"
	})
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("team-alpha-data", plan.Volume.Name)
	assert.Equal("team-alpha-data-key", plan.KmsKey.Name)
	assert.Equal("team-alpha-data-volume-access", plan.AccessPolicy.Name)
	assert.Equal("team-alpha-data-dlm-role", plan.DlmRole.Name)
	assert.Equal("team-alpha-data-initial", plan.InitialSnapshot.Name)
}

func Test_ResourceTags(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(t, nil)
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}

	tags := plan.Volume.Tags
	assert.Equal("prod", tags[config.TagEnvironment])
	assert.Equal("team", tags[config.TagOwner])
	assert.Equal("ebsplan", tags["managed-by"])
	assert.Equal("ebs-encrypted-volume", tags["module"])
	assert.Equal("data", tags["Name"])
	assert.Equal("volume", tags["Type"])

	assert.Equal("kms-key", plan.KmsKey.Tags["Type"])
}

func Test_KmsKeyPolicy(t *testing.T) {
	t.Run("admins only", func(t *testing.T) {
		assert := assert.New(t)

		cfg := testConfig(t, func(c *config.Config) {
			c.Kms.KeyAdministrators = []string{"arn:aws:iam::123456789012:role/admin"}
		})
		plan, err := New(testEnv()).Plan(cfg)
		if !assert.NoError(err) {
			return
		}

		policy := plan.KmsKey.KeyPolicy
		if !assert.Len(policy.Statement, 1) {
			return
		}
		principals := policy.Statement[0].Principal.AWS
		assert.Equal(construct.Literal("arn:aws:iam::123456789012:root"), principals[0])
		assert.Equal(construct.Literal("arn:aws:iam::123456789012:role/admin"), principals[1])
	})

	t.Run("key users add a via-service statement", func(t *testing.T) {
		assert := assert.New(t)

		cfg := testConfig(t, func(c *config.Config) {
			c.Kms.KeyUsers = []string{"arn:aws:iam::123456789012:role/app"}
		})
		plan, err := New(testEnv()).Plan(cfg)
		if !assert.NoError(err) {
			return
		}

		policy := plan.KmsKey.KeyPolicy
		if !assert.Len(policy.Statement, 2) {
			return
		}
		usage := policy.Statement[1]
		assert.Contains(usage.Action, "kms:Decrypt")
		assert.Contains(usage.Action, "kms:CreateGrant")
		assert.Equal(
			construct.Literal("ec2.us-east-1.amazonaws.com"),
			usage.Condition.StringEquals["kms:ViaService"],
		)
	})
}

func Test_AccessPolicyStatements(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(t, nil)
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}

	policy := plan.AccessPolicy.Policy
	if !assert.Len(policy.Statement, 3) {
		return
	}

	deny := policy.Statement[0]
	assert.Equal("Deny", deny.Effect)
	assert.Equal("false", deny.Condition.Bool["ec2:Encrypted"])

	attach := policy.Statement[1]
	assert.Equal("Allow", attach.Effect)
	assert.Contains(attach.Action, "ec2:AttachVolume")
	assert.Equal(plan.Volume.Id(), attach.Resource[0].ResourceId)
	assert.Equal(construct.Literal("data"), attach.Condition.StringEquals["ec2:ResourceTag/Name"])

	snapshots := policy.Statement[2]
	assert.Contains(snapshots.Action, "ec2:CreateSnapshot")
	assert.Equal(construct.Literal("data"), snapshots.Condition.StringEquals["ec2:ResourceTag/Name"])
}

func Test_LifecycleTrio(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(t, func(c *config.Config) {
		c.Volume.SnapshotSchedule = config.SnapshotSchedule{
			Interval:     12,
			IntervalUnit: "HOURS",
			Times:        []string{"01:30"},
			RetainCount:  14,
		}
	})
	plan, err := New(testEnv()).Plan(cfg)
	if !assert.NoError(err) {
		return
	}

	if !assert.NotNil(plan.LifecyclePolicy) {
		return
	}
	schedule := plan.LifecyclePolicy.Schedule
	assert.Equal(12, schedule.Interval)
	assert.Equal("HOURS", schedule.IntervalUnit)
	assert.Equal([]string{"01:30"}, schedule.Times)
	assert.Equal(14, schedule.RetainCount)

	assert.Equal(map[string]string{"Name": "data"}, plan.LifecyclePolicy.TargetTags)
	assert.Equal(plan.DlmRole, plan.LifecyclePolicy.ExecutionRole)

	trust := plan.DlmRole.AssumeRolePolicyDoc.Statement[0]
	assert.Equal("dlm.amazonaws.com", trust.Principal.Service)

	for _, statement := range plan.DlmRolePolicy.Policy.Statement {
		assert.NotContains(statement.Action, "ec2:ModifyVolume")
		assert.NotContains(statement.Action, "ec2:DeleteVolume")
		assert.NotContains(statement.Action, "ec2:AttachVolume")
	}
}
