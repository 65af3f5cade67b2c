package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Config is the declarative description of one encrypted volume and its
	// companion resources. A Config is defaulted and validated once, before
	// planning, and never mutated afterwards.
	Config struct {
		Prefix     string            `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty" mapstructure:"prefix"`
		VolumeName string            `json:"volume_name" yaml:"volume_name" toml:"volume_name" mapstructure:"volume_name"`
		Tags       map[string]string `json:"tags" yaml:"tags" toml:"tags" mapstructure:"tags"`
		Volume     VolumeSpec        `json:"volume" yaml:"volume" toml:"volume" mapstructure:"volume"`
		Kms        KmsSpec           `json:"kms" yaml:"kms" toml:"kms" mapstructure:"kms"`
		Logging    LoggingSpec       `json:"logging" yaml:"logging" toml:"logging" mapstructure:"logging"`
	}

	VolumeSpec struct {
		AvailabilityZone      string           `json:"availability_zone" yaml:"availability_zone" toml:"availability_zone" mapstructure:"availability_zone"`
		Size                  int              `json:"size" yaml:"size" toml:"size" mapstructure:"size"`
		Type                  string           `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty" mapstructure:"type"`
		Iops                  *int             `json:"iops,omitempty" yaml:"iops,omitempty" toml:"iops,omitempty" mapstructure:"iops"`
		Throughput            *int             `json:"throughput,omitempty" yaml:"throughput,omitempty" toml:"throughput,omitempty" mapstructure:"throughput"`
		FinalSnapshot         *bool            `json:"final_snapshot,omitempty" yaml:"final_snapshot,omitempty" toml:"final_snapshot,omitempty" mapstructure:"final_snapshot"`
		CreateAccessPolicy    *bool            `json:"create_access_policy,omitempty" yaml:"create_access_policy,omitempty" toml:"create_access_policy,omitempty" mapstructure:"create_access_policy"`
		CreateInitialSnapshot *bool            `json:"create_initial_snapshot,omitempty" yaml:"create_initial_snapshot,omitempty" toml:"create_initial_snapshot,omitempty" mapstructure:"create_initial_snapshot"`
		SnapshotPolicyEnabled *bool            `json:"snapshot_policy_enabled,omitempty" yaml:"snapshot_policy_enabled,omitempty" toml:"snapshot_policy_enabled,omitempty" mapstructure:"snapshot_policy_enabled"`
		SnapshotSchedule      SnapshotSchedule `json:"snapshot_schedule,omitempty" yaml:"snapshot_schedule,omitempty" toml:"snapshot_schedule,omitempty" mapstructure:"snapshot_schedule"`
	}

	SnapshotSchedule struct {
		Interval     int      `json:"interval,omitempty" yaml:"interval,omitempty" toml:"interval,omitempty" mapstructure:"interval"`
		IntervalUnit string   `json:"interval_unit,omitempty" yaml:"interval_unit,omitempty" toml:"interval_unit,omitempty" mapstructure:"interval_unit"`
		Times        []string `json:"times,omitempty" yaml:"times,omitempty" toml:"times,omitempty" mapstructure:"times"`
		RetainCount  int      `json:"retain_count,omitempty" yaml:"retain_count,omitempty" toml:"retain_count,omitempty" mapstructure:"retain_count"`
	}

	KmsSpec struct {
		Create             *bool    `json:"create,omitempty" yaml:"create,omitempty" toml:"create,omitempty" mapstructure:"create"`
		KeyArn             string   `json:"key_arn,omitempty" yaml:"key_arn,omitempty" toml:"key_arn,omitempty" mapstructure:"key_arn"`
		DeletionWindowDays int      `json:"deletion_window_days,omitempty" yaml:"deletion_window_days,omitempty" toml:"deletion_window_days,omitempty" mapstructure:"deletion_window_days"`
		EnableKeyRotation  *bool    `json:"enable_key_rotation,omitempty" yaml:"enable_key_rotation,omitempty" toml:"enable_key_rotation,omitempty" mapstructure:"enable_key_rotation"`
		KeyAdministrators  []string `json:"key_administrators,omitempty" yaml:"key_administrators,omitempty" toml:"key_administrators,omitempty" mapstructure:"key_administrators"`
		KeyUsers           []string `json:"key_users,omitempty" yaml:"key_users,omitempty" toml:"key_users,omitempty" mapstructure:"key_users"`
	}

	LoggingSpec struct {
		Mode                 string `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty" mapstructure:"mode"`
		CloudtrailBucketName string `json:"cloudtrail_bucket_name,omitempty" yaml:"cloudtrail_bucket_name,omitempty" toml:"cloudtrail_bucket_name,omitempty" mapstructure:"cloudtrail_bucket_name"`
		RetentionDays        int    `json:"retention_days,omitempty" yaml:"retention_days,omitempty" toml:"retention_days,omitempty" mapstructure:"retention_days"`
	}
)

// Volume types accepted by the planner.
const (
	VolumeTypeGp2 = "gp2"
	VolumeTypeGp3 = "gp3"
	VolumeTypeIo1 = "io1"
	VolumeTypeIo2 = "io2"
	VolumeTypeSt1 = "st1"
	VolumeTypeSc1 = "sc1"
)

// Logging modes.
const (
	LoggingModeCreateNew   = "create_new"
	LoggingModeUseExisting = "use_existing"
	LoggingModeDisabled    = "disabled"
)

// Tag keys every Config must carry.
const (
	TagEnvironment = "Environment"
	TagOwner       = "Owner"
)

// ReadConfig decodes the file at fpath based on its extension, applies
// defaults, and validates. The returned Config is ready for planning.
func ReadConfig(fpath string) (*Config, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open config file %s", fpath)
	}
	defer f.Close() // nolint:errcheck

	cfg := &Config{}
	switch filepath.Ext(fpath) {
	case ".json":
		err = json.NewDecoder(f).Decode(cfg)

	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(cfg)

	case ".toml":
		err = toml.NewDecoder(f).Decode(cfg)

	default:
		return nil, errors.Errorf("unsupported config format %q", filepath.Ext(fpath))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode config file %s", fpath)
	}

	return cfg, cfg.Resolve()
}

// Parse builds a Config from an already-decoded raw input (for callers that
// embed the planner rather than reading a file).
func Parse(raw map[string]any) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "could not decode raw config")
	}
	return cfg, cfg.Resolve()
}

// Resolve applies defaults and validates in place. After a nil return the
// Config satisfies every planning precondition.
func (c *Config) Resolve() error {
	c.ApplyDefaults()
	return c.Validate()
}

// BaseName is the display name every planned resource derives its own name
// from: "<prefix>-<volumeName>" when a prefix is set, else the volume name.
func (c *Config) BaseName() string {
	if c.Prefix == "" {
		return c.VolumeName
	}
	return c.Prefix + "-" + c.VolumeName
}
