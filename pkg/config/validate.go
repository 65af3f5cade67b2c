package config

import (
	"fmt"
	"regexp"

	"github.com/stackmason/ebsplan/pkg/multierr"
	"github.com/stackmason/ebsplan/pkg/set"
)

var (
	prefixPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)
	volumeNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9]$`)

	volumeTypes = set.SetOf(
		VolumeTypeGp2, VolumeTypeGp3,
		VolumeTypeIo1, VolumeTypeIo2,
		VolumeTypeSt1, VolumeTypeSc1,
	)
	iopsRequiredTypes = set.SetOf(VolumeTypeIo1, VolumeTypeIo2, VolumeTypeGp3)
	loggingModes      = set.SetOf(LoggingModeCreateNew, LoggingModeUseExisting, LoggingModeDisabled)
)

// maxCombinedNameLength bounds "<prefix>-<volumeName>" so derived resource
// names stay within provider limits.
const maxCombinedNameLength = 63

// Validation is a rule list rather than a single function so every rule runs
// regardless of earlier failures; rules are independent by construction.
var rules = []func(c *Config) error{
	checkPrefix,
	checkVolumeName,
	checkRequiredTags,
	checkSize,
	checkVolumeType,
	checkThroughput,
	checkIops,
	checkKms,
	checkLoggingMode,
	checkLoggingBucket,
}

// Validate runs every rule and collects all violations. A Config that
// validates cleanly satisfies every precondition the planner assumes.
// Defaults must already be applied.
func (c *Config) Validate() error {
	var errs multierr.Error
	for _, rule := range rules {
		switch err := rule(c).(type) {
		case multierr.Error:
			// a rule may report several independent violations; keep the
			// collected list flat
			for _, e := range err {
				errs.Append(e)
			}
		default:
			errs.Append(err)
		}
	}
	if errs.ErrOrNil() != nil {
		return &ValidationError{Violations: errs}
	}
	return nil
}

func checkPrefix(c *Config) error {
	if c.Prefix == "" {
		return nil
	}
	if !prefixPattern.MatchString(c.Prefix) {
		return fmt.Errorf("prefix %q must be lowercase alphanumeric with interior hyphens", c.Prefix)
	}
	return nil
}

func checkVolumeName(c *Config) error {
	if c.VolumeName == "" {
		return fmt.Errorf("volume_name is required")
	}
	if !volumeNamePattern.MatchString(c.VolumeName) {
		return fmt.Errorf("volume_name %q must be alphanumeric with interior '.', '_' or '-'", c.VolumeName)
	}
	combined := len(c.VolumeName)
	if c.Prefix != "" {
		combined += len(c.Prefix) + 1
	}
	if combined > maxCombinedNameLength {
		return fmt.Errorf("combined prefix and volume_name length %d exceeds %d characters", combined, maxCombinedNameLength)
	}
	return nil
}

func checkRequiredTags(c *Config) error {
	var errs multierr.Error
	for _, key := range []string{TagEnvironment, TagOwner} {
		if _, ok := c.Tags[key]; !ok {
			errs.Append(fmt.Errorf("tags must contain key %q", key))
		}
	}
	return errs.ErrOrNil()
}

func checkSize(c *Config) error {
	if c.Volume.Size < 1 || c.Volume.Size > 65536 {
		return fmt.Errorf("volume size %d GiB out of range [1, 65536]", c.Volume.Size)
	}
	return nil
}

func checkVolumeType(c *Config) error {
	if !volumeTypes.Contains(c.Volume.Type) {
		return fmt.Errorf("volume type %q is not one of gp2, gp3, io1, io2, st1, sc1", c.Volume.Type)
	}
	return nil
}

func checkThroughput(c *Config) error {
	if c.Volume.Throughput == nil {
		return nil
	}
	if c.Volume.Type != VolumeTypeGp3 {
		return fmt.Errorf("throughput only applies to gp3 volumes, not %q", c.Volume.Type)
	}
	if *c.Volume.Throughput < 125 || *c.Volume.Throughput > 1000 {
		return fmt.Errorf("gp3 throughput %d MiB/s out of range [125, 1000]", *c.Volume.Throughput)
	}
	return nil
}

func checkIops(c *Config) error {
	if iopsRequiredTypes.Contains(c.Volume.Type) && c.Volume.Iops == nil {
		return fmt.Errorf("iops is required for volume type %q", c.Volume.Type)
	}
	return nil
}

func checkKms(c *Config) error {
	if c.Kms.Create == nil || *c.Kms.Create {
		if c.Kms.DeletionWindowDays < 7 || c.Kms.DeletionWindowDays > 30 {
			return fmt.Errorf("kms deletion_window_days %d out of range [7, 30]", c.Kms.DeletionWindowDays)
		}
		return nil
	}
	if c.Kms.KeyArn == "" {
		return fmt.Errorf("kms key_arn is required when kms.create is false")
	}
	return nil
}

func checkLoggingMode(c *Config) error {
	if !loggingModes.Contains(c.Logging.Mode) {
		return fmt.Errorf("logging mode %q is not one of create_new, use_existing, disabled", c.Logging.Mode)
	}
	return nil
}

func checkLoggingBucket(c *Config) error {
	if c.Logging.Mode == LoggingModeDisabled {
		return nil
	}
	if c.Logging.CloudtrailBucketName == "" {
		return fmt.Errorf("logging cloudtrail_bucket_name is required when logging mode is %q", c.Logging.Mode)
	}
	return nil
}
