package config

func boolPtr(b bool) *bool { return &b }

// ApplyDefaults fills every unset optional field with its documented default.
// Pointer fields distinguish "unset" from an explicit false/zero, so a user
// turning a feature off is never overridden.
func (c *Config) ApplyDefaults() {
	if c.Volume.Type == "" {
		c.Volume.Type = VolumeTypeGp3
	}
	if c.Volume.FinalSnapshot == nil {
		c.Volume.FinalSnapshot = boolPtr(true)
	}
	if c.Volume.CreateAccessPolicy == nil {
		c.Volume.CreateAccessPolicy = boolPtr(true)
	}
	if c.Volume.CreateInitialSnapshot == nil {
		c.Volume.CreateInitialSnapshot = boolPtr(true)
	}
	if c.Volume.SnapshotPolicyEnabled == nil {
		c.Volume.SnapshotPolicyEnabled = boolPtr(true)
	}

	schedule := &c.Volume.SnapshotSchedule
	if schedule.Interval == 0 {
		schedule.Interval = 24
	}
	if schedule.IntervalUnit == "" {
		schedule.IntervalUnit = "HOURS"
	}
	if len(schedule.Times) == 0 {
		schedule.Times = []string{"03:00"}
	}
	if schedule.RetainCount == 0 {
		schedule.RetainCount = 7
	}

	if c.Kms.Create == nil {
		c.Kms.Create = boolPtr(true)
	}
	if c.Kms.DeletionWindowDays == 0 {
		c.Kms.DeletionWindowDays = 7
	}
	if c.Kms.EnableKeyRotation == nil {
		c.Kms.EnableKeyRotation = boolPtr(true)
	}

	if c.Logging.Mode == "" {
		c.Logging.Mode = LoggingModeCreateNew
	}
	if c.Logging.RetentionDays == 0 {
		c.Logging.RetentionDays = 90
	}
}
