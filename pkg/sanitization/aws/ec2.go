package aws

import (
	"regexp"

	"github.com/stackmason/ebsplan/pkg/sanitization"
)

// EbsVolumeSanitizer returns a sanitized EBS volume name when applied.
var EbsVolumeSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^A-Za-z\d._-]`),
			Replacement: "-",
		},
		{
			Pattern:     regexp.MustCompile(`^[^A-Za-z\d]+`),
			Replacement: "",
		},
	},
	255,
)

// EbsSnapshotSanitizer returns a sanitized EBS snapshot name when applied.
var EbsSnapshotSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^A-Za-z\d._-]`),
			Replacement: "-",
		},
	},
	255,
)
