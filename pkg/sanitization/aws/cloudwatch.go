package aws

import (
	"regexp"

	"github.com/stackmason/ebsplan/pkg/sanitization"
)

// CloudwatchLogGroupSanitizer returns a sanitized log group name when applied.
var CloudwatchLogGroupSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-zA-Z\d_\-/.#]`),
			Replacement: "-",
		},
	},
	512,
)
