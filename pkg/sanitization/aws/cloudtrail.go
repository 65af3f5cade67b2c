package aws

import (
	"regexp"

	"github.com/stackmason/ebsplan/pkg/sanitization"
)

// CloudtrailSanitizer returns a sanitized CloudTrail trail name when applied.
var CloudtrailSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-zA-Z\d._-]`),
			Replacement: "-",
		},
		{
			Pattern:     regexp.MustCompile(`^[^a-zA-Z\d]+`),
			Replacement: "",
		},
	},
	128,
)
