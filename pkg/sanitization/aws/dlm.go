package aws

import (
	"regexp"

	"github.com/stackmason/ebsplan/pkg/sanitization"
)

// DlmPolicySanitizer returns a sanitized DLM lifecycle policy description
// when applied.
var DlmPolicySanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^\w ._:/=+\-@\[\]]`),
			Replacement: "-",
		},
	},
	500,
)
