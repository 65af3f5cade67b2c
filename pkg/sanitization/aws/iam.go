package aws

import (
	"regexp"

	"github.com/stackmason/ebsplan/pkg/sanitization"
)

// IamRoleSanitizer returns a sanitized IAM role name when applied.
var IamRoleSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^\w+=,.@-]`),
			Replacement: "_",
		},
	},
	64,
)

// IamPolicySanitizer returns a sanitized IAM policy name when applied.
var IamPolicySanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^\w+=,.@-]`),
			Replacement: "_",
		},
	},
	128,
)
