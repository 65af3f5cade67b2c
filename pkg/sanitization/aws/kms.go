package aws

import (
	"regexp"

	"github.com/stackmason/ebsplan/pkg/sanitization"
)

// KmsKeySanitizer returns a sanitized KMS key name when applied.
var KmsKeySanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-zA-Z\d:/_-]`),
			Replacement: "_",
		},
	},
	256,
)

// KmsAliasSanitizer returns a sanitized KMS alias name when applied. Alias
// names allow the same characters as key names but must not collide with the
// reserved alias/aws/ prefix; callers build the alias/ prefix themselves.
var KmsAliasSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-zA-Z\d:/_-]`),
			Replacement: "_",
		},
	},
	256,
)
