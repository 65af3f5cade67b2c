package backend

import (
	"context"
	"fmt"

	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/set"
)

// Fake is an in-memory Backend that assigns deterministic identifiers, for
// tests and dry runs. Logical names listed in Fail are skipped, producing a
// partial result the way a real backend does when provisioning stops midway.
type Fake struct {
	AccountID string
	Region    string
	Fail      set.Set[string]
}

func NewFake(accountID, region string) *Fake {
	return &Fake{
		AccountID: accountID,
		Region:    region,
		Fail:      set.SetOf[string](),
	}
}

func (f *Fake) Apply(_ context.Context, intents []construct.ResourceIntent) (Result, error) {
	result := Result{Resources: make(map[string]Assigned, len(intents))}
	for _, intent := range intents {
		if f.Fail.Contains(intent.LogicalName) {
			continue
		}
		result.Resources[intent.LogicalName] = f.assign(intent)
	}
	return result, nil
}

func (f *Fake) assign(intent construct.ResourceIntent) Assigned {
	id := fmt.Sprintf("%s-0f%08x", shortPrefix(intent.Kind), stringHash(intent.LogicalName))
	var arn string
	switch intent.Kind {
	case "kms_key":
		arn = fmt.Sprintf("arn:aws:kms:%s:%s:key/%s", f.Region, f.AccountID, id)
	case "kms_alias":
		arn = fmt.Sprintf("arn:aws:kms:%s:%s:alias/%s", f.Region, f.AccountID, id)
	case "ebs_volume":
		arn = fmt.Sprintf("arn:aws:ec2:%s:%s:volume/%s", f.Region, f.AccountID, id)
	case "ebs_snapshot":
		arn = fmt.Sprintf("arn:aws:ec2:%s::snapshot/%s", f.Region, id)
	case "log_group":
		arn = fmt.Sprintf("arn:aws:logs:%s:%s:log-group:%s", f.Region, f.AccountID, id)
	case "cloudtrail_trail":
		arn = fmt.Sprintf("arn:aws:cloudtrail:%s:%s:trail/%s", f.Region, f.AccountID, id)
	case "iam_role":
		arn = fmt.Sprintf("arn:aws:iam::%s:role/%s", f.AccountID, id)
	case "iam_policy", "iam_role_policy":
		arn = fmt.Sprintf("arn:aws:iam::%s:policy/%s", f.AccountID, id)
	case "dlm_lifecycle_policy":
		arn = fmt.Sprintf("arn:aws:dlm:%s:%s:policy/%s", f.Region, f.AccountID, id)
	default:
		arn = fmt.Sprintf("arn:aws:unknown:%s:%s:%s", f.Region, f.AccountID, id)
	}
	return Assigned{ID: id, Arn: arn}
}

func shortPrefix(kind string) string {
	switch kind {
	case "ebs_volume":
		return "vol"
	case "ebs_snapshot":
		return "snap"
	case "kms_key", "kms_alias":
		return "key"
	default:
		return kind
	}
}

// stringHash is FNV-1a, inlined so identifiers stay stable across runs and
// platforms.
func stringHash(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
