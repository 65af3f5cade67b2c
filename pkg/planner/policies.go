package planner

import (
	"fmt"

	"github.com/stackmason/ebsplan/pkg/config"
	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/provider/aws/resources"
)

// kmsKeyPolicy grants full key administration to the account root and every
// configured administrator. When key users are configured a second statement
// grants them data-key usage, scoped so the key is only usable through the
// regional EC2 endpoint.
func (p Planner) kmsKeyPolicy(cfg *config.Config) *resources.PolicyDocument {
	admins := []construct.IaCValue{
		construct.Literal(fmt.Sprintf("arn:aws:iam::%s:root", p.Env.AccountID)),
	}
	for _, principal := range cfg.Kms.KeyAdministrators {
		admins = append(admins, construct.Literal(principal))
	}

	doc := &resources.PolicyDocument{
		Version: resources.VERSION,
		Statement: []resources.StatementEntry{
			{
				Effect:    "Allow",
				Action:    []string{"kms:*"},
				Principal: &resources.Principal{AWS: admins},
				Resource:  []construct.IaCValue{construct.Literal("*")},
			},
		},
	}

	if len(cfg.Kms.KeyUsers) == 0 {
		return doc
	}

	users := make([]construct.IaCValue, 0, len(cfg.Kms.KeyUsers))
	for _, principal := range cfg.Kms.KeyUsers {
		users = append(users, construct.Literal(principal))
	}
	doc.Statement = append(doc.Statement, resources.StatementEntry{
		Effect: "Allow",
		Action: []string{
			"kms:Encrypt",
			"kms:Decrypt",
			"kms:ReEncrypt*",
			"kms:GenerateDataKey*",
			"kms:DescribeKey",
			"kms:CreateGrant",
		},
		Principal: &resources.Principal{AWS: users},
		Resource:  []construct.IaCValue{construct.Literal("*")},
		Condition: &resources.Condition{
			StringEquals: map[string]construct.IaCValue{
				"kms:ViaService": construct.Literal(fmt.Sprintf("ec2.%s.amazonaws.com", p.Env.Region)),
			},
		},
	})
	return doc
}

// accessPolicy builds the volume access policy. The first statement denies
// attaching or creating unencrypted volumes even though planning already
// forces encryption on; the redundancy is kept deliberately so the guarantee
// holds even for actors working outside this plan.
func (p Planner) accessPolicy(baseName string, volume *resources.EbsVolume) *resources.PolicyDocument {
	volumeWildcard := construct.Literal(fmt.Sprintf("arn:aws:ec2:%s:%s:volume/*", p.Env.Region, p.Env.AccountID))
	instanceWildcard := construct.Literal(fmt.Sprintf("arn:aws:ec2:%s:%s:instance/*", p.Env.Region, p.Env.AccountID))
	snapshotWildcard := construct.Literal(fmt.Sprintf("arn:aws:ec2:%s::snapshot/*", p.Env.Region))
	nameTagMatch := &resources.Condition{
		StringEquals: map[string]construct.IaCValue{
			"ec2:ResourceTag/Name": construct.Literal(baseName),
		},
	}

	return &resources.PolicyDocument{
		Version: resources.VERSION,
		Statement: []resources.StatementEntry{
			{
				Effect: "Deny",
				Action: []string{
					"ec2:AttachVolume",
					"ec2:CreateVolume",
					"ec2:ModifyVolume",
				},
				Resource: []construct.IaCValue{volumeWildcard},
				Condition: &resources.Condition{
					Bool: map[string]string{"ec2:Encrypted": "false"},
				},
			},
			{
				Effect: "Allow",
				Action: []string{
					"ec2:AttachVolume",
					"ec2:DetachVolume",
					"ec2:DescribeVolumes",
					"ec2:ModifyVolume",
				},
				Resource:  []construct.IaCValue{volume.ArnRef(), instanceWildcard},
				Condition: nameTagMatch,
			},
			{
				Effect: "Allow",
				Action: []string{
					"ec2:CreateSnapshot",
					"ec2:DescribeSnapshots",
					"ec2:DeleteSnapshot",
				},
				Resource:  []construct.IaCValue{volume.ArnRef(), snapshotWildcard},
				Condition: nameTagMatch,
			},
		},
	}
}

// dlmRolePolicy grants the lifecycle role snapshot management only; it can
// never mutate the volume itself.
func (p Planner) dlmRolePolicy() *resources.PolicyDocument {
	return &resources.PolicyDocument{
		Version: resources.VERSION,
		Statement: []resources.StatementEntry{
			{
				Effect: "Allow",
				Action: []string{
					"ec2:CreateSnapshot",
					"ec2:CreateSnapshots",
					"ec2:DeleteSnapshot",
					"ec2:DescribeVolumes",
					"ec2:DescribeSnapshots",
				},
				Resource: []construct.IaCValue{construct.Literal("*")},
			},
			{
				Effect: "Allow",
				Action: []string{"ec2:CreateTags"},
				Resource: []construct.IaCValue{
					construct.Literal(fmt.Sprintf("arn:aws:ec2:%s::snapshot/*", p.Env.Region)),
				},
			},
		},
	}
}
