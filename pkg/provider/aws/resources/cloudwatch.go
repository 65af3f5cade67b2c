package resources

import (
	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/sanitization/aws"
)

const LOG_GROUP_TYPE = "log_group"

var logGroupSanitizer = aws.CloudwatchLogGroupSanitizer

type LogGroup struct {
	Name            string
	LogGroupName    string
	RetentionInDays int
	// KmsKeyArn encrypts the log group with the same key the volume uses.
	KmsKeyArn construct.IaCValue
	Tags      map[string]string
}

func NewLogGroup(baseName string, retentionInDays int, tags map[string]string) *LogGroup {
	name := logGroupSanitizer.Apply(baseName + "-logs")
	return &LogGroup{
		Name:            name,
		LogGroupName:    logGroupSanitizer.Apply("/aws/ebs/" + baseName),
		RetentionInDays: retentionInDays,
		Tags:            tags,
	}
}

// Id returns the id of the cloud resource
func (lg *LogGroup) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     LOG_GROUP_TYPE,
		Name:     lg.Name,
	}
}

func (lg *LogGroup) Properties() map[string]any {
	return map[string]any{
		"log_group_name":    lg.LogGroupName,
		"retention_in_days": lg.RetentionInDays,
		"kms_key_arn":       lg.KmsKeyArn,
		"tags":              lg.Tags,
	}
}
