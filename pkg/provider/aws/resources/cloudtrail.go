package resources

import (
	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/sanitization/aws"
)

const CLOUDTRAIL_TYPE = "cloudtrail_trail"

type (
	CloudtrailTrail struct {
		Name                       string
		TrailName                  string
		S3BucketName               string
		IsMultiRegionTrail         bool
		IncludeGlobalServiceEvents bool
		EventSelectors             []EventSelector
		Tags                       map[string]string
	}

	EventSelector struct {
		ReadWriteType           string         `yaml:"read_write_type" json:"read_write_type"`
		IncludeManagementEvents bool           `yaml:"include_management_events" json:"include_management_events"`
		DataResources           []DataResource `yaml:"data_resources" json:"data_resources"`
	}

	DataResource struct {
		Type   string               `yaml:"type" json:"type"`
		Values []construct.IaCValue `yaml:"values" json:"values"`
	}
)

// NewCloudtrailTrail builds a single-region trail scoped to exactly the
// given volume: data events for the volume itself and for its snapshots
// ("<volume arn>/*"). Management and global service events stay off so the
// trail records nothing beyond this volume's activity.
func NewCloudtrailTrail(baseName string, bucketName string, volume *EbsVolume, tags map[string]string) *CloudtrailTrail {
	name := aws.CloudtrailSanitizer.Apply(baseName + "-trail")
	return &CloudtrailTrail{
		Name:                       name,
		TrailName:                  name,
		S3BucketName:               bucketName,
		IsMultiRegionTrail:         false,
		IncludeGlobalServiceEvents: false,
		EventSelectors: []EventSelector{
			{
				ReadWriteType:           "All",
				IncludeManagementEvents: false,
				DataResources: []DataResource{
					{
						Type:   "AWS::EC2::Volume",
						Values: []construct.IaCValue{volume.ArnRef()},
					},
					{
						Type: "AWS::EC2::Snapshot",
						Values: []construct.IaCValue{
							{ResourceId: volume.Id(), Property: construct.ArnProperty, Suffix: "/*"},
						},
					},
				},
			},
		},
		Tags: tags,
	}
}

// Id returns the id of the cloud resource
func (trail *CloudtrailTrail) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     CLOUDTRAIL_TYPE,
		Name:     trail.Name,
	}
}

func (trail *CloudtrailTrail) Properties() map[string]any {
	return map[string]any{
		"trail_name":                    trail.TrailName,
		"s3_bucket_name":                trail.S3BucketName,
		"is_multi_region_trail":         trail.IsMultiRegionTrail,
		"include_global_service_events": trail.IncludeGlobalServiceEvents,
		"event_selectors":               trail.EventSelectors,
		"tags":                          trail.Tags,
	}
}
