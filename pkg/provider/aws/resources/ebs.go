package resources

import (
	"fmt"

	"github.com/stackmason/ebsplan/pkg/construct"
	"github.com/stackmason/ebsplan/pkg/sanitization/aws"
)

const (
	EBS_VOLUME_TYPE   = "ebs_volume"
	EBS_SNAPSHOT_TYPE = "ebs_snapshot"
)

type (
	EbsVolume struct {
		Name             string
		AvailabilityZone string
		Size             int
		VolumeType       string
		Iops             *int
		Throughput       *int
		// Encrypted is always true; the planner never emits a volume bound
		// to no key.
		Encrypted     bool
		KmsKeyId      construct.IaCValue
		FinalSnapshot bool
		Tags          map[string]string
	}

	EbsSnapshot struct {
		Name        string
		Description string
		Volume      *EbsVolume
		Tags        map[string]string
	}
)

func NewEbsVolume(baseName string, tags map[string]string) *EbsVolume {
	return &EbsVolume{
		Name:      aws.EbsVolumeSanitizer.Apply(baseName),
		Encrypted: true,
		Tags:      tags,
	}
}

func NewEbsSnapshot(volume *EbsVolume, tags map[string]string) *EbsSnapshot {
	return &EbsSnapshot{
		Name:        aws.EbsSnapshotSanitizer.Apply(volume.Name + "-initial"),
		Description: fmt.Sprintf("Initial snapshot of volume %s", volume.Name),
		Volume:      volume,
		Tags:        tags,
	}
}

// Id returns the id of the cloud resource
func (volume *EbsVolume) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     EBS_VOLUME_TYPE,
		Name:     volume.Name,
	}
}

// Properties renders the volume's provider fields. Iops and Throughput are
// omitted entirely when unset so the backend never sees a zero value for a
// volume type that does not support them.
func (volume *EbsVolume) Properties() map[string]any {
	properties := map[string]any{
		"availability_zone": volume.AvailabilityZone,
		"size":              volume.Size,
		"type":              volume.VolumeType,
		"encrypted":         volume.Encrypted,
		"kms_key_id":        volume.KmsKeyId,
		"final_snapshot":    volume.FinalSnapshot,
		"tags":              volume.Tags,
	}
	if volume.Iops != nil {
		properties["iops"] = *volume.Iops
	}
	if volume.Throughput != nil {
		properties["throughput"] = *volume.Throughput
	}
	return properties
}

// ArnRef is the placeholder for this volume's ARN, resolvable once the
// backend has realized the volume.
func (volume *EbsVolume) ArnRef() construct.IaCValue {
	return construct.Ref(volume.Id(), construct.ArnProperty)
}

// Id returns the id of the cloud resource
func (snapshot *EbsSnapshot) Id() construct.ResourceId {
	return construct.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     EBS_SNAPSHOT_TYPE,
		Name:     snapshot.Name,
	}
}

func (snapshot *EbsSnapshot) Properties() map[string]any {
	return map[string]any{
		"description": snapshot.Description,
		"volume_id":   construct.Ref(snapshot.Volume.Id(), construct.IdProperty),
		"tags":        snapshot.Tags,
	}
}
