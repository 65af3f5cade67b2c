package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackmason/ebsplan/pkg/construct"
)

func intPtr(v int) *int { return &v }

func Test_EbsVolumeProperties(t *testing.T) {
	cases := []struct {
		name           string
		volumeType     string
		iops           *int
		throughput     *int
		wantIops       bool
		wantThroughput bool
	}{
		{
			name:           "gp3 carries iops and throughput",
			volumeType:     "gp3",
			iops:           intPtr(3000),
			throughput:     intPtr(250),
			wantIops:       true,
			wantThroughput: true,
		},
		{
			name:       "io1 carries iops only",
			volumeType: "io1",
			iops:       intPtr(4000),
			wantIops:   true,
		},
		{
			name:       "st1 carries neither",
			volumeType: "st1",
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			volume := NewEbsVolume("team-data", map[string]string{"Name": "team-data"})
			volume.VolumeType = tt.volumeType
			volume.Iops = tt.iops
			volume.Throughput = tt.throughput

			properties := volume.Properties()
			_, hasIops := properties["iops"]
			_, hasThroughput := properties["throughput"]
			assert.Equal(tt.wantIops, hasIops)
			assert.Equal(tt.wantThroughput, hasThroughput)
			assert.Equal(true, properties["encrypted"])
		})
	}
}

func Test_NewEbsVolumeIsEncrypted(t *testing.T) {
	assert := assert.New(t)

	volume := NewEbsVolume("data", nil)
	assert.True(volume.Encrypted)
	assert.Equal("aws:ebs_volume:data", volume.Id().String())
	assert.Equal(construct.Ref(volume.Id(), construct.ArnProperty), volume.ArnRef())
}

func Test_EbsSnapshotReferencesVolume(t *testing.T) {
	assert := assert.New(t)

	volume := NewEbsVolume("data", nil)
	snapshot := NewEbsSnapshot(volume, nil)

	assert.Equal("data-initial", snapshot.Name)
	ref, ok := snapshot.Properties()["volume_id"].(construct.IaCValue)
	if assert.True(ok) {
		assert.Equal(volume.Id(), ref.ResourceId)
	}
}
