package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackmason/ebsplan/pkg/construct"
)

func testIntents() []construct.ResourceIntent {
	return []construct.ResourceIntent{
		{Kind: "kms_key", LogicalName: "kms_key", Fields: map[string]any{}},
		{Kind: "ebs_volume", LogicalName: "volume", Fields: map[string]any{}, DependsOn: []string{"kms_key"}},
	}
}

func Test_FakeAssignsDeterministicIds(t *testing.T) {
	assert := assert.New(t)

	fake := NewFake("123456789012", "us-east-1")
	first, err := fake.Apply(context.Background(), testIntents())
	assert.NoError(err)
	second, err := fake.Apply(context.Background(), testIntents())
	assert.NoError(err)
	assert.Equal(first, second)

	volume, ok := first.Realized("volume")
	if assert.True(ok) {
		assert.Contains(volume.ID, "vol-")
		assert.Contains(volume.Arn, "arn:aws:ec2:us-east-1:123456789012:volume/")
	}
}

func Test_FakePartialResult(t *testing.T) {
	assert := assert.New(t)

	fake := NewFake("123456789012", "us-east-1")
	fake.Fail.Add("volume")
	result, err := fake.Apply(context.Background(), testIntents())
	assert.NoError(err)

	_, ok := result.Realized("volume")
	assert.False(ok)
	_, ok = result.Realized("kms_key")
	assert.True(ok)
}

func Test_BackendError(t *testing.T) {
	assert := assert.New(t)

	err := &BackendError{LogicalName: "volume", Err: context.DeadlineExceeded}
	assert.Contains(err.Error(), `"volume"`)
	assert.ErrorIs(err, context.DeadlineExceeded)
}
