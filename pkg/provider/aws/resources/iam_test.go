package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackmason/ebsplan/pkg/construct"
)

func Test_DlmAssumeRolePolicy(t *testing.T) {
	assert := assert.New(t)

	if !assert.Len(DLM_ASSUME_ROLE_POLICY.Statement, 1) {
		return
	}
	statement := DLM_ASSUME_ROLE_POLICY.Statement[0]
	assert.Equal("Allow", statement.Effect)
	assert.Equal([]string{"sts:AssumeRole"}, statement.Action)
	assert.Equal("dlm.amazonaws.com", statement.Principal.Service)
}

func Test_NewIamRolePolicy(t *testing.T) {
	assert := assert.New(t)

	role := NewIamRole("team-data", "-dlm-role", DLM_ASSUME_ROLE_POLICY, nil)
	doc := CreateAllowPolicyDocument([]string{"ec2:DescribeSnapshots"}, []construct.IaCValue{construct.Literal("*")})
	rolePolicy := NewIamRolePolicy("team-data", "-dlm-role-policy", role, doc)

	assert.Equal("team-data-dlm-role", role.Name)
	assert.Equal("team-data-dlm-role-policy", rolePolicy.Name)

	ref, ok := rolePolicy.Properties()["role"].(construct.IaCValue)
	if assert.True(ok) {
		assert.Equal(role.Id(), ref.ResourceId)
	}
}
