package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownCandidates(t *testing.T) {
	instances := []Instance{
		{InstanceID: "i-dev", State: "running", Tags: map[string]string{"Environment": "Development"}},
		{InstanceID: "i-test", State: "running", Tags: map[string]string{"Environment": "Test"}},
		{InstanceID: "i-prod", State: "running", Tags: map[string]string{"Environment": "Production"}},
		{InstanceID: "i-untagged", State: "running", Tags: map[string]string{"Team": "payments"}},
		{InstanceID: "i-stopped-dev", State: "stopped", Tags: map[string]string{"Environment": "Dev"}},
		{InstanceID: "i-notags", State: "running"},
	}

	assert.Equal(t, []string{"i-dev", "i-test"}, ShutdownCandidates(instances))
}

func TestShutdownCandidates_AllNonProductionValues(t *testing.T) {
	for _, env := range []string{"Development", "Testing", "Dev", "Test"} {
		inst := Instance{InstanceID: "i-1", State: "running", Tags: map[string]string{"Environment": env}}
		assert.True(t, inst.IsShutdownCandidate(), "Environment=%s must be a candidate", env)
	}

	// Tag matching is exact, not case-insensitive.
	inst := Instance{InstanceID: "i-1", State: "running", Tags: map[string]string{"Environment": "development"}}
	assert.False(t, inst.IsShutdownCandidate())
}

func TestShutdownCandidates_Empty(t *testing.T) {
	assert.Nil(t, ShutdownCandidates(nil))
	assert.Nil(t, ShutdownCandidates([]Instance{{InstanceID: "i-1", State: "stopped"}}))
}

func TestECRLifecyclePolicyIsValidJSON(t *testing.T) {
	var policy struct {
		Rules []struct {
			RulePriority int    `json:"rulePriority"`
			Description  string `json:"description"`
			Selection    struct {
				TagStatus     string   `json:"tagStatus"`
				CountType     string   `json:"countType"`
				CountUnit     string   `json:"countUnit"`
				CountNumber   int      `json:"countNumber"`
				TagPrefixList []string `json:"tagPrefixList"`
			} `json:"selection"`
			Action struct {
				Type string `json:"type"`
			} `json:"action"`
		} `json:"rules"`
	}

	require.NoError(t, json.Unmarshal([]byte(ECRLifecyclePolicy), &policy))
	require.Len(t, policy.Rules, 2)

	assert.Equal(t, "untagged", policy.Rules[0].Selection.TagStatus)
	assert.Equal(t, 14, policy.Rules[0].Selection.CountNumber)
	assert.Equal(t, "expire", policy.Rules[0].Action.Type)

	assert.Equal(t, "tagged", policy.Rules[1].Selection.TagStatus)
	assert.Equal(t, []string{"v", "release"}, policy.Rules[1].Selection.TagPrefixList)
	assert.Equal(t, 30, policy.Rules[1].Selection.CountNumber)
}
