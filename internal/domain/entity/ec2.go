package entity

// EC2Summary is a map of instance state names to instance counts.
type EC2Summary map[string]int

// Instance represents one EC2 instance with the attributes the guardian
// cares about. Tags are flattened to a simple key-value map.
type Instance struct {
	InstanceID string            `json:"instance_id"`
	Region     string            `json:"region"`
	State      string            `json:"state"`
	Tags       map[string]string `json:"tags,omitempty"`
}

// EnvironmentTagKey is the tag that marks an instance's environment.
const EnvironmentTagKey = "Environment"

// NonProductionEnvironments are the Environment tag values that mark an
// instance as safe to stop outside business hours.
var NonProductionEnvironments = []string{"Development", "Testing", "Dev", "Test"}

// IsShutdownCandidate reports whether the instance is running and tagged
// with a non-production environment. An instance without the Environment
// tag is never a candidate.
func (i Instance) IsShutdownCandidate() bool {
	if i.State != "running" {
		return false
	}
	env, ok := i.Tags[EnvironmentTagKey]
	if !ok {
		return false
	}
	for _, v := range NonProductionEnvironments {
		if env == v {
			return true
		}
	}
	return false
}

// ShutdownCandidates filters instances down to the IDs that should be
// stopped, preserving input order.
func ShutdownCandidates(instances []Instance) []string {
	var ids []string
	for _, inst := range instances {
		if inst.IsShutdownCandidate() {
			ids = append(ids, inst.InstanceID)
		}
	}
	return ids
}
