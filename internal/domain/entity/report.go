package entity

// RunReport is the outcome of one guardian pass over one profile. Each
// top-level operation is an independent failure domain: a gateway error
// fails its own flag and leaves the others untouched.
type RunReport struct {
	Profile   string `json:"profile"`
	AccountID string `json:"account_id,omitempty"`

	BudgetOK     bool `json:"budget_ok"`
	MonitoringOK bool `json:"monitoring_ok"`
	ShutdownOK   bool `json:"shutdown_ok"`
	ContainersOK bool `json:"containers_ok"`

	AlarmsUpserted   int      `json:"alarms_upserted"`
	AlarmsDeleted    int      `json:"alarms_deleted"`
	StoppedInstances []string `json:"stopped_instances,omitempty"`

	EC2Summary EC2Summary          `json:"ec2_summary,omitempty"`
	Cost       CostReport          `json:"cost"`
	Containers ContainerCostReport `json:"container_cost"`

	Errors []string `json:"errors,omitempty"`
}

// Succeeded reports whether every failure domain completed cleanly.
func (r RunReport) Succeeded() bool {
	return r.BudgetOK && r.MonitoringOK && r.ShutdownOK && r.ContainersOK
}
