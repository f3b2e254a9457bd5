package entity

import "time"

// ServiceCost represents a cost amount for a specific AWS service.
type ServiceCost struct {
	ServiceName string  `json:"service_name"`
	Cost        float64 `json:"cost"`
}

// UsageCost represents a cost amount for a (service, usage type) pair,
// used by the container cost breakdown.
type UsageCost struct {
	ServiceName string  `json:"service_name"`
	UsageType   string  `json:"usage_type"`
	Cost        float64 `json:"cost"`
}

// CostReport contains the month-to-date cost summary for an account.
type CostReport struct {
	AccountID   string        `json:"account_id,omitempty"`
	PeriodStart time.Time     `json:"period_start"`
	PeriodEnd   time.Time     `json:"period_end"`
	TotalCost   float64       `json:"total_cost"`
	ByService   []ServiceCost `json:"by_service"`
	Budgets     []BudgetInfo  `json:"budgets,omitempty"`
}

// ContainerCostReport breaks the month-to-date container spend down by
// service and usage type (ECS, ECR, EKS only).
type ContainerCostReport struct {
	PeriodStart time.Time   `json:"period_start"`
	PeriodEnd   time.Time   `json:"period_end"`
	TotalCost   float64     `json:"total_cost"`
	ByUsage     []UsageCost `json:"by_usage"`
}

// ContainerServices are the Cost Explorer SERVICE dimension values that
// make up the container cost breakdown.
var ContainerServices = []string{
	"Amazon Elastic Container Service",
	"Amazon Elastic Container Registry",
	"Amazon Elastic Kubernetes Service",
}
