package repository

import (
	"context"

	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions. It is the
// narrow gateway the use case reconciles against; an in-memory fake
// implementing it stands in for AWS in tests.
type AWSRepository interface {
	// Profile Operations
	GetAWSProfiles() []string
	GetAccountID(ctx context.Context, profile string) (string, error)

	// Region Operations
	GetAccessibleRegions(ctx context.Context, profile string) ([]string, error)

	// Budget Operations
	ListBudgetNames(ctx context.Context, profile string) ([]string, error)
	UpsertBudget(ctx context.Context, profile string, spec entity.BudgetSpec) error
	GetBudgets(ctx context.Context, profile string) ([]entity.BudgetInfo, error)

	// Alarm Operations
	ListAlarmNames(ctx context.Context, profile, region, prefix string) ([]string, error)
	PutAlarm(ctx context.Context, profile, region string, spec entity.AlarmSpec) error
	DeleteAlarms(ctx context.Context, profile, region string, names []string) error

	// EC2 Operations
	GetRunningInstances(ctx context.Context, profile string, regions []string) ([]entity.Instance, error)
	StopInstances(ctx context.Context, profile, region string, instanceIDs []string) error
	GetEC2Summary(ctx context.Context, profile string, regions []string) (entity.EC2Summary, error)

	// Container Operations
	ListECSServices(ctx context.Context, profile, region string) ([]entity.ECSService, error)
	ListECRRepositories(ctx context.Context, profile, region string) ([]entity.ECRRepository, error)
	PutECRLifecyclePolicy(ctx context.Context, profile, region, repositoryName, policyText string) error
	ListEKSClusters(ctx context.Context, profile, region string) ([]entity.EKSCluster, error)

	// Cost Operations
	GetCostSummary(ctx context.Context, profile string) (entity.CostReport, error)
	GetContainerCostSummary(ctx context.Context, profile string) (entity.ContainerCostReport, error)
}
