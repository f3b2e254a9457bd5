package entity

import "fmt"

// Alarm name prefixes. Each family of alarms owns one prefix so that the
// existing remote set can be listed per family and reconciled by name.
const (
	AlarmPrefixEC2LowCPU      = "LowCPU-"
	AlarmPrefixECSLowCPU      = "ECS-LowCPU-"
	AlarmPrefixECRHighStorage = "ECR-HighStorage-"
	AlarmPrefixEKS            = "EKS-"
)

// Comparison operators accepted by the monitoring gateway.
const (
	ComparisonLessThanThreshold    = "LessThanThreshold"
	ComparisonGreaterThanThreshold = "GreaterThanThreshold"
)

// Statistics accepted by the monitoring gateway.
const (
	StatisticAverage = "Average"
	StatisticMaximum = "Maximum"
)

// AlarmDimension identifies one dimension of the monitored metric.
// Order is significant and preserved on the wire.
type AlarmDimension struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AlarmSpec is the desired state of a single metric alarm. It is derived
// fresh from a resource snapshot on every run and never mutated afterwards.
type AlarmSpec struct {
	Name               string           `json:"name"`
	Namespace          string           `json:"namespace"`
	MetricName         string           `json:"metric_name"`
	Dimensions         []AlarmDimension `json:"dimensions"`
	Period             int32            `json:"period"`
	EvaluationPeriods  int32            `json:"evaluation_periods"`
	Threshold          float64          `json:"threshold"`
	ComparisonOperator string           `json:"comparison_operator"`
	Statistic          string           `json:"statistic"`
	Description        string           `json:"description"`
}

// EC2LowCPUAlarm returns the low-CPU alarm for a running EC2 instance.
func EC2LowCPUAlarm(instanceID string) AlarmSpec {
	return AlarmSpec{
		Name:               AlarmPrefixEC2LowCPU + instanceID,
		Namespace:          "AWS/EC2",
		MetricName:         "CPUUtilization",
		Dimensions:         []AlarmDimension{{Name: "InstanceId", Value: instanceID}},
		Period:             3600,
		EvaluationPeriods:  24,
		Threshold:          10.0,
		ComparisonOperator: ComparisonLessThanThreshold,
		Statistic:          StatisticAverage,
		Description:        fmt.Sprintf("CPU utilization is below 10%% for instance %s", instanceID),
	}
}

// ECSServiceLowCPUAlarm returns the low-CPU alarm for an ECS service.
func ECSServiceLowCPUAlarm(clusterName, serviceName string) AlarmSpec {
	return AlarmSpec{
		Name:       AlarmPrefixECSLowCPU + serviceName,
		Namespace:  "AWS/ECS",
		MetricName: "CPUUtilization",
		Dimensions: []AlarmDimension{
			{Name: "ClusterName", Value: clusterName},
			{Name: "ServiceName", Value: serviceName},
		},
		Period:             3600,
		EvaluationPeriods:  24,
		Threshold:          10.0,
		ComparisonOperator: ComparisonLessThanThreshold,
		Statistic:          StatisticAverage,
		Description:        fmt.Sprintf("CPU utilization is below 10%% for ECS service %s", serviceName),
	}
}

// ECRHighStorageAlarm returns the storage alarm for an ECR repository.
// Threshold is 10 GiB of stored images.
func ECRHighStorageAlarm(repositoryName string) AlarmSpec {
	return AlarmSpec{
		Name:               AlarmPrefixECRHighStorage + repositoryName,
		Namespace:          "AWS/ECR",
		MetricName:         "RepositorySize",
		Dimensions:         []AlarmDimension{{Name: "RepositoryName", Value: repositoryName}},
		Period:             86400,
		EvaluationPeriods:  1,
		Threshold:          10 * 1024 * 1024 * 1024,
		ComparisonOperator: ComparisonGreaterThanThreshold,
		Statistic:          StatisticMaximum,
		Description:        fmt.Sprintf("ECR repository %s size exceeds 10GB", repositoryName),
	}
}

// EKSControlPlaneAlarm returns the failed-node alarm for an EKS cluster.
func EKSControlPlaneAlarm(clusterName string) AlarmSpec {
	return AlarmSpec{
		Name:               AlarmPrefixEKS + "ControlPlane-" + clusterName,
		Namespace:          "ContainerInsights",
		MetricName:         "cluster_failed_node_count",
		Dimensions:         []AlarmDimension{{Name: "ClusterName", Value: clusterName}},
		Period:             300,
		EvaluationPeriods:  3,
		Threshold:          0,
		ComparisonOperator: ComparisonGreaterThanThreshold,
		Statistic:          StatisticMaximum,
		Description:        fmt.Sprintf("EKS cluster %s has failed nodes", clusterName),
	}
}

// EKSNodegroupCPUAlarm returns the low-CPU alarm for an EKS node group.
func EKSNodegroupCPUAlarm(clusterName, nodegroupName string) AlarmSpec {
	return AlarmSpec{
		Name:       AlarmPrefixEKS + "NodeGroup-CPU-" + clusterName + "-" + nodegroupName,
		Namespace:  "ContainerInsights",
		MetricName: "node_cpu_utilization",
		Dimensions: []AlarmDimension{
			{Name: "ClusterName", Value: clusterName},
			{Name: "NodeGroup", Value: nodegroupName},
		},
		Period:             3600,
		EvaluationPeriods:  24,
		Threshold:          20.0,
		ComparisonOperator: ComparisonLessThanThreshold,
		Statistic:          StatisticAverage,
		Description:        fmt.Sprintf("Node group %s in cluster %s has low CPU utilization", nodegroupName, clusterName),
	}
}
