package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlarmNamesAreDeterministic(t *testing.T) {
	assert.Equal(t, "LowCPU-i-0abc123", EC2LowCPUAlarm("i-0abc123").Name)
	assert.Equal(t, "ECS-LowCPU-checkout", ECSServiceLowCPUAlarm("prod", "checkout").Name)
	assert.Equal(t, "ECR-HighStorage-api-images", ECRHighStorageAlarm("api-images").Name)
	assert.Equal(t, "EKS-ControlPlane-main", EKSControlPlaneAlarm("main").Name)
	assert.Equal(t, "EKS-NodeGroup-CPU-main-spot", EKSNodegroupCPUAlarm("main", "spot").Name)
}

func TestEC2LowCPUAlarm(t *testing.T) {
	spec := EC2LowCPUAlarm("i-1")

	assert.Equal(t, "AWS/EC2", spec.Namespace)
	assert.Equal(t, "CPUUtilization", spec.MetricName)
	assert.Equal(t, []AlarmDimension{{Name: "InstanceId", Value: "i-1"}}, spec.Dimensions)
	assert.Equal(t, int32(3600), spec.Period)
	assert.Equal(t, int32(24), spec.EvaluationPeriods)
	assert.Equal(t, 10.0, spec.Threshold)
	assert.Equal(t, ComparisonLessThanThreshold, spec.ComparisonOperator)
	assert.Equal(t, StatisticAverage, spec.Statistic)
}

func TestECSServiceLowCPUAlarm_DimensionOrder(t *testing.T) {
	spec := ECSServiceLowCPUAlarm("prod", "checkout")

	// ClusterName must come before ServiceName on the wire.
	assert.Equal(t, []AlarmDimension{
		{Name: "ClusterName", Value: "prod"},
		{Name: "ServiceName", Value: "checkout"},
	}, spec.Dimensions)
}

func TestECRHighStorageAlarm(t *testing.T) {
	spec := ECRHighStorageAlarm("api-images")

	assert.Equal(t, "RepositorySize", spec.MetricName)
	assert.Equal(t, float64(10*1024*1024*1024), spec.Threshold)
	assert.Equal(t, ComparisonGreaterThanThreshold, spec.ComparisonOperator)
	assert.Equal(t, StatisticMaximum, spec.Statistic)
	assert.Equal(t, int32(86400), spec.Period)
	assert.Equal(t, int32(1), spec.EvaluationPeriods)
}

func TestEKSAlarms(t *testing.T) {
	cp := EKSControlPlaneAlarm("main")
	assert.Equal(t, "ContainerInsights", cp.Namespace)
	assert.Equal(t, "cluster_failed_node_count", cp.MetricName)
	assert.Equal(t, float64(0), cp.Threshold)

	ng := EKSNodegroupCPUAlarm("main", "spot")
	assert.Equal(t, "ContainerInsights", ng.Namespace)
	assert.Equal(t, "node_cpu_utilization", ng.MetricName)
	assert.Equal(t, 20.0, ng.Threshold)
	assert.Equal(t, []AlarmDimension{
		{Name: "ClusterName", Value: "main"},
		{Name: "NodeGroup", Value: "spot"},
	}, ng.Dimensions)
}
