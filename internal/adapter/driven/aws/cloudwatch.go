package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
)

func (r *AWSRepositoryImpl) cloudwatchClient(ctx context.Context, profile, region string) (*cloudwatch.Client, error) {
	client, err := r.getServiceClient(ctx, profile, region, "cloudwatch")
	if err != nil {
		return nil, err
	}
	return client.(*cloudwatch.Client), nil
}

// ListAlarmNames lista os nomes de todos os alarmes de métrica da região
// cujo nome começa com o prefixo informado, esgotando todas as páginas.
func (r *AWSRepositoryImpl) ListAlarmNames(ctx context.Context, profile, region, prefix string) ([]string, error) {
	client, err := r.cloudwatchClient(ctx, profile, region)
	if err != nil {
		return nil, err
	}

	paginator := cloudwatch.NewDescribeAlarmsPaginator(client, &cloudwatch.DescribeAlarmsInput{
		AlarmNamePrefix: aws.String(prefix),
		AlarmTypes:      []cwTypes.AlarmType{cwTypes.AlarmTypeMetricAlarm},
	})

	var names []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error describing alarms with prefix %s in %s: %w", prefix, region, err)
		}
		for _, alarm := range page.MetricAlarms {
			names = append(names, aws.ToString(alarm.AlarmName))
		}
	}

	return names, nil
}

// PutAlarm aplica o estado desejado de um alarme. PutMetricAlarm é
// naturalmente idempotente: criação e atualização são a mesma chamada.
func (r *AWSRepositoryImpl) PutAlarm(ctx context.Context, profile, region string, spec entity.AlarmSpec) error {
	client, err := r.cloudwatchClient(ctx, profile, region)
	if err != nil {
		return err
	}

	dimensions := make([]cwTypes.Dimension, 0, len(spec.Dimensions))
	for _, d := range spec.Dimensions {
		dimensions = append(dimensions, cwTypes.Dimension{
			Name:  aws.String(d.Name),
			Value: aws.String(d.Value),
		})
	}

	_, err = client.PutMetricAlarm(ctx, &cloudwatch.PutMetricAlarmInput{
		AlarmName:          aws.String(spec.Name),
		MetricName:         aws.String(spec.MetricName),
		Namespace:          aws.String(spec.Namespace),
		Dimensions:         dimensions,
		Period:             aws.Int32(spec.Period),
		EvaluationPeriods:  aws.Int32(spec.EvaluationPeriods),
		Threshold:          aws.Float64(spec.Threshold),
		ComparisonOperator: cwTypes.ComparisonOperator(spec.ComparisonOperator),
		Statistic:          cwTypes.Statistic(spec.Statistic),
		ActionsEnabled:     aws.Bool(true),
		AlarmDescription:   aws.String(spec.Description),
	})
	if err != nil {
		return fmt.Errorf("error putting alarm %s in %s: %w", spec.Name, region, err)
	}
	return nil
}

// DeleteAlarms remove os alarmes informados em uma única chamada em lote.
func (r *AWSRepositoryImpl) DeleteAlarms(ctx context.Context, profile, region string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	client, err := r.cloudwatchClient(ctx, profile, region)
	if err != nil {
		return err
	}

	_, err = client.DeleteAlarms(ctx, &cloudwatch.DeleteAlarmsInput{
		AlarmNames: names,
	})
	if err != nil {
		return fmt.Errorf("error deleting %d alarms in %s: %w", len(names), region, err)
	}
	return nil
}
