package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
)

func (r *AWSRepositoryImpl) ec2Client(ctx context.Context, profile, region string) (*ec2.Client, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ec2")
	if err != nil {
		return nil, err
	}
	return client.(*ec2.Client), nil
}

// GetRunningInstances lista todas as instâncias em execução nas regiões
// informadas, com as tags achatadas em um mapa. As regiões são percorridas
// sequencialmente; a primeira falha aborta a enumeração.
func (r *AWSRepositoryImpl) GetRunningInstances(ctx context.Context, profile string, regions []string) ([]entity.Instance, error) {
	var instances []entity.Instance

	for _, region := range regions {
		client, err := r.ec2Client(ctx, profile, region)
		if err != nil {
			return nil, err
		}

		paginator := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{
			Filters: []ec2Types.Filter{
				{Name: aws.String("instance-state-name"), Values: []string{"running"}},
			},
		})

		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("error describing instances in %s: %w", region, err)
			}
			for _, reservation := range page.Reservations {
				for _, inst := range reservation.Instances {
					instances = append(instances, toInstance(inst, region))
				}
			}
		}
	}

	return instances, nil
}

func toInstance(inst ec2Types.Instance, region string) entity.Instance {
	var state string
	if inst.State != nil {
		state = string(inst.State.Name)
	}

	tags := make(map[string]string, len(inst.Tags))
	for _, tag := range inst.Tags {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return entity.Instance{
		InstanceID: aws.ToString(inst.InstanceId),
		Region:     region,
		State:      state,
		Tags:       tags,
	}
}

// StopInstances pára as instâncias informadas em uma única chamada.
func (r *AWSRepositoryImpl) StopInstances(ctx context.Context, profile, region string, instanceIDs []string) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	client, err := r.ec2Client(ctx, profile, region)
	if err != nil {
		return err
	}

	_, err = client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: instanceIDs,
	})
	if err != nil {
		return fmt.Errorf("error stopping %d instances in %s: %w", len(instanceIDs), region, err)
	}
	return nil
}

// GetEC2Summary conta instâncias por estado em todas as regiões informadas.
func (r *AWSRepositoryImpl) GetEC2Summary(ctx context.Context, profile string, regions []string) (entity.EC2Summary, error) {
	summary := make(entity.EC2Summary)

	for _, region := range regions {
		client, err := r.ec2Client(ctx, profile, region)
		if err != nil {
			return nil, err
		}

		paginator := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("error summarizing instances in %s: %w", region, err)
			}
			for _, reservation := range page.Reservations {
				for _, instance := range reservation.Instances {
					if instance.State != nil {
						summary[string(instance.State.Name)]++
					}
				}
			}
		}
	}

	if _, ok := summary["running"]; !ok {
		summary["running"] = 0
	}
	if _, ok := summary["stopped"]; !ok {
		summary["stopped"] = 0
	}

	return summary, nil
}
