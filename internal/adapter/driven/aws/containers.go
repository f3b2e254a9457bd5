package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
)

// describeServicesBatchSize é o limite da API DescribeServices.
const describeServicesBatchSize = 10

// ListECSServices enumera todos os serviços de todos os clusters ECS da
// região, esgotando as páginas de clusters e de serviços antes de retornar.
func (r *AWSRepositoryImpl) ListECSServices(ctx context.Context, profile, region string) ([]entity.ECSService, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ecs")
	if err != nil {
		return nil, err
	}
	ecsClient := client.(*ecs.Client)

	var clusterArns []string
	clustersPaginator := ecs.NewListClustersPaginator(ecsClient, &ecs.ListClustersInput{})
	for clustersPaginator.HasMorePages() {
		page, err := clustersPaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing ECS clusters in %s: %w", region, err)
		}
		clusterArns = append(clusterArns, page.ClusterArns...)
	}

	var services []entity.ECSService
	for _, clusterArn := range clusterArns {
		clusterName := arnResourceName(clusterArn)

		var serviceArns []string
		servicesPaginator := ecs.NewListServicesPaginator(ecsClient, &ecs.ListServicesInput{
			Cluster: aws.String(clusterArn),
		})
		for servicesPaginator.HasMorePages() {
			page, err := servicesPaginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("error listing services in cluster %s: %w", clusterName, err)
			}
			serviceArns = append(serviceArns, page.ServiceArns...)
		}

		for start := 0; start < len(serviceArns); start += describeServicesBatchSize {
			end := start + describeServicesBatchSize
			if end > len(serviceArns) {
				end = len(serviceArns)
			}

			described, err := ecsClient.DescribeServices(ctx, &ecs.DescribeServicesInput{
				Cluster:  aws.String(clusterArn),
				Services: serviceArns[start:end],
			})
			if err != nil {
				return nil, fmt.Errorf("error describing services in cluster %s: %w", clusterName, err)
			}
			for _, svc := range described.Services {
				services = append(services, entity.ECSService{
					ClusterName: clusterName,
					ServiceName: aws.ToString(svc.ServiceName),
				})
			}
		}
	}

	return services, nil
}

// ListECRRepositories enumera todos os repositórios ECR da região.
func (r *AWSRepositoryImpl) ListECRRepositories(ctx context.Context, profile, region string) ([]entity.ECRRepository, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ecr")
	if err != nil {
		return nil, err
	}
	ecrClient := client.(*ecr.Client)

	var repositories []entity.ECRRepository
	paginator := ecr.NewDescribeRepositoriesPaginator(ecrClient, &ecr.DescribeRepositoriesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error describing ECR repositories in %s: %w", region, err)
		}
		for _, repo := range page.Repositories {
			repositories = append(repositories, entity.ECRRepository{
				Name: aws.ToString(repo.RepositoryName),
			})
		}
	}

	return repositories, nil
}

// PutECRLifecyclePolicy aplica a política de ciclo de vida ao repositório.
// A chamada é idempotente: a política anterior é substituída integralmente.
func (r *AWSRepositoryImpl) PutECRLifecyclePolicy(ctx context.Context, profile, region, repositoryName, policyText string) error {
	client, err := r.getServiceClient(ctx, profile, region, "ecr")
	if err != nil {
		return err
	}
	ecrClient := client.(*ecr.Client)

	_, err = ecrClient.PutLifecyclePolicy(ctx, &ecr.PutLifecyclePolicyInput{
		RepositoryName:      aws.String(repositoryName),
		LifecyclePolicyText: aws.String(policyText),
	})
	if err != nil {
		return fmt.Errorf("error putting lifecycle policy on repository %s: %w", repositoryName, err)
	}
	return nil
}

// ListEKSClusters enumera os clusters EKS da região com seus node groups.
func (r *AWSRepositoryImpl) ListEKSClusters(ctx context.Context, profile, region string) ([]entity.EKSCluster, error) {
	client, err := r.getServiceClient(ctx, profile, region, "eks")
	if err != nil {
		return nil, err
	}
	eksClient := client.(*eks.Client)

	var clusterNames []string
	clustersPaginator := eks.NewListClustersPaginator(eksClient, &eks.ListClustersInput{})
	for clustersPaginator.HasMorePages() {
		page, err := clustersPaginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing EKS clusters in %s: %w", region, err)
		}
		clusterNames = append(clusterNames, page.Clusters...)
	}

	clusters := make([]entity.EKSCluster, 0, len(clusterNames))
	for _, clusterName := range clusterNames {
		var nodegroups []string
		nodegroupsPaginator := eks.NewListNodegroupsPaginator(eksClient, &eks.ListNodegroupsInput{
			ClusterName: aws.String(clusterName),
		})
		for nodegroupsPaginator.HasMorePages() {
			page, err := nodegroupsPaginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("error listing node groups for cluster %s: %w", clusterName, err)
			}
			nodegroups = append(nodegroups, page.Nodegroups...)
		}

		clusters = append(clusters, entity.EKSCluster{
			Name:       clusterName,
			Nodegroups: nodegroups,
		})
	}

	return clusters, nil
}

// arnResourceName extrai o nome do recurso de um ARN (último segmento).
func arnResourceName(arn string) string {
	parts := strings.Split(arn, "/")
	return parts[len(parts)-1]
}
