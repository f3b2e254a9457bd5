package aws

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
)

func (r *AWSRepositoryImpl) costExplorerClient(ctx context.Context, profile string) (*costexplorer.Client, error) {
	client, err := r.getServiceClient(ctx, profile, "", "costexplorer")
	if err != nil {
		return nil, err
	}
	return client.(*costexplorer.Client), nil
}

// monthToDateWindow retorna o intervalo do primeiro dia do mês até hoje.
// No primeiro dia do mês o fim é estendido em um dia, pois o Cost Explorer
// exige Start < End.
func monthToDateWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := now
	if start.Day() == end.Day() && start.Month() == end.Month() && start.Year() == end.Year() {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

// GetCostSummary retorna o custo do mês corrente agrupado por serviço.
func (r *AWSRepositoryImpl) GetCostSummary(ctx context.Context, profile string) (entity.CostReport, error) {
	client, err := r.costExplorerClient(ctx, profile)
	if err != nil {
		return entity.CostReport{}, err
	}

	start, end := monthToDateWindow(time.Now().UTC())

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
	}

	result, err := client.GetCostAndUsage(ctx, input)
	if err != nil {
		return entity.CostReport{}, fmt.Errorf("failed to get cost summary: %w", err)
	}

	var serviceCosts []entity.ServiceCost
	var total float64
	if len(result.ResultsByTime) > 0 {
		for _, group := range result.ResultsByTime[0].Groups {
			cost, _ := strconv.ParseFloat(aws.ToString(group.Metrics["UnblendedCost"].Amount), 64)
			if cost > 0.001 {
				serviceCosts = append(serviceCosts, entity.ServiceCost{
					ServiceName: group.Keys[0],
					Cost:        cost,
				})
				total += cost
			}
		}
	}

	sort.Slice(serviceCosts, func(i, j int) bool {
		return serviceCosts[i].Cost > serviceCosts[j].Cost
	})

	report := entity.CostReport{
		PeriodStart: start,
		PeriodEnd:   end,
		TotalCost:   total,
		ByService:   serviceCosts,
	}
	report.AccountID, _ = r.GetAccountID(ctx, profile)
	report.Budgets, _ = r.GetBudgets(ctx, profile)

	return report, nil
}

// GetContainerCostSummary retorna o custo do mês corrente dos serviços de
// contêiner (ECS, ECR e EKS), agrupado por serviço e tipo de uso.
func (r *AWSRepositoryImpl) GetContainerCostSummary(ctx context.Context, profile string) (entity.ContainerCostReport, error) {
	client, err := r.costExplorerClient(ctx, profile)
	if err != nil {
		return entity.ContainerCostReport{}, err
	}

	start, end := monthToDateWindow(time.Now().UTC())

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("USAGE_TYPE")},
		},
		Filter: &ceTypes.Expression{
			Dimensions: &ceTypes.DimensionValues{
				Key:    "SERVICE",
				Values: entity.ContainerServices,
			},
		},
	}

	result, err := client.GetCostAndUsage(ctx, input)
	if err != nil {
		return entity.ContainerCostReport{}, fmt.Errorf("failed to get container cost summary: %w", err)
	}

	var lines []entity.UsageCost
	var total float64
	if len(result.ResultsByTime) > 0 {
		for _, group := range result.ResultsByTime[0].Groups {
			if len(group.Keys) < 2 {
				continue
			}
			amountStr := group.Metrics["UnblendedCost"].Amount
			if amountStr == nil {
				continue
			}
			cost, _ := strconv.ParseFloat(*amountStr, 64)
			if cost < 0.001 {
				continue
			}
			lines = append(lines, entity.UsageCost{
				ServiceName: group.Keys[0],
				UsageType:   group.Keys[1],
				Cost:        cost,
			})
			total += cost
		}
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].Cost > lines[j].Cost })

	return entity.ContainerCostReport{
		PeriodStart: start,
		PeriodEnd:   end,
		TotalCost:   total,
		ByUsage:     lines,
	}, nil
}
