package aws

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	budgetTypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
	"github.com/diillson/aws-cost-guardian/internal/domain/entity"
)

func (r *AWSRepositoryImpl) budgetsClient(ctx context.Context, profile string) (*budgets.Client, string, error) {
	client, err := r.getServiceClient(ctx, profile, "", "budgets")
	if err != nil {
		return nil, "", err
	}
	accountID, err := r.GetAccountID(ctx, profile)
	if err != nil {
		return nil, "", err
	}
	return client.(*budgets.Client), accountID, nil
}

// ListBudgetNames retorna os nomes de todos os budgets da conta.
func (r *AWSRepositoryImpl) ListBudgetNames(ctx context.Context, profile string) ([]string, error) {
	client, accountID, err := r.budgetsClient(ctx, profile)
	if err != nil {
		return nil, err
	}

	var names []string
	var nextToken *string
	for {
		result, err := client.DescribeBudgets(ctx, &budgets.DescribeBudgetsInput{
			AccountId: aws.String(accountID),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("error describing budgets for profile %s: %w", profile, err)
		}
		for _, budget := range result.Budgets {
			names = append(names, aws.ToString(budget.BudgetName))
		}
		if result.NextToken == nil {
			break
		}
		nextToken = result.NextToken
	}

	return names, nil
}

// UpsertBudget cria ou atualiza o budget mensal com o mesmo payload nos dois
// casos. A API de Budgets não possui uma chamada única de upsert, então a
// existência é verificada pelo nome exato antes de decidir entre
// CreateBudget (com as notificações) e UpdateBudget.
//
// Duas invocações simultâneas podem intercalar describe/create e uma delas
// falhar: a API não oferece verificação otimista de concorrência.
func (r *AWSRepositoryImpl) UpsertBudget(ctx context.Context, profile string, spec entity.BudgetSpec) error {
	client, accountID, err := r.budgetsClient(ctx, profile)
	if err != nil {
		return err
	}

	existingNames, err := r.ListBudgetNames(ctx, profile)
	if err != nil {
		return err
	}

	exists := false
	for _, name := range existingNames {
		if name == spec.Name {
			exists = true
			break
		}
	}

	budget := budgetTypes.Budget{
		BudgetName: aws.String(spec.Name),
		BudgetLimit: &budgetTypes.Spend{
			Amount: aws.String(strconv.FormatFloat(spec.LimitAmount, 'f', -1, 64)),
			Unit:   aws.String(spec.CurrencyUnit),
		},
		TimeUnit:   budgetTypes.TimeUnitMonthly,
		BudgetType: budgetTypes.BudgetTypeCost,
	}

	if exists {
		_, err = client.UpdateBudget(ctx, &budgets.UpdateBudgetInput{
			AccountId: aws.String(accountID),
			NewBudget: &budget,
		})
		if err != nil {
			return fmt.Errorf("error updating budget %s: %w", spec.Name, err)
		}
		return nil
	}

	notifications := make([]budgetTypes.NotificationWithSubscribers, 0, len(spec.Thresholds))
	for _, threshold := range spec.Thresholds {
		notifications = append(notifications, budgetTypes.NotificationWithSubscribers{
			Notification: &budgetTypes.Notification{
				ComparisonOperator: budgetTypes.ComparisonOperatorGreaterThan,
				NotificationType:   budgetTypes.NotificationTypeActual,
				Threshold:          threshold,
				ThresholdType:      budgetTypes.ThresholdTypePercentage,
				NotificationState:  budgetTypes.NotificationStateAlarm,
			},
			Subscribers: []budgetTypes.Subscriber{
				{
					SubscriptionType: budgetTypes.SubscriptionTypeEmail,
					Address:          aws.String(spec.SubscriberEmail),
				},
			},
		})
	}

	_, err = client.CreateBudget(ctx, &budgets.CreateBudgetInput{
		AccountId:                    aws.String(accountID),
		Budget:                       &budget,
		NotificationsWithSubscribers: notifications,
	})
	if err != nil {
		return fmt.Errorf("error creating budget %s: %w", spec.Name, err)
	}
	return nil
}

// GetBudgets retorna os budgets da conta com gasto atual e previsto.
func (r *AWSRepositoryImpl) GetBudgets(ctx context.Context, profile string) ([]entity.BudgetInfo, error) {
	client, accountID, err := r.budgetsClient(ctx, profile)
	if err != nil {
		return nil, err
	}

	result, err := client.DescribeBudgets(ctx, &budgets.DescribeBudgetsInput{
		AccountId: aws.String(accountID),
	})
	if err != nil {
		return nil, nil // Not a fatal error
	}

	budgetsData := []entity.BudgetInfo{}
	for _, budget := range result.Budgets {
		b := entity.BudgetInfo{Name: aws.ToString(budget.BudgetName)}
		if budget.BudgetLimit != nil {
			b.Limit, _ = strconv.ParseFloat(aws.ToString(budget.BudgetLimit.Amount), 64)
		}
		if budget.CalculatedSpend != nil {
			if budget.CalculatedSpend.ActualSpend != nil {
				b.Actual, _ = strconv.ParseFloat(aws.ToString(budget.CalculatedSpend.ActualSpend.Amount), 64)
			}
			if budget.CalculatedSpend.ForecastedSpend != nil {
				b.Forecast, _ = strconv.ParseFloat(aws.ToString(budget.CalculatedSpend.ForecastedSpend.Amount), 64)
			}
		}
		budgetsData = append(budgetsData, b)
	}

	return budgetsData, nil
}
