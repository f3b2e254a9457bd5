package entity

import "time"

// Budget notification thresholds, as percentages of actual spend.
var BudgetThresholds = []float64{50.0, 80.0, 100.0}

// BudgetSpec is the desired state of the monthly cost budget. The name is
// keyed by the current year-month so a new budget rolls over each month.
type BudgetSpec struct {
	Name            string    `json:"name"`
	LimitAmount     float64   `json:"limit_amount"`
	CurrencyUnit    string    `json:"currency_unit"`
	Thresholds      []float64 `json:"thresholds"`
	SubscriberEmail string    `json:"subscriber_email"`
}

// MonthlyBudgetName returns the deterministic budget name for the month
// containing now, e.g. "monthly-budget-2026-08".
func MonthlyBudgetName(now time.Time) string {
	return "monthly-budget-" + now.Format("2006-01")
}

// NewMonthlyBudget builds the budget spec for the month containing now.
func NewMonthlyBudget(now time.Time, limit float64, email string) BudgetSpec {
	return BudgetSpec{
		Name:            MonthlyBudgetName(now),
		LimitAmount:     limit,
		CurrencyUnit:    "USD",
		Thresholds:      BudgetThresholds,
		SubscriberEmail: email,
	}
}

// BudgetInfo represents a budget with actual and forecasted spend, as read
// back from the billing gateway.
type BudgetInfo struct {
	Name     string  `json:"name"`
	Limit    float64 `json:"limit"`
	Actual   float64 `json:"actual"`
	Forecast float64 `json:"forecast,omitempty"`
}
