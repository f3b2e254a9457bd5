package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyBudgetName(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "monthly-budget-2026-08", MonthlyBudgetName(now))

	jan := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "monthly-budget-2027-01", MonthlyBudgetName(jan))
}

func TestNewMonthlyBudget(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	spec := NewMonthlyBudget(now, 100.0, "finops@example.com")

	assert.Equal(t, "monthly-budget-2026-08", spec.Name)
	assert.Equal(t, 100.0, spec.LimitAmount)
	assert.Equal(t, "USD", spec.CurrencyUnit)
	assert.Equal(t, []float64{50.0, 80.0, 100.0}, spec.Thresholds)
	assert.Equal(t, "finops@example.com", spec.SubscriberEmail)
}
