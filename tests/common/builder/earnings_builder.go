//go:build unit || e2e

package builder

import (
	"starclip/domain/earnings"
)

type EarningsBuilder struct {
	Summary earnings.Summary
}

func NewEarningsBuilder() *EarningsBuilder {
	return &EarningsBuilder{
		Summary: earnings.Summary{
			TotalEarnings:  42000,
			PendingCount:   3,
			CompletedCount: 12,
			Weekly: []earnings.WeeklyBucket{
				{Day: "Mon", Amount: 3500},
				{Day: "Tue", Amount: 0},
				{Day: "Wed", Amount: 7000},
				{Day: "Thu", Amount: 3500},
				{Day: "Fri", Amount: 0},
				{Day: "Sat", Amount: 10500},
				{Day: "Sun", Amount: 3500},
			},
			Monthly: []earnings.MonthlyBucket{
				{Month: "2026-07", Amount: 14000},
				{Month: "2026-08", Amount: 28000},
			},
			ByVideoType: []earnings.TypeEarnings{
				{VideoType: "Birthday", Count: 8, Amount: 28000},
				{VideoType: "Pep talk", Count: 4, Amount: 14000},
			},
		},
	}
}

func (b *EarningsBuilder) With(mutate func(*earnings.Summary)) *EarningsBuilder {
	mutate(&b.Summary)
	return b
}

func (b *EarningsBuilder) Build() earnings.Summary {
	return b.Summary
}
