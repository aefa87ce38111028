package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCsvOverviewRendererImpl_RenderOverview(t *testing.T) {
	renderer := NewCsvOverviewRenderer()
	overview := Overview{
		Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Summary: Summary{
			TotalCents: 3500,
			MonthCents: 3500,
			Categories: []CategoryTotal{
				{Name: "Food", Color: "#ff0000", TotalCents: 1500},
				{Name: "Travel", Color: "#00ff00", TotalCents: 2000},
			},
			Trend: []DailyTotal{
				{Date: "2024-03-01", TotalCents: 1500},
				{Date: "2024-03-02", TotalCents: 2000},
			},
		},
		Budget: Evaluation{
			State:      BudgetNormal,
			SpentCents: 3500,
			LimitCents: 10000,
		},
	}

	csv, err := renderer.RenderOverview(overview)

	assert.NoError(t, err)
	assert.Contains(t, csv, "Category,Amount")
	assert.Contains(t, csv, "Food,15.00")
	assert.Contains(t, csv, "Travel,20.00")
	assert.Contains(t, csv, "2024-03-01,15.00")
	assert.Contains(t, csv, "Total,35.00")
	assert.Contains(t, csv, "This month,35.00")
	assert.Contains(t, csv, "Monthly limit,100.00")
}

func TestCsvOverviewRendererImpl_RenderOverview_UnsetBudget(t *testing.T) {
	renderer := NewCsvOverviewRenderer()

	csv, err := renderer.RenderOverview(Overview{Budget: Evaluation{State: BudgetUnset}})

	assert.NoError(t, err)
	assert.NotContains(t, csv, "Monthly limit")
}
