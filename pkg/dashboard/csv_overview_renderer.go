package dashboard

import (
	"bytes"
	"encoding/csv"

	"github.com/spendwell/spendwell/pkg/money"
)

// OverviewRenderer renders a dashboard overview into an alternative textual
// representation.
type OverviewRenderer interface {
	RenderOverview(overview Overview) (string, error)
}

type CsvOverviewRendererImpl struct {
}

func NewCsvOverviewRenderer() *CsvOverviewRendererImpl {
	return &CsvOverviewRendererImpl{}
}

// RenderOverview produces a CSV with one section per dashboard block: the
// category breakdown, the 7-day trend, and the totals.
func (t *CsvOverviewRendererImpl) RenderOverview(overview Overview) (string, error) {
	data := make([][]string, 0, len(overview.Summary.Categories)+len(overview.Summary.Trend)+6)

	data = append(data, []string{"Category", "Amount"})
	for _, c := range overview.Summary.Categories {
		data = append(data, []string{c.Name, money.Format(c.TotalCents)})
	}

	data = append(data, []string{}, []string{"Day", "Amount"})
	for _, d := range overview.Summary.Trend {
		data = append(data, []string{d.Date, money.Format(d.TotalCents)})
	}

	data = append(data, []string{},
		[]string{"Total", money.Format(overview.Summary.TotalCents)},
		[]string{"This month", money.Format(overview.Summary.MonthCents)})
	if overview.Budget.State != BudgetUnset {
		data = append(data, []string{"Monthly limit", money.Format(overview.Budget.LimitCents)})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.WriteAll(data); err != nil {
		return "", err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
