package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spendwell/spendwell/internal/rest"
	"github.com/spendwell/spendwell/pkg/money"
	"github.com/spendwell/spendwell/pkg/user"
)

type CategoryTotalDTO struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Amount string `json:"amount"`
}

type DailyTotalDTO struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type BudgetEvaluationDTO struct {
	State      string  `json:"state"`
	Spent      string  `json:"spent"`
	Limit      string  `json:"limit,omitempty"`
	Percentage float64 `json:"percentage"`
	Progress   float64 `json:"progress"`
	Remaining  string  `json:"remaining,omitempty"`
	Overage    string  `json:"overage,omitempty"`
}

type OverviewDTO struct {
	Date       string              `json:"date"`
	Total      string              `json:"total"`
	MonthTotal string              `json:"monthTotal"`
	Categories []CategoryTotalDTO  `json:"categories"`
	Trend      []DailyTotalDTO     `json:"trend"`
	Budget     BudgetEvaluationDTO `json:"budget"`
}

type Handler struct {
	dashboardService Service
	csvRenderer      OverviewRenderer
}

func NewHandler(dashboardService Service, csvRenderer OverviewRenderer) *Handler {
	return &Handler{dashboardService: dashboardService, csvRenderer: csvRenderer}
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "No authenticated user"}); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := h.csvRenderer.RenderOverview(overview)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(overviewToDTO(overview)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func overviewToDTO(o Overview) OverviewDTO {
	categories := make([]CategoryTotalDTO, 0, len(o.Summary.Categories))
	for _, c := range o.Summary.Categories {
		categories = append(categories, CategoryTotalDTO{
			Name:   c.Name,
			Color:  c.Color,
			Amount: money.Format(c.TotalCents),
		})
	}
	trend := make([]DailyTotalDTO, 0, len(o.Summary.Trend))
	for _, d := range o.Summary.Trend {
		trend = append(trend, DailyTotalDTO{
			Date:   d.Date,
			Amount: money.Format(d.TotalCents),
		})
	}

	budgetDTO := BudgetEvaluationDTO{
		State:      string(o.Budget.State),
		Spent:      money.Format(o.Budget.SpentCents),
		Percentage: o.Budget.Percentage,
		Progress:   o.Budget.Progress,
	}
	if o.Budget.State != BudgetUnset {
		budgetDTO.Limit = money.Format(o.Budget.LimitCents)
	}
	switch o.Budget.State {
	case BudgetNormal, BudgetNear:
		budgetDTO.Remaining = money.Format(o.Budget.RemainingCents)
	case BudgetOver:
		budgetDTO.Overage = money.Format(o.Budget.OverageCents)
	}

	return OverviewDTO{
		Date:       o.Date.Format("2006-01-02"),
		Total:      money.Format(o.Summary.TotalCents),
		MonthTotal: money.Format(o.Summary.MonthCents),
		Categories: categories,
		Trend:      trend,
		Budget:     budgetDTO,
	}
}
