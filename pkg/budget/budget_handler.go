package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/rest"
	"github.com/spendwell/spendwell/internal/utils"
	"github.com/spendwell/spendwell/pkg/money"
	"github.com/spendwell/spendwell/pkg/user"
)

type BudgetDTO struct {
	// Month is "YYYY-MM".
	Month string `json:"month"`
	// Limit is a decimal string, e.g. "500.00".
	Limit string `json:"limit"`
}

type Handler struct {
	budgetService Service
	clock         utils.Clock
}

func NewHandler(budgetService Service, clock utils.Clock) *Handler {
	return &Handler{budgetService: budgetService, clock: clock}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	month := h.clock.Now()
	if monthString := r.URL.Query().Get("month"); monthString != "" {
		parsed, err := time.Parse("2006-01", monthString)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid month format", "month must be YYYY-MM")
			return
		}
		month = parsed
	}

	budget, err := h.budgetService.Get(r.Context(), month)
	if err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			writeError(w, http.StatusNotFound, "No budget for this month", "")
			return
		}
		if errors.Is(err, user.ErrNoUser) {
			writeError(w, http.StatusForbidden, "No authenticated user", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetToDTO(budget)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting monthly budget")
	w.Header().Set("Content-Type", "application/json")

	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	limitCents, err := money.ParseAmount(dto.Limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrInvalidLimit.Error(), "")
		return
	}

	month := h.clock.Now()
	if dto.Month != "" {
		parsed, err := time.Parse("2006-01", dto.Month)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid month format", "month must be YYYY-MM")
			return
		}
		month = parsed
	}

	stored, err := h.budgetService.Set(r.Context(), Budget{Month: month, LimitCents: limitCents})
	if err != nil {
		if errors.Is(err, ErrInvalidLimit) {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		if errors.Is(err, user.ErrNoUser) {
			writeError(w, http.StatusForbidden, "No authenticated user", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string, details string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func budgetToDTO(b Budget) BudgetDTO {
	return BudgetDTO{
		Month: b.Month.Format("2006-01"),
		Limit: money.Format(b.LimitCents),
	}
}
