package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/rest"
	"github.com/spendwell/spendwell/pkg/money"
	"github.com/spendwell/spendwell/pkg/user"
)

type ExpenseDTO struct {
	Id int `json:"id"`
	// Amount is a decimal string, e.g. "12.34".
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	CategoryId    *int   `json:"categoryId,omitempty"`
	CategoryName  string `json:"categoryName,omitempty"`
	CategoryColor string `json:"categoryColor,omitempty"`
}

type Handler struct {
	expenseService Service
}

func NewHandler(expenseService Service) *Handler {
	return &Handler{expenseService: expenseService}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := 0
	if limitString := r.URL.Query().Get("limit"); limitString != "" {
		parsed, err := strconv.Atoi(limitString)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	expenses, err := h.expenseService.GetAll(r.Context(), limit)
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			writeError(w, http.StatusForbidden, "No authenticated user", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, expenseToDTO(e))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	expense, err := dtoToExpense(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	created, err := h.expenseService.Create(r.Context(), expense)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(expenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["expenseId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense id", "")
		return
	}

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	expense, err := dtoToExpense(dto)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	expense.Id = id

	ok, err := h.expenseService.Update(r.Context(), expense)
	if err != nil && !errors.Is(err, ErrExpenseNotFound) {
		writeServiceError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Expense not found", "")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expenseToDTO(expense)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["expenseId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense id", "")
		return
	}

	ok, err := h.expenseService.Delete(r.Context(), id)
	if err != nil && !errors.Is(err, ErrExpenseNotFound) {
		writeServiceError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Expense not found", "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps service failures to the error taxonomy: validation
// sentinels become 400 with the failing field's message, a missing user
// becomes 403, anything else is a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrEmptyDescription),
		errors.Is(err, ErrDescriptionTooLong),
		errors.Is(err, ErrMissingDate):
		writeError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, user.ErrNoUser):
		writeError(w, http.StatusForbidden, "No authenticated user", "")
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string, details string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func expenseToDTO(e Expense) ExpenseDTO {
	return ExpenseDTO{
		Id:            e.Id,
		Amount:        money.Format(e.AmountCents),
		Description:   e.Description,
		Date:          e.Day(),
		CategoryId:    e.CategoryId,
		CategoryName:  e.CategoryName,
		CategoryColor: e.CategoryColor,
	}
}

func dtoToExpense(dto ExpenseDTO) (Expense, error) {
	cents, err := money.ParseAmount(dto.Amount)
	if err != nil {
		return Expense{}, ErrInvalidAmount
	}
	if dto.Date == "" {
		return Expense{}, ErrMissingDate
	}
	date, err := time.Parse(DateFormat, dto.Date)
	if err != nil {
		return Expense{}, ErrMissingDate
	}
	return Expense{
		Id:          dto.Id,
		AmountCents: cents,
		Description: dto.Description,
		Date:        date,
		CategoryId:  dto.CategoryId,
	}, nil
}
