package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const monthFormat = "2006-01-02"

type Repo interface {
	// Upsert stores the budget, replacing an existing row for the same
	// (user, month) key.
	Upsert(ctx context.Context, userId int, budget Budget) error
	// Get returns the budget for the given month, or ErrBudgetNotFound.
	Get(ctx context.Context, userId int, month time.Time) (Budget, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewBudgetRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Upsert(ctx context.Context, userId int, budget Budget) error {
	query := `INSERT INTO budgets (user_id, month, limit_cents)
				VALUES ($1, $2, $3)
				ON CONFLICT (user_id, month) DO UPDATE SET limit_cents = EXCLUDED.limit_cents`
	_, err := r.db.Exec(ctx, query,
		userId,
		budget.Month.Format(monthFormat),
		budget.LimitCents,
	)
	if err != nil {
		err := fmt.Errorf("could not upsert budget: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) Get(ctx context.Context, userId int, month time.Time) (Budget, error) {
	query := `SELECT user_id, month, limit_cents FROM budgets WHERE user_id = $1 AND month = $2`
	var budget Budget
	err := r.db.QueryRow(ctx, query, userId, month.Format(monthFormat)).
		Scan(&budget.UserId, &budget.Month, &budget.LimitCents)
	if errors.Is(err, pgx.ErrNoRows) {
		return Budget{}, ErrBudgetNotFound
	} else if err != nil {
		err := fmt.Errorf("could not get budget: %w", err)
		log.Error(err)
		return Budget{}, err
	}
	return budget, nil
}
