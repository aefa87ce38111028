package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, userId int, expense Expense) (int, error)
	// GetAll returns the user's expenses ordered by date descending, with the
	// category name and color resolved where a category is set. A limit of 0
	// means no limit.
	GetAll(ctx context.Context, userId int, limit int) ([]Expense, error)
	Update(ctx context.Context, userId int, expense Expense) (bool, error)
	Delete(ctx context.Context, userId int, expenseId int) (bool, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewExpenseRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId int, expense Expense) (int, error) {
	query := `INSERT INTO expenses (user_id, amount_cents, description, expense_date, category_id)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		userId,
		expense.AmountCents,
		expense.Description,
		expense.Date.Format(DateFormat),
		expense.CategoryId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store expense: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int, limit int) ([]Expense, error) {
	query := `SELECT e.id, e.amount_cents, e.description, e.expense_date, e.category_id, c.name, c.color
				FROM expenses e
				LEFT JOIN categories c ON c.id = e.category_id
				WHERE e.user_id = $1
				ORDER BY e.expense_date DESC, e.id DESC`
	args := []any{userId}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		var categoryName, categoryColor sql.NullString
		if err := rows.Scan(
			&e.Id,
			&e.AmountCents,
			&e.Description,
			&e.Date,
			&e.CategoryId,
			&categoryName,
			&categoryColor,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		if categoryName.Valid {
			e.CategoryName = categoryName.String
		}
		if categoryColor.Valid {
			e.CategoryColor = categoryColor.String
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return expenses, nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	query := `UPDATE expenses SET
				  amount_cents = $1,
				  description = $2,
				  expense_date = $3,
				  category_id = $4
			  WHERE id = $5 AND user_id = $6`
	result, err := r.db.Exec(ctx, query,
		expense.AmountCents,
		expense.Description,
		expense.Date.Format(DateFormat),
		expense.CategoryId,
		expense.Id,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update expense: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, expenseId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete expense: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
