package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrCategoryNotFound = errors.New("category does not exist")

type Repo interface {
	GetAll(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (Category, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewCategoryRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) GetAll(ctx context.Context) ([]Category, error) {
	query := `SELECT id, name, color, icon FROM categories ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Errorf("failed to query categories: %v", err)
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0, 16)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Id, &c.Name, &c.Color, &c.Icon); err != nil {
			log.Errorf("failed to scan category: %v", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		log.Errorf("error iterating over rows: %v", err)
		return nil, err
	}
	return categories, nil
}

func (r *RepoImpl) Get(ctx context.Context, id int) (Category, error) {
	query := `SELECT id, name, color, icon FROM categories WHERE id = $1`
	var c Category
	err := r.db.QueryRow(ctx, query, id).Scan(&c.Id, &c.Name, &c.Color, &c.Icon)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, ErrCategoryNotFound
	} else if err != nil {
		log.Errorf("failed to get category: %v", err)
		return Category{}, err
	}
	return c, nil
}
