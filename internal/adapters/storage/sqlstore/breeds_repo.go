package sqlstore

import (
	"context"

	"dogshelter/internal/domain/breeds"

	"github.com/jmoiron/sqlx"
)

type BreedsRepo struct {
	db *sqlx.DB
}

func NewBreedsRepo(db *sqlx.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM breeds ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var b breeds.Breed
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, rows.Err()
}
