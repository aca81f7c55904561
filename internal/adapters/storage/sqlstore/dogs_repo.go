package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"dogshelter/internal/domain/dogs"

	"github.com/jmoiron/sqlx"
)

type DogsRepo struct {
	db *sqlx.DB
}

func NewDogsRepo(db *sqlx.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

const dogColumns = `
	d.id, d.name, d.breed_id, b.name AS breed,
	d.age, d.description, d.gender, d.status
`

func (r *DogsRepo) List(ctx context.Context, f dogs.Filter) ([]dogs.Dog, error) {
	q := `SELECT ` + dogColumns + `
		FROM dogs d
		JOIN breeds b ON d.breed_id = b.id`

	var (
		where []string
		args  []any
	)
	if f.Breed != "" {
		// Exact, case-sensitive match on the breed name.
		where = append(where, "b.name = ?")
		args = append(args, f.Breed)
	}
	if f.Status != nil {
		where = append(where, "d.status = ?")
		args = append(args, string(*f.Status))
	}
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY d.id"

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *DogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	row := r.db.QueryRowContext(ctx, r.db.Rebind(`SELECT `+dogColumns+`
		FROM dogs d
		JOIN breeds b ON d.breed_id = b.id
		WHERE d.id = ?`), id)

	d, err := scanDog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var (
		d           dogs.Dog
		status      string
		age         sql.NullInt64
		description sql.NullString
		gender      sql.NullString
	)
	if err := row.Scan(&d.ID, &d.Name, &d.BreedID, &d.Breed, &age, &description, &gender, &status); err != nil {
		return dogs.Dog{}, err
	}

	d.Status = dogs.Status(status)
	if age.Valid {
		v := int(age.Int64)
		d.Age = &v
	}
	if description.Valid {
		v := description.String
		d.Description = &v
	}
	if gender.Valid {
		v := gender.String
		d.Gender = &v
	}

	return d, nil
}
