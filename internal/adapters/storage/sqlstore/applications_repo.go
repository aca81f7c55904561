package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dogshelter/internal/domain/applications"
	"dogshelter/internal/domain/dogs"

	"github.com/jmoiron/sqlx"
)

type ApplicationsRepo struct {
	db *sqlx.DB
}

func NewApplicationsRepo(db *sqlx.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

const applicationColumns = `
	a.id, a.dog_id, d.name AS dog_name,
	a.applicant_name, a.email, a.phone, a.message,
	a.application_status, a.submitted_at, a.updated_at
`

// LEFT JOIN so an application still reads back when the dog row is gone;
// dog_name comes out NULL in that case.
const applicationFrom = `
	FROM adoption_applications a
	LEFT JOIN dogs d ON a.dog_id = d.id
`

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) (applications.Application, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return applications.Application{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, tx.Rebind(`
		INSERT INTO adoption_applications
			(dog_id, applicant_name, email, phone, message, application_status, submitted_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`),
		a.DogID,
		a.ApplicantName,
		a.Email,
		toNullString(a.Phone),
		toNullString(a.Message),
		string(a.Status),
		a.SubmittedAt,
		a.UpdatedAt,
	)
	if err := row.Scan(&a.ID); err != nil {
		return applications.Application{}, fmt.Errorf("insert application: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return applications.Application{}, fmt.Errorf("commit: %w", err)
	}

	return a, nil
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id int64) (applications.Application, error) {
	row := r.db.QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+applicationColumns+applicationFrom+`WHERE a.id = ?`), id)

	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return applications.Application{}, applications.ErrNotFound
		}
		return applications.Application{}, err
	}
	return a, nil
}

func (r *ApplicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	// Newest first; the id tiebreaker keeps equal timestamps in
	// insertion order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicationColumns+applicationFrom+`ORDER BY a.submitted_at DESC, a.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applications.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *ApplicationsRepo) UpdateStatus(ctx context.Context, id int64, status applications.Status, updatedAt time.Time) (applications.Application, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return applications.Application{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var dogID int64
	row := tx.QueryRowContext(ctx, tx.Rebind(`
		UPDATE adoption_applications
		SET application_status = ?, updated_at = ?
		WHERE id = ?
		RETURNING dog_id
	`), string(status), updatedAt, id)
	if err := row.Scan(&dogID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return applications.Application{}, applications.ErrNotFound
		}
		return applications.Application{}, fmt.Errorf("update application: %w", err)
	}

	if status == applications.StatusApproved {
		if _, err := tx.ExecContext(ctx, tx.Rebind(
			"UPDATE dogs SET status = ? WHERE id = ?"), string(dogs.StatusAdopted), dogID); err != nil {
			return applications.Application{}, fmt.Errorf("mark dog adopted: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return applications.Application{}, fmt.Errorf("commit: %w", err)
	}

	return r.GetByID(ctx, id)
}

func scanApplication(row rowScanner) (applications.Application, error) {
	var (
		a       applications.Application
		dogName sql.NullString
		phone   sql.NullString
		message sql.NullString
		status  string
	)
	if err := row.Scan(
		&a.ID,
		&a.DogID,
		&dogName,
		&a.ApplicantName,
		&a.Email,
		&phone,
		&message,
		&status,
		&a.SubmittedAt,
		&a.UpdatedAt,
	); err != nil {
		return applications.Application{}, err
	}

	a.DogName = dogName.String
	a.Phone = phone.String
	a.Message = message.String
	a.Status = applications.Status(status)

	return a, nil
}

// toNullString stores "" as NULL; both read back as the empty string.
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
