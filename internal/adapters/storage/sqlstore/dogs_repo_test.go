package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"dogshelter/internal/domain/dogs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// The "sqlmock" driver name has no bind type, so Rebind leaves the
	// `?` placeholders untouched, same as the sqlite path.
	return sqlx.NewDb(db, "sqlmock"), mock
}

func dogColumnsList() []string {
	return []string{"id", "name", "breed_id", "breed", "age", "description", "gender", "status"}
}

func TestDogsList_NoFilterHasNoWhereClause(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogsRepo(db)

	mock.ExpectQuery(`(?s)SELECT.*FROM dogs d\s+JOIN breeds b ON d\.breed_id = b\.id ORDER BY d\.id`).
		WillReturnRows(sqlmock.NewRows(dogColumnsList()).
			AddRow(1, "Buddy", 1, "Labrador", 3, "Friendly dog", "Male", "AVAILABLE").
			AddRow(3, "Rocky", 3, "Bulldog", nil, nil, nil, "ADOPTED"))

	out, err := repo.List(context.Background(), dogs.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d dogs, want 2", len(out))
	}

	if out[0].Breed != "Labrador" || out[0].Age == nil || *out[0].Age != 3 {
		t.Errorf("first row scanned wrong: %+v", out[0])
	}
	if out[1].Age != nil || out[1].Description != nil || out[1].Gender != nil {
		t.Errorf("NULL columns must scan to nil: %+v", out[1])
	}
	if out[1].Status != dogs.StatusAdopted {
		t.Errorf("status = %q, want ADOPTED", out[1].Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDogsList_FiltersBuildAndedWhereClause(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogsRepo(db)

	mock.ExpectQuery(`(?s)SELECT.*WHERE b\.name = \? AND d\.status = \? ORDER BY d\.id`).
		WithArgs("Labrador", "AVAILABLE").
		WillReturnRows(sqlmock.NewRows(dogColumnsList()).
			AddRow(1, "Buddy", 1, "Labrador", 3, "Friendly dog", "Male", "AVAILABLE"))

	st := dogs.StatusAvailable
	out, err := repo.List(context.Background(), dogs.Filter{Breed: "Labrador", Status: &st})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Buddy" {
		t.Fatalf("unexpected result %+v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDogsList_BreedFilterAlone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogsRepo(db)

	mock.ExpectQuery(`(?s)SELECT.*WHERE b\.name = \? ORDER BY d\.id`).
		WithArgs("Chupacabra").
		WillReturnRows(sqlmock.NewRows(dogColumnsList()))

	out, err := repo.List(context.Background(), dogs.Filter{Breed: "Chupacabra"})
	if err != nil {
		t.Fatalf("unknown breed must not error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d dogs, want empty", len(out))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDogsGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogsRepo(db)

	mock.ExpectQuery(`(?s)SELECT.*WHERE d\.id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(dogColumnsList()).
			AddRow(1, "Buddy", 1, "Labrador", 3, "Friendly dog", "Male", "AVAILABLE"))

	d, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Name != "Buddy" || d.Breed != "Labrador" || d.Status != dogs.StatusAvailable {
		t.Fatalf("unexpected dog %+v", d)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDogsGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogsRepo(db)

	mock.ExpectQuery(`(?s)SELECT.*WHERE d\.id = \?`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
