package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"dogshelter/internal/domain/applications"
	"dogshelter/internal/domain/dogs"
)

func seededRepos(t *testing.T) (*BreedsRepo, *DogsRepo, *ApplicationsRepo) {
	t.Helper()

	breedsRepo := NewBreedsRepo()
	dogsRepo := NewDogsRepo(breedsRepo)
	SeedDemoData(breedsRepo, dogsRepo)

	return breedsRepo, dogsRepo, NewApplicationsRepo(dogsRepo)
}

func TestDogsList_NoFilterReturnsAllWithBreedNames(t *testing.T) {
	_, dogsRepo, _ := seededRepos(t)

	out, err := dogsRepo.List(context.Background(), dogs.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("got %d dogs, want 4", len(out))
	}
	for _, d := range out {
		if d.Breed == "" {
			t.Errorf("dog %q missing breed name", d.Name)
		}
	}
	// Adopted dogs are included when no availability filter is applied.
	var sawAdopted bool
	for _, d := range out {
		if d.Status == dogs.StatusAdopted {
			sawAdopted = true
		}
	}
	if !sawAdopted {
		t.Error("unfiltered listing must include adopted dogs")
	}
}

func TestDogsList_BreedFilterIsExactAndCaseSensitive(t *testing.T) {
	_, dogsRepo, _ := seededRepos(t)
	ctx := context.Background()

	out, err := dogsRepo.List(ctx, dogs.Filter{Breed: "Labrador"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d labradors, want 2", len(out))
	}
	for _, d := range out {
		if d.Breed != "Labrador" {
			t.Errorf("unexpected breed %q", d.Breed)
		}
	}

	// Wrong case matches nothing; that is an empty result, not an error.
	out, err = dogsRepo.List(ctx, dogs.Filter{Breed: "labrador"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("case-insensitive match leaked %d dogs", len(out))
	}

	out, err = dogsRepo.List(ctx, dogs.Filter{Breed: "Chupacabra"})
	if err != nil {
		t.Fatalf("unknown breed must not error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("unknown breed returned %d dogs", len(out))
	}
}

func TestDogsList_FiltersCombineWithAnd(t *testing.T) {
	_, dogsRepo, _ := seededRepos(t)

	st := dogs.StatusAvailable
	out, err := dogsRepo.List(context.Background(), dogs.Filter{Breed: "Labrador", Status: &st})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, d := range out {
		if d.Breed != "Labrador" || d.Status != dogs.StatusAvailable {
			t.Errorf("filter leak: %+v", d)
		}
	}

	adopted := dogs.StatusAdopted
	out, err = dogsRepo.List(context.Background(), dogs.Filter{Status: &adopted})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Rocky" {
		t.Fatalf("adopted filter: %+v", out)
	}
}

func TestDogsGetByID(t *testing.T) {
	_, dogsRepo, _ := seededRepos(t)
	ctx := context.Background()

	d, err := dogsRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Name != "Buddy" || d.Breed != "Labrador" {
		t.Fatalf("unexpected dog %+v", d)
	}

	// Idempotent: the same id reads back the same data.
	again, err := dogsRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.ID != d.ID || again.Name != d.Name || again.Status != d.Status {
		t.Fatalf("repeated read differs: %+v vs %+v", d, again)
	}

	if _, err := dogsRepo.GetByID(ctx, 999); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func newApplication(dogID int64, submittedAt time.Time) applications.Application {
	return applications.Application{
		DogID:         dogID,
		ApplicantName: "Jane Smith",
		Email:         "jane@example.com",
		Status:        applications.StatusSubmitted,
		SubmittedAt:   submittedAt,
		UpdatedAt:     submittedAt,
	}
}

func TestApplicationsList_NewestFirstTiesInInsertionOrder(t *testing.T) {
	_, _, appsRepo := seededRepos(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first, _ := appsRepo.Create(ctx, newApplication(1, base))
	second, _ := appsRepo.Create(ctx, newApplication(2, base.Add(time.Hour)))
	// Same timestamp as first: insertion order decides.
	third, _ := appsRepo.Create(ctx, newApplication(4, base))

	out, err := appsRepo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d applications, want 3", len(out))
	}

	wantOrder := []int64{second.ID, first.ID, third.ID}
	for i, want := range wantOrder {
		if out[i].ID != want {
			t.Fatalf("position %d: got id %d, want %d (order %v)", i, out[i].ID, want, out)
		}
	}
}

func TestApplicationsDogNameResolvedAtReadTime(t *testing.T) {
	_, _, appsRepo := seededRepos(t)
	ctx := context.Background()

	a, err := appsRepo.Create(ctx, newApplication(2, time.Now()))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := appsRepo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DogName != "Max" {
		t.Errorf("dog_name = %q, want Max", got.DogName)
	}
}

func TestApplicationsUpdateStatus_ApprovalAdoptsDog(t *testing.T) {
	_, dogsRepo, appsRepo := seededRepos(t)
	ctx := context.Background()

	a, err := appsRepo.Create(ctx, newApplication(1, time.Now()))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updatedAt := time.Now().Add(time.Minute)
	got, err := appsRepo.UpdateStatus(ctx, a.ID, applications.StatusApproved, updatedAt)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != applications.StatusApproved {
		t.Errorf("status = %q, want APPROVED", got.Status)
	}
	if !got.UpdatedAt.Equal(updatedAt) {
		t.Errorf("updated_at not refreshed: %v", got.UpdatedAt)
	}

	d, err := dogsRepo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get dog: %v", err)
	}
	if d.Status != dogs.StatusAdopted {
		t.Errorf("dog status = %q, want ADOPTED", d.Status)
	}

	// Non-approval transitions leave the dog alone.
	b, _ := appsRepo.Create(ctx, newApplication(2, time.Now()))
	if _, err := appsRepo.UpdateStatus(ctx, b.ID, applications.StatusRejected, time.Now()); err != nil {
		t.Fatalf("update: %v", err)
	}
	d2, _ := dogsRepo.GetByID(ctx, 2)
	if d2.Status != dogs.StatusAvailable {
		t.Errorf("rejection must not adopt the dog, got %q", d2.Status)
	}
}

func TestApplicationsGetByID_NotFound(t *testing.T) {
	_, _, appsRepo := seededRepos(t)

	if _, err := appsRepo.GetByID(context.Background(), 123); !errors.Is(err, applications.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
