package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"dogshelter/internal/domain/applications"
)

type ApplicationsRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]applications.Application
	dogs *DogsRepo
}

func NewApplicationsRepo(dogs *DogsRepo) *ApplicationsRepo {
	return &ApplicationsRepo{
		byID: make(map[int64]applications.Application),
		dogs: dogs,
	}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) (applications.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	a.ID = r.seq
	r.byID[a.ID] = a
	return a, nil
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id int64) (applications.Application, error) {
	r.mu.RLock()
	a, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	return r.withDogName(a), nil
}

func (r *ApplicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	r.mu.RLock()
	out := make([]applications.Application, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	r.mu.RUnlock()

	// Insertion order first, then a stable sort on submitted_at only, so
	// equal timestamps keep insertion order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })

	for i := range out {
		out[i] = r.withDogName(out[i])
	}
	return out, nil
}

func (r *ApplicationsRepo) UpdateStatus(ctx context.Context, id int64, status applications.Status, updatedAt time.Time) (applications.Application, error) {
	r.mu.Lock()
	a, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return applications.Application{}, applications.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = updatedAt
	r.byID[id] = a

	// The dog flip happens under r.mu so both writes land before
	// UpdateStatus returns. Unlike the SQL transaction, a reader going
	// straight to DogsRepo can still see the dog AVAILABLE while the
	// application is already APPROVED; acceptable for the dev adapter.
	if status == applications.StatusApproved {
		r.dogs.markAdopted(a.DogID)
	}
	r.mu.Unlock()

	return r.withDogName(a), nil
}

// withDogName resolves dog_name at read time, mirroring the SQL join.
// The name is empty when the dog row is gone.
func (r *ApplicationsRepo) withDogName(a applications.Application) applications.Application {
	name, ok := r.dogs.nameOf(a.DogID)
	if !ok {
		a.DogName = ""
		return a
	}
	a.DogName = name
	return a
}
