package memory

import (
	"context"
	"sort"
	"sync"

	"dogshelter/internal/domain/dogs"
)

type DogsRepo struct {
	mu     sync.RWMutex
	seq    int64
	byID   map[int64]dogs.Dog
	breeds *BreedsRepo
}

func NewDogsRepo(breeds *BreedsRepo) *DogsRepo {
	return &DogsRepo{
		byID:   make(map[int64]dogs.Dog),
		breeds: breeds,
	}
}

// Add inserts a dog and returns it with its assigned ID. Used by seed
// data and tests.
func (r *DogsRepo) Add(d dogs.Dog) dogs.Dog {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	d.ID = r.seq
	if d.Status == "" {
		d.Status = dogs.StatusAvailable
	}
	r.byID[d.ID] = d
	return d
}

func (r *DogsRepo) List(ctx context.Context, f dogs.Filter) ([]dogs.Dog, error) {
	r.mu.RLock()
	out := make([]dogs.Dog, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	filtered := make([]dogs.Dog, 0, len(out))
	for _, d := range out {
		d.Breed = r.breeds.nameOf(d.BreedID)
		if f.Breed != "" && d.Breed != f.Breed {
			continue
		}
		if f.Status != nil && d.Status != *f.Status {
			continue
		}
		filtered = append(filtered, d)
	}

	return filtered, nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	r.mu.RLock()
	d, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	d.Breed = r.breeds.nameOf(d.BreedID)
	return d, nil
}

// markAdopted flips a dog to ADOPTED. Called by the applications repo
// when an application is approved.
func (r *DogsRepo) markAdopted(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.byID[id]; ok {
		d.Status = dogs.StatusAdopted
		r.byID[id] = d
	}
}

func (r *DogsRepo) nameOf(id int64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d.Name, ok
}
