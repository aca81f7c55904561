package memory

import (
	"context"
	"sort"
	"sync"

	"dogshelter/internal/domain/breeds"
)

type BreedsRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]breeds.Breed
}

func NewBreedsRepo() *BreedsRepo {
	return &BreedsRepo{byID: make(map[int64]breeds.Breed)}
}

// Add inserts a breed and returns it with its assigned ID. Used by seed
// data and tests; breeds are reference data, not mutated via the API.
func (r *BreedsRepo) Add(name string) breeds.Breed {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	b := breeds.Breed{ID: r.seq, Name: name}
	r.byID[b.ID] = b
	return b
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *BreedsRepo) nameOf(id int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].Name
}
