package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-shelter/internal/domain/adopters"
)

type adopterRepo struct {
	mu   sync.RWMutex
	byID map[string]adopters.Adopter
}

func NewAdopterRepo() adopters.Repository {
	return &adopterRepo{
		byID: make(map[string]adopters.Adopter),
	}
}

func (r *adopterRepo) Create(ctx context.Context, a adopters.Adopter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// ID es el handle generado; el número del caller puede repetirse.
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adopter id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("adopter already exists")
	}
	a.AnimalIDs = append([]string(nil), a.AnimalIDs...)
	r.byID[a.ID] = a
	return nil
}

func (r *adopterRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adopters.Adopter{}, adopters.ErrNotFound
	}
	// copia del slice: el caller no debe poder mutar la lista guardada
	a.AnimalIDs = append([]string(nil), a.AnimalIDs...)
	return a, nil
}

func (r *adopterRepo) AppendAnimal(ctx context.Context, id, animalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return adopters.ErrNotFound
	}
	a.AnimalIDs = append(a.AnimalIDs, animalID)
	r.byID[id] = a
	return nil
}
