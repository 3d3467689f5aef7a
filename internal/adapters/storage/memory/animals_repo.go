package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"animal-shelter/internal/domain/animals"
)

// animalRepo mantiene el orden de inserción (slice) + índice por id.
type animalRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]animals.Animal
}

// NewAnimalRepo devuelve el registro y, por separado, el puerto de adopciones
// sobre el mismo estado. El registro no expone MarkAdopted.
func NewAnimalRepo() (animals.Repository, animals.Adoptions) {
	r := &animalRepo{
		byID: make(map[string]animals.Animal),
	}
	return r, animalAdoptions{r: r}
}

func (r *animalRepo) Add(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) FindByName(ctx context.Context, name string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		a := r.byID[id]
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return animals.Animal{}, animals.ErrNotFound
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *animalRepo) UpdateHealth(ctx context.Context, id, status string, at time.Time) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	a.HealthStatus = status
	a.UpdatedAt = at
	r.byID[id] = a
	return a, nil
}

type animalAdoptions struct {
	r *animalRepo
}

func (a animalAdoptions) MarkAdopted(ctx context.Context, id string, at time.Time) (animals.Animal, error) {
	return a.r.markAdopted(id, at)
}

// markAdopted: lectura + escritura bajo el mismo lock, así dos adopciones
// concurrentes del mismo animal no pueden ganar las dos.
func (r *animalRepo) markAdopted(id string, at time.Time) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	if a.Adopted {
		return a, animals.ErrAlreadyAdopted
	}
	a.Adopted = true
	a.UpdatedAt = at
	r.byID[id] = a
	return a, nil
}
