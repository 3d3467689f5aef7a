// Package shelter orquesta las operaciones del refugio: registrar animales,
// asignar tareas, adoptar por nombre y actualizar salud. Los callers (API,
// CLI, tests) le pasan valores ya parseados y reciben resultados tipados.
package shelter

import (
	"context"
	"errors"

	"animal-shelter/internal/domain/adopters"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/staff"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/platform/seq"
)

type Shelter struct {
	animals  *animals.Service
	adopters *adopters.Service
	staff    *staff.Service
	log      logger.Logger
}

func New(animalsSvc *animals.Service, adoptersSvc *adopters.Service, staffSvc *staff.Service, log logger.Logger) *Shelter {
	if log == nil {
		log = logger.Nop()
	}
	return &Shelter{
		animals:  animalsSvc,
		adopters: adoptersSvc,
		staff:    staffSvc,
		log:      log,
	}
}

func (s *Shelter) AddAnimal(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	created, err := s.animals.Add(ctx, a)
	if err != nil {
		return animals.Animal{}, err
	}
	s.log.Info("animal added", map[string]any{
		"animal_id": created.ID,
		"name":      created.Name,
		"species":   string(created.Species()),
	})
	return created, nil
}

func (s *Shelter) FindAnimal(ctx context.Context, name string) (animals.Animal, error) {
	return s.animals.FindByName(ctx, name)
}

func (s *Shelter) ListAnimals(ctx context.Context) (seq.List[animals.Animal], error) {
	return s.animals.ListAll(ctx)
}

func (s *Shelter) RegisterStaff(ctx context.Context, in staff.CreateInput) (staff.Member, error) {
	return s.staff.Create(ctx, in)
}

func (s *Shelter) AssignTask(ctx context.Context, staffID string, task string) error {
	if err := s.staff.AssignTask(ctx, staffID, task); err != nil {
		return err
	}
	s.log.Info("task assigned", map[string]any{"staff": staffID, "task": task})
	return nil
}

func (s *Shelter) ListTasks(ctx context.Context, staffID string) (seq.List[string], error) {
	return s.staff.ListTasks(ctx, staffID)
}

func (s *Shelter) RegisterAdopter(ctx context.Context, in adopters.CreateInput) (adopters.Adopter, error) {
	return s.adopters.Create(ctx, in)
}

// PerformAdoption busca el animal por nombre y lo adopta a nombre de adopterID.
// Resultados esperables: animals.ErrNotFound, animals.ErrAlreadyAdopted, adopters.ErrNotFound.
func (s *Shelter) PerformAdoption(ctx context.Context, adopterID string, animalName string) (animals.Animal, error) {
	fields := map[string]any{"adopter": adopterID, "animal": animalName}

	a, err := s.animals.FindByName(ctx, animalName)
	if err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			s.log.Info("animal not found", fields)
		}
		return animals.Animal{}, err
	}

	adopted, err := s.adopters.Adopt(ctx, adopterID, a.ID)
	switch {
	case errors.Is(err, animals.ErrAlreadyAdopted):
		s.log.Info("animal already adopted", fields)
		return animals.Animal{}, err
	case err != nil:
		s.log.Warn("adoption failed", withErr(fields, err))
		return animals.Animal{}, err
	}

	s.log.Info("animal adopted", withField(fields, "animal_id", adopted.ID))
	return adopted, nil
}

func (s *Shelter) ListAdopted(ctx context.Context, adopterID string) (seq.List[animals.Animal], error) {
	return s.adopters.ListAdopted(ctx, adopterID)
}

func (s *Shelter) UpdateHealth(ctx context.Context, name, status string) (animals.Animal, error) {
	a, err := s.animals.UpdateHealth(ctx, name, status)
	if err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			s.log.Info("animal not found", map[string]any{"animal": name})
		}
		return animals.Animal{}, err
	}
	s.log.Info("health updated", map[string]any{
		"animal_id":     a.ID,
		"animal":        a.Name,
		"health_status": status,
	})
	return a, nil
}

func withField(fields map[string]any, k string, v any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for fk, fv := range fields {
		out[fk] = fv
	}
	out[k] = v
	return out
}

func withErr(fields map[string]any, err error) map[string]any {
	return withField(fields, "error", err)
}
