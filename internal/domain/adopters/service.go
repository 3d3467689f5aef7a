package adopters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/platform/seq"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("adopter not found")
)

// AnimalReader resuelve las referencias guardadas en cada adoptante.
// animals.Repository lo cumple.
type AnimalReader interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
}

type Service struct {
	repo      Repository
	animals   AnimalReader
	adoptions animals.Adoptions
	now       func() time.Time
}

func NewService(repo Repository, reader AnimalReader, adoptions animals.Adoptions) *Service {
	return &Service{
		repo:      repo,
		animals:   reader,
		adoptions: adoptions,
		now:       time.Now,
	}
}

type CreateInput struct {
	AdopterID   int
	Name        string
	ContactInfo string
}

// Create siempre da de alta un adoptante nuevo con la lista vacía, aunque
// AdopterID ya exista en otro.
func (s *Service) Create(ctx context.Context, in CreateInput) (Adopter, error) {
	a := Adopter{
		ID:          uuid.NewString(),
		AdopterID:   in.AdopterID,
		Name:        strings.TrimSpace(in.Name),
		ContactInfo: strings.TrimSpace(in.ContactInfo),
		AnimalIDs:   nil,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Adopter{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Adopter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adopter{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Adopt marca el animal como adoptado y lo agrega a la lista del adoptante.
// Si ya estaba adoptado (por este u otro) devuelve animals.ErrAlreadyAdopted
// y no modifica nada.
func (s *Service) Adopt(ctx context.Context, adopterID, animalID string) (animals.Animal, error) {
	if strings.TrimSpace(animalID) == "" {
		return animals.Animal{}, ErrInvalidInput
	}

	adopterID = strings.TrimSpace(adopterID)

	// El adoptante tiene que existir antes de tocar el flag del animal.
	if _, err := s.GetByID(ctx, adopterID); err != nil {
		return animals.Animal{}, err
	}

	a, err := s.adoptions.MarkAdopted(ctx, animalID, s.now())
	if err != nil {
		return animals.Animal{}, err
	}

	// MarkAdopted no se deshace (el flag es monótono). Los adoptantes no se
	// borran, así que con la existencia ya chequeada el append no falla.
	if err := s.repo.AppendAnimal(ctx, adopterID, a.ID); err != nil {
		return animals.Animal{}, fmt.Errorf("record adoption of %s: %w", a.ID, err)
	}
	return a, nil
}

// ListAdopted resuelve las referencias contra el registro, así los cambios
// de salud hechos desde el refugio se ven acá.
func (s *Service) ListAdopted(ctx context.Context, adopterID string) (seq.List[animals.Animal], error) {
	ad, err := s.GetByID(ctx, adopterID)
	if err != nil {
		return seq.List[animals.Animal]{}, err
	}

	out := make([]animals.Animal, 0, len(ad.AnimalIDs))
	for _, id := range ad.AnimalIDs {
		a, err := s.animals.GetByID(ctx, id)
		if err != nil {
			return seq.List[animals.Animal]{}, fmt.Errorf("resolve adopted animal %s: %w", id, err)
		}
		out = append(out, a)
	}
	return seq.Of(out), nil
}
