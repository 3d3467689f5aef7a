package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-shelter/internal/platform/seq"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("animal not found")
	ErrAlreadyAdopted = errors.New("animal already adopted")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Add registra el animal al final del registro. Siempre entra sin adoptar.
func (s *Service) Add(ctx context.Context, a Animal) (Animal, error) {
	if a.Details == nil {
		return Animal{}, ErrInvalidInput
	}

	now := s.now()
	a.ID = uuid.NewString()
	a.Adopted = false
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.repo.Add(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByName(ctx context.Context, name string) (Animal, error) {
	return s.repo.FindByName(ctx, name)
}

// UpdateHealth busca por nombre y reemplaza el estado de salud.
// Si no existe devuelve ErrNotFound y no toca nada.
func (s *Service) UpdateHealth(ctx context.Context, name, status string) (Animal, error) {
	a, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return Animal{}, err
	}
	return s.repo.UpdateHealth(ctx, a.ID, status, s.now())
}

func (s *Service) ListAll(ctx context.Context) (seq.List[Animal], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return seq.List[Animal]{}, err
	}
	return seq.Of(items), nil
}
