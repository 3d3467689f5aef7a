package staff

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-shelter/internal/platform/seq"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("staff member not found")

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

type CreateInput struct {
	StaffID int
	Name    string
	Role    string
}

// Create siempre da de alta un empleado nuevo, sin tareas.
func (s *Service) Create(ctx context.Context, in CreateInput) (Member, error) {
	m := Member{
		ID:        uuid.NewString(),
		StaffID:   in.StaffID,
		Name:      strings.TrimSpace(in.Name),
		Role:      strings.TrimSpace(in.Role),
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Member{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Member, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Member{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// AssignTask agrega al final, sin validar el texto.
func (s *Service) AssignTask(ctx context.Context, id, task string) error {
	return s.repo.AppendTask(ctx, id, task)
}

func (s *Service) ListTasks(ctx context.Context, id string) (seq.List[string], error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return seq.List[string]{}, err
	}
	return seq.Of(m.Tasks), nil
}
