package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-shelter/internal/domain/staff"
)

type staffRepo struct {
	mu   sync.RWMutex
	byID map[string]staff.Member
}

func NewStaffRepo() staff.Repository {
	return &staffRepo{
		byID: make(map[string]staff.Member),
	}
}

func (r *staffRepo) Create(ctx context.Context, m staff.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// ID es el handle generado; el número del caller puede repetirse.
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("staff member id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("staff member already exists")
	}
	m.Tasks = append([]string(nil), m.Tasks...)
	r.byID[m.ID] = m
	return nil
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (staff.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return staff.Member{}, staff.ErrNotFound
	}
	m.Tasks = append([]string(nil), m.Tasks...)
	return m, nil
}

func (r *staffRepo) AppendTask(ctx context.Context, id, task string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return staff.ErrNotFound
	}
	m.Tasks = append(m.Tasks, task)
	r.byID[id] = m
	return nil
}
