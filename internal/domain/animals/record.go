package animals

import (
	"strings"
	"time"
)

// Record es la forma JSON de un animal (API y cliente HTTP).
// Los campos de especie son punteros para distinguir "no enviado" de false/0.
type Record struct {
	ID           string `json:"id,omitempty"`
	Kind         Kind   `json:"kind"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	HealthStatus string `json:"health_status"`
	Adopted      bool   `json:"adopted"`
	Status       string `json:"status,omitempty"`
	Summary      string `json:"summary,omitempty"`

	Breed   *string `json:"breed,omitempty"`
	Trained *bool   `json:"trained,omitempty"`

	Color  *string `json:"color,omitempty"`
	Indoor *bool   `json:"indoor,omitempty"`

	WingSpan *float64 `json:"wing_span,omitempty"`
	CanFly   *bool    `json:"can_fly,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func ToRecord(a Animal) Record {
	r := Record{
		ID:           a.ID,
		Kind:         a.Species(),
		Name:         a.Name,
		Age:          a.Age,
		HealthStatus: a.HealthStatus,
		Adopted:      a.Adopted,
		Status:       a.Status(),
		Summary:      a.Summary(),
	}
	if !a.CreatedAt.IsZero() {
		t := a.CreatedAt
		r.CreatedAt = &t
	}
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		r.UpdatedAt = &t
	}

	switch d := a.Details.(type) {
	case Dog:
		r.Breed, r.Trained = &d.Breed, &d.Trained
	case Cat:
		r.Color, r.Indoor = &d.Color, &d.Indoor
	case Bird:
		r.WingSpan, r.CanFly = &d.WingSpan, &d.CanFly
	}
	return r
}

// Animal reconstruye el registro. Kind desconocido => ErrInvalidInput.
// Los atributos de otra especie se ignoran.
func (r Record) Animal() (Animal, error) {
	kind, ok := ParseKind(strings.TrimSpace(string(r.Kind)))
	if !ok {
		return Animal{}, ErrInvalidInput
	}

	var d Details
	switch kind {
	case KindDog:
		d = Dog{Breed: deref(r.Breed), Trained: deref(r.Trained)}
	case KindCat:
		d = Cat{Color: deref(r.Color), Indoor: deref(r.Indoor)}
	case KindBird:
		ws := deref(r.WingSpan)
		if ws < 0 {
			return Animal{}, ErrInvalidInput
		}
		d = Bird{WingSpan: ws, CanFly: deref(r.CanFly)}
	}

	a := Animal{
		ID:           r.ID,
		Name:         r.Name,
		Age:          r.Age,
		HealthStatus: r.HealthStatus,
		Adopted:      r.Adopted,
		Details:      d,
	}
	if r.CreatedAt != nil {
		a.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		a.UpdatedAt = *r.UpdatedAt
	}
	return a, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
