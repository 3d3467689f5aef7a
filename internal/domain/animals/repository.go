package animals

import (
	"context"
	"time"
)

// Repository guarda el registro canónico, en orden de inserción.
// Devuelve copias y no puede marcar adopciones: eso es Adoptions.
type Repository interface {
	Add(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	// FindByName: igualdad case-insensitive, primer match en orden de inserción.
	FindByName(ctx context.Context, name string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
	UpdateHealth(ctx context.Context, id, status string, at time.Time) (Animal, error)
}

// Adoptions es el único camino para pasar Adopted a true. Sólo lo recibe
// el servicio de adopciones.
type Adoptions interface {
	// MarkAdopted es check-and-set atómico; ErrAlreadyAdopted si ya estaba adoptado.
	MarkAdopted(ctx context.Context, id string, at time.Time) (Animal, error)
}
