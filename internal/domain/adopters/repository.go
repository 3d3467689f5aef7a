package adopters

import "context"

type Repository interface {
	Create(ctx context.Context, a Adopter) error
	GetByID(ctx context.Context, id string) (Adopter, error)
	AppendAnimal(ctx context.Context, id, animalID string) error
}
