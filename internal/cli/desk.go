package cli

import (
	"context"

	"animal-shelter/internal/client"
	"animal-shelter/internal/domain/adopters"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/staff"
	"animal-shelter/internal/platform/seq"
	"animal-shelter/internal/shelter"
)

// Desk son las operaciones que usa la sesión interactiva.
// In-process: *shelter.Shelter. Remoto: *client.Client.
type Desk interface {
	AddAnimal(ctx context.Context, a animals.Animal) (animals.Animal, error)
	FindAnimal(ctx context.Context, name string) (animals.Animal, error)
	ListAnimals(ctx context.Context) (seq.List[animals.Animal], error)

	RegisterStaff(ctx context.Context, in staff.CreateInput) (staff.Member, error)
	AssignTask(ctx context.Context, staffID, task string) error
	ListTasks(ctx context.Context, staffID string) (seq.List[string], error)

	RegisterAdopter(ctx context.Context, in adopters.CreateInput) (adopters.Adopter, error)
	PerformAdoption(ctx context.Context, adopterID, animalName string) (animals.Animal, error)
	ListAdopted(ctx context.Context, adopterID string) (seq.List[animals.Animal], error)

	UpdateHealth(ctx context.Context, name, status string) (animals.Animal, error)
}

var (
	_ Desk = (*shelter.Shelter)(nil)
	_ Desk = (*client.Client)(nil)
)
