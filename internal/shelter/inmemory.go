package shelter

import (
	mem "animal-shelter/internal/adapters/storage/memory"
	"animal-shelter/internal/domain/adopters"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/staff"
	"animal-shelter/internal/platform/logger"
)

// NewInMemory arma un refugio con repos en memoria (único backend: el estado
// vive lo que vive el proceso).
func NewInMemory(log logger.Logger) *Shelter {
	animalRepo, adoptions := mem.NewAnimalRepo()

	return New(
		animals.NewService(animalRepo),
		adopters.NewService(mem.NewAdopterRepo(), animalRepo, adoptions),
		staff.NewService(mem.NewStaffRepo()),
		log,
	)
}
