package adopters

import "time"

// Adopter guarda referencias (ids) a los animales adoptados, no copias:
// el registro canónico vive en el repositorio de animales.
//
// ID es el handle que asigna el refugio. AdopterID es el número que trae el
// caller y puede repetirse entre adoptantes.
type Adopter struct {
	ID          string
	AdopterID   int
	Name        string
	ContactInfo string

	AnimalIDs []string

	CreatedAt time.Time
}
