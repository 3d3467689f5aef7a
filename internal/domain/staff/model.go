package staff

import "time"

// Member es un empleado del refugio con su lista de tareas (orden de asignación).
// No se relaciona con animales ni adoptantes. ID lo asigna el refugio;
// StaffID es el número del caller y puede repetirse.
type Member struct {
	ID      string
	StaffID int
	Name    string
	Role    string

	Tasks []string

	CreatedAt time.Time
}
