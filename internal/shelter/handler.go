package shelter

import (
	"encoding/json"
	"errors"
	"net/http"

	"animal-shelter/internal/domain/adopters"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/staff"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de cada módulo más las que cruzan módulos
// (adopción por nombre, actualización de salud por nombre).
func RegisterRoutes(r chi.Router, s *Shelter) {
	animals.RegisterRoutes(r, s.animals)
	adopters.RegisterRoutes(r, s.adopters)
	staff.RegisterRoutes(r, s.staff)

	r.Post("/adoptions", performAdoptionHandler(s))
	r.Post("/health-updates", updateHealthHandler(s))
}

// Adopter es el id del recurso (GET /adopters/{id}), no el adopter_id del caller.
type adoptionRequest struct {
	Adopter    string `json:"adopter"`
	AnimalName string `json:"animal_name"`
}

type healthUpdateRequest struct {
	Name         string `json:"name"`
	HealthStatus string `json:"health_status"`
}

// performAdoptionHandler godoc
// @Summary Adoptar un animal por nombre
// @Description Busca el primer animal con ese nombre (case-insensitive) y lo adopta. Si ya estaba adoptado responde 409 y no cambia nada.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body adoptionRequest true "Adoptante y nombre del animal"
// @Success 200 {object} animals.Record
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "animal not found / adopter not found"
// @Failure 409 {string} string "animal already adopted"
// @Router /adoptions [post]
func performAdoptionHandler(s *Shelter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adoptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := s.PerformAdoption(r.Context(), req.Adopter, req.AnimalName)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, animals.ToRecord(a))
	}
}

// updateHealthHandler godoc
// @Summary Actualizar estado de salud por nombre
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body healthUpdateRequest true "Nombre del animal y nuevo estado"
// @Success 200 {object} animals.Record
// @Failure 404 {string} string "animal not found"
// @Router /health-updates [post]
func updateHealthHandler(s *Shelter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req healthUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := s.UpdateHealth(r.Context(), req.Name, req.HealthStatus)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, animals.ToRecord(a))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, animals.ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, adopters.ErrNotFound):
		http.Error(w, "adopter not found", http.StatusNotFound)
	case errors.Is(err, animals.ErrAlreadyAdopted):
		http.Error(w, "animal already adopted", http.StatusConflict)
	case errors.Is(err, animals.ErrInvalidInput), errors.Is(err, adopters.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
