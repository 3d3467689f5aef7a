package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"animal-shelter/internal/platform/seq"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
	})
}

// createAnimalHandler godoc
// @Summary Registrar un animal
// @Description Agrega un Dog, Cat o Bird al final del registro del refugio. Siempre entra como Available.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body Record true "kind + atributos comunes + atributos de la especie"
// @Success 201 {object} Record
// @Failure 400 {string} string "invalid json / kind inválido"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Record
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := req.Animal()
		if err != nil {
			http.Error(w, "kind must be Dog, Cat or Bird (wing_span >= 0)", http.StatusBadRequest)
			return
		}

		created, err := svc.Add(r.Context(), a)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, ToRecord(created))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales (o buscar por nombre)
// @Description Sin parámetros devuelve {"items": [...], "empty": bool} en orden de inserción. Con `name` devuelve el primer animal cuyo nombre coincide sin distinguir mayúsculas.
// @Tags animals
// @Produce json
// @Param name query string false "Nombre a buscar (case-insensitive)"
// @Success 200 {object} Record
// @Failure 404 {string} string "animal not found"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if name, ok := r.URL.Query()["name"]; ok && len(name) > 0 {
			a, err := svc.FindByName(r.Context(), name[0])
			if err != nil {
				writeLookupError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, ToRecord(a))
			return
		}

		list, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]Record, 0, list.Len())
		for a := range list.All() {
			out = append(out, ToRecord(a))
		}
		writeJSON(w, http.StatusOK, seq.Of(out))
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), strings.TrimSpace(chi.URLParam(r, "animalID")))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToRecord(a))
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "animal not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
