package adopters

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/platform/seq"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adopters", func(ar chi.Router) {
		ar.Post("/", createAdopterHandler(svc))
		ar.Get("/{adopterID}", getAdopterHandler(svc))
		ar.Get("/{adopterID}/animals", listAdoptedHandler(svc))
	})
}

type createAdopterRequest struct {
	AdopterID   int    `json:"adopter_id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// AdopterResponse también lo usa el cliente HTTP.
type AdopterResponse struct {
	ID          string    `json:"id"`
	AdopterID   int       `json:"adopter_id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contact_info"`
	AnimalIDs   []string  `json:"animal_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r AdopterResponse) Adopter() Adopter {
	return Adopter{
		ID:          r.ID,
		AdopterID:   r.AdopterID,
		Name:        r.Name,
		ContactInfo: r.ContactInfo,
		AnimalIDs:   r.AnimalIDs,
		CreatedAt:   r.CreatedAt,
	}
}

// createAdopterHandler godoc
// @Summary Registrar adoptante
// @Description adopter_id lo trae el caller y puede repetirse; el id del recurso lo asigna el refugio.
// @Tags adopters
// @Accept json
// @Produce json
// @Param payload body createAdopterRequest true "Datos del adoptante"
// @Success 201 {object} AdopterResponse
// @Failure 400 {string} string "invalid json"
// @Router /adopters [post]
func createAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdopterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			AdopterID:   req.AdopterID,
			Name:        req.Name,
			ContactInfo: req.ContactInfo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAdopterResponse(a))
	}
}

func getAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adopterID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdopterResponse(a))
	}
}

// listAdoptedHandler godoc
// @Summary Animales adoptados por un adoptante
// @Description Devuelve {"items": [...], "empty": bool}. El estado de salud refleja el registro actual.
// @Tags adopters
// @Produce json
// @Param adopterID path string true "ID del adoptante"
// @Success 200 {object} seq.List[animals.Record]
// @Failure 404 {string} string "adopter not found"
// @Router /adopters/{adopterID}/animals [get]
func listAdoptedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListAdopted(r.Context(), chi.URLParam(r, "adopterID"))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]animals.Record, 0, list.Len())
		for a := range list.All() {
			out = append(out, animals.ToRecord(a))
		}
		writeJSON(w, http.StatusOK, seq.Of(out))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "adopter not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAdopterResponse(a Adopter) AdopterResponse {
	ids := a.AnimalIDs
	if ids == nil {
		ids = []string{}
	}
	return AdopterResponse{
		ID:          a.ID,
		AdopterID:   a.AdopterID,
		Name:        a.Name,
		ContactInfo: a.ContactInfo,
		AnimalIDs:   ids,
		CreatedAt:   a.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
