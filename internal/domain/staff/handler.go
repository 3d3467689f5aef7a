package staff

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/staff", func(sr chi.Router) {
		sr.Post("/", createMemberHandler(svc))
		sr.Get("/{staffID}", getMemberHandler(svc))
		sr.Post("/{staffID}/tasks", assignTaskHandler(svc))
		sr.Get("/{staffID}/tasks", listTasksHandler(svc))
	})
}

type createMemberRequest struct {
	StaffID int    `json:"staff_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

type assignTaskRequest struct {
	Task string `json:"task"`
}

// MemberResponse también lo usa el cliente HTTP.
type MemberResponse struct {
	ID        string    `json:"id"`
	StaffID   int       `json:"staff_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Tasks     []string  `json:"tasks"`
	CreatedAt time.Time `json:"created_at"`
}

func (r MemberResponse) Member() Member {
	return Member{
		ID:        r.ID,
		StaffID:   r.StaffID,
		Name:      r.Name,
		Role:      r.Role,
		Tasks:     r.Tasks,
		CreatedAt: r.CreatedAt,
	}
}

func createMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{StaffID: req.StaffID, Name: req.Name, Role: req.Role})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toMemberResponse(m))
	}
}

func getMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "staffID")
		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMemberResponse(m))
	}
}

// assignTaskHandler godoc
// @Summary Asignar tarea
// @Tags staff
// @Accept json
// @Produce json
// @Param staffID path string true "ID del empleado"
// @Param payload body assignTaskRequest true "Descripción de la tarea"
// @Success 200 {object} MemberResponse
// @Failure 404 {string} string "staff member not found"
// @Router /staff/{staffID}/tasks [post]
func assignTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "staffID")

		var req assignTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.AssignTask(r.Context(), id, req.Task); err != nil {
			writeError(w, err)
			return
		}

		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMemberResponse(m))
	}
}

func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "staffID")
		tasks, err := svc.ListTasks(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tasks)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "staff member not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toMemberResponse(m Member) MemberResponse {
	tasks := m.Tasks
	if tasks == nil {
		tasks = []string{}
	}
	return MemberResponse{
		ID:        m.ID,
		StaffID:   m.StaffID,
		Name:      m.Name,
		Role:      m.Role,
		Tasks:     tasks,
		CreatedAt: m.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
