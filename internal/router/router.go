package router

import (
	"net/http"

	_ "animal-shelter/docs"
	"animal-shelter/internal/middleware"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/shelter"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (no loguea)

	// Opcional: si viene, se sirve ese refugio. Si no, uno nuevo en memoria.
	Shelter *shelter.Shelter
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s := opts.Shelter
	if s == nil {
		s = shelter.NewInMemory(log)
	}
	shelter.RegisterRoutes(r, s)

	return r
}
