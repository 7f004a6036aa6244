package router

import (
	"net/http"
	"time"

	_ "pet-care-tracker/docs"
	"pet-care-tracker/internal/domain/documents"
	"pet-care-tracker/internal/domain/feeding"
	"pet-care-tracker/internal/domain/healthlogs"
	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/reminders"
	"pet-care-tracker/internal/domain/training"
	"pet-care-tracker/internal/middleware"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/platform/respond"
	"pet-care-tracker/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Store *store.Store

	// Notifications atiende /ws (el hub de websocket). Puede ser nil: la ruta no se monta.
	Notifications http.Handler

	Logger logger.Logger

	// AllowedOrigins para CORS; vacío = "*".
	AllowedOrigins []string

	// RequestTimeout aplica a la API JSON (no al websocket). 0 = 30s.
	RequestTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if opts.Notifications != nil {
		r.Get("/ws", opts.Notifications.ServeHTTP)
	}

	// API JSON
	r.Group(func(api chi.Router) {
		api.Use(chimw.Timeout(timeout))

		api.Get("/state", stateHandler(opts.Store))

		// Rutas por módulo
		pets.RegisterRoutes(api, opts.Store)
		reminders.RegisterRoutes(api, opts.Store)
		healthlogs.RegisterRoutes(api, opts.Store)
		feeding.RegisterRoutes(api, opts.Store)
		training.RegisterRoutes(api, opts.Store)
		documents.RegisterRoutes(api, opts.Store)
	})

	return r
}

// @Summary Estado completo
// @Description Todas las colecciones en una sola respuesta (carga inicial de la UI).
// @Tags state
// @Produce json
// @Success 200 {object} store.Snapshot
// @Router /state [get]
func stateHandler(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, s.Snapshot())
	}
}
