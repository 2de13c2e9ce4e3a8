package router

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"

	"loja-api/internal/auth"
	"loja-api/internal/database"
	"loja-api/internal/handler"
	"loja-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the resource handlers mounted by New.
type Handlers struct {
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Users    *handler.UserHandler
}

// Options configures the router's supporting routes.
type Options struct {
	// UploadDir is served read-only under /uploads/.
	UploadDir string
	// Health is pinged by GET /health. Nil reports healthy unconditionally.
	Health database.Pinger
}

const healthTimeout = 2 * time.Second

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, verifier auth.TokenVerifier, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	requireAuth := middleware.Authenticate(verifier, logger)

	r.Get("/health", healthHandler(opts.Health, logger))

	if opts.UploadDir != "" {
		r.Handle("/uploads/*", uploads(opts.UploadDir))
	}

	r.Route("/produtos", func(r chi.Router) {
		r.Get("/", h.Products.List)
		r.Get("/{id_produto}", h.Products.GetByID)
		r.With(requireAuth).Post("/", h.Products.Create)
		r.With(requireAuth).Put("/", h.Products.Update)
		r.With(requireAuth).Delete("/", h.Products.Delete)
	})

	r.Route("/pedidos", func(r chi.Router) {
		r.Get("/", h.Orders.List)
		r.Get("/{id_pedido}", h.Orders.GetByID)
		r.With(requireAuth).Post("/", h.Orders.Create)
		r.With(requireAuth).Delete("/", h.Orders.Delete)
	})

	r.Route("/usuarios", func(r chi.Router) {
		r.Post("/cadastro", h.Users.Register)
		r.Post("/login", h.Users.Login)
	})

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

// notFound answers every unmatched route or method.
func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"erro":{"mensagem":"Não encontrado"}}`))
}

// uploads serves stored images. Only regular files are served: directories and
// missing names get the JSON not-found body.
func uploads(dir string) http.Handler {
	root := http.Dir(dir)
	files := http.StripPrefix("/uploads", http.FileServer(root))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + strings.TrimPrefix(r.URL.Path, "/uploads"))

		f, err := root.Open(name)
		if err != nil {
			notFound(w, r)
			return
		}
		info, err := f.Stat()
		f.Close()
		if err != nil || info.IsDir() {
			notFound(w, r)
			return
		}

		files.ServeHTTP(w, r)
	})
}

func healthHandler(pinger database.Pinger, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			if err := pinger.Ping(ctx); err != nil {
				logger.Error().Err(err).Msg("health check failed")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"unhealthy"}`))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}
}
