package httpadapter

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"adops/internal/config/configs"
	"adops/internal/core/domain"
	"adops/internal/core/port"
)

// Services are the use cases served over HTTP.
type Services struct {
	Auth      port.AuthUseCase
	Audit     port.AuditUseCase
	Campaigns port.CampaignUseCase
	Uploads   port.UploadUseCase
	Posts     port.PostUseCase
	Studio    port.StudioUseCase
	Trust     port.TrustUseCase
}

// Options tune the router. DB and Redis are used by the readiness probe;
// Redis also backs the rate limiter. Either may be nil.
type Options struct {
	AllowedOrigins []string
	RateLimit      configs.RateLimit
	MaxUploadBytes int64
	DB             *sql.DB
	Redis          *redis.Client
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes requests, resolves the actor and maps use case results
// onto the JSON envelope.
type Handler struct {
	svc    Services
	opts   Options
	db     *sql.DB
	rdb    *redis.Client
	logger *zap.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *zap.Logger) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	h := &Handler{svc: svc, opts: opts, db: opts.DB, rdb: opts.Redis, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Use(middleware.Timeout(60 * time.Second))

		// public
		r.Get("/trust", h.handleTrustActive)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Get("/auth/me", h.handleMe)
			r.Post("/auth/logout", h.handleLogout)
			r.Get("/permissions/check", h.handlePermissionCheck)

			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", h.handleListCampaigns)
				r.Get("/{id}", h.handleGetCampaign)
				r.Get("/{id}/adsets", h.handleCampaignAdSets)
			})
			r.Get("/adsets", h.handleListAdSets)

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/validate", h.handleValidateUpload)
				r.Post("/", h.handleCreateUpload)
				r.Get("/", h.handleListUploads)
				r.Get("/{id}", h.handleGetUpload)
			})

			r.Get("/audit", h.handleListAudit)

			r.Route("/posts", func(r chi.Router) {
				r.Post("/", h.handleCreatePost)
				r.Get("/", h.handleListPosts)
				r.Post("/bulk", h.handleBulkPosts)
				r.Get("/{id}", h.handleGetPost)
				r.Patch("/{id}", h.handleUpdatePost)
				r.Delete("/{id}", h.handleDeletePost)
				r.Post("/{id}/variants", h.handleCreateVariant)
				r.Delete("/{id}/variants/{variantId}", h.handleDeleteVariant)
			})

			r.Route("/studio", func(r chi.Router) {
				r.Get("/tones", h.handleTones)
				r.Get("/templates", h.handleTemplates)
				r.Post("/rewrite", h.handleRewrite)
				r.Get("/preferences", h.handlePreferences)
				r.Post("/preferences/approved", h.handleApproveMessage)
				r.Delete("/preferences/approved", h.handleClearMessage)
				r.Post("/preferences/onboarding/{flag}", h.handleOnboardingSeen)
			})

			// /api/trust itself is public, so these are not mounted as a subrouter
			r.Get("/trust/versions", h.handleTrustVersions)
			r.Post("/trust/versions", h.handlePublishTrust)
			r.Get("/trust/versions/{n}", h.handleTrustVersion)
			r.Post("/trust/versions/{n}/activate", h.handleActivateTrust)
			r.Get("/trust/diff", h.handleTrustDiff)
			r.Get("/trust/changelog", h.handleTrustChangelog)
			r.Post("/trust/rollback", h.handleRollbackTrust)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.fail(w, r, http.StatusNotFound, "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.fail(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// actorOf returns the actor of an authenticated route.
func actorOf(r *http.Request) domain.Actor {
	actor, _ := actorFrom(r.Context())
	return actor
}
