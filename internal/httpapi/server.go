package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brainrotlabs/brainrot-api/internal/auth"
	"github.com/brainrotlabs/brainrot-api/internal/config"
	"github.com/brainrotlabs/brainrot-api/internal/service"
	"github.com/brainrotlabs/brainrot-api/internal/share"
	"github.com/brainrotlabs/brainrot-api/internal/storage"
)

type Server struct {
	cfg    config.Config
	log    *slog.Logger
	router *chi.Mux

	verifier *auth.Verifier
	supabase *auth.SupabaseClient

	generation   *service.GenerationService
	entitlements *service.EntitlementService
	posts        *service.PostService
	payments     *service.PaymentService
	plans        *service.PlanService
	profiles     *service.ProfileService
	promos       *service.PromoService

	publisher *share.TelegramPublisher
	exporter  *storage.Exporter
}

type Deps struct {
	Verifier     *auth.Verifier
	Supabase     *auth.SupabaseClient
	Generation   *service.GenerationService
	Entitlements *service.EntitlementService
	Posts        *service.PostService
	Payments     *service.PaymentService
	Plans        *service.PlanService
	Profiles     *service.ProfileService
	Promos       *service.PromoService
	Publisher    *share.TelegramPublisher
	Exporter     *storage.Exporter
}

func NewServer(cfg config.Config, log *slog.Logger, deps Deps) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	s := &Server{
		cfg:          cfg,
		log:          log,
		router:       r,
		verifier:     deps.Verifier,
		supabase:     deps.Supabase,
		generation:   deps.Generation,
		entitlements: deps.Entitlements,
		posts:        deps.Posts,
		payments:     deps.Payments,
		plans:        deps.Plans,
		profiles:     deps.Profiles,
		promos:       deps.Promos,
		publisher:    deps.Publisher,
		exporter:     deps.Exporter,
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/plans", s.handleListPlans)
	r.Get("/auth/callback", s.handleAuthCallback)
	r.Get("/payment/capture", s.handlePayPalCapture)

	r.Group(func(protected chi.Router) {
		protected.Use(s.verifier.RequireAuth)
		protected.Post("/generate", s.handleGenerate)
		protected.Get("/stats", s.handleStats)
		protected.Post("/promo/redeem", s.handleRedeemPromo)

		protected.Post("/payment", s.handleCreateRazorpayOrder)
		protected.Post("/payment/verify", s.handleVerifyRazorpay)
		protected.Post("/payment/paypal", s.handleCreatePayPalOrder)

		protected.Route("/posts", func(r chi.Router) {
			r.Get("/", s.handleListPosts)
			r.Post("/", s.handleSavePost)
			r.Post("/export", s.handleExportPosts)
			r.Put("/{id}/favorite", s.handleFavoritePost)
			r.Delete("/{id}", s.handleDeletePost)
			r.Post("/{id}/share", s.handleSharePost)
		})

		protected.Get("/settings", s.handleGetSettings)
		protected.Put("/settings", s.handleUpdateSettings)
	})

	r.Group(func(admin chi.Router) {
		admin.Use(s.basicAuthMiddleware())
		admin.Route("/admin/plans", func(r chi.Router) {
			r.Get("/", s.handleAdminListPlans)
			r.Post("/", s.handleAdminCreatePlan)
			r.Put("/{id}", s.handleAdminUpdatePlan)
			r.Delete("/{id}", s.handleAdminDeletePlan)
		})
	})

	return s
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("shutdown error", "err", err)
		}
	}()

	s.log.Info("api listening", "addr", s.cfg.ListenAddr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) basicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != s.cfg.AdminUsername || pass != s.cfg.AdminPassword {
				w.Header().Set("WWW-Authenticate", `Basic realm="brainrot"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
