package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/brainrotlabs/brainrot-api/internal/auth"
	"github.com/brainrotlabs/brainrot-api/internal/config"
	"github.com/brainrotlabs/brainrot-api/internal/database"
	"github.com/brainrotlabs/brainrot-api/internal/gemini"
	"github.com/brainrotlabs/brainrot-api/internal/generator"
	"github.com/brainrotlabs/brainrot-api/internal/httpapi"
	"github.com/brainrotlabs/brainrot-api/internal/payment/paypal"
	"github.com/brainrotlabs/brainrot-api/internal/payment/razorpay"
	"github.com/brainrotlabs/brainrot-api/internal/repository"
	"github.com/brainrotlabs/brainrot-api/internal/service"
	"github.com/brainrotlabs/brainrot-api/internal/share"
	"github.com/brainrotlabs/brainrot-api/internal/storage"
	"github.com/brainrotlabs/brainrot-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logr := logger.New(cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}

	statsRepo := repository.NewStatsRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	planRepo := repository.NewPlanRepository(db)
	promoRepo := repository.NewPromoRepository(db)

	if err := planRepo.EnsureDefaults(ctx); err != nil {
		log.Fatalf("ensure default plans: %v", err)
	}

	geminiClient := gemini.NewClient(cfg, logr)
	razorpayClient := razorpay.NewClient(cfg, logr)
	paypalClient := paypal.NewClient(cfg, logr)

	entitlementService := service.NewEntitlementService(logr, statsRepo, cfg.FreeCredits)
	generationService := service.NewGenerationService(logr, entitlementService, generator.NewEngine(), geminiClient)
	postService := service.NewPostService(logr, postRepo)
	planService := service.NewPlanService(logr, planRepo)
	paymentService := service.NewPaymentService(logr, razorpayClient, paypalClient, paymentRepo, planRepo, entitlementService, cfg.AppBaseURL)
	profileService := service.NewProfileService(logr, profileRepo)
	promoService := service.NewPromoService(logr, promoRepo, entitlementService)

	var publisher *share.TelegramPublisher
	if cfg.TelegramEnabled() {
		publisher, err = share.NewTelegramPublisher(cfg.TelegramBotToken, cfg.TelegramChannelID, logr)
		if err != nil {
			log.Fatalf("telegram publisher: %v", err)
		}
	}

	var exporter *storage.Exporter
	if cfg.S3Enabled() {
		exporter, err = storage.NewExporter(storage.Config{
			Endpoint:      cfg.S3Endpoint,
			Region:        cfg.S3Region,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
			UsePathStyle:  cfg.S3UsePathStyle,
			Prefix:        cfg.S3Prefix,
		})
		if err != nil {
			log.Fatalf("storage exporter: %v", err)
		}
	}

	server := httpapi.NewServer(cfg, logr, httpapi.Deps{
		Verifier:     auth.NewVerifier(cfg.AuthJWTSecret),
		Supabase:     auth.NewSupabaseClient(cfg, logr),
		Generation:   generationService,
		Entitlements: entitlementService,
		Posts:        postService,
		Payments:     paymentService,
		Plans:        planService,
		Profiles:     profileService,
		Promos:       promoService,
		Publisher:    publisher,
		Exporter:     exporter,
	})

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logr.Error("server stopped", "err", err)
	}
}
