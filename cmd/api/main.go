package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/app"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/config"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/database"
	apphttp "github.com/Sumukwo12/recruitment-portal-sub000/internal/http"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/handlers"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/metrics"
	httpmw "github.com/Sumukwo12/recruitment-portal-sub000/internal/http/middleware"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/response"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/integration/mailapi"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/observability"
	pgrepo "github.com/Sumukwo12/recruitment-portal-sub000/internal/repository/postgres"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/repository/redisstore"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/screening"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/security"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.NewLogger()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
	}

	classifier := screening.NewPatternClassifier()

	jobRepo := pgrepo.NewJobRepository(db)
	applicationRepo := pgrepo.NewApplicationRepository(db, classifier)
	adminRepo := pgrepo.NewAdminRepository(db)
	emailLogRepo := pgrepo.NewEmailLogRepository(db)
	draftStore := redisstore.NewDraftStore(redisClient, cfg.DraftTTL)

	resumeStore := storage.NewDiskStore(cfg.UploadDir, cfg.MaxResumeSize)
	mailClient := mailapi.NewClient(cfg.MailAPIBaseURL, cfg.MailAPIKey, cfg.MailFrom, nil)
	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	jobService := app.NewJobService(jobRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, resumeStore)
	notificationService := app.NewNotificationService(applicationRepo, mailClient, emailLogRepo, logger)
	authService := app.NewAuthService(adminRepo, jwtProvider, cfg.SessionTTL)

	var limiter httpmw.Limiter
	if redisClient != nil {
		limiter = httpmw.NewRedisLimiter(redisClient)
	} else {
		limiter = httpmw.NewRateLimiter()
	}

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService, limiter),
		JobHandler:         handlers.NewJobHandler(jobService),
		QuestionHandler:    handlers.NewQuestionHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, draftStore, limiter),
		AdminApplications:  handlers.NewAdminApplicationHandler(applicationService, notificationService),
		NotifyHandler:      handlers.NewNotifyHandler(notificationService),
		AuthMiddleware:     httpmw.NewAuthMiddleware(jwtProvider),
		MetricsHandler:     metrics.NewHandler(collector),
		Metrics:            collector,
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
		MaxBodyBytes:       cfg.MaxResumeSize + 1<<20,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout + 5*time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		logger.Info("api started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("api stopped")
}
