package bootstrap

import (
	"context"
	"fmt"

	"insights-server/internal/config"
	"insights-server/internal/observability"
	"insights-server/internal/store"

	analyticsHandler "insights-server/internal/analytics/handler"
	analyticsProcessor "insights-server/internal/analytics/processor"
	"insights-server/internal/auth/handler"
	"insights-server/internal/auth/processor"
	"insights-server/internal/clients/mail"
	openaiClient "insights-server/internal/clients/openai"
	redisClient "insights-server/internal/clients/redis"
	"insights-server/internal/email"
	"insights-server/internal/ratelimit"
	"insights-server/internal/reports"
	"insights-server/internal/scoring"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler      handler.Handler
	AnalyticsHandler analyticsHandler.Handler

	// Middleware services
	RateLimiter *ratelimit.Service

	// Background workers
	DigestWorker  *reports.DigestWorker
	ScoringWorker *scoring.Worker

	// Clients needing cleanup
	Redis *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Redis (nil when disabled; rate limiting fails open)
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.Redis, logger)

	// Initialize mail client and email service
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}
	emailService := email.New(mailClient, cfg.Services.DefaultEmailSender, logger)

	// Initialize auth processor and handler
	authProc := processor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = handler.New(authProc, logger)

	// Initialize analytics processor and handler
	costModel := analyticsProcessor.NewHeuristicCostModel()
	analyticsProc := analyticsProcessor.New(&deps.Store, costModel, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	// Initialize weekly digest worker
	reportProc := reports.New(&deps.Store, analyticsProc, emailService, cfg.Services.WebAppURI, logger)
	deps.DigestWorker = reports.NewWorker(reportProc, logger, cfg.Workers.DigestInterval)

	// Initialize confidence scoring worker
	scoringClient, err := openaiClient.NewScoringClient(cfg.Services.OpenAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring client: %w", err)
	}
	scoringProc := scoring.New(&deps.Store, scoringClient, logger)
	deps.ScoringWorker = scoring.NewWorker(scoringProc, logger, cfg.Workers.ScoringInterval, cfg.Workers.ScoringBatch)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Redis != nil {
		d.Redis.Close()
	}
}
