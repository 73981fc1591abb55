package main

import (
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/pbsgifts/promoweb/internal/api/handlers"
	"github.com/pbsgifts/promoweb/internal/api/middleware"
	"github.com/pbsgifts/promoweb/internal/config"
	"github.com/pbsgifts/promoweb/internal/logging"
	"github.com/pbsgifts/promoweb/internal/mail"
	"github.com/pbsgifts/promoweb/internal/metrics"
	"github.com/pbsgifts/promoweb/internal/ratelimit"
	"github.com/pbsgifts/promoweb/internal/server"
	"github.com/pbsgifts/promoweb/internal/server/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logging.Configure(&logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	if !cfg.MailConfigured() {
		logger.Warn("Mail delivery not fully configured; submission endpoints will answer 500 until POSTMARK_TOKEN, MAIL_FROM and MAIL_TO are set")
	}
	if cfg.RateLimitSecret == "" {
		logger.Warn("RL_SECRET not set; quote endpoint will answer 500")
	}

	// Contact cooldown store: Redis when configured, in-process map otherwise
	var store ratelimit.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("Invalid REDIS_URL: %v", err)
			os.Exit(1)
		}
		store = ratelimit.NewRedisStore(redis.NewClient(opts), ratelimit.ContactWindow)
		logger.Info("Using Redis rate-limit store")
	} else {
		store = ratelimit.NewMemoryStore()
	}

	sender := mail.NewPostmarkClient(cfg.PostmarkToken)
	guard := ratelimit.NewGuard(store, ratelimit.ContactWindow)
	limiter := ratelimit.NewCookieLimiter(cfg.RateLimitSecret, ratelimit.QuoteWindow, ratelimit.QuoteLimit)
	m := metrics.New()

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(cfg, sender, guard, m),
		Quote:   handlers.NewQuoteHandler(cfg, sender, limiter, m),
		Health:  handlers.NewHealthHandler(),
	}
	mw := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(m),
	}

	srv := server.NewServer(cfg)
	srv.Init(h, mw, m)

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
