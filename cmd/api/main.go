package main

import (
	"context"
	"os"

	"go-inventory-rfid/internal/config"
	"go-inventory-rfid/internal/middleware"
	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/internal/router"
	"go-inventory-rfid/internal/service"
	"go-inventory-rfid/internal/ws"
	"go-inventory-rfid/pkg/database"
	"go-inventory-rfid/pkg/jwt"
	"go-inventory-rfid/pkg/logger"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	// 2. Setup Database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db, model.All()...); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	tokens := jwt.NewManager(jwt.Config{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL,
		Issuer: cfg.JWT.Issuer,
	})

	// 3. Seed admin user
	created, err := service.NewAuthService(repository.NewUserRepo(db), tokens).
		EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.WithError(err).Warn("Failed to seed admin user")
	} else if created {
		log.WithField("username", cfg.Admin.Username).Info("Admin user created")
	}

	// 4. Setup WebSocket Hub
	hubCtx, stopHub := context.WithCancel(context.Background())
	wsHub := ws.NewHub()
	go wsHub.Run(hubCtx)

	authLimiter := middleware.NewRateLimiter(
		middleware.PerMinute(cfg.RateLimit.AuthPerMinute),
		cfg.RateLimit.AuthBurst,
	)

	// 5. Routes
	app, err := router.New(router.Deps{
		Config:      cfg,
		DB:          db,
		Tokens:      tokens,
		Hub:         wsHub,
		AuthLimiter: authLimiter,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to build router")
	}

	go func() {
		addr := ":" + cfg.Server.Port
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Environment}).Info("Server listening")
		if err := app.Listen(addr); err != nil {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	// 6. Graceful Shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http": func(ctx context.Context) error {
				log.Info("Shutting down server...")
				return app.ShutdownWithContext(ctx)
			},
			"ws-hub": func(ctx context.Context) error {
				stopHub()
				authLimiter.Stop()
				return nil
			},
		},
	)

	exitCode := <-wait
	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}
	log.WithField("code", exitCode).Info("Server exited")
	os.Exit(exitCode)
}
