package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cnapp/auth"
	"cnapp/config"
	"cnapp/database"
	"cnapp/logger"
	"cnapp/repository"
	"cnapp/routes"
	"cnapp/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Logger.Fatal("invalid configuration: " + err.Error())
	}
	if !cfg.DotEnvLoaded {
		log.Infof("no .env file found, using environment variables")
	}
	if cfg.UsingFallbackSecret {
		log.Warnf("JWT_SECRET is not set, signing tokens with the built-in fallback secret")
	}

	gin.SetMode(cfg.GinMode)

	var (
		users    repository.UserRepository
		messages repository.MessageRepository
		db       *database.DB
		deps     routes.Deps
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warnf("STORE_DRIVER=memory: data is lost on restart")
		users = repository.NewMemoryUserRepository()
		messages = repository.NewMemoryMessageRepository()
	default:
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		var err error
		db, err = database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
		if err == nil {
			err = db.EnsureIndexes(ctx)
		}
		cancel()
		if err != nil {
			log.Logger.Fatal("failed to initialise MongoDB: " + err.Error())
		}
		log.Infof("MongoDB connected (database %q)", cfg.MongoDatabase)

		users = repository.NewMongoUserRepository(db.Users)
		messages = repository.NewMongoMessageRepository(db.Messages)
		deps.Store = db
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	deps.Auth = services.NewAuthService(users, tokens)
	deps.Messages = services.NewMessageService(messages)
	deps.Log = log
	deps.AllowedOrigins = cfg.AllowedOrigins
	deps.RequireAuth = cfg.RequireAuth

	router := routes.SetupRouter(deps)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("server error: " + err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		log.Errorf("MongoDB disconnect: %v", err)
	}

	log.Infof("server stopped")
}
