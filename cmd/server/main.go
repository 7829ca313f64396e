package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mondedelice/bakery-backend/internal/config"
	"github.com/mondedelice/bakery-backend/internal/db"
	"github.com/mondedelice/bakery-backend/internal/goroutine"
	"github.com/mondedelice/bakery-backend/internal/http/handlers"
	"github.com/mondedelice/bakery-backend/internal/http/router"
	"github.com/mondedelice/bakery-backend/internal/logger"
	"github.com/mondedelice/bakery-backend/internal/repository"
	"github.com/mondedelice/bakery-backend/internal/service"
	"github.com/mondedelice/bakery-backend/internal/storage"
	"github.com/mondedelice/bakery-backend/internal/ws"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		logger.Log.WithError(err).Fatal("chargement de la configuration impossible")
	}

	logger.Init("info")
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}

	conn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.WithError(err).Fatal("connexion à PostgreSQL impossible")
	}
	defer safeClose(conn.Close)

	if err := db.RunMigrations(ctx, conn, cfg.MigrationsPath); err != nil {
		logger.Log.WithError(err).Fatal("exécution des migrations impossible")
	}

	imageStorage, err := storage.NewImageStorage(cfg.MediaStoragePath, cfg.MaxUploadMB)
	if err != nil {
		logger.Log.WithError(err).Fatal("initialisation du stockage d'images impossible")
	}

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.AdminTokenTTL)
	auth := service.NewAuthService(cfg.AdminPassword, cfg.AdminPasswordHash, tokens)

	productRepo := repository.NewProductRepository(conn)
	blogRepo := repository.NewBlogRepository(conn)
	likeRepo := repository.NewLikeRepository(conn)
	imageRepo := repository.NewImageRepository(conn)

	hub := ws.NewHub()
	goroutine.SafeGo(hub.Run)

	likeService := service.NewLikeService(blogRepo, likeRepo, hub)

	productHandler := handlers.NewProductHandler(productRepo)
	blogHandler := handlers.NewBlogHandler(blogRepo)
	likeHandler := handlers.NewLikeHandler(likeService)
	imageHandler := handlers.NewImageHandler(imageRepo, imageStorage, cfg.PublicBaseURL)
	adminHandler := handlers.NewAdminHandler(auth, productRepo, blogRepo, imageRepo)
	healthHandler := handlers.NewHealthHandler(conn)
	wsHandler := handlers.NewWSHandler(hub)

	engine := router.SetupRouter(
		cfg,
		productHandler,
		blogHandler,
		likeHandler,
		imageHandler,
		adminHandler,
		healthHandler,
		wsHandler,
		tokens,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Arrêt propre sur SIGINT/SIGTERM.
	goroutine.SafeGo(func() {
		<-ctx.Done()
		logger.Log.Info("signal d'arrêt reçu, fermeture du serveur...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("arrêt du serveur HTTP en erreur")
		}
	})

	logger.Log.WithField("port", cfg.HTTPPort).Info("API Monde Délice démarrée")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.WithError(err).Fatal("serveur HTTP arrêté en erreur")
	}

	logger.Log.Info("serveur arrêté")
}

// safeClose ferme une ressource en journalisant l'erreur éventuelle.
func safeClose(closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Log.WithError(err).Error("fermeture de ressource en erreur")
	}
}
