package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/gexplore/internal/handlers"
	"github.com/alimgiray/gexplore/internal/middleware"
	"github.com/alimgiray/gexplore/internal/repositories"
	"github.com/alimgiray/gexplore/internal/services"
	"github.com/alimgiray/gexplore/internal/workers"
	"github.com/alimgiray/gexplore/pkg/config"
	"github.com/alimgiray/gexplore/pkg/database"
	"github.com/alimgiray/gexplore/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init("", os.Stdout)

	gin.SetMode(config.AppConfig.Server.Mode)

	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	keyValueRepo := repositories.NewKeyValueRepository(database.DB)
	contributionRepo := repositories.NewContributionRepository(database.DB)

	profileService, err := services.NewProfileService(keyValueRepo)
	if err != nil {
		logger.Fatalf("Failed to load profile: %v", err)
	}
	exploreService := services.NewExploreService(profileService)

	var source services.ActivitySource
	switch config.AppConfig.Activity.Source {
	case services.ActivitySourceStored:
		source = services.NewStoredActivitySource(contributionRepo, keyValueRepo)
	case services.ActivitySourceRandom:
		source = services.NewRandomActivitySource(config.AppConfig.Activity.MaxCount, config.AppConfig.Activity.Seed)
	default:
		logger.Fatalf("Unknown ACTIVITY_SOURCE %q", config.AppConfig.Activity.Source)
	}
	contributionService := services.NewContributionService(source)

	var syncer handlers.ActivitySyncer
	var workerSyncer workers.Syncer
	if githubConfig := config.AppConfig.GitHub; githubConfig.Enabled() {
		activityService := services.NewGitHubActivityService(
			services.NewGitHubClient(githubConfig.Token),
			githubConfig.Username,
			githubConfig.Repositories,
			contributionRepo,
			keyValueRepo,
			time.Local,
		)
		syncer = activityService
		workerSyncer = activityService
	}

	workerManager := workers.NewWorkerManager(
		workerSyncer,
		time.Duration(config.AppConfig.GitHub.SyncIntervalMinutes)*time.Minute,
		config.AppConfig.Workers.ActivitySync,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.GetLogger()))
	router.Use(middleware.SessionMiddleware(config.AppConfig.Session.Secret))

	handlers.SetupRoutes(router, handlers.Handlers{
		UIState:      handlers.NewUIStateHandler(exploreService),
		Explore:      handlers.NewExploreHandler(exploreService),
		Profile:      handlers.NewProfileHandler(profileService),
		Contribution: handlers.NewContributionHandler(contributionService, syncer, time.Local),
		Health:       handlers.NewHealthHandler(),
		NotFound:     handlers.NewNotFoundHandler(),
		SyncEnabled:  config.AppConfig.GitHub.Enabled(),
	})

	if err := workerManager.StartAll(); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}

	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	workerManager.StopAll()

	logger.Info("Server stopped")
}
