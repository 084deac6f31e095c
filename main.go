package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"league-ranking-system/handlers"
	"league-ranking-system/middleware"
	"league-ranking-system/models"
	"league-ranking-system/services"
	"league-ranking-system/storage"
	"league-ranking-system/utils"
	"league-ranking-system/workers"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, reading environment variables directly")
	}
	log := newLogger()

	app := fiber.New(fiber.Config{})

	// Only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware(log))

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Warn("ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-User-ID, X-User-Roles",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	if err := utils.InitR2(); err != nil {
		log.WithError(err).Warn("R2 not configured, report archiving disabled")
	}

	// Postgres when DATABASE_URL is set, in-memory otherwise. The in-memory
	// repositories carry the same per-season write serialization, so local
	// runs and tests behave like production.
	var seasonRepo storage.SeasonRepository
	var conflictRepo storage.ConflictRepository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.WithError(err).Fatal("failed to connect to database")
		}
		if err := db.AutoMigrate(&models.Season{}, &models.RuleConflict{}); err != nil {
			log.WithError(err).Fatal("failed to migrate database")
		}
		seasonRepo = storage.NewGormSeasonRepository(db)
		conflictRepo = storage.NewGormConflictRepository(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage")
		seasonRepo = storage.NewMemorySeasonRepository()
		conflictRepo = storage.NewMemoryConflictRepository()
	}

	engine := services.NewLeagueEngine(seasonRepo, log)
	cache := services.NewStandingsCache(log)
	advisory := services.NewHTTPRuleAdvisory(log)
	conflictService := services.NewConflictService(conflictRepo, advisory, log)

	leagueAPI := services.NewLeagueAPIService(engine, cache)
	federationAPI := services.NewFederationAPIService(conflictService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if strings.EqualFold(os.Getenv("SEED_DEMO_SEASONS"), "true") {
		services.SeedDemoSeasons(ctx, engine, log)
	}

	scheduler := workers.NewSeasonScheduler(seasonRepo, engine, log)
	if err := scheduler.Start(ctx); err != nil {
		log.WithError(err).Fatal("failed to start season scheduler")
	}
	reporter := workers.NewReportWorker(engine, log)
	if err := reporter.Start(ctx); err != nil {
		log.WithError(err).Fatal("failed to start report worker")
	}

	handlers.SetupLeagueRoutes(app, leagueAPI, log)
	handlers.SetupFederationRoutes(app, federationAPI, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.WithError(err).Error("server error")
		}
	}()
	log.Infof("League ranking service running on :%s", port)

	<-ctx.Done()
	log.Info("Shutting down server...")
	_ = app.Shutdown()
}
