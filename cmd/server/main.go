package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"

	config "socialflow/configs"
	"socialflow/internal/api/handlers"
	"socialflow/internal/api/middleware"
	job "socialflow/internal/jobs"
	"socialflow/internal/queue"
	"socialflow/internal/repository"
	"socialflow/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	var db *sql.DB
	var postRepo repository.PostRepository
	var scheduleRepo repository.ScheduleRepository

	if cfg.PostgresURI != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer closeDB(db)

		if err := db.Ping(); err != nil {
			log.Fatalf("Database is unreachable: %v", err)
		}

		postRepo = repository.NewPostRepository(db)
		scheduleRepo = repository.NewScheduleRepository(db)
	} else {
		log.Println("POSTGRES_URI not set, using in-memory stores")
		postRepo = repository.NewMemoryPostRepository()
		scheduleRepo = repository.NewMemoryScheduleRepository()
	}

	platformRepo := repository.NewMemoryPlatformRepository(repository.PlatformFixtures()...)
	preferencesRepo := repository.NewMemoryPreferencesRepository(repository.DefaultPreferences())
	userRepo := repository.NewMemoryUserRepository()

	var asynqClient *asynq.Client
	if cfg.RedisURI != "" {
		redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
		asynqClient = asynq.NewClient(redisConn)
		defer asynqClient.Close()
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	schedulerService := service.NewSchedulerService(postRepo, scheduleRepo)
	calendarService := service.NewCalendarService(postRepo, scheduleRepo)
	postService := service.NewPostService(postRepo)
	platformService := service.NewPlatformService(platformRepo)
	preferencesService := service.NewPreferencesService(preferencesRepo)
	analyticsService := service.NewAnalyticsService()
	aiService := service.NewAIService()
	authService := service.NewAuthService(*cfg, userRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"environment": cfg.Environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/api/auth/register", auth.Register)
	app.Post("/api/auth/login", auth.Login)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	api.Get("/auth/me", auth.Me)

	post := handlers.NewPostHandler(postService, schedulerService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts", post.CreatePost)
	api.Get("/posts/:id", post.GetPost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Delete("/posts/:id", post.DeletePost)
	api.Post("/posts/:id/publish", post.PublishPost)

	schedule := handlers.NewScheduleHandler(scheduleRepo, schedulerService, asynqClient)
	api.Get("/schedules", schedule.ListSchedules)
	api.Post("/schedules", schedule.CreateSchedule)
	api.Get("/schedules/:id", schedule.GetSchedule)
	api.Put("/schedules/:id", schedule.UpdateSchedule)
	api.Delete("/schedules/:id", schedule.DeleteSchedule)

	calendar := handlers.NewCalendarHandler(calendarService)
	api.Get("/calendar/month", calendar.Month)
	api.Get("/calendar/day", calendar.Day)
	api.Get("/calendar/upcoming", calendar.Upcoming)

	platform := handlers.NewPlatformHandler(platformService)
	api.Get("/platforms", platform.ListPlatforms)
	api.Post("/platforms/connect", platform.ConnectPlatform)
	api.Post("/platforms/disconnect", platform.DisconnectPlatform)

	preferences := handlers.NewPreferencesHandler(preferencesService)
	api.Get("/preferences", preferences.GetPreferences)
	api.Post("/preferences", preferences.UpdatePreferences)
	api.Post("/preferences/theme", preferences.UpdateTheme)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analytics.GetAnalytics)

	ai := handlers.NewAIHandler(aiService)
	api.Post("/ai/generate", ai.Generate)

	// cron jobs
	publishDueJob := job.NewPublishDueJob(scheduleRepo, schedulerService)

	c := cron.New()
	c.AddFunc("@every 00h01m00s", publishDueJob.PublishDue)
	c.Start()

	if cfg.RedisURI != "" {
		go func() {
			server := asynq.NewServer(asynq.RedisClientOpt{Addr: cfg.RedisURI}, asynq.Config{
				Concurrency: 10,
			})

			mux := asynq.NewServeMux()
			queueW := queue.NewQueue(scheduleRepo, schedulerService)
			mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

			log.Println("Starting the Asynq server...")
			if err := server.Run(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if db != nil {
		closeDB(db)
	}
	log.Println("Server shutdown complete.")
}
