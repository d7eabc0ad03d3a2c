package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"brightway/internal/config"
	"brightway/internal/database"
	"brightway/internal/email"
	"brightway/internal/middleware"
	"brightway/internal/modules/admin"
	"brightway/internal/modules/booking"
	"brightway/internal/modules/careers"
	"brightway/internal/modules/contact"
	"brightway/internal/observability/notify"
	"brightway/internal/pipeline"
	"brightway/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db, cfg.BookingTable, cfg.ContactTable); err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db, cfg.BookingTable)
	contactRepo := repository.NewContactRepository(db, cfg.ContactTable)
	careerRepo := repository.NewCareerRepository(db)

	mailer := email.New(cfg.Email)
	events := notify.NewLogSink(logger)

	runner := pipeline.New(mailer, pipeline.Options{
		Logger:              logger,
		Events:              events,
		AbortOnPersistError: cfg.FailOnPersistError,
		EffectTimeout:       cfg.EffectTimeout,
	})

	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, runner, cfg.BusinessEmail))
	contactHandler := contact.NewHandler(contact.NewService(contactRepo, runner, cfg.BusinessEmail))
	careersHandler := careers.NewHandler(careers.NewService(careerRepo, runner, cfg.BusinessEmail))
	adminHandler := admin.NewHandler(bookingRepo, contactRepo, careerRepo)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		bookingHandler.RegisterRoutes(v1)
		contactHandler.RegisterRoutes(v1)
		careersHandler.RegisterRoutes(v1)

		adm := v1.Group("/admin")
		adm.Use(middleware.AdminTokenAuth(cfg.AdminToken))
		adminHandler.RegisterRoutes(adm)
	}

	logger.Info("starting api", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
