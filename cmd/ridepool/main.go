package main

import (
	"flag"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/config"
	"github.com/ridepool/ridepool/internal/pkg/database"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	nsqpkg "github.com/ridepool/ridepool/internal/pkg/nsq"
	"github.com/ridepool/ridepool/internal/pkg/server"
	bookingsGateway "github.com/ridepool/ridepool/services/bookings/gateway"
	bookingsHandler "github.com/ridepool/ridepool/services/bookings/handler"
	bookingsHTTP "github.com/ridepool/ridepool/services/bookings/handler/http"
	bookingsRepository "github.com/ridepool/ridepool/services/bookings/repository"
	bookingsUsecase "github.com/ridepool/ridepool/services/bookings/usecase"
	messagingHandler "github.com/ridepool/ridepool/services/messaging/handler"
	messagingHTTP "github.com/ridepool/ridepool/services/messaging/handler/http"
	messagingNSQ "github.com/ridepool/ridepool/services/messaging/handler/nsq"
	messagingRepository "github.com/ridepool/ridepool/services/messaging/repository"
	messagingUsecase "github.com/ridepool/ridepool/services/messaging/usecase"
	searchHandler "github.com/ridepool/ridepool/services/search/handler"
	searchHTTP "github.com/ridepool/ridepool/services/search/handler/http"
	searchRepository "github.com/ridepool/ridepool/services/search/repository"
	searchUsecase "github.com/ridepool/ridepool/services/search/usecase"
	tripsHandler "github.com/ridepool/ridepool/services/trips/handler"
	tripsHTTP "github.com/ridepool/ridepool/services/trips/handler/http"
	tripsRepository "github.com/ridepool/ridepool/services/trips/repository"
	tripsUsecase "github.com/ridepool/ridepool/services/trips/usecase"
	usersHandler "github.com/ridepool/ridepool/services/users/handler"
	usersHTTP "github.com/ridepool/ridepool/services/users/handler/http"
	usersRepository "github.com/ridepool/ridepool/services/users/repository"
	usersUsecase "github.com/ridepool/ridepool/services/users/usecase"
)

func main() {
	configPath := flag.String("config", "./config/ridepool.yaml", "path to the configuration file")
	flag.Parse()

	cfg := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	db := postgresClient.GetDB()

	// Repositories
	userRepo := usersRepository.NewUserRepository(cfg, db)
	tripRepo := tripsRepository.NewTripRepository(cfg, db, redisClient)
	searchRepo := searchRepository.NewSearchRepository(cfg, db, redisClient)
	bookingRepo := bookingsRepository.NewBookingRepository(cfg, db, redisClient)
	messagingRepo := messagingRepository.NewMessagingRepository(cfg, db)

	// Gateways
	bookingGW := bookingsGateway.NewBookingGW(producer)

	// Use cases
	userUC := usersUsecase.NewUserUC(cfg, userRepo)
	tripUC := tripsUsecase.NewTripUC(cfg, tripRepo)
	searchUC := searchUsecase.NewSearchUC(cfg, searchRepo)
	bookingUC := bookingsUsecase.NewBookingUC(cfg, bookingRepo, bookingGW)
	messagingUC := messagingUsecase.NewMessagingUC(cfg, messagingRepo)

	// NSQ consumers
	if cfg.NSQ.ConsumerEnable {
		bookingConsumer, err := messagingNSQ.StartBookingConsumer(cfg, messagingUC)
		if err != nil {
			zapLogger.Fatal("Failed to start booking consumer", logger.Err(err))
		}
		defer bookingConsumer.Stop()
	}

	// HTTP handlers
	userHandlers := usersHandler.NewHandler(
		usersHTTP.NewAuthHandler(userUC),
		usersHTTP.NewUserHandler(userUC),
		cfg,
	)
	tripHandlers := tripsHandler.NewHandler(tripsHTTP.NewTripHandler(tripUC), cfg)
	searchHandlers := searchHandler.NewHandler(searchHTTP.NewSearchHandler(searchUC), cfg)
	bookingHandlers := bookingsHandler.NewHandler(bookingsHTTP.NewBookingHandler(bookingUC), cfg)
	messagingHandlers := messagingHandler.NewHandler(messagingHTTP.NewMessagingHandler(messagingUC), cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{
			"status":  "ok",
			"app":     cfg.App.Name,
			"version": cfg.App.Version,
		})
	})

	userHandlers.RegisterRoutes(e)
	tripHandlers.RegisterRoutes(e)
	searchHandlers.RegisterRoutes(e)
	bookingHandlers.RegisterRoutes(e)
	messagingHandlers.RegisterRoutes(e)

	srv := server.NewGracefulServer(
		e,
		zapLogger,
		cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", logger.Err(err))
	}
}
