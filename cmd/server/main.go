package main

import (
	"context"
	"log"

	"theatre-booking-api/config"
	"theatre-booking-api/internal/cache"
	"theatre-booking-api/internal/database"
	"theatre-booking-api/internal/handler"
	"theatre-booking-api/internal/middleware"
	"theatre-booking-api/internal/queue"
	"theatre-booking-api/internal/repository"
	"theatre-booking-api/internal/service"
	"theatre-booking-api/internal/worker"
	"theatre-booking-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	catalogCache := cache.NewCatalogCache(rdb)

	bookingQueue, err := queue.NewRedisStreamBookingQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize booking queue: %v", err)
	}

	actorRepo := repository.NewActorRepository(pool)
	genreRepo := repository.NewGenreRepository(pool)
	hallRepo := repository.NewTheatreHallRepository(pool)
	playRepo := repository.NewPlayRepository(pool)
	performanceRepo := repository.NewPerformanceRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	bookingEventRepo := repository.NewBookingEventRepository(pool)

	actorService := service.NewActorService(actorRepo, catalogCache)
	genreService := service.NewGenreService(genreRepo, catalogCache)
	hallService := service.NewTheatreHallService(hallRepo, catalogCache)
	playService := service.NewPlayService(pool, playRepo, catalogCache)
	performanceService := service.NewPerformanceService(performanceRepo, playRepo, hallRepo)
	reservationService := service.NewReservationService(pool, reservationRepo, performanceRepo, bookingQueue)
	authService := service.NewAuthService(userRepo, cfg.Auth)

	ctx := context.Background()
	bookingWorker := worker.NewBookingWorker(bookingEventRepo, bookingQueue)
	if err := bookingWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start booking worker: %v", err)
	}

	auth := middleware.JWTAuth(cfg.Auth.JWTSecret)
	staff := middleware.RequireStaff()

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewAuthHandler(authService).RegisterRoutes(router, auth)
	handler.NewActorHandler(actorService).RegisterRoutes(router, auth, staff)
	handler.NewGenreHandler(genreService).RegisterRoutes(router, auth, staff)
	handler.NewTheatreHallHandler(hallService).RegisterRoutes(router, auth, staff)
	handler.NewPlayHandler(playService).RegisterRoutes(router, auth, staff)
	handler.NewPerformanceHandler(performanceService).RegisterRoutes(router, auth, staff)
	handler.NewReservationHandler(reservationService).RegisterRoutes(router, auth)

	logger.WithComponent("server").Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
