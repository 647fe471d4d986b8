package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mhrakib/aircnc-api/internal/auth"
	"github.com/mhrakib/aircnc-api/internal/config"
	"github.com/mhrakib/aircnc-api/internal/handlers"
	"github.com/mhrakib/aircnc-api/internal/logger"
	"github.com/mhrakib/aircnc-api/internal/middleware"
	"github.com/mhrakib/aircnc-api/internal/services"
	"github.com/mhrakib/aircnc-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	config.Load()
	logger.Init()
	defer logger.Get().Sync()

	cfg := config.App

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Get().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)
	logger.Get().Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	// --- Payment Gateway ---
	stripe.Key = cfg.PaymentSecretKey

	// --- Services and Handlers ---
	tokens := auth.NewTokenService(cfg.AccessTokenSecret)
	mailer := services.NewSMTPMailer(cfg)
	h := handlers.NewHandler(
		store.NewUserStore(db),
		store.NewRoomStore(db),
		store.NewBookingStore(db),
		tokens,
		mailer,
		services.StripeGateway{},
	)

	// --- Gin Router ---
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())

	verifyJWT := middleware.VerifyJWT(tokens)

	// --- Routes ---
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "AirCNC Server is running..")
	})

	r.POST("/jwt", h.IssueToken)

	r.PUT("/users/:email", h.SaveUser)
	r.GET("/users", h.GetUsers)
	r.GET("/users/role/:email", h.GetUserRole)
	r.PATCH("/users/:email", h.UpdateUserRole)

	r.GET("/rooms", h.GetRooms)
	r.GET("/rooms/:id", h.GetRoom)
	r.POST("/rooms", verifyJWT, h.CreateRoom)
	r.PUT("/rooms/:id", h.UpdateRoom)
	r.PATCH("/rooms/status/:id", h.UpdateRoomStatus)
	r.GET("/rooms/host/:email", h.GetHostRooms)
	r.DELETE("/rooms/host/:id", verifyJWT, h.DeleteRoom)
	r.GET("/rooms/guest/:email", h.GetGuestRooms)

	r.GET("/bookings/guest/:email", verifyJWT, h.GetGuestBookings)
	r.GET("/bookings/host/:email", verifyJWT, h.GetHostBookings)
	r.POST("/bookings", verifyJWT, h.CreateBooking)
	r.DELETE("/bookings/:id", verifyJWT, h.DeleteBooking)

	r.POST("/create-payment-intent", verifyJWT, h.CreatePaymentIntent)

	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	logger.Get().Info("Starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Get().Fatal("Server stopped", zap.Error(err))
	}
}
