package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/hostelhub/hostelhub-server/internal/config"
	"github.com/hostelhub/hostelhub-server/internal/db"
	"github.com/hostelhub/hostelhub-server/internal/handlers"
	"github.com/hostelhub/hostelhub-server/internal/middleware"
	"github.com/hostelhub/hostelhub-server/internal/services"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// Connect to MongoDB; the client is owned here and closed on shutdown.
	client, database := db.ConnectMongoDB(cfg.MongoURI, cfg.DBName)
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("MongoDB disconnect failed: %v", err)
		}
	}()

	authService := services.NewAuthService(cfg.TokenSecret, cfg.Production)
	userService := services.NewUserService(database)
	mealService := services.NewMealService(database)
	bookingService := services.NewBookingService(database)
	paymentService := services.NewPaymentService(cfg.StripeSecret)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	mealHandler := handlers.NewMealHandler(mealService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	verifyToken := middleware.Protected(cfg.TokenSecret)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from HostelHub Server..")
	})

	// Auth routes
	app.Post("/jwt", authHandler.CreateToken)
	app.Get("/logout", authHandler.Logout)

	// User routes
	app.Put("/users/:email", userHandler.Save)
	app.Get("/users/:email", userHandler.Get)
	app.Get("/users", verifyToken, userHandler.List)
	app.Put("/users/update/:email", verifyToken, userHandler.UpdateRole)

	// Meal routes. The status route ships ungated, matching the frontend's
	// current use of it from public pages.
	app.Get("/mealsCategory", mealHandler.List)
	app.Get("/mealsCategory/meal/:id", mealHandler.Get)
	app.Post("/mealsCategory", verifyToken, mealHandler.Create)
	app.Patch("/mealsCategory/review/:id", verifyToken, mealHandler.AddReview)
	app.Patch("/mealsCategory/status/:id", mealHandler.UpdateStatus)
	app.Get("/upComingMeals", mealHandler.ListUpcoming)
	app.Post("/upComingMeals", verifyToken, mealHandler.CreateUpcoming)

	// Payment route
	app.Post("/create-payment-intent", verifyToken, paymentHandler.CreateIntent)

	// Booking and request routes
	app.Post("/reqInfo", verifyToken, bookingHandler.CreateRequestInfo)
	app.Get("/reqInfo", bookingHandler.ListRequestInfo)
	app.Post("/bookings", verifyToken, bookingHandler.CreateBooking)
	app.Get("/bookings", bookingHandler.ListBookings)

	log.Fatal(app.Listen(":" + cfg.Port))
}
