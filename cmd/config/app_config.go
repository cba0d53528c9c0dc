package config

import (
	"mealbridge-backend/internal/api/handlers"
	"mealbridge-backend/internal/api/routes"
	"mealbridge-backend/internal/middleware"
	"mealbridge-backend/internal/utils"
	"mealbridge-backend/pkg/claim"
	"mealbridge-backend/pkg/event"
	"mealbridge-backend/pkg/food"
	"mealbridge-backend/pkg/geocode"
	"mealbridge-backend/pkg/jwt"
	"mealbridge-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	claimRepository := claim.NewClaimRepository(db, foodRepository)
	eventRepository := event.NewEventRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	geocodeService := geocode.NewGeocodeService(utils.GetConfig("GEOCODE_BASE_URL"))
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, geocodeService)
	claimService := claim.NewClaimService(claimRepository, foodRepository)
	eventService := event.NewEventService(eventRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, claimService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	eventHandler := handlers.NewEventHandler(eventService, validator)

	// routes
	routesConfig := routes.Config{
		App:          app,
		UserHandler:  userHandler,
		FoodHandler:  foodHandler,
		ClaimHandler: claimHandler,
		EventHandler: eventHandler,
		Middleware:   middlewares,
		JWTService:   jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
