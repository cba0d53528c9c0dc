package routes

import (
	"mealbridge-backend/domain"
	"mealbridge-backend/internal/api/handlers"
	"mealbridge-backend/internal/middleware"
	"mealbridge-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	FoodHandler  handlers.FoodHandler
	ClaimHandler handlers.ClaimHandler
	EventHandler handlers.EventHandler
	Middleware   middleware.Middleware
	JWTService   jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Foods()
	c.Claims()
	c.Events()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/api/users")
	{
		users.Post("/register", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Foods() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	foods := c.App.Group("/api/foods")

	foods.Post("", auth, c.Middleware.RoleMiddleware(domain.RoleRestaurant), c.FoodHandler.AddFood)
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/my-foods", auth, c.FoodHandler.GetMyFoods)
	foods.Put("/feedback/:id", auth, c.FoodHandler.SubmitFeedback)
	foods.Get("/:id", c.FoodHandler.GetFoodDetails)
	foods.Put("/:id/claim", auth, c.Middleware.RoleMiddleware(domain.RoleNGO), c.FoodHandler.ClaimFood)
	foods.Put("/:id", auth, c.FoodHandler.UpdateFood)
	foods.Delete("/:id", auth, c.FoodHandler.DeleteFood)
}

func (c *Config) Claims() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	claims := c.App.Group("/api/claims", auth)

	claims.Post("", c.ClaimHandler.CreateClaim)
	claims.Get("/my-claims", c.ClaimHandler.GetMyClaims)
	claims.Get("", c.Middleware.RoleMiddleware(domain.RoleNGO, domain.RoleAdmin), c.ClaimHandler.GetAllClaims)
	claims.Get("/:id", c.ClaimHandler.GetClaimDetails)
	claims.Delete("/:claimId", c.ClaimHandler.GiveUp)
}

func (c *Config) Events() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	events := c.App.Group("/api/events")

	events.Post("", auth, c.EventHandler.CreateEvent)
	events.Get("", c.EventHandler.GetEvents)
	events.Get("/:id", c.EventHandler.GetEventDetails)
	events.Delete("/:id", auth, c.EventHandler.DeleteEvent)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
