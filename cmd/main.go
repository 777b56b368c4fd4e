package main

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/seareny/tastebook/internal/db"
	"github.com/seareny/tastebook/internal/handlers"
	"github.com/seareny/tastebook/internal/httperr"
	"github.com/seareny/tastebook/internal/middleware"
	"github.com/seareny/tastebook/internal/services"
	"github.com/seareny/tastebook/internal/session"
	"github.com/seareny/tastebook/internal/storage"
	"github.com/seareny/tastebook/web"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	// Initialize Fiber with the embedded view engine
	app := fiber.New(fiber.Config{
		Views:        web.Engine(),
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Get MongoDB settings from environment
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/tastebook" // Default fallback
	}
	dbName := os.Getenv("MONGO_DBNAME")
	if dbName == "" {
		dbName = "tastebook" // Default fallback
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	// Connect to MongoDB
	database := db.ConnectMongoDB(mongoURI, dbName)
	db.EnsureIndexes(database)

	// Initialize MinIO for recipe images
	images := storage.InitMinio()

	sessions := session.NewManager(secret)
	userService := services.NewUserService(database)
	recipeService := services.NewRecipeService(database)
	authHandler := handlers.NewAuthHandler(userService, sessions)
	recipeHandler := handlers.NewRecipeHandler(recipeService, sessions, images)

	requireUser := middleware.RequireUser(sessions)
	requireGuest := middleware.RequireGuest(sessions)

	// Browse and search
	app.Get("/", recipeHandler.Home)
	app.Get("/browse-recipes", recipeHandler.Browse)
	app.Get("/search_recipe", recipeHandler.Search)
	app.Post("/search_recipe", recipeHandler.Search)
	app.Get("/view-recipe/:id", recipeHandler.View)

	// Accounts
	app.Get("/register", requireGuest, authHandler.RegisterPage)
	app.Post("/register", requireGuest, authHandler.Register)
	app.Get("/login", requireGuest, authHandler.LoginPage)
	app.Post("/login", requireGuest, authHandler.Login)
	app.Get("/logout", requireUser, authHandler.Logout)
	app.Get("/delete_account", requireUser, authHandler.DeleteAccount)

	// Recipe management
	app.Get("/my_recipes", requireUser, recipeHandler.MyRecipes)
	app.Post("/my_recipes", requireUser, recipeHandler.MyRecipes)
	app.Get("/create-recipe", requireUser, recipeHandler.CreatePage)
	app.Post("/create-recipe", requireUser, recipeHandler.Create)
	app.Get("/edit_recipe/:id", requireUser, recipeHandler.EditPage)
	app.Post("/edit_recipe/:id", requireUser, recipeHandler.Edit)
	app.Get("/delete_recipe/:id", requireUser, recipeHandler.Delete)
	app.Post("/delete_recipe/:id", requireUser, recipeHandler.Delete)
	app.Post("/upload-image", requireUser, recipeHandler.UploadImage)

	// Anything unmatched gets the 404 page
	app.Use(func(c *fiber.Ctx) error {
		return httperr.ErrNotFound
	})

	// Get bind address from environment
	addr := os.Getenv("IP")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default port
	}

	// Start server
	log.Fatal(app.Listen(addr + ":" + port))
}

// errorHandler renders the error page matching the failure; everything
// outside the taxonomy is a 500 with the detail kept server-side.
func errorHandler(c *fiber.Ctx, err error) error {
	code := httperr.StatusCode(err)
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code == fiber.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	if renderErr := c.Status(code).Render(httperr.Page(code), fiber.Map{}); renderErr != nil {
		return c.SendStatus(code)
	}
	return nil
}
