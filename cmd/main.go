package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"nourishlab/database"
	"nourishlab/docs"
	"nourishlab/internal/controllers"
	"nourishlab/internal/repository"
	"nourishlab/internal/storage"
	"nourishlab/routes"
)

// @title NourishLab API
// @description Backend for the NourishLab nutrition coaching platform.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "NourishLab API"
	docs.SwaggerInfo.Description = "Backend for the NourishLab nutrition coaching platform."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// S3-backed storage for weekly update photos, food log images and lab
	// result files.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	uploader, err := storage.NewS3Uploader(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewProfileRepository(database.DB)
	mealPlanRepo := repository.NewMealPlanRepository(database.DB)
	templateRepo := repository.NewMealPlanTemplateRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	weeklyUpdateRepo := repository.NewWeeklyUpdateRepository(database.DB)
	foodLogRepo := repository.NewFoodLogRepository(database.DB)
	messageRepo := repository.NewMessageRepository(database.DB)
	labResultRepo := repository.NewLabResultRepository(database.DB)
	noteRepo := repository.NewNutritionistNoteRepository(database.DB)

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	oauthController := controllers.NewOauthController(userRepo)
	profileController := controllers.NewProfileController(userRepo, profileRepo)
	mealPlanController := controllers.NewMealPlanController(mealPlanRepo, templateRepo, userRepo)
	templateController := controllers.NewMealPlanTemplateController(templateRepo)
	recipeController := controllers.NewRecipeController(recipeRepo)
	weeklyUpdateController := controllers.NewWeeklyUpdateController(weeklyUpdateRepo, uploader)
	foodLogController := controllers.NewFoodLogController(foodLogRepo, uploader)
	messageController := controllers.NewMessageController(messageRepo, userRepo)
	labResultController := controllers.NewLabResultController(labResultRepo, uploader)
	socialController := controllers.NewSocialController(weeklyUpdateRepo, userRepo)
	noteController := controllers.NewNoteController(noteRepo, userRepo)
	nutritionistController := controllers.NewNutritionistController(
		userRepo,
		profileRepo,
		mealPlanRepo,
		weeklyUpdateRepo,
		foodLogRepo,
		labResultRepo,
	)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "NourishLab API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterOauthRoutes(router, oauthController)
	routes.RegisterProfileRoutes(router, profileController)
	routes.RegisterMealPlanRoutes(router, mealPlanController)
	routes.RegisterWeeklyUpdateRoutes(router, weeklyUpdateController)
	routes.RegisterFoodLogRoutes(router, foodLogController)
	routes.RegisterLabResultRoutes(router, labResultController)
	routes.RegisterMessageRoutes(router, messageController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterSocialRoutes(router, socialController)
	routes.RegisterNutritionistRoutes(
		router,
		profileRepo,
		nutritionistController,
		mealPlanController,
		templateController,
		recipeController,
		noteController,
	)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Database Health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed to start: %v", err)
	}
}
