package routes

import (
	"nourishlab/internal/controllers"
	"nourishlab/internal/middleware"
	"nourishlab/internal/repository"

	"github.com/gin-gonic/gin"
)

// RegisterNutritionistRoutes wires the staff-side surface. Every route is
// behind both authentication and the nutritionist role check.
func RegisterNutritionistRoutes(
	router *gin.Engine,
	profileRepo repository.ProfileRepository,
	nutritionistController *controllers.NutritionistController,
	mealPlanController *controllers.MealPlanController,
	templateController *controllers.MealPlanTemplateController,
	recipeController *controllers.RecipeController,
	noteController *controllers.NoteController,
) {
	nutritionistRoutes := router.Group("/nutritionist")
	nutritionistRoutes.Use(middleware.AuthMiddleware(), middleware.NutritionistRequired(profileRepo))
	{
		nutritionistRoutes.GET("/patients", nutritionistController.ListPatients)
		nutritionistRoutes.GET("/patients/pending", nutritionistController.ListPendingPatients)
		nutritionistRoutes.POST("/patients/promote", nutritionistController.PromotePatients)
		nutritionistRoutes.GET("/patients/:id", nutritionistController.PatientDetail)
		nutritionistRoutes.POST("/patients/:id/approve", nutritionistController.ApprovePatient)
		nutritionistRoutes.GET("/patients/:id/progress", nutritionistController.PatientProgress)

		nutritionistRoutes.GET("/dashboard/stats", nutritionistController.DashboardStats)
		nutritionistRoutes.GET("/recent-activity", nutritionistController.RecentActivity)

		nutritionistRoutes.GET("/meal-plans", mealPlanController.ListAllMealPlans)
		nutritionistRoutes.POST("/meal-plans", mealPlanController.CreateMealPlanForPatient)
		nutritionistRoutes.PUT("/meal-plans/:id", mealPlanController.UpdateMealPlan)
		nutritionistRoutes.DELETE("/meal-plans/:id", mealPlanController.DeleteMealPlan)

		nutritionistRoutes.GET("/meal-plan-templates", templateController.ListTemplates)
		nutritionistRoutes.POST("/meal-plan-templates", templateController.CreateTemplate)
		nutritionistRoutes.GET("/meal-plan-templates/:id", templateController.GetTemplate)
		nutritionistRoutes.PUT("/meal-plan-templates/:id", templateController.UpdateTemplate)
		nutritionistRoutes.DELETE("/meal-plan-templates/:id", templateController.DeleteTemplate)

		nutritionistRoutes.POST("/recipes", recipeController.CreateRecipe)
		nutritionistRoutes.PUT("/recipes/:id", recipeController.UpdateRecipe)
		nutritionistRoutes.DELETE("/recipes/:id", recipeController.DeleteRecipe)

		nutritionistRoutes.GET("/notes", noteController.ListNotes)
		nutritionistRoutes.POST("/notes", noteController.CreateNote)
		nutritionistRoutes.PUT("/notes/:id", noteController.UpdateNote)
		nutritionistRoutes.DELETE("/notes/:id", noteController.DeleteNote)
	}
}
