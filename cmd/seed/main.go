package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"nourishlab/database"
	"nourishlab/internal/auth"
	"nourishlab/internal/models"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	withDemo := flag.Bool("demo", false, "Also create a demo patient with sample data")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	nutritionist, err := seedNutritionist()
	if err != nil {
		log.Fatalf("Failed to seed nutritionist: %v", err)
	}

	if err := seedRecipes(); err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}

	if err := seedTemplates(); err != nil {
		log.Fatalf("Failed to seed meal plan templates: %v", err)
	}

	if *withDemo {
		if err := seedDemoPatient(nutritionist); err != nil {
			log.Fatalf("Failed to seed demo patient: %v", err)
		}
	}

	log.Println("Seeding completed")
}

// seedNutritionist creates the default nutritionist account from environment
// variables. Existing accounts are left untouched.
func seedNutritionist() (*models.User, error) {
	username := os.Getenv("NUTRITIONIST_USERNAME")
	if username == "" {
		username = "nutritionist"
	}
	email := os.Getenv("NUTRITIONIST_EMAIL")
	if email == "" {
		email = "nutritionist@nourishlab.local"
	}
	password := os.Getenv("NUTRITIONIST_PASSWORD")
	if password == "" {
		return nil, errors.New("NUTRITIONIST_PASSWORD is required")
	}

	var existing models.User
	err := database.DB.Preload("Profile").Where("username = ?", username).First(&existing).Error
	if err == nil {
		log.Printf("Nutritionist %q already exists, skipping", username)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	profile := models.Profile{
		IsApproved:     true,
		IsNutritionist: true,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Created nutritionist %q", username)
	user.Profile = &profile
	return &user, nil
}

func seedRecipes() error {
	recipes := []models.Recipe{
		{
			Title:           "Berry Smoothie Bowl",
			PrepTimeMinutes: 5,
			Servings:        1,
			Calories:        320,
			ProteinG:        14,
			CarbsG:          52,
			FatG:            8,
			Ingredients:     "Frozen mixed berries\nBanana\nGreek yogurt\nGranola\nChia seeds",
			Instructions:    "Blend berries, banana and yogurt until thick. Top with granola and chia seeds.",
			Tags:            "Breakfast, Quick",
		},
		{
			Title:           "Grilled Chicken Salad",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 15,
			Servings:        2,
			Calories:        410,
			ProteinG:        38,
			CarbsG:          12,
			FatG:            22,
			Ingredients:     "Chicken breast\nMixed greens\nCherry tomatoes\nCucumber\nOlive oil\nLemon",
			Instructions:    "Grill the chicken, slice, and serve over dressed greens.",
			Tags:            "Lunch, High Protein",
		},
		{
			Title:           "Lentil Soup",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 25,
			Servings:        4,
			Calories:        280,
			ProteinG:        18,
			CarbsG:          45,
			FatG:            4,
			Ingredients:     "Red lentils\nCarrot\nOnion\nGarlic\nCumin\nVegetable stock",
			Instructions:    "Sweat the vegetables, add lentils and stock, simmer 25 minutes.",
			Tags:            "Dinner, Vegan",
		},
	}

	for i := range recipes {
		var count int64
		if err := database.DB.Model(&models.Recipe{}).Where("title = ?", recipes[i].Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&recipes[i]).Error; err != nil {
			return err
		}
		log.Printf("Created recipe %q", recipes[i].Title)
	}
	return nil
}

func seedTemplates() error {
	var count int64
	if err := database.DB.Model(&models.MealPlanTemplate{}).Where("name = ?", "Balanced Starter Week").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var smoothie, salad, soup models.Recipe
	if err := database.DB.Where("title = ?", "Berry Smoothie Bowl").First(&smoothie).Error; err != nil {
		return err
	}
	if err := database.DB.Where("title = ?", "Grilled Chicken Salad").First(&salad).Error; err != nil {
		return err
	}
	if err := database.DB.Where("title = ?", "Lentil Soup").First(&soup).Error; err != nil {
		return err
	}

	plan := models.StructuredPlan{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		plan[day] = map[string]uint{
			"breakfast": smoothie.ID,
			"lunch":     salad.ID,
			"dinner":    soup.ID,
		}
	}

	template := models.MealPlanTemplate{
		Name:           "Balanced Starter Week",
		Description:    "A simple first week for new patients.",
		Content:        "<p>Three balanced meals a day to establish a routine.</p>",
		StructuredPlan: plan,
	}
	if err := database.DB.Create(&template).Error; err != nil {
		return err
	}
	log.Printf("Created template %q", template.Name)
	return nil
}

func seedDemoPatient(nutritionist *models.User) error {
	var count int64
	if err := database.DB.Model(&models.User{}).Where("username = ?", "demo-patient").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Demo patient already exists, skipping")
		return nil
	}

	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}

	age := 34
	height := 172.0
	weight := 82.5
	user := models.User{
		Username: "demo-patient",
		Email:    "demo@nourishlab.local",
		Password: hash,
	}
	profile := models.Profile{
		Age:            &age,
		Height:         &height,
		Weight:         &weight,
		Goals:          "Lose 5kg before summer",
		IsApproved:     true,
		NutritionistID: &nutritionist.ID,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		currentWeight := 81.8
		update := models.WeeklyUpdate{
			UserID:        user.ID,
			Date:          time.Now().AddDate(0, 0, -8),
			CurrentWeight: currentWeight,
			Notes:         "First week went well.",
		}
		if err := tx.Create(&update).Error; err != nil {
			return err
		}

		foodLog := models.FoodLog{
			UserID:   user.ID,
			Date:     time.Now().AddDate(0, 0, -1),
			MealType: models.MealTypeBreakfast,
			Content:  "Berry smoothie bowl with extra chia.",
		}
		return tx.Create(&foodLog).Error
	})
	if err != nil {
		return err
	}

	log.Println("Created demo patient with sample data")
	return nil
}
