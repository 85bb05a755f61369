package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

// NutritionistController groups the staff-side endpoints: patient roster and
// approval, per-patient detail and progress, dashboard stats and the recent
// activity feed.
type NutritionistController struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	planRepo    repository.MealPlanRepository
	updateRepo  repository.WeeklyUpdateRepository
	logRepo     repository.FoodLogRepository
	labRepo     repository.LabResultRepository
}

func NewNutritionistController(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	planRepo repository.MealPlanRepository,
	updateRepo repository.WeeklyUpdateRepository,
	logRepo repository.FoodLogRepository,
	labRepo repository.LabResultRepository,
) *NutritionistController {
	return &NutritionistController{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		planRepo:    planRepo,
		updateRepo:  updateRepo,
		logRepo:     logRepo,
		labRepo:     labRepo,
	}
}

const (
	activityWindow    = 7 * 24 * time.Hour
	activityLimit     = 20
	activityPerSource = 10
	detailUpdateLimit = 10
	detailLogLimit    = 20
)

// ActivityEntry is one row of the recent activity feed, a common shape over
// food logs, weekly updates and lab results.
type ActivityEntry struct {
	Type      string    `json:"type" example:"weekly_update"`
	Patient   string    `json:"patient" example:"janedoe"`
	PatientID uint      `json:"patient_id" example:"1"`
	Content   string    `json:"content" example:"Weight: 74.5kg"`
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"`
	Date      string    `json:"date" example:"2023-01-01"`
}

// ListPatients godoc
// @Summary List approved patients
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Patients retrieved successfully"
// @Router /nutritionist/patients [get]
func (nc *NutritionistController) ListPatients(c *gin.Context) {
	patients, err := nc.userRepo.ListPatients(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patients retrieved successfully",
		"data":    patients,
	})
}

// ListPendingPatients godoc
// @Summary List patients awaiting approval, newest first
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Patients retrieved successfully"
// @Router /nutritionist/patients/pending [get]
func (nc *NutritionistController) ListPendingPatients(c *gin.Context) {
	patients, err := nc.userRepo.ListPatients(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patients retrieved successfully",
		"data":    patients,
	})
}

// ApprovePatient godoc
// @Summary Approve a pending patient
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Patient approved successfully"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /nutritionist/patients/{id}/approve [post]
func (nc *NutritionistController) ApprovePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := nc.profileRepo.Approve(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient approved successfully",
		"data":    nil,
	})
}

// PatientDetail godoc
// @Summary Full view of one patient
// @Description Profile plus meal plans, the last 10 weekly updates, the last
// @Description 20 food logs and all lab results.
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Patient retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /nutritionist/patients/{id} [get]
func (nc *NutritionistController) PatientDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := nc.userRepo.FindPatientByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	plans, err := nc.planRepo.ListByUser(patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patient data",
			"error":   err.Error(),
		})
		return
	}

	updates, err := nc.updateRepo.ListByUser(patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patient data",
			"error":   err.Error(),
		})
		return
	}
	if len(updates) > detailUpdateLimit {
		updates = updates[:detailUpdateLimit]
	}

	logs, err := nc.logRepo.ListByUserLimited(patient.ID, detailLogLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patient data",
			"error":   err.Error(),
		})
		return
	}

	labs, err := nc.labRepo.ListByUser(patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patient data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient retrieved successfully",
		"data": gin.H{
			"user":           patient,
			"meal_plans":     plans,
			"weekly_updates": updates,
			"food_logs":      logs,
			"lab_results":    labs,
		},
	})
}

// PatientProgress godoc
// @Summary Per-patient chart data
// @Description Weight, body measurements, energy and compliance series over
// @Description every weekly update, ascending by date.
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Progress retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /nutritionist/patients/{id}/progress [get]
func (nc *NutritionistController) PatientProgress(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := nc.userRepo.FindPatientByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	updates, err := nc.updateRepo.ListByUserAsc(patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve progress",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Progress retrieved successfully",
		"data":    buildProgressData(updates),
	})
}

type progressPoint struct {
	Date  string  `json:"date" example:"2023-01-01"`
	Value float64 `json:"value" example:"74.5"`
}

func buildProgressData(updates []models.WeeklyUpdate) gin.H {
	weight := []progressPoint{}
	measurements := map[string][]progressPoint{
		"waist": {}, "hips": {}, "chest": {}, "arm": {}, "thigh": {},
	}
	energy := []progressPoint{}
	compliance := []progressPoint{}

	appendOptional := func(series []progressPoint, date string, value *float64) []progressPoint {
		if value == nil {
			return series
		}
		return append(series, progressPoint{Date: date, Value: *value})
	}

	for _, update := range updates {
		date := update.Date.Format(dateLayout)
		weight = append(weight, progressPoint{Date: date, Value: update.CurrentWeight})
		measurements["waist"] = appendOptional(measurements["waist"], date, update.WaistCm)
		measurements["hips"] = appendOptional(measurements["hips"], date, update.HipsCm)
		measurements["chest"] = appendOptional(measurements["chest"], date, update.ChestCm)
		measurements["arm"] = appendOptional(measurements["arm"], date, update.ArmCm)
		measurements["thigh"] = appendOptional(measurements["thigh"], date, update.ThighCm)
		if update.EnergyLevel != nil {
			energy = append(energy, progressPoint{Date: date, Value: float64(*update.EnergyLevel)})
		}
		if update.ComplianceScore != nil {
			compliance = append(compliance, progressPoint{Date: date, Value: float64(*update.ComplianceScore)})
		}
	}

	return gin.H{
		"weight":        weight,
		"measurements":  measurements,
		"energy_levels": energy,
		"compliance":    compliance,
	}
}

// DashboardStats godoc
// @Summary Summary counts for the nutritionist dashboard
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Stats retrieved successfully"
// @Router /nutritionist/dashboard/stats [get]
func (nc *NutritionistController) DashboardStats(c *gin.Context) {
	total, approved, err := nc.userRepo.CountPatients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve stats",
			"error":   err.Error(),
		})
		return
	}

	activePlans, err := nc.planRepo.CountActive(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve stats",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stats retrieved successfully",
		"data": gin.H{
			"total_patients":    total,
			"approved_patients": approved,
			"pending_patients":  total - approved,
			"active_meal_plans": activePlans,
		},
	})
}

// RecentActivity godoc
// @Summary Recent activity across all patients
// @Description Food logs, weekly updates and lab results from the last 7
// @Description days, merged into one list, newest first, capped at 20.
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Activity retrieved successfully"
// @Router /nutritionist/recent-activity [get]
func (nc *NutritionistController) RecentActivity(c *gin.Context) {
	since := time.Now().Add(-activityWindow)

	logs, err := nc.logRepo.ListSince(since, activityPerSource)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activity",
			"error":   err.Error(),
		})
		return
	}
	updates, err := nc.updateRepo.ListSince(since, activityPerSource)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activity",
			"error":   err.Error(),
		})
		return
	}
	labs, err := nc.labRepo.ListSince(since, activityPerSource)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activity",
			"error":   err.Error(),
		})
		return
	}

	activities := MergeActivity(logs, updates, labs, activityLimit)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity retrieved successfully",
		"data":    activities,
	})
}

// MergeActivity maps the three source types onto the common entry shape,
// sorts by timestamp descending and caps the result.
func MergeActivity(logs []models.FoodLog, updates []models.WeeklyUpdate, labs []models.LabResult, limit int) []ActivityEntry {
	activities := make([]ActivityEntry, 0, len(logs)+len(updates)+len(labs))

	for _, log := range logs {
		entry := ActivityEntry{
			Type:      "food_log",
			PatientID: log.UserID,
			Content:   fmt.Sprintf("%s - %s", log.MealType, truncate(log.Content, 50)),
			Timestamp: log.CreatedAt,
		}
		if log.User != nil {
			entry.Patient = log.User.Username
		}
		activities = append(activities, entry)
	}
	for _, update := range updates {
		entry := ActivityEntry{
			Type:      "weekly_update",
			PatientID: update.UserID,
			Content:   fmt.Sprintf("Weight: %.1fkg", update.CurrentWeight),
			Timestamp: update.Date,
		}
		if update.User != nil {
			entry.Patient = update.User.Username
		}
		activities = append(activities, entry)
	}
	for _, lab := range labs {
		entry := ActivityEntry{
			Type:      "lab_result",
			PatientID: lab.UserID,
			Content:   lab.Title,
			Timestamp: lab.CreatedAt,
		}
		if lab.User != nil {
			entry.Patient = lab.User.Username
		}
		activities = append(activities, entry)
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	if len(activities) > limit {
		activities = activities[:limit]
	}
	for i := range activities {
		activities[i].Date = activities[i].Timestamp.Format(dateLayout)
	}
	return activities
}

// truncate cuts on rune boundaries so multi-byte content stays valid UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

type promoteRequest struct {
	Usernames []string `json:"usernames" binding:"required,min=1"`
}

// PromotePatients godoc
// @Summary Promote users to nutritionist by username
// @Description Best effort: a failing row is reported and the rest continue.
// @Description Promotion approves the profile as well.
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param users body promoteRequest true "Usernames to promote"
// @Success 200 {object} map[string]interface{} "Promotion completed"
// @Router /nutritionist/patients/promote [post]
func (nc *NutritionistController) PromotePatients(c *gin.Context) {
	var req promoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	promoted := []string{}
	failed := map[string]string{}

	for _, username := range req.Usernames {
		user, err := nc.userRepo.FindByUsername(username)
		if err != nil {
			failed[username] = "user not found"
			continue
		}
		if err := nc.profileRepo.Promote(user.ID); err != nil {
			failed[username] = err.Error()
			continue
		}
		promoted = append(promoted, username)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Promotion completed",
		"data": gin.H{
			"promoted": promoted,
			"failed":   failed,
		},
	})
}
