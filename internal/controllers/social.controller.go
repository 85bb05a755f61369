package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

// SocialController serves the read-time views computed from weekly updates:
// the community feed and the caller's own weight history. Nothing here is
// persisted; every call recomputes from current rows.
type SocialController struct {
	updateRepo repository.WeeklyUpdateRepository
	userRepo   repository.UserRepository
}

func NewSocialController(updateRepo repository.WeeklyUpdateRepository, userRepo repository.UserRepository) *SocialController {
	return &SocialController{updateRepo: updateRepo, userRepo: userRepo}
}

const feedLimit = 20

// FeedEntry is one community feed item.
type FeedEntry struct {
	Username      string    `json:"username" example:"janedoe"`
	Date          time.Time `json:"date" example:"2023-01-01T00:00:00Z"`
	CurrentWeight float64   `json:"current_weight" example:"74.5"`
	WeightLost    float64   `json:"weight_lost" example:"2.5"`
	Notes         string    `json:"notes" example:"Felt strong this week."`
}

// WeightHistoryEntry is one point on the weight timeline.
type WeightHistoryEntry struct {
	Date   time.Time `json:"date" example:"2023-01-01T00:00:00Z"`
	Weight float64   `json:"weight" example:"77"`
	Note   string    `json:"note" example:"Starting weight"`
}

// Feed godoc
// @Summary Community feed of recent weekly updates
// @Description The most recent 20 updates from other users, newest first.
// @Description weight_lost compares against each user's intake weight;
// @Description positive means weight lost.
// @Tags social
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Feed retrieved successfully"
// @Router /social/feed [get]
func (sc *SocialController) Feed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	updates, err := sc.updateRepo.ListRecentExcluding(userID.(uint), feedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve feed",
			"error":   err.Error(),
		})
		return
	}

	entries := make([]FeedEntry, 0, len(updates))
	for _, update := range updates {
		entries = append(entries, buildFeedEntry(update))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Feed retrieved successfully",
		"data":    entries,
	})
}

func buildFeedEntry(update models.WeeklyUpdate) FeedEntry {
	entry := FeedEntry{
		Date:          update.Date,
		CurrentWeight: update.CurrentWeight,
		Notes:         update.Notes,
	}
	if update.User != nil {
		entry.Username = update.User.Username
		if update.User.Profile != nil && update.User.Profile.Weight != nil {
			entry.WeightLost = *update.User.Profile.Weight - update.CurrentWeight
		}
	}
	return entry
}

// WeightHistory godoc
// @Summary The authenticated user's weight timeline
// @Description Starts with the intake weight recorded at registration,
// @Description followed by every weekly update in ascending date order.
// @Tags social
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Weight history retrieved successfully"
// @Router /progress [get]
func (sc *SocialController) WeightHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	user, err := sc.userRepo.FindByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	updates, err := sc.updateRepo.ListByUserAsc(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve weight history",
			"error":   err.Error(),
		})
		return
	}

	history := BuildWeightHistory(user, updates)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight history retrieved successfully",
		"data":    history,
	})
}

// BuildWeightHistory assembles the timeline: the profile's intake weight
// dated at account creation, then the updates in the order given.
func BuildWeightHistory(user *models.User, updates []models.WeeklyUpdate) []WeightHistoryEntry {
	history := make([]WeightHistoryEntry, 0, len(updates)+1)
	if user.Profile != nil && user.Profile.Weight != nil {
		history = append(history, WeightHistoryEntry{
			Date:   user.CreatedAt,
			Weight: *user.Profile.Weight,
			Note:   "Starting weight",
		})
	}
	for _, update := range updates {
		history = append(history, WeightHistoryEntry{
			Date:   update.Date,
			Weight: update.CurrentWeight,
			Note:   update.Notes,
		})
	}
	return history
}
