package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

// NoteController handles a nutritionist's private patient notes. Every
// operation is scoped to the authoring nutritionist.
type NoteController struct {
	noteRepo repository.NutritionistNoteRepository
	userRepo repository.UserRepository
}

func NewNoteController(noteRepo repository.NutritionistNoteRepository, userRepo repository.UserRepository) *NoteController {
	return &NoteController{noteRepo: noteRepo, userRepo: userRepo}
}

type noteRequest struct {
	PatientID uint   `json:"patient_id" binding:"required" example:"1"`
	Content   string `json:"content" binding:"required" example:"Responding well to higher protein."`
	Tags      string `json:"tags" example:"protein, progress"`
}

// ListNotes godoc
// @Summary List the authenticated nutritionist's notes, newest first
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param patient_id query int false "Filter by patient ID"
// @Success 200 {object} map[string]interface{} "Notes retrieved successfully"
// @Router /nutritionist/notes [get]
func (nc *NoteController) ListNotes(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var patientID *uint
	if raw := c.Query("patient_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid patient ID",
				"error":   "patient_id must be a valid positive integer",
			})
			return
		}
		pid := uint(id)
		patientID = &pid
	}

	notes, err := nc.noteRepo.ListByNutritionist(userID.(uint), patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve notes",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notes retrieved successfully",
		"data":    notes,
	})
}

// CreateNote godoc
// @Summary Create a note about a patient
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body noteRequest true "Note data"
// @Success 201 {object} map[string]interface{} "Note created successfully"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /nutritionist/notes [post]
func (nc *NoteController) CreateNote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := nc.userRepo.FindPatientByID(req.PatientID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	note := models.NutritionistNote{
		NutritionistID: userID.(uint),
		PatientID:      req.PatientID,
		Content:        req.Content,
		Tags:           req.Tags,
	}

	if err := nc.noteRepo.Create(&note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create note",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Note created successfully",
		"data":    note,
	})
}

// UpdateNote godoc
// @Summary Update one of the authenticated nutritionist's notes
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param note body noteRequest true "Note data"
// @Success 200 {object} map[string]interface{} "Note updated successfully"
// @Failure 404 {object} map[string]interface{} "Note not found"
// @Router /nutritionist/notes/{id} [put]
func (nc *NoteController) UpdateNote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid note ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	note, err := nc.noteRepo.FindByIDForNutritionist(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Note not found",
			"error":   "No note exists with the provided ID",
		})
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
		Tags    string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	note.Content = req.Content
	note.Tags = req.Tags

	if err := nc.noteRepo.Update(note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update note",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Note updated successfully",
		"data":    note,
	})
}

// DeleteNote godoc
// @Summary Delete one of the authenticated nutritionist's notes
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} map[string]interface{} "Note deleted successfully"
// @Failure 404 {object} map[string]interface{} "Note not found"
// @Router /nutritionist/notes/{id} [delete]
func (nc *NoteController) DeleteNote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid note ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := nc.noteRepo.Delete(uint(id), userID.(uint)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Note not found",
			"error":   "No note exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Note deleted successfully",
		"data":    nil,
	})
}
