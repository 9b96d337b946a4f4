// internal/api/handlers/resumes.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"talentbridge/internal/services"
	"talentbridge/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ResumeHandler holds dependencies for resume upserts on the open surface.
type ResumeHandler struct {
	service   services.ResumeService
	validator *validator.Validate
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(service services.ResumeService, validate *validator.Validate) *ResumeHandler {
	return &ResumeHandler{
		service:   service,
		validator: validate,
	}
}

// UpsertResume godoc
// @Summary      Create or update a resume
// @Description  Upserts the resume keyed by the agent-issued user id. Only fields present in the body are written; absent fields and JSON nulls leave stored values untouched.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        resume body dto.UpsertResumeRequest true "Resume fields to merge"
// @Success      200 {object}  dto.ResumeResponse "Resume upserted"
// @Failure      400 {object}  map[string]string "Bad Request - Missing userId or invalid body"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/resumes [post]
// @Security     ApiKeyAuth
func (h *ResumeHandler) UpsertResume(c *gin.Context) {
	var req dto.UpsertResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	resume, err := h.service.UpsertByExternalUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("UpsertResume: Error upserting resume for user %s: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save resume"})
		}
		return
	}

	c.JSON(http.StatusOK, MapResumeModelToResponse(resume))
}
