// internal/api/handlers/interviews.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"talentbridge/internal/services"
	"talentbridge/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InterviewHandler holds dependencies for incremental interview persistence.
type InterviewHandler struct {
	service   services.InterviewService
	validator *validator.Validate
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(service services.InterviewService, validate *validator.Validate) *InterviewHandler {
	return &InterviewHandler{
		service:   service,
		validator: validate,
	}
}

// CreateInterview godoc
// @Summary      Start an interview
// @Description  Creates a persisted interview for an external user. The returned id is PATCHed across turns.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        interview body dto.CreateInterviewRequest true "Interview setup"
// @Success      201 {object}  dto.InterviewResponse "Interview created"
// @Failure      400 {object}  map[string]string "Bad Request - Missing userId or invalid body"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/interviews [post]
// @Security     ApiKeyAuth
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	var req dto.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	interview, err := h.service.CreateInterview(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("CreateInterview: Error creating interview for user %s: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create interview"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapInterviewModelToResponse(interview))
}

// GetInterviewByID godoc
// @Summary      Get an interview by ID
// @Description  Retrieves a persisted interview, including questions, answers so far and the resumption index.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Interview ID" Format(uuid)
// @Success      200 {object}  dto.InterviewResponse "Successfully retrieved interview"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      404 {object}  map[string]string "Interview Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/interviews/{id} [get]
// @Security     ApiKeyAuth
func (h *InterviewHandler) GetInterviewByID(c *gin.Context) {
	idStr := c.Param("id")
	interviewID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID format"})
		return
	}

	req := dto.GetInterviewByIDRequest{ID: interviewID}

	interview, err := h.service.GetInterviewByID(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
		} else {
			log.Printf("GetInterviewByID: Error fetching interview %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve interview"})
		}
		return
	}

	c.JSON(http.StatusOK, MapInterviewModelToResponse(interview))
}

// ListInterviews godoc
// @Summary      List an external user's interviews
// @Description  Retrieves every interview stored under the given agent-issued user id, in-progress ones first.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        userId query string true "External user id"
// @Success      200 {array}   dto.InterviewResponse "Successfully retrieved interviews"
// @Failure      400 {object}  map[string]string "Bad Request - Missing userId"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/interviews [get]
// @Security     ApiKeyAuth
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	var req dto.ListInterviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	interviews, err := h.service.ListInterviews(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("ListInterviews: Error listing interviews for user %s: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve interviews"})
		}
		return
	}

	interviewResponses := make([]dto.InterviewResponse, 0, len(interviews))
	for _, interview := range interviews {
		interviewResponses = append(interviewResponses, MapInterviewModelToResponse(interview))
	}

	c.JSON(http.StatusOK, interviewResponses)
}

// UpdateInterview godoc
// @Summary      Record an interview turn
// @Description  Applies one incremental update: answers are appended, the resumption index advances, and a transition to completed fixes the evaluation. Completed interviews reject further updates.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Interview ID" Format(uuid)
// @Param        update body dto.UpdateInterviewRequest true "Turn data"
// @Success      200 {object}  dto.InterviewResponse "Interview updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      404 {object}  map[string]string "Interview Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Interview already completed"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/interviews/{id} [patch]
// @Security     ApiKeyAuth
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	idStr := c.Param("id")
	interviewID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID format"})
		return
	}

	var req dto.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = interviewID
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	interview, err := h.service.UpdateInterview(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("UpdateInterview: Error updating interview %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update interview"})
		}
		return
	}

	c.JSON(http.StatusOK, MapInterviewModelToResponse(interview))
}
