// internal/api/handlers/applications.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"talentbridge/internal/api/middleware"
	"talentbridge/internal/services"
	"talentbridge/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application operations on both
// the session surface and the API-key surface.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Files an application for the authenticated student against a published job. One application per user per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        application body dto.ApplyToJobRequest false "Optional resume reference, match score and notes"
// @Success      201 {object}  dto.ApplicationResponse "Application created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Job not available for applications"
// @Failure      409 {object}  map[string]string "Conflict - Already applied"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	caller, err := middleware.GetCallerFromContext(c)
	if err != nil {
		log.Printf("ApplyToJob: Error getting caller from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.ApplyToJobRequest
	// The body is optional: an application can be filed bare.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
	}
	req.JobID = jobID
	req.Caller = caller
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	app, err := h.service.ApplyToJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job is not available for applications"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already applied to this job"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: Only applicants can apply to jobs"})
		} else {
			log.Printf("ApplyToJob: Error creating application for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapApplicationModelToResponse(app))
}

// GetApplicationByID godoc
// @Summary      Get an application by ID
// @Description  Retrieves a single application. Visible to its applicant, the owning enterprise and admins; everyone else gets 404.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.ApplicationResponse "Successfully retrieved application"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	caller, err := middleware.GetCallerFromContext(c)
	if err != nil {
		log.Printf("GetApplicationByID: Error getting caller from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	appID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.GetApplicationByIDRequest{ID: appID, Caller: caller}

	app, err := h.service.GetApplicationByID(c.Request.Context(), &req)
	if err != nil {
		// Same 404 whether the row is missing or belongs to someone else.
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("GetApplicationByID: Error fetching application %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// ListMyApplications godoc
// @Summary      List the caller's applications
// @Description  Retrieves applications filed by the authenticated user, most recent first.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.ApplicationResponse "Successfully retrieved applications"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	caller, err := middleware.GetCallerFromContext(c)
	if err != nil {
		log.Printf("ListMyApplications: Error getting caller from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListApplicationsByUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	req.Caller = caller

	apps, err := h.service.ListApplicationsByUser(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListMyApplications: Error listing applications for user %s: %v", caller.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	appResponses := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		appResponses = append(appResponses, MapApplicationModelToResponse(app))
	}

	c.JSON(http.StatusOK, appResponses)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Retrieves applications filed against a job. Restricted to the owning enterprise and admins.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.ApplicationResponse "Successfully retrieved applications"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	caller, err := middleware.GetCallerFromContext(c)
	if err != nil {
		log.Printf("ListJobApplications: Error getting caller from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.ListApplicationsByJobRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.Caller = caller
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	apps, err := h.service.ListApplicationsByJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("ListJobApplications: Error listing applications for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		}
		return
	}

	appResponses := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		appResponses = append(appResponses, MapApplicationModelToResponse(app))
	}

	c.JSON(http.StatusOK, appResponses)
}

// UpdateApplication godoc
// @Summary      Update an application
// @Description  Applies a status transition and/or notes update atomically. Offer/reject decisions are reserved for the owning enterprise; withdrawn is reserved for the applicant.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Param        update body dto.UpdateApplicationRequest true "Status and/or notes"
// @Success      200 {object}  dto.ApplicationResponse "Application updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or nothing to update"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Illegal transition or concurrent change"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	caller, err := middleware.GetCallerFromContext(c)
	if err != nil {
		log.Printf("UpdateApplication: Error getting caller from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	appID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = appID
	req.Caller = caller
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	app, err := h.service.UpdateApplication(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrInvalidTransition) || errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("UpdateApplication: Error updating application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// WithdrawApplication godoc
// @Summary      Withdraw an application
// @Description  Moves the caller's own application to withdrawn. Terminal; no further transitions are possible.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.ApplicationResponse "Application withdrawn"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Application already terminal"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/withdraw [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) WithdrawApplication(c *gin.Context) {
	caller, err := middleware.GetCallerFromContext(c)
	if err != nil {
		log.Printf("WithdrawApplication: Error getting caller from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	appID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.WithdrawApplicationRequest{ID: appID, Caller: caller}

	app, err := h.service.WithdrawApplication(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrInvalidTransition) || errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("WithdrawApplication: Error withdrawing application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// BatchTransition godoc
// @Summary      Transition several applications at once
// @Description  Applies one action (view, interview, offer, reject) to a set of applications. Ids the caller cannot act on are skipped silently; the response reports the counts.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        batch body dto.BatchTransitionRequest true "Application ids and action"
// @Success      200 {object}  dto.BatchTransitionResponse "Batch processed"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Caller cannot run batch transitions"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/batch [post]
// @Security     BearerAuth
func (h *ApplicationHandler) BatchTransition(c *gin.Context) {
	caller, err := middleware.GetCallerFromContext(c)
	if err != nil {
		log.Printf("BatchTransition: Error getting caller from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.BatchTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.Caller = caller
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	resp, err := h.service.BatchTransition(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: Caller cannot run batch transitions"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("BatchTransition: Error running batch: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process batch"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateExternalApplication godoc
// @Summary      File an application for an external user
// @Description  Creates an application keyed by the agent-issued user id against a published job. One application per external user per job.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        application body dto.CreateExternalApplicationRequest true "External application details"
// @Success      201 {object}  dto.ApplicationResponse "Application created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      404 {object}  map[string]string "Job not available for applications"
// @Failure      409 {object}  map[string]string "Conflict - Already applied"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/applications [post]
// @Security     ApiKeyAuth
func (h *ApplicationHandler) CreateExternalApplication(c *gin.Context) {
	var req dto.CreateExternalApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	app, err := h.service.CreateExternalApplication(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job is not available for applications"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "User has already applied to this job"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("CreateExternalApplication: Error creating application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapApplicationModelToResponse(app))
}

// ListExternalApplications godoc
// @Summary      List an external user's applications
// @Description  Retrieves every application filed under the given agent-issued user id.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        userId query string true "External user id"
// @Success      200 {array}   dto.ApplicationResponse "Successfully retrieved applications"
// @Failure      400 {object}  map[string]string "Bad Request - Missing userId"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/applications [get]
// @Security     ApiKeyAuth
func (h *ApplicationHandler) ListExternalApplications(c *gin.Context) {
	var req dto.ListExternalApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	apps, err := h.service.ListExternalApplications(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("ListExternalApplications: Error listing applications for user %s: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		}
		return
	}

	appResponses := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		appResponses = append(appResponses, MapApplicationModelToResponse(app))
	}

	c.JSON(http.StatusOK, appResponses)
}
