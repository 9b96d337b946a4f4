package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/job"
	"talentbridge/internal/api/handlers"
	"talentbridge/internal/models"
	"talentbridge/internal/services"
	"talentbridge/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withCaller injects an authenticated identity the way the auth middleware does.
func withCaller(caller models.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("caller", caller)
		c.Next()
	}
}

func setupJobHandlerTest(caller models.Caller) (*gin.Engine, *MockJobService) {
	gin.SetMode(gin.TestMode)
	mockJobService := new(MockJobService)
	jobHandler := handlers.NewJobHandler(mockJobService, validator.New())

	router := gin.New()
	authed := router.Group("/jobs", withCaller(caller))
	authed.PATCH("/:id", jobHandler.TransitionJob)
	authed.DELETE("/:id", jobHandler.DeleteJob)
	return router, mockJobService
}

func TestJobHandler_TransitionJob_Publish(t *testing.T) {
	enterpriseID := uuid.New()
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: enterpriseID}
	router, mockJobService := setupJobHandlerTest(caller)

	jobID := uuid.New()
	now := time.Now()
	published := &ent.Job{
		ID:           jobID,
		EnterpriseID: enterpriseID,
		Title:        "Backend Engineer",
		Description:  "Go services",
		Status:       job.StatusPublished,
		PublishedAt:  &now,
	}

	mockJobService.On("TransitionJob", mock.Anything, mock.MatchedBy(func(req *dto.TransitionJobRequest) bool {
		return req.ID == jobID && req.Action == "publish" && req.Caller == caller
	})).Return(published, nil).Once()

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"action":"publish"}`)
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+jobID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, jobID, resp.ID)
	assert.Equal(t, "published", resp.Status)
	assert.NotNil(t, resp.PublishedAt)
	mockJobService.AssertExpectations(t)
}

func TestJobHandler_TransitionJob_ForeignJobLooksMissing(t *testing.T) {
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: uuid.New()}
	router, mockJobService := setupJobHandlerTest(caller)

	mockJobService.On("TransitionJob", mock.Anything, mock.Anything).Return(nil, services.ErrForbidden).Once()

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"action":"publish"}`)
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Job not found")
}

func TestJobHandler_TransitionJob_IllegalTransition(t *testing.T) {
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: uuid.New()}
	router, mockJobService := setupJobHandlerTest(caller)

	mockJobService.On("TransitionJob", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidTransition).Once()

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"action":"close"}`)
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestJobHandler_TransitionJob_InvalidAction(t *testing.T) {
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: uuid.New()}
	router, mockJobService := setupJobHandlerTest(caller)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"action":"archive"}`)
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockJobService.AssertNotCalled(t, "TransitionJob", mock.Anything, mock.Anything)
}

func TestJobHandler_DeleteJob_NonDraftConflict(t *testing.T) {
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: uuid.New()}
	router, mockJobService := setupJobHandlerTest(caller)

	mockJobService.On("DeleteJob", mock.Anything, mock.Anything).Return(services.ErrConflict).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/jobs/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Only draft jobs can be deleted")
}

func TestJobHandler_DeleteJob_Success(t *testing.T) {
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: uuid.New()}
	router, mockJobService := setupJobHandlerTest(caller)

	jobID := uuid.New()
	mockJobService.On("DeleteJob", mock.Anything, mock.MatchedBy(func(req *dto.DeleteJobRequest) bool {
		return req.ID == jobID && req.Caller == caller
	})).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/jobs/"+jobID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockJobService.AssertExpectations(t)
}

func TestJobHandler_TransitionJob_NoCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockJobService := new(MockJobService)
	jobHandler := handlers.NewJobHandler(mockJobService, validator.New())

	router := gin.New()
	router.PATCH("/jobs/:id", jobHandler.TransitionJob)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"action":"publish"}`)
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
