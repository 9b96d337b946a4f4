package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentbridge/ent"
	"talentbridge/ent/application"
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

func setupApplicationHandlerTest(caller models.Caller) (*gin.Engine, *MockApplicationService) {
	gin.SetMode(gin.TestMode)
	mockApplicationService := new(MockApplicationService)
	applicationHandler := handlers.NewApplicationHandler(mockApplicationService, validator.New())

	router := gin.New()
	authed := router.Group("/applications", withCaller(caller))
	authed.GET("/:id", applicationHandler.GetApplicationByID)
	authed.PATCH("/:id", applicationHandler.UpdateApplication)
	authed.PATCH("/:id/withdraw", applicationHandler.WithdrawApplication)
	authed.POST("/batch", applicationHandler.BatchTransition)
	return router, mockApplicationService
}

func TestApplicationHandler_GetApplicationByID_ForeignLooksMissing(t *testing.T) {
	caller := models.Caller{Role: models.RoleStudent, ID: uuid.New()}
	router, mockApplicationService := setupApplicationHandlerTest(caller)

	mockApplicationService.On("GetApplicationByID", mock.Anything, mock.Anything).Return(nil, services.ErrForbidden).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Application not found")
}

func TestApplicationHandler_GetApplicationByID_MissingLooksTheSame(t *testing.T) {
	caller := models.Caller{Role: models.RoleStudent, ID: uuid.New()}
	router, mockApplicationService := setupApplicationHandlerTest(caller)

	mockApplicationService.On("GetApplicationByID", mock.Anything, mock.Anything).Return(nil, services.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Application not found")
}

func TestApplicationHandler_GetApplicationByID_OwnApplication(t *testing.T) {
	studentID := uuid.New()
	caller := models.Caller{Role: models.RoleStudent, ID: studentID}
	router, mockApplicationService := setupApplicationHandlerTest(caller)

	appID := uuid.New()
	own := &ent.Application{
		ID:     appID,
		JobID:  uuid.New(),
		UserID: studentID,
		Status: application.StatusPending,
	}

	mockApplicationService.On("GetApplicationByID", mock.Anything, mock.MatchedBy(func(req *dto.GetApplicationByIDRequest) bool {
		return req.ID == appID && req.Caller == caller
	})).Return(own, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/"+appID.String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, appID, resp.ID)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, studentID, *resp.UserID)
	assert.Equal(t, "pending", resp.Status)
}

func TestApplicationHandler_BatchTransition_PartialSuccess(t *testing.T) {
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: uuid.New()}
	router, mockApplicationService := setupApplicationHandlerTest(caller)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	result := &dto.BatchTransitionResponse{
		Requested:  3,
		Updated:    1,
		UpdatedIDs: []uuid.UUID{ids[0]},
	}

	mockApplicationService.On("BatchTransition", mock.Anything, mock.MatchedBy(func(req *dto.BatchTransitionRequest) bool {
		return req.Action == "reject" && len(req.IDs) == 3 && req.Caller == caller
	})).Return(result, nil).Once()

	payload, err := json.Marshal(gin.H{"ids": ids, "action": "reject"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/applications/batch", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BatchTransitionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Requested)
	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, []uuid.UUID{ids[0]}, resp.UpdatedIDs)
}

func TestApplicationHandler_BatchTransition_StudentForbidden(t *testing.T) {
	caller := models.Caller{Role: models.RoleStudent, ID: uuid.New()}
	router, mockApplicationService := setupApplicationHandlerTest(caller)

	mockApplicationService.On("BatchTransition", mock.Anything, mock.Anything).Return(nil, services.ErrForbidden).Once()

	payload, err := json.Marshal(gin.H{"ids": []uuid.UUID{uuid.New()}, "action": "view"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/applications/batch", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationHandler_BatchTransition_EmptyIDs(t *testing.T) {
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: uuid.New()}
	router, mockApplicationService := setupApplicationHandlerTest(caller)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/applications/batch", bytes.NewBufferString(`{"ids":[],"action":"view"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockApplicationService.AssertNotCalled(t, "BatchTransition", mock.Anything, mock.Anything)
}

func TestApplicationHandler_UpdateApplication_TerminalConflict(t *testing.T) {
	caller := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: uuid.New()}
	router, mockApplicationService := setupApplicationHandlerTest(caller)

	mockApplicationService.On("UpdateApplication", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidTransition).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/applications/"+uuid.New().String(), bytes.NewBufferString(`{"status":"rejected"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApplicationHandler_WithdrawApplication_Success(t *testing.T) {
	studentID := uuid.New()
	caller := models.Caller{Role: models.RoleStudent, ID: studentID}
	router, mockApplicationService := setupApplicationHandlerTest(caller)

	appID := uuid.New()
	withdrawn := &ent.Application{
		ID:     appID,
		JobID:  uuid.New(),
		UserID: studentID,
		Status: application.StatusWithdrawn,
	}

	mockApplicationService.On("WithdrawApplication", mock.Anything, mock.MatchedBy(func(req *dto.WithdrawApplicationRequest) bool {
		return req.ID == appID && req.Caller == caller
	})).Return(withdrawn, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/applications/"+appID.String()+"/withdraw", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "withdrawn", resp.Status)
}
