package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/taskguard-api/internal/middleware"
	"github.com/noah-isme/taskguard-api/internal/models"
	appErrors "github.com/noah-isme/taskguard-api/pkg/errors"
)

type taskServiceMock struct {
	listResp     []models.Task
	listErr      error
	createResp   *models.Task
	createErr    error
	getResp      *models.Task
	getErr       error
	updateResp   *models.Task
	updateErr    error
	deleteErr    error
	lastSearch   string
	listCalled   bool
	createCalled bool
	deleteCalled bool
}

func (m *taskServiceMock) List(ctx context.Context, claims *models.JWTClaims, search string) ([]models.Task, error) {
	m.listCalled = true
	m.lastSearch = search
	return m.listResp, m.listErr
}

func (m *taskServiceMock) Create(ctx context.Context, claims *models.JWTClaims, req models.CreateTaskRequest) (*models.Task, error) {
	m.createCalled = true
	return m.createResp, m.createErr
}

func (m *taskServiceMock) GetForEdit(ctx context.Context, claims *models.JWTClaims, id string) (*models.Task, error) {
	return m.getResp, m.getErr
}

func (m *taskServiceMock) GetForDelete(ctx context.Context, claims *models.JWTClaims, id string) (*models.Task, error) {
	return m.getResp, m.getErr
}

func (m *taskServiceMock) Update(ctx context.Context, claims *models.JWTClaims, id string, req models.UpdateTaskRequest) (*models.Task, error) {
	return m.updateResp, m.updateErr
}

func (m *taskServiceMock) Delete(ctx context.Context, claims *models.JWTClaims, id string) error {
	m.deleteCalled = true
	return m.deleteErr
}

func memberClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "user-1", Username: "alice"}
}

func TestTaskHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &taskServiceMock{
		listResp: []models.Task{{ID: "task-1", Title: "Buy milk", OwnerID: "user-1"}},
	}
	handler := NewTaskHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/?q=milk", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, memberClaims())

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.listCalled)
	assert.Equal(t, "milk", mockSvc.lastSearch)
}

func TestTaskHandlerListRedirectsStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &taskServiceMock{}
	handler := NewTaskHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "staff-1", Username: "admin", IsStaff: true})

	handler.List(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin-dashboard", w.Header().Get("Location"))
	assert.False(t, mockSvc.listCalled)
}

func TestTaskHandlerListUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTaskHandler(&taskServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTaskHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &taskServiceMock{
		createResp: &models.Task{ID: "task-1", Title: "Buy milk", OwnerID: "user-1"},
	}
	handler := NewTaskHandler(mockSvc)

	payload, _ := json.Marshal(models.CreateTaskRequest{Title: "Buy milk"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/create", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, memberClaims())

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.createCalled)
}

func TestTaskHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &taskServiceMock{}
	handler := NewTaskHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/create", bytes.NewBufferString(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, memberClaims())

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.createCalled)
}

func TestTaskHandlerEditNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &taskServiceMock{
		getErr: appErrors.ErrNotFound,
	}
	handler := NewTaskHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/edit/task-9", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "task-9"}}
	c.Set(middleware.ContextUserKey, memberClaims())

	handler.GetForEdit(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &taskServiceMock{}
	handler := NewTaskHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/delete/task-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "task-1"}}
	c.Set(middleware.ContextUserKey, memberClaims())

	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, mockSvc.deleteCalled)
}
