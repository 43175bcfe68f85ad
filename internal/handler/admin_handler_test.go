package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/taskguard-api/internal/models"
	appErrors "github.com/noah-isme/taskguard-api/pkg/errors"
)

type adminTaskServiceMock struct {
	resp []models.Task
	err  error
}

func (m *adminTaskServiceMock) ListAll(ctx context.Context) ([]models.Task, error) {
	return m.resp, m.err
}

type adminAuditServiceMock struct {
	logs       []models.AuditLog
	exportData []byte
	exportType string
	exportErr  error
	lastFormat string
}

func (m *adminAuditServiceMock) ListRecent(ctx context.Context) ([]models.AuditLog, error) {
	return m.logs, nil
}

func (m *adminAuditServiceMock) ExportRecent(ctx context.Context, format string) ([]byte, string, error) {
	m.lastFormat = format
	if m.exportErr != nil {
		return nil, "", m.exportErr
	}
	return m.exportData, m.exportType, nil
}

func TestAdminHandlerDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockTasks := &adminTaskServiceMock{
		resp: []models.Task{
			{ID: "task-1", Title: "Buy milk", OwnerID: "user-1"},
			{ID: "task-2", Title: "Ship release", OwnerID: "user-2"},
		},
	}
	handler := NewAdminHandler(mockTasks, &adminAuditServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	c.Request = req

	handler.Dashboard(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "task-2")
}

func TestAdminHandlerAuditLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAudit := &adminAuditServiceMock{
		logs: []models.AuditLog{
			{ID: "a1", Action: models.AuditActionFailed, IPAddress: "203.0.113.9", Details: "Failed login attempt for username: ghost", Timestamp: time.Now()},
		},
	}
	handler := NewAdminHandler(&adminTaskServiceMock{}, mockAudit)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/audit-logs", nil)
	c.Request = req

	handler.AuditLogs(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed login attempt for username: ghost")
}

func TestAdminHandlerExportDefaultsToCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAudit := &adminAuditServiceMock{
		exportData: []byte("Timestamp,Action\n"),
		exportType: "text/csv",
	}
	handler := NewAdminHandler(&adminTaskServiceMock{}, mockAudit)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/audit-logs/export", nil)
	c.Request = req

	handler.ExportAuditLogs(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockAudit.lastFormat)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="audit-logs.csv"`, w.Header().Get("Content-Disposition"))
}

func TestAdminHandlerExportPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAudit := &adminAuditServiceMock{
		exportData: []byte("%PDF-1.3"),
		exportType: "application/pdf",
	}
	handler := NewAdminHandler(&adminTaskServiceMock{}, mockAudit)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/audit-logs/export?format=pdf", nil)
	c.Request = req

	handler.ExportAuditLogs(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pdf", mockAudit.lastFormat)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="audit-logs.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestAdminHandlerExportBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockAudit := &adminAuditServiceMock{
		exportErr: appErrors.Validation("unsupported export format", appErrors.Detail{Code: "format_invalid", Message: "Supported export formats are csv and pdf."}),
	}
	handler := NewAdminHandler(&adminTaskServiceMock{}, mockAudit)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/audit-logs/export?format=xlsx", nil)
	c.Request = req

	handler.ExportAuditLogs(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}
