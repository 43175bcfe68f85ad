package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/taskguard-api/internal/models"
)

type mockAuditReader struct {
	logs      []models.AuditLog
	lastLimit int
}

func (m *mockAuditReader) ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	m.lastLimit = limit
	return m.logs, nil
}

func sampleLogs() []models.AuditLog {
	userID := "u1"
	return []models.AuditLog{
		{ID: "a2", UserID: &userID, Action: models.AuditActionLogin, IPAddress: "198.51.100.4", Details: "User alice logged in successfully.", Timestamp: time.Now()},
		{ID: "a1", Action: models.AuditActionFailed, IPAddress: "203.0.113.9", Details: "Failed login attempt for username: UNKNOWN", Timestamp: time.Now().Add(-time.Minute)},
	}
}

func TestListRecentUsesFiftyLimit(t *testing.T) {
	reader := &mockAuditReader{logs: sampleLogs()}
	svc := NewAuditService(reader)

	logs, err := svc.ListRecent(context.Background())
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, 50, reader.lastLimit)
}

func TestExportRecentCSV(t *testing.T) {
	svc := NewAuditService(&mockAuditReader{logs: sampleLogs()})

	data, contentType, err := svc.ExportRecent(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	body := string(data[3:])
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 3) // header + two rows
	assert.Contains(t, lines[0], "Timestamp")
	assert.Contains(t, body, "User alice logged in successfully.")
	assert.Contains(t, body, "Failed login attempt for username: UNKNOWN")
}

func TestExportRecentPDF(t *testing.T) {
	svc := NewAuditService(&mockAuditReader{logs: sampleLogs()})

	data, contentType, err := svc.ExportRecent(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportRecentRejectsUnknownFormat(t *testing.T) {
	svc := NewAuditService(&mockAuditReader{logs: sampleLogs()})

	_, _, err := svc.ExportRecent(context.Background(), "xlsx")
	require.Error(t, err)
}
