package service

import (
	"context"
	"fmt"

	"github.com/noah-isme/taskguard-api/internal/models"
	appErrors "github.com/noah-isme/taskguard-api/pkg/errors"
	"github.com/noah-isme/taskguard-api/pkg/export"
)

// auditLogReader reads recent security events.
type auditLogReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

// AuditService exposes the security event log for administrative review.
type AuditService struct {
	repo auditLogReader
	csv  *export.CSVExporter
	pdf  *export.PDFExporter
}

// NewAuditService constructs an AuditService instance.
func NewAuditService(repo auditLogReader) *AuditService {
	return &AuditService{
		repo: repo,
		csv:  export.NewCSVExporter(),
		pdf:  export.NewPDFExporter(),
	}
}

// recentLimit caps the displayed and exported log window.
const recentLimit = 50

// ListRecent returns the most recent 50 events, newest first.
func (s *AuditService) ListRecent(ctx context.Context) ([]models.AuditLog, error) {
	logs, err := s.repo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list audit logs")
	}
	return logs, nil
}

// ExportRecent renders the recent events as csv or pdf, returning the bytes
// and the content type.
func (s *AuditService) ExportRecent(ctx context.Context, format string) ([]byte, string, error) {
	logs, err := s.ListRecent(ctx)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Timestamp", "Action", "User", "IP Address", "User Agent", "Details"},
	}
	for _, entry := range logs {
		user := ""
		if entry.UserID != nil {
			user = *entry.UserID
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Timestamp":  entry.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			"Action":     string(entry.Action),
			"User":       user,
			"IP Address": entry.IPAddress,
			"User Agent": entry.UserAgent,
			"Details":    entry.Details,
		})
	}

	switch format {
	case "csv", "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return data, "text/csv", nil
	case "pdf":
		data, err := s.pdf.Render(dataset, "Security Events")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return data, "application/pdf", nil
	default:
		return nil, "", appErrors.Validation(fmt.Sprintf("unsupported export format %q", format), appErrors.Detail{
			Code:    "format_invalid",
			Message: "Supported export formats are csv and pdf.",
		})
	}
}
