package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ucsb-cslas/cslas-api/internal/models"
	appErrors "github.com/ucsb-cslas/cslas-api/pkg/errors"
	"github.com/ucsb-cslas/cslas-api/pkg/export"
)

type tableRenderer interface {
	Render(table export.Table) ([]byte, error)
	ContentType() string
	Extension() string
}

type officeHourLister interface {
	List(ctx context.Context) ([]models.OnlineOfficeHour, error)
}

// ExportResult is a rendered schedule ready to download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the office hour schedule as a downloadable file.
type ExportService struct {
	officeHours officeHourLister
	renderers   map[string]tableRenderer
	logger      *zap.Logger
}

// NewExportService constructs an ExportService with CSV and PDF renderers.
func NewExportService(officeHours officeHourLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		officeHours: officeHours,
		renderers: map[string]tableRenderer{
			"csv": export.NewCSVExporter(),
			"pdf": export.NewPDFExporter(),
		},
		logger: logger,
	}
}

// Export renders every office hour in the requested format ("csv" or "pdf").
func (s *ExportService) Export(ctx context.Context, format string) (*ExportResult, error) {
	renderer, ok := s.renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	items, err := s.officeHours.List(ctx)
	if err != nil {
		return nil, err
	}

	body, err := renderer.Render(officeHourTable(items))
	if err != nil {
		s.logger.Error("render office hour export", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportResult{
		Filename:    "online-office-hours." + renderer.Extension(),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func officeHourTable(items []models.OnlineOfficeHour) export.Table {
	table := export.Table{
		Title:   "Online Office Hours",
		Headers: []string{"Day", "Start", "End", "Tutor", "Course", "Zoom", "Notes"},
		Rows:    make([][]string, 0, len(items)),
	}
	for _, oh := range items {
		var tutor, course string
		if a := oh.TutorAssignment; a != nil {
			tutor = a.Tutor.FullName()
			course = strings.TrimSpace(a.Course.Name + " " + a.Course.Quarter)
		}
		table.Rows = append(table.Rows, []string{oh.DayOfWeek, oh.StartTime, oh.EndTime, tutor, course, oh.ZoomRoomLink, oh.Notes})
	}
	return table
}
