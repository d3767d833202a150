package reports

import (
	"context"
	"time"

	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/event"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/utils"
)

type Service interface {
	ExportAttendees(ctx context.Context, principal auth.User, eventID uint, format string, ip string) ([]byte, string, string, error)
}

type service struct {
	events   *event.Service
	exporter ReportExporter
	auditSvc auditlog.Service
	now      func() time.Time
}

func NewService(events *event.Service, exporter ReportExporter, auditSvc auditlog.Service) Service {
	return &service{events: events, exporter: exporter, auditSvc: auditSvc, now: time.Now}
}

func (s *service) ExportAttendees(ctx context.Context, principal auth.User, eventID uint, format string, ip string) ([]byte, string, string, error) {
	normalized, ok := NormalizeFormat(format)
	if !ok {
		return nil, "", "", utils.Validation("unsupported format: use csv, xlsx or pdf")
	}

	e, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, "", "", err
	}
	attendees, err := s.events.Attendees(ctx, eventID)
	if err != nil {
		return nil, "", "", err
	}

	loc := s.events.Location()
	report := AttendeeReport{
		EventID:     e.ID,
		Title:       e.Title,
		Location:    e.Location,
		Schedule:    e.Schedule.In(loc).Format(event.ScheduleLayout),
		GeneratedAt: s.now().In(loc),
		Rows:        make([]AttendeeReportRow, 0, len(attendees)),
	}
	for _, a := range attendees {
		report.Rows = append(report.Rows, AttendeeReportRow{
			UserID:   a.UserID,
			Username: a.Username,
			FullName: a.FullName(),
			Email:    a.Email,
			Phone:    a.Phone,
			JoinedAt: a.JoinedAt.In(loc),
		})
	}

	data, filename, mime, err := s.exporter.Export(normalized, report)
	if err != nil {
		return nil, "", "", utils.Internal("failed to export attendees", err)
	}

	metrics.ReportExports.WithLabelValues(normalized).Inc()
	s.auditSvc.LogAction(ctx, &principal.ID, &eventID, "ATTENDEES_EXPORTED", map[string]interface{}{
		"format": normalized,
		"rows":   len(report.Rows),
	}, ip, auditlog.StatusSuccess)

	return data, filename, mime, nil
}
