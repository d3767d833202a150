package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/utils"
)

type Service struct {
	Repo      *Repository
	AuditSvc  auditlog.Service
	Publisher notification.Publisher

	loc        *time.Location
	joinPolicy string
	now        func() time.Time
}

func NewService(r *Repository, cfg *config.Config, auditSvc auditlog.Service, publisher notification.Publisher) *Service {
	return &Service{
		Repo:       r,
		AuditSvc:   auditSvc,
		Publisher:  publisher,
		loc:        cfg.Location(),
		joinPolicy: cfg.JoinDuplicatePolicy,
		now:        time.Now,
	}
}

// WithClock replaces the time source used to decide what "today" is.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Location is the zone schedules are parsed and rendered in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(ctx context.Context, principal auth.User, req *CreateEventRequest, ip string) (*Event, error) {
	if err := auth.RequireAdmin(principal); err != nil {
		s.AuditSvc.LogAction(ctx, &principal.ID, nil, "EVENT_CREATE_DENIED", map[string]interface{}{
			"title": req.Title,
		}, ip, auditlog.StatusFailure)
		return nil, err
	}

	// field presence and lengths are enforced when the request is bound
	schedule, err := time.ParseInLocation(ScheduleLayout, strings.TrimSpace(req.Schedule), s.loc)
	if err != nil {
		return nil, utils.Validation("invalid schedule")
	}

	logo := strings.TrimSpace(req.LogoURL)
	if logo == "" {
		logo = DefaultLogoURL
	}

	e := &Event{
		Title:        req.Title,
		Location:     req.Location,
		Schedule:     schedule.UTC(),
		LogoURL:      logo,
		Requirements: req.Requirements,
		Refreshment:  bool(req.Refreshment),
		Contact:      req.Contact,
		ContactAlt:   req.ContactAlt,
		CreatedBy:    &principal.ID,
	}

	if err := s.Repo.CreateEvent(ctx, e); err != nil {
		s.AuditSvc.LogAction(ctx, &principal.ID, nil, "EVENT_CREATE_FAILED", map[string]interface{}{
			"title": req.Title,
			"error": err.Error(),
		}, ip, auditlog.StatusFailure)
		return nil, utils.Internal("failed to create event", err)
	}

	metrics.EventsCreated.Inc()
	s.AuditSvc.LogAction(ctx, &principal.ID, &e.ID, "EVENT_CREATED", map[string]interface{}{
		"title":    e.Title,
		"schedule": e.Schedule.In(s.loc).Format(ScheduleLayout),
	}, ip, auditlog.StatusSuccess)
	notification.Emit(ctx, s.Publisher, notification.Message{
		Type:    notification.TypeEventCreated,
		ActorID: principal.ID,
		EventID: e.ID,
		Payload: map[string]interface{}{"title": e.Title},
	})

	return e, nil
}

// ===========================
// 🔍 Get Event By ID
func (s *Service) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	e, err := s.Repo.GetEventByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Event not found")
	}
	if err != nil {
		return nil, utils.Internal("failed to load event", err)
	}
	return e, nil
}

// ===========================
// 📆 List by day window

// DayBounds returns the start of today and of tomorrow in the service time zone.
func (s *Service) DayBounds() (time.Time, time.Time) {
	now := s.now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

func (s *Service) ListEvents(ctx context.Context, when Window) ([]Event, error) {
	today, tomorrow := s.DayBounds()

	var from, to time.Time
	switch when {
	case WindowPast:
		to = today
	case WindowToday:
		from, to = today, tomorrow
	case WindowFuture:
		from = tomorrow
	default:
		return nil, utils.Validation("Invalid query body")
	}

	events, err := s.Repo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, utils.Internal("failed to list events", err)
	}
	return events, nil
}

// ===========================
// 🙋 Join / attendees

// JoinEvent adds principal to the event. joined is false when they were already attending
// and the duplicate policy lets that through.
func (s *Service) JoinEvent(ctx context.Context, principal auth.User, eventID uint, ip string) (joined bool, err error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return false, err
	}

	added, err := s.Repo.AddAttendee(ctx, eventID, principal.ID)
	if err != nil {
		return false, utils.Internal("failed to join event", err)
	}

	if !added {
		metrics.EventJoins.WithLabelValues("duplicate").Inc()
		if s.joinPolicy == config.JoinPolicyReject {
			return false, utils.Conflict("already joined this event")
		}
		return false, nil
	}

	metrics.EventJoins.WithLabelValues("joined").Inc()
	s.AuditSvc.LogAction(ctx, &principal.ID, &eventID, "EVENT_JOINED", nil, ip, auditlog.StatusSuccess)
	notification.Emit(ctx, s.Publisher, notification.Message{
		Type:    notification.TypeEventJoined,
		ActorID: principal.ID,
		UserID:  principal.ID,
		EventID: eventID,
	})
	return true, nil
}

func (s *Service) Attendees(ctx context.Context, eventID uint) ([]Attendee, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}

	attendees, err := s.Repo.Attendees(ctx, eventID)
	if err != nil {
		return nil, utils.Internal("failed to list attendees", err)
	}
	if attendees == nil {
		attendees = []Attendee{}
	}
	return attendees, nil
}

func (s *Service) ensureEvent(ctx context.Context, eventID uint) error {
	ok, err := s.Repo.EventExists(ctx, eventID)
	if err != nil {
		return utils.Internal("failed to load event", err)
	}
	if !ok {
		return utils.NotFound("Event not found !")
	}
	return nil
}
