package feedback

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/utils"
)

// ErrAlreadySubmitted means the user has feedback on record. The stored row is never replaced.
var ErrAlreadySubmitted = errors.New("feedback already submitted")

type Service interface {
	Submit(ctx context.Context, principal auth.User, stars int, comment string, ip string) (*Feedback, error)
}

type service struct {
	repo      Repository
	audit     auditlog.Service
	publisher notification.Publisher
}

func NewService(repo Repository, audit auditlog.Service, publisher notification.Publisher) Service {
	return &service{repo: repo, audit: audit, publisher: publisher}
}

func (s *service) Submit(ctx context.Context, principal auth.User, stars int, comment string, ip string) (*Feedback, error) {
	exists, err := s.repo.ExistsForUser(ctx, principal.ID)
	if err != nil {
		return nil, utils.Internal("failed to submit feedback", err)
	}
	if exists {
		return nil, s.duplicate(ctx, principal, ip)
	}

	fb := &Feedback{
		Stars:   stars,
		Comment: comment,
		UserID:  principal.ID,
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		// lost a race with a concurrent submission
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicate(ctx, principal, ip)
		}
		return nil, utils.Internal("failed to submit feedback", err)
	}

	metrics.FeedbackSubmissions.WithLabelValues("accepted").Inc()
	s.audit.LogAction(ctx, &principal.ID, &fb.ID, "FEEDBACK_SUBMITTED", map[string]interface{}{
		"stars": stars,
	}, ip, auditlog.StatusSuccess)
	notification.Emit(ctx, s.publisher, notification.Message{
		Type:    notification.TypeFeedbackSubmitted,
		ActorID: principal.ID,
		UserID:  principal.ID,
		Payload: map[string]interface{}{"stars": stars},
	})

	return fb, nil
}

func (s *service) duplicate(ctx context.Context, principal auth.User, ip string) error {
	metrics.FeedbackSubmissions.WithLabelValues("duplicate").Inc()
	s.audit.LogAction(ctx, &principal.ID, nil, "FEEDBACK_DUPLICATE", nil, ip, auditlog.StatusFailure)
	return ErrAlreadySubmitted
}
