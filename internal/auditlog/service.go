package auditlog

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/utils"
)

// Service records audit entries and serves them to admins.
type Service interface {
	LogAction(ctx context.Context, userID *uint, targetID *uint, action string, details map[string]interface{}, ip string, status string) error
	GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error)
	GetAuditLogByID(ctx context.Context, id uint) (*AuditLogResponse, error)
}

type service struct {
	repo Repository
}

// NewService creates an audit log service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction records an audit entry. Failures are logged and returned but callers treat
// auditing as best effort.
func (s *service) LogAction(ctx context.Context, userID *uint, targetID *uint, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = make(map[string]interface{})
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	entry := &AuditLog{
		UserID:    userID,
		TargetID:  targetID,
		Action:    action,
		Details:   detailsJSON,
		IPAddress: ip,
		Status:    status,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("audit log write failed")
		return err
	}
	return nil
}

// GetAuditLogs retrieves paginated audit logs with filters. Page and limit default to 1 and 20.
func (s *service) GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	logs, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, utils.Internal("failed to retrieve audit logs", err)
	}
	if logs == nil {
		logs = []AuditLogResponse{}
	}

	return &PaginatedAuditLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetAuditLogByID retrieves a specific audit log by ID
func (s *service) GetAuditLogByID(ctx context.Context, id uint) (*AuditLogResponse, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Audit log not found")
	}
	if err != nil {
		return nil, utils.Internal("failed to retrieve audit log", err)
	}
	return entry, nil
}
