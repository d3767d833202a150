package auditlog

import (
	"context"

	"gorm.io/gorm"
)

// Repository persists and queries audit log entries.
type Repository interface {
	Create(ctx context.Context, log *AuditLog) error
	GetByFilter(ctx context.Context, filter AuditLogFilter) ([]AuditLogResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*AuditLogResponse, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed audit log repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const selectWithUser = `
	al.id, al.user_id, al.target_id, al.action,
	al.details, al.ip_address, al.status, al.created_at,
	u.username as user_name`

// Create inserts a new audit log entry
func (r *repository) Create(ctx context.Context, log *AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetByFilter retrieves audit logs with filtering and pagination, newest first
func (r *repository) GetByFilter(ctx context.Context, filter AuditLogFilter) ([]AuditLogResponse, int64, error) {
	var logs []AuditLogResponse
	var total int64

	query := r.db.WithContext(ctx).
		Table("audit_logs al").
		Joins("LEFT JOIN users u ON al.user_id = u.id")

	if filter.UserID != nil {
		query = query.Where("al.user_id = ?", *filter.UserID)
	}
	if filter.TargetID != nil {
		query = query.Where("al.target_id = ?", *filter.TargetID)
	}
	if filter.Action != "" {
		// LOWER/LIKE instead of ILIKE so the query also runs on sqlite
		query = query.Where("LOWER(al.action) LIKE LOWER(?)", "%"+filter.Action+"%")
	}
	if filter.Status != "" {
		query = query.Where("al.status = ?", filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("al.created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("al.created_at <= ?", *filter.ToDate)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	err := query.Select(selectWithUser).
		Order("al.created_at DESC, al.id DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Scan(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// GetByID retrieves a single audit log with the acting username resolved.
// It returns gorm.ErrRecordNotFound when no row matches.
func (r *repository) GetByID(ctx context.Context, id uint) (*AuditLogResponse, error) {
	var log AuditLogResponse

	res := r.db.WithContext(ctx).
		Table("audit_logs al").
		Select(selectWithUser).
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Where("al.id = ?", id).
		Limit(1).
		Scan(&log)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &log, nil
}
