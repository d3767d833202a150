package auditlog

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// AuditLog represents the audit_logs table
type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id"`   // acting user, nil for anonymous calls
	TargetID  *uint          `gorm:"index" json:"target_id"` // user or event acted upon
	Action    string         `gorm:"size:100;not null;index" json:"action"`
	Details   datatypes.JSON `json:"details"`
	IPAddress string         `gorm:"size:45" json:"ip_address"`
	Status    string         `gorm:"size:20;not null;index" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName overrides table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditLogResponse is an audit row with the acting username resolved.
type AuditLogResponse struct {
	ID        uint           `json:"id"`
	UserID    *uint          `json:"user_id"`
	TargetID  *uint          `json:"target_id"`
	Action    string         `json:"action"`
	Details   datatypes.JSON `json:"details"`
	IPAddress string         `json:"ip_address"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UserName  *string        `json:"user_name,omitempty"`
}

// AuditLogFilter represents filters for querying audit logs
type AuditLogFilter struct {
	UserID   *uint      `json:"user_id"`
	TargetID *uint      `json:"target_id"`
	Action   string     `json:"action"`
	Status   string     `json:"status"`
	FromDate *time.Time `json:"from_date"`
	ToDate   *time.Time `json:"to_date"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
}

// PaginatedAuditLogs represents paginated audit log response
type PaginatedAuditLogs struct {
	Data       []AuditLogResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
