package feedback

import (
	"time"

	"github.com/sharath018/event-management-backend/internal/auth"
)

// Feedback represents the feedback table. One row per user at most.
type Feedback struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Stars    int       `gorm:"not null" json:"stars"`
	Comment  string    `gorm:"size:50" json:"comment"`
	TsSubmit time.Time `gorm:"<-:create;autoCreateTime" json:"ts_submit"`
	UserID   uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User     auth.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Feedback) TableName() string {
	return "feedback"
}

type SubmitRequest struct {
	Stars   *int   `json:"stars" binding:"required" example:"5"`
	Comment string `json:"comment" binding:"max=50" example:"Great meetup"`
}
