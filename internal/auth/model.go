package auth

import (
	"strings"
	"time"
)

// User represents the users table
type User struct {
	ID         uint      `gorm:"primaryKey" json:"_id"`
	Username   string    `gorm:"size:32;not null;uniqueIndex" json:"username"`
	Password   string    `gorm:"size:72;not null" json:"-"` // bcrypt hash
	FirstName  string    `gorm:"size:16;not null" json:"first_name"`
	LastName   string    `gorm:"size:16" json:"last_name"`
	Email      string    `gorm:"size:32;not null;uniqueIndex" json:"email"`
	Phone      string    `gorm:"size:13" json:"phone"`
	DateJoined time.Time `gorm:"<-:create;autoCreateTime;not null" json:"date_joined"`
	IsAdmin    bool      `gorm:"not null;default:false" json:"is_admin"`
}

func (User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// AdminBootstrap is a single-row marker. Whoever inserts row 1 is the first admin.
type AdminBootstrap struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint      `gorm:"not null"`
	ClaimedAt time.Time `gorm:"autoCreateTime"`
}

func (AdminBootstrap) TableName() string {
	return "admin_bootstraps"
}

const bootstrapMarkerID = 1

// ===============================
// Responses
// ===============================

type UserProfile struct {
	FullName string `json:"full_name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Phone    string `json:"phone" example:"+15550100"`
}

type UserSummary struct {
	ID       uint   `json:"_id" example:"1"`
	FullName string `json:"full_name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Phone    string `json:"phone" example:"+15550100"`
}

func (u User) Profile() UserProfile {
	return UserProfile{FullName: u.FullName(), Email: u.Email, Phone: u.Phone}
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, FullName: u.FullName(), Email: u.Email, Phone: u.Phone}
}
