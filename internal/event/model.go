package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sharath018/event-management-backend/internal/auth"
)

const (
	// ScheduleLayout is the wire format of schedules, both ways.
	ScheduleLayout = "2006-01-02 15:04:05"
	DefaultLogoURL = "assets/logo.png"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"size:32;not null"`
	Location     string    `gorm:"size:32;not null"`
	Schedule     time.Time `gorm:"not null;index"` // stored in UTC
	LogoURL      string    `gorm:"size:128"`
	Requirements string    `gorm:"size:64"`
	Refreshment  bool      `gorm:"not null;default:false"`
	Contact      string    `gorm:"size:13;not null"`
	ContactAlt   string    `gorm:"size:12"`
	CreatedBy    *uint     `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Going int64 `gorm:"-"`
}

func (Event) TableName() string {
	return "events"
}

// ============================
// 🔷 Attendance (event_users)
type Attendance struct {
	ID      uint `gorm:"primaryKey"`
	EventID uint `gorm:"not null;uniqueIndex:idx_event_user"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_event_user;index"`
	// Interested is kept for clients that may want to mark interest without joining.
	Interested *bool
	JoinedAt   time.Time `gorm:"<-:create;autoCreateTime"`

	Event Event     `gorm:"constraint:OnDelete:CASCADE"`
	User  auth.User `gorm:"constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "event_users"
}

// Attendee is a joined user as read back for listings and exports.
type Attendee struct {
	UserID    uint
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	JoinedAt  time.Time
}

func (a Attendee) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// ============================
// 🟡 Requests / responses

// Flag is a boolean that also accepts 0/1 and their string forms.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	switch strings.ToLower(raw) {
	case "true", "1":
		*f = true
	case "false", "0", "":
		*f = false
	default:
		return fmt.Errorf("invalid boolean %s", data)
	}
	return nil
}

type CreateEventRequest struct {
	Title        string `json:"title" binding:"required,max=32" example:"Go meetup"`
	Location     string `json:"location" binding:"required,max=32" example:"Hall A"`
	Schedule     string `json:"schedule" binding:"required" example:"2026-11-02 18:30:00"`
	LogoURL      string `json:"logo_url" binding:"max=128" example:"assets/logo.png"`
	Requirements string `json:"requirements" binding:"max=64" example:"Laptop"`
	Refreshment  Flag   `json:"refreshment" swaggertype:"boolean"`
	Contact      string `json:"contact" binding:"required,max=13" example:"+15550100"`
	ContactAlt   string `json:"contact_alt" binding:"max=12" example:"5550101"`
}

// EventJSON is the serialized event.
type EventJSON struct {
	ID           uint   `json:"_id" example:"1"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	Schedule     string `json:"schedule" example:"2026-11-02 18:30:00"`
	LogoURL      string `json:"logo_url"`
	Requirements string `json:"requirements"`
	Contact      string `json:"contact"`
	ContactAlt   string `json:"contact_alt"`
	Going        int64  `json:"going"`
}

// JSON renders e with its schedule shown in loc.
func (e Event) JSON(loc *time.Location) EventJSON {
	return EventJSON{
		ID:           e.ID,
		Title:        e.Title,
		Location:     e.Location,
		Schedule:     e.Schedule.In(loc).Format(ScheduleLayout),
		LogoURL:      e.LogoURL,
		Requirements: e.Requirements,
		Contact:      e.Contact,
		ContactAlt:   e.ContactAlt,
		Going:        e.Going,
	}
}

// Window selects events by calendar day relative to today.
type Window int

const (
	WindowPast   Window = 0
	WindowToday  Window = 1
	WindowFuture Window = 2
)

// ParseWindow accepts "0", "1" or "2".
func ParseWindow(raw string) (Window, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < int(WindowPast) || n > int(WindowFuture) {
		return 0, false
	}
	return Window(n), true
}

var _ json.Unmarshaler = (*Flag)(nil)
