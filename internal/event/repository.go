package event

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Event
func (r *Repository) CreateEvent(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

// ===========================
// 🔍 Get Event By ID with its attendee count
func (r *Repository) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	var e Event
	if err := r.DB.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}

	count, err := r.CountAttendees(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Going = count
	return &e, nil
}

func (r *Repository) EventExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ===========================
// 📆 Events with schedule in [from, to). A zero bound is open.
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]Event, error) {
	query := r.DB.WithContext(ctx).Model(&Event{})
	if !from.IsZero() {
		query = query.Where("schedule >= ?", from.UTC())
	}
	if !to.IsZero() {
		query = query.Where("schedule < ?", to.UTC())
	}

	var events []Event
	if err := query.Order("schedule ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return events, nil
	}

	ids := make([]uint, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	var counts []struct {
		EventID uint
		Total   int64
	}
	err := r.DB.WithContext(ctx).Model(&Attendance{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", ids).
		Group("event_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byEvent := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byEvent[c.EventID] = c.Total
	}
	for i := range events {
		events[i].Going = byEvent[events[i].ID]
	}
	return events, nil
}

// ===========================
// 🙋 Attendance

// AddAttendee inserts the attendance row unless it exists. It reports whether a row was added.
func (r *Repository) AddAttendee(ctx context.Context, eventID, userID uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Omit("Event", "User").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&Attendance{EventID: eventID, UserID: userID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *Repository) CountAttendees(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Attendance{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

// Attendees lists the users who joined eventID in join order.
func (r *Repository) Attendees(ctx context.Context, eventID uint) ([]Attendee, error) {
	var out []Attendee
	err := r.DB.WithContext(ctx).
		Table("event_users eu").
		Select("u.id AS user_id, u.username, u.first_name, u.last_name, u.email, u.phone, eu.joined_at").
		Joins("JOIN users u ON u.id = eu.user_id").
		Where("eu.event_id = ?", eventID).
		Order("eu.joined_at ASC, eu.id ASC").
		Scan(&out).Error
	return out, err
}
