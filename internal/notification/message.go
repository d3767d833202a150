package notification

import "time"

// Domain event types published to the bus.
const (
	TypeUserRegistered    = "user.registered"
	TypeAdminPromoted     = "admin.promoted"
	TypeEventCreated      = "event.created"
	TypeEventJoined       = "event.joined"
	TypeFeedbackSubmitted = "feedback.submitted"
)

// Message is the JSON envelope written to the topic.
type Message struct {
	Type       string                 `json:"type"`
	ActorID    uint                   `json:"actor_id,omitempty"`
	UserID     uint                   `json:"user_id,omitempty"`
	EventID    uint                   `json:"event_id,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Key partitions messages so that everything about one event (or user) stays ordered.
func (m Message) Key() string {
	switch {
	case m.EventID != 0:
		return "event-" + uitoa(m.EventID)
	case m.UserID != 0:
		return "user-" + uitoa(m.UserID)
	default:
		return m.Type
	}
}
