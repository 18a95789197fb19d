package models

import "time"

// Message roles as seen by the reasoning engine.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single turn in a conversation.
type Message struct {
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// PendingBooking is the staged, not-yet-durable booking proposal held in a
// conversation. At most one exists per conversation; re-staging overwrites it.
// Confirmed stays false for the whole lifetime of the record — its presence is
// what signals "awaiting confirmation".
type PendingBooking struct {
	ServiceID   string    `bson:"service_id" json:"serviceId"`
	ServiceName string    `bson:"service_name" json:"serviceName"`
	BarberID    string    `bson:"barber_id" json:"barberId"`
	BarberName  string    `bson:"barber_name" json:"barberName"`
	StartsAt    time.Time `bson:"starts_at" json:"startsAt"`
	PriceCents  int       `bson:"price_cents" json:"priceCents"`
	Confirmed   bool      `bson:"confirmed" json:"confirmed"`
}

// ConversationContext carries the booking-relevant state between turns.
type ConversationContext struct {
	PendingBooking             *PendingBooking `bson:"pending_booking,omitempty" json:"pendingBooking,omitempty"`
	LastMentionedAppointmentID string          `bson:"last_mentioned_appointment_id,omitempty" json:"lastMentionedAppointmentId,omitempty"`
}

// Conversation is the durable per-conversation record: full message history
// plus the staged-booking context.
type Conversation struct {
	ID        string              `bson:"id" json:"id"`
	UserID    string              `bson:"user_id" json:"userId"`
	Messages  []Message           `bson:"messages" json:"messages"`
	Context   ConversationContext `bson:"context" json:"context"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updatedAt"`
}
