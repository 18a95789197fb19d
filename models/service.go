package models

import "time"

// Service is a bookable offering. Read-only from the booking core's
// perspective; duration and price are snapshotted into bookings at staging
// time so later edits here never alter existing appointments.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	PriceCents      int       `bson:"price_cents" json:"priceCents"`
	IsActive        bool      `bson:"is_active" json:"isActive"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
