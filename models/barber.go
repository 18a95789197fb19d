package models

import "time"

// ScheduleRange is one weekly working-hours window for a barber.
// DayOfWeek follows time.Weekday numbering (0 = Sunday).
type ScheduleRange struct {
	DayOfWeek int    `bson:"day_of_week" json:"dayOfWeek"`
	StartTime string `bson:"start_time" json:"startTime"` // "HH:MM"
	EndTime   string `bson:"end_time" json:"endTime"`     // "HH:MM"
}

// Barber is a staff resource whose calendar is checked for conflicts.
// Read-only from the booking core's perspective.
type Barber struct {
	ID        string          `bson:"id" json:"id"`
	Name      string          `bson:"name" json:"name"`
	Phone     string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string          `bson:"email,omitempty" json:"email,omitempty"`
	Specialty string          `bson:"specialty,omitempty" json:"specialty,omitempty"`
	IsActive  bool            `bson:"is_active" json:"isActive"`
	Schedules []ScheduleRange `bson:"schedules,omitempty" json:"schedules,omitempty"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updatedAt"`
}
