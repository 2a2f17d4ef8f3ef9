package models

import (
	"time"

	"github.com/google/uuid"
)

type IntakeStatus string

const (
	IntakePending IntakeStatus = "pending"
	IntakeTaken   IntakeStatus = "taken"
	IntakeMissed  IntakeStatus = "missed"
)

type Medicine struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Name      string     `db:"name"`
	Dosage    string     `db:"dosage"`
	Frequency string     `db:"frequency"`
	Times     []string   `db:"times"` // clock times "HH:MM"
	StartDate time.Time  `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
}

type MedicineLog struct {
	ID            uuid.UUID    `db:"id"`
	MedicineID    uuid.UUID    `db:"medicine_id"`
	UserID        uuid.UUID    `db:"user_id"`
	ScheduledTime time.Time    `db:"scheduled_time"`
	TakenAt       *time.Time   `db:"taken_at"`
	Status        IntakeStatus `db:"status"`
	CreatedAt     time.Time    `db:"created_at"`
}
