package models

import (
	"time"

	"github.com/google/uuid"
)

type HelpStatus string

const (
	HelpOpen       HelpStatus = "open"
	HelpAssigned   HelpStatus = "assigned"
	HelpInProgress HelpStatus = "in_progress"
	HelpResolved   HelpStatus = "resolved"
	HelpClosed     HelpStatus = "closed"
)

type HelpRequest struct {
	ID                  uuid.UUID  `db:"id"`
	UserID              uuid.UUID  `db:"user_id"`
	Category            string     `db:"category"`
	Description         string     `db:"description"`
	Urgency             string     `db:"urgency"`
	Status              HelpStatus `db:"status"`
	AssignedVolunteerID *uuid.UUID `db:"assigned_volunteer_id"`
	Location            string     `db:"location"`
	ResolvedAt          *time.Time `db:"resolved_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`

	// VolunteerName is joined from users when a volunteer is assigned.
	VolunteerName string `db:"-"`
}

type Volunteer struct {
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	District    string    `db:"district"`
	IsAvailable bool      `db:"is_available"`
	Rating      float64   `db:"rating"`
	TotalHelps  int       `db:"total_helps"`
}
