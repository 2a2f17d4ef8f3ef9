package models

import (
	"time"

	"github.com/google/uuid"
)

type GovUpdate struct {
	ID             uuid.UUID  `db:"id"`
	Title          string     `db:"title"`
	OriginalText   string     `db:"original_text"`
	SimplifiedText string     `db:"simplified_text"`
	Category       string     `db:"category"`
	ActionRequired bool       `db:"action_required"`
	ActionDeadline *time.Time `db:"action_deadline"`
	SourceURL      string     `db:"source_url"`
	IsVerified     bool       `db:"is_verified"`
	PublishedAt    time.Time  `db:"published_at"`
	CreatedAt      time.Time  `db:"created_at"`
}
