package models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	Title      string     `db:"title"`
	Category   string     `db:"category"`
	FilePath   string     `db:"file_path"`
	FileType   string     `db:"file_type"`
	FileSize   int64      `db:"file_size"`
	OCRText    string     `db:"ocr_text"`
	ExpiryDate *time.Time `db:"expiry_date"`
	Tags       []string   `db:"tags"`
	IsVerified bool       `db:"is_verified"`
	CreatedAt  time.Time  `db:"created_at"`
}
