package models

import (
	"time"

	"github.com/google/uuid"
)

type PensionStatus string

const (
	PensionActive  PensionStatus = "active"
	PensionDelayed PensionStatus = "delayed"
	PensionIssue   PensionStatus = "issue"
	PensionStopped PensionStatus = "stopped"
)

type PensionData struct {
	ID            uuid.UUID     `db:"id"`
	UserID        uuid.UUID     `db:"user_id"`
	PensionType   string        `db:"pension_type"`
	PPONumber     string        `db:"ppo_number"`
	BankName      string        `db:"bank_name"`
	BankAccount   string        `db:"bank_account"`
	MonthlyAmount float64       `db:"monthly_amount"`
	Status        PensionStatus `db:"status"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

type PensionPayment struct {
	ID           uuid.UUID `db:"id"`
	PensionID    uuid.UUID `db:"pension_id"`
	UserID       uuid.UUID `db:"user_id"`
	Amount       float64   `db:"amount"`
	CreditedDate time.Time `db:"credited_date"`
	MonthYear    string    `db:"month_year"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}
