package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleRetiree   UserRole = "retiree"
	RoleVolunteer UserRole = "volunteer"
	RoleFamily    UserRole = "family"
)

type User struct {
	ID               uuid.UUID  `db:"id"`
	Phone            string     `db:"phone"`
	Name             string     `db:"name"`
	Role             UserRole   `db:"role"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Language         string     `db:"language"`
	District         string     `db:"district"`
	State            string     `db:"state"`
	EmergencyContact string     `db:"emergency_contact"`
	IsActive         bool       `db:"is_active"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// OTPCode stores a hashed one-time login code for a phone number.
type OTPCode struct {
	ID        uuid.UUID `db:"id"`
	Phone     string    `db:"phone"`
	CodeHash  string    `db:"code_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
	CreatedAt time.Time `db:"created_at"`
}
