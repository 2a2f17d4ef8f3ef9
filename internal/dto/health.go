package dto

import "github.com/alok-48/GuruMitra/internal/analyzer"

type AddMedicineRequest struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

type MedicineResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage,omitempty"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
}

type LogIntakeRequest struct {
	MedicineID string `json:"medicine_id"`
	Status     string `json:"status"`
}

type HealthAlertsResponse struct {
	Alerts            []analyzer.HealthAlert  `json:"alerts"`
	MissedPattern     *analyzer.MissedPattern `json:"missed_pattern,omitempty"`
	AdherencePercent  int                     `json:"adherence_percent"`
	AdaptiveReminders []analyzer.ReminderPlan `json:"adaptive_reminders"`
}
