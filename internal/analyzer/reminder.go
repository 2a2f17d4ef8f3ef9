package analyzer

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/google/uuid"
)

// MedicationSource is the read-only view of medication history the
// planner needs. It is implemented by the medicine repository.
type MedicationSource interface {
	// LogsSince returns all intake logs recorded after since.
	LogsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.MedicineLog, error)
	// MissedSince returns logs with status "missed" recorded after
	// since, most recent first. A limit of 0 means no limit.
	MissedSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]models.MedicineLog, error)
	// ActiveMedicines returns the user's active medicine schedule.
	ActiveMedicines(ctx context.Context, userID uuid.UUID) ([]models.Medicine, error)
}

type MissedPattern struct {
	Type       string `json:"type"`
	Hour       int    `json:"hour"`
	MissCount  int    `json:"missCount"`
	Suggestion string `json:"suggestion"`
}

type HealthAlert struct {
	Type             string `json:"type"`
	Severity         string `json:"severity"`
	Message          string `json:"message"`
	AdherencePercent int    `json:"adherencePercent,omitempty"`
	Escalate         bool   `json:"escalate,omitempty"`
}

// ReminderTiming is the adaptive schedule for a single dose.
type ReminderTiming struct {
	Time            string `json:"time"`
	ExtraReminders  int    `json:"extraReminders"`
	IntervalMinutes int    `json:"intervalMinutes"`
}

type ReminderPlan struct {
	MedicineID      uuid.UUID `json:"medicineId"`
	MedicineName    string    `json:"medicineName"`
	Dosage          string    `json:"dosage"`
	ScheduledTime   string    `json:"scheduledTime"`
	ReminderTime    string    `json:"reminderTime"`
	ExtraReminders  int       `json:"extraReminders"`
	IntervalMinutes int       `json:"intervalMinutes"`
}

// AdherenceReminderPlanner derives adherence scores, miss patterns and
// adaptive reminder timings from medication history.
type AdherenceReminderPlanner struct {
	source MedicationSource
}

func NewAdherenceReminderPlanner(source MedicationSource) AdherenceReminderPlanner {
	return AdherenceReminderPlanner{source: source}
}

// AdherenceScore is the taken/total ratio over the trailing 30 days.
// A user with no logged history scores a perfect 1 so new users are not
// penalized with aggressive reminders.
func (p AdherenceReminderPlanner) AdherenceScore(ctx context.Context, userID uuid.UUID) (float64, error) {
	since := time.Now().AddDate(0, 0, -30)
	logs, err := p.source.LogsSince(ctx, userID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to load medicine logs: %w", err)
	}
	if len(logs) == 0 {
		return 1, nil
	}

	taken := 0
	for _, log := range logs {
		if log.Status == models.IntakeTaken {
			taken++
		}
	}
	return float64(taken) / float64(len(logs)), nil
}

// DetectMissedPattern looks at up to the 20 most recent missed doses in
// the trailing 14 days and reports the hour of day where misses cluster.
// Fewer than 3 misses, or no hour with 3 misses, yields nil.
func (p AdherenceReminderPlanner) DetectMissedPattern(ctx context.Context, userID uuid.UUID) (*MissedPattern, error) {
	since := time.Now().AddDate(0, 0, -14)
	missed, err := p.source.MissedSince(ctx, userID, since, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to load missed doses: %w", err)
	}
	if len(missed) < 3 {
		return nil, nil
	}

	counts := make(map[int]int)
	bestHour, bestCount := 0, 0
	for _, log := range missed {
		hour := log.ScheduledTime.Hour()
		counts[hour]++
		if counts[hour] > bestCount {
			bestHour, bestCount = hour, counts[hour]
		}
	}

	if bestCount < 3 {
		return nil, nil
	}
	return &MissedPattern{
		Type:       "time_pattern",
		Hour:       bestHour,
		MissCount:  bestCount,
		Suggestion: fmt.Sprintf("%02d:00 बजे दवाई अक्सर छूट जाती है। क्या समय बदलना चाहेंगे?", bestHour),
	}, nil
}

// GenerateHealthAlerts emits a low-adherence alert below a 0.7 score
// and a family-escalation alert when 3 or more doses were missed in the
// trailing 3 days.
func (p AdherenceReminderPlanner) GenerateHealthAlerts(ctx context.Context, userID uuid.UUID) ([]HealthAlert, error) {
	alerts := []HealthAlert{}

	adherence, err := p.AdherenceScore(ctx, userID)
	if err != nil {
		return nil, err
	}
	if adherence < 0.7 {
		severity := "medium"
		if adherence < 0.5 {
			severity = "high"
		}
		alerts = append(alerts, HealthAlert{
			Type:             "low_adherence",
			Severity:         severity,
			Message:          "पिछले महीने कई दवाइयाँ छूट गई हैं। कृपया ध्यान दें।",
			AdherencePercent: int(math.Round(adherence * 100)),
		})
	}

	recentMissed, err := p.source.MissedSince(ctx, userID, time.Now().AddDate(0, 0, -3), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load missed doses: %w", err)
	}
	if len(recentMissed) >= 3 {
		alerts = append(alerts, HealthAlert{
			Type:     "consecutive_missed",
			Severity: "high",
			Message:  "पिछले 3 दिनों में कई दवाइयाँ छूटी हैं। परिवार को सूचित करें?",
			Escalate: true,
		})
	}

	return alerts, nil
}

// OptimalReminderTime widens the reminder lead time as adherence drops:
// 15 minutes at 0.8+, 30 below 0.8, 45 below 0.6. Low adherence also
// adds an extra repeat at a tighter interval.
func (p AdherenceReminderPlanner) OptimalReminderTime(ctx context.Context, userID uuid.UUID, scheduledTime string) (ReminderTiming, error) {
	adherence, err := p.AdherenceScore(ctx, userID)
	if err != nil {
		return ReminderTiming{}, err
	}
	return timingFor(adherence, scheduledTime), nil
}

// BuildAdaptiveReminders produces one plan per scheduled dose of every
// active medicine.
func (p AdherenceReminderPlanner) BuildAdaptiveReminders(ctx context.Context, userID uuid.UUID) ([]ReminderPlan, error) {
	adherence, err := p.AdherenceScore(ctx, userID)
	if err != nil {
		return nil, err
	}
	medicines, err := p.source.ActiveMedicines(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load medicines: %w", err)
	}

	plans := []ReminderPlan{}
	for _, med := range medicines {
		for _, scheduled := range med.Times {
			scheduled = strings.TrimSpace(scheduled)
			timing := timingFor(adherence, scheduled)
			plans = append(plans, ReminderPlan{
				MedicineID:      med.ID,
				MedicineName:    med.Name,
				Dosage:          med.Dosage,
				ScheduledTime:   scheduled,
				ReminderTime:    timing.Time,
				ExtraReminders:  timing.ExtraReminders,
				IntervalMinutes: timing.IntervalMinutes,
			})
		}
	}
	return plans, nil
}

func timingFor(adherence float64, scheduledTime string) ReminderTiming {
	hour, minute := parseClock(scheduledTime)

	leadMinutes := 15
	if adherence < 0.8 {
		leadMinutes = 30
	}
	if adherence < 0.6 {
		leadMinutes = 45
	}

	// The lead time is only subtracted within the hour, floored at :00.
	// A 00:10 dose with a 45-minute lead reminds at 00:00, it does not
	// roll back to 23:25.
	minute -= leadMinutes
	if minute < 0 {
		minute = 0
	}

	timing := ReminderTiming{
		Time:            fmt.Sprintf("%02d:%02d", hour, minute),
		ExtraReminders:  1,
		IntervalMinutes: 15,
	}
	if adherence < 0.7 {
		timing.ExtraReminders = 2
		timing.IntervalMinutes = 10
	}
	return timing
}

func parseClock(t string) (hour, minute int) {
	parts := strings.SplitN(strings.TrimSpace(t), ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}
