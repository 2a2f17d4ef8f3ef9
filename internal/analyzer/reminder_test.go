package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMedicationSource struct {
	logs      []models.MedicineLog
	missed    []models.MedicineLog
	medicines []models.Medicine
	err       error
}

func (f *fakeMedicationSource) LogsSince(_ context.Context, _ uuid.UUID, _ time.Time) ([]models.MedicineLog, error) {
	return f.logs, f.err
}

func (f *fakeMedicationSource) MissedSince(_ context.Context, _ uuid.UUID, _ time.Time, limit int) ([]models.MedicineLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.missed) > limit {
		return f.missed[:limit], nil
	}
	return f.missed, nil
}

func (f *fakeMedicationSource) ActiveMedicines(_ context.Context, _ uuid.UUID) ([]models.Medicine, error) {
	return f.medicines, f.err
}

func logsWith(taken, missed int) []models.MedicineLog {
	var logs []models.MedicineLog
	for i := 0; i < taken; i++ {
		logs = append(logs, models.MedicineLog{Status: models.IntakeTaken})
	}
	for i := 0; i < missed; i++ {
		logs = append(logs, models.MedicineLog{Status: models.IntakeMissed})
	}
	return logs
}

func missedAt(hours ...int) []models.MedicineLog {
	var logs []models.MedicineLog
	for _, h := range hours {
		logs = append(logs, models.MedicineLog{
			Status:        models.IntakeMissed,
			ScheduledTime: time.Date(2024, time.June, 1, h, 0, 0, 0, time.UTC),
		})
	}
	return logs
}

func TestAdherenceScore(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("ratio of taken to total", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{logs: logsWith(6, 4)})
		score, err := p.AdherenceScore(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0.6, score)
	})

	t.Run("no history scores perfect", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{})
		score, err := p.AdherenceScore(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1.0, score)
	})

	t.Run("source error propagates", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{err: errors.New("query failed")})
		_, err := p.AdherenceScore(ctx, userID)
		assert.Error(t, err)
	})
}

func TestDetectMissedPattern(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("fewer than three misses yields none", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{missed: missedAt(8, 8)})
		pattern, err := p.DetectMissedPattern(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, pattern)
	})

	t.Run("three misses at the same hour", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{missed: missedAt(8, 8, 8, 20)})
		pattern, err := p.DetectMissedPattern(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, pattern)
		assert.Equal(t, "time_pattern", pattern.Type)
		assert.Equal(t, 8, pattern.Hour)
		assert.Equal(t, 3, pattern.MissCount)
		assert.Contains(t, pattern.Suggestion, "08:00")
	})

	t.Run("spread misses with no dominant hour yields none", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{missed: missedAt(8, 8, 13, 20)})
		pattern, err := p.DetectMissedPattern(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, pattern)
	})
}

func TestGenerateHealthAlerts(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("good adherence produces no alerts", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{logs: logsWith(9, 1)})
		alerts, err := p.GenerateHealthAlerts(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("low adherence below 0.7 is medium severity", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{logs: logsWith(6, 4)})
		alerts, err := p.GenerateHealthAlerts(ctx, userID)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "low_adherence", alerts[0].Type)
		assert.Equal(t, "medium", alerts[0].Severity)
		assert.Equal(t, 60, alerts[0].AdherencePercent)
	})

	t.Run("adherence below 0.5 is high severity", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{logs: logsWith(4, 6)})
		alerts, err := p.GenerateHealthAlerts(ctx, userID)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "high", alerts[0].Severity)
	})

	t.Run("three recent misses escalate to family", func(t *testing.T) {
		p := NewAdherenceReminderPlanner(&fakeMedicationSource{
			logs:   logsWith(9, 1),
			missed: missedAt(8, 13, 20),
		})
		alerts, err := p.GenerateHealthAlerts(ctx, userID)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "consecutive_missed", alerts[0].Type)
		assert.Equal(t, "high", alerts[0].Severity)
		assert.True(t, alerts[0].Escalate)
	})
}

func TestOptimalReminderTime(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name         string
		logs         []models.MedicineLog
		scheduled    string
		wantTime     string
		wantExtra    int
		wantInterval int
	}{
		{
			name:         "good adherence gets 15 minute lead",
			logs:         nil, // no history -> score 1
			scheduled:    "09:30",
			wantTime:     "09:15",
			wantExtra:    1,
			wantInterval: 15,
		},
		{
			name:         "adherence below 0.8 widens to 30 minutes",
			logs:         logsWith(3, 1),
			scheduled:    "09:30",
			wantTime:     "09:00",
			wantExtra:    1,
			wantInterval: 15,
		},
		{
			name:         "adherence below 0.6 widens to 45 minutes with tighter repeats",
			logs:         logsWith(2, 2),
			scheduled:    "09:50",
			wantTime:     "09:05",
			wantExtra:    2,
			wantInterval: 10,
		},
		{
			name:         "lead time clamps at the top of the hour",
			logs:         logsWith(2, 2),
			scheduled:    "00:10",
			wantTime:     "00:00",
			wantExtra:    2,
			wantInterval: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAdherenceReminderPlanner(&fakeMedicationSource{logs: tt.logs})
			timing, err := p.OptimalReminderTime(ctx, userID, tt.scheduled)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTime, timing.Time)
			assert.Equal(t, tt.wantExtra, timing.ExtraReminders)
			assert.Equal(t, tt.wantInterval, timing.IntervalMinutes)
		})
	}
}

func TestBuildAdaptiveReminders(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	medID := uuid.New()

	p := NewAdherenceReminderPlanner(&fakeMedicationSource{
		medicines: []models.Medicine{
			{ID: medID, Name: "Metformin", Dosage: "500mg", Times: []string{"08:30", " 20:30"}},
		},
	})

	plans, err := p.BuildAdaptiveReminders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, medID, plans[0].MedicineID)
	assert.Equal(t, "Metformin", plans[0].MedicineName)
	assert.Equal(t, "500mg", plans[0].Dosage)
	assert.Equal(t, "08:30", plans[0].ScheduledTime)
	assert.Equal(t, "08:15", plans[0].ReminderTime)

	// times are trimmed before parsing
	assert.Equal(t, "20:30", plans[1].ScheduledTime)
	assert.Equal(t, "20:15", plans[1].ReminderTime)
}
