package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/alok-48/GuruMitra/internal/analyzer"
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/alok-48/GuruMitra/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMedicineIncomplete = errors.New("medicine name and times required")
	ErrMedicineNotFound   = errors.New("medicine not found")
)

type HealthService struct {
	medRepo *repository.MedicineRepository
	planner analyzer.AdherenceReminderPlanner
	logger  *zap.Logger
}

func NewHealthService(medRepo *repository.MedicineRepository, planner analyzer.AdherenceReminderPlanner, logger *zap.Logger) *HealthService {
	return &HealthService{
		medRepo: medRepo,
		planner: planner,
		logger:  logger,
	}
}

func (s *HealthService) Medicines(ctx context.Context, userID uuid.UUID) ([]dto.MedicineResponse, error) {
	meds, err := s.medRepo.ActiveMedicines(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.MedicineResponse, 0, len(meds))
	for _, med := range meds {
		r := dto.MedicineResponse{
			ID:        med.ID.String(),
			Name:      med.Name,
			Dosage:    med.Dosage,
			Frequency: med.Frequency,
			Times:     med.Times,
			StartDate: med.StartDate.Format("2006-01-02"),
		}
		if med.EndDate != nil {
			r.EndDate = med.EndDate.Format("2006-01-02")
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func (s *HealthService) AddMedicine(ctx context.Context, userID uuid.UUID, req *dto.AddMedicineRequest) (*dto.MedicineResponse, error) {
	if req.Name == "" || len(req.Times) == 0 {
		return nil, ErrMedicineIncomplete
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = "daily"
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, err
		}
		startDate = parsed
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	med := &models.Medicine{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: frequency,
		Times:     req.Times,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.medRepo.Create(ctx, med); err != nil {
		return nil, err
	}

	s.logger.Info("medicine added", zap.String("medicine_id", med.ID.String()))

	resp := &dto.MedicineResponse{
		ID:        med.ID.String(),
		Name:      med.Name,
		Dosage:    med.Dosage,
		Frequency: med.Frequency,
		Times:     med.Times,
		StartDate: med.StartDate.Format("2006-01-02"),
	}
	if med.EndDate != nil {
		resp.EndDate = med.EndDate.Format("2006-01-02")
	}
	return resp, nil
}

// LogIntake records one dose as taken or missed. TakenAt is only set for
// taken doses.
func (s *HealthService) LogIntake(ctx context.Context, userID uuid.UUID, req *dto.LogIntakeRequest) (string, error) {
	medicineID, err := uuid.Parse(req.MedicineID)
	if err != nil {
		return "", ErrMedicineNotFound
	}
	if _, err := s.medRepo.GetByID(ctx, medicineID, userID); err != nil {
		return "", ErrMedicineNotFound
	}

	status := models.IntakeStatus(req.Status)
	if status == "" {
		status = models.IntakeTaken
	}

	now := time.Now()
	log := &models.MedicineLog{
		ID:            uuid.New(),
		MedicineID:    medicineID,
		UserID:        userID,
		ScheduledTime: now,
		Status:        status,
		CreatedAt:     now,
	}
	if status == models.IntakeTaken {
		log.TakenAt = &now
	}
	if err := s.medRepo.CreateLog(ctx, log); err != nil {
		return "", err
	}

	if status == models.IntakeTaken {
		return "✅ दवाई ली गई", nil
	}
	return "⏭️ दवाई छोड़ दी गई", nil
}

// Alerts bundles adherence alerts, the dominant miss pattern and the
// adaptive reminder plan.
func (s *HealthService) Alerts(ctx context.Context, userID uuid.UUID) (*dto.HealthAlertsResponse, error) {
	alerts, err := s.planner.GenerateHealthAlerts(ctx, userID)
	if err != nil {
		return nil, err
	}

	pattern, err := s.planner.DetectMissedPattern(ctx, userID)
	if err != nil {
		return nil, err
	}

	adherence, err := s.planner.AdherenceScore(ctx, userID)
	if err != nil {
		return nil, err
	}

	reminders, err := s.planner.BuildAdaptiveReminders(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.HealthAlertsResponse{
		Alerts:            alerts,
		MissedPattern:     pattern,
		AdherencePercent:  int(math.Round(adherence * 100)),
		AdaptiveReminders: reminders,
	}, nil
}
