package service

import (
	"context"
	"errors"
	"time"

	"github.com/alok-48/GuruMitra/internal/analyzer"
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/alok-48/GuruMitra/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyHelpRequest = errors.New("empty help request")
	ErrHelpNotFound     = errors.New("help request not found")
	ErrInvalidStatus    = errors.New("invalid status")
)

var helpResponseMessages = map[string]string{
	"critical": "🚨 आपातकालीन मदद तुरंत भेजी जा रही है!",
	"high":     "⚡ जल्द ही कोई आपकी मदद के लिए आएगा।",
	"normal":   "✅ आपका अनुरोध दर्ज हो गया है। जल्द संपर्क किया जाएगा।",
	"low":      "📝 आपका अनुरोध दर्ज हो गया है।",
}

type HelpService struct {
	helpRepo  *repository.HelpRepository
	userRepo  *repository.UserRepository
	notifRepo *repository.NotificationRepository
	intent    analyzer.IntentClassifier
	logger    *zap.Logger
}

func NewHelpService(helpRepo *repository.HelpRepository, userRepo *repository.UserRepository, notifRepo *repository.NotificationRepository, intent analyzer.IntentClassifier, logger *zap.Logger) *HelpService {
	return &HelpService{
		helpRepo:  helpRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		intent:    intent,
		logger:    logger,
	}
}

// Create classifies the request, stores it and, for critical or high
// urgency, assigns the best available volunteer in the user's district
// and notifies the family contact.
func (s *HelpService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateHelpRequest) (*dto.CreateHelpResponse, error) {
	if req.Description == "" && req.Category == "" {
		return nil, ErrEmptyHelpRequest
	}

	text := req.Description
	if text == "" {
		text = req.Category
	}
	classification := s.intent.Classify(text)

	category := req.Category
	if category == "" {
		category = classification.Category
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	userAge := 0
	if user.DateOfBirth != nil {
		userAge = int(time.Since(*user.DateOfBirth).Hours() / (365.25 * 24))
	}
	priorityScore := s.intent.PriorityScore(category, classification.Urgency, userAge)

	now := time.Now()
	help := &models.HelpRequest{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		Description: req.Description,
		Urgency:     classification.Urgency,
		Status:      models.HelpOpen,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.helpRepo.Create(ctx, help); err != nil {
		return nil, err
	}

	if classification.Urgency == "critical" || classification.Urgency == "high" {
		s.dispatchUrgent(ctx, user, help)
	}

	s.logger.Info("help request created",
		zap.String("request_id", help.ID.String()),
		zap.String("category", category),
		zap.String("urgency", classification.Urgency))

	message := helpResponseMessages[classification.Urgency]
	if message == "" {
		message = helpResponseMessages["normal"]
	}

	return &dto.CreateHelpResponse{
		Success: true,
		ID:      help.ID.String(),
		Classification: dto.HelpClassificationResponse{
			Category:      category,
			Urgency:       classification.Urgency,
			PriorityScore: priorityScore,
		},
		Message: message,
	}, nil
}

// dispatchUrgent assigns a volunteer and notifies the family contact.
// Neither step blocks the request; failures are only logged.
func (s *HelpService) dispatchUrgent(ctx context.Context, user *models.User, help *models.HelpRequest) {
	volunteer, err := s.helpRepo.BestAvailableVolunteer(ctx, user.District)
	if err == nil {
		if err := s.helpRepo.AssignVolunteer(ctx, help.ID, volunteer.UserID); err != nil {
			s.logger.Warn("volunteer assignment failed", zap.Error(err))
		} else {
			s.notify(ctx, volunteer.UserID, "🆘 नई मदद का अनुरोध",
				user.Name+" जी को "+help.Category+" में मदद चाहिए", models.NotificationSOS)
		}
	}

	if user.EmergencyContact != "" {
		s.notify(ctx, user.ID, "🔔 परिवार को सूचना भेजी गई",
			"आपकी आपातकालीन स्थिति की सूचना परिवार को भेज दी गई है", models.NotificationAlert)
	}
}

func (s *HelpService) notify(ctx context.Context, userID uuid.UUID, title, body string, kind models.NotificationType) {
	n := &models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		Type:      kind,
		CreatedAt: time.Now(),
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		s.logger.Warn("notification failed", zap.Error(err))
	}
}

func (s *HelpService) ListMine(ctx context.Context, userID uuid.UUID) ([]dto.HelpRequestResponse, error) {
	requests, err := s.helpRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.HelpRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, toHelpResponse(req))
	}
	return resp, nil
}

func (s *HelpService) Get(ctx context.Context, callerID, id uuid.UUID) (*dto.HelpRequestResponse, error) {
	req, err := s.helpRepo.GetByID(ctx, id, callerID)
	if err != nil {
		return nil, ErrHelpNotFound
	}
	resp := toHelpResponse(req)
	return &resp, nil
}

// UpdateStatus moves a request forward. Resolving credits the assigned
// volunteer.
func (s *HelpService) UpdateStatus(ctx context.Context, callerID, id uuid.UUID, status string) error {
	switch models.HelpStatus(status) {
	case models.HelpInProgress, models.HelpResolved, models.HelpClosed:
	default:
		return ErrInvalidStatus
	}

	req, err := s.helpRepo.GetByID(ctx, id, callerID)
	if err != nil {
		return ErrHelpNotFound
	}

	var resolvedAt *time.Time
	if models.HelpStatus(status) == models.HelpResolved {
		now := time.Now()
		resolvedAt = &now
	}

	if err := s.helpRepo.UpdateStatus(ctx, id, models.HelpStatus(status), resolvedAt); err != nil {
		return err
	}

	if resolvedAt != nil && req.AssignedVolunteerID != nil {
		if err := s.helpRepo.IncrementHelps(ctx, *req.AssignedVolunteerID); err != nil {
			s.logger.Warn("volunteer counter update failed", zap.Error(err))
		}
	}
	return nil
}

// SOS files a critical emergency request immediately, skipping
// classification.
func (s *HelpService) SOS(ctx context.Context, userID uuid.UUID, req *dto.SOSRequest) (*dto.CreateHelpResponse, error) {
	description := req.Description
	if description == "" {
		description = "SOS आपातकालीन मदद"
	}

	now := time.Now()
	help := &models.HelpRequest{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    "emergency",
		Description: description,
		Urgency:     "critical",
		Status:      models.HelpOpen,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.helpRepo.Create(ctx, help); err != nil {
		return nil, err
	}

	s.notify(ctx, userID, "🚨 SOS भेजा गया", "आपकी मदद के लिए सूचना भेज दी गई है", models.NotificationSOS)

	s.logger.Info("sos request created", zap.String("request_id", help.ID.String()))

	return &dto.CreateHelpResponse{
		Success: true,
		ID:      help.ID.String(),
		Classification: dto.HelpClassificationResponse{
			Category: "emergency",
			Urgency:  "critical",
		},
		Message: "🚨 SOS भेज दिया गया! मदद रास्ते में है।",
	}, nil
}

func toHelpResponse(req *models.HelpRequest) dto.HelpRequestResponse {
	resp := dto.HelpRequestResponse{
		ID:            req.ID.String(),
		Category:      req.Category,
		Description:   req.Description,
		Urgency:       req.Urgency,
		Status:        string(req.Status),
		VolunteerName: req.VolunteerName,
		Location:      req.Location,
		CreatedAt:     req.CreatedAt.Format(time.RFC3339),
	}
	if req.ResolvedAt != nil {
		resp.ResolvedAt = req.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}
