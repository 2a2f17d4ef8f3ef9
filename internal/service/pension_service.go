package service

import (
	"context"
	"time"

	"github.com/alok-48/GuruMitra/internal/analyzer"
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/alok-48/GuruMitra/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const paymentsPerPage = 12

var pensionStatusText = map[models.PensionStatus]string{
	models.PensionActive:  "✅ पेंशन सामान्य रूप से आ रही है",
	models.PensionDelayed: "⏳ पेंशन में देरी हो रही है",
	models.PensionIssue:   "⚠️ पेंशन में कोई समस्या है",
	models.PensionStopped: "🚫 पेंशन रुकी हुई है",
}

type PensionService struct {
	pensionRepo *repository.PensionRepository
	helpRepo    *repository.HelpRepository
	fraud       analyzer.FraudAnalyzer
	intent      analyzer.IntentClassifier
	logger      *zap.Logger
}

func NewPensionService(pensionRepo *repository.PensionRepository, helpRepo *repository.HelpRepository, fraud analyzer.FraudAnalyzer, intent analyzer.IntentClassifier, logger *zap.Logger) *PensionService {
	return &PensionService{
		pensionRepo: pensionRepo,
		helpRepo:    helpRepo,
		fraud:       fraud,
		intent:      intent,
		logger:      logger,
	}
}

// Overview returns the pension record, recent payments and the anomaly
// analysis over them.
func (s *PensionService) Overview(ctx context.Context, userID uuid.UUID) (*dto.PensionOverviewResponse, error) {
	pension, err := s.pensionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return &dto.PensionOverviewResponse{
			Analysis: analyzer.PensionAnalysis{IsNormal: true},
			Message:  "पेंशन जानकारी अभी दर्ज नहीं है",
		}, nil
	}

	payments, err := s.pensionRepo.RecentPayments(ctx, userID, paymentsPerPage)
	if err != nil {
		return nil, err
	}

	analysis := s.fraud.AnalyzePensionPattern(userID, payments)

	statusText := pensionStatusText[pension.Status]
	if statusText == "" {
		statusText = string(pension.Status)
	}

	resp := &dto.PensionOverviewResponse{
		Pension: &dto.PensionResponse{
			ID:            pension.ID.String(),
			PensionType:   pension.PensionType,
			PPONumber:     pension.PPONumber,
			BankName:      pension.BankName,
			MonthlyAmount: pension.MonthlyAmount,
			Status:        string(pension.Status),
			StatusText:    statusText,
		},
		Payments: make([]dto.PaymentResponse, 0, len(payments)),
		Analysis: analysis,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(p))
	}
	return resp, nil
}

func (s *PensionService) PaymentHistory(ctx context.Context, userID uuid.UUID, page int) (*dto.PaymentHistoryResponse, error) {
	if page < 1 {
		page = 1
	}

	payments, err := s.pensionRepo.PaymentsPage(ctx, userID, paymentsPerPage, (page-1)*paymentsPerPage)
	if err != nil {
		return nil, err
	}

	total, err := s.pensionRepo.CountPayments(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PaymentHistoryResponse{
		Payments: make([]dto.PaymentResponse, 0, len(payments)),
		Total:    total,
		Page:     page,
		Pages:    (total + paymentsPerPage - 1) / paymentsPerPage,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(p))
	}
	return resp, nil
}

// CheckFraud runs a suspicious message through the scam signatures.
func (s *PensionService) CheckFraud(req *dto.FraudCheckRequest) analyzer.MessageAnalysis {
	return s.fraud.AnalyzeMessage(req.Message)
}

// BankHelp files a bank-category help request on the user's behalf.
func (s *PensionService) BankHelp(ctx context.Context, userID uuid.UUID, req *dto.BankHelpRequest) (*dto.CreateHelpResponse, error) {
	description := req.Description
	if description == "" {
		description = "बैंक संबंधी मदद चाहिए"
	}

	classification := s.intent.Classify(description)

	now := time.Now()
	help := &models.HelpRequest{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    "bank",
		Description: description,
		Urgency:     classification.Urgency,
		Status:      models.HelpOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.helpRepo.Create(ctx, help); err != nil {
		return nil, err
	}

	s.logger.Info("bank help request created", zap.String("request_id", help.ID.String()))

	return &dto.CreateHelpResponse{
		Success: true,
		ID:      help.ID.String(),
		Classification: dto.HelpClassificationResponse{
			Category: help.Category,
			Urgency:  help.Urgency,
		},
		Message: "बैंक मदद का अनुरोध भेज दिया गया है। जल्द ही कोई संपर्क करेगा।",
	}, nil
}

func toPaymentResponse(p models.PensionPayment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:           p.ID.String(),
		Amount:       p.Amount,
		CreditedDate: p.CreditedDate.Format("2006-01-02"),
		MonthYear:    p.MonthYear,
		Status:       p.Status,
	}
}
