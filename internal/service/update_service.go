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
	ErrUpdateNotFound = errors.New("update not found")
	ErrEmptyText      = errors.New("text required")
)

const updatesPerPage = 10

// UpdateService serves government announcements with rule-based
// simplification into plain Hindi.
type UpdateService struct {
	updateRepo *repository.GovUpdateRepository
	simplifier analyzer.PolicySimplifier
	logger     *zap.Logger
}

func NewUpdateService(updateRepo *repository.GovUpdateRepository, simplifier analyzer.PolicySimplifier, logger *zap.Logger) *UpdateService {
	return &UpdateService{
		updateRepo: updateRepo,
		simplifier: simplifier,
		logger:     logger,
	}
}

// List returns one page of updates plus every update still awaiting
// user action.
func (s *UpdateService) List(ctx context.Context, category string, page int) (*dto.GovUpdateListResponse, error) {
	if page < 1 {
		page = 1
	}

	updates, err := s.updateRepo.List(ctx, category, updatesPerPage, (page-1)*updatesPerPage)
	if err != nil {
		return nil, err
	}

	pending, err := s.updateRepo.ActionRequired(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	resp := &dto.GovUpdateListResponse{
		Updates:        make([]dto.GovUpdateResponse, 0, len(updates)),
		ActionRequired: make([]dto.GovUpdateResponse, 0, len(pending)),
	}
	for _, u := range updates {
		resp.Updates = append(resp.Updates, toGovUpdateResponse(u, false))
	}
	for _, u := range pending {
		resp.ActionRequired = append(resp.ActionRequired, toGovUpdateResponse(u, false))
	}
	return resp, nil
}

// Get returns one update with a fresh simplification of its original
// text.
func (s *UpdateService) Get(ctx context.Context, id uuid.UUID) (*dto.GovUpdateDetailResponse, error) {
	update, err := s.updateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUpdateNotFound
	}

	return &dto.GovUpdateDetailResponse{
		Update:     toGovUpdateResponse(update, true),
		AIAnalysis: s.simplifier.Simplify(update.OriginalText, update.Category),
	}, nil
}

func (s *UpdateService) SimplifyText(req *dto.SimplifyRequest) (*dto.SimplifyResponse, error) {
	if req.Text == "" {
		return nil, ErrEmptyText
	}
	return &dto.SimplifyResponse{
		Result: s.simplifier.Simplify(req.Text, req.Category),
	}, nil
}

func toGovUpdateResponse(u *models.GovUpdate, withText bool) dto.GovUpdateResponse {
	resp := dto.GovUpdateResponse{
		ID:             u.ID.String(),
		Title:          u.Title,
		SimplifiedText: u.SimplifiedText,
		Category:       u.Category,
		ActionRequired: u.ActionRequired,
		SourceURL:      u.SourceURL,
		PublishedAt:    u.PublishedAt.Format("2006-01-02"),
	}
	if withText {
		resp.OriginalText = u.OriginalText
	}
	if u.ActionDeadline != nil {
		resp.ActionDeadline = u.ActionDeadline.Format("2006-01-02")
	}
	return resp
}
