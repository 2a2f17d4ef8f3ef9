package service

import (
	"context"
	"time"

	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notificationsPerPage = 50

type NotificationService struct {
	notifRepo *repository.NotificationRepository
	logger    *zap.Logger
}

func NewNotificationService(notifRepo *repository.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifRepo: notifRepo,
		logger:    logger,
	}
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error) {
	notifications, err := s.notifRepo.ListByUserID(ctx, userID, notificationsPerPage)
	if err != nil {
		return nil, err
	}

	unread, err := s.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, dto.NotificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Body:      n.Body,
			Type:      string(n.Type),
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.notifRepo.MarkRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllRead(ctx, userID)
}
