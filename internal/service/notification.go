package service

import (
	"context"

	"github.com/campushq/campushq-api/internal/core"
	"github.com/campushq/campushq-api/internal/domain/model"
)

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	Notifications core.NotificationRepository
}

// NotificationService manages tenant announcements.
type NotificationService struct {
	notifications core.NotificationRepository
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	return &NotificationService{notifications: opts.Notifications}
}

// Create publishes a notification.
func (s *NotificationService) Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.notifications.Create(ctx, req)
}

// GetByID retrieves a notification by ID.
func (s *NotificationService) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	return s.notifications.GetByID(ctx, id)
}

// ListFor returns the notifications visible to an audience: announcements
// addressed to everyone plus those addressed to the given group.
func (s *NotificationService) ListFor(ctx context.Context, orgID string, audience model.NotificationAudience) ([]model.Notification, error) {
	return s.notifications.List(ctx, orgID, audience)
}

// Update applies a partial update to a notification.
func (s *NotificationService) Update(ctx context.Context, id string, req *model.UpdateNotificationRequest) (*model.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.notifications.Update(ctx, id, req)
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.notifications.Delete(ctx, id)
}
