package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/campushq/campushq-api/internal/domain/model"
	"github.com/campushq/campushq-api/internal/mocks"
)

func TestNotificationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateNotificationRequest) (*model.Notification, error) {
			return &model.Notification{ID: "n1", OrgID: req.OrgID, Title: req.Title, Audience: model.AudienceStudents}, nil
		})

	svc := NewNotificationService(NotificationServiceOptions{Notifications: repo})

	created, err := svc.Create(context.Background(), &model.CreateNotificationRequest{
		OrgID: "org-1", Title: "Exam week", Audience: "students",
	})

	require.NoError(t, err)
	assert.Equal(t, model.AudienceStudents, created.Audience)
}

func TestNotificationService_Create_InvalidAudience(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewNotificationService(NotificationServiceOptions{
		Notifications: mocks.NewMockNotificationRepository(ctrl),
	})

	_, err := svc.Create(context.Background(), &model.CreateNotificationRequest{
		OrgID: "org-1", Title: "Exam week", Audience: "parents",
	})

	assert.ErrorContains(t, err, "audience")
}

func TestNotificationService_Update_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewNotificationService(NotificationServiceOptions{
		Notifications: mocks.NewMockNotificationRepository(ctrl),
	})

	empty := ""
	_, err := svc.Update(context.Background(), "n1", &model.UpdateNotificationRequest{Title: &empty})
	assert.ErrorContains(t, err, "title cannot be empty")
}

func TestNotificationService_ListFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), "org-1", model.AudienceTeachers).
		Return([]model.Notification{{ID: "n1"}, {ID: "n2"}}, nil)

	svc := NewNotificationService(NotificationServiceOptions{Notifications: repo})

	list, err := svc.ListFor(context.Background(), "org-1", model.AudienceTeachers)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
