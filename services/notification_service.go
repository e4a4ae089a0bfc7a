package services

import (
	"context"
	"fmt"
	"log/slog"

	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"
)

// NotificationEvent describes something a content owner should hear about.
type NotificationEvent struct {
	Type      models.NotificationType
	ActorID   uint
	ActorName string
	Recipient uint
	Target    models.TargetInfo
}

// Notifier delivers events at most once. It never returns an error: a failed
// insert is logged and dropped so the operation that raised the event stands.
type Notifier interface {
	Notify(ctx context.Context, event NotificationEvent)
}

type NotificationService interface {
	Notifier
	List(ctx context.Context, userID uint) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}

type notificationService struct {
	repo  repositories.NotificationRepository
	users repositories.UserRepository
	log   *slog.Logger
}

func NewNotificationService(repo repositories.NotificationRepository, users repositories.UserRepository, log *slog.Logger) NotificationService {
	return &notificationService{repo: repo, users: users, log: log}
}

func (s *notificationService) Notify(ctx context.Context, event NotificationEvent) {
	if event.Recipient == 0 || event.Recipient == event.ActorID {
		return
	}

	ctx = context.WithoutCancel(ctx)
	if event.ActorName == "" {
		actor, err := s.users.GetByID(ctx, event.ActorID)
		if err != nil {
			s.log.WarnContext(ctx, "notification dropped", "type", event.Type, "recipient", event.Recipient, "error", err)
			return
		}
		event.ActorName = actor.DisplayName
	}

	if err := s.repo.Create(ctx, buildNotification(event)); err != nil {
		s.log.WarnContext(ctx, "notification dropped",
			"type", event.Type,
			"recipient", event.Recipient,
			"target", event.Target.Target.String(),
			"error", err,
		)
	}
}

func buildNotification(event NotificationEvent) *models.Notification {
	var title string
	switch event.Type {
	case models.NotificationAnswer:
		title = fmt.Sprintf("%s menjawab pertanyaan Anda", event.ActorName)
	case models.NotificationComment:
		title = fmt.Sprintf("%s mengomentari %s Anda", event.ActorName, event.Target.Kind.Label())
	case models.NotificationVote:
		title = fmt.Sprintf("%s menyukai %s Anda", event.ActorName, event.Target.Kind.Label())
	default:
		title = event.ActorName
	}

	return &models.Notification{
		UserID:  event.Recipient,
		Type:    event.Type,
		Title:   title,
		Message: fmt.Sprintf(`"%s"`, event.Target.QuestionTitle),
		Link:    fmt.Sprintf("/questions/%d", event.Target.QuestionID),
	}
}

// List returns the user's 50 most recent notifications, newest first.
func (s *notificationService) List(ctx context.Context, userID uint) ([]models.Notification, error) {
	list, err := s.repo.ListByUser(ctx, userID, repositories.NotificationListLimit)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Notification{}
	}
	return list, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID uint) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}
