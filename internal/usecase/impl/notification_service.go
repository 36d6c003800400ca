package impl

import (
	"context"
	"log/slog"
	"time"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/domain/service"
	"zara/internal/errors"
	"zara/internal/usecase"

	"github.com/google/uuid"
)

// defaultDedupeWindow is used when the configured lookback is not positive.
const defaultDedupeWindow = 5 * time.Minute

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	mailSender       service.MailSender // optional; nil disables e-mail escalation
	dedupeWindow     time.Duration
	logger           *slog.Logger
}

// NewNotificationService creates a new notification dispatcher instance.
// mailSender may be nil when e-mail escalation is not configured.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	mailSender service.MailSender,
	dedupeWindow time.Duration,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	if dedupeWindow <= 0 {
		dedupeWindow = defaultDedupeWindow
	}

	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailSender:       mailSender,
		dedupeWindow:     dedupeWindow,
		logger:           logger,
	}
}

// DispatchToRoles resolves the audience and creates one notification per
// recipient, suppressing any (user, type, message) already stored within the
// dedupe window. Per-recipient failures are logged and skipped so a single
// bad row never blocks the fan-out.
func (s *notificationService) DispatchToRoles(ctx context.Context, input usecase.DispatchInput) (int, error) {
	if input.Metadata == nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("metadata da notificação é obrigatório")
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = entity.ManagementRoles()
	}

	audience, err := s.userRepo.FindActiveByRoles(ctx, roles)
	if err != nil {
		return 0, errors.Wrap(err, "failed to resolve notification audience")
	}

	since := time.Now().Add(-s.dedupeWindow)
	created := 0

	for _, recipient := range audience {
		notification, err := entity.NewNotification(recipient.ID, input.Title, input.Message, input.Priority, input.Metadata)
		if err != nil {
			return created, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		duplicates, err := s.notificationRepo.CountRecentByContentHash(ctx, recipient.ID, notification.ContentHash, since)
		if err != nil {
			s.logger.Error("Notification dedupe lookback failed",
				slog.String("user_id", recipient.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if duplicates > 0 {
			s.logger.Debug("Suppressed duplicate notification",
				slog.String("user_id", recipient.ID.String()),
				slog.String("type", string(notification.Type)),
			)

			continue
		}

		if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
			s.logger.Error("Failed to store notification",
				slog.String("user_id", recipient.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		created++

		if notification.Priority == entity.PriorityHigh {
			s.escalateByMail(ctx, recipient, notification)
		}
	}

	return created, nil
}

// ListForUser retrieves a user's notifications, newest first.
func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, onlyUnread, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flips the read flag on one notification owned by the user.
func (s *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

// MarkAllRead flips the read flag on all of the user's unread notifications.
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications as read")
	}

	return updated, nil
}

// escalateByMail forwards a HIGH priority notification to the recipient's
// e-mail. Best effort: failures are logged, never surfaced.
func (s *notificationService) escalateByMail(ctx context.Context, recipient *entity.User, notification *entity.Notification) {
	if s.mailSender == nil || recipient.Email == "" {
		return
	}

	if err := s.mailSender.Send(ctx, recipient.Email, notification.Title, notification.Message); err != nil {
		s.logger.Error("Failed to escalate notification by e-mail",
			slog.String("user_id", recipient.ID.String()),
			slog.Any("error", err),
		)
	}
}
