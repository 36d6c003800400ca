package usecase

import (
	"context"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchInput describes one event to fan out to a role-based audience.
type DispatchInput struct {
	Roles    entity.Roles                // Audience; defaults to the management roles when empty.
	Title    string                      // Notification headline.
	Message  string                      // Full human-readable message.
	Priority entity.NotificationPriority // HIGH triggers e-mail escalation when configured.
	Metadata entity.NotificationMetadata // Validated tagged payload.
}

// NotificationUsecase is the notification dispatcher: it resolves the
// audience, suppresses duplicates within the lookback window and escalates
// high-priority events.
type NotificationUsecase interface {
	// DispatchToRoles creates one notification per qualifying active user,
	// skipping recipients that already received an identical
	// (user, type, message) within the dedupe window. Returns the number of
	// notifications actually stored.
	DispatchToRoles(ctx context.Context, input DispatchInput) (int, error)

	// ListForUser retrieves a user's notifications, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flips the read flag on one notification owned by the user.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead flips the read flag on all of the user's unread notifications.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
