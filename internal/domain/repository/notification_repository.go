package repository

import (
	"context"
	"errors"
	"time"

	"zara/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// CountRecentByContentHash counts notifications for a user with the given
	// content hash created at or after since. The dispatcher uses this
	// lookback to suppress duplicates.
	CountRecentByContentHash(ctx context.Context, userID uuid.UUID, contentHash string, since time.Time) (int64, error)

	// ListByUser retrieves notifications for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flips the read flag on a single notification owned by the user.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead flips the read flag on every unread notification of the user.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
