package postgres

import (
	"context"
	"encoding/json"
	"time"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a new notification with its metadata encoded as JSON.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM, err := fromNotificationDomain(notification)
	if err != nil {
		return errors.Wrap(err, "failed to encode notification metadata")
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid recipient reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// CountRecentByContentHash counts notifications for a user with the given
// content hash created at or after since.
func (repo *notificationRepository) CountRecentByContentHash(ctx context.Context, userID uuid.UUID, contentHash string, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID).
		Where("content_hash = ?", contentHash).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent notifications")
	}

	return count, nil
}

// ListByUser retrieves notifications for a user, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if onlyUnread {
		query = query.Where("read = ?", false)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notification, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode notification metadata")
		}

		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// MarkRead flips the read flag on a single notification owned by the user.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update("read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flips the read flag on every unread notification of the user.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID).
		Where("read = ?", false).
		Update("read", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notifications read")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain
// Notification entity, decoding the metadata variant tagged by Type.
func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	metadata, err := decodeMetadata(entity.NotificationType(data.Type), data.Metadata)
	if err != nil {
		return nil, err
	}

	return &entity.Notification{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        entity.NotificationType(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		Priority:    entity.NotificationPriority(data.Priority),
		Read:        data.Read,
		Metadata:    metadata,
		ContentHash: data.ContentHash,
		CreatedAt:   data.CreatedAt,
	}, nil
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	if data == nil {
		return nil, nil
	}

	var metadata []byte
	if data.Metadata != nil {
		encoded, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = encoded
	}

	return &model.NotificationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        string(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		Priority:    string(data.Priority),
		Read:        data.Read,
		Metadata:    metadata,
		ContentHash: data.ContentHash,
	}, nil
}

// decodeMetadata rebuilds the tagged metadata variant from its JSON encoding.
func decodeMetadata(notificationType entity.NotificationType, raw []byte) (entity.NotificationMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	switch notificationType {
	case entity.NotificationMachineStatus:
		var metadata entity.MachineStatusMetadata
		if err := json.Unmarshal(raw, &metadata); err != nil {
			return nil, err
		}

		return metadata, nil
	default:
		var metadata entity.OperationMetadata
		if err := json.Unmarshal(raw, &metadata); err != nil {
			return nil, err
		}
		metadata.Type = notificationType

		return metadata, nil
	}
}
