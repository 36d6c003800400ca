package postgres

import (
	"context"
	"time"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// permissionRepository implements the repository.PermissionRepository interface using GORM.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{db: db}
}

// UpsertPermission creates or replaces the capability flags for a (user, machine) pair.
func (repo *permissionRepository) UpsertPermission(ctx context.Context, permission *entity.MachinePermission) error {
	permissionM := fromPermissionDomain(permission)
	if permissionM.ID == uuid.Nil {
		permissionM.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "machine_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"can_view":     permissionM.CanView,
				"can_operate":  permissionM.CanOperate,
				"can_maintain": permissionM.CanMaintain,
				"can_edit":     permissionM.CanEdit,
				"updated_at":   time.Now(),
			}),
		}).
		Create(permissionM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or machine reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert machine permission")
	}

	permission.ID = permissionM.ID
	permission.CreatedAt = permissionM.CreatedAt
	permission.UpdatedAt = permissionM.UpdatedAt

	return nil
}

// FindPermission retrieves the permission row for a (user, machine) pair.
func (repo *permissionRepository) FindPermission(ctx context.Context, userID, machineID uuid.UUID) (*entity.MachinePermission, error) {
	var permissionM model.MachinePermissionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("machine_id = ?", machineID).
		First(&permissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPermissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find machine permission")
	}

	return toPermissionDomain(&permissionM), nil
}

// DeletePermission removes the permission row for a (user, machine) pair.
func (repo *permissionRepository) DeletePermission(ctx context.Context, userID, machineID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("machine_id = ?", machineID).
		Delete(&model.MachinePermissionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete machine permission")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPermissionNotFound
	}

	return nil
}

// ListByUser retrieves all permission rows granted to a user.
func (repo *permissionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MachinePermission, error) {
	return repo.list(ctx, "user_id = ?", userID)
}

// ListByMachine retrieves all permission rows attached to a machine.
func (repo *permissionRepository) ListByMachine(ctx context.Context, machineID uuid.UUID) ([]*entity.MachinePermission, error) {
	return repo.list(ctx, "machine_id = ?", machineID)
}

func (repo *permissionRepository) list(ctx context.Context, cond string, id uuid.UUID) ([]*entity.MachinePermission, error) {
	var permissionModels []*model.MachinePermissionModel

	if err := repo.db.WithContext(ctx).
		Where(cond, id).
		Order("created_at ASC").
		Find(&permissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list machine permissions")
	}

	permissions := make([]*entity.MachinePermission, 0, len(permissionModels))
	for _, permissionM := range permissionModels {
		permissions = append(permissions, toPermissionDomain(permissionM))
	}

	return permissions, nil
}

// --- Mapper Functions ---

// toPermissionDomain converts a GORM MachinePermissionModel to a domain MachinePermission entity.
func toPermissionDomain(data *model.MachinePermissionModel) *entity.MachinePermission {
	if data == nil {
		return nil
	}

	return &entity.MachinePermission{
		ID:          data.ID,
		UserID:      data.UserID,
		MachineID:   data.MachineID,
		CanView:     data.CanView,
		CanOperate:  data.CanOperate,
		CanMaintain: data.CanMaintain,
		CanEdit:     data.CanEdit,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPermissionDomain converts a domain MachinePermission entity to a GORM MachinePermissionModel.
func fromPermissionDomain(data *entity.MachinePermission) *model.MachinePermissionModel {
	if data == nil {
		return nil
	}

	return &model.MachinePermissionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		MachineID:   data.MachineID,
		CanView:     data.CanView,
		CanOperate:  data.CanOperate,
		CanMaintain: data.CanMaintain,
		CanEdit:     data.CanEdit,
	}
}
