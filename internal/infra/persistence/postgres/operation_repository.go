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
)

// operationRepository implements the repository.OperationRepository interface
// using GORM. The at-most-one-ACTIVE invariants rest on the two partial unique
// indexes declared on the operations table, so a concurrent insert loses the
// race with a duplicated-key error rather than a dirty read.
type operationRepository struct {
	db *gorm.DB
}

// NewOperationRepository is the constructor for operationRepository.
func NewOperationRepository(db *gorm.DB) repository.OperationRepository {
	return &operationRepository{db: db}
}

// CreateOperation persists a new ACTIVE operation.
func (repo *operationRepository) CreateOperation(ctx context.Context, operation *entity.Operation) error {
	operationM := fromOperationDomain(operation)

	if err := repo.db.WithContext(ctx).Create(operationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveOperationExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid machine or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create operation")
	}

	operation.ID = operationM.ID
	operation.CreatedAt = operationM.CreatedAt
	operation.UpdatedAt = operationM.UpdatedAt

	return nil
}

// FindOperationByID retrieves an operation by its unique ID.
func (repo *operationRepository) FindOperationByID(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	var operationM model.OperationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&operationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOperationNotFound
		}

		return nil, errors.Wrap(err, "failed to find operation by id")
	}

	return toOperationDomain(&operationM), nil
}

// FindActiveByMachine retrieves the single ACTIVE operation on a machine, or
// (nil, nil) when the machine has no open operation.
func (repo *operationRepository) FindActiveByMachine(ctx context.Context, machineID uuid.UUID) (*entity.Operation, error) {
	return repo.findActive(ctx, "machine_id = ?", machineID)
}

// FindActiveByUser retrieves the single ACTIVE operation held by a user, or
// (nil, nil) when the user has no open operation.
func (repo *operationRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Operation, error) {
	return repo.findActive(ctx, "user_id = ?", userID)
}

func (repo *operationRepository) findActive(ctx context.Context, cond string, id uuid.UUID) (*entity.Operation, error) {
	var operationM model.OperationModel

	if err := repo.db.WithContext(ctx).
		Where(cond, id).
		Where("status = ?", entity.OperationActive.String()).
		First(&operationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find active operation")
	}

	return toOperationDomain(&operationM), nil
}

// ListActive retrieves all ACTIVE operations, oldest first.
func (repo *operationRepository) ListActive(ctx context.Context) ([]*entity.Operation, error) {
	var operationModels []*model.OperationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.OperationActive.String()).
		Order("start_time ASC").
		Find(&operationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active operations")
	}

	return toOperationDomainSlice(operationModels), nil
}

// ListActiveOlderThan retrieves ACTIVE operations with a start time before the cutoff.
func (repo *operationRepository) ListActiveOlderThan(ctx context.Context, cutoff time.Time) ([]*entity.Operation, error) {
	var operationModels []*model.OperationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.OperationActive.String()).
		Where("start_time < ?", cutoff).
		Order("start_time ASC").
		Find(&operationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stale active operations")
	}

	return toOperationDomainSlice(operationModels), nil
}

// CloseOperation transitions an ACTIVE operation to a terminal status. The
// update is guarded on status = ACTIVE; zero rows affected means another
// writer closed the operation first.
func (repo *operationRepository) CloseOperation(ctx context.Context, id uuid.UUID, status entity.OperationStatus, endTime time.Time, notes string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OperationModel{}).
		Where("id = ?", id).
		Where("status = ?", entity.OperationActive.String()).
		Updates(map[string]any{
			"status":   status.String(),
			"end_time": endTime,
			"notes":    notes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to close operation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOperationNotActive
	}

	return nil
}

// --- Mapper Functions ---

// toOperationDomain converts a GORM OperationModel to a domain Operation entity.
func toOperationDomain(data *model.OperationModel) *entity.Operation {
	if data == nil {
		return nil
	}

	return &entity.Operation{
		ID:        data.ID,
		MachineID: data.MachineID,
		UserID:    data.UserID,
		Status:    entity.OperationStatus(data.Status),
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toOperationDomainSlice(models []*model.OperationModel) []*entity.Operation {
	operations := make([]*entity.Operation, 0, len(models))
	for _, operationM := range models {
		operations = append(operations, toOperationDomain(operationM))
	}

	return operations
}

// fromOperationDomain converts a domain Operation entity to a GORM OperationModel for persistence.
func fromOperationDomain(data *entity.Operation) *model.OperationModel {
	if data == nil {
		return nil
	}

	return &model.OperationModel{
		ID:        data.ID,
		MachineID: data.MachineID,
		UserID:    data.UserID,
		Status:    data.Status.String(),
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Notes:     data.Notes,
	}
}
