package postgres

import (
	"context"

	"zara/internal/domain/entity"
	domainerrors "zara/internal/domain/errors"
	"zara/internal/domain/repository"
	"zara/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// machineRepository implements the repository.MachineRepository interface using GORM.
type machineRepository struct {
	db *gorm.DB
}

// NewMachineRepository is the constructor for machineRepository.
func NewMachineRepository(db *gorm.DB) repository.MachineRepository {
	return &machineRepository{db: db}
}

// CreateMachine persists a new machine.
func (repo *machineRepository) CreateMachine(ctx context.Context, machine *entity.Machine) error {
	machineM := fromMachineDomain(machine)

	if err := repo.db.WithContext(ctx).Create(machineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrMachineCodeTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required machine information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create machine")
	}

	machine.ID = machineM.ID
	machine.CreatedAt = machineM.CreatedAt
	machine.UpdatedAt = machineM.UpdatedAt

	return nil
}

// FindMachineByID retrieves a machine by its unique ID.
func (repo *machineRepository) FindMachineByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error) {
	var machineM model.MachineModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&machineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMachineNotFound
		}

		return nil, errors.Wrap(err, "failed to find machine by id")
	}

	return toMachineDomain(&machineM), nil
}

// FindMachineByCode retrieves a machine by its floor code.
func (repo *machineRepository) FindMachineByCode(ctx context.Context, code string) (*entity.Machine, error) {
	var machineM model.MachineModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&machineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMachineNotFound
		}

		return nil, errors.Wrap(err, "failed to find machine by code")
	}

	return toMachineDomain(&machineM), nil
}

// ListMachines retrieves machines ordered by code, optionally only active ones.
func (repo *machineRepository) ListMachines(ctx context.Context, onlyActive bool) ([]*entity.Machine, error) {
	var machineModels []*model.MachineModel

	query := repo.db.WithContext(ctx).Order("code ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&machineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list machines")
	}

	machines := make([]*entity.Machine, 0, len(machineModels))
	for _, machineM := range machineModels {
		machines = append(machines, toMachineDomain(machineM))
	}

	return machines, nil
}

// UpdateMachineStatus sets the machine status.
func (repo *machineRepository) UpdateMachineStatus(ctx context.Context, id uuid.UUID, status entity.MachineStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MachineModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update machine status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	return nil
}

// UpdateProductionSpeed sets the nominal production speed in pieces per minute.
func (repo *machineRepository) UpdateProductionSpeed(ctx context.Context, id uuid.UUID, speed float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MachineModel{}).
		Where("id = ?", id).
		Update("production_speed", speed)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update production speed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	return nil
}

// DeactivateMachine soft-deletes a machine; records are never hard-deleted.
func (repo *machineRepository) DeactivateMachine(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MachineModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate machine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMachineDomain converts a GORM MachineModel to a domain Machine entity.
func toMachineDomain(data *model.MachineModel) *entity.Machine {
	if data == nil {
		return nil
	}

	return &entity.Machine{
		ID:              data.ID,
		Code:            data.Code,
		Name:            data.Name,
		Status:          entity.MachineStatus(data.Status),
		ProductionSpeed: data.ProductionSpeed,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromMachineDomain converts a domain Machine entity to a GORM MachineModel for persistence.
func fromMachineDomain(data *entity.Machine) *model.MachineModel {
	if data == nil {
		return nil
	}

	return &model.MachineModel{
		ID:              data.ID,
		Code:            data.Code,
		Name:            data.Name,
		Status:          data.Status.String(),
		ProductionSpeed: data.ProductionSpeed,
		IsActive:        data.IsActive,
	}
}
