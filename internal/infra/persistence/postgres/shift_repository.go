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

// shiftRepository implements the repository.ShiftRepository interface using GORM.
type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository is the constructor for shiftRepository.
func NewShiftRepository(db *gorm.DB) repository.ShiftRepository {
	return &shiftRepository{db: db}
}

// RaiseProduction lazily creates the aggregate row for the window and raises
// TotalProduction to at least total. GREATEST keeps the write monotonic, so
// racing accruals for the same window can never lower the stored value.
func (repo *shiftRepository) RaiseProduction(ctx context.Context, machineID uuid.UUID, window entity.ShiftWindow, total int, efficiency float64) error {
	shiftM := &model.ShiftDataModel{
		ID:              uuid.New(),
		MachineID:       machineID,
		ShiftDate:       window.Date,
		ShiftType:       window.Type.String(),
		TotalProduction: total,
		Efficiency:      efficiency,
		StartTime:       window.Start,
		EndTime:         window.End,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "machine_id"}, {Name: "shift_date"}, {Name: "shift_type"}},
			DoUpdates: clause.Assignments(map[string]any{
				"total_production": gorm.Expr("GREATEST(shift_data.total_production, ?)", total),
				"efficiency":       gorm.Expr("CASE WHEN shift_data.total_production < ? THEN ? ELSE shift_data.efficiency END", total, efficiency),
				"updated_at":       time.Now(),
			}),
		}).
		Create(shiftM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid machine reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to raise shift production")
	}

	return nil
}

// FindShiftData retrieves one aggregate by its (machine, date, type) key.
func (repo *shiftRepository) FindShiftData(ctx context.Context, machineID uuid.UUID, date time.Time, shiftType entity.ShiftType) (*entity.ShiftData, error) {
	var shiftM model.ShiftDataModel

	if err := repo.db.WithContext(ctx).
		Where("machine_id = ?", machineID).
		Where("shift_date = ?", date.Format("2006-01-02")).
		Where("shift_type = ?", shiftType.String()).
		First(&shiftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShiftDataNotFound
		}

		return nil, errors.Wrap(err, "failed to find shift data")
	}

	return toShiftDomain(&shiftM), nil
}

// ListShiftDataByMachine retrieves aggregates for a machine, newest first.
func (repo *shiftRepository) ListShiftDataByMachine(ctx context.Context, machineID uuid.UUID, limit, offset int) ([]*entity.ShiftData, error) {
	var shiftModels []*model.ShiftDataModel

	query := repo.db.WithContext(ctx).
		Where("machine_id = ?", machineID).
		Order("shift_date DESC, shift_type DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&shiftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shift data by machine")
	}

	records := make([]*entity.ShiftData, 0, len(shiftModels))
	for _, shiftM := range shiftModels {
		records = append(records, toShiftDomain(shiftM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toShiftDomain converts a GORM ShiftDataModel to a domain ShiftData entity.
func toShiftDomain(data *model.ShiftDataModel) *entity.ShiftData {
	if data == nil {
		return nil
	}

	return &entity.ShiftData{
		ID:              data.ID,
		MachineID:       data.MachineID,
		ShiftDate:       data.ShiftDate,
		ShiftType:       entity.ShiftType(data.ShiftType),
		TotalProduction: data.TotalProduction,
		Efficiency:      data.Efficiency,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
