package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"genturix/internal/domain/hr"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
	"genturix/internal/shared/errors"
)

type AttendanceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AttendanceMapper
}

func NewAttendanceRepository(database *gorm.DB) hr.AttendanceRepository {
	return &AttendanceRepositoryImpl{
		db:     database,
		mapper: mappers.NewAttendanceMapper(),
	}
}

func (r *AttendanceRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, a *hr.Attendance) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map attendance to model: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set attendance ID: %w", err)
	}
	return nil
}

func (r *AttendanceRepositoryImpl) GetOpenByUser(ctx context.Context, userID uint) (*hr.Attendance, error) {
	var model models.AttendanceModel
	err := r.conn(ctx).
		Where("user_id = ? AND clock_out_at IS NULL", userID).
		Order("clock_in_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, hr.ErrNotClockedIn
		}
		return nil, fmt.Errorf("failed to get open attendance: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// CloseOpenByUser clocks out with one conditional update on the open record.
// Two concurrent clock-outs cannot both succeed.
func (r *AttendanceRepositoryImpl) CloseOpenByUser(ctx context.Context, userID uint, clockOutAt time.Time) error {
	result := r.conn(ctx).
		Model(&models.AttendanceModel{}).
		Where("user_id = ? AND clock_out_at IS NULL", userID).
		Update("clock_out_at", clockOutAt.UnixMilli())
	if result.Error != nil {
		return fmt.Errorf("failed to clock out: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return hr.ErrNotClockedIn
	}
	return nil
}

func (r *AttendanceRepositoryImpl) ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*hr.Attendance, int64, error) {
	query := r.conn(ctx).Model(&models.AttendanceModel{}).Where("condominium_id = ?", condominiumID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	var modelList []*models.AttendanceModel
	offset := (page - 1) * pageSize
	if err := query.Order("clock_in_at DESC").Limit(pageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}

	records := make([]*hr.Attendance, 0, len(modelList))
	for _, m := range modelList {
		a, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map attendance model: %w", err)
		}
		records = append(records, a)
	}
	return records, total, nil
}

type AbsenceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AbsenceMapper
}

func NewAbsenceRepository(database *gorm.DB) hr.AbsenceRepository {
	return &AbsenceRepositoryImpl{
		db:     database,
		mapper: mappers.NewAbsenceMapper(),
	}
}

func (r *AbsenceRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *AbsenceRepositoryImpl) Create(ctx context.Context, req *hr.AbsenceRequest) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return fmt.Errorf("failed to map absence request to model: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create absence request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set absence request ID: %w", err)
	}
	return nil
}

func (r *AbsenceRepositoryImpl) GetByID(ctx context.Context, id uint) (*hr.AbsenceRequest, error) {
	var model models.AbsenceRequestModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get absence request by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AbsenceRepositoryImpl) GetByUUID(ctx context.Context, uid string) (*hr.AbsenceRequest, error) {
	var model models.AbsenceRequestModel
	if err := r.conn(ctx).Where("uuid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get absence request by UUID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AbsenceRepositoryImpl) Update(ctx context.Context, req *hr.AbsenceRequest) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return fmt.Errorf("failed to map absence request to model: %w", err)
	}

	result := r.conn(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update absence request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("absence request not found")
	}
	return nil
}

func (r *AbsenceRepositoryImpl) ListByCondominium(ctx context.Context, condominiumID uint, page, pageSize int) ([]*hr.AbsenceRequest, int64, error) {
	query := r.conn(ctx).Model(&models.AbsenceRequestModel{}).Where("condominium_id = ?", condominiumID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count absence requests: %w", err)
	}

	var modelList []*models.AbsenceRequestModel
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list absence requests: %w", err)
	}

	requests := make([]*hr.AbsenceRequest, 0, len(modelList))
	for _, m := range modelList {
		req, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map absence request model: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, total, nil
}
