package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"genturix/internal/domain/user"
	"genturix/internal/infrastructure/persistence/mappers"
	"genturix/internal/infrastructure/persistence/models"
	"genturix/internal/shared/db"
	"genturix/internal/shared/errors"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) user.Repository {
	return &UserRepositoryImpl{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return fmt.Errorf("failed to map user to model: %w", err)
	}

	if err := r.conn(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepositoryImpl) GetByUUID(ctx context.Context, uid string) (*user.User, error) {
	var model models.UserModel
	if err := r.conn(ctx).Where("uuid = ?", uid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by UUID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.conn(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return fmt.Errorf("failed to map user to model: %w", err)
	}

	result := r.conn(ctx).Save(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := r.conn(ctx).Model(&models.UserModel{})

	if filter.CondominiumID != nil {
		query = query.Where("condominium_id = ?", *filter.CondominiumID)
	}
	if filter.Role != "" {
		query = query.Where("roles LIKE ?", "%"+filter.Role+"%")
	}
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var modelList []*models.UserModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").Limit(filter.PageSize).Offset(offset).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(modelList))
	for _, m := range modelList {
		u, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map user model: %w", err)
		}
		users = append(users, u)
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.conn(ctx).Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) ListGuardsByCondominium(ctx context.Context, condominiumID uint) ([]*user.User, error) {
	var modelList []*models.UserModel
	err := r.conn(ctx).
		Where("condominium_id = ? AND is_active = ? AND roles LIKE ?", condominiumID, true, "%guard%").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list guards: %w", err)
	}

	guards := make([]*user.User, 0, len(modelList))
	for _, m := range modelList {
		u, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map user model: %w", err)
		}
		guards = append(guards, u)
	}
	return guards, nil
}
