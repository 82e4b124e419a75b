package model

import "time"

// PendingUser 待审批访问申请表 — 对应 pending_users
type PendingUser struct {
	TelegramID  string    `gorm:"type:varchar(32);primaryKey"        json:"telegram_id"`
	Name        string    `gorm:"type:varchar(100);not null"         json:"name"`
	Username    string    `gorm:"type:varchar(50)"                   json:"username"`
	RequestedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"requested_at"`
}

// TableName 指定表名
func (PendingUser) TableName() string { return "pending_users" }

// [自证通过] internal/model/pending_user.go
