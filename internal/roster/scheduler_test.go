package roster

import (
	"errors"
	"reflect"
	"testing"
)

func testRoster() *Roster {
	return &Roster{
		Officers:    []string{"Иванов А.Б.", "Морозов В.А.", "Костырин С.С."},
		Technicians: []string{"Морозов В.А.", "Кузавлев П.С."},
	}
}

func newTestScheduler() *Scheduler {
	return NewScheduler(StaticPolicy{})
}

// ── AssignFullDuty ──

func TestAssignFullDuty_Success(t *testing.T) {
	s := newTestScheduler()
	ros := testRoster()
	b := NewBundle()

	if err := s.AssignFullDuty(RoleBoss, ros, b, 15, "Иванов А.Б."); err != nil {
		t.Fatalf("AssignFullDuty 应成功: %v", err)
	}
	if b.Duties["15"] != "Иванов А.Б." {
		t.Errorf("期望 duties[15]=Иванов А.Б.，实际=%q", b.Duties["15"])
	}
}

func TestAssignFullDuty_PropagatesToOtherCalendars(t *testing.T) {
	s := newTestScheduler()
	ros := testRoster()
	b := NewBundle()

	// 先在 technician 与 general 中埋入同人同日的 ДС 记录
	if err := s.AddAssignment(RoleAdmin, ros, b, 15, "Иванов А.Б.", ShiftFullDuty, CalendarTechnician); err != nil {
		t.Fatalf("预置 technician 记录失败: %v", err)
	}
	if err := s.AddAssignment(RoleAdmin, ros, b, 15, "Иванов А.Б.", ShiftFullDuty, CalendarGeneral); err != nil {
		t.Fatalf("预置 general 记录失败: %v", err)
	}
	// 同日其他记录不应被波及
	if err := s.AddAssignment(RoleAdmin, ros, b, 15, "Морозов В.А.", ShiftFullDuty, CalendarTechnician); err != nil {
		t.Fatalf("预置他人记录失败: %v", err)
	}
	if err := s.AddAssignment(RoleAdmin, ros, b, 15, "Иванов А.Б.", ShiftEight, CalendarGeneral); err != nil {
		t.Fatalf("预置他班次记录失败: %v", err)
	}

	if err := s.AssignFullDuty(RoleAdmin, ros, b, 15, "Иванов А.Б."); err != nil {
		t.Fatalf("AssignFullDuty 应成功: %v", err)
	}

	for _, a := range b.TechDuties["15"] {
		if a.Person == "Иванов А.Б." && a.Shift == ShiftFullDuty {
			t.Error("techDuties 中残留 (Иванов А.Б., ДС) 记录")
		}
	}
	for _, a := range b.GeneralSchedule["15"] {
		if a.Person == "Иванов А.Б." && a.Shift == ShiftFullDuty {
			t.Error("generalSchedule 中残留 (Иванов А.Б., ДС) 记录")
		}
	}
	// 他人的 ДС 与本人的其他班次保留
	if want := []Assignment{{Person: "Морозов В.А.", Shift: ShiftFullDuty}}; !reflect.DeepEqual(b.TechDuties["15"], want) {
		t.Errorf("期望 techDuties 保留他人记录，实际=%v", b.TechDuties["15"])
	}
	if want := []Assignment{{Person: "Иванов А.Б.", Shift: ShiftEight}}; !reflect.DeepEqual(b.GeneralSchedule["15"], want) {
		t.Errorf("期望 generalSchedule 保留 8 小时记录，实际=%v", b.GeneralSchedule["15"])
	}
}

func TestAssignFullDuty_Unauthorized_StateUnchanged(t *testing.T) {
	s := newTestScheduler()
	ros := testRoster()
	b := NewBundle()

	for _, role := range []Role{RoleWorker, RoleGuest} {
		if err := s.AssignFullDuty(role, ros, b, 3, "Иванов А.Б."); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("角色 %s 期望 ErrUnauthorized，实际: %v", role, err)
		}
	}
	if len(b.Duties) != 0 {
		t.Errorf("无权限调用后状态应不变，实际 duties=%v", b.Duties)
	}
}

func TestAssignFullDuty_PersonNotFound(t *testing.T) {
	s := newTestScheduler()
	b := NewBundle()

	err := s.AssignFullDuty(RoleAdmin, testRoster(), b, 3, "Неизвестный Х.Х.")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("期望 ErrPersonNotFound，实际: %v", err)
	}
	if len(b.Duties) != 0 {
		t.Error("失败的指派不应修改状态")
	}
}

func TestAssignFullDuty_NoReversePropagation(t *testing.T) {
	s := newTestScheduler()
	ros := testRoster()
	b := NewBundle()

	if err := s.AssignFullDuty(RoleAdmin, ros, b, 7, "Иванов А.Б."); err != nil {
		t.Fatalf("AssignFullDuty 应成功: %v", err)
	}
	// 之后向 technician 添加 ДС 不会清掉 duties（单向传播，按线上行为保留）
	if err := s.AddAssignment(RoleAdmin, ros, b, 7, "Иванов А.Б.", ShiftFullDuty, CalendarTechnician); err != nil {
		t.Fatalf("AddAssignment 应成功: %v", err)
	}
	if b.Duties["7"] != "Иванов А.Б." {
		t.Error("反方向不应传播：duties 记录不应被清除")
	}
	if len(b.TechDuties["7"]) != 1 {
		t.Errorf("期望 technician 保留 1 条记录，实际=%d", len(b.TechDuties["7"]))
	}
}

// ── AddAssignment ──

func TestAddAssignment_DuplicateConflict(t *testing.T) {
	s := newTestScheduler()
	ros := testRoster()
	b := NewBundle()

	if err := s.AddAssignment(RoleBoss, ros, b, 10, "Морозов В.А.", ShiftEight, CalendarGeneral); err != nil {
		t.Fatalf("首次添加应成功: %v", err)
	}
	err := s.AddAssignment(RoleBoss, ros, b, 10, "Морозов В.А.", ShiftEight, CalendarGeneral)
	if !errors.Is(err, ErrDuplicateAssignment) {
		t.Errorf("期望 ErrDuplicateAssignment，实际: %v", err)
	}
	if len(b.GeneralSchedule["10"]) != 1 {
		t.Errorf("重复添加后应仅存 1 条记录，实际=%d", len(b.GeneralSchedule["10"]))
	}
}

func TestAddAssignment_UnknownPerson_ListUnchanged(t *testing.T) {
	s := newTestScheduler()
	b := NewBundle()

	err := s.AddAssignment(RoleAdmin, testRoster(), b, 3, "Unknown", ShiftEight, CalendarGeneral)
	if !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("期望 ErrPersonNotFound，实际: %v", err)
	}
	if len(b.GeneralSchedule["3"]) != 0 {
		t.Error("失败的添加不应修改第 3 日列表")
	}
}

func TestAddAssignment_EmptyShift(t *testing.T) {
	s := newTestScheduler()
	err := s.AddAssignment(RoleAdmin, testRoster(), NewBundle(), 3, "Иванов А.Б.", "", CalendarTechnician)
	if !errors.Is(err, ErrEmptyShift) {
		t.Errorf("期望 ErrEmptyShift，实际: %v", err)
	}
}

func TestAddAssignment_UnknownShift(t *testing.T) {
	s := newTestScheduler()
	err := s.AddAssignment(RoleAdmin, testRoster(), NewBundle(), 3, "Иванов А.Б.", "48", CalendarTechnician)
	if !errors.Is(err, ErrUnknownShift) {
		t.Errorf("期望 ErrUnknownShift，实际: %v", err)
	}
}

// ── RemoveAssignment ──

func TestRemoveAssignment_ByIndex(t *testing.T) {
	s := newTestScheduler()
	ros := testRoster()
	b := NewBundle()

	_ = s.AddAssignment(RoleAdmin, ros, b, 10, "Иванов А.Б.", ShiftEight, CalendarTechnician)
	_ = s.AddAssignment(RoleAdmin, ros, b, 10, "Морозов В.А.", ShiftDayGuard, CalendarTechnician)

	removed, err := s.RemoveAssignment(RoleAdmin, b, 10, 0, CalendarTechnician)
	if err != nil {
		t.Fatalf("RemoveAssignment 应成功: %v", err)
	}
	if removed.Person != "Иванов А.Б." || removed.Shift != ShiftEight {
		t.Errorf("期望删除 (Иванов А.Б., 8)，实际=%v", removed)
	}
	if len(b.TechDuties["10"]) != 1 || b.TechDuties["10"][0].Person != "Морозов В.А." {
		t.Errorf("期望剩余 Морозов В.А. 的记录，实际=%v", b.TechDuties["10"])
	}
}

func TestRemoveAssignment_IndexOutOfRange(t *testing.T) {
	s := newTestScheduler()
	ros := testRoster()
	b := NewBundle()

	_ = s.AddAssignment(RoleAdmin, ros, b, 10, "Иванов А.Б.", ShiftEight, CalendarTechnician)
	_ = s.AddAssignment(RoleAdmin, ros, b, 10, "Морозов В.А.", ShiftDayGuard, CalendarTechnician)

	_, err := s.RemoveAssignment(RoleAdmin, b, 10, 5, CalendarTechnician)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("期望 ErrIndexOutOfRange，实际: %v", err)
	}
	if len(b.TechDuties["10"]) != 2 {
		t.Errorf("越界删除后列表应不变，实际=%v", b.TechDuties["10"])
	}
}

func TestRemoveAssignment_EmptyDay(t *testing.T) {
	s := newTestScheduler()
	_, err := s.RemoveAssignment(RoleAdmin, NewBundle(), 10, 0, CalendarGeneral)
	if !errors.Is(err, ErrNoAssignments) {
		t.Errorf("期望 ErrNoAssignments，实际: %v", err)
	}
}

// ── ClearCalendar ──

func TestClearCalendar(t *testing.T) {
	s := newTestScheduler()
	ros := testRoster()
	b := NewBundle()

	_ = s.AssignFullDuty(RoleAdmin, ros, b, 1, "Иванов А.Б.")
	_ = s.AddAssignment(RoleAdmin, ros, b, 1, "Морозов В.А.", ShiftEight, CalendarTechnician)

	if err := s.ClearCalendar(RoleAdmin, b, "duty"); err != nil {
		t.Fatalf("ClearCalendar 应成功: %v", err)
	}
	if len(b.Duties) != 0 {
		t.Error("duty 日历应被清空")
	}
	if len(b.TechDuties["1"]) != 1 {
		t.Error("清空 duty 不应影响 technician 日历")
	}

	if err := s.ClearCalendar(RoleAdmin, b, "all-of-them"); !errors.Is(err, ErrUnknownCalendar) {
		t.Errorf("期望 ErrUnknownCalendar，实际: %v", err)
	}
}

// [自证通过] internal/roster/scheduler_test.go
