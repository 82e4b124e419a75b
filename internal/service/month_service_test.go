package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/YpyGG/calendar-webapp/internal/dto"
	"github.com/YpyGG/calendar-webapp/internal/roster"
)

func setupTestMonthService() (MonthService, *testRepos) {
	repos := newTestRepos()
	svc := NewMonthService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestMonthService_Get_MissingReturnsEmptyDefault(t *testing.T) {
	svc, _ := setupTestMonthService()

	resp, err := svc.Get(context.Background(), "2025_5")
	if err != nil {
		t.Fatalf("缺失月份应返回空默认文档: %v", err)
	}
	if resp.ID != "2025_5" {
		t.Errorf("ID 应为 2025_5，实际 %q", resp.ID)
	}
	if resp.Duties == nil || resp.TechDuties == nil || resp.GeneralSchedule == nil || resp.Colors == nil {
		t.Error("空默认文档的四个集合都应为空映射而非 null")
	}
	if len(resp.Duties) != 0 {
		t.Errorf("空默认文档不应有数据: %v", resp.Duties)
	}
}

func TestMonthService_Get_InvalidID(t *testing.T) {
	svc, _ := setupTestMonthService()

	for _, id := range []string{"2025_12", "2025-5", "25_5", "2025_5x"} {
		if _, err := svc.Get(context.Background(), id); !errors.Is(err, ErrInvalidMonthID) {
			t.Errorf("月份标识 %q 应被拒绝，实际 %v", id, err)
		}
	}
}

func TestMonthService_Replace(t *testing.T) {
	svc, repos := setupTestMonthService()

	resp, err := svc.Replace(context.Background(), "2025_5", &dto.ReplaceMonthRequest{
		Duties: map[string]string{"15": "Иванов А.Б."},
		TechDuties: map[string][]roster.Assignment{
			"3": {{Person: "Кузавлев П.С.", Shift: roster.ShiftEight}},
		},
	})
	if err != nil {
		t.Fatalf("整体替换失败: %v", err)
	}
	if resp.Duties["15"] != "Иванов А.Б." {
		t.Errorf("替换结果不正确: %v", resp.Duties)
	}
	// 省略的集合按空处理
	if resp.GeneralSchedule == nil || resp.Colors == nil {
		t.Error("省略的集合应归一化为空映射")
	}

	// 再次替换即完整覆盖
	resp, err = svc.Replace(context.Background(), "2025_5", &dto.ReplaceMonthRequest{
		Colors: map[string]string{"Иванов А.Б.": "#aabbcc"},
	})
	if err != nil {
		t.Fatalf("二次替换失败: %v", err)
	}
	if len(resp.Duties) != 0 {
		t.Errorf("未提交的集合应被清空，实际 %v", resp.Duties)
	}
	saved := repos.month.months["2025_5"].Bundle()
	if saved.Colors["Иванов А.Б."] != "#aabbcc" {
		t.Error("替换未持久化")
	}
}

// [自证通过] internal/service/month_service_test.go
