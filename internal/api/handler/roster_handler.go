package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/YpyGG/calendar-webapp/internal/dto"
	"github.com/YpyGG/calendar-webapp/internal/service"
	"github.com/YpyGG/calendar-webapp/pkg/response"
)

// RosterHandler 人员名册模块 HTTP 处理器
type RosterHandler struct {
	rosterSvc service.RosterService
}

// NewRosterHandler 创建 RosterHandler
func NewRosterHandler(rosterSvc service.RosterService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc}
}

// GetRoster 名册（军官 + 技师）
// GET /api/roster
func (h *RosterHandler) GetRoster(c *gin.Context) {
	roster, err := h.rosterSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, roster)
}

// AddOfficer 添加军官
// POST /api/roster/officers
func (h *RosterHandler) AddOfficer(c *gin.Context) {
	h.addMember(c, true)
}

// AddTechnician 添加技师
// POST /api/roster/technicians
func (h *RosterHandler) AddTechnician(c *gin.Context) {
	h.addMember(c, false)
}

func (h *RosterHandler) addMember(c *gin.Context, officer bool) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	var (
		result *dto.RosterResponse
		err    error
	)
	if officer {
		result, err = h.rosterSvc.AddOfficer(c.Request.Context(), req.Name, role)
	} else {
		result, err = h.rosterSvc.AddTechnician(c.Request.Context(), req.Name, role)
	}
	if err != nil {
		handleRosterError(c, err)
		return
	}
	response.Created(c, result)
}

// RemovePerson 级联删除人员
// DELETE /api/roster/:name
func (h *RosterHandler) RemovePerson(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.rosterSvc.RemovePerson(c.Request.Context(), c.Param("name"), role); err != nil {
		handleRosterError(c, err)
		return
	}
	response.OK(c, nil)
}

// [自证通过] internal/api/handler/roster_handler.go
