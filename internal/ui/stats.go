package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TaskManager/internal/models"
	"TaskManager/internal/tasks"
)

const (
	scopeAll      = "All Tasks"
	scopeMatching = "Matching Search"
)

type StatsView struct {
	container   *fyne.Container
	store       *tasks.Store
	scope       *widget.Select
	taskStats   *widget.Label
	priorityMix *widget.Label
	savedLabel  *widget.Label
	refreshBtn  *widget.Button
	// lastSaved 为空时不显示保存时间
	lastSaved func() (time.Time, bool)
}

func NewStatsView(store *tasks.Store) *StatsView {
	sv := &StatsView{
		store:       store,
		taskStats:   widget.NewLabel(""),
		priorityMix: widget.NewLabel(""),
		savedLabel:  widget.NewLabel(""),
	}
	sv.setup()
	return sv
}

func (sv *StatsView) setup() {
	// 创建标题
	title := widget.NewLabelWithStyle("Statistics", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// 创建刷新按钮
	sv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), sv.Refresh)

	// 统计范围：全部任务或当前搜索结果
	sv.scope = widget.NewSelect(
		[]string{scopeAll, scopeMatching},
		func(string) {
			sv.Refresh()
		},
	)

	toolbar := container.NewHBox(
		widget.NewLabel("Scope:"),
		sv.scope,
		sv.refreshBtn,
	)

	statsContainer := container.NewHBox(
		container.NewVBox(
			widget.NewLabelWithStyle("Task Statistics", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			sv.taskStats,
		),
		container.NewVBox(
			widget.NewLabelWithStyle("By Priority", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			sv.priorityMix,
		),
	)

	sv.container = container.NewVBox(
		title,
		toolbar,
		statsContainer,
		sv.savedLabel,
	)

	// 设置默认选中值并更新统计
	sv.scope.SetSelected(scopeAll)
}

func (sv *StatsView) current() models.TaskStats {
	if sv.scope.Selected == scopeMatching {
		return tasks.Stats(sv.store.Visible())
	}
	return sv.store.Stats()
}

// Refresh 重新计算统计
func (sv *StatsView) Refresh() {
	stats := sv.current()

	sv.taskStats.SetText(fmt.Sprintf(
		"Total Tasks: %d\n"+
			"Completed: %d\n"+
			"Pending: %d\n"+
			"Completion Rate: %.1f%%",
		stats.Total,
		stats.Completed,
		stats.Pending,
		stats.CompletionRate*100,
	))

	sv.priorityMix.SetText(fmt.Sprintf(
		"High: %d\nMedium: %d\nLow: %d",
		stats.ByPriority[models.PriorityHigh],
		stats.ByPriority[models.PriorityMedium],
		stats.ByPriority[models.PriorityLow],
	))

	sv.savedLabel.SetText("")
	if sv.lastSaved != nil {
		if at, ok := sv.lastSaved(); ok {
			sv.savedLabel.SetText("Last saved: " + at.Local().Format("2006-01-02 15:04:05"))
		}
	}
}

// SetLastSaved 注册最后保存时间的来源
func (sv *StatsView) SetLastSaved(source func() (time.Time, bool)) {
	sv.lastSaved = source
	sv.Refresh()
}

func (sv *StatsView) Container() *fyne.Container {
	return sv.container
}
