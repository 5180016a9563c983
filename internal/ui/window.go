package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"TaskManager/internal/tasks"
)

type MainWindow struct {
	window fyne.Window
	tasks  *TaskView
	stats  *StatsView
}

func NewMainWindow(app fyne.App, title string, store *tasks.Store) *MainWindow {
	w := &MainWindow{
		window: app.NewWindow(title),
	}
	w.tasks = NewTaskView(store, w.window)
	w.stats = NewStatsView(store)
	w.setup()
	return w
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

// SetLastSaved 在统计页显示最后保存时间
func (w *MainWindow) SetLastSaved(source func() (time.Time, bool)) {
	w.stats.SetLastSaved(source)
}

func (w *MainWindow) setup() {
	// 任务变化后刷新统计
	w.tasks.SetOnChange(w.stats.Refresh)

	tabs := container.NewAppTabs(
		container.NewTabItem("Tasks", w.tasks.container),
		container.NewTabItem("Statistics", w.stats.container),
	)

	w.window.SetContent(tabs)
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
