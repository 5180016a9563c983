package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TaskManager/internal/models"
	"TaskManager/internal/tasks"
)

const (
	labelAdd       = "Add Task"
	labelUpdate    = "Update Task"
	labelMark      = "Mark as Completed"
	labelCompleted = "Completed"
)

// TaskView 任务表单、搜索框和任务列表，所有状态都从 Store 读取
type TaskView struct {
	store  *tasks.Store
	window fyne.Window

	title       *widget.Entry
	description *widget.Entry
	dueDate     *widget.Entry
	priority    *widget.Select
	search      *widget.Entry
	submitBtn   *widget.Button
	cancelBtn   *widget.Button
	countLabel  *widget.Label
	list        *widget.List
	container   *fyne.Container

	headerBtns map[sortColumn]*widget.Button

	// 当前显示的过滤结果，按 sort 排序
	visible []models.Task
	sort    columnSort
	// 从 Store 回填表单时不再写回
	syncing bool
	// 列表变化后通知其他视图
	onChange func()
}

func NewTaskView(store *tasks.Store, window fyne.Window) *TaskView {
	v := &TaskView{
		store:  store,
		window: window,
	}
	v.setup()
	v.refresh()
	return v
}

func (v *TaskView) setup() {
	// 创建标题
	heading := widget.NewLabelWithStyle("Task Manager", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// 创建表单输入
	v.title = widget.NewEntry()
	v.title.SetPlaceHolder("Title")
	v.description = widget.NewEntry()
	v.description.SetPlaceHolder("Description")
	v.dueDate = widget.NewEntry()
	v.dueDate.SetPlaceHolder("Due date (YYYY-MM-DD)")

	options := make([]string, 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		options = append(options, p.String())
	}
	v.priority = widget.NewSelect(options, func(string) { v.formChanged() })

	v.title.OnChanged = func(string) { v.formChanged() }
	v.description.OnChanged = func(string) { v.formChanged() }
	v.dueDate.OnChanged = func(string) { v.formChanged() }

	v.submitBtn = widget.NewButtonWithIcon(labelAdd, theme.ContentAddIcon(), v.submit)
	v.submitBtn.Importance = widget.HighImportance
	v.cancelBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), v.cancelEdit)

	// 搜索框
	v.search = widget.NewEntry()
	v.search.SetPlaceHolder("Search Tasks")
	v.search.OnChanged = func(term string) {
		v.store.SetSearchTerm(term)
		v.refresh()
	}

	v.countLabel = widget.NewLabel("")
	v.list = widget.NewList(
		func() int {
			return len(v.visible)
		},
		newTaskRow,
		v.updateRow,
	)

	form := container.NewGridWithColumns(4, v.title, v.description, v.dueDate, v.priority)
	actions := container.NewHBox(v.submitBtn, v.cancelBtn)
	searchBar := container.NewBorder(nil, nil, widget.NewLabel("Search:"), v.countLabel, v.search)

	v.container = container.NewBorder(
		container.NewVBox(
			heading,
			form,
			actions,
			searchBar,
			v.taskHeader(),
		),
		nil, nil, nil,
		v.list,
	)
}

// 列表表头，点击列名排序
func (v *TaskView) taskHeader() fyne.CanvasObject {
	v.headerBtns = make(map[sortColumn]*widget.Button, len(sortColumns))
	cells := container.NewGridWithColumns(len(sortColumns))
	for _, column := range sortColumns {
		column := column
		btn := widget.NewButton(column.label(), func() { v.sortBy(column) })
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		v.headerBtns[column] = btn
		cells.Add(btn)
	}
	actions := widget.NewLabelWithStyle("Actions", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	return container.NewBorder(nil, nil, nil, actions, cells)
}

// sortBy 只改变显示顺序，不影响 Store 中的列表
func (v *TaskView) sortBy(column sortColumn) {
	v.sort = v.sort.next(column)
	for c, btn := range v.headerBtns {
		btn.SetText(v.sort.headerText(c))
	}
	v.refresh()
}

// newTaskRow 行模板：Objects[0] 为单元格，Objects[1] 为操作按钮
func newTaskRow() fyne.CanvasObject {
	cells := container.NewGridWithColumns(4,
		widget.NewLabel(""),
		widget.NewLabel(""),
		widget.NewLabel(""),
		widget.NewLabel(""),
	)
	buttons := container.NewHBox(
		widget.NewButton(labelMark, nil),
		widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil),
		widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
	)
	return container.NewBorder(nil, nil, nil, buttons, cells)
}

func (v *TaskView) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(v.visible) {
		return
	}
	task := v.visible[id]

	row := obj.(*fyne.Container)
	cells := row.Objects[0].(*fyne.Container)
	buttons := row.Objects[1].(*fyne.Container)

	cells.Objects[0].(*widget.Label).SetText(task.Title)
	cells.Objects[1].(*widget.Label).SetText(task.Description)
	cells.Objects[2].(*widget.Label).SetText(task.DueDate)
	cells.Objects[3].(*widget.Label).SetText(task.Priority.String())

	toggleBtn := buttons.Objects[0].(*widget.Button)
	if task.Completed {
		toggleBtn.SetText(labelCompleted)
		toggleBtn.Importance = widget.SuccessImportance
	} else {
		toggleBtn.SetText(labelMark)
		toggleBtn.Importance = widget.MediumImportance
	}
	toggleBtn.OnTapped = func() { v.toggle(task.ID) }
	buttons.Objects[1].(*widget.Button).OnTapped = func() { v.beginEdit(task.ID) }
	buttons.Objects[2].(*widget.Button).OnTapped = func() { v.delete(task.ID) }
	toggleBtn.Refresh()
}

func (v *TaskView) readForm() models.TaskForm {
	return models.TaskForm{
		Title:       v.title.Text,
		Description: v.description.Text,
		DueDate:     v.dueDate.Text,
		Priority:    models.Priority(v.priority.Selected),
	}
}

func (v *TaskView) formChanged() {
	if v.syncing {
		return
	}
	v.store.SetForm(v.readForm())
}

// 提交表单：新建或更新任务
func (v *TaskView) submit() {
	if err := v.store.AddOrUpdate(context.Background(), v.readForm()); err != nil {
		v.showError(err)
		return
	}
	v.refresh()
}

func (v *TaskView) beginEdit(id string) {
	if v.store.BeginEdit(id) {
		v.refresh()
	}
}

func (v *TaskView) cancelEdit() {
	v.store.CancelEdit()
	v.refresh()
}

func (v *TaskView) toggle(id string) {
	if err := v.store.ToggleCompleted(context.Background(), id); err != nil {
		v.showError(err)
		return
	}
	v.refresh()
}

func (v *TaskView) delete(id string) {
	if err := v.store.Delete(context.Background(), id); err != nil {
		v.showError(err)
		return
	}
	v.refresh()
}

func (v *TaskView) showError(err error) {
	var verr *tasks.ValidationError
	if errors.As(err, &verr) {
		dialog.ShowInformation("Missing field", verr.Message, v.window)
		return
	}
	dialog.ShowError(err, v.window)
}

// refresh 从 Store 重新读取表单状态和过滤结果
func (v *TaskView) refresh() {
	form := v.store.Form()
	v.syncing = true
	v.title.SetText(form.Title)
	v.description.SetText(form.Description)
	v.dueDate.SetText(form.DueDate)
	if form.Priority == "" {
		v.priority.ClearSelected()
	} else {
		v.priority.SetSelected(form.Priority.String())
	}
	v.syncing = false

	if _, editing := v.store.Editing(); editing {
		v.submitBtn.SetText(labelUpdate)
		v.submitBtn.SetIcon(theme.ConfirmIcon())
		v.cancelBtn.Show()
	} else {
		v.submitBtn.SetText(labelAdd)
		v.submitBtn.SetIcon(theme.ContentAddIcon())
		v.cancelBtn.Hide()
	}

	v.visible = v.sort.apply(v.store.Visible())
	v.countLabel.SetText(fmt.Sprintf("%d / %d", len(v.visible), len(v.store.Tasks())))
	v.list.Refresh()

	if v.onChange != nil {
		v.onChange()
	}
}

// SetOnChange 注册列表变化回调
func (v *TaskView) SetOnChange(callback func()) {
	v.onChange = callback
}
