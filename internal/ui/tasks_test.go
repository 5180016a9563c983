package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TaskManager/internal/models"
	"TaskManager/internal/storage"
	"TaskManager/internal/tasks"
)

func newTestView(t *testing.T) (*TaskView, *tasks.Store) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	store := tasks.NewStore(storage.NewPersistence(storage.NewMemorySlots(), "tasks"))
	store.Initialize(context.Background())

	w := a.NewWindow("tasks")
	v := NewTaskView(store, w)
	w.SetContent(v.container)
	return v, store
}

func fillForm(v *TaskView, title, description string) {
	v.title.SetText(title)
	v.description.SetText(description)
	v.dueDate.SetText("2026-10-20")
	v.priority.SetSelected(models.PriorityHigh.String())
}

func TestTaskView_DefaultForm(t *testing.T) {
	v, store := newTestView(t)

	assert.Equal(t, models.PriorityLow.String(), v.priority.Selected)
	assert.Equal(t, labelAdd, v.submitBtn.Text)
	assert.False(t, v.cancelBtn.Visible())
	assert.Equal(t, models.DefaultForm(), store.Form())
}

func TestTaskView_SubmitAddsTask(t *testing.T) {
	v, store := newTestView(t)

	fillForm(v, "Buy Milk", "corner shop")
	assert.Equal(t, "Buy Milk", store.Form().Title)
	test.Tap(v.submitBtn)

	list := store.Tasks()
	require.Len(t, list, 1)
	assert.Equal(t, "Buy Milk", list[0].Title)
	assert.Equal(t, models.PriorityHigh, list[0].Priority)
	assert.Len(t, v.visible, 1)

	// 表单恢复默认值
	assert.Empty(t, v.title.Text)
	assert.Empty(t, v.dueDate.Text)
	assert.Equal(t, models.PriorityLow.String(), v.priority.Selected)
}

func TestTaskView_SubmitInvalidLeavesListEmpty(t *testing.T) {
	v, store := newTestView(t)

	v.title.SetText("only a title")
	test.Tap(v.submitBtn)

	assert.Empty(t, store.Tasks())
	assert.Equal(t, "only a title", v.title.Text)
}

func TestTaskView_EditFlow(t *testing.T) {
	v, store := newTestView(t)
	fillForm(v, "Call Bob", "re: milk run")
	test.Tap(v.submitBtn)
	id := store.Tasks()[0].ID

	v.beginEdit(id)
	assert.Equal(t, "Call Bob", v.title.Text)
	assert.Equal(t, labelUpdate, v.submitBtn.Text)
	assert.True(t, v.cancelBtn.Visible())

	v.title.SetText("Call Alice")
	test.Tap(v.submitBtn)

	list := store.Tasks()
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "Call Alice", list[0].Title)
	assert.Equal(t, labelAdd, v.submitBtn.Text)
	assert.False(t, v.cancelBtn.Visible())
}

func TestTaskView_CancelEdit(t *testing.T) {
	v, store := newTestView(t)
	fillForm(v, "Call Bob", "re: milk run")
	test.Tap(v.submitBtn)

	v.beginEdit(store.Tasks()[0].ID)
	test.Tap(v.cancelBtn)

	_, editing := store.Editing()
	assert.False(t, editing)
	assert.Empty(t, v.title.Text)
}

func TestTaskView_SearchToggleDelete(t *testing.T) {
	v, store := newTestView(t)
	fillForm(v, "Buy Milk", "corner shop")
	test.Tap(v.submitBtn)
	fillForm(v, "Write report", "quarterly")
	test.Tap(v.submitBtn)

	v.search.SetText("MILK")
	require.Len(t, v.visible, 1)
	assert.Equal(t, "1 / 2", v.countLabel.Text)

	id := v.visible[0].ID
	v.toggle(id)
	assert.True(t, store.Tasks()[0].Completed)

	v.delete(id)
	assert.Empty(t, v.visible)
	assert.Len(t, store.Tasks(), 1)

	v.search.SetText("")
	assert.Len(t, v.visible, 1)
}

func TestTaskView_RowBindsActions(t *testing.T) {
	v, store := newTestView(t)
	fillForm(v, "Buy Milk", "corner shop")
	test.Tap(v.submitBtn)

	row := newTaskRow()
	v.updateRow(0, row)

	toggle := rowButton(row, 0)
	assert.Equal(t, labelMark, toggle.Text)
	test.Tap(toggle)
	assert.True(t, store.Tasks()[0].Completed)

	v.updateRow(0, row)
	assert.Equal(t, labelCompleted, rowButton(row, 0).Text)

	test.Tap(rowButton(row, 1))
	_, editing := store.Editing()
	assert.True(t, editing)

	test.Tap(rowButton(row, 2))
	assert.Empty(t, store.Tasks())
}

func TestStatsView_Refresh(t *testing.T) {
	v, store := newTestView(t)
	sv := NewStatsView(store)
	v.SetOnChange(sv.Refresh)

	fillForm(v, "Buy Milk", "corner shop")
	test.Tap(v.submitBtn)
	v.toggle(store.Tasks()[0].ID)

	assert.Contains(t, sv.taskStats.Text, "Completed: 1")
	assert.Contains(t, sv.taskStats.Text, "Completion Rate: 100.0%")
	assert.Contains(t, sv.priorityMix.Text, "High: 1")

	v.search.SetText("nothing matches")
	sv.scope.SetSelected(scopeMatching)
	assert.Contains(t, sv.taskStats.Text, "Total Tasks: 0")
}

func rowButton(row fyne.CanvasObject, i int) *widget.Button {
	buttons := row.(*fyne.Container).Objects[1].(*fyne.Container)
	return buttons.Objects[i].(*widget.Button)
}

func addTask(v *TaskView, title, due string, priority models.Priority) {
	v.title.SetText(title)
	v.description.SetText(title + " notes")
	v.dueDate.SetText(due)
	v.priority.SetSelected(priority.String())
	test.Tap(v.submitBtn)
}

func visibleTitles(v *TaskView) []string {
	titles := make([]string, 0, len(v.visible))
	for _, task := range v.visible {
		titles = append(titles, task.Title)
	}
	return titles
}

func TestTaskView_SortByPriority(t *testing.T) {
	v, store := newTestView(t)
	addTask(v, "medium", "2026-10-20", models.PriorityMedium)
	addTask(v, "high", "2026-10-18", models.PriorityHigh)
	addTask(v, "low", "2026-10-25", models.PriorityLow)

	test.Tap(v.headerBtns[sortPriority])
	assert.Equal(t, []string{"low", "medium", "high"}, visibleTitles(v))
	assert.Equal(t, "Priority ▲", v.headerBtns[sortPriority].Text)

	test.Tap(v.headerBtns[sortPriority])
	assert.Equal(t, []string{"high", "medium", "low"}, visibleTitles(v))
	assert.Equal(t, "Priority ▼", v.headerBtns[sortPriority].Text)

	// Store 中仍是插入顺序
	list := store.Tasks()
	assert.Equal(t, "medium", list[0].Title)
	assert.Equal(t, "high", list[1].Title)
	assert.Equal(t, "low", list[2].Title)
}

func TestTaskView_SortByDueDate(t *testing.T) {
	v, store := newTestView(t)
	addTask(v, "later", "2026-11-02", models.PriorityLow)
	addTask(v, "soon", "2026-10-16", models.PriorityLow)
	addTask(v, "middle", "2026-10-30", models.PriorityLow)

	v.sortBy(sortDueDate)
	assert.Equal(t, []string{"soon", "middle", "later"}, visibleTitles(v))
	assert.Equal(t, "Priority", v.headerBtns[sortPriority].Text)

	// 新增任务后仍按当前列排序
	addTask(v, "first", "2026-10-15", models.PriorityHigh)
	assert.Equal(t, []string{"first", "soon", "middle", "later"}, visibleTitles(v))
	assert.Equal(t, "later", store.Tasks()[0].Title)

	// 排序与搜索同时生效
	v.search.SetText("I")
	assert.Equal(t, []string{"first", "middle"}, visibleTitles(v))
}

func TestStatsView_LastSaved(t *testing.T) {
	_, store := newTestView(t)
	sv := NewStatsView(store)
	assert.Empty(t, sv.savedLabel.Text)

	saved := time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)
	sv.SetLastSaved(func() (time.Time, bool) { return saved, true })
	assert.Equal(t, "Last saved: 2026-10-15 09:30:00", sv.savedLabel.Text)

	sv.SetLastSaved(func() (time.Time, bool) { return time.Time{}, false })
	assert.Empty(t, sv.savedLabel.Text)
}
