package models

// Priority 任务优先级，取值为封闭集合
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities 按界面显示顺序返回全部优先级
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank 排序用：Low < Medium < High，未知值排在最前
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

func (p Priority) String() string {
	return string(p)
}

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

// TaskForm 表单的当前输入值，不持久化
type TaskForm struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
}

// DefaultForm 新表单：字段为空，优先级为 Low
func DefaultForm() TaskForm {
	return TaskForm{Priority: PriorityLow}
}

// FormFromTask 用已有任务填充表单
func FormFromTask(task Task) TaskForm {
	return TaskForm{
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
	}
}
