package tasks

import "TaskManager/internal/models"

// Field 表单中缺失的字段
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldDueDate     Field = "dueDate"
	FieldPriority    Field = "priority"
)

// ValidationError 表单校验失败，Message 直接展示给用户
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingTitle       = &ValidationError{Field: FieldTitle, Message: "Please enter a title"}
	ErrMissingDescription = &ValidationError{Field: FieldDescription, Message: "Please enter a description"}
	ErrMissingDueDate     = &ValidationError{Field: FieldDueDate, Message: "Please select the date"}
	ErrMissingPriority    = &ValidationError{Field: FieldPriority, Message: "Please select the priority"}
)

// Validate 按 标题、描述、日期、优先级 的顺序检查，返回第一个失败项
func Validate(form models.TaskForm) error {
	switch {
	case form.Title == "":
		return ErrMissingTitle
	case form.Description == "":
		return ErrMissingDescription
	case form.DueDate == "":
		return ErrMissingDueDate
	case !form.Priority.Valid():
		return ErrMissingPriority
	}
	return nil
}
