package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"TaskManager/internal/models"
)

// Persistence 任务列表的加载与整体写入
type Persistence interface {
	Load(ctx context.Context) []models.Task
	Save(ctx context.Context, tasks []models.Task) error
}

// Store 持有任务列表以及表单、搜索、编辑状态。
// 列表只能通过 Store 的方法修改，每次修改都会整体写入存储。
type Store struct {
	mu      sync.Mutex
	persist Persistence
	newID   func() string

	tasks  []models.Task
	form   models.TaskForm
	search string

	editMode bool
	editID   string
}

func NewStore(persist Persistence) *Store {
	if persist == nil {
		panic("tasks.NewStore: persistence is nil")
	}
	return &Store{
		persist: persist,
		newID:   uuid.NewString,
		tasks:   []models.Task{},
		form:    models.DefaultForm(),
	}
}

// Initialize 从存储加载任务列表，启动时调用一次
func (s *Store) Initialize(ctx context.Context) {
	tasks := s.persist.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	log.WithField("count", len(tasks)).Info("task store initialized")
}

// AddOrUpdate 校验表单后新建任务，编辑模式下则原地替换被编辑的任务
func (s *Store) AddOrUpdate(ctx context.Context, form models.TaskForm) error {
	if err := Validate(form); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated []models.Task
	if s.editMode && s.editID != "" {
		updated = make([]models.Task, len(s.tasks))
		for i, task := range s.tasks {
			if task.ID == s.editID {
				task.Title = form.Title
				task.Description = form.Description
				task.DueDate = form.DueDate
				task.Priority = form.Priority
			}
			updated[i] = task
		}
		if err := s.commit(ctx, updated); err != nil {
			return err
		}
		log.WithField("task_id", s.editID).Info("task updated")
	} else {
		task := models.Task{
			ID:          s.newID(),
			Title:       form.Title,
			Description: form.Description,
			DueDate:     form.DueDate,
			Priority:    form.Priority,
		}
		updated = make([]models.Task, 0, len(s.tasks)+1)
		updated = append(updated, s.tasks...)
		updated = append(updated, task)
		if err := s.commit(ctx, updated); err != nil {
			return err
		}
		log.WithField("task_id", task.ID).Info("task added")
	}

	s.resetFormLocked()
	return nil
}

// Delete 删除指定任务，任务不存在时不做任何修改
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.ID != id {
			updated = append(updated, task)
		}
	}
	if err := s.commit(ctx, updated); err != nil {
		return err
	}
	log.WithField("task_id", id).Info("task deleted")
	return nil
}

// BeginEdit 用任务内容填充表单并进入编辑模式；找不到任务时返回 false
func (s *Store) BeginEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.form = models.FormFromTask(s.tasks[i])
	s.editMode = true
	s.editID = id
	return true
}

// CancelEdit 退出编辑模式并清空表单
func (s *Store) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetFormLocked()
}

// ToggleCompleted 切换完成状态，可以反复切换
func (s *Store) ToggleCompleted(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.Task, len(s.tasks))
	copy(updated, s.tasks)
	if i := s.indexLocked(id); i >= 0 {
		updated[i].Completed = !updated[i].Completed
	}
	return s.commit(ctx, updated)
}

// Tasks 返回任务列表的副本
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.tasks...)
}

// Visible 按当前搜索词过滤后的任务
func (s *Store) Visible() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Project(s.tasks, s.search)
}

func (s *Store) Stats() models.TaskStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats(s.tasks)
}

func (s *Store) Form() models.TaskForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *Store) SetForm(form models.TaskForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

func (s *Store) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

// Editing 返回正在编辑的任务 ID
func (s *Store) Editing() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editID, s.editMode
}

// commit 写入成功后才替换内存中的列表
func (s *Store) commit(ctx context.Context, updated []models.Task) error {
	if err := s.persist.Save(ctx, updated); err != nil {
		log.WithError(err).Error("persist tasks failed")
		return fmt.Errorf("save tasks: %w", err)
	}
	s.tasks = updated
	return nil
}

func (s *Store) resetFormLocked() {
	s.form = models.DefaultForm()
	s.editMode = false
	s.editID = ""
}

func (s *Store) indexLocked(id string) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
