package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"TaskManager/internal/models"
)

// Persistence 把完整任务列表编码后写入一个命名存储槽
type Persistence struct {
	slots Slots
	key   string
	log   *log.Entry
}

func NewPersistence(slots Slots, key string) *Persistence {
	if slots == nil {
		panic("storage.NewPersistence: slots is nil")
	}
	return &Persistence{
		slots: slots,
		key:   key,
		log:   log.WithField("slot", key),
	}
}

func (p *Persistence) Key() string {
	return p.key
}

// saveClock 由记录写入时间的后端实现
type saveClock interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}

// LastSaved 返回最后一次写入时间；后端不记录时间或尚未写入时返回 false
func (p *Persistence) LastSaved(ctx context.Context) (time.Time, bool) {
	clock, ok := p.slots.(saveClock)
	if !ok {
		return time.Time{}, false
	}
	at, err := clock.UpdatedAt(ctx, p.key)
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			p.log.WithError(err).Warn("read last saved time failed")
		}
		return time.Time{}, false
	}
	return at, true
}

// Load 读取任务列表；槽不存在、读取失败或内容无法解析时返回空列表
func (p *Persistence) Load(ctx context.Context) []models.Task {
	data, err := p.slots.Get(ctx, p.key)
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			p.log.WithError(err).Warn("read task slot failed, starting empty")
		}
		return []models.Task{}
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		p.log.WithError(err).Warn("decode task slot failed, starting empty")
		return []models.Task{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	p.log.WithField("count", len(tasks)).Debug("tasks loaded")
	return tasks
}

// Save 覆盖写入完整任务列表
func (p *Persistence) Save(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := p.slots.Set(ctx, p.key, data); err != nil {
		return fmt.Errorf("write slot %q: %w", p.key, err)
	}
	p.log.WithField("count", len(tasks)).Debug("tasks saved")
	return nil
}
