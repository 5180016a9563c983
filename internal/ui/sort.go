package ui

import (
	"sort"
	"strings"

	"TaskManager/internal/models"
)

// sortColumn 列表可排序的列，sortNone 保持插入顺序
type sortColumn int

const (
	sortNone sortColumn = iota
	sortTitle
	sortDescription
	sortDueDate
	sortPriority
)

var sortColumns = []sortColumn{sortTitle, sortDescription, sortDueDate, sortPriority}

func (c sortColumn) label() string {
	switch c {
	case sortTitle:
		return "Title"
	case sortDescription:
		return "Description"
	case sortDueDate:
		return "Due Date"
	case sortPriority:
		return "Priority"
	}
	return ""
}

type columnSort struct {
	column sortColumn
	desc   bool
}

// next 点击同一列切换方向，点击其他列从升序开始
func (s columnSort) next(column sortColumn) columnSort {
	if s.column == column {
		return columnSort{column: column, desc: !s.desc}
	}
	return columnSort{column: column}
}

func (s columnSort) less(a, b models.Task) bool {
	switch s.column {
	case sortTitle:
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	case sortDescription:
		return strings.ToLower(a.Description) < strings.ToLower(b.Description)
	case sortDueDate:
		// 日期格式为 YYYY-MM-DD，按字符串比较即可
		return a.DueDate < b.DueDate
	case sortPriority:
		return a.Priority.Rank() < b.Priority.Rank()
	}
	return false
}

// apply 返回排序后的副本，相等的任务保持原有顺序
func (s columnSort) apply(list []models.Task) []models.Task {
	sorted := append([]models.Task(nil), list...)
	if s.column == sortNone {
		return sorted
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if s.desc {
			return s.less(sorted[j], sorted[i])
		}
		return s.less(sorted[i], sorted[j])
	})
	return sorted
}

// headerText 当前排序列带方向标记
func (s columnSort) headerText(column sortColumn) string {
	if s.column != column {
		return column.label()
	}
	if s.desc {
		return column.label() + " ▼"
	}
	return column.label() + " ▲"
}
