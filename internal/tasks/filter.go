package tasks

import (
	"strings"

	"TaskManager/internal/models"
)

// Project 返回标题或描述包含 term（忽略大小写）的任务，保持原有顺序
func Project(list []models.Task, term string) []models.Task {
	needle := strings.ToLower(term)
	result := make([]models.Task, 0, len(list))
	for _, task := range list {
		if strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			result = append(result, task)
		}
	}
	return result
}
