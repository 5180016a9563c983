package tasks

import "TaskManager/internal/models"

func Stats(list []models.Task) models.TaskStats {
	stats := models.TaskStats{
		Total:      len(list),
		ByPriority: make(map[models.Priority]int, 3),
	}
	for _, p := range models.Priorities() {
		stats.ByPriority[p] = 0
	}
	for _, task := range list {
		if task.Completed {
			stats.Completed++
		}
		stats.ByPriority[task.Priority]++
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total)
	}
	return stats
}
