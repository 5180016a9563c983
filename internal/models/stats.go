package models

type TaskStats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64
	ByPriority     map[Priority]int
}
