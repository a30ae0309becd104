package models

import "time"

// TimeLayout is the format of CreatedAt: YYYY-MM-DD HH:MM:SS in local time.
const TimeLayout = "2006-01-02 15:04:05"

// Task represents a single todo item
type Task struct {
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// NewTask creates a task stamped with the given creation time
func NewTask(content string, now time.Time) Task {
	return Task{
		Content:   content,
		CreatedAt: now.Local().Format(TimeLayout),
	}
}

// String returns the display form of the task
func (t Task) String() string {
	return t.Content + " (" + t.CreatedAt + ")"
}
