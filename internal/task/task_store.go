package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/todo/internal/models"
	"github.com/tiwariParth/todo/internal/storage"
)

// TaskStore manages the ordered list of tasks for one invocation.
type TaskStore struct {
	items   []models.Task
	storage storage.Storage
	now     func() time.Time
	logger  *log.Logger
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock sets the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(ts *TaskStore) {
		ts.now = now
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(ts *TaskStore) {
		ts.logger = logger
	}
}

// NewTaskStore initializes an empty TaskStore backed by st.
func NewTaskStore(st storage.Storage, opts ...Option) *TaskStore {
	ts := &TaskStore{
		items:   []models.Task{},
		storage: st,
		now:     time.Now,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Load builds a TaskStore from whatever st holds. A store that has never
// been saved yields an empty list.
func Load(st storage.Storage, opts ...Option) (*TaskStore, error) {
	ts := NewTaskStore(st, opts...)

	items, err := st.Load()
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			ts.logger.Info("Todo file not found, creating a new one.", "path", st.Location())
			return ts, nil
		}
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	if items != nil {
		ts.items = items
	}
	ts.logger.Debug("loaded tasks", "path", st.Location(), "count", len(ts.items))
	return ts, nil
}

// Add appends a task stamped with the current time.
func (ts *TaskStore) Add(content string) {
	ts.items = append(ts.items, models.NewTask(content, ts.now()))
}

// Edit replaces the content of the task at index. CreatedAt is kept.
func (ts *TaskStore) Edit(index int, content string) error {
	if err := ts.check(OpEdit, index); err != nil {
		return err
	}
	ts.items[index].Content = content
	return nil
}

// Remove deletes the task at index; later tasks move down by one.
func (ts *TaskStore) Remove(index int) error {
	if err := ts.check(OpRemove, index); err != nil {
		return err
	}
	ts.items = append(ts.items[:index], ts.items[index+1:]...)
	return nil
}

// Save writes the full list to storage.
func (ts *TaskStore) Save() error {
	if err := ts.storage.Save(ts.items); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	ts.logger.Debug("saved tasks", "path", ts.storage.Location(), "count", len(ts.items))
	return nil
}

// Items returns a copy of the tasks in order.
func (ts *TaskStore) Items() []models.Task {
	out := make([]models.Task, len(ts.items))
	copy(out, ts.items)
	return out
}

// Len returns the number of tasks.
func (ts *TaskStore) Len() int {
	return len(ts.items)
}

func (ts *TaskStore) check(op string, index int) error {
	if index < 0 || index >= len(ts.items) {
		return &IndexError{Op: op, Index: index, Len: len(ts.items)}
	}
	return nil
}
