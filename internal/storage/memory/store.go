package memory

import (
	"fmt"
	"sync"

	"github.com/tiwariParth/todo/internal/models"
	"github.com/tiwariParth/todo/internal/storage"
)

// MemoryStore implements the storage.Storage interface using in-memory storage
type MemoryStore struct {
	tasks   []models.Task
	saved   bool
	saves   int
	saveErr error
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty store that reports ErrNotExist until
// the first Save
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededMemoryStore creates a store that already holds tasks
func NewSeededMemoryStore(tasks ...models.Task) *MemoryStore {
	return &MemoryStore{
		tasks: clone(tasks),
		saved: true,
	}
}

// Location identifies the store in diagnostics
func (m *MemoryStore) Location() string {
	return "memory"
}

// Load returns a copy of the stored tasks
func (m *MemoryStore) Load() ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.saved {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotExist, m.Location())
	}
	return clone(m.tasks), nil
}

// Save replaces the stored tasks with a copy of tasks
func (m *MemoryStore) Save(tasks []models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks = clone(tasks)
	m.saved = true
	m.saves++
	return nil
}

// Saves reports how many successful saves have happened
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// FailSaves makes every following Save return err. A nil err restores
// normal behavior.
func (m *MemoryStore) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func clone(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}
