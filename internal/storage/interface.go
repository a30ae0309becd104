package storage

import (
	"errors"

	"github.com/tiwariParth/todo/internal/models"
)

// Common errors that can be returned by any storage implementation
var (
	ErrNotExist  = errors.New("task file does not exist")
	ErrMalformed = errors.New("malformed task data")
)

// Storage persists the full ordered task list. Implementations always
// replace the whole sequence; there are no partial updates.
type Storage interface {
	// Load returns every stored task in order. It returns an error
	// wrapping ErrNotExist when nothing has been saved yet.
	Load() ([]models.Task, error)

	// Save replaces the stored sequence with tasks.
	Save(tasks []models.Task) error

	// Location describes where the tasks live, for diagnostics.
	Location() string
}
