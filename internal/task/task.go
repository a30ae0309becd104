package task

import "errors"

// ErrIndex matches every IndexError via errors.Is.
var ErrIndex = errors.New("index out of range")

// Operations that address a task by index.
const (
	OpEdit   = "edit"
	OpRemove = "remove"
)

// IndexError reports an index outside [0, Len) passed to Edit or Remove.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

// Error returns the message shown to the user.
func (e *IndexError) Error() string {
	if e.Op == OpEdit {
		return "Can Not edit Content for given index"
	}
	return "Invalid index"
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}
