package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tiwariParth/todo/internal/task"
)

var (
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
)

// TodoApp runs one command against a loaded TaskStore and reports the
// result on out.
type TodoApp struct {
	store *task.TaskStore
	out   io.Writer
}

func NewTodoApp(store *task.TaskStore, out io.Writer) *TodoApp {
	return &TodoApp{store: store, out: out}
}

// Add appends content, prints the table and persists.
func (app *TodoApp) Add(content string) error {
	app.store.Add(content)
	app.List()
	return app.store.Save()
}

// Remove deletes the task at index. An out of range index is reported
// on out and nothing is persisted.
func (app *TodoApp) Remove(index int) error {
	if err := app.store.Remove(index); err != nil {
		return app.indexError(err)
	}
	if err := app.store.Save(); err != nil {
		return err
	}
	success.Fprintln(app.out, "Item removed")
	app.List()
	return nil
}

// Edit replaces the content at index. An out of range index is reported
// on out and nothing is persisted.
func (app *TodoApp) Edit(index int, content string) error {
	if err := app.store.Edit(index, content); err != nil {
		return app.indexError(err)
	}
	if err := app.store.Save(); err != nil {
		return err
	}
	success.Fprintln(app.out, "Item Edited")
	app.List()
	return nil
}

// List prints the current table.
func (app *TodoApp) List() {
	fmt.Fprintln(app.out, app.store.List())
}

func (app *TodoApp) indexError(err error) error {
	if errors.Is(err, task.ErrIndex) {
		warning.Fprintln(app.out, err.Error())
		return nil
	}
	return err
}
