package task

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// List renders the tasks as a table with columns Index, Content and
// Created At. Indices are positions in the current list.
func (ts *TaskStore) List() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Index", "Content", "Created At")

	for i, item := range ts.items {
		t.Row(strconv.Itoa(i), item.Content, item.CreatedAt)
	}
	return t.String()
}
