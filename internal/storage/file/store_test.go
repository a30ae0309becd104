package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/todo/internal/models"
	"github.com/tiwariParth/todo/internal/storage"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)
	return fs, path
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	fs, path := newTestFileStore(t)

	tasks, err := fs.Load()
	assert.ErrorIs(t, err, storage.ErrNotExist)
	assert.Nil(t, tasks)
	assert.Equal(t, path, fs.Location())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "load must not create the file")
}

func TestLoadReadsDocumentedFormat(t *testing.T) {
	fs, path := newTestFileStore(t)
	doc := `[{"content":"Buy milk","created_at":"2024-01-15 09:30:00"},{"content":"","created_at":"2024-01-15 09:31:00","extra":1}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	tasks, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, []models.Task{
		{Content: "Buy milk", CreatedAt: "2024-01-15 09:30:00"},
		{Content: "", CreatedAt: "2024-01-15 09:31:00"},
	}, tasks)
}

func TestLoadRejectsMalformedContent(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty file", ""},
		{"invalid json", `[{"content":`},
		{"not an array", `{"content":"a","created_at":"b"}`},
		{"null", `null`},
		{"missing created_at", `[{"content":"a"}]`},
		{"missing content", `[{"created_at":"2024-01-15 09:30:00"}]`},
		{"wrong type", `[{"content":7,"created_at":"2024-01-15 09:30:00"}]`},
		{"record not an object", `["a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, path := newTestFileStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0644))

			tasks, err := fs.Load()
			assert.ErrorIs(t, err, storage.ErrMalformed)
			assert.Nil(t, tasks)
		})
	}
}

func TestLoadOtherReadErrors(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	_, err = fs.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotExist)
	assert.NotErrorIs(t, err, storage.ErrMalformed)
}

func TestSaveRoundTrip(t *testing.T) {
	fs, _ := newTestFileStore(t)
	tasks := []models.Task{
		{Content: "Buy milk", CreatedAt: "2024-01-15 09:30:00"},
		{Content: "Walk \"the\" dog", CreatedAt: "2024-01-15 09:31:00"},
	}
	require.NoError(t, fs.Save(tasks))

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, tasks, loaded)
}

func TestSaveTruncatesPreviousContent(t *testing.T) {
	fs, path := newTestFileStore(t)
	require.NoError(t, fs.Save([]models.Task{
		{Content: "a long item that makes the file bigger", CreatedAt: "2024-01-15 09:30:00"},
		{Content: "another", CreatedAt: "2024-01-15 09:31:00"},
	}))
	require.NoError(t, fs.Save([]models.Task{{Content: "b", CreatedAt: "2024-01-15 09:32:00"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"content":"b","created_at":"2024-01-15 09:32:00"}]`, string(data))
}

func TestSaveEmptyWritesEmptyArray(t *testing.T) {
	fs, path := newTestFileStore(t)
	require.NoError(t, fs.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "missing", "todo.json"))
	require.NoError(t, err)

	assert.Error(t, fs.Save([]models.Task{{Content: "a", CreatedAt: "b"}}))
}
