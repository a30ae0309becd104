package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tiwariParth/todo/internal/models"
	"github.com/tiwariParth/todo/internal/storage"
)

const schemaURL = "https://github.com/tiwariParth/todo/tasks.schema.json"

// taskListSchema mirrors models.Task: every record needs both string fields.
const taskListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["content", "created_at"],
		"properties": {
			"content": {"type": "string"},
			"created_at": {"type": "string"}
		}
	}
}`

var schema = jsonschema.MustCompileString(schemaURL, taskListSchema)

// FileStore implements the storage.Storage interface using a single JSON file
type FileStore struct {
	filePath string
}

// NewFileStore creates a store backed by filePath. The file is not touched
// until Load or Save is called.
func NewFileStore(filePath string) (*FileStore, error) {
	if filePath == "" {
		return nil, errors.New("file path is empty")
	}
	return &FileStore{filePath: filePath}, nil
}

// Location returns the path of the backing file
func (f *FileStore) Location() string {
	return f.filePath
}

// Load reads and decodes every task from the file
func (f *FileStore) Load() ([]models.Task, error) {
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotExist, f.filePath)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformed, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformed, describe(err))
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformed, err)
	}
	return tasks, nil
}

// Save truncates the file and writes tasks as a JSON array. A failure
// part way through leaves the file in whatever state the write reached.
func (f *FileStore) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	file, err := os.OpenFile(f.filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	if err := json.NewEncoder(file).Encode(tasks); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// describe flattens a schema validation error to its first leaf cause,
// which names the offending record.
func describe(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Errorf("%s: %s", loc, ve.Message)
}
