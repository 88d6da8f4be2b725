package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists checkpoints. Each save gets a fresh file so an earlier
// checkpoint is never clobbered by a later partial failure.
type Store struct {
	dir string
}

// NewStore creates a Store writing into dir. An empty dir means the
// system temp directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Store{dir: dir}
}

// Dir returns the directory checkpoints are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the document to a new uniquely named file and returns its
// path, which is what gets echoed back to the operator for resume.
func (s *Store) Save(doc Document) (string, error) {
	data, err := doc.Marshal()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("runbook-%s.state.yaml", uuid.New().String())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}
