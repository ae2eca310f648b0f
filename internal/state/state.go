// Package state remembers where the cursor was in each file so that
// reopening a file restores the position.
//
// The state file is a JSON document keyed by a name-based UUID of each
// file's absolute path:
//
//	{
//	  "files": {
//	    "6fa459ea-ee8a-3ca4-894e-db77e160355e": {
//	      "path": "/home/me/notes.txt",
//	      "line": 12,
//	      "column": 4
//	    }
//	  }
//	}
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/rite/internal/engine"
)

// ErrCorrupt indicates the state file is not valid JSON.
var ErrCorrupt = errors.New("state file is not valid JSON")

// Store reads and writes cursor positions in a JSON state file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the file at path. The file is
// created on the first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Key returns the identifier a file is stored under.
func Key(file string) string {
	abs, err := filepath.Abs(file)
	if err != nil {
		abs = file
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+abs)).String()
}

// Load returns the remembered cursor position for file. The boolean is
// false when nothing is remembered.
func (s *Store) Load(file string) (engine.Point, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return engine.Point{}, false, err
	}

	entry := gjson.GetBytes(data, "files."+Key(file))
	if !entry.Exists() {
		return engine.Point{}, false, nil
	}
	p := engine.Point{
		Line:   int(entry.Get("line").Int()),
		Column: int(entry.Get("column").Int()),
	}
	if p.Line < 0 || p.Column < 0 {
		return engine.Point{}, false, nil
	}
	return p, true, nil
}

// Save records the cursor position for file.
func (s *Store) Save(file string, p engine.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if errors.Is(err, ErrCorrupt) {
		data = nil
	} else if err != nil {
		return err
	}
	if len(data) == 0 {
		data = []byte("{}")
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		abs = file
	}
	base := "files." + Key(file)
	for _, kv := range []struct {
		path  string
		value any
	}{
		{base + ".path", abs},
		{base + ".line", p.Line},
		{base + ".column", p.Column},
	} {
		data, err = sjson.SetBytes(data, kv.path, kv.value)
		if err != nil {
			return fmt.Errorf("updating state: %w", err)
		}
	}

	return s.write(pretty.Pretty(data))
}

// Forget removes the remembered position for file.
func (s *Store) Forget(file string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil || len(data) == 0 {
		return err
	}
	data, err = sjson.DeleteBytes(data, "files."+Key(file))
	if err != nil {
		return fmt.Errorf("updating state: %w", err)
	}
	return s.write(pretty.Pretty(data))
}

// read returns the state file contents, or nil if it does not exist.
func (s *Store) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading state file %s: %w", s.path, err)
	}
	if len(data) > 0 && !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w", s.path, ErrCorrupt)
	}
	return data, nil
}

// write replaces the state file atomically.
func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}
