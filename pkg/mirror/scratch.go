package mirror

import (
	"os"
	"path/filepath"
)

// Scratch is the run-owned directory for generated files (the agent
// certificate and its build recipe). It is created lazily and removed
// unconditionally when the run ends, on success and failure alike.
type Scratch struct {
	dir string
}

func NewScratch() (*Scratch, error) {
	dir, err := os.MkdirTemp("", "ecrmirror")
	if err != nil {
		return nil, err
	}
	return &Scratch{dir: dir}, nil
}

func (s *Scratch) Dir() string {
	return s.dir
}

// WriteFile materializes a file inside the scratch directory and returns
// its full path.
func (s *Scratch) WriteFile(name string, data []byte, perm os.FileMode) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, perm); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Scratch) Cleanup() error {
	return os.RemoveAll(s.dir)
}
