// Package artefact stores rendered invoice HTML on the filesystem, outside
// the database, under <data dir>/invoices/<type>/<year>/<month>/.
package artefact

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Load when no artefact exists at the path.
var ErrNotFound = errors.New("invoice html not found")

// invoice numbers like "2024/01" must stay valid filenames
var safeName = strings.NewReplacer("/", "-", "\\", "-")

type Store struct {
	root string
}

func NewStore(dataDir string) *Store {
	return &Store{root: filepath.Join(dataDir, "invoices")}
}

func (s *Store) path(number, documentType, year, month string) string {
	return filepath.Join(s.root, documentType, year, month, safeName.Replace(number)+".html")
}

// Save writes the rendered HTML, creating the directory tree on demand, and
// returns the absolute path of the file.
func (s *Store) Save(number, documentType, year, month, html string) (string, error) {
	p := s.path(number, documentType, year, month)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}
	if err := os.WriteFile(p, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write invoice html: %w", err)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p, nil
	}
	return abs, nil
}

// Load reads a previously saved artefact.
func (s *Store) Load(number, documentType, year, month string) (string, error) {
	p := s.path(number, documentType, year, month)
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if err != nil {
		return "", fmt.Errorf("read invoice html: %w", err)
	}
	return string(b), nil
}

// Delete removes an artefact. A missing file is a successful no-op.
func (s *Store) Delete(number, documentType, year, month string) error {
	err := os.Remove(s.path(number, documentType, year, month))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete invoice html: %w", err)
	}
	return nil
}
