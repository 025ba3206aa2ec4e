// Package vault files rendered notes into an Obsidian vault organized as a
// province/city/suburb folder hierarchy.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/note"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
)

// Store writes notes beneath a vault root directory.
type Store struct {
	root      string
	subfolder string
	logger    *zap.Logger
}

// NewStore creates a vault store rooted at dir. An optional subfolder sits
// between the vault root and the location hierarchy. If logger is nil a
// no-op logger is used.
func NewStore(dir, subfolder string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("vault directory must not be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{root: dir, subfolder: subfolder, logger: logger}, nil
}

// Save writes a note into <root>[/<subfolder>]/<Province>/<City>/<Suburb>/
// and returns the full path. Missing location segments fall back to
// "Unsorted" so a partially scraped listing still gets filed.
func (s *Store) Save(n *note.Note) (string, error) {
	if n == nil {
		return "", fmt.Errorf("cannot save a nil note")
	}

	dir := filepath.Join(
		s.root,
		sanitizeSegment(s.subfolder),
		locationSegment(n.Province),
		locationSegment(n.City),
		locationSegment(n.Suburb),
	)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create vault directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, n.Filename)
	if err := os.WriteFile(path, []byte(n.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to write note %s: %w", path, err)
	}

	s.logger.Info("saved note",
		zap.String("op", "vault.Save"),
		zap.String("path", path),
	)
	return path, nil
}

// sanitizeSegment makes a name safe to use as a single folder name. An
// empty segment stays empty, which filepath.Join elides.
func sanitizeSegment(segment string) string {
	cleaned := strings.TrimSpace(segment)
	cleaned = strings.ReplaceAll(cleaned, "/", "-")
	cleaned = strings.ReplaceAll(cleaned, "\\", "-")
	cleaned = strings.ReplaceAll(cleaned, "..", "")
	return strings.TrimSpace(cleaned)
}

// locationSegment sanitizes a province/city/suburb name, defaulting to the
// unsorted folder when the listing did not provide one.
func locationSegment(segment string) string {
	cleaned := sanitizeSegment(segment)
	if cleaned == "" {
		return constants.DefaultVaultFolder
	}
	return cleaned
}
