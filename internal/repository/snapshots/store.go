// Package snapshots saves raw service replies to disk so development runs
// can replay a previous query instead of spending a metered API call.
package snapshots

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	filePrefix = "exchange-rate-"
	fileSuffix = ".txt"
)

// Store reads and writes one snapshot file per day in a single directory.
// File names carry the date, so a plain directory listing doubles as the
// snapshot history.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes data under today's date, replacing an earlier snapshot from
// the same day, and returns the file name.
func (s *Store) Save(data string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := filePrefix + time.Now().Format("2006-01-02") + fileSuffix
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(data), 0o644); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", name, err)
	}
	return name, nil
}

// Load reads one saved reply by file name.
func (s *Store) Load(name string) (string, error) {
	body, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("read snapshot %s: %w", name, err)
	}
	return string(body), nil
}

// Latest returns the newest snapshot body and its file name. Dated names
// sort lexicographically, so no timestamps are consulted.
func (s *Store) Latest() (string, string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", "", fmt.Errorf("read snapshot dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.Type().IsRegular() && strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", "", fmt.Errorf("no snapshots in %s", s.dir)
	}
	sort.Strings(names)

	name := names[len(names)-1]
	body, err := s.Load(name)
	if err != nil {
		return "", "", err
	}
	return body, name, nil
}
