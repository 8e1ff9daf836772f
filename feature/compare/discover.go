package compare

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Discover returns the union of file names found directly inside folders.
// Names keep the order in which they were first seen: folders in the given
// order, entries in directory listing order. Unreadable folders are logged
// and skipped.
func (s *Service) Discover(folders []string) ([]string, error) {
	if _, err := filepath.Match(s.cfg.Filter, ""); err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", s.cfg.Filter, err)
	}

	seen := make(map[string]struct{})
	var names []string

	for _, folder := range folders {
		entries, err := os.ReadDir(folder)
		if err != nil {
			s.logger.Warn("Failed to read config folder", zap.String("folder", folder), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if _, ok := seen[name]; ok {
				continue
			}
			if !s.isFile(folder, entry) || !s.matches(name) {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names, nil
}

// isFile follows symlinks so linked files are compared and linked folders are not.
func (s *Service) isFile(folder string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(folder, entry.Name()))
	if err != nil {
		s.logger.Debug("Skipping broken link", zap.String("folder", folder), zap.String("name", entry.Name()))
		return false
	}
	return info.Mode().IsRegular()
}

func (s *Service) matches(name string) bool {
	if ok, _ := filepath.Match(s.cfg.Filter, name); !ok {
		return false
	}
	for _, ignore := range s.cfg.IgnoreSubstrings {
		if ignore != "" && strings.Contains(name, ignore) {
			return false
		}
	}
	return true
}
