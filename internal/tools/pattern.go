package tools

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// splitPattern splits a comma separated Ant-style pattern list.
func splitPattern(pattern string) []string {
	var parts []string
	for _, p := range strings.Split(pattern, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// ValidatePattern checks that every element of a comma separated pattern
// list is a valid glob.
func ValidatePattern(pattern string) error {
	for _, p := range splitPattern(pattern) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return nil
}

// MatchPattern reports whether path matches any element of a comma
// separated pattern list.
func MatchPattern(pattern, path string) (bool, error) {
	path = filepath.ToSlash(filepath.Clean(path))
	for _, p := range splitPattern(pattern) {
		matched, err := doublestar.Match(p, path)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// Matching returns the descriptors whose default pattern matches path,
// in the order given.
func Matching(descs []Descriptor, path string) ([]Descriptor, error) {
	var matched []Descriptor
	for _, d := range descs {
		pattern, ok := PatternOf(d)
		if !ok || pattern == "" {
			continue
		}
		match, err := MatchPattern(pattern, path)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", d.ID(), err)
		}
		if match {
			matched = append(matched, d)
		}
	}
	return matched, nil
}
