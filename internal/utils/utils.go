// Package utils contains general helper functions used across the dummie tool.
package utils

import (
	"path/filepath"
	"strings"
)

const pathSegmentSeparator = "/"

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// NormalizeDirectoryNames trims user-supplied directory names down to bare basenames.
// Surrounding whitespace and trailing separators are removed, empty values are
// dropped, and duplicates are collapsed while preserving order.
func NormalizeDirectoryNames(names []string) []string {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		trimmed = strings.ReplaceAll(trimmed, "\\", pathSegmentSeparator)
		trimmed = strings.TrimRight(trimmed, pathSegmentSeparator)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, filepath.Base(filepath.FromSlash(trimmed)))
	}
	return DeduplicatePatterns(normalized)
}

// NameSet converts names into a set keyed by name.
func NameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
