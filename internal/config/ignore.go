package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/dummie/internal/utils"
)

const (
	// binarySectionHeader opens a section of an ignore file that holds no directory names.
	binarySectionHeader = "[binary]"
	// ignoreSectionHeader opens the section of an ignore file that holds ignore patterns.
	ignoreSectionHeader = "[ignore]"

	globCharacters = "*?[]"
)

// LoadIgnoreFileNames reads an ignore file and returns the plain directory names it lists.
// Patterns with glob characters, negations or nested paths are not names and are dropped.
// A missing file yields no names.
//
// #nosec G304
func LoadIgnoreFileNames(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var names []string
	currentSectionHeader := ignoreSectionHeader
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		if strings.EqualFold(trimmedLine, binarySectionHeader) {
			currentSectionHeader = binarySectionHeader
			continue
		}
		if strings.EqualFold(trimmedLine, ignoreSectionHeader) {
			currentSectionHeader = ignoreSectionHeader
			continue
		}
		if currentSectionHeader != ignoreSectionHeader {
			continue
		}
		if name, ok := directoryNameFromPattern(trimmedLine); ok {
			names = append(names, name)
		}
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return names, nil
}

// LoadSkipNames aggregates directory names from the .ignore and/or .gitignore files of a directory.
func LoadSkipNames(absoluteDirectoryPath string, useGitignore bool, useIgnoreFile bool) ([]string, error) {
	var combined []string
	if useIgnoreFile {
		ignoreNames, loadError := LoadIgnoreFileNames(filepath.Join(absoluteDirectoryPath, utils.IgnoreFileName))
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", utils.IgnoreFileName, absoluteDirectoryPath, loadError)
		}
		combined = append(combined, ignoreNames...)
	}
	if useGitignore {
		gitignoreNames, loadError := LoadIgnoreFileNames(filepath.Join(absoluteDirectoryPath, utils.GitIgnoreFileName))
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", utils.GitIgnoreFileName, absoluteDirectoryPath, loadError)
		}
		combined = append(combined, gitignoreNames...)
	}
	return utils.NormalizeDirectoryNames(combined), nil
}

func directoryNameFromPattern(pattern string) (string, bool) {
	if strings.HasPrefix(pattern, "!") || strings.ContainsAny(pattern, globCharacters) {
		return "", false
	}
	name := strings.Trim(pattern, "/")
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}
