package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/temirov/dummie/internal/strucview"
	"github.com/temirov/dummie/internal/translate"
	"github.com/temirov/dummie/internal/types"
	"github.com/temirov/dummie/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	configurationFileMode      fs.FileMode = 0o600
	configurationDirectoryMode fs.FileMode = 0o755
)

var errConfigurationExists = errors.New("configuration file already exists")

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// DefaultConfiguration returns the configuration equivalent to running without any file.
func DefaultConfiguration() ApplicationConfiguration {
	disabled := false
	enabled := true
	return ApplicationConfiguration{
		StrucView: StrucViewConfiguration{
			Level:       strucview.DefaultLevel.String(),
			Directory:   ".",
			Format:      types.FormatRaw,
			Interactive: &disabled,
			DefaultSkip: append([]string{}, strucview.DefaultSkipDirectories...),
			Paths: PathConfiguration{
				UseGitignore:  &disabled,
				UseIgnoreFile: &disabled,
			},
			Clipboard: &disabled,
		},
		Translate: TranslateConfiguration{
			From:      translate.DefaultSourceLanguage,
			To:        translate.DefaultTargetLanguage,
			Format:    types.FormatRaw,
			Timeout:   translate.DefaultBrowserTimeout.String(),
			Browser:   &enabled,
			Clipboard: &disabled,
		},
	}
}

// InitializeConfiguration writes the default configuration to the requested target and returns its path.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, resolveError := resolveInitPath(options)
	if resolveError != nil {
		return "", resolveError
	}

	if _, statError := os.Stat(destinationPath); statError == nil {
		if !options.Force {
			return "", fmt.Errorf("%w at %s", errConfigurationExists, destinationPath)
		}
	} else if !errors.Is(statError, fs.ErrNotExist) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, statError)
	}

	encoded, encodeError := yaml.Marshal(DefaultConfiguration())
	if encodeError != nil {
		return "", fmt.Errorf("encode default configuration: %w", encodeError)
	}
	if writeError := os.WriteFile(destinationPath, encoded, configurationFileMode); writeError != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, writeError)
	}
	return destinationPath, nil
}

func resolveInitPath(options InitOptions) (string, error) {
	switch options.Target {
	case "", InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		return filepath.Join(workingDirectory, utils.ConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory for configuration: %w", err)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if err := os.MkdirAll(configurationDirectory, configurationDirectoryMode); err != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
		return filepath.Join(configurationDirectory, utils.ConfigFileName), nil
	default:
		return "", fmt.Errorf("unsupported init target %q", options.Target)
	}
}
