package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/dummie/internal/utils"
)

// ErrConfigurationNotFound reports an explicitly requested configuration file that does not exist.
var ErrConfigurationNotFound = errors.New("configuration file not found")

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	StrucView StrucViewConfiguration `mapstructure:"strucview" yaml:"strucview,omitempty"`
	Translate TranslateConfiguration `mapstructure:"translate" yaml:"translate,omitempty"`
}

// StrucViewConfiguration defines defaults for the strucview command.
type StrucViewConfiguration struct {
	Level       string            `mapstructure:"level" yaml:"level,omitempty"`
	Directory   string            `mapstructure:"dir" yaml:"dir,omitempty"`
	Format      string            `mapstructure:"format" yaml:"format,omitempty"`
	Interactive *bool             `mapstructure:"interactive" yaml:"interactive,omitempty"`
	Locale      string            `mapstructure:"locale" yaml:"locale,omitempty"`
	Skip        []string          `mapstructure:"skip" yaml:"skip,omitempty"`
	DefaultSkip []string          `mapstructure:"default_skip" yaml:"default_skip,omitempty"`
	Paths       PathConfiguration `mapstructure:"paths" yaml:"paths,omitempty"`
	Clipboard   *bool             `mapstructure:"clipboard" yaml:"clipboard,omitempty"`
}

// PathConfiguration controls which ignore files contribute skip names.
type PathConfiguration struct {
	UseGitignore  *bool `mapstructure:"use_gitignore" yaml:"use_gitignore,omitempty"`
	UseIgnoreFile *bool `mapstructure:"use_ignore" yaml:"use_ignore,omitempty"`
}

// TranslateConfiguration defines defaults for the translate command.
type TranslateConfiguration struct {
	From       string `mapstructure:"from" yaml:"from,omitempty"`
	To         string `mapstructure:"to" yaml:"to,omitempty"`
	Format     string `mapstructure:"format" yaml:"format,omitempty"`
	Timeout    string `mapstructure:"timeout" yaml:"timeout,omitempty"`
	Endpoint   string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	ChromePath string `mapstructure:"chrome_path" yaml:"chrome_path,omitempty"`
	Browser    *bool  `mapstructure:"browser_fallback" yaml:"browser_fallback,omitempty"`
	Clipboard  *bool  `mapstructure:"clipboard" yaml:"clipboard,omitempty"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if localPath != "" {
		localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(localConfig)
	}

	merged.StrucView.Skip = utils.NormalizeDirectoryNames(merged.StrucView.Skip)
	merged.StrucView.DefaultSkip = utils.NormalizeDirectoryNames(merged.StrucView.DefaultSkip)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath
		}
		return filepath.Join(workingDirectory, explicitPath)
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName)
}

// loadConfigurationFromPath reads one configuration file. A missing file is an
// empty configuration unless required is set.
func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			if required {
				return ApplicationConfiguration{}, fmt.Errorf("%w: %s", ErrConfigurationNotFound, path)
			}
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.StrucView = result.StrucView.merge(override.StrucView)
	result.Translate = result.Translate.merge(override.Translate)
	return result
}

func (config StrucViewConfiguration) merge(override StrucViewConfiguration) StrucViewConfiguration {
	result := config
	if override.Level != "" {
		result.Level = override.Level
	}
	if override.Directory != "" {
		result.Directory = override.Directory
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Interactive != nil {
		result.Interactive = cloneBool(override.Interactive)
	}
	if override.Locale != "" {
		result.Locale = override.Locale
	}
	if len(override.Skip) > 0 {
		result.Skip = append([]string{}, override.Skip...)
	}
	if len(override.DefaultSkip) > 0 {
		result.DefaultSkip = append([]string{}, override.DefaultSkip...)
	}
	result.Paths = result.Paths.merge(override.Paths)
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func (config PathConfiguration) merge(override PathConfiguration) PathConfiguration {
	result := config
	if override.UseGitignore != nil {
		result.UseGitignore = cloneBool(override.UseGitignore)
	}
	if override.UseIgnoreFile != nil {
		result.UseIgnoreFile = cloneBool(override.UseIgnoreFile)
	}
	return result
}

func (config TranslateConfiguration) merge(override TranslateConfiguration) TranslateConfiguration {
	result := config
	if override.From != "" {
		result.From = override.From
	}
	if override.To != "" {
		result.To = override.To
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Timeout != "" {
		result.Timeout = override.Timeout
	}
	if override.Endpoint != "" {
		result.Endpoint = override.Endpoint
	}
	if override.ChromePath != "" {
		result.ChromePath = override.ChromePath
	}
	if override.Browser != nil {
		result.Browser = cloneBool(override.Browser)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
