package utils

const (
	// ApplicationName is the binary name used in help text and configuration paths.
	ApplicationName = "dummie"
	// ModulePath is the Go module path used for release lookups.
	ModulePath = "github.com/temirov/dummie"
	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the configuration directory under the user's home.
	GlobalConfigDirectoryName = ".dummie"
	// IgnoreFileName is the name of the project-level ignore file.
	IgnoreFileName = ".ignore"
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "Error"
)
