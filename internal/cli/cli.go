// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/temirov/dummie/internal/config"
	"github.com/temirov/dummie/internal/release"
	"github.com/temirov/dummie/internal/services/clipboard"
	"github.com/temirov/dummie/internal/translate"
	"github.com/temirov/dummie/internal/utils"
)

const (
	versionFlagName      = "version"
	debugFlagName        = "debug"
	quietFlagName        = "quiet"
	configFlagName       = "config"
	versionTemplate      = "dummie version: %s\n"
	rootUse              = "dummie"
	rootShortDescription = "dummie command line interface"
	rootLongDescription  = `dummie bundles small developer conveniences.
strucview prints a depth-limited directory tree that collapses dependency and build folders.
translate translates text through the public translation API with a headless browser fallback.
Use --version to print the application version.`

	versionFlagDescription = "display application version"
	debugFlagDescription   = "enable debug logging"
	quietFlagDescription   = "only log errors"
	configFlagDescription  = "path to a configuration file (defaults to ./config.yaml)"

	formatFlagName        = "format"
	formatFlagDescription = "output format (raw, json, xml)"
	invalidFormatMessage  = "Invalid format value '%s'"

	workingDirectoryErrorFormat  = "unable to determine working directory: %w"
	loadConfigurationErrorFormat = "load configuration: %w"

	httpClientTimeout = 15 * time.Second
)

// dependencies are the collaborators commands reach outside the process with.
type dependencies struct {
	stdin           io.Reader
	isTerminal      func() bool
	clipboard       clipboard.Copier
	httpClient      *http.Client
	releaseProxyURL string
	locateChrome    func() translate.ChromeLocation
	newBrowser      func(options translate.BrowserOptions) translate.Translator
	exit            func(code int)
}

func defaultDependencies() dependencies {
	return dependencies{
		stdin: os.Stdin,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		},
		clipboard:       clipboard.NewService(),
		httpClient:      &http.Client{Timeout: httpClientTimeout},
		releaseProxyURL: release.DefaultProxyURL,
		locateChrome:    translate.LocateChrome,
		newBrowser: func(options translate.BrowserOptions) translate.Translator {
			return translate.NewBrowserClient(options)
		},
		exit: os.Exit,
	}
}

// application carries state shared by every command of one invocation.
type application struct {
	dependencies  dependencies
	logger        *zap.Logger
	configuration config.ApplicationConfiguration
	configPath    string
	debug         bool
	quiet         bool
}

// Execute runs the dummie application.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rootCommand := createRootCommand(defaultDependencies())
	rootCommand.SetArgs(normalizeCopyFlagArguments(normalizeBooleanFlagArguments(rootCommand, os.Args[1:])))
	return rootCommand.ExecuteContext(ctx)
}

// createRootCommand builds the root Cobra command.
func createRootCommand(deps dependencies) *cobra.Command {
	var showVersion bool
	app := &application{dependencies: deps, logger: zap.NewNop()}

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				app.dependencies.exit(0)
				return nil
			}
			return app.initialize()
		},
		PersistentPostRun: func(command *cobra.Command, arguments []string) {
			_ = app.logger.Sync()
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	registerBooleanFlag(rootCommand.PersistentFlags(), &app.debug, debugFlagName, false, debugFlagDescription)
	registerBooleanFlag(rootCommand.PersistentFlags(), &app.quiet, quietFlagName, false, quietFlagDescription)
	rootCommand.PersistentFlags().StringVar(&app.configPath, configFlagName, "", configFlagDescription)
	rootCommand.MarkFlagsMutuallyExclusive(debugFlagName, quietFlagName)

	rootCommand.AddCommand(
		app.createStrucViewCommand(),
		app.createTranslateCommand(),
		app.createInfoCommand(),
		app.createVersionCheckCommand(),
		app.createBrowserDetectCommand(),
		app.createConfigCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// initialize builds the logger and loads layered configuration.
func (app *application) initialize() error {
	level := utils.LogLevelNormal
	switch {
	case app.debug:
		level = utils.LogLevelDebug
	case app.quiet:
		level = utils.LogLevelQuiet
	}
	logger, loggerError := utils.NewLeveledLogger(level)
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	app.logger = logger

	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: app.configPath,
	})
	if configurationError != nil {
		return fmt.Errorf(loadConfigurationErrorFormat, configurationError)
	}
	app.configuration = configuration
	app.logger.Debug("configuration loaded", zap.String("explicit_path", app.configPath))
	return nil
}

// emit writes rendered output and optionally copies it to the clipboard.
func (app *application) emit(command *cobra.Command, rendered string, copyToClipboard bool) error {
	if _, writeError := io.WriteString(command.OutOrStdout(), rendered); writeError != nil {
		return writeError
	}
	if !copyToClipboard {
		return nil
	}
	if copyError := app.dependencies.clipboard.Copy(rendered); copyError != nil {
		app.logger.Warn("failed to copy output to clipboard", zap.Error(copyError))
		return nil
	}
	app.logger.Info("copied output to clipboard")
	return nil
}

// boolSetting returns the configured value unless the flag was given on the command line.
func boolSetting(command *cobra.Command, flagName string, flagValue bool, configured *bool) bool {
	if command.Flags().Changed(flagName) || configured == nil {
		return flagValue
	}
	return *configured
}

// stringSetting returns the configured value unless the flag was given on the command line.
func stringSetting(command *cobra.Command, flagName string, flagValue string, configured string) string {
	if command.Flags().Changed(flagName) || configured == "" {
		return flagValue
	}
	return configured
}
