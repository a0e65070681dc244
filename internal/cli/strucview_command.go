package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/temirov/dummie/internal/config"
	"github.com/temirov/dummie/internal/output"
	"github.com/temirov/dummie/internal/strucview"
	"github.com/temirov/dummie/internal/types"
)

const (
	strucviewUse              = types.CommandStrucView
	strucviewAlias            = "sv"
	strucviewShortDescription = "display a depth-limited directory tree (" + strucviewAlias + ")"
	strucviewLongDescription  = `Print the directory tree rooted at --dir down to --level levels.
Directories such as node_modules, dist, build and .git are collapsed to a single [...] line.
Use --level la to list every level and --interactive to decide per folder name whether to collapse.`
	strucviewUsageExample = `  # Two levels of the current directory
  dummie strucview -l 2

  # Everything under ./web, collapsing vendor as well
  dummie strucview -l la -d ./web -e vendor

  # Ask before collapsing conventional folders
  dummie strucview -i`

	levelFlagName         = "level"
	levelFlagShorthand    = "l"
	directoryFlagName     = "dir"
	directoryFlagShort    = "d"
	exclusionFlagName     = "exclude"
	exclusionFlagShort    = "e"
	interactiveFlagName   = "interactive"
	interactiveFlagShort  = "i"
	gitignoreFlagName     = "gitignore"
	ignoreFileFlagName    = "ignore-file"
	defaultDirectoryValue = "."

	levelFlagDescription       = "number of levels to display, or 'la' for all levels"
	directoryFlagDescription   = "directory to display"
	exclusionFlagDescription   = "directory name to collapse (repeatable)"
	interactiveFlagDescription = "ask whether to collapse each conventionally skipped folder name"
	gitignoreFlagDescription   = "also collapse directory names listed in the root .gitignore"
	ignoreFileFlagDescription  = "also collapse directory names listed in the root .ignore"

	invalidLocaleMessage    = "invalid locale '%s': %w"
	nonInteractiveWarning   = "interactive mode needs a terminal; collapsing conventional folders without asking"
	errorAbsolutePathFormat = "abs failed for '%s': %w"
)

type strucviewOptions struct {
	level         string
	directory     string
	exclusions    []string
	interactive   bool
	useGitignore  bool
	useIgnoreFile bool
	format        string
	copyOutput    bool
}

// createStrucViewCommand returns the strucview subcommand.
func (app *application) createStrucViewCommand() *cobra.Command {
	var options strucviewOptions

	strucviewCommand := &cobra.Command{
		Use:     strucviewUse,
		Aliases: []string{strucviewAlias},
		Short:   strucviewShortDescription,
		Long:    strucviewLongDescription,
		Example: strucviewUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return app.runStrucView(command, options)
		},
	}

	strucviewCommand.Flags().StringVarP(&options.level, levelFlagName, levelFlagShorthand, strucview.DefaultLevel.String(), levelFlagDescription)
	strucviewCommand.Flags().StringVarP(&options.directory, directoryFlagName, directoryFlagShort, defaultDirectoryValue, directoryFlagDescription)
	strucviewCommand.Flags().StringArrayVarP(&options.exclusions, exclusionFlagName, exclusionFlagShort, nil, exclusionFlagDescription)
	strucviewCommand.Flags().BoolVarP(&options.interactive, interactiveFlagName, interactiveFlagShort, false, interactiveFlagDescription)
	registerBooleanFlag(strucviewCommand.Flags(), &options.useGitignore, gitignoreFlagName, false, gitignoreFlagDescription)
	registerBooleanFlag(strucviewCommand.Flags(), &options.useIgnoreFile, ignoreFileFlagName, false, ignoreFileFlagDescription)
	strucviewCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerCopyFlag(strucviewCommand.Flags(), &options.copyOutput)
	return strucviewCommand
}

func (app *application) runStrucView(command *cobra.Command, options strucviewOptions) error {
	settings := app.configuration.StrucView

	depth, depthError := strucview.ParseDepth(stringSetting(command, levelFlagName, options.level, settings.Level))
	if depthError != nil {
		return depthError
	}
	format := strings.ToLower(stringSetting(command, formatFlagName, options.format, settings.Format))
	if !output.IsSupportedFormat(format) {
		return fmt.Errorf(invalidFormatMessage, format)
	}
	locale := language.Und
	if settings.Locale != "" {
		parsedLocale, localeError := language.Parse(settings.Locale)
		if localeError != nil {
			return fmt.Errorf(invalidLocaleMessage, settings.Locale, localeError)
		}
		locale = parsedLocale
	}

	directory := stringSetting(command, directoryFlagName, options.directory, settings.Directory)
	absoluteDirectory, absoluteError := filepath.Abs(directory)
	if absoluteError != nil {
		return fmt.Errorf(errorAbsolutePathFormat, directory, absoluteError)
	}

	skipNames := append(append([]string{}, settings.Skip...), options.exclusions...)
	useGitignore := boolSetting(command, gitignoreFlagName, options.useGitignore, settings.Paths.UseGitignore)
	useIgnoreFile := boolSetting(command, ignoreFileFlagName, options.useIgnoreFile, settings.Paths.UseIgnoreFile)
	if info, statError := os.Stat(absoluteDirectory); statError == nil && info.IsDir() && (useGitignore || useIgnoreFile) {
		ignoredNames, loadError := config.LoadSkipNames(absoluteDirectory, useGitignore, useIgnoreFile)
		if loadError != nil {
			return loadError
		}
		skipNames = append(skipNames, ignoredNames...)
	}

	interactive := boolSetting(command, interactiveFlagName, options.interactive, settings.Interactive)
	var prompter strucview.Prompter
	if interactive {
		if !app.dependencies.isTerminal() {
			app.logger.Warn(nonInteractiveWarning)
			interactive = false
		} else {
			prompter = newTerminalPrompter(app.dependencies.stdin, command.ErrOrStderr())
		}
	}

	renderer, rendererError := strucview.NewRenderer(strucview.Options{
		SkipDirs:        skipNames,
		DefaultSkipDirs: settings.DefaultSkip,
		Interactive:     interactive,
		Prompter:        prompter,
		Locale:          locale,
		Logger:          app.logger,
	})
	if rendererError != nil {
		return rendererError
	}
	app.logger.Debug("rendering directory tree",
		zap.String("root", absoluteDirectory),
		zap.Stringer("level", depth),
		zap.Strings("skip", skipNames),
		zap.Bool("interactive", interactive),
	)

	tree, renderError := renderer.Render(command.Context(), absoluteDirectory, depth)
	if renderError != nil {
		return renderError
	}
	if interactive {
		app.logger.Debug("interactive skip decisions", zap.Strings("collapsed", renderer.Decisions().Skipped()))
	}

	rendered, formatError := output.RenderTree(format, tree)
	if formatError != nil {
		return formatError
	}
	return app.emit(command, rendered, boolSetting(command, copyFlagName, options.copyOutput, settings.Clipboard))
}
