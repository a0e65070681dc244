package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dummie/internal/release"
	"github.com/temirov/dummie/internal/translate"
	"github.com/temirov/dummie/internal/types"
	"github.com/temirov/dummie/internal/utils"
)

const (
	infoUse                       = types.CommandInfo
	infoShortDescription          = "show version and platform information"
	versionCheckUse               = types.CommandVersionCheck
	versionCheckShortDescription  = "check whether a newer release is available"
	browserDetectUse              = types.CommandBrowserDetect
	browserDetectShortDescription = "show the Chrome executable used by translate"

	infoTemplate = `%s %s
Go:         %s
Platform:   %s/%s
Executable: %s
`
	upToDateTemplate      = "%s %s is the latest version\n"
	updateTemplate        = "A newer version of %s is available: %s (current: %s)\nUpdate with: go install %s/cmd/%s@latest\n"
	versionCheckErrorText = "version check failed: %w"

	chromeFoundTemplate      = "Chrome found: %s\n"
	chromeFromEnvTemplate    = "Source: %s environment variable\n"
	chromeFromConfigTemplate = "Source: translate.chrome_path configuration\n"
	chromeExportTemplate     = "To pin it, run: export %s=%q\n"
	chromeMissingEnvTemplate = "%s is set to %s but no file exists there.\n"
	chromeNotFoundTemplate   = `Chrome was not found in the usual locations.
Install Google Chrome or Chromium, or point %s at the browser executable, for example:
  export %s=%q
`
)

// createInfoCommand returns the info subcommand.
func (app *application) createInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   infoUse,
		Short: infoShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			details := utils.CollectBuildDetails()
			_, writeError := fmt.Fprintf(command.OutOrStdout(), infoTemplate,
				utils.ApplicationName,
				details.Version,
				details.GoVersion,
				details.OperatingSys,
				details.Architecture,
				details.ExecutablePath,
			)
			return writeError
		},
	}
}

// createVersionCheckCommand returns the version-check subcommand.
func (app *application) createVersionCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   versionCheckUse,
		Short: versionCheckShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			checker := release.NewChecker(app.dependencies.httpClient, app.dependencies.releaseProxyURL)
			status, checkError := checker.Check(command.Context(), utils.ModulePath, utils.GetApplicationVersion())
			if checkError != nil {
				return fmt.Errorf(versionCheckErrorText, checkError)
			}
			app.logger.Debug("release status", zap.String("current", status.Current), zap.String("latest", status.Latest))
			if status.UpToDate {
				_, writeError := fmt.Fprintf(command.OutOrStdout(), upToDateTemplate, utils.ApplicationName, status.Current)
				return writeError
			}
			_, writeError := fmt.Fprintf(command.OutOrStdout(), updateTemplate,
				utils.ApplicationName, status.Latest, status.Current, utils.ModulePath, utils.ApplicationName)
			return writeError
		},
	}
}

// createBrowserDetectCommand returns the browser-detect subcommand.
func (app *application) createBrowserDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   browserDetectUse,
		Short: browserDetectShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			writer := command.OutOrStdout()
			if configured := app.configuration.Translate.ChromePath; configured != "" {
				fmt.Fprintf(writer, chromeFoundTemplate, configured)
				fmt.Fprint(writer, chromeFromConfigTemplate)
				return nil
			}
			location := app.dependencies.locateChrome()
			switch {
			case location.Discovered:
				fmt.Fprintf(writer, chromeFoundTemplate, location.Path)
				if location.FromEnv {
					fmt.Fprintf(writer, chromeFromEnvTemplate, translate.ChromePathEnvironmentVariable)
				} else {
					fmt.Fprintf(writer, chromeExportTemplate, translate.ChromePathEnvironmentVariable, location.Path)
				}
			case location.FromEnv:
				fmt.Fprintf(writer, chromeMissingEnvTemplate, translate.ChromePathEnvironmentVariable, location.Path)
			default:
				suggestion := location.Path
				if suggestion == "" {
					if candidates := translate.ChromeCandidates(runtime.GOOS); len(candidates) > 0 {
						suggestion = candidates[0]
					}
				}
				fmt.Fprintf(writer, chromeNotFoundTemplate, translate.ChromePathEnvironmentVariable, translate.ChromePathEnvironmentVariable, suggestion)
			}
			return nil
		},
	}
}
