package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/dummie/internal/config"
)

const (
	configUse                  = "config"
	configShortDescription     = "manage dummie configuration"
	configInitUse              = "init"
	configInitShortDescription = "write the default configuration file"
	configInitLongDescription  = `Write the default configuration to ./config.yaml, or to ~/.dummie/config.yaml with --global.
An existing file is kept unless --force is given.`
	globalFlagName        = "global"
	forceFlagName         = "force"
	globalFlagDescription = "write the global configuration under the home directory"
	forceFlagDescription  = "overwrite an existing configuration file"
	configWrittenTemplate = "Configuration written to %s\n"
)

// createConfigCommand returns the config command group.
func (app *application) createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}
	configCommand.AddCommand(app.createConfigInitCommand())
	return configCommand
}

func (app *application) createConfigInitCommand() *cobra.Command {
	var global bool
	var force bool
	initCommand := &cobra.Command{
		Use:   configInitUse,
		Short: configInitShortDescription,
		Long:  configInitLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			path, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			_, writeError := fmt.Fprintf(command.OutOrStdout(), configWrittenTemplate, path)
			return writeError
		},
	}
	registerBooleanFlag(initCommand.Flags(), &global, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}
