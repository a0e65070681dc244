package main

import (
	"fmt"
	"os"

	"github.com/temirov/dummie/internal/cli"
	"github.com/temirov/dummie/internal/utils"
)

// main is the entry point for the dummie command.
func main() {
	os.Exit(run())
}

// run executes the command tree and reports a failure through the console logger.
func run() int {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
		return 1
	}
	defer func() {
		_ = loggerInstance.Sync()
	}()
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		loggerInstance.Error(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
		return 1
	}
	return 0
}
