package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/temirov/dummie/internal/types"
)

const (
	copyFlagName                = "copy"
	copyFlagDescription         = "copy the output to the system clipboard"
	copyFlagTypeName            = "copy"
	invalidCopyFlagValueMessage = "invalid copy flag value '%s'"
)

// copyFlagCommandNames are the commands that accept --copy; a bare --copy
// followed by one of them is never given the command name as its value.
var copyFlagCommandNames = map[string]struct{}{
	types.CommandStrucView: {},
	strucviewAlias:         {},
	types.CommandTranslate: {},
	translateAlias:         {},
}

func isCopyFlagCommand(argument string) bool {
	_, known := copyFlagCommandNames[strings.ToLower(strings.TrimSpace(argument))]
	return known
}

func interpretCopyFlagLiteral(input string) (bool, bool) {
	if strings.TrimSpace(input) == "" {
		return true, true
	}
	return parseBooleanLiteral(input)
}

type copyFlagValue struct {
	target *bool
}

func (value *copyFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf(invalidCopyFlagValueMessage, input)
	}
	booleanValue, ok := interpretCopyFlagLiteral(input)
	if !ok {
		return fmt.Errorf(invalidCopyFlagValueMessage, input)
	}
	*value.target = booleanValue
	return nil
}

func (value *copyFlagValue) String() string {
	if value == nil || value.target == nil || !*value.target {
		return "false"
	}
	return "true"
}

func (value *copyFlagValue) Type() string {
	return copyFlagTypeName
}

func registerCopyFlag(flagSet *pflag.FlagSet, target *bool) {
	if flagSet == nil || target == nil {
		return
	}
	*target = false
	flagSet.Var(&copyFlagValue{target: target}, copyFlagName, copyFlagDescription)
	if lookup := flagSet.Lookup(copyFlagName); lookup != nil {
		lookup.NoOptDefVal = "true"
	}
}

// normalizeCopyFlagArguments turns "--copy <literal>" into "--copy=<literal>".
// After the command name a non-literal value following --copy is left
// positional, so "translate --copy hello" copies the translation of hello.
func normalizeCopyFlagArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	commandContext := false
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == "--" {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if current == "--"+copyFlagName {
			nextIndex := index + 1
			if nextIndex >= len(arguments) || strings.HasPrefix(arguments[nextIndex], "-") {
				normalized = append(normalized, fmt.Sprintf("--%s=true", copyFlagName))
				continue
			}
			nextValue := arguments[nextIndex]
			if booleanValue, ok := interpretCopyFlagLiteral(nextValue); ok {
				normalized = append(normalized, fmt.Sprintf("--%s=%t", copyFlagName, booleanValue))
				index++
				continue
			}
			if commandContext || isCopyFlagCommand(nextValue) {
				normalized = append(normalized, fmt.Sprintf("--%s=true", copyFlagName))
				continue
			}
			normalized = append(normalized, fmt.Sprintf("--%s=%s", copyFlagName, nextValue))
			index++
			continue
		}
		normalized = append(normalized, current)
		if !commandContext && !strings.HasPrefix(current, "-") && isCopyFlagCommand(current) {
			commandContext = true
		}
	}
	return normalized
}
