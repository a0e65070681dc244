package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		defaultValue bool
		arguments    []string
		expected     bool
		expectError  bool
	}{
		{
			name:         "defaults_to_false",
			defaultValue: false,
			arguments:    []string{},
			expected:     false,
		},
		{
			name:         "keeps_true_default",
			defaultValue: true,
			arguments:    []string{},
			expected:     true,
		},
		{
			name:         "sets_true_without_value",
			defaultValue: false,
			arguments:    []string{"--browser"},
			expected:     true,
		},
		{
			name:         "sets_false_with_equals",
			defaultValue: true,
			arguments:    []string{"--browser=false"},
			expected:     false,
		},
		{
			name:         "sets_false_with_separate_literal",
			defaultValue: true,
			arguments:    []string{"--browser", "No"},
			expected:     false,
		},
		{
			name:         "sets_true_with_on_literal",
			defaultValue: false,
			arguments:    []string{"--browser", "on"},
			expected:     true,
		},
		{
			name:         "leaves_non_boolean_trailing_value_positional",
			defaultValue: false,
			arguments:    []string{"--browser", "hello"},
			expected:     true,
		},
		{
			name:         "rejects_invalid_equals_value",
			defaultValue: false,
			arguments:    []string{"--browser=sometimes"},
			expectError:  true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "boolean-test"}
			flagValue := !testCase.defaultValue
			registerBooleanFlag(command.Flags(), &flagValue, "browser", testCase.defaultValue, "toggle browser fallback")
			parseErr := command.ParseFlags(normalizeBooleanFlagArguments(command, testCase.arguments))
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestParseBooleanLiteral(t *testing.T) {
	testCases := []struct {
		input         string
		expectedValue bool
		expectedOK    bool
	}{
		{input: "Y", expectedValue: true, expectedOK: true},
		{input: " yes ", expectedValue: true, expectedOK: true},
		{input: "n", expectedValue: false, expectedOK: true},
		{input: "OFF", expectedValue: false, expectedOK: true},
		{input: "", expectedOK: false},
		{input: "maybe", expectedOK: false},
	}
	for _, testCase := range testCases {
		value, ok := parseBooleanLiteral(testCase.input)
		if ok != testCase.expectedOK || (ok && value != testCase.expectedValue) {
			t.Fatalf("parseBooleanLiteral(%q) = %t, %t", testCase.input, value, ok)
		}
	}
}
