package strucview

import (
	"errors"
	"testing"
)

func TestParseDepth(testingHandle *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  Depth
		expectErr bool
	}{
		{name: "zero", input: "0", expected: 0},
		{name: "positive", input: "7", expected: 7},
		{name: "padded", input: " 2 ", expected: 2},
		{name: "sentinel", input: "la", expected: Unlimited},
		{name: "sentinel_upper", input: "LA", expected: Unlimited},
		{name: "sentinel_alias", input: "all", expected: Unlimited},
		{name: "negative", input: "-1", expectErr: true},
		{name: "non_numeric", input: "deep", expectErr: true},
		{name: "fractional", input: "1.5", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			depth, parseError := ParseDepth(testCase.input)
			if testCase.expectErr {
				if !errors.Is(parseError, ErrInvalidDepth) {
					testingHandle.Fatalf("expected ErrInvalidDepth for %q, got %v", testCase.input, parseError)
				}
				return
			}
			if parseError != nil {
				testingHandle.Fatalf("unexpected error for %q: %v", testCase.input, parseError)
			}
			if depth != testCase.expected {
				testingHandle.Fatalf("expected %d, got %d", testCase.expected, depth)
			}
		})
	}
}

func TestDepthAllows(testingHandle *testing.T) {
	if Depth(0).Allows(0) {
		testingHandle.Fatalf("depth 0 must not list the root's children")
	}
	if !Depth(2).Allows(1) || Depth(2).Allows(2) {
		testingHandle.Fatalf("depth 2 must allow level 1 and stop at level 2")
	}
	if !Unlimited.Allows(1 << 20) {
		testingHandle.Fatalf("unlimited depth must allow any level")
	}
}

func TestDepthString(testingHandle *testing.T) {
	if Unlimited.String() != AllLevelsToken {
		testingHandle.Fatalf("expected %q, got %q", AllLevelsToken, Unlimited.String())
	}
	if Depth(4).String() != "4" {
		testingHandle.Fatalf("expected \"4\", got %q", Depth(4).String())
	}
}
