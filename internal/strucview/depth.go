package strucview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Depth is the depth budget of a render: the number of directory levels
// below the root that are listed. Unlimited disables the cutoff.
type Depth int

const (
	// Unlimited renders every reachable level.
	Unlimited Depth = -1

	// AllLevelsToken is the command-line sentinel for Unlimited.
	AllLevelsToken = "la"
	allLevelsAlias = "all"

	// DefaultLevel is the depth used when none is supplied.
	DefaultLevel Depth = 3
)

// ErrInvalidDepth reports a depth value that is neither a non-negative integer nor the sentinel.
var ErrInvalidDepth = errors.New("level must be a non-negative number or 'la'")

// ParseDepth converts a command-line level into a Depth.
func ParseDepth(value string) (Depth, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == AllLevelsToken || normalized == allLevelsAlias {
		return Unlimited, nil
	}
	parsed, parseError := strconv.Atoi(normalized)
	if parseError != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidDepth, value)
	}
	return Depth(parsed), nil
}

// IsUnlimited reports whether the depth cutoff is disabled.
func (depth Depth) IsUnlimited() bool {
	return depth < 0
}

// Allows reports whether entries at the given level may be listed.
func (depth Depth) Allows(level int) bool {
	return depth.IsUnlimited() || level < int(depth)
}

// String renders the depth in the same form ParseDepth accepts.
func (depth Depth) String() string {
	if depth.IsUnlimited() {
		return AllLevelsToken
	}
	return strconv.Itoa(int(depth))
}
