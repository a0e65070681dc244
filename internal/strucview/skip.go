package strucview

import (
	"context"
	"sort"
)

// DefaultSkipDirectories lists directory names that are collapsed unless the
// user decides otherwise in interactive mode.
var DefaultSkipDirectories = []string{
	"node_modules",
	"next",
	"dist",
	"build",
	".git",
	".github",
}

// Prompter resolves whether directories with the given basename should be skipped.
type Prompter interface {
	ShouldSkip(ctx context.Context, directoryName string) (bool, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context, directoryName string) (bool, error)

// ShouldSkip calls the underlying function.
func (function PrompterFunc) ShouldSkip(ctx context.Context, directoryName string) (bool, error) {
	return function(ctx, directoryName)
}

// SkipDecisions caches skip verdicts by directory basename for one invocation.
// It is not safe for concurrent use; the renderer consults it serially.
type SkipDecisions struct {
	verdicts map[string]bool
}

// NewSkipDecisions returns an empty decision cache.
func NewSkipDecisions() *SkipDecisions {
	return &SkipDecisions{verdicts: map[string]bool{}}
}

// Lookup returns the cached verdict for name and whether one exists.
func (decisions *SkipDecisions) Lookup(name string) (bool, bool) {
	verdict, known := decisions.verdicts[name]
	return verdict, known
}

// Record stores the verdict for name, replacing any earlier one.
func (decisions *SkipDecisions) Record(name string, skip bool) {
	decisions.verdicts[name] = skip
}

// Resolve returns the cached verdict for name, asking the prompter on first use.
func (decisions *SkipDecisions) Resolve(ctx context.Context, name string, prompter Prompter) (bool, error) {
	if verdict, known := decisions.Lookup(name); known {
		return verdict, nil
	}
	verdict, promptError := prompter.ShouldSkip(ctx, name)
	if promptError != nil {
		return false, promptError
	}
	decisions.Record(name, verdict)
	return verdict, nil
}

// Skipped returns the names resolved as skipped, sorted.
func (decisions *SkipDecisions) Skipped() []string {
	var names []string
	for name, verdict := range decisions.verdicts {
		if verdict {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Len reports how many names have a cached verdict.
func (decisions *SkipDecisions) Len() int {
	return len(decisions.verdicts)
}
