// Package strucview builds depth-limited directory trees with collapsible skip-listed directories.
package strucview

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/temirov/dummie/internal/types"
	"github.com/temirov/dummie/internal/utils"
)

var (
	// ErrRootNotFound reports a root path that cannot be resolved or accessed.
	ErrRootNotFound = errors.New("directory not found or inaccessible")

	errMissingPrompter = errors.New("strucview: interactive mode requires a prompter")
)

// Options configures a Renderer.
type Options struct {
	// SkipDirs are directory names that are always collapsed.
	SkipDirs []string
	// DefaultSkipDirs overrides DefaultSkipDirectories when non-empty.
	DefaultSkipDirs []string
	// Interactive asks Prompter about default skip-list names instead of collapsing them.
	Interactive bool
	Prompter    Prompter
	// Decisions caches interactive answers; a fresh cache is created when nil.
	Decisions       *SkipDecisions
	Locale          language.Tag
	StatConcurrency int
	Logger          *zap.Logger
}

// Entry is one child of a listed directory.
type Entry struct {
	Name        string
	Path        string
	IsDirectory bool
	Info        os.FileInfo
}

// Renderer walks a directory and produces the tree that strucview prints.
type Renderer struct {
	staticSkips     map[string]struct{}
	defaultSkips    map[string]struct{}
	interactive     bool
	prompter        Prompter
	decisions       *SkipDecisions
	collator        *collate.Collator
	statConcurrency int
	logger          *zap.Logger
}

// NewRenderer validates options and returns a Renderer.
func NewRenderer(options Options) (*Renderer, error) {
	if options.Interactive && options.Prompter == nil {
		return nil, errMissingPrompter
	}
	defaultSkipDirs := options.DefaultSkipDirs
	if len(defaultSkipDirs) == 0 {
		defaultSkipDirs = DefaultSkipDirectories
	}
	decisions := options.Decisions
	if decisions == nil {
		decisions = NewSkipDecisions()
	}
	statConcurrency := options.StatConcurrency
	if statConcurrency <= 0 {
		statConcurrency = runtime.NumCPU() * 4
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		staticSkips:     utils.NameSet(utils.NormalizeDirectoryNames(options.SkipDirs)),
		defaultSkips:    utils.NameSet(utils.NormalizeDirectoryNames(defaultSkipDirs)),
		interactive:     options.Interactive,
		prompter:        options.Prompter,
		decisions:       decisions,
		collator:        collate.New(options.Locale),
		statConcurrency: statConcurrency,
		logger:          logger,
	}, nil
}

// Render walks rootPath up to maxDepth and returns the resulting tree.
// Only the root can fail; unreadable descendants are treated as empty or absent.
func (renderer *Renderer) Render(ctx context.Context, rootPath string, maxDepth Depth) (*types.TreeOutputNode, error) {
	absolutePath, absoluteError := filepath.Abs(rootPath)
	if absoluteError != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRootNotFound, rootPath, absoluteError)
	}
	rootInfo, statError := os.Stat(absolutePath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, absolutePath)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRootNotFound, absolutePath, statError)
	}

	rootNode := &types.TreeOutputNode{
		Path: absolutePath,
		Name: filepath.Base(absolutePath),
		Type: types.NodeTypeFile,
	}
	if !rootInfo.IsDir() {
		return rootNode, nil
	}
	rootNode.Type = types.NodeTypeDirectory
	if walkError := renderer.walk(ctx, rootNode, 0, maxDepth, []os.FileInfo{rootInfo}); walkError != nil {
		return nil, walkError
	}
	return rootNode, nil
}

// walk expands node; ancestors holds the directories on the path from the root
// down to node, so a symlink back to any of them is collapsed instead of entered.
func (renderer *Renderer) walk(ctx context.Context, node *types.TreeOutputNode, depth int, maxDepth Depth, ancestors []os.FileInfo) error {
	if !maxDepth.Allows(depth) {
		return nil
	}
	if contextError := ctx.Err(); contextError != nil {
		return contextError
	}
	for _, entry := range renderer.listEntries(node.Path) {
		child := &types.TreeOutputNode{
			Path:         entry.Path,
			Name:         entry.Name,
			Type:         types.NodeTypeFile,
			Depth:        depth + 1,
			LastModified: utils.FormatModificationTime(entry.Info.ModTime()),
		}
		node.Children = append(node.Children, child)
		if !entry.IsDirectory {
			child.Size = utils.FormatFileSize(entry.Info.Size())
			continue
		}
		child.Type = types.NodeTypeDirectory

		skip, skipError := renderer.shouldSkip(ctx, entry.Name)
		if skipError != nil {
			return skipError
		}
		if skip || !maxDepth.Allows(depth+1) {
			collapse(child)
			continue
		}
		if revisitsAncestor(entry.Info, ancestors) {
			renderer.logger.Debug("collapsing directory cycle", zap.String("path", entry.Path))
			collapse(child)
			continue
		}
		if walkError := renderer.walk(ctx, child, depth+1, maxDepth, append(ancestors, entry.Info)); walkError != nil {
			return walkError
		}
	}
	return nil
}

// shouldSkip reports whether a directory named name belongs to the effective skip-set.
func (renderer *Renderer) shouldSkip(ctx context.Context, name string) (bool, error) {
	if _, static := renderer.staticSkips[name]; static {
		return true, nil
	}
	if _, conventional := renderer.defaultSkips[name]; !conventional {
		return false, nil
	}
	if !renderer.interactive {
		return true, nil
	}
	return renderer.decisions.Resolve(ctx, name, renderer.prompter)
}

// listEntries reads a directory and stats its children concurrently.
// A directory that cannot be read yields no entries; a child that cannot be
// stat-ed is dropped.
func (renderer *Renderer) listEntries(directoryPath string) []Entry {
	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		renderer.logger.Debug("skipping unreadable directory", zap.String("path", directoryPath), zap.Error(readError))
		return nil
	}

	results := make([]*Entry, len(directoryEntries))
	var group errgroup.Group
	group.SetLimit(renderer.statConcurrency)
	for entryIndex, directoryEntry := range directoryEntries {
		entryIndex, directoryEntry := entryIndex, directoryEntry
		group.Go(func() error {
			childPath := filepath.Join(directoryPath, directoryEntry.Name())
			info, statError := os.Stat(childPath)
			if statError != nil {
				renderer.logger.Debug("dropping entry", zap.String("path", childPath), zap.Error(statError))
				return nil
			}
			results[entryIndex] = &Entry{
				Name:        directoryEntry.Name(),
				Path:        childPath,
				IsDirectory: info.IsDir(),
				Info:        info,
			}
			return nil
		})
	}
	// Stat failures drop the entry inside the goroutine, so Wait has no error to report.
	_ = group.Wait()

	entries := make([]Entry, 0, len(results))
	for _, result := range results {
		if result != nil {
			entries = append(entries, *result)
		}
	}
	renderer.sortEntries(entries)
	return entries
}

// sortEntries orders directories before files and names by the configured collation.
func (renderer *Renderer) sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(left, right int) bool {
		if entries[left].IsDirectory != entries[right].IsDirectory {
			return entries[left].IsDirectory
		}
		if comparison := renderer.collator.CompareString(entries[left].Name, entries[right].Name); comparison != 0 {
			return comparison < 0
		}
		return entries[left].Name < entries[right].Name
	})
}

// Decisions exposes the skip-decision cache used by the renderer.
func (renderer *Renderer) Decisions() *SkipDecisions {
	return renderer.decisions
}

func revisitsAncestor(info os.FileInfo, ancestors []os.FileInfo) bool {
	for _, ancestor := range ancestors {
		if os.SameFile(info, ancestor) {
			return true
		}
	}
	return false
}

func collapse(node *types.TreeOutputNode) {
	node.Collapsed = true
	node.Children = []*types.TreeOutputNode{{
		Name:  types.PlaceholderName,
		Type:  types.NodeTypePlaceholder,
		Depth: node.Depth + 1,
	}}
}
