// Package walker enumerates candidate files under a set of root directories.
// Traversal uses an explicit work queue instead of recursion so that deep or
// unbalanced trees cannot grow the stack, and a single unreadable directory
// never aborts the walk.
package walker

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth bounds how far below each root the walker descends.
const DefaultMaxDepth = 4

// FileRecord describes a single file discovered during a walk.
type FileRecord struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Options controls which files a walk visits and emits.
type Options struct {
	MinSize     int64    // files smaller than this are walked past, not emitted
	MaxDepth    int      // counted from each root independently; 0 means the root itself
	ExcludeDirs []string // directory names pruned entirely (e.g. node_modules)
	SkipHidden  bool     // prune directories whose name starts with a dot
}

// Walker walks directory trees and collects FileRecords.
type Walker struct {
	opts     Options
	excluded map[string]struct{}
	log      *logrus.Entry
}

type pendingDir struct {
	path  string
	depth int
}

// New creates a Walker. A zero MaxDepth is replaced with DefaultMaxDepth.
func New(opts Options, log *logrus.Entry) *Walker {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	excluded := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excluded[name] = struct{}{}
	}

	return &Walker{
		opts:     opts,
		excluded: excluded,
		log:      log,
	}
}

// Walk visits every file at or below the depth limit under the given roots
// and returns the records for files meeting the minimum size, along with the
// number of such files seen. Unreadable directories are skipped; the walk
// itself never fails. A root that does not exist contributes nothing.
func (w *Walker) Walk(roots []string) ([]FileRecord, int) {
	var records []FileRecord

	queue := make([]pendingDir, 0, len(roots))
	for _, root := range roots {
		queue = append(queue, pendingDir{path: root, depth: 0})
	}

	for len(queue) > 0 {
		dir := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		entries, err := os.ReadDir(dir.path)
		if err != nil {
			w.log.WithField("dir", dir.path).WithError(err).Debug("skipping unreadable directory")
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir.path, entry.Name())

			if entry.IsDir() {
				if w.shouldSkipDir(entry.Name()) {
					continue
				}
				if dir.depth+1 > w.opts.MaxDepth {
					continue
				}
				queue = append(queue, pendingDir{path: path, depth: dir.depth + 1})
				continue
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
			if info.Size() < w.opts.MinSize {
				continue
			}

			records = append(records, FileRecord{
				Path:    path,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		}
	}

	return records, len(records)
}

// shouldSkipDir reports whether a directory name is pruned from the walk
func (w *Walker) shouldSkipDir(name string) bool {
	if w.opts.SkipHidden && strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := w.excluded[name]
	return ok
}
