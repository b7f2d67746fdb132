package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fenilsonani/dupescan/internal/walker"
)

// MaxLargeFiles caps how many files a large-file scan returns.
const MaxLargeFiles = 100

// LargeFile is one entry in a large-file scan result.
type LargeFile struct {
	Path      string `json:"path" yaml:"path"`
	Name      string `json:"name" yaml:"name"`
	Size      int64  `json:"size" yaml:"size"`
	Extension string `json:"extension" yaml:"extension"`
	Category  string `json:"category" yaml:"category"`
	Modified  string `json:"modified" yaml:"modified"`
}

// CategoryTable classifies files by extension. It is built once from
// configuration and never mutated afterwards.
type CategoryTable struct {
	byExt map[string]string
}

// NewCategoryTable builds a lookup table from category name to the list of
// extensions (without leading dots) belonging to it.
func NewCategoryTable(categories map[string][]string) *CategoryTable {
	byExt := make(map[string]string)
	for category, exts := range categories {
		for _, ext := range exts {
			byExt[ext] = category
		}
	}
	return &CategoryTable{byExt: byExt}
}

// Categorize returns the category for an extension, or "Other".
func (t *CategoryTable) Categorize(ext string) string {
	if category, ok := t.byExt[ext]; ok {
		return category
	}
	return "Other"
}

// DefaultCategories returns the built-in extension classification.
func DefaultCategories() map[string][]string {
	return map[string][]string{
		"Video":       {"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm"},
		"Audio":       {"mp3", "flac", "wav", "aac", "ogg", "wma"},
		"Image":       {"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp", "svg"},
		"Archive":     {"zip", "rar", "7z", "tar", "gz", "bz2", "xz"},
		"Disk Image":  {"iso", "img", "vhd", "vhdx"},
		"Application": {"exe", "msi", "dll"},
		"Log/Text":    {"log", "txt", "csv"},
		"Document":    {"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx"},
		"Backup/Temp": {"bak", "tmp", "dmp", "old"},
	}
}

// ScanLargeFiles walks the configured roots and returns the files of at
// least minSize bytes, largest first, capped at MaxLargeFiles.
func (e *Engine) ScanLargeFiles(minSize int64, categories *CategoryTable) []LargeFile {
	start := time.Now()

	opts := e.walkOpts
	opts.MinSize = minSize

	w := walker.New(opts, e.log)
	records, _ := w.Walk(e.roots)

	sort.Slice(records, func(i, j int) bool {
		if records[i].Size != records[j].Size {
			return records[i].Size > records[j].Size
		}
		return records[i].Path < records[j].Path
	})
	if len(records) > MaxLargeFiles {
		records = records[:MaxLargeFiles]
	}

	now := time.Now()
	files := make([]LargeFile, 0, len(records))
	for _, rec := range records {
		ext := extension(rec.Path)
		files = append(files, LargeFile{
			Path:      rec.Path,
			Name:      filepath.Base(rec.Path),
			Size:      rec.Size,
			Extension: ext,
			Category:  categories.Categorize(ext),
			Modified:  modifiedLabel(rec.ModTime, now),
		})
	}

	e.log.WithFields(logrus.Fields{
		"files":   len(files),
		"elapsed": time.Since(start),
	}).Debug("large-file scan complete")

	return files
}

// modifiedLabel renders modification age in days, the way large-file
// results present it.
func modifiedLabel(mod, now time.Time) string {
	days := int(now.Sub(mod).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
