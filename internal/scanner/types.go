package scanner

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"
)

// DuplicateFile is one member of a duplicate group, carrying the
// presentation fields derived from its metadata.
type DuplicateFile struct {
	Path      string    `json:"path" yaml:"path"`
	Size      int64     `json:"size" yaml:"size"`
	ModTime   time.Time `json:"mod_time" yaml:"mod_time"`
	Modified  string    `json:"modified" yaml:"modified"` // relative age label
	Extension string    `json:"extension" yaml:"extension"`
}

// DuplicateGroup is a set of at least two files sharing a fingerprint.
// All members have the same byte size by construction.
type DuplicateGroup struct {
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	FileSize    int64           `json:"file_size" yaml:"file_size"`
	Count       int             `json:"count" yaml:"count"`
	WastedBytes int64           `json:"wasted_bytes" yaml:"wasted_bytes"`
	Files       []DuplicateFile `json:"files" yaml:"files"`
}

// ScanResult is the outcome of one duplicate scan. Groups holds at most
// MaxGroups entries; the totals always cover the full set of discovered
// groups, including any dropped by the display cap.
type ScanResult struct {
	Groups          []DuplicateGroup `json:"groups" yaml:"groups"`
	TotalDuplicates int              `json:"total_duplicates" yaml:"total_duplicates"`
	TotalWasted     int64            `json:"total_wasted" yaml:"total_wasted"`
	FilesScanned    int              `json:"files_scanned" yaml:"files_scanned"`
	Duration        time.Duration    `json:"duration" yaml:"duration"`
}

// AgeLabel renders how long ago a file was modified, bucketed the way the
// scan results present it: "today", then days, months, years.
func AgeLabel(mod, now time.Time) string {
	days := int(now.Sub(mod).Hours() / 24)
	switch {
	case days < 1:
		return "today"
	case days < 30:
		return fmt.Sprintf("%dd ago", days)
	case days < 365:
		return fmt.Sprintf("%dmo ago", int(math.Round(float64(days)/30)))
	default:
		return fmt.Sprintf("%dy ago", int(math.Round(float64(days)/365)))
	}
}

// extension returns the file extension without the leading dot, lowercased.
func extension(path string) string {
	ext := filepath.Ext(path)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
