// Package scanner implements the duplicate detection engine: files are
// grouped by exact size, only files sharing a size are fingerprinted, and
// same-fingerprint files become duplicate groups ranked by wasted space.
package scanner

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fenilsonani/dupescan/internal/fingerprint"
	"github.com/fenilsonani/dupescan/internal/walker"
	"github.com/fenilsonani/dupescan/pkg/utils"
)

// MaxGroups caps how many groups a ScanResult carries for presentation.
// Aggregate totals are computed before the cap is applied.
const MaxGroups = 100

// Engine runs duplicate scans over a fixed set of roots. It is synchronous
// and keeps no state between scans; concurrent use must be serialized by
// the caller.
type Engine struct {
	roots    []string
	walkOpts walker.Options
	strategy fingerprint.Strategy
	log      *logrus.Entry
}

// New creates an Engine scanning the given roots. A nil strategy selects
// the sampled default.
func New(roots []string, opts walker.Options, strategy fingerprint.Strategy, log *logrus.Entry) *Engine {
	if strategy == nil {
		strategy = fingerprint.Sampled{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		roots:    roots,
		walkOpts: opts,
		strategy: strategy,
		log:      log,
	}
}

// ScanDuplicates walks the configured roots and returns the duplicate groups
// found among files of at least minSize bytes. The scan never fails: files
// and directories that cannot be read are skipped and the rest of the result
// is still produced.
func (e *Engine) ScanDuplicates(minSize int64) *ScanResult {
	start := time.Now()

	opts := e.walkOpts
	opts.MinSize = minSize

	w := walker.New(opts, e.log)
	records, scanned := w.Walk(e.roots)
	e.log.WithFields(logrus.Fields{
		"files":   scanned,
		"elapsed": time.Since(start),
	}).Debug("walk complete")

	groups := e.groupByFingerprint(bucketBySize(records))
	result := rank(groups)
	result.FilesScanned = scanned
	result.Duration = time.Since(start)

	e.log.WithFields(logrus.Fields{
		"groups":     len(result.Groups),
		"duplicates": result.TotalDuplicates,
		"wasted":     result.TotalWasted,
	}).Debug("scan complete")

	return result
}

// bucketBySize partitions records by exact byte size. Pure grouping, no I/O.
func bucketBySize(records []walker.FileRecord) map[int64][]walker.FileRecord {
	buckets := make(map[int64][]walker.FileRecord)
	for _, rec := range records {
		buckets[rec.Size] = append(buckets[rec.Size], rec)
	}
	return buckets
}

// groupByFingerprint fingerprints every file whose size bucket has at least
// two members and collects same-fingerprint files into groups. Files unique
// in size are never read; files that fail to read are dropped.
func (e *Engine) groupByFingerprint(buckets map[int64][]walker.FileRecord) []DuplicateGroup {
	var groups []DuplicateGroup

	for size, bucket := range buckets {
		if len(bucket) < 2 {
			continue
		}

		byToken := make(map[string][]walker.FileRecord)
		for _, rec := range bucket {
			token, err := e.strategy.Fingerprint(rec.Path, rec.Size)
			if err != nil {
				e.log.WithField("path", rec.Path).WithError(err).Debug("skipping unreadable file")
				continue
			}
			byToken[token] = append(byToken[token], rec)
		}

		now := time.Now()
		for token, members := range byToken {
			if len(members) < 2 {
				continue
			}

			files := make([]DuplicateFile, 0, len(members))
			for _, rec := range members {
				files = append(files, DuplicateFile{
					Path:      rec.Path,
					Size:      rec.Size,
					ModTime:   rec.ModTime,
					Modified:  AgeLabel(rec.ModTime, now),
					Extension: extension(rec.Path),
				})
			}

			groups = append(groups, DuplicateGroup{
				Fingerprint: token,
				FileSize:    size,
				Count:       len(files),
				WastedBytes: utils.WastedBytes(size, len(files)),
				Files:       files,
			})
		}
	}

	return groups
}

// rank orders groups by descending wasted bytes, computes the aggregate
// totals over the full set, and then truncates the list to MaxGroups.
func rank(groups []DuplicateGroup) *ScanResult {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].WastedBytes != groups[j].WastedBytes {
			return groups[i].WastedBytes > groups[j].WastedBytes
		}
		return groups[i].Fingerprint < groups[j].Fingerprint
	})

	result := &ScanResult{}
	for _, g := range groups {
		result.TotalDuplicates += g.Count - 1
		result.TotalWasted += g.WastedBytes
	}

	if len(groups) > MaxGroups {
		groups = groups[:MaxGroups]
	}
	result.Groups = groups

	return result
}
