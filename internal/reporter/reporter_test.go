package reporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenilsonani/dupescan/internal/scanner"
)

func sampleResult() *scanner.ScanResult {
	return &scanner.ScanResult{
		Groups: []scanner.DuplicateGroup{
			{
				Fingerprint: "0123456789abcdef",
				FileSize:    1000,
				Count:       2,
				WastedBytes: 1000,
				Files: []scanner.DuplicateFile{
					{Path: "/home/alice/a.bin", Size: 1000, Modified: "today", Extension: "bin"},
					{Path: "/home/alice/b.bin", Size: 1000, Modified: "3d ago", Extension: "bin"},
				},
			},
		},
		TotalDuplicates: 1,
		TotalWasted:     1000,
		FilesScanned:    10,
		Duration:        1500 * time.Millisecond,
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatTable, ParseFormat("table"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatYAML, ParseFormat("yaml"))
	assert.Equal(t, FormatSummary, ParseFormat("summary"))
	assert.Equal(t, FormatSummary, ParseFormat(""))
	assert.Equal(t, FormatSummary, ParseFormat("bogus"))
}

func TestReportSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatSummary).Report(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "Files Scanned: 10")
	assert.Contains(t, out, "Duplicate Files: 1")
	assert.Contains(t, out, "Wasted Space: 1000 B")
	assert.Contains(t, out, "/home/alice/a.bin")
	assert.Contains(t, out, "(3d ago)")
}

func TestReportTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable).Report(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "/home/alice/a.bin")
	assert.Contains(t, out, "/home/alice/b.bin")
	assert.Contains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "Total: 1 duplicates")
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Report(sampleResult()))

	var report struct {
		FilesScanned    int                      `json:"files_scanned"`
		TotalDuplicates int                      `json:"total_duplicates"`
		TotalWasted     int64                    `json:"total_wasted"`
		Groups          []scanner.DuplicateGroup `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 10, report.FilesScanned)
	assert.Equal(t, 1, report.TotalDuplicates)
	assert.Equal(t, int64(1000), report.TotalWasted)
	require.Len(t, report.Groups, 1)
	assert.Equal(t, "0123456789abcdef", report.Groups[0].Fingerprint)
}

func TestReportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatYAML).Report(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "total_wasted: 1000")
	assert.Contains(t, out, "fingerprint: 0123456789abcdef")
}

func TestReportUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, OutputFormat("csv")).Report(sampleResult())
	assert.Error(t, err)
}

func TestReportLargeFiles(t *testing.T) {
	files := []scanner.LargeFile{
		{Path: "/data/movie.mkv", Name: "movie.mkv", Size: 5 << 30, Extension: "mkv", Category: "Video", Modified: "Today"},
		{Path: "/data/dump.log", Name: "dump.log", Size: 1 << 20, Extension: "log", Category: "Log/Text", Modified: "Yesterday"},
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable).ReportLargeFiles(files))
	out := buf.String()
	assert.Contains(t, out, "/data/movie.mkv")
	assert.Contains(t, out, "Video")
	assert.Contains(t, out, "Total: 2 files")

	buf.Reset()
	require.NoError(t, New(&buf, FormatJSON).ReportLargeFiles(files))
	var decoded []scanner.LargeFile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, files, decoded)
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, SaveToFile(sampleResult(), path, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "total_wasted")
}
