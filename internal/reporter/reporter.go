// Package reporter renders scan results in the supported output formats.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/dupescan/internal/scanner"
	"github.com/fenilsonani/dupescan/pkg/utils"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// ParseFormat maps a format name to an OutputFormat, defaulting to summary.
func ParseFormat(name string) OutputFormat {
	switch name {
	case "table":
		return FormatTable
	case "json":
		return FormatJSON
	case "yaml":
		return FormatYAML
	default:
		return FormatSummary
	}
}

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report generates a report from a duplicate scan result
func (r *Reporter) Report(result *scanner.ScanResult) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(result)
	case FormatJSON:
		return r.reportJSON(result)
	case FormatYAML:
		return r.reportYAML(result)
	case FormatSummary:
		return r.reportSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportSummary generates a summary report
func (r *Reporter) reportSummary(result *scanner.ScanResult) error {
	fmt.Fprintf(r.writer, "=== Duplicate Scan Summary ===\n")
	fmt.Fprintf(r.writer, "Files Scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(r.writer, "Duplicate Groups: %d\n", len(result.Groups))
	fmt.Fprintf(r.writer, "Duplicate Files: %d\n", result.TotalDuplicates)
	fmt.Fprintf(r.writer, "Wasted Space: %s\n", utils.FormatBytes(result.TotalWasted))
	fmt.Fprintf(r.writer, "Duration: %s\n", result.Duration.Round(time.Millisecond))

	for i, group := range result.Groups {
		if i >= 10 {
			fmt.Fprintf(r.writer, "\n... and %d more groups\n", len(result.Groups)-i)
			break
		}
		fmt.Fprintf(r.writer, "\n[%d] %d files x %s (wasting %s)\n",
			i+1, group.Count, utils.FormatBytes(group.FileSize), utils.FormatBytes(group.WastedBytes))
		for _, file := range group.Files {
			fmt.Fprintf(r.writer, "    %s (%s)\n", file.Path, file.Modified)
		}
	}

	return nil
}

// reportTable generates a table report
func (r *Reporter) reportTable(result *scanner.ScanResult) error {
	fmt.Fprintf(r.writer, "%-60s | %-12s | %-10s | %-16s\n", "Path", "Size", "Modified", "Fingerprint")
	fmt.Fprintln(r.writer, strings.Repeat("-", 108))

	for _, group := range result.Groups {
		for _, file := range group.Files {
			path := file.Path
			if len(path) > 60 {
				path = "..." + path[len(path)-57:]
			}
			fmt.Fprintf(r.writer, "%-60s | %-12s | %-10s | %-16s\n",
				path,
				utils.FormatBytes(file.Size),
				file.Modified,
				group.Fingerprint)
		}
	}

	fmt.Fprintln(r.writer, strings.Repeat("-", 108))
	fmt.Fprintf(r.writer, "Total: %d duplicates, %s wasted\n",
		result.TotalDuplicates, utils.FormatBytes(result.TotalWasted))

	return nil
}

// reportJSON generates a JSON report
func (r *Reporter) reportJSON(result *scanner.ScanResult) error {
	report := struct {
		Timestamp            string                   `json:"timestamp"`
		FilesScanned         int                      `json:"files_scanned"`
		TotalDuplicates      int                      `json:"total_duplicates"`
		TotalWasted          int64                    `json:"total_wasted"`
		TotalWastedFormatted string                   `json:"total_wasted_formatted"`
		Groups               []scanner.DuplicateGroup `json:"groups"`
	}{
		Timestamp:            time.Now().Format(time.RFC3339),
		FilesScanned:         result.FilesScanned,
		TotalDuplicates:      result.TotalDuplicates,
		TotalWasted:          result.TotalWasted,
		TotalWastedFormatted: utils.FormatBytes(result.TotalWasted),
		Groups:               result.Groups,
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// reportYAML generates a YAML report
func (r *Reporter) reportYAML(result *scanner.ScanResult) error {
	report := struct {
		Timestamp            string                   `yaml:"timestamp"`
		FilesScanned         int                      `yaml:"files_scanned"`
		TotalDuplicates      int                      `yaml:"total_duplicates"`
		TotalWasted          int64                    `yaml:"total_wasted"`
		TotalWastedFormatted string                   `yaml:"total_wasted_formatted"`
		Groups               []scanner.DuplicateGroup `yaml:"groups"`
	}{
		Timestamp:            time.Now().Format(time.RFC3339),
		FilesScanned:         result.FilesScanned,
		TotalDuplicates:      result.TotalDuplicates,
		TotalWasted:          result.TotalWasted,
		TotalWastedFormatted: utils.FormatBytes(result.TotalWasted),
		Groups:               result.Groups,
	}

	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(report)
}

// ReportLargeFiles generates a report from a large-file scan
func (r *Reporter) ReportLargeFiles(files []scanner.LargeFile) error {
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(files)
	case FormatYAML:
		encoder := yaml.NewEncoder(r.writer)
		defer encoder.Close()
		return encoder.Encode(files)
	default:
		fmt.Fprintf(r.writer, "%-60s | %-12s | %-12s | %s\n", "Path", "Size", "Category", "Modified")
		fmt.Fprintln(r.writer, strings.Repeat("-", 104))
		var total int64
		for _, file := range files {
			path := file.Path
			if len(path) > 60 {
				path = "..." + path[len(path)-57:]
			}
			fmt.Fprintf(r.writer, "%-60s | %-12s | %-12s | %s\n",
				path, utils.FormatBytes(file.Size), file.Category, file.Modified)
			total += file.Size
		}
		fmt.Fprintln(r.writer, strings.Repeat("-", 104))
		fmt.Fprintf(r.writer, "Total: %d files, %s\n", len(files), utils.FormatBytes(total))
		return nil
	}
}

// SaveToFile saves the report to a file
func SaveToFile(result *scanner.ScanResult, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reporter := New(file, format)
	return reporter.Report(result)
}
