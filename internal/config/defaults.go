package config

import (
	"github.com/fenilsonani/dupescan/internal/scanner"
	"github.com/fenilsonani/dupescan/internal/walker"
)

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		ScanRoots:           nil, // resolved from the platform at startup
		MinFileSize:         "1MB",
		MaxDepth:            walker.DefaultMaxDepth,
		ExcludeDirs:         DefaultExcludeDirs(),
		SkipHidden:          true,
		ProtectedMarkers:    nil, // platform markers always apply
		FingerprintStrategy: "sampled",
		VerifyBeforeDelete:  false,
		OutputFormat:        "summary",
		Verbose:             false,
		LargeFileCategories: scanner.DefaultCategories(),
	}
}

// DefaultExcludeDirs returns the directory names pruned from every walk:
// version-control metadata, dependency caches, and OS-managed application
// data.
func DefaultExcludeDirs() []string {
	return []string{
		".git",
		"node_modules",
		"AppData",
	}
}
