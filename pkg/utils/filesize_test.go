package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"negative", -5, "0 B"},
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2.00 KB"},
		{"megabytes", 5 * MB, "5.00 MB"},
		{"fractional mb", 1536 * KB, "1.50 MB"},
		{"gigabytes", 3 * GB, "3.00 GB"},
		{"terabytes", 2 * TB, "2.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"bytes", "100B", 100},
		{"kilobytes", "1KB", 1024},
		{"kilobytes short", "2K", 2048},
		{"megabytes", "10MB", 10 * MB},
		{"megabytes lower", "10mb", 10 * MB},
		{"gigabytes", "2GB", 2 * GB},
		{"terabytes", "1TB", 1 * TB},
		{"fractional", "2.5MB", int64(2.5 * float64(MB))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, input := range []string{"", "MB", "12XB", "abc"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSize(input)
			assert.Error(t, err)
		})
	}
}

func TestWastedBytes(t *testing.T) {
	assert.Equal(t, int64(0), WastedBytes(1000, 0))
	assert.Equal(t, int64(0), WastedBytes(1000, 1))
	assert.Equal(t, int64(1000), WastedBytes(1000, 2))
	assert.Equal(t, int64(4000), WastedBytes(1000, 5))
}
