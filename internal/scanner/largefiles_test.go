package scanner

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenilsonani/dupescan/internal/testutil"
)

func TestCategoryTable(t *testing.T) {
	table := NewCategoryTable(DefaultCategories())

	tests := []struct {
		ext  string
		want string
	}{
		{"mp4", "Video"},
		{"mkv", "Video"},
		{"flac", "Audio"},
		{"png", "Image"},
		{"zip", "Archive"},
		{"iso", "Disk Image"},
		{"exe", "Application"},
		{"log", "Log/Text"},
		{"pdf", "Document"},
		{"bak", "Backup/Temp"},
		{"xyz", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		t.Run("ext_"+tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Categorize(tt.ext))
		})
	}
}

func TestScanLargeFilesOrderAndFilter(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("movie.mkv", bytes.Repeat([]byte("m"), 5000))
	f.CreateFile("notes.log", bytes.Repeat([]byte("n"), 3000))
	f.CreateFile("photo.jpg", bytes.Repeat([]byte("p"), 4000))
	f.CreateFile("tiny.txt", bytes.Repeat([]byte("t"), 100))

	engine := newTestEngine([]string{f.RootDir}, nil)
	files := engine.ScanLargeFiles(1000, NewCategoryTable(DefaultCategories()))

	require.Len(t, files, 3)
	assert.Equal(t, "movie.mkv", files[0].Name)
	assert.Equal(t, "photo.jpg", files[1].Name)
	assert.Equal(t, "notes.log", files[2].Name)

	assert.Equal(t, "Video", files[0].Category)
	assert.Equal(t, "Image", files[1].Category)
	assert.Equal(t, "Log/Text", files[2].Category)
	assert.Equal(t, "mkv", files[0].Extension)
	assert.Equal(t, "Today", files[0].Modified)
}

func TestScanLargeFilesCap(t *testing.T) {
	f := testutil.NewFixture(t)
	for i := 0; i < MaxLargeFiles+5; i++ {
		f.CreateFile(fmt.Sprintf("file%03d.bin", i), bytes.Repeat([]byte("x"), 100+i))
	}

	engine := newTestEngine([]string{f.RootDir}, nil)
	files := engine.ScanLargeFiles(0, NewCategoryTable(nil))

	require.Len(t, files, MaxLargeFiles)
	// Largest first; the smallest files fell off the end.
	assert.Equal(t, int64(100+MaxLargeFiles+4), files[0].Size)
	for i := 1; i < len(files); i++ {
		assert.GreaterOrEqual(t, files[i-1].Size, files[i].Size)
	}
}

func TestModifiedLabel(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"fresh", 0, "Today"},
		{"hours", 5 * time.Hour, "Today"},
		{"yesterday", 30 * time.Hour, "Yesterday"},
		{"days", 5 * 24 * time.Hour, "5 days ago"},
		{"many days", 200 * 24 * time.Hour, "200 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, modifiedLabel(now.Add(-tt.age), now))
		})
	}
}
