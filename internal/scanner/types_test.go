package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeLabel(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"just now", 0, "today"},
		{"hours old", 20 * time.Hour, "today"},
		{"one day", 25 * time.Hour, "1d ago"},
		{"three weeks", 21 * 24 * time.Hour, "21d ago"},
		{"last day bucket", 29 * 24 * time.Hour, "29d ago"},
		{"one month", 32 * 24 * time.Hour, "1mo ago"},
		{"two months", 61 * 24 * time.Hour, "2mo ago"},
		{"eleven months", 330 * 24 * time.Hour, "11mo ago"},
		{"one year", 365 * 24 * time.Hour, "1y ago"},
		{"two years", 750 * 24 * time.Hour, "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeLabel(now.Add(-tt.age), now))
		})
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/user/movie.MP4", "mp4"},
		{"/home/user/archive.tar.gz", "gz"},
		{"/home/user/README", ""},
		{"/home/user/.bashrc", "bashrc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extension(tt.path), tt.path)
	}
}
