package security

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowsMarkers() []string {
	return []string{`\windows\`, `\program files`, `\system32`}
}

func TestCheckProtectedPaths(t *testing.T) {
	list := NewProtectedList(windowsMarkers())

	tests := []struct {
		name      string
		path      string
		protected bool
	}{
		{"windows dir", `C:\Windows\System.ini`, true},
		{"uppercase", `C:\WINDOWS\SYSTEM.INI`, true},
		{"program files", `C:\Program Files\App\app.exe`, true},
		{"program files x86", `C:\Program Files (x86)\App\app.exe`, true},
		{"system32", `C:\Windows\System32\kernel32.dll`, true},
		{"nested under windows", `D:\backup\windows\copy.dll`, true},
		{"user download", `C:\Users\alice\Downloads\movie.mp4`, false},
		{"user document", `C:\Users\alice\Documents\report.pdf`, false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := list.Check(tt.path)
			if tt.protected {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrProtectedLocation))
				assert.True(t, list.IsProtected(tt.path))
			} else {
				assert.NoError(t, err)
				assert.False(t, list.IsProtected(tt.path))
			}
		})
	}
}

func TestUnixMarkers(t *testing.T) {
	list := NewProtectedList([]string{"/etc/", "/usr/bin"})

	assert.Error(t, list.Check("/etc/passwd"))
	assert.Error(t, list.Check("/usr/bin/ls"))
	assert.NoError(t, list.Check("/home/alice/Downloads/movie.mp4"))
}

func TestMarkersNormalized(t *testing.T) {
	list := NewProtectedList([]string{"  \\WINDOWS\\  ", "", "   "})

	assert.Equal(t, []string{`\windows\`}, list.Markers())
	assert.Error(t, list.Check(`c:\windows\notepad.exe`))
}

func TestMarkersReturnsCopy(t *testing.T) {
	list := NewProtectedList([]string{"/etc/"})

	markers := list.Markers()
	markers[0] = "/tmp/"
	assert.Error(t, list.Check("/etc/hosts"))
}

func TestEmptyListAllowsEverything(t *testing.T) {
	list := NewProtectedList(nil)
	assert.NoError(t, list.Check(`C:\Windows\System32\kernel32.dll`))
}
