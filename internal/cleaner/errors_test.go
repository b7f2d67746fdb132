package cleaner

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenilsonani/dupescan/internal/security"
)

func TestErrorReasonString(t *testing.T) {
	tests := []struct {
		reason ErrorReason
		want   string
	}{
		{ErrorProtectedLocation, "Protected location"},
		{ErrorPermissionDenied, "Permission denied"},
		{ErrorFileInUse, "File is in use"},
		{ErrorFileNotFound, "File not found"},
		{ErrorIsDirectory, "Is a directory"},
		{ErrorContentChanged, "Content changed since scan"},
		{ErrorUnknown, "Unknown error"},
		{ErrorReason(99), "Unspecified error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.reason.String())
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorReason
	}{
		{"protected", fmt.Errorf("checking: %w", security.ErrProtectedLocation), ErrorProtectedLocation},
		{"not exist", fs.ErrNotExist, ErrorFileNotFound},
		{"permission", fs.ErrPermission, ErrorPermissionDenied},
		{"eacces", &fs.PathError{Op: "remove", Path: "/x", Err: syscall.EACCES}, ErrorPermissionDenied},
		{"ebusy", &fs.PathError{Op: "remove", Path: "/x", Err: syscall.EBUSY}, ErrorFileInUse},
		{"etxtbsy", &fs.PathError{Op: "remove", Path: "/x", Err: syscall.ETXTBSY}, ErrorFileInUse},
		{"enoent", &fs.PathError{Op: "remove", Path: "/x", Err: syscall.ENOENT}, ErrorFileNotFound},
		{"eisdir", &fs.PathError{Op: "remove", Path: "/x", Err: syscall.EISDIR}, ErrorIsDirectory},
		{"other errno", &fs.PathError{Op: "remove", Path: "/x", Err: syscall.EIO}, ErrorUnknown},
		{"plain error", errors.New("boom"), ErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delErr := CategorizeError("/x", tt.err)
			require.NotNil(t, delErr)
			assert.Equal(t, tt.want, delErr.Reason)
			assert.Equal(t, "/x", delErr.Path)
		})
	}
}

func TestCategorizeNilError(t *testing.T) {
	assert.Nil(t, CategorizeError("/x", nil))
}

func TestDeletionErrorUnwrap(t *testing.T) {
	inner := fs.ErrNotExist
	delErr := CategorizeError("/x", inner)

	assert.True(t, errors.Is(delErr, fs.ErrNotExist))
	assert.Contains(t, delErr.Error(), "File not found")
	assert.Contains(t, delErr.Error(), "/x")
}
