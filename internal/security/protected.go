// Package security guards delete operations against system locations.
package security

import (
	"fmt"
	"strings"
)

// ErrProtectedLocation is returned when a path falls under a protected
// system location. Callers match it with errors.Is.
var ErrProtectedLocation = fmt.Errorf("path is under a protected system location")

// ProtectedList is an immutable deny-list of system-location markers.
// A path is protected when its lowercase form contains any marker, so the
// check is case-insensitive and independent of path separator style.
type ProtectedList struct {
	markers []string
}

// NewProtectedList builds a ProtectedList from marker substrings. Markers
// are lowercased once at construction; empty markers are dropped.
func NewProtectedList(markers []string) *ProtectedList {
	list := &ProtectedList{markers: make([]string, 0, len(markers))}
	for _, m := range markers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		list.markers = append(list.markers, m)
	}
	return list
}

// Check returns ErrProtectedLocation (wrapped with the matching marker) when
// the path is protected, nil otherwise.
func (l *ProtectedList) Check(path string) error {
	lower := strings.ToLower(path)
	for _, marker := range l.markers {
		if strings.Contains(lower, marker) {
			return fmt.Errorf("%w: %s matches %q", ErrProtectedLocation, path, marker)
		}
	}
	return nil
}

// IsProtected reports whether the path matches any marker.
func (l *ProtectedList) IsProtected(path string) bool {
	return l.Check(path) != nil
}

// Markers returns a copy of the marker list.
func (l *ProtectedList) Markers() []string {
	out := make([]string, len(l.markers))
	copy(out, l.markers)
	return out
}
