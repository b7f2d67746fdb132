package platform

import "path/filepath"

// getMacOSInfo returns platform-specific information for macOS
func getMacOSInfo(homeDir, username string) *Info {
	return &Info{
		OS:       MacOS,
		HomeDir:  homeDir,
		Username: username,
		ScanRoots: []string{
			filepath.Join(homeDir, "Desktop"),
			filepath.Join(homeDir, "Documents"),
			filepath.Join(homeDir, "Downloads"),
			filepath.Join(homeDir, "Pictures"),
			filepath.Join(homeDir, "Movies"),
			filepath.Join(homeDir, "Music"),
		},
		ProtectedMarkers: []string{
			"/system/",
			"/applications/",
			"/etc/",
			"/sbin/",
			"/usr/bin",
			"/usr/sbin",
			"/usr/lib",
			"/library/system",
		},
	}
}
