package platform

import "path/filepath"

// getLinuxInfo returns platform-specific information for Linux
func getLinuxInfo(homeDir, username string) *Info {
	return &Info{
		OS:       Linux,
		HomeDir:  homeDir,
		Username: username,
		ScanRoots: []string{
			filepath.Join(homeDir, "Desktop"),
			filepath.Join(homeDir, "Documents"),
			filepath.Join(homeDir, "Downloads"),
			filepath.Join(homeDir, "Pictures"),
			filepath.Join(homeDir, "Videos"),
			filepath.Join(homeDir, "Music"),
		},
		ProtectedMarkers: []string{
			"/etc/",
			"/boot/",
			"/proc/",
			"/sys/",
			"/sbin/",
			"/usr/bin",
			"/usr/sbin",
			"/usr/lib",
			"/var/lib/",
		},
	}
}
