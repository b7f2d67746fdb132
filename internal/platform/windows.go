package platform

import "path/filepath"

// getWindowsInfo returns platform-specific information for Windows
func getWindowsInfo(homeDir, username string) *Info {
	return &Info{
		OS:       Windows,
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
			`\windows\`,
			`\program files`,
			`\system32`,
		},
	}
}
