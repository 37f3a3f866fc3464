package clitool

import (
	"os"
	"path/filepath"
	"runtime"
)

// ToolName is the CLI binary's base name.
const ToolName = "minc"

// BinaryName returns the platform-specific binary file name.
func BinaryName() string {
	if runtime.GOOS == "windows" {
		return ToolName + ".exe"
	}

	return ToolName
}

// SystemBinaryDir returns the per-OS well-known system-wide install directory.
func SystemBinaryDir() string {
	if runtime.GOOS == "windows" {
		programFiles := os.Getenv("ProgramFiles")
		if programFiles == "" {
			programFiles = `C:\Program Files`
		}

		return filepath.Join(programFiles, ToolName)
	}

	return "/usr/local/bin"
}

// SystemBinaryPath returns the system-wide binary path the extension installs to.
func SystemBinaryPath() string {
	return filepath.Join(SystemBinaryDir(), BinaryName())
}
