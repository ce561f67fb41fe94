package platform

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Bundle layout
const (
	ImagesDir    = "images"
	ImagesPrefix = "/" + ImagesDir + "/"
)

// IsRegularFile reports whether path exists and is a regular file
func IsRegularFile(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ExecutableDir returns the directory of the running executable, or "" if
// it cannot be determined
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// bundlePath converts an absolute logical name ("/images/gc.png") into an
// io/fs path ("images/gc.png"). Relative names are used as is.
func bundlePath(logicalName string) string {
	return path.Clean(strings.TrimPrefix(logicalName, "/"))
}

// imageFileName strips the images prefix and any leading slash, leaving the
// file name used by the context and filesystem lookups
func imageFileName(logicalName string) string {
	name := strings.TrimPrefix(logicalName, ImagesPrefix)
	return strings.TrimPrefix(name, "/")
}
