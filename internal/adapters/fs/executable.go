// Package fs provides small filesystem probes shared by the resolution
// strategies.
package fs

import (
	"os"
	"runtime"
)

// IsExecutable reports whether path names an existing regular file the
// current user could execute. On Windows existence is enough; the exec bit
// has no meaning there.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
