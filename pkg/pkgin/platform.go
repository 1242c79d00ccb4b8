package pkgin

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// DetectBinary locates pkgin on PATH, then in the usual pkgsrc prefixes
func DetectBinary() (string, error) {
	if path, err := exec.LookPath(BinaryName); err == nil {
		return path, nil
	}

	for _, dir := range SearchPrefixes {
		candidate := filepath.Join(dir, BinaryName)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: not on PATH nor in %v", ErrBinaryNotFound, SearchPrefixes)
}

// DetectPlatform reports whether the configured binary can be run
func DetectPlatform(binary string) error {
	if binary == "" {
		_, err := DetectBinary()
		return err
	}
	if !isExecutable(binary) {
		return fmt.Errorf("%w: %s", ErrBinaryNotFound, binary)
	}
	return nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode().Perm()&0111 != 0
}
