package fileutil

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// FileExists returns true if a file or directory with the given path exists.
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// IsDir returns true if a directory with the given path exists.
func IsDir(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && info.IsDir()
}

// EnsureDir creates the directory dir, along with any missing parents. It is
// a no-op if dir already exists. It returns an error if dir exists but is not
// a directory.
func EnsureDir(dir string) error {
	if IsDir(dir) {
		return nil
	}
	if FileExists(dir) {
		return fmt.Errorf("destination exists and is not a directory: %s", dir)
	}

	log.Debugf("creating directory: %s", dir)
	return os.MkdirAll(dir, 0755)
}
