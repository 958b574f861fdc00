package util

import (
	"os"
	"path/filepath"
)

// OutputDir creates dir if it does not exist.
func OutputDir(dir string) {
	Assert(os.MkdirAll(dir, 0755), "Could not create directory '%s'", dir)
}

// CreateIn creates the file name inside dir.
func CreateIn(dir, name string) *os.File {
	return CreateFile(filepath.Join(dir, name))
}
