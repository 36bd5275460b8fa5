package platform

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// OSFileSystem implements the download file system over the os package
type OSFileSystem struct {
	log *logrus.Entry
}

// NewOSFileSystem creates a file system logging through log, or the standard logger if nil
func NewOSFileSystem(log *logrus.Entry) *OSFileSystem {
	if log == nil {
		log = logrus.WithField("component", "fs")
	}
	return &OSFileSystem{log: log}
}

// Exists reports whether path exists
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MkdirAll creates path and any missing parents
func (f *OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, DefaultDirPermissions)
}

// ReadDirNames returns the names of the immediate entries of path in directory order
func (f *OSFileSystem) ReadDirNames(path string) ([]string, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	return dir.Readdirnames(-1)
}

// Remove deletes a single file
func (f *OSFileSystem) Remove(path string) error {
	var size uint64
	if info, err := os.Stat(path); err == nil {
		size = uint64(info.Size())
	}

	if err := os.Remove(path); err != nil {
		return err
	}

	f.log.WithFields(logrus.Fields{
		"path": path,
		"size": humanize.Bytes(size),
	}).Debug("Removed file")
	return nil
}
