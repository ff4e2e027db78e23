package domain

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry represents a single file or directory inside a listed directory.
type Entry struct {
	Path       string // absolute path, unique within a listing
	Name       string
	IsDir      bool
	IsSymlink  bool
	Size       int64
	ModTime    time.Time
	Mode       os.FileMode
	IsSelected bool
}

// Hidden reports whether the entry is hidden from normal listings
// (dot-file convention).
func (e Entry) Hidden() bool {
	name := e.Name
	if name == "" {
		name = filepath.Base(e.Path)
	}
	return strings.HasPrefix(name, ".")
}
