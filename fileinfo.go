package gfapi

import (
	"io/fs"
	"time"

	"github.com/desertwitch/gfapi/glfs"
)

// fileInfo adapts a [glfs.Stat] to [fs.FileInfo].
type fileInfo struct {
	name string
	st   glfs.Stat
}

func newFileInfo(name string, st glfs.Stat) *fileInfo {
	return &fileInfo{name: name, st: st}
}

func (fi *fileInfo) Name() string {
	return fi.name
}

func (fi *fileInfo) Size() int64 {
	return fi.st.Size
}

func (fi *fileInfo) Mode() fs.FileMode {
	return fi.st.FileMode()
}

func (fi *fileInfo) ModTime() time.Time {
	return fi.st.Mtime()
}

func (fi *fileInfo) IsDir() bool {
	return fi.st.IsDir()
}

// Sys returns the underlying [*glfs.Stat].
func (fi *fileInfo) Sys() any {
	st := fi.st
	return &st
}

var _ fs.FileInfo = (*fileInfo)(nil)
