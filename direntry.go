package gfapi

import (
	"errors"
	"io"
	"io/fs"
	"path"

	"github.com/desertwitch/gfapi/glfs"
	"golang.org/x/sys/unix"
)

// DirEntry is a directory entry paired with the metadata that came out
// of the directory stream, so that inspecting it needs no further
// library calls. It implements [fs.DirEntry].
//
// The embedded metadata is that of the entry itself: for a symbolic
// link it describes the link, and the target is resolved lazily by
// [DirEntry.Stat] and [DirEntry.ResolvesToDir].
type DirEntry struct {
	vol   *Volume
	name  string
	path  string
	lstat glfs.Stat
	stat  *glfs.Stat
}

func newDirEntry(vol *Volume, dir, name string, lstat glfs.Stat) *DirEntry {
	return &DirEntry{
		vol:   vol,
		name:  name,
		path:  path.Join(dir, name),
		lstat: lstat,
	}
}

// Name returns the base name of the entry.
func (e *DirEntry) Name() string {
	return e.name
}

// Path returns the full path of the entry, the scanned directory
// joined with the entry name.
func (e *DirEntry) Path() string {
	return e.path
}

// IsDir reports whether the entry itself is a directory. A symbolic
// link to a directory is not a directory; see [DirEntry.ResolvesToDir].
func (e *DirEntry) IsDir() bool {
	return e.lstat.IsDir()
}

// IsRegular reports whether the entry itself is a regular file.
func (e *DirEntry) IsRegular() bool {
	return e.lstat.IsRegular()
}

// IsSymlink reports whether the entry is a symbolic link.
func (e *DirEntry) IsSymlink() bool {
	return e.lstat.IsSymlink()
}

// Inode returns the inode number of the entry.
func (e *DirEntry) Inode() uint64 {
	return e.lstat.Ino
}

// Type returns the type bits of the entry's file mode.
func (e *DirEntry) Type() fs.FileMode {
	return e.lstat.FileMode().Type()
}

// Info returns the metadata of the entry itself as an [fs.FileInfo].
func (e *DirEntry) Info() (fs.FileInfo, error) {
	return newFileInfo(e.name, e.lstat), nil
}

// Stat returns the metadata of the entry. With followSymlinks it
// resolves a symbolic link to its target, fetching the target metadata
// once and caching it on the entry.
func (e *DirEntry) Stat(followSymlinks bool) (*glfs.Stat, error) {
	if !followSymlinks {
		st := e.lstat
		return &st, nil
	}
	if e.stat == nil {
		if e.lstat.IsSymlink() {
			st, err := e.vol.Stat(e.path)
			if err != nil {
				return nil, err
			}
			e.stat = st
		} else {
			st := e.lstat
			e.stat = &st
		}
	}
	st := *e.stat
	return &st, nil
}

// ResolvesToDir reports whether the entry is a directory after
// following symbolic links. A broken link resolves to nothing and
// reports false.
func (e *DirEntry) ResolvesToDir() (bool, error) {
	if !e.lstat.IsSymlink() {
		return e.lstat.IsDir(), nil
	}
	st, err := e.Stat(true)
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return false, nil
		}
		return false, err
	}
	return st.IsDir(), nil
}

var _ fs.DirEntry = (*DirEntry)(nil)

// DirScanner streams the entries of a directory as [DirEntry] values,
// fetching name and metadata together and skipping "." and "..". Like
// [Dir] it is single-pass and not safe for concurrent use.
type DirScanner struct {
	vol  *Volume
	dir  *Dir
	path string
}

// Scandir opens the directory at dir for streaming with
// [DirScanner.Next].
func (v *Volume) Scandir(dir string) (*DirScanner, error) {
	d, err := v.Opendir(dir)
	if err != nil {
		return nil, err
	}
	return &DirScanner{vol: v, dir: d, path: dir}, nil
}

// Next returns the next directory entry. At the end of the stream it
// closes the underlying directory and returns [io.EOF], and keeps
// doing so on further calls.
func (s *DirScanner) Next() (*DirEntry, error) {
	if s.dir.fd == nil {
		return nil, io.EOF
	}
	for {
		ent, st, err := s.dir.NextPlus()
		if err != nil {
			if errors.Is(err, io.EOF) {
				_ = s.dir.Close()
			}
			return nil, err
		}
		name := glfs.DirentName(&ent)
		if name == "." || name == ".." {
			continue
		}
		return newDirEntry(s.vol, s.path, name, st), nil
	}
}

// Close closes the scanner early. Exhausting the scanner closes it
// already, and closing twice is a no-op.
func (s *DirScanner) Close() error {
	return s.dir.Close()
}
