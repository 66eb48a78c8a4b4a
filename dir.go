package gfapi

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/desertwitch/gfapi/glfs"
	"golang.org/x/sys/unix"
)

// Dir is an open directory stream on a mounted [Volume]. It yields the
// raw directory entries including "." and "..", in directory order. The
// stream is single-pass and not safe for concurrent use.
type Dir struct {
	api  apiProvider
	fd   *glfs.Fd
	path string
}

// Opendir opens the directory at path for reading.
func (v *Volume) Opendir(path string) (*Dir, error) {
	if err := v.ensureMounted(); err != nil {
		return nil, err
	}
	fd, err := v.api.Opendir(v.fs, path)
	if err != nil {
		return nil, pathError("opendir", path, err)
	}
	d := &Dir{api: v.api, fd: fd, path: path}
	runtime.SetFinalizer(d, (*Dir).finalize)
	return d, nil
}

// Next returns the next directory entry. At the end of the stream it
// returns [io.EOF], and keeps doing so on further calls.
func (d *Dir) Next() (glfs.Dirent, error) {
	if d.fd == nil {
		return glfs.Dirent{}, pathError("readdir", d.path, unix.EBADF)
	}
	var ent glfs.Dirent
	ok, err := d.api.ReaddirR(d.fd, &ent)
	if err != nil {
		return glfs.Dirent{}, pathError("readdir", d.path, err)
	}
	if !ok {
		return glfs.Dirent{}, io.EOF
	}
	return ent, nil
}

// NextPlus returns the next directory entry together with its
// metadata, fetched in the same library call. At the end of the stream
// it returns [io.EOF].
func (d *Dir) NextPlus() (glfs.Dirent, glfs.Stat, error) {
	if d.fd == nil {
		return glfs.Dirent{}, glfs.Stat{}, pathError("readdirplus", d.path, unix.EBADF)
	}
	var (
		ent glfs.Dirent
		st  glfs.Stat
	)
	ok, err := d.api.ReaddirplusR(d.fd, &st, &ent)
	if err != nil {
		return glfs.Dirent{}, glfs.Stat{}, pathError("readdirplus", d.path, err)
	}
	if !ok {
		return glfs.Dirent{}, glfs.Stat{}, io.EOF
	}
	return ent, st, nil
}

// Close closes the directory stream. Closing a closed Dir is a no-op.
func (d *Dir) Close() error {
	if d.fd == nil {
		return nil
	}
	if err := d.api.Closedir(d.fd); err != nil {
		return pathError("closedir", d.path, err)
	}
	runtime.SetFinalizer(d, nil)
	d.fd = nil
	return nil
}

// finalize releases a stream whose Dir became garbage without a
// [Dir.Close] call.
func (d *Dir) finalize() {
	if d.fd == nil {
		return
	}
	slog.Debug("releasing leaked directory stream", "path", d.path)
	_ = d.api.Closedir(d.fd)
	d.fd = nil
}

// Listdir returns the names of the entries in the directory at path,
// in directory order and without "." and "..".
func (v *Volume) Listdir(path string) ([]string, error) {
	d, err := v.Opendir(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	var names []string
	for {
		ent, err := d.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if name := glfs.DirentName(&ent); name != "." && name != ".." {
			names = append(names, name)
		}
	}
	return names, nil
}

// ListdirWithStat returns the entries of the directory at path with
// their metadata, in directory order and without "." and "..".
//
// For large directories [Volume.Scandir] streams the same entries
// without collecting them in memory.
func (v *Volume) ListdirWithStat(path string) ([]*DirEntry, error) {
	s, err := v.Scandir(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var entries []*DirEntry
	for {
		e, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
