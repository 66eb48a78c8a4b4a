package gfapi

import (
	"time"

	"github.com/desertwitch/gfapi/glfs"
)

// Stat returns the metadata of the file at path, following symbolic
// links.
func (v *Volume) Stat(path string) (*glfs.Stat, error) {
	if err := v.ensureMounted(); err != nil {
		return nil, err
	}
	var st glfs.Stat
	if err := v.api.Stat(v.fs, path, &st); err != nil {
		return nil, pathError("stat", path, err)
	}
	return &st, nil
}

// Lstat returns the metadata of the file at path without following a
// trailing symbolic link.
func (v *Volume) Lstat(path string) (*glfs.Stat, error) {
	if err := v.ensureMounted(); err != nil {
		return nil, err
	}
	var st glfs.Stat
	if err := v.api.Lstat(v.fs, path, &st); err != nil {
		return nil, pathError("lstat", path, err)
	}
	return &st, nil
}

// Statvfs returns filesystem-wide usage information for the filesystem
// containing path.
func (v *Volume) Statvfs(path string) (*glfs.Statvfs, error) {
	if err := v.ensureMounted(); err != nil {
		return nil, err
	}
	var st glfs.Statvfs
	if err := v.api.Statvfs(v.fs, path, &st); err != nil {
		return nil, pathError("statvfs", path, err)
	}
	return &st, nil
}

// Exists reports whether path refers to an existing file or directory.
// A broken symbolic link does not exist.
func (v *Volume) Exists(path string) bool {
	_, err := v.Stat(path)
	return err == nil
}

// IsDir reports whether path refers to a directory, following symbolic
// links.
func (v *Volume) IsDir(path string) bool {
	st, err := v.Stat(path)
	return err == nil && st.IsDir()
}

// IsFile reports whether path refers to a regular file, following
// symbolic links.
func (v *Volume) IsFile(path string) bool {
	st, err := v.Stat(path)
	return err == nil && st.IsRegular()
}

// IsLink reports whether path refers to a symbolic link.
func (v *Volume) IsLink(path string) bool {
	st, err := v.Lstat(path)
	return err == nil && st.IsSymlink()
}

// Getsize returns the size of the file at path in bytes.
func (v *Volume) Getsize(path string) (int64, error) {
	st, err := v.Stat(path)
	if err != nil {
		return 0, err
	}
	return st.Size, nil
}

// Getatime returns the last access time of the file at path.
func (v *Volume) Getatime(path string) (time.Time, error) {
	st, err := v.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return st.Atime(), nil
}

// Getmtime returns the last modification time of the file at path.
func (v *Volume) Getmtime(path string) (time.Time, error) {
	st, err := v.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return st.Mtime(), nil
}

// Getctime returns the last status change time of the file at path.
func (v *Volume) Getctime(path string) (time.Time, error) {
	st, err := v.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return st.Ctime(), nil
}

// SameFile reports whether path1 and path2 refer to the same file,
// comparing device and inode numbers after following symbolic links.
func (v *Volume) SameFile(path1, path2 string) (bool, error) {
	st1, err := v.Stat(path1)
	if err != nil {
		return false, err
	}
	st2, err := v.Stat(path2)
	if err != nil {
		return false, err
	}
	return st1.Ino == st2.Ino && st1.Dev == st2.Dev, nil
}

// Access checks whether the calling user has the given access rights
// to path, with mode a bitmask of unix.R_OK, unix.W_OK and unix.X_OK,
// or unix.F_OK to test for existence.
func (v *Volume) Access(path string, mode uint32) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Access(v.fs, path, int(mode)); err != nil {
		return pathError("access", path, err)
	}
	return nil
}

// Chmod changes the mode of the file at path. The mode is a raw POSIX
// permission bitmask including the setuid, setgid and sticky bits.
func (v *Volume) Chmod(path string, mode uint32) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Chmod(v.fs, path, mode); err != nil {
		return pathError("chmod", path, err)
	}
	return nil
}

// Chown changes the owner and group of the file at path, following
// symbolic links.
func (v *Volume) Chown(path string, uid, gid int) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Chown(v.fs, path, uid, gid); err != nil {
		return pathError("chown", path, err)
	}
	return nil
}

// Lchown changes the owner and group of the file at path without
// following a trailing symbolic link.
func (v *Volume) Lchown(path string, uid, gid int) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Lchown(v.fs, path, uid, gid); err != nil {
		return pathError("lchown", path, err)
	}
	return nil
}

// Chtimes changes the access and modification times of the file at
// path with nanosecond precision. A zero time value selects the
// current time for that field.
func (v *Volume) Chtimes(path string, atime, mtime time.Time) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	now := time.Now()
	if atime.IsZero() {
		atime = now
	}
	if mtime.IsZero() {
		mtime = now
	}
	times := [2]glfs.Timespec{glfs.TimespecOf(atime), glfs.TimespecOf(mtime)}
	if err := v.api.Utimens(v.fs, path, &times); err != nil {
		return pathError("utimens", path, err)
	}
	return nil
}
