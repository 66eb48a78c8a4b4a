package gfapi

import (
	"bytes"
	"fmt"
)

// pathMax bounds the readlink and getcwd buffers, matching PATH_MAX on
// Linux.
const pathMax = 4096

// Mkdir creates a directory at path with the given permission bits.
func (v *Volume) Mkdir(path string, mode uint32) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Mkdir(v.fs, path, mode); err != nil {
		return pathError("mkdir", path, err)
	}
	return nil
}

// Rmdir removes the empty directory at path.
func (v *Volume) Rmdir(path string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Rmdir(v.fs, path); err != nil {
		return pathError("rmdir", path, err)
	}
	return nil
}

// Unlink removes the file, symbolic link or special file at path.
func (v *Volume) Unlink(path string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Unlink(v.fs, path); err != nil {
		return pathError("unlink", path, err)
	}
	return nil
}

// Remove removes the file at path. It is an alias for [Volume.Unlink];
// directories are removed with [Volume.Rmdir] or [Volume.Rmtree].
func (v *Volume) Remove(path string) error {
	return v.Unlink(path)
}

// Rename renames (moves) oldpath to newpath, replacing an existing
// file at newpath.
func (v *Volume) Rename(oldpath, newpath string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Rename(v.fs, oldpath, newpath); err != nil {
		return linkError("rename", oldpath, newpath, err)
	}
	return nil
}

// Link creates newpath as a hard link to oldpath.
func (v *Volume) Link(oldpath, newpath string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Link(v.fs, oldpath, newpath); err != nil {
		return linkError("link", oldpath, newpath, err)
	}
	return nil
}

// Symlink creates newpath as a symbolic link pointing at target.
func (v *Volume) Symlink(target, newpath string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Symlink(v.fs, target, newpath); err != nil {
		return linkError("symlink", target, newpath, err)
	}
	return nil
}

// Readlink returns the target of the symbolic link at path.
func (v *Volume) Readlink(path string) (string, error) {
	if err := v.ensureMounted(); err != nil {
		return "", err
	}
	buf := make([]byte, pathMax)
	n, err := v.api.Readlink(v.fs, path, buf)
	if err != nil {
		return "", pathError("readlink", path, err)
	}
	return string(buf[:n]), nil
}

// Mknod creates a filesystem node (regular file, device special file
// or named pipe) at path, with type and permissions given by mode and
// the device number given by dev.
func (v *Volume) Mknod(path string, mode uint32, dev uint64) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Mknod(v.fs, path, mode, dev); err != nil {
		return pathError("mknod", path, err)
	}
	return nil
}

// Truncate changes the size of the file at path without opening it.
//
// Requires a gluster library providing glfs_truncate; see
// [Volume.Capabilities]. [File.Truncate] works everywhere.
func (v *Volume) Truncate(path string, size int64) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Truncate(v.fs, path, size); err != nil {
		return pathError("truncate", path, err)
	}
	return nil
}

// Chdir changes the working directory of the virtual mount. Relative
// paths in subsequent operations resolve against it.
func (v *Volume) Chdir(path string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Chdir(v.fs, path); err != nil {
		return pathError("chdir", path, err)
	}
	return nil
}

// Getcwd returns the working directory of the virtual mount.
func (v *Volume) Getcwd() (string, error) {
	if err := v.ensureMounted(); err != nil {
		return "", err
	}
	buf := make([]byte, pathMax)
	if err := v.api.Getcwd(v.fs, buf); err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	if n := bytes.IndexByte(buf, 0); n >= 0 {
		buf = buf[:n]
	}
	return string(buf), nil
}
