package gfapi

import (
	"io"
	"time"

	"github.com/desertwitch/gfapi/glfs"
	"golang.org/x/sys/unix"
)

// File is an open file on a mounted [Volume].
//
// File implements [io.Reader], [io.Writer], [io.Seeker], [io.ReaderAt],
// [io.WriterAt] and [io.Closer]. Every method of a closed File fails
// with a path error wrapping unix.EBADF.
type File struct {
	api  apiProvider
	fd   *glfs.Fd
	name string
}

// Open opens the file at name for reading.
func (v *Volume) Open(name string) (*File, error) {
	return v.OpenFile(name, unix.O_RDONLY, 0)
}

// Create creates or truncates the file at name and opens it for
// writing, with permissions 0666 before umask for a new file.
func (v *Volume) Create(name string) (*File, error) {
	return v.OpenFile(name, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0o666)
}

// OpenFile opens the file at name with the given unix open flags. The
// permission bits perm apply when the flags create a new file.
func (v *Volume) OpenFile(name string, flags int, perm uint32) (*File, error) {
	if err := v.ensureMounted(); err != nil {
		return nil, err
	}

	var (
		fd  *glfs.Fd
		err error
	)
	if flags&unix.O_CREAT != 0 {
		fd, err = v.api.Creat(v.fs, name, flags, perm)
	} else {
		fd, err = v.api.Open(v.fs, name, flags)
	}
	if err != nil {
		return nil, pathError("open", name, err)
	}

	return &File{api: v.api, fd: fd, name: name}, nil
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	return f.name
}

// ensureOpen guards every operation against use of a closed file.
func (f *File) ensureOpen(op string) error {
	if f.fd == nil {
		return pathError(op, f.name, unix.EBADF)
	}
	return nil
}

// Close closes the file, releasing its descriptor. Further calls on
// the File, including Close itself, fail with unix.EBADF.
func (f *File) Close() error {
	if err := f.ensureOpen("close"); err != nil {
		return err
	}
	if err := f.api.Close(f.fd); err != nil {
		return pathError("close", f.name, err)
	}
	f.fd = nil
	return nil
}

// Read reads up to len(b) bytes from the current offset. At end of
// file it returns 0, [io.EOF].
func (f *File) Read(b []byte) (int, error) {
	if err := f.ensureOpen("read"); err != nil {
		return 0, err
	}
	n, err := f.api.Read(f.fd, b)
	if err != nil {
		return 0, pathError("read", f.name, err)
	}
	if n == 0 && len(b) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write writes len(b) bytes at the current offset, retrying short
// writes until everything is written or an error occurs.
func (f *File) Write(b []byte) (int, error) {
	if err := f.ensureOpen("write"); err != nil {
		return 0, err
	}
	var written int
	for written < len(b) {
		n, err := f.api.Write(f.fd, b[written:])
		if err != nil {
			return written, pathError("write", f.name, err)
		}
		if n == 0 {
			return written, pathError("write", f.name, io.ErrShortWrite)
		}
		written += n
	}
	return written, nil
}

// ReadAt reads len(b) bytes starting at byte offset off, without
// moving the file offset. It returns [io.EOF] with a short count when
// the file ends before the buffer is full.
func (f *File) ReadAt(b []byte, off int64) (int, error) {
	if err := f.ensureOpen("pread"); err != nil {
		return 0, err
	}
	var read int
	for read < len(b) {
		n, err := f.api.Pread(f.fd, b[read:], off+int64(read))
		if err != nil {
			return read, pathError("pread", f.name, err)
		}
		if n == 0 {
			return read, io.EOF
		}
		read += n
	}
	return read, nil
}

// WriteAt writes len(b) bytes starting at byte offset off, without
// moving the file offset.
func (f *File) WriteAt(b []byte, off int64) (int, error) {
	if err := f.ensureOpen("pwrite"); err != nil {
		return 0, err
	}
	var written int
	for written < len(b) {
		n, err := f.api.Pwrite(f.fd, b[written:], off+int64(written))
		if err != nil {
			return written, pathError("pwrite", f.name, err)
		}
		if n == 0 {
			return written, pathError("pwrite", f.name, io.ErrShortWrite)
		}
		written += n
	}
	return written, nil
}

// Seek sets the file offset, interpreting offset according to whence:
// [io.SeekStart], [io.SeekCurrent] or [io.SeekEnd]. It returns the new
// offset from the start of the file.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if err := f.ensureOpen("lseek"); err != nil {
		return 0, err
	}
	pos, err := f.api.Lseek(f.fd, offset, whence)
	if err != nil {
		return 0, pathError("lseek", f.name, err)
	}
	return pos, nil
}

// Stat returns the metadata of the open file.
func (f *File) Stat() (*glfs.Stat, error) {
	if err := f.ensureOpen("fstat"); err != nil {
		return nil, err
	}
	var st glfs.Stat
	if err := f.api.Fstat(f.fd, &st); err != nil {
		return nil, pathError("fstat", f.name, err)
	}
	return &st, nil
}

// Size returns the current size of the open file in bytes.
func (f *File) Size() (int64, error) {
	st, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return st.Size, nil
}

// Truncate changes the size of the open file.
func (f *File) Truncate(size int64) error {
	if err := f.ensureOpen("ftruncate"); err != nil {
		return err
	}
	if err := f.api.Ftruncate(f.fd, size); err != nil {
		return pathError("ftruncate", f.name, err)
	}
	return nil
}

// Sync flushes the file data and metadata to stable storage.
func (f *File) Sync() error {
	if err := f.ensureOpen("fsync"); err != nil {
		return err
	}
	if err := f.api.Fsync(f.fd); err != nil {
		return pathError("fsync", f.name, err)
	}
	return nil
}

// Datasync flushes the file data to stable storage, without flushing
// metadata not needed to read it back.
func (f *File) Datasync() error {
	if err := f.ensureOpen("fdatasync"); err != nil {
		return err
	}
	if err := f.api.Fdatasync(f.fd); err != nil {
		return pathError("fdatasync", f.name, err)
	}
	return nil
}

// Chmod changes the mode of the open file. The mode is a raw POSIX
// permission bitmask including the setuid, setgid and sticky bits.
func (f *File) Chmod(mode uint32) error {
	if err := f.ensureOpen("fchmod"); err != nil {
		return err
	}
	if err := f.api.Fchmod(f.fd, mode); err != nil {
		return pathError("fchmod", f.name, err)
	}
	return nil
}

// Chown changes the owner and group of the open file.
func (f *File) Chown(uid, gid int) error {
	if err := f.ensureOpen("fchown"); err != nil {
		return err
	}
	if err := f.api.Fchown(f.fd, uid, gid); err != nil {
		return pathError("fchown", f.name, err)
	}
	return nil
}

// Chtimes changes the access and modification times of the open file
// with nanosecond precision. A zero time value selects the current
// time for that field.
func (f *File) Chtimes(atime, mtime time.Time) error {
	if err := f.ensureOpen("futimens"); err != nil {
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
	if err := f.api.Futimens(f.fd, &times); err != nil {
		return pathError("futimens", f.name, err)
	}
	return nil
}

// Dup returns a second independent descriptor for the same open file.
func (f *File) Dup() (*File, error) {
	if err := f.ensureOpen("dup"); err != nil {
		return nil, err
	}
	fd, err := f.api.Dup(f.fd)
	if err != nil {
		return nil, pathError("dup", f.name, err)
	}
	return &File{api: f.api, fd: fd, name: f.name}, nil
}

// Fallocate preallocates space for the open file, with mode a bitmask
// of unix.FALLOC_FL_* flags.
//
// Requires a gluster library providing glfs_fallocate; see
// [Volume.Capabilities].
func (f *File) Fallocate(mode int, off, n int64) error {
	if err := f.ensureOpen("fallocate"); err != nil {
		return err
	}
	if err := f.api.Fallocate(f.fd, mode, off, n); err != nil {
		return pathError("fallocate", f.name, err)
	}
	return nil
}

// Discard deallocates the given byte range of the open file,
// punching a hole into it.
//
// Requires a gluster library providing glfs_discard; see
// [Volume.Capabilities].
func (f *File) Discard(off, n int64) error {
	if err := f.ensureOpen("discard"); err != nil {
		return err
	}
	if err := f.api.Discard(f.fd, off, n); err != nil {
		return pathError("discard", f.name, err)
	}
	return nil
}

// Zerofill overwrites the given byte range of the open file with
// zeroes.
//
// Requires a gluster library providing glfs_zerofill; see
// [Volume.Capabilities].
func (f *File) Zerofill(off, n int64) error {
	if err := f.ensureOpen("zerofill"); err != nil {
		return err
	}
	if err := f.api.Zerofill(f.fd, off, n); err != nil {
		return pathError("zerofill", f.name, err)
	}
	return nil
}

// Getxattr returns the value of the named extended attribute of the
// open file.
func (f *File) Getxattr(attr string) ([]byte, error) {
	if err := f.ensureOpen("fgetxattr"); err != nil {
		return nil, err
	}
	size, err := f.api.Fgetxattr(f.fd, attr, nil)
	if err != nil {
		return nil, pathError("fgetxattr", f.name, err)
	}
	if size == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, size)
	n, err := f.api.Fgetxattr(f.fd, attr, buf)
	if err != nil {
		return nil, pathError("fgetxattr", f.name, err)
	}
	return buf[:n], nil
}

// Setxattr sets the named extended attribute of the open file. Flags
// may be 0, unix.XATTR_CREATE or unix.XATTR_REPLACE.
func (f *File) Setxattr(attr string, data []byte, flags int) error {
	if err := f.ensureOpen("fsetxattr"); err != nil {
		return err
	}
	if err := f.api.Fsetxattr(f.fd, attr, data, flags); err != nil {
		return pathError("fsetxattr", f.name, err)
	}
	return nil
}

// Removexattr removes the named extended attribute of the open file.
func (f *File) Removexattr(attr string) error {
	if err := f.ensureOpen("fremovexattr"); err != nil {
		return err
	}
	if err := f.api.Fremovexattr(f.fd, attr); err != nil {
		return pathError("fremovexattr", f.name, err)
	}
	return nil
}

// Listxattr returns the names of all extended attributes of the open
// file, sorted.
func (f *File) Listxattr() ([]string, error) {
	if err := f.ensureOpen("flistxattr"); err != nil {
		return nil, err
	}
	size, err := f.api.Flistxattr(f.fd, nil)
	if err != nil {
		return nil, pathError("flistxattr", f.name, err)
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	n, err := f.api.Flistxattr(f.fd, buf)
	if err != nil {
		return nil, pathError("flistxattr", f.name, err)
	}
	return parseXattrList(buf[:n]), nil
}

var (
	_ io.Reader   = (*File)(nil)
	_ io.Writer   = (*File)(nil)
	_ io.Seeker   = (*File)(nil)
	_ io.ReaderAt = (*File)(nil)
	_ io.WriterAt = (*File)(nil)
	_ io.Closer   = (*File)(nil)
)
