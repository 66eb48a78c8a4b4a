package glfs

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// IsDir reports whether the record describes a directory.
func (s *Stat) IsDir() bool {
	return s.Mode&unix.S_IFMT == unix.S_IFDIR
}

// IsRegular reports whether the record describes a regular file.
func (s *Stat) IsRegular() bool {
	return s.Mode&unix.S_IFMT == unix.S_IFREG
}

// IsSymlink reports whether the record describes a symbolic link.
func (s *Stat) IsSymlink() bool {
	return s.Mode&unix.S_IFMT == unix.S_IFLNK
}

// Perm extracts the permission bits from the mode, including the
// set-user-ID, set-group-ID and sticky bits.
func (s *Stat) Perm() uint32 {
	return s.Mode & 0o7777
}

// Atime returns the access time.
func (s *Stat) Atime() time.Time {
	return time.Unix(int64(s.Atim.Sec), int64(s.Atim.Nsec))
}

// Mtime returns the modification time.
func (s *Stat) Mtime() time.Time {
	return time.Unix(int64(s.Mtim.Sec), int64(s.Mtim.Nsec))
}

// Ctime returns the status change time.
func (s *Stat) Ctime() time.Time {
	return time.Unix(int64(s.Ctim.Sec), int64(s.Ctim.Nsec))
}

// FileMode converts the raw st_mode bits into an [fs.FileMode].
func (s *Stat) FileMode() fs.FileMode {
	mode := fs.FileMode(s.Mode & 0o777)

	switch s.Mode & unix.S_IFMT {
	case unix.S_IFBLK:
		mode |= fs.ModeDevice
	case unix.S_IFCHR:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFDIR:
		mode |= fs.ModeDir
	case unix.S_IFIFO:
		mode |= fs.ModeNamedPipe
	case unix.S_IFLNK:
		mode |= fs.ModeSymlink
	case unix.S_IFSOCK:
		mode |= fs.ModeSocket
	}

	if s.Mode&unix.S_ISGID != 0 {
		mode |= fs.ModeSetgid
	}
	if s.Mode&unix.S_ISUID != 0 {
		mode |= fs.ModeSetuid
	}
	if s.Mode&unix.S_ISVTX != 0 {
		mode |= fs.ModeSticky
	}

	return mode
}

// DirentName extracts the NUL-terminated entry name from the fixed name
// buffer of a directory entry.
func DirentName(d *Dirent) string {
	buf := make([]byte, 0, 32)
	for _, c := range &d.Name {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}

	return string(buf)
}

// TimespecOf converts a [time.Time] into the C timespec shape.
func TimespecOf(t time.Time) Timespec {
	return newTimespec(t.Unix(), int64(t.Nanosecond()))
}
