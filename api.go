package gfapi

import "github.com/desertwitch/gfapi/glfs"

// apiProvider is the raw call surface the façade types talk to. It is
// satisfied by [glfs.API] and substituted in tests.
type apiProvider interface {
	New(volname string) (*glfs.Fs, error)
	SetVolfileServer(fs *glfs.Fs, proto, host string, port int) error
	SetLogging(fs *glfs.Fs, logfile string, level int) error
	Init(fs *glfs.Fs) error
	Fini(fs *glfs.Fs) error

	Stat(fs *glfs.Fs, path string, st *glfs.Stat) error
	Lstat(fs *glfs.Fs, path string, st *glfs.Stat) error
	Statvfs(fs *glfs.Fs, path string, st *glfs.Statvfs) error
	Chmod(fs *glfs.Fs, path string, mode uint32) error
	Chown(fs *glfs.Fs, path string, uid, gid int) error
	Lchown(fs *glfs.Fs, path string, uid, gid int) error
	Utimens(fs *glfs.Fs, path string, times *[2]glfs.Timespec) error
	Access(fs *glfs.Fs, path string, mode int) error
	Readlink(fs *glfs.Fs, path string, buf []byte) (int, error)
	Symlink(fs *glfs.Fs, target, newpath string) error
	Link(fs *glfs.Fs, oldpath, newpath string) error
	Rename(fs *glfs.Fs, oldpath, newpath string) error
	Unlink(fs *glfs.Fs, path string) error
	Mkdir(fs *glfs.Fs, path string, mode uint32) error
	Rmdir(fs *glfs.Fs, path string) error
	Mknod(fs *glfs.Fs, path string, mode uint32, dev uint64) error
	Chdir(fs *glfs.Fs, path string) error
	Getcwd(fs *glfs.Fs, buf []byte) error
	Truncate(fs *glfs.Fs, path string, size int64) error
	GetVolumeID(fs *glfs.Fs, buf []byte) (int, error)

	Getxattr(fs *glfs.Fs, path, attr string, dest []byte) (int, error)
	Setxattr(fs *glfs.Fs, path, attr string, data []byte, flags int) error
	Removexattr(fs *glfs.Fs, path, attr string) error
	Listxattr(fs *glfs.Fs, path string, dest []byte) (int, error)

	Open(fs *glfs.Fs, path string, flags int) (*glfs.Fd, error)
	Creat(fs *glfs.Fs, path string, flags int, mode uint32) (*glfs.Fd, error)
	Opendir(fs *glfs.Fs, path string) (*glfs.Fd, error)

	Close(fd *glfs.Fd) error
	Read(fd *glfs.Fd, b []byte) (int, error)
	Write(fd *glfs.Fd, b []byte) (int, error)
	Pread(fd *glfs.Fd, b []byte, off int64) (int, error)
	Pwrite(fd *glfs.Fd, b []byte, off int64) (int, error)
	Lseek(fd *glfs.Fd, off int64, whence int) (int64, error)
	Ftruncate(fd *glfs.Fd, size int64) error
	Fsync(fd *glfs.Fd) error
	Fdatasync(fd *glfs.Fd) error
	Fstat(fd *glfs.Fd, st *glfs.Stat) error
	Fchmod(fd *glfs.Fd, mode uint32) error
	Fchown(fd *glfs.Fd, uid, gid int) error
	Futimens(fd *glfs.Fd, times *[2]glfs.Timespec) error
	Dup(fd *glfs.Fd) (*glfs.Fd, error)
	Fallocate(fd *glfs.Fd, flags int, off, n int64) error
	Discard(fd *glfs.Fd, off, n int64) error
	Zerofill(fd *glfs.Fd, off, n int64) error

	Fgetxattr(fd *glfs.Fd, attr string, dest []byte) (int, error)
	Fsetxattr(fd *glfs.Fd, attr string, data []byte, flags int) error
	Fremovexattr(fd *glfs.Fd, attr string) error
	Flistxattr(fd *glfs.Fd, dest []byte) (int, error)

	ReaddirR(fd *glfs.Fd, ent *glfs.Dirent) (bool, error)
	ReaddirplusR(fd *glfs.Fd, st *glfs.Stat, ent *glfs.Dirent) (bool, error)
	Closedir(fd *glfs.Fd) error

	SetFsUID(uid int) error
	SetFsGID(gid int) error

	Capabilities() glfs.Capabilities
}

var _ apiProvider = glfs.API{}
