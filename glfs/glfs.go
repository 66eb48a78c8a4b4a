package glfs

/*
#cgo pkg-config: glusterfs-api

#include <stdlib.h>
#include <sys/stat.h>
#include <sys/statvfs.h>
#include <dirent.h>
#include "glusterfs/api/glfs.h"
*/
import "C"

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Compile-time layout checks of the Go mirrors against the C definitions.
// Either array goes negative when a mirror drifts from the header.
var (
	_ [C.sizeof_struct_stat - unsafe.Sizeof(Stat{})]byte
	_ [unsafe.Sizeof(Stat{}) - C.sizeof_struct_stat]byte
	_ [C.sizeof_struct_statvfs - unsafe.Sizeof(Statvfs{})]byte
	_ [unsafe.Sizeof(Statvfs{}) - C.sizeof_struct_statvfs]byte
	_ [C.sizeof_struct_dirent - unsafe.Sizeof(Dirent{})]byte
	_ [unsafe.Sizeof(Dirent{}) - C.sizeof_struct_dirent]byte
	_ [C.sizeof_struct_timespec - unsafe.Sizeof(Timespec{})]byte
	_ [unsafe.Sizeof(Timespec{}) - C.sizeof_struct_timespec]byte
)

// Fs is a handle to a virtual mount of a volume (a glfs_t). The zero value
// carries no mount; only [API.New] produces a usable handle.
type Fs struct {
	fs *C.glfs_t
}

// Fd is a handle to an open file or directory on a virtual mount (a
// glfs_fd_t).
type Fd struct {
	fd *C.glfs_fd_t
}

// API wraps the libgfapi calls one to one. The struct is stateless; it
// exists so consumers can take the call surface as an interface.
type API struct{}

// cerr normalizes the two-value cgo form. The library sets errno only on
// failure, and a few paths fail without setting it at all.
func cerr(err error) error {
	if err == nil {
		return unix.EIO
	}
	return err
}

func bufPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// New wraps glfs_new.
func (API) New(volname string) (*Fs, error) {
	cvol := C.CString(volname)
	defer C.free(unsafe.Pointer(cvol))

	fs, err := C.glfs_new(cvol)
	if fs == nil {
		return nil, cerr(err)
	}

	return &Fs{fs: fs}, nil
}

// SetVolfileServer wraps glfs_set_volfile_server.
func (API) SetVolfileServer(fs *Fs, proto, host string, port int) error {
	cproto := C.CString(proto)
	defer C.free(unsafe.Pointer(cproto))
	chost := C.CString(host)
	defer C.free(unsafe.Pointer(chost))

	ret, err := C.glfs_set_volfile_server(fs.fs, cproto, chost, C.int(port))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// SetLogging wraps glfs_set_logging. An empty logfile passes NULL through,
// which keeps the library's default log location.
func (API) SetLogging(fs *Fs, logfile string, level int) error {
	var clog *C.char
	if logfile != "" {
		clog = C.CString(logfile)
		defer C.free(unsafe.Pointer(clog))
	}

	ret, err := C.glfs_set_logging(fs.fs, clog, C.int(level))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Init wraps glfs_init.
func (API) Init(fs *Fs) error {
	ret, err := C.glfs_init(fs.fs)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Fini wraps glfs_fini.
func (API) Fini(fs *Fs) error {
	ret, err := C.glfs_fini(fs.fs)
	if ret < 0 {
		return cerr(err)
	}
	fs.fs = nil

	return nil
}

// Stat wraps glfs_stat.
func (API) Stat(fs *Fs, path string, st *Stat) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_stat(fs.fs, cpath, (*C.struct_stat)(unsafe.Pointer(st)))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Lstat wraps glfs_lstat.
func (API) Lstat(fs *Fs, path string, st *Stat) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_lstat(fs.fs, cpath, (*C.struct_stat)(unsafe.Pointer(st)))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Statvfs wraps glfs_statvfs.
func (API) Statvfs(fs *Fs, path string, st *Statvfs) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_statvfs(fs.fs, cpath, (*C.struct_statvfs)(unsafe.Pointer(st)))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Chmod wraps glfs_chmod.
func (API) Chmod(fs *Fs, path string, mode uint32) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_chmod(fs.fs, cpath, C.mode_t(mode))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Chown wraps glfs_chown.
func (API) Chown(fs *Fs, path string, uid, gid int) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_chown(fs.fs, cpath, C.uid_t(uid), C.gid_t(gid))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Lchown wraps glfs_lchown.
func (API) Lchown(fs *Fs, path string, uid, gid int) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_lchown(fs.fs, cpath, C.uid_t(uid), C.gid_t(gid))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Utimens wraps glfs_utimens.
func (API) Utimens(fs *Fs, path string, times *[2]Timespec) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_utimens(fs.fs, cpath, (*C.struct_timespec)(unsafe.Pointer(&times[0])))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Access wraps glfs_access.
func (API) Access(fs *Fs, path string, mode int) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_access(fs.fs, cpath, C.int(mode))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Readlink wraps glfs_readlink. It fills buf and reports the number of
// bytes written, without a trailing NUL.
func (API) Readlink(fs *Fs, path string, buf []byte) (int, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_readlink(fs.fs, cpath, (*C.char)(bufPtr(buf)), C.size_t(len(buf)))
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Symlink wraps glfs_symlink.
func (API) Symlink(fs *Fs, target, newpath string) error {
	ctarget := C.CString(target)
	defer C.free(unsafe.Pointer(ctarget))
	cnew := C.CString(newpath)
	defer C.free(unsafe.Pointer(cnew))

	ret, err := C.glfs_symlink(fs.fs, ctarget, cnew)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Link wraps glfs_link.
func (API) Link(fs *Fs, oldpath, newpath string) error {
	cold := C.CString(oldpath)
	defer C.free(unsafe.Pointer(cold))
	cnew := C.CString(newpath)
	defer C.free(unsafe.Pointer(cnew))

	ret, err := C.glfs_link(fs.fs, cold, cnew)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Rename wraps glfs_rename.
func (API) Rename(fs *Fs, oldpath, newpath string) error {
	cold := C.CString(oldpath)
	defer C.free(unsafe.Pointer(cold))
	cnew := C.CString(newpath)
	defer C.free(unsafe.Pointer(cnew))

	ret, err := C.glfs_rename(fs.fs, cold, cnew)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Unlink wraps glfs_unlink.
func (API) Unlink(fs *Fs, path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_unlink(fs.fs, cpath)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Mkdir wraps glfs_mkdir.
func (API) Mkdir(fs *Fs, path string, mode uint32) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_mkdir(fs.fs, cpath, C.mode_t(mode))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Rmdir wraps glfs_rmdir.
func (API) Rmdir(fs *Fs, path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_rmdir(fs.fs, cpath)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Mknod wraps glfs_mknod.
func (API) Mknod(fs *Fs, path string, mode uint32, dev uint64) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_mknod(fs.fs, cpath, C.mode_t(mode), C.dev_t(dev))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Chdir wraps glfs_chdir.
func (API) Chdir(fs *Fs, path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_chdir(fs.fs, cpath)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Getcwd wraps glfs_getcwd. On success buf holds the NUL-terminated
// working directory.
func (API) Getcwd(fs *Fs, buf []byte) error {
	ret, err := C.glfs_getcwd(fs.fs, (*C.char)(bufPtr(buf)), C.size_t(len(buf)))
	if ret == nil {
		return cerr(err)
	}

	return nil
}

// Getxattr wraps glfs_getxattr. With an empty dest it performs the size
// probe and reports the attribute length.
func (API) Getxattr(fs *Fs, path, attr string, dest []byte) (int, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cattr := C.CString(attr)
	defer C.free(unsafe.Pointer(cattr))

	ret, err := C.glfs_getxattr(fs.fs, cpath, cattr, bufPtr(dest), C.size_t(len(dest)))
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Setxattr wraps glfs_setxattr.
func (API) Setxattr(fs *Fs, path, attr string, data []byte, flags int) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cattr := C.CString(attr)
	defer C.free(unsafe.Pointer(cattr))

	ret, err := C.glfs_setxattr(fs.fs, cpath, cattr, bufPtr(data), C.size_t(len(data)), C.int(flags))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Removexattr wraps glfs_removexattr.
func (API) Removexattr(fs *Fs, path, attr string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cattr := C.CString(attr)
	defer C.free(unsafe.Pointer(cattr))

	ret, err := C.glfs_removexattr(fs.fs, cpath, cattr)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Listxattr wraps glfs_listxattr. With an empty dest it performs the size
// probe and reports the list length.
func (API) Listxattr(fs *Fs, path string, dest []byte) (int, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.glfs_listxattr(fs.fs, cpath, bufPtr(dest), C.size_t(len(dest)))
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Open wraps glfs_open.
func (API) Open(fs *Fs, path string, flags int) (*Fd, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	fd, err := C.glfs_open(fs.fs, cpath, C.int(flags))
	if fd == nil {
		return nil, cerr(err)
	}

	return &Fd{fd: fd}, nil
}

// Creat wraps glfs_creat.
func (API) Creat(fs *Fs, path string, flags int, mode uint32) (*Fd, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	fd, err := C.glfs_creat(fs.fs, cpath, C.int(flags), C.mode_t(mode))
	if fd == nil {
		return nil, cerr(err)
	}

	return &Fd{fd: fd}, nil
}

// Opendir wraps glfs_opendir.
func (API) Opendir(fs *Fs, path string) (*Fd, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	fd, err := C.glfs_opendir(fs.fs, cpath)
	if fd == nil {
		return nil, cerr(err)
	}

	return &Fd{fd: fd}, nil
}

// Close wraps glfs_close.
func (API) Close(fd *Fd) error {
	ret, err := C.glfs_close(fd.fd)
	if ret < 0 {
		return cerr(err)
	}
	fd.fd = nil

	return nil
}

// Read wraps glfs_read. A zero count with a non-empty buffer means the end
// of the file.
func (API) Read(fd *Fd, b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	ret, err := C.glfs_read(fd.fd, unsafe.Pointer(&b[0]), C.size_t(len(b)), 0)
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Write wraps glfs_write.
func (API) Write(fd *Fd, b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	ret, err := C.glfs_write(fd.fd, unsafe.Pointer(&b[0]), C.size_t(len(b)), 0)
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Pread wraps glfs_pread.
func (API) Pread(fd *Fd, b []byte, off int64) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	ret, err := C.glfs_pread(fd.fd, unsafe.Pointer(&b[0]), C.size_t(len(b)), C.off_t(off), 0, nil)
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Pwrite wraps glfs_pwrite.
func (API) Pwrite(fd *Fd, b []byte, off int64) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	ret, err := C.glfs_pwrite(fd.fd, unsafe.Pointer(&b[0]), C.size_t(len(b)), C.off_t(off), 0, nil, nil)
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Lseek wraps glfs_lseek.
func (API) Lseek(fd *Fd, off int64, whence int) (int64, error) {
	ret, err := C.glfs_lseek(fd.fd, C.off_t(off), C.int(whence))
	if ret < 0 {
		return 0, cerr(err)
	}

	return int64(ret), nil
}

// Ftruncate wraps glfs_ftruncate.
func (API) Ftruncate(fd *Fd, size int64) error {
	ret, err := C.glfs_ftruncate(fd.fd, C.off_t(size), nil, nil)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Fsync wraps glfs_fsync.
func (API) Fsync(fd *Fd) error {
	ret, err := C.glfs_fsync(fd.fd, nil, nil)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Fdatasync wraps glfs_fdatasync.
func (API) Fdatasync(fd *Fd) error {
	ret, err := C.glfs_fdatasync(fd.fd, nil, nil)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Fstat wraps glfs_fstat.
func (API) Fstat(fd *Fd, st *Stat) error {
	ret, err := C.glfs_fstat(fd.fd, (*C.struct_stat)(unsafe.Pointer(st)))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Fchmod wraps glfs_fchmod.
func (API) Fchmod(fd *Fd, mode uint32) error {
	ret, err := C.glfs_fchmod(fd.fd, C.mode_t(mode))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Fchown wraps glfs_fchown.
func (API) Fchown(fd *Fd, uid, gid int) error {
	ret, err := C.glfs_fchown(fd.fd, C.uid_t(uid), C.gid_t(gid))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Futimens wraps glfs_futimens.
func (API) Futimens(fd *Fd, times *[2]Timespec) error {
	ret, err := C.glfs_futimens(fd.fd, (*C.struct_timespec)(unsafe.Pointer(&times[0])))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Dup wraps glfs_dup.
func (API) Dup(fd *Fd) (*Fd, error) {
	dup, err := C.glfs_dup(fd.fd)
	if dup == nil {
		return nil, cerr(err)
	}

	return &Fd{fd: dup}, nil
}

// Fgetxattr wraps glfs_fgetxattr. With an empty dest it performs the size
// probe and reports the attribute length.
func (API) Fgetxattr(fd *Fd, attr string, dest []byte) (int, error) {
	cattr := C.CString(attr)
	defer C.free(unsafe.Pointer(cattr))

	ret, err := C.glfs_fgetxattr(fd.fd, cattr, bufPtr(dest), C.size_t(len(dest)))
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Fsetxattr wraps glfs_fsetxattr.
func (API) Fsetxattr(fd *Fd, attr string, data []byte, flags int) error {
	cattr := C.CString(attr)
	defer C.free(unsafe.Pointer(cattr))

	ret, err := C.glfs_fsetxattr(fd.fd, cattr, bufPtr(data), C.size_t(len(data)), C.int(flags))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Fremovexattr wraps glfs_fremovexattr.
func (API) Fremovexattr(fd *Fd, attr string) error {
	cattr := C.CString(attr)
	defer C.free(unsafe.Pointer(cattr))

	ret, err := C.glfs_fremovexattr(fd.fd, cattr)
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Flistxattr wraps glfs_flistxattr. With an empty dest it performs the
// size probe and reports the list length.
func (API) Flistxattr(fd *Fd, dest []byte) (int, error) {
	ret, err := C.glfs_flistxattr(fd.fd, bufPtr(dest), C.size_t(len(dest)))
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// ReaddirR wraps glfs_readdir_r. It fills ent and reports whether an entry
// was produced; false without an error is the end of the stream.
func (API) ReaddirR(fd *Fd, ent *Dirent) (bool, error) {
	var result *C.struct_dirent

	ret, err := C.glfs_readdir_r(fd.fd, (*C.struct_dirent)(unsafe.Pointer(ent)), &result)
	if ret != 0 {
		return false, cerr(err)
	}

	return result != nil, nil
}

// ReaddirplusR wraps glfs_readdirplus_r, filling st alongside ent.
func (API) ReaddirplusR(fd *Fd, st *Stat, ent *Dirent) (bool, error) {
	var result *C.struct_dirent

	ret, err := C.glfs_readdirplus_r(fd.fd, (*C.struct_stat)(unsafe.Pointer(st)),
		(*C.struct_dirent)(unsafe.Pointer(ent)), &result)
	if ret != 0 {
		return false, cerr(err)
	}

	return result != nil, nil
}

// Closedir wraps glfs_closedir.
func (API) Closedir(fd *Fd) error {
	ret, err := C.glfs_closedir(fd.fd)
	if ret < 0 {
		return cerr(err)
	}
	fd.fd = nil

	return nil
}

// SetFsUID wraps glfs_setfsuid. The change applies to the whole process,
// not to a single mount.
func (API) SetFsUID(uid int) error {
	ret, err := C.glfs_setfsuid(C.uid_t(uid))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// SetFsGID wraps glfs_setfsgid. The change applies to the whole process,
// not to a single mount.
func (API) SetFsGID(gid int) error {
	ret, err := C.glfs_setfsgid(C.gid_t(gid))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}
