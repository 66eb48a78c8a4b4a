package glfs

/*
#include <stddef.h>
#include <stdlib.h>
#include <errno.h>
#include <sys/types.h>
#include "glusterfs/api/glfs.h"

// Symbols past the GFAPI_3.4.0 baseline, declared weakly so the loader
// leaves them null against an older library instead of refusing to start
// the process. glfs_truncate is declared here in full because headers
// older than 7.0 do not carry it at all.
extern int glfs_get_volumeid(glfs_t *fs, char *volid, size_t size) __attribute__((weak));
extern int glfs_fallocate(glfs_fd_t *fd, int keep_size, off_t offset, size_t len) __attribute__((weak));
extern int glfs_discard(glfs_fd_t *fd, off_t offset, size_t len) __attribute__((weak));
extern int glfs_zerofill(glfs_fd_t *fd, off_t offset, off_t len) __attribute__((weak));
extern int glfs_truncate(glfs_t *fs, const char *path, off_t length) __attribute__((weak));

static int gfapi_have_get_volumeid(void) { return glfs_get_volumeid != NULL; }
static int gfapi_have_fallocate(void)    { return glfs_fallocate != NULL; }
static int gfapi_have_discard(void)      { return glfs_discard != NULL; }
static int gfapi_have_zerofill(void)     { return glfs_zerofill != NULL; }
static int gfapi_have_truncate(void)     { return glfs_truncate != NULL; }

static int gfapi_get_volumeid(glfs_t *fs, char *volid, size_t size) {
	if (glfs_get_volumeid == NULL) {
		errno = ENOSYS;
		return -1;
	}
	return glfs_get_volumeid(fs, volid, size);
}

static int gfapi_fallocate(glfs_fd_t *fd, int keep_size, off_t offset, size_t len) {
	if (glfs_fallocate == NULL) {
		errno = ENOSYS;
		return -1;
	}
	return glfs_fallocate(fd, keep_size, offset, len);
}

static int gfapi_discard(glfs_fd_t *fd, off_t offset, size_t len) {
	if (glfs_discard == NULL) {
		errno = ENOSYS;
		return -1;
	}
	return glfs_discard(fd, offset, len);
}

static int gfapi_zerofill(glfs_fd_t *fd, off_t offset, off_t len) {
	if (glfs_zerofill == NULL) {
		errno = ENOSYS;
		return -1;
	}
	return glfs_zerofill(fd, offset, len);
}

static int gfapi_truncate(glfs_t *fs, const char *path, off_t length) {
	if (glfs_truncate == NULL) {
		errno = ENOSYS;
		return -1;
	}
	return glfs_truncate(fs, path, length);
}
*/
import "C"

import "unsafe"

// Capabilities reports which optional libgfapi symbols the loaded library
// provides.
type Capabilities struct {
	VolumeID  bool
	Fallocate bool
	Discard   bool
	Zerofill  bool
	Truncate  bool
}

// Capabilities probes the optional symbol set of the loaded library.
func (API) Capabilities() Capabilities {
	return Capabilities{
		VolumeID:  C.gfapi_have_get_volumeid() != 0,
		Fallocate: C.gfapi_have_fallocate() != 0,
		Discard:   C.gfapi_have_discard() != 0,
		Zerofill:  C.gfapi_have_zerofill() != 0,
		Truncate:  C.gfapi_have_truncate() != 0,
	}
}

// GetVolumeID wraps glfs_get_volumeid, filling buf with the volume UUID
// bytes and reporting the length. Fails with ENOSYS when the library lacks
// the symbol.
func (API) GetVolumeID(fs *Fs, buf []byte) (int, error) {
	ret, err := C.gfapi_get_volumeid(fs.fs, (*C.char)(bufPtr(buf)), C.size_t(len(buf)))
	if ret < 0 {
		return 0, cerr(err)
	}

	return int(ret), nil
}

// Fallocate wraps glfs_fallocate. Fails with ENOSYS when the library lacks
// the symbol.
func (API) Fallocate(fd *Fd, flags int, off, n int64) error {
	ret, err := C.gfapi_fallocate(fd.fd, C.int(flags), C.off_t(off), C.size_t(n))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Discard wraps glfs_discard. Fails with ENOSYS when the library lacks the
// symbol.
func (API) Discard(fd *Fd, off, n int64) error {
	ret, err := C.gfapi_discard(fd.fd, C.off_t(off), C.size_t(n))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Zerofill wraps glfs_zerofill. Fails with ENOSYS when the library lacks
// the symbol.
func (API) Zerofill(fd *Fd, off, n int64) error {
	ret, err := C.gfapi_zerofill(fd.fd, C.off_t(off), C.off_t(n))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}

// Truncate wraps glfs_truncate. Fails with ENOSYS when the library lacks
// the symbol.
func (API) Truncate(fs *Fs, path string, size int64) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	ret, err := C.gfapi_truncate(fs.fs, cpath, C.off_t(size))
	if ret < 0 {
		return cerr(err)
	}

	return nil
}
