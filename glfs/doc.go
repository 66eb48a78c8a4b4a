// Package glfs is the raw foreign layer over the GlusterFS client library
// (libgfapi). It declares the C call surface, mirrors the C structures the
// library reads and writes (struct stat, struct statvfs, struct dirent,
// struct timespec) bit for bit per architecture, and exposes one thin Go
// wrapper per C function on the [API] struct. No policy lives here: handles
// are opaque, buffers are caller-owned and errors are plain [syscall.Errno]
// values taken from the C library's errno.
//
// The wrappers target the prototypes of GlusterFS 6.0 and later headers
// (the data-path calls grew pre/post attribute out-parameters in 6.0; they
// are passed as NULL). Symbols that entered the library after the 3.4.0
// baseline and are still missing from installations in the field are bound
// weakly and probed at load time, see [API.Capabilities]:
//
//	glfs_get_volumeid   GFAPI_3.5.0
//	glfs_fallocate      GFAPI_3.5.0
//	glfs_discard        GFAPI_3.5.0
//	glfs_zerofill       GFAPI_3.5.0
//	glfs_truncate       GFAPI_7.0 (3.7.15 on some branches)
//
// Calling a missing optional symbol fails with ENOSYS instead of aborting
// symbol resolution at process start.
package glfs
