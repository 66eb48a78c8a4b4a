//go:build ignore

/*
Input to cgo -godefs:

	GOARCH=$GOARCH go tool cgo -godefs types_linux.go > ztypes_linux_$GOARCH.go

The gluster headers are built with _FILE_OFFSET_BITS=64, so the mirrors
must be generated with the same definition: struct stat is the stat64
shape, struct dirent the dirent64 shape. Field order is NOT uniform across
architectures; on amd64 st_nlink precedes st_mode, on arm64 and 386 it is
the other way around, and 386 splits the inode across __st_ino and a
trailing 64-bit st_ino. Regenerate on the target, never copy between
architectures.
*/
package glfs

/*
#define _FILE_OFFSET_BITS 64

#include <sys/stat.h>
#include <sys/statvfs.h>
#include <dirent.h>
#include <time.h>
*/
import "C"

type Timespec C.struct_timespec

type Stat C.struct_stat

type Statvfs C.struct_statvfs

type Dirent C.struct_dirent

const (
	sizeofTimespec = C.sizeof_struct_timespec
	sizeofStat     = C.sizeof_struct_stat
	sizeofStatvfs  = C.sizeof_struct_statvfs
	sizeofDirent   = C.sizeof_struct_dirent
)
