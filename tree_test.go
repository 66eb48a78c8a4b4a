package gfapi

import (
	"testing"

	"github.com/desertwitch/gfapi/glfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestVolume_Makedirs tests recursive directory creation: existing
// parents are left alone, missing ones are created first.
func TestVolume_Makedirs(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Stat", v.fs, "/a/b", mock.Anything).Return(unix.ENOENT)
	m.On("Stat", v.fs, "/a", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)

	var made []string
	m.On("Mkdir", v.fs, mock.Anything, uint32(0o750)).Run(func(args mock.Arguments) {
		made = append(made, args.String(1))
	}).Return(nil)

	require.NoError(t, v.Makedirs("/a/b/c", 0o750))
	assert.Equal(t, []string{"/a/b", "/a/b/c"}, made)
}

func TestVolume_Makedirs_SingleLevel(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Stat", v.fs, "/a", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Mkdir", v.fs, "/a/b", uint32(0o755)).Return(nil)

	require.NoError(t, v.Makedirs("/a/b", 0o755))
}

func TestVolume_Makedirs_TrailingSlash(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Stat", v.fs, "/a", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Mkdir", v.fs, "/a/b/", uint32(0o755)).Return(nil)

	require.NoError(t, v.Makedirs("/a/b/", 0o755))
}

// TestVolume_Makedirs_LeafExists tests that an existing leaf fails
// with EEXIST even though existing parents are fine.
func TestVolume_Makedirs_LeafExists(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Stat", v.fs, "/a", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Mkdir", v.fs, "/a/b", uint32(0o755)).Return(unix.EEXIST)

	require.ErrorIs(t, v.Makedirs("/a/b", 0o755), unix.EEXIST)
}

// TestVolume_Makedirs_ParentRace tests that a parent appearing between
// the existence check and its creation is tolerated.
func TestVolume_Makedirs_ParentRace(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Stat", v.fs, "/a/b", mock.Anything).Return(unix.ENOENT)
	m.On("Stat", v.fs, "/a", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Mkdir", v.fs, "/a/b", uint32(0o755)).Return(unix.EEXIST)
	m.On("Mkdir", v.fs, "/a/b/c", uint32(0o755)).Return(nil)

	require.NoError(t, v.Makedirs("/a/b/c", 0o755))
}

func TestVolume_Rmtree_RefusesSymlink(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Lstat", v.fs, "/link", mock.Anything).Run(fillStat(2, symlinkStat())).Return(nil)

	err := v.Rmtree("/link", nil)
	require.ErrorIs(t, err, ErrIsSymlink)
	m.AssertNotCalled(t, "Opendir", mock.Anything, mock.Anything)
	m.AssertNotCalled(t, "Rmdir", mock.Anything, mock.Anything)
}

// TestVolume_Rmtree tests depth-first removal: files unlinked,
// subdirectories recursed into, directories removed on the way out.
func TestVolume_Rmtree(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Lstat", v.fs, "/data", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Opendir", v.fs, mock.Anything).Return(&glfs.Fd{}, nil)
	m.On("Closedir", mock.Anything).Return(nil)

	// Stream order: the root yields a file and a subdirectory, the
	// subdirectory is empty.
	expectReaddirplus(m,
		[]glfs.Dirent{direntNamed("file.txt", 2), direntNamed("sub", 3)},
		[]glfs.Stat{regularStat(1), dirStat()},
	)

	var removals []string
	m.On("Unlink", v.fs, mock.Anything).Run(func(args mock.Arguments) {
		removals = append(removals, "unlink "+args.String(1))
	}).Return(nil)
	m.On("Rmdir", v.fs, mock.Anything).Run(func(args mock.Arguments) {
		removals = append(removals, "rmdir "+args.String(1))
	}).Return(nil)

	require.NoError(t, v.Rmtree("/data", nil))
	assert.Equal(t, []string{
		"unlink /data/file.txt",
		"rmdir /data/sub",
		"rmdir /data",
	}, removals)
}

// TestVolume_Rmtree_AbortsOnFirstError tests the default behavior
// without a handler: the first failure stops the removal.
func TestVolume_Rmtree_AbortsOnFirstError(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Lstat", v.fs, "/data", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Opendir", v.fs, "/data").Return(&glfs.Fd{}, nil)
	m.On("Closedir", mock.Anything).Return(nil)
	expectReaddirplus(m,
		[]glfs.Dirent{direntNamed("file.txt", 2)},
		[]glfs.Stat{regularStat(1)},
	)
	m.On("Unlink", v.fs, "/data/file.txt").Return(unix.EACCES)

	err := v.Rmtree("/data", nil)
	require.ErrorIs(t, err, unix.EACCES)
	m.AssertNotCalled(t, "Rmdir", mock.Anything, mock.Anything)
}

// TestVolume_Rmtree_HandlerContinues tests that a handler returning
// nil keeps the removal going past failures.
func TestVolume_Rmtree_HandlerContinues(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Lstat", v.fs, "/data", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Opendir", v.fs, "/data").Return(&glfs.Fd{}, nil)
	m.On("Closedir", mock.Anything).Return(nil)
	expectReaddirplus(m,
		[]glfs.Dirent{direntNamed("a.txt", 2), direntNamed("b.txt", 3)},
		[]glfs.Stat{regularStat(1), regularStat(1)},
	)
	m.On("Unlink", v.fs, "/data/a.txt").Return(unix.EACCES)
	m.On("Unlink", v.fs, "/data/b.txt").Return(nil)
	m.On("Rmdir", v.fs, "/data").Return(unix.ENOTEMPTY)

	var seen []string
	handler := func(op, path string, err error) error {
		seen = append(seen, op+" "+path)
		return nil
	}

	require.NoError(t, v.Rmtree("/data", handler))
	assert.Equal(t, []string{
		"unlink /data/a.txt",
		"rmdir /data",
	}, seen)
}

// TestVolume_Rmtree_HandlerAborts tests that a handler returning an
// error surfaces it and stops the removal.
func TestVolume_Rmtree_HandlerAborts(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Lstat", v.fs, "/data", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Opendir", v.fs, "/data").Return(&glfs.Fd{}, nil)
	m.On("Closedir", mock.Anything).Return(nil)
	expectReaddirplus(m,
		[]glfs.Dirent{direntNamed("a.txt", 2)},
		[]glfs.Stat{regularStat(1)},
	)
	m.On("Unlink", v.fs, "/data/a.txt").Return(unix.EACCES)

	handler := func(op, path string, err error) error {
		return err
	}

	require.ErrorIs(t, v.Rmtree("/data", handler), unix.EACCES)
	m.AssertNotCalled(t, "Rmdir", mock.Anything, mock.Anything)
}

func TestVolume_Rmtree_ScandirError(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Lstat", v.fs, "/data", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
	m.On("Opendir", v.fs, "/data").Return(nil, unix.EACCES)

	err := v.Rmtree("/data", nil)
	require.ErrorIs(t, err, unix.EACCES)
	m.AssertNotCalled(t, "Rmdir", mock.Anything, mock.Anything)
}
