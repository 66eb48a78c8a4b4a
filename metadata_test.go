package gfapi

import (
	"os"
	"testing"
	"time"

	"github.com/desertwitch/gfapi/glfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// fillStat returns a Run hook that writes st into the stat
// out-parameter at argument index i.
func fillStat(i int, st glfs.Stat) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*(args.Get(i).(*glfs.Stat)) = st
	}
}

func regularStat(size int64) glfs.Stat {
	var st glfs.Stat
	st.Mode = unix.S_IFREG | 0o644
	st.Size = size
	return st
}

func dirStat() glfs.Stat {
	var st glfs.Stat
	st.Mode = unix.S_IFDIR | 0o755
	return st
}

func symlinkStat() glfs.Stat {
	var st glfs.Stat
	st.Mode = unix.S_IFLNK | 0o777
	return st
}

func TestVolume_Stat(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Stat", v.fs, "/data/file.txt", mock.Anything).
		Run(fillStat(2, regularStat(42))).Return(nil)

	st, err := v.Stat("/data/file.txt")
	require.NoError(t, err)
	assert.EqualValues(t, 42, st.Size)
	assert.True(t, st.IsRegular())
}

func TestVolume_Stat_Error(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Stat", v.fs, "/missing", mock.Anything).Return(unix.ENOENT)

	_, err := v.Stat("/missing")
	require.ErrorIs(t, err, unix.ENOENT)

	var perr *os.PathError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "stat", perr.Op)
	assert.Equal(t, "/missing", perr.Path)
}

func TestVolume_Lstat(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Lstat", v.fs, "/data/link", mock.Anything).
		Run(fillStat(2, symlinkStat())).Return(nil)

	st, err := v.Lstat("/data/link")
	require.NoError(t, err)
	assert.True(t, st.IsSymlink())
}

func TestVolume_Statvfs(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Statvfs", v.fs, "/", mock.Anything).Run(func(args mock.Arguments) {
		st := args.Get(2).(*glfs.Statvfs)
		st.Bsize = 4096
		st.Blocks = 1000
		st.Bavail = 250
	}).Return(nil)

	st, err := v.Statvfs("/")
	require.NoError(t, err)
	assert.EqualValues(t, 4096, st.Bsize)
	assert.EqualValues(t, 1000, st.Blocks)
	assert.EqualValues(t, 250, st.Bavail)
}

// TestVolume_Predicates tests the boolean path classification helpers
// and which stat flavor each of them relies on.
func TestVolume_Predicates(t *testing.T) {
	t.Parallel()

	t.Run("Exists_True", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/x", mock.Anything).Run(fillStat(2, regularStat(1))).Return(nil)
		assert.True(t, v.Exists("/x"))
	})

	t.Run("Exists_False", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/x", mock.Anything).Return(unix.ENOENT)
		assert.False(t, v.Exists("/x"))
	})

	t.Run("IsDir_OnDirectory", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/x", mock.Anything).Run(fillStat(2, dirStat())).Return(nil)
		assert.True(t, v.IsDir("/x"))
	})

	t.Run("IsDir_OnFile", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/x", mock.Anything).Run(fillStat(2, regularStat(1))).Return(nil)
		assert.False(t, v.IsDir("/x"))
	})

	t.Run("IsFile_OnFile", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/x", mock.Anything).Run(fillStat(2, regularStat(1))).Return(nil)
		assert.True(t, v.IsFile("/x"))
	})

	t.Run("IsLink_UsesLstat", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Lstat", v.fs, "/x", mock.Anything).Run(fillStat(2, symlinkStat())).Return(nil)
		assert.True(t, v.IsLink("/x"))
		m.AssertNotCalled(t, "Stat", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("IsLink_OnError", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Lstat", v.fs, "/x", mock.Anything).Return(unix.ENOENT)
		assert.False(t, v.IsLink("/x"))
	})
}

func TestVolume_Getsize(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Stat", v.fs, "/data/file.txt", mock.Anything).
		Run(fillStat(2, regularStat(4096))).Return(nil)

	size, err := v.Getsize("/data/file.txt")
	require.NoError(t, err)
	assert.EqualValues(t, 4096, size)
}

func TestVolume_GetTimes(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	atime := time.Unix(1700000000, 111)
	mtime := time.Unix(1700000100, 222)
	ctime := time.Unix(1700000200, 333)

	st := regularStat(1)
	st.Atim = glfs.TimespecOf(atime)
	st.Mtim = glfs.TimespecOf(mtime)
	st.Ctim = glfs.TimespecOf(ctime)

	m.On("Stat", v.fs, "/x", mock.Anything).Run(fillStat(2, st)).Return(nil)

	got, err := v.Getatime("/x")
	require.NoError(t, err)
	assert.True(t, got.Equal(atime))

	got, err = v.Getmtime("/x")
	require.NoError(t, err)
	assert.True(t, got.Equal(mtime))

	got, err = v.Getctime("/x")
	require.NoError(t, err)
	assert.True(t, got.Equal(ctime))
}

func TestVolume_SameFile(t *testing.T) {
	t.Parallel()

	newStat := func(dev, ino uint64) glfs.Stat {
		st := regularStat(1)
		st.Dev = dev
		st.Ino = ino
		return st
	}

	t.Run("Same", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/a", mock.Anything).Run(fillStat(2, newStat(5, 77))).Return(nil)
		m.On("Stat", v.fs, "/b", mock.Anything).Run(fillStat(2, newStat(5, 77))).Return(nil)

		same, err := v.SameFile("/a", "/b")
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("DifferentInode", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/a", mock.Anything).Run(fillStat(2, newStat(5, 77))).Return(nil)
		m.On("Stat", v.fs, "/b", mock.Anything).Run(fillStat(2, newStat(5, 78))).Return(nil)

		same, err := v.SameFile("/a", "/b")
		require.NoError(t, err)
		assert.False(t, same)
	})

	t.Run("DifferentDevice", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/a", mock.Anything).Run(fillStat(2, newStat(5, 77))).Return(nil)
		m.On("Stat", v.fs, "/b", mock.Anything).Run(fillStat(2, newStat(6, 77))).Return(nil)

		same, err := v.SameFile("/a", "/b")
		require.NoError(t, err)
		assert.False(t, same)
	})

	t.Run("StatError", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)
		m.On("Stat", v.fs, "/a", mock.Anything).Return(unix.ENOENT)

		_, err := v.SameFile("/a", "/b")
		require.ErrorIs(t, err, unix.ENOENT)
	})
}

func TestVolume_Access(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Access", v.fs, "/ok", int(unix.R_OK|unix.W_OK)).Return(nil)
	m.On("Access", v.fs, "/denied", int(unix.W_OK)).Return(unix.EACCES)

	require.NoError(t, v.Access("/ok", unix.R_OK|unix.W_OK))

	err := v.Access("/denied", unix.W_OK)
	require.ErrorIs(t, err, unix.EACCES)

	var perr *os.PathError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "access", perr.Op)
}

func TestVolume_Chmod(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Chmod", v.fs, "/x", uint32(0o4755)).Return(nil)

	require.NoError(t, v.Chmod("/x", 0o4755))
}

func TestVolume_Chown(t *testing.T) {
	t.Parallel()

	m := newMockAPI(t)
	v := mountedVolume(m)

	m.On("Chown", v.fs, "/x", 1000, 100).Return(nil)
	m.On("Lchown", v.fs, "/link", 1000, 100).Return(nil)

	require.NoError(t, v.Chown("/x", 1000, 100))
	require.NoError(t, v.Lchown("/link", 1000, 100))
}

// TestVolume_Chtimes tests nanosecond passthrough and the zero-value
// to current-time substitution.
func TestVolume_Chtimes(t *testing.T) {
	t.Parallel()

	t.Run("ExplicitTimes", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)

		atime := time.Unix(1700000000, 123456789)
		mtime := time.Unix(1700000100, 987654321)

		var got [2]glfs.Timespec
		m.On("Utimens", v.fs, "/x", mock.Anything).Run(func(args mock.Arguments) {
			got = *(args.Get(2).(*[2]glfs.Timespec))
		}).Return(nil)

		require.NoError(t, v.Chtimes("/x", atime, mtime))
		assert.Equal(t, glfs.TimespecOf(atime), got[0])
		assert.Equal(t, glfs.TimespecOf(mtime), got[1])
	})

	t.Run("ZeroMeansNow", func(t *testing.T) {
		t.Parallel()
		m := newMockAPI(t)
		v := mountedVolume(m)

		var got [2]glfs.Timespec
		m.On("Utimens", v.fs, "/x", mock.Anything).Run(func(args mock.Arguments) {
			got = *(args.Get(2).(*[2]glfs.Timespec))
		}).Return(nil)

		before := time.Now().Unix()
		require.NoError(t, v.Chtimes("/x", time.Time{}, time.Time{}))
		after := time.Now().Unix()

		for _, ts := range got {
			assert.GreaterOrEqual(t, int64(ts.Sec), before)
			assert.LessOrEqual(t, int64(ts.Sec), after)
		}
	})
}
