package gfapi

import (
	"testing"

	"github.com/desertwitch/gfapi/glfs"
	"github.com/stretchr/testify/mock"
)

// mockAPI is a hand-rolled testify mock of apiProvider. Out-parameters
// are filled from a test through (*mock.Call).Run.
type mockAPI struct {
	mock.Mock
}

// newMockAPI returns a mockAPI whose expectations are asserted when
// the test finishes.
func newMockAPI(t *testing.T) *mockAPI {
	t.Helper()
	m := &mockAPI{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockAPI) New(volname string) (*glfs.Fs, error) {
	args := m.Called(volname)
	fs, _ := args.Get(0).(*glfs.Fs)
	return fs, args.Error(1)
}

func (m *mockAPI) SetVolfileServer(fs *glfs.Fs, proto, host string, port int) error {
	return m.Called(fs, proto, host, port).Error(0)
}

func (m *mockAPI) SetLogging(fs *glfs.Fs, logfile string, level int) error {
	return m.Called(fs, logfile, level).Error(0)
}

func (m *mockAPI) Init(fs *glfs.Fs) error {
	return m.Called(fs).Error(0)
}

func (m *mockAPI) Fini(fs *glfs.Fs) error {
	return m.Called(fs).Error(0)
}

func (m *mockAPI) Stat(fs *glfs.Fs, path string, st *glfs.Stat) error {
	return m.Called(fs, path, st).Error(0)
}

func (m *mockAPI) Lstat(fs *glfs.Fs, path string, st *glfs.Stat) error {
	return m.Called(fs, path, st).Error(0)
}

func (m *mockAPI) Statvfs(fs *glfs.Fs, path string, st *glfs.Statvfs) error {
	return m.Called(fs, path, st).Error(0)
}

func (m *mockAPI) Chmod(fs *glfs.Fs, path string, mode uint32) error {
	return m.Called(fs, path, mode).Error(0)
}

func (m *mockAPI) Chown(fs *glfs.Fs, path string, uid, gid int) error {
	return m.Called(fs, path, uid, gid).Error(0)
}

func (m *mockAPI) Lchown(fs *glfs.Fs, path string, uid, gid int) error {
	return m.Called(fs, path, uid, gid).Error(0)
}

func (m *mockAPI) Utimens(fs *glfs.Fs, path string, times *[2]glfs.Timespec) error {
	return m.Called(fs, path, times).Error(0)
}

func (m *mockAPI) Access(fs *glfs.Fs, path string, mode int) error {
	return m.Called(fs, path, mode).Error(0)
}

func (m *mockAPI) Readlink(fs *glfs.Fs, path string, buf []byte) (int, error) {
	args := m.Called(fs, path, buf)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Symlink(fs *glfs.Fs, target, newpath string) error {
	return m.Called(fs, target, newpath).Error(0)
}

func (m *mockAPI) Link(fs *glfs.Fs, oldpath, newpath string) error {
	return m.Called(fs, oldpath, newpath).Error(0)
}

func (m *mockAPI) Rename(fs *glfs.Fs, oldpath, newpath string) error {
	return m.Called(fs, oldpath, newpath).Error(0)
}

func (m *mockAPI) Unlink(fs *glfs.Fs, path string) error {
	return m.Called(fs, path).Error(0)
}

func (m *mockAPI) Mkdir(fs *glfs.Fs, path string, mode uint32) error {
	return m.Called(fs, path, mode).Error(0)
}

func (m *mockAPI) Rmdir(fs *glfs.Fs, path string) error {
	return m.Called(fs, path).Error(0)
}

func (m *mockAPI) Mknod(fs *glfs.Fs, path string, mode uint32, dev uint64) error {
	return m.Called(fs, path, mode, dev).Error(0)
}

func (m *mockAPI) Chdir(fs *glfs.Fs, path string) error {
	return m.Called(fs, path).Error(0)
}

func (m *mockAPI) Getcwd(fs *glfs.Fs, buf []byte) error {
	return m.Called(fs, buf).Error(0)
}

func (m *mockAPI) Truncate(fs *glfs.Fs, path string, size int64) error {
	return m.Called(fs, path, size).Error(0)
}

func (m *mockAPI) GetVolumeID(fs *glfs.Fs, buf []byte) (int, error) {
	args := m.Called(fs, buf)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Getxattr(fs *glfs.Fs, path, attr string, dest []byte) (int, error) {
	args := m.Called(fs, path, attr, dest)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Setxattr(fs *glfs.Fs, path, attr string, data []byte, flags int) error {
	return m.Called(fs, path, attr, data, flags).Error(0)
}

func (m *mockAPI) Removexattr(fs *glfs.Fs, path, attr string) error {
	return m.Called(fs, path, attr).Error(0)
}

func (m *mockAPI) Listxattr(fs *glfs.Fs, path string, dest []byte) (int, error) {
	args := m.Called(fs, path, dest)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Open(fs *glfs.Fs, path string, flags int) (*glfs.Fd, error) {
	args := m.Called(fs, path, flags)
	fd, _ := args.Get(0).(*glfs.Fd)
	return fd, args.Error(1)
}

func (m *mockAPI) Creat(fs *glfs.Fs, path string, flags int, mode uint32) (*glfs.Fd, error) {
	args := m.Called(fs, path, flags, mode)
	fd, _ := args.Get(0).(*glfs.Fd)
	return fd, args.Error(1)
}

func (m *mockAPI) Opendir(fs *glfs.Fs, path string) (*glfs.Fd, error) {
	args := m.Called(fs, path)
	fd, _ := args.Get(0).(*glfs.Fd)
	return fd, args.Error(1)
}

func (m *mockAPI) Close(fd *glfs.Fd) error {
	return m.Called(fd).Error(0)
}

func (m *mockAPI) Read(fd *glfs.Fd, b []byte) (int, error) {
	args := m.Called(fd, b)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Write(fd *glfs.Fd, b []byte) (int, error) {
	args := m.Called(fd, b)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Pread(fd *glfs.Fd, b []byte, off int64) (int, error) {
	args := m.Called(fd, b, off)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Pwrite(fd *glfs.Fd, b []byte, off int64) (int, error) {
	args := m.Called(fd, b, off)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Lseek(fd *glfs.Fd, off int64, whence int) (int64, error) {
	args := m.Called(fd, off, whence)
	pos, _ := args.Get(0).(int64)
	return pos, args.Error(1)
}

func (m *mockAPI) Ftruncate(fd *glfs.Fd, size int64) error {
	return m.Called(fd, size).Error(0)
}

func (m *mockAPI) Fsync(fd *glfs.Fd) error {
	return m.Called(fd).Error(0)
}

func (m *mockAPI) Fdatasync(fd *glfs.Fd) error {
	return m.Called(fd).Error(0)
}

func (m *mockAPI) Fstat(fd *glfs.Fd, st *glfs.Stat) error {
	return m.Called(fd, st).Error(0)
}

func (m *mockAPI) Fchmod(fd *glfs.Fd, mode uint32) error {
	return m.Called(fd, mode).Error(0)
}

func (m *mockAPI) Fchown(fd *glfs.Fd, uid, gid int) error {
	return m.Called(fd, uid, gid).Error(0)
}

func (m *mockAPI) Futimens(fd *glfs.Fd, times *[2]glfs.Timespec) error {
	return m.Called(fd, times).Error(0)
}

func (m *mockAPI) Dup(fd *glfs.Fd) (*glfs.Fd, error) {
	args := m.Called(fd)
	dup, _ := args.Get(0).(*glfs.Fd)
	return dup, args.Error(1)
}

func (m *mockAPI) Fallocate(fd *glfs.Fd, flags int, off, n int64) error {
	return m.Called(fd, flags, off, n).Error(0)
}

func (m *mockAPI) Discard(fd *glfs.Fd, off, n int64) error {
	return m.Called(fd, off, n).Error(0)
}

func (m *mockAPI) Zerofill(fd *glfs.Fd, off, n int64) error {
	return m.Called(fd, off, n).Error(0)
}

func (m *mockAPI) Fgetxattr(fd *glfs.Fd, attr string, dest []byte) (int, error) {
	args := m.Called(fd, attr, dest)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) Fsetxattr(fd *glfs.Fd, attr string, data []byte, flags int) error {
	return m.Called(fd, attr, data, flags).Error(0)
}

func (m *mockAPI) Fremovexattr(fd *glfs.Fd, attr string) error {
	return m.Called(fd, attr).Error(0)
}

func (m *mockAPI) Flistxattr(fd *glfs.Fd, dest []byte) (int, error) {
	args := m.Called(fd, dest)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) ReaddirR(fd *glfs.Fd, ent *glfs.Dirent) (bool, error) {
	args := m.Called(fd, ent)
	return args.Bool(0), args.Error(1)
}

func (m *mockAPI) ReaddirplusR(fd *glfs.Fd, st *glfs.Stat, ent *glfs.Dirent) (bool, error) {
	args := m.Called(fd, st, ent)
	return args.Bool(0), args.Error(1)
}

func (m *mockAPI) Closedir(fd *glfs.Fd) error {
	return m.Called(fd).Error(0)
}

func (m *mockAPI) SetFsUID(uid int) error {
	return m.Called(uid).Error(0)
}

func (m *mockAPI) SetFsGID(gid int) error {
	return m.Called(gid).Error(0)
}

func (m *mockAPI) Capabilities() glfs.Capabilities {
	args := m.Called()
	caps, _ := args.Get(0).(glfs.Capabilities)
	return caps
}

var _ apiProvider = (*mockAPI)(nil)

// mountedVolume returns a Volume in the mounted state, wired to the
// given mock.
func mountedVolume(m *mockAPI) *Volume {
	return &Volume{
		api: m,
		cfg: Config{
			Host:     "gluster.test",
			Volname:  "testvol",
			Protocol: "tcp",
			Port:     DefaultPort,
			LogFile:  DefaultLogFile,
			LogLevel: LogInfo,
		},
		fs:      &glfs.Fs{},
		mounted: true,
	}
}

// unmountedVolume returns a Volume that was never mounted, wired to
// the given mock.
func unmountedVolume(m *mockAPI) *Volume {
	v := mountedVolume(m)
	v.fs = nil
	v.mounted = false
	return v
}
