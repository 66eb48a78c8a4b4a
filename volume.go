package gfapi

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/desertwitch/gfapi/glfs"
	"github.com/google/uuid"
)

// LogLevel is the verbosity of the gluster client log, mirroring the
// GF_LOG_* levels of the library.
type LogLevel int

const (
	LogNone LogLevel = iota
	LogEmerg
	LogAlert
	LogCritical
	LogError
	LogWarning
	LogNotice
	LogInfo
	LogDebug
	LogTrace
)

const (
	// DefaultPort is the standard glusterd volfile server port.
	DefaultPort = 24007

	// DefaultLogFile discards the gluster client log.
	DefaultLogFile = "/dev/null"
)

// Config describes how a [Volume] reaches its volfile server and where
// the gluster client log goes.
type Config struct {
	// Host is the volfile server to fetch the volume description from.
	// For the "unix" protocol it is the path of the glusterd socket.
	Host string

	// Volname is the name of the gluster volume to mount.
	Volname string

	// Protocol is the volfile server transport: "tcp", "rdma" or
	// "unix". An empty value selects "tcp".
	Protocol string

	// Port is the volfile server port. Zero selects [DefaultPort].
	Port int

	// LogFile is the gluster client log destination. Empty selects
	// [DefaultLogFile].
	LogFile string

	// LogLevel is the gluster client log verbosity. The zero value
	// selects [LogInfo]; use [Volume.DisableLogging] to silence the
	// client entirely.
	LogLevel LogLevel
}

// Volume is a virtual mount of a gluster volume, the entry point for
// every path operation of this package.
//
// A Volume starts out unmounted; [Volume.Mount] establishes the
// connection and [Volume.Unmount] releases it. A Volume must not be
// used from multiple goroutines without external locking.
type Volume struct {
	api     apiProvider
	cfg     Config
	fs      *glfs.Fs
	mounted bool
	volID   uuid.UUID
}

// New returns an unmounted [Volume] for the named volume on the given
// host, with default settings for everything else.
func New(host, volname string) (*Volume, error) {
	return NewWithConfig(Config{Host: host, Volname: volname})
}

// NewWithConfig returns an unmounted [Volume] for the given
// configuration, after filling in defaults and validating it.
func NewWithConfig(cfg Config) (*Volume, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: no host given", ErrInvalidConfig)
	}
	if cfg.Volname == "" {
		return nil, fmt.Errorf("%w: no volume name given", ErrInvalidConfig)
	}
	if cfg.Protocol == "" {
		cfg.Protocol = "tcp"
	}
	switch cfg.Protocol {
	case "tcp", "rdma", "unix":
	default:
		return nil, fmt.Errorf("%w: unsupported protocol %q", ErrInvalidConfig, cfg.Protocol)
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, cfg.Port)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	if cfg.LogLevel == LogNone {
		cfg.LogLevel = LogInfo
	}
	if cfg.LogLevel < LogNone || cfg.LogLevel > LogTrace {
		return nil, fmt.Errorf("%w: unknown log level %d", ErrInvalidConfig, cfg.LogLevel)
	}

	return &Volume{api: glfs.API{}, cfg: cfg}, nil
}

// Mount connects the volume: it creates the library handle, points it
// at the volfile server, applies the logging settings and initializes
// the mount. Mounting an already mounted volume is a no-op.
//
// On failure the partially built handle is released again, the volume
// stays unmounted and the returned [*MountError] names the step that
// failed.
func (v *Volume) Mount() error {
	if v.mounted {
		return nil
	}

	fs, err := v.api.New(v.cfg.Volname)
	if err != nil {
		return &MountError{Step: "create handle", Err: err}
	}
	if err := v.api.SetVolfileServer(fs, v.cfg.Protocol, v.cfg.Host, v.cfg.Port); err != nil {
		_ = v.api.Fini(fs)
		return &MountError{Step: "set volfile server", Err: err}
	}
	if err := v.api.SetLogging(fs, v.cfg.LogFile, int(v.cfg.LogLevel)); err != nil {
		_ = v.api.Fini(fs)
		return &MountError{Step: "set logging", Err: err}
	}
	if err := v.api.Init(fs); err != nil {
		_ = v.api.Fini(fs)
		return &MountError{Step: "initialize", Err: err}
	}

	v.fs = fs
	v.mounted = true
	runtime.SetFinalizer(v, (*Volume).finalize)

	slog.Debug("mounted gluster volume",
		"volume", v.cfg.Volname,
		"host", v.cfg.Host,
		"transport", v.cfg.Protocol,
	)

	return nil
}

// Unmount releases the virtual mount. Unmounting an unmounted volume
// is a no-op.
func (v *Volume) Unmount() error {
	if !v.mounted {
		return nil
	}
	if err := v.api.Fini(v.fs); err != nil {
		return fmt.Errorf("failed to unmount volume: %w", err)
	}
	runtime.SetFinalizer(v, nil)
	v.fs = nil
	v.mounted = false

	slog.Debug("unmounted gluster volume", "volume", v.cfg.Volname)

	return nil
}

// Mounted reports whether the volume is currently mounted.
func (v *Volume) Mounted() bool {
	return v.mounted
}

// finalize releases a mount whose Volume became garbage without an
// [Volume.Unmount] call.
func (v *Volume) finalize() {
	if !v.mounted {
		return
	}
	slog.Debug("releasing leaked gluster volume handle", "volume", v.cfg.Volname)
	_ = v.api.Fini(v.fs)
	v.fs = nil
	v.mounted = false
}

// SetLogging redirects the gluster client log. It applies immediately
// on a mounted volume and is otherwise remembered for the next
// [Volume.Mount].
func (v *Volume) SetLogging(logFile string, level LogLevel) error {
	if v.mounted {
		if err := v.api.SetLogging(v.fs, logFile, int(level)); err != nil {
			return fmt.Errorf("failed to set logging: %w", err)
		}
	}
	v.cfg.LogFile = logFile
	v.cfg.LogLevel = level

	return nil
}

// DisableLogging discards the gluster client log by redirecting it to
// [DefaultLogFile].
func (v *Volume) DisableLogging() error {
	return v.SetLogging(DefaultLogFile, v.cfg.LogLevel)
}

// ID returns the UUID of the volume. The value is fetched once and
// cached for the lifetime of the Volume.
//
// Requires a gluster library providing glfs_get_volumeid; see
// [Volume.Capabilities].
func (v *Volume) ID() (uuid.UUID, error) {
	if err := v.ensureMounted(); err != nil {
		return uuid.Nil, err
	}
	if v.volID != uuid.Nil {
		return v.volID, nil
	}

	buf := make([]byte, 16)
	if _, err := v.api.GetVolumeID(v.fs, buf); err != nil {
		return uuid.Nil, fmt.Errorf("failed to get volume id: %w", err)
	}
	id, err := uuid.FromBytes(buf)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse volume id: %w", err)
	}
	v.volID = id

	return id, nil
}

// Capabilities reports which optional library calls the loaded
// libgfapi provides.
func (v *Volume) Capabilities() glfs.Capabilities {
	return v.api.Capabilities()
}

// SetFsUID sets the filesystem UID (as with setfsuid) used for
// permission checking on all subsequent operations of the process.
func (v *Volume) SetFsUID(uid int) error {
	if err := v.api.SetFsUID(uid); err != nil {
		return fmt.Errorf("failed to set fsuid: %w", err)
	}
	return nil
}

// SetFsGID sets the filesystem GID used for permission checking on all
// subsequent operations of the process.
func (v *Volume) SetFsGID(gid int) error {
	if err := v.api.SetFsGID(gid); err != nil {
		return fmt.Errorf("failed to set fsgid: %w", err)
	}
	return nil
}

// ensureMounted guards every path operation against use of an
// unmounted volume.
func (v *Volume) ensureMounted() error {
	if !v.mounted {
		return ErrNotMounted
	}
	return nil
}
