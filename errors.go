package gfapi

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNotMounted is returned by every path operation invoked on a
	// volume that has not been mounted (or was unmounted again).
	ErrNotMounted = errors.New("volume is not mounted")

	// ErrInvalidConfig is returned by [NewWithConfig] when the
	// configuration cannot describe a mountable volume.
	ErrInvalidConfig = errors.New("invalid volume configuration")

	// ErrIsSymlink is returned by [Volume.Rmtree] when the root of the
	// tree to remove is a symbolic link.
	ErrIsSymlink = errors.New("path is a symbolic link")

	// ErrSameFile is returned by the copy functions when source and
	// destination resolve to the same file.
	ErrSameFile = errors.New("source and destination are the same file")
)

// MountError reports which step of the mount sequence failed. The
// wrapped error is the errno the library reported for that step.
type MountError struct {
	Step string
	Err  error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("failed to mount volume: %s: %v", e.Step, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// CopyFault records a single entry that [Volume.Copytree] failed to
// copy, and why.
type CopyFault struct {
	Src string
	Dst string
	Err error
}

// CopytreeError aggregates the per-entry failures of a [Volume.Copytree]
// run. The copy continues past individual failures, so one error can
// carry many faults.
type CopytreeError struct {
	Faults []CopyFault
}

func (e *CopytreeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "failed to copy %d tree entries", len(e.Faults))
	for _, f := range e.Faults {
		fmt.Fprintf(&sb, "\n\t%s -> %s: %v", f.Src, f.Dst, f.Err)
	}
	return sb.String()
}

func (e *CopytreeError) Unwrap() []error {
	errs := make([]error, len(e.Faults))
	for i, f := range e.Faults {
		errs[i] = f.Err
	}
	return errs
}

// pathError wraps an errno from the raw layer into an [*os.PathError],
// with the op named after the underlying libgfapi call.
func pathError(op, path string, err error) error {
	return &os.PathError{Op: op, Path: path, Err: err}
}

// linkError is the two-path counterpart of pathError.
func linkError(op, oldpath, newpath string, err error) error {
	return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: err}
}
