package gfapi

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/sys/unix"
)

// RmtreeErrorFunc decides how [Volume.Rmtree] continues after a failed
// operation. It receives the name of the failed call, the affected
// path and the error. Returning nil skips the entry and carries on;
// returning an error aborts the removal with that error.
type RmtreeErrorFunc func(op, path string, err error) error

// Makedirs creates the directory at dir together with any missing
// parents, all with the given permission bits. It fails with unix.EEXIST
// if dir itself already exists; parents that exist are fine.
func (v *Volume) Makedirs(dir string, mode uint32) error {
	head, tail := path.Split(dir)
	if tail == "" {
		head, tail = path.Split(strings.TrimSuffix(head, "/"))
	}
	head = strings.TrimSuffix(head, "/")
	if head != "" && tail != "" && !v.Exists(head) {
		if err := v.Makedirs(head, mode); err != nil && !errors.Is(err, unix.EEXIST) {
			return err
		}
		if tail == "." {
			return nil
		}
	}
	return v.Mkdir(dir, mode)
}

// Rmtree removes the directory tree rooted at dir. It refuses to
// operate on a symbolic link and returns [ErrIsSymlink] instead.
//
// With a nil onError the first failed operation aborts the removal and
// its error is returned. A non-nil onError is consulted for every
// failure instead; see [RmtreeErrorFunc]. Passing a handler that
// always returns nil removes as much of the tree as possible,
// ignoring all errors.
func (v *Volume) Rmtree(dir string, onError RmtreeErrorFunc) error {
	if v.IsLink(dir) {
		return fmt.Errorf("%w: %s", ErrIsSymlink, dir)
	}
	if onError == nil {
		onError = func(op, path string, err error) error { return err }
	}
	return v.rmtree(dir, onError)
}

func (v *Volume) rmtree(dir string, onError RmtreeErrorFunc) error {
	scan, err := v.Scandir(dir)
	if err != nil {
		if cbErr := onError("scandir", dir, err); cbErr != nil {
			return cbErr
		}
	} else {
		defer scan.Close()
		for {
			e, err := scan.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				if cbErr := onError("scandir", dir, err); cbErr != nil {
					return cbErr
				}
				break
			}
			if e.IsDir() {
				// Propagation happens only when the handler aborted,
				// so the error passes through unconsulted.
				if err := v.rmtree(e.Path(), onError); err != nil {
					return err
				}
			} else if err := v.Unlink(e.Path()); err != nil {
				if cbErr := onError("unlink", e.Path(), err); cbErr != nil {
					return cbErr
				}
			}
		}
	}
	if err := v.Rmdir(dir); err != nil {
		if cbErr := onError("rmdir", dir, err); cbErr != nil {
			return cbErr
		}
	}
	return nil
}
