package gfapi

import (
	"errors"
	"fmt"
	"io"
	"path"
)

// copyBufferSize is the chunk size of [Copyfileobj].
const copyBufferSize = 128 * 1024

// CopytreeIgnore names the entries [Volume.Copytree] skips. It is
// called once per copied directory with that directory's path and the
// names of its entries, and returns the subset of names to leave out.
type CopytreeIgnore func(dir string, names []string) []string

// Copyfileobj copies from src to dst in 128 KiB chunks until EOF,
// returning the number of bytes copied.
func Copyfileobj(dst io.Writer, src io.Reader) (int64, error) {
	return io.CopyBuffer(dst, src, make([]byte, copyBufferSize))
}

// Copyfile copies the contents of the file at src to dst, creating or
// truncating dst. Mode and times of dst are left alone; [Volume.Copy2]
// carries them over too. Copying a file onto itself fails with
// [ErrSameFile].
func (v *Volume) Copyfile(src, dst string) error {
	if same, err := v.SameFile(src, dst); err == nil && same {
		return fmt.Errorf("%w: %s and %s", ErrSameFile, src, dst)
	}

	fsrc, err := v.Open(src)
	if err != nil {
		return err
	}
	defer fsrc.Close()

	fdst, err := v.Create(dst)
	if err != nil {
		return err
	}
	if _, err := Copyfileobj(fdst, fsrc); err != nil {
		_ = fdst.Close()
		return err
	}
	return fdst.Close()
}

// Copymode carries the permission bits of src over to dst.
func (v *Volume) Copymode(src, dst string) error {
	st, err := v.Stat(src)
	if err != nil {
		return err
	}
	return v.Chmod(dst, st.Perm())
}

// Copystat carries the access and modification times and the
// permission bits of src over to dst, with nanosecond precision on the
// times.
func (v *Volume) Copystat(src, dst string) error {
	st, err := v.Stat(src)
	if err != nil {
		return err
	}
	if err := v.Chtimes(dst, st.Atime(), st.Mtime()); err != nil {
		return err
	}
	return v.Chmod(dst, st.Perm())
}

// Copy copies the file at src to dst like [Volume.Copyfile], also
// carrying over the permission bits. When dst is a directory the copy
// goes into it under the base name of src.
func (v *Volume) Copy(src, dst string) error {
	if v.IsDir(dst) {
		dst = path.Join(dst, path.Base(src))
	}
	if err := v.Copyfile(src, dst); err != nil {
		return err
	}
	return v.Copymode(src, dst)
}

// Copy2 is [Volume.Copy], but carries times over as well, like cp -p.
func (v *Volume) Copy2(src, dst string) error {
	if v.IsDir(dst) {
		dst = path.Join(dst, path.Base(src))
	}
	if err := v.Copyfile(src, dst); err != nil {
		return err
	}
	return v.Copystat(src, dst)
}

// Copytree recursively copies the directory tree rooted at src to dst,
// which must not exist yet and is created with any missing parents.
//
// Regular files are copied with [Volume.Copy2]. With symlinks set,
// symbolic links are recreated as links; otherwise the files they
// point to are copied. Entries named by the ignore callback are
// skipped; see [CopytreeIgnore].
//
// The copy continues past entries that fail. After the tree is done,
// the collected failures are returned as one [*CopytreeError]; errors
// preparing src or dst abort immediately instead.
func (v *Volume) Copytree(src, dst string, symlinks bool, ignore CopytreeIgnore) error {
	entries, err := v.ListdirWithStat(src)
	if err != nil {
		return err
	}

	ignored := make(map[string]bool)
	if ignore != nil {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		for _, name := range ignore(src, names) {
			ignored[name] = true
		}
	}

	if err := v.Makedirs(dst, 0o777); err != nil {
		return err
	}

	var faults []CopyFault
	for _, e := range entries {
		if ignored[e.Name()] {
			continue
		}
		srcpath := path.Join(src, e.Name())
		dstpath := path.Join(dst, e.Name())
		if err := v.copytreeEntry(e, srcpath, dstpath, symlinks, ignore); err != nil {
			var sub *CopytreeError
			if errors.As(err, &sub) {
				faults = append(faults, sub.Faults...)
			} else {
				faults = append(faults, CopyFault{Src: srcpath, Dst: dstpath, Err: err})
			}
		}
	}
	if err := v.Copystat(src, dst); err != nil {
		faults = append(faults, CopyFault{Src: src, Dst: dst, Err: err})
	}

	if len(faults) > 0 {
		return &CopytreeError{Faults: faults}
	}
	return nil
}

// copytreeEntry copies a single directory entry according to the
// symlink policy, recursing for directories.
func (v *Volume) copytreeEntry(e *DirEntry, srcpath, dstpath string, symlinks bool, ignore CopytreeIgnore) error {
	switch {
	case symlinks && e.IsSymlink():
		target, err := v.Readlink(srcpath)
		if err != nil {
			return err
		}
		return v.Symlink(target, dstpath)
	case v.copytreeIsDir(e, srcpath, !symlinks):
		return v.Copytree(srcpath, dstpath, symlinks, ignore)
	default:
		return v.Copy2(srcpath, dstpath)
	}
}

// copytreeIsDir decides whether an entry is copied as a directory. A
// symbolic link counts when follow is set and it resolves to one.
func (v *Volume) copytreeIsDir(e *DirEntry, srcpath string, follow bool) bool {
	if e.IsDir() {
		return true
	}
	if follow && e.IsSymlink() {
		return v.IsDir(srcpath)
	}
	return false
}
