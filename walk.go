package gfapi

import (
	"errors"
	"io"
	"io/fs"
	"path"

	"github.com/desertwitch/gfapi/glfs"
)

// Walk walks the tree rooted at root, calling fn for every file and
// directory in it, including root itself. Entries are visited in
// directory order, streamed from the directory rather than sorted.
//
// Symbolic links are reported but never followed: a link to a
// directory is visited as a single entry. The [fs.SkipDir] and
// [fs.SkipAll] returns of fn work as in [fs.WalkDir], and errors
// encountered while reading a directory are reported to fn for that
// directory.
func (v *Volume) Walk(root string, fn fs.WalkDirFunc) error {
	return v.walk(root, fn, false)
}

// WalkFollow is [Volume.Walk], but descends into symbolic links that
// resolve to directories, root included. Walking a tree that contains
// a link cycle does not terminate.
func (v *Volume) WalkFollow(root string, fn fs.WalkDirFunc) error {
	return v.walk(root, fn, true)
}

func (v *Volume) walk(root string, fn fs.WalkDirFunc, follow bool) error {
	var (
		st  *glfs.Stat
		err error
	)
	if follow {
		st, err = v.Stat(root)
	} else {
		st, err = v.Lstat(root)
	}

	var werr error
	if err != nil {
		werr = fn(root, nil, err)
	} else {
		d := &DirEntry{vol: v, name: path.Base(root), path: root, lstat: *st}
		werr = v.walkDir(root, d, st.IsDir(), fn, follow)
	}
	if errors.Is(werr, fs.SkipDir) || errors.Is(werr, fs.SkipAll) {
		return nil
	}
	return werr
}

// walkDir visits dir and, when it is a directory, its children. The
// caller resolves isDir so that the follow variant can treat a link to
// a directory as one.
func (v *Volume) walkDir(dir string, d fs.DirEntry, isDir bool, fn fs.WalkDirFunc, follow bool) error {
	if err := fn(dir, d, nil); err != nil || !isDir {
		if errors.Is(err, fs.SkipDir) && isDir {
			err = nil
		}
		return err
	}

	scan, err := v.Scandir(dir)
	if err != nil {
		err = fn(dir, d, err)
		if errors.Is(err, fs.SkipDir) {
			err = nil
		}
		return err
	}
	defer scan.Close()

	for {
		e, err := scan.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			err = fn(dir, d, err)
			if errors.Is(err, fs.SkipDir) {
				err = nil
			}
			return err
		}

		childDir := e.IsDir()
		if follow && !childDir && e.IsSymlink() {
			resolved, rerr := e.ResolvesToDir()
			if rerr != nil {
				rerr = fn(dir, d, rerr)
				if errors.Is(rerr, fs.SkipDir) {
					rerr = nil
				}
				return rerr
			}
			childDir = resolved
		}

		if err := v.walkDir(e.Path(), e, childDir, fn, follow); err != nil {
			if errors.Is(err, fs.SkipDir) {
				break
			}
			return err
		}
	}
	return nil
}
