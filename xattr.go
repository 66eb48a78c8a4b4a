package gfapi

import (
	"bytes"
	"sort"
)

// Getxattr returns the value of the named extended attribute of the
// file at path.
func (v *Volume) Getxattr(path, attr string) ([]byte, error) {
	if err := v.ensureMounted(); err != nil {
		return nil, err
	}
	size, err := v.api.Getxattr(v.fs, path, attr, nil)
	if err != nil {
		return nil, pathError("getxattr", path, err)
	}
	if size == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, size)
	n, err := v.api.Getxattr(v.fs, path, attr, buf)
	if err != nil {
		return nil, pathError("getxattr", path, err)
	}
	return buf[:n], nil
}

// Setxattr sets the named extended attribute of the file at path.
// Flags may be 0, unix.XATTR_CREATE or unix.XATTR_REPLACE.
func (v *Volume) Setxattr(path, attr string, data []byte, flags int) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Setxattr(v.fs, path, attr, data, flags); err != nil {
		return pathError("setxattr", path, err)
	}
	return nil
}

// Removexattr removes the named extended attribute of the file at
// path.
func (v *Volume) Removexattr(path, attr string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if err := v.api.Removexattr(v.fs, path, attr); err != nil {
		return pathError("removexattr", path, err)
	}
	return nil
}

// Listxattr returns the names of all extended attributes of the file
// at path, sorted.
func (v *Volume) Listxattr(path string) ([]string, error) {
	if err := v.ensureMounted(); err != nil {
		return nil, err
	}
	size, err := v.api.Listxattr(v.fs, path, nil)
	if err != nil {
		return nil, pathError("listxattr", path, err)
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	n, err := v.api.Listxattr(v.fs, path, buf)
	if err != nil {
		return nil, pathError("listxattr", path, err)
	}
	return parseXattrList(buf[:n]), nil
}

// parseXattrList splits a NUL-separated attribute name list as
// returned by the list calls into sorted individual names.
func parseXattrList(buf []byte) []string {
	var attrs []string
	for _, name := range bytes.Split(buf, []byte{0}) {
		if len(name) > 0 {
			attrs = append(attrs, string(name))
		}
	}
	sort.Strings(attrs)
	return attrs
}
