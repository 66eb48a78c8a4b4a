// Package gfapi provides native access to GlusterFS volumes through
// libgfapi, without a FUSE mount. It exposes a [Volume] as a virtual
// mount carrying the familiar file and directory operations, [File]
// and [Dir] handles for open descriptors, and recursive helpers for
// creating, walking, copying and removing whole trees. Errors follow
// the os package conventions, wrapping the errno reported by the
// library into path errors.
//
// The raw foreign call surface lives in the glfs subpackage; this
// package is the layer applications are expected to use.
package gfapi
