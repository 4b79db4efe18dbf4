// Utility functions and types for querying what file system a path
// lives on.
package dfs

import (
	"errors"
	"fmt"

	"github.com/jdefrancesco/fsident/internal/ddev"
)

// ErrUnsupported is returned by the probe on platforms without a backend.
var ErrUnsupported = errors.New("file system probing not supported on this OS")

// FilesystemDescriptor holds what statvfs(2) says about the file system
// containing a path. For a path inside a snapshot this still describes
// the live file system the snapshot was taken from.
type FilesystemDescriptor struct {
	Basetype string
	// Fsid is the compressed device id. It is only meaningful for the
	// current import of the pool.
	Fsid uint64
	// ReadOnly mirrors ST_RDONLY. ZFS snapshots do not set it.
	ReadOnly bool

	Capacity uint64
	Free     uint64
}

// FsidHex renders Fsid the way the "dev" mount option does.
func (f FilesystemDescriptor) FsidHex() string {
	return fmt.Sprintf("%x", f.Fsid)
}

// PathDescriptor holds what stat(2) says about the vnode a path names.
type PathDescriptor struct {
	Device ddev.Dev
	FSType string
}

// ProbeError records a failed probe and the path it was made on.
type ProbeError struct {
	Op   string
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s(%q) failed: %v", e.Op, e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// Prober obtains both descriptors for a path.
type Prober interface {
	Probe(path string) (FilesystemDescriptor, PathDescriptor, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(path string) (FilesystemDescriptor, PathDescriptor, error)

func (f ProberFunc) Probe(path string) (FilesystemDescriptor, PathDescriptor, error) {
	return f(path)
}

// SysProber asks the operating system.
type SysProber struct{}

// NewProber returns the prober for the running platform.
func NewProber() SysProber { return SysProber{} }

// Probe runs the file system level probe followed by the path level one.
func (SysProber) Probe(path string) (FilesystemDescriptor, PathDescriptor, error) {
	fsDesc, err := probeFilesystem(path)
	if err != nil {
		return FilesystemDescriptor{}, PathDescriptor{}, err
	}

	pathDesc, err := probePath(path)
	if err != nil {
		return FilesystemDescriptor{}, PathDescriptor{}, err
	}

	return fsDesc, pathDesc, nil
}

// extract name from fixed-size C array
func cString(arr []int8) string {
	buf := make([]byte, 0, len(arr))
	for _, c := range arr {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}
