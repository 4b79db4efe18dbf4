//go:build illumos || solaris

package dfs

import (
	"github.com/jdefrancesco/fsident/internal/ddev"

	"golang.org/x/sys/unix"
)

// ST_RDONLY from <sys/statvfs.h>.
const stRdonly = 0x1

func probeFilesystem(path string) (FilesystemDescriptor, error) {
	var vfs unix.Statvfs_t
	if err := unix.Statvfs(path, &vfs); err != nil {
		return FilesystemDescriptor{}, &ProbeError{Op: "statvfs", Path: path, Err: err}
	}

	return FilesystemDescriptor{
		Basetype: cString(vfs.Basetype[:]),
		Fsid:     vfs.Fsid,
		ReadOnly: vfs.Flag&stRdonly != 0,
		Capacity: vfs.Blocks * vfs.Frsize,
		Free:     vfs.Bavail * vfs.Frsize,
	}, nil
}

func probePath(path string) (PathDescriptor, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return PathDescriptor{}, &ProbeError{Op: "stat", Path: path, Err: err}
	}

	return PathDescriptor{
		Device: ddev.Dev(st.Dev),
		FSType: cString(st.Fstype[:]),
	}, nil
}
