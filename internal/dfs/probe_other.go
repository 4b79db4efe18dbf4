//go:build !illumos && !solaris

package dfs

func probeFilesystem(path string) (FilesystemDescriptor, error) {
	return FilesystemDescriptor{}, &ProbeError{Op: "statvfs", Path: path, Err: ErrUnsupported}
}

func probePath(path string) (PathDescriptor, error) {
	return PathDescriptor{}, &ProbeError{Op: "stat", Path: path, Err: ErrUnsupported}
}
