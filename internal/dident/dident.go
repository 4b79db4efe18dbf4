// Package dident works out whether a probed path sits on a live file
// system or on a snapshot of one.
//
// statvfs(2) reports the live file system even for a path inside a
// snapshot, so its fsid and the device major number select the mount
// record of the live dataset. The minor number from stat(2) is allocated
// per dataset or snapshot; when it differs from the record's minor the
// path is inside a snapshot of that dataset.
package dident

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jdefrancesco/fsident/internal/dfs"
	"github.com/jdefrancesco/fsident/internal/dmnt"
)

// Kind tags a Classification.
type Kind int

const (
	Live Kind = iota
	Snapshot
)

func (k Kind) String() string {
	switch k {
	case Live:
		return "live"
	case Snapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classification is the answer for one path. Device is the special field
// of the matching mount record.
type Classification struct {
	Kind   Kind
	Device string
	Record dmnt.MountRecord
}

func (c Classification) String() string {
	if c.Kind == Snapshot {
		return "snapshot of:      " + c.Device
	}
	return "live file system: " + c.Device
}

var (
	ErrInconsistentFsType = errors.New("inconsistent file system type")
	ErrNoMatch            = errors.New("no matching mount record")
	ErrAmbiguousMatch     = errors.New("more than one matching mount record")
)

// InconsistentFsTypeError means stat(2) and statvfs(2) disagree on the
// file system type.
type InconsistentFsTypeError struct {
	FSType   string
	Basetype string
}

func (e *InconsistentFsTypeError) Error() string {
	return fmt.Sprintf("st_fstype %q != f_basetype %q", e.FSType, e.Basetype)
}

func (e *InconsistentFsTypeError) Is(target error) bool { return target == ErrInconsistentFsType }

// NoMatchError means no mount record correlates with the probe.
type NoMatchError struct {
	Basetype string
	Major    uint32
	Fsid     string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no mount record with fstype %q, major %d and dev=%s", e.Basetype, e.Major, e.Fsid)
}

func (e *NoMatchError) Is(target error) bool { return target == ErrNoMatch }

// AmbiguousMatchError means several mount records correlate with the
// probe. A sane mount table never produces this.
type AmbiguousMatchError struct {
	Candidates []dmnt.MountRecord
}

func (e *AmbiguousMatchError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = fmt.Sprintf("%s on %s", c.Special, c.Mountpoint)
	}
	return fmt.Sprintf("%d matching mount records: %s", len(e.Candidates), strings.Join(names, ", "))
}

func (e *AmbiguousMatchError) Is(target error) bool { return target == ErrAmbiguousMatch }

// Matches returns every record with the probed file system type, device
// major number and a "dev" option equal to the hex fsid.
func Matches(fsDesc dfs.FilesystemDescriptor, pathDesc dfs.PathDescriptor, table []dmnt.MountRecord) []dmnt.MountRecord {
	major := pathDesc.Device.Major()
	fsid := fsDesc.FsidHex()

	var out []dmnt.MountRecord
	for _, rec := range table {
		if rec.FSType != fsDesc.Basetype || rec.Major != major {
			continue
		}
		if dev, ok := rec.Dev(); !ok || dev != fsid {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Resolve classifies a probed path against the mount table.
func Resolve(fsDesc dfs.FilesystemDescriptor, pathDesc dfs.PathDescriptor, table []dmnt.MountRecord) (Classification, error) {
	if pathDesc.FSType != fsDesc.Basetype {
		return Classification{}, &InconsistentFsTypeError{FSType: pathDesc.FSType, Basetype: fsDesc.Basetype}
	}

	matches := Matches(fsDesc, pathDesc, table)
	switch len(matches) {
	case 0:
		return Classification{}, &NoMatchError{
			Basetype: fsDesc.Basetype,
			Major:    pathDesc.Device.Major(),
			Fsid:     fsDesc.FsidHex(),
		}
	case 1:
	default:
		return Classification{}, &AmbiguousMatchError{Candidates: matches}
	}

	rec := matches[0]
	kind := Live
	if rec.Minor != pathDesc.Device.Minor() {
		kind = Snapshot
	}
	return Classification{Kind: kind, Device: rec.Special, Record: rec}, nil
}
