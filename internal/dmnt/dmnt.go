// Package dmnt loads the system mount table (mnttab(5)).
//
// The table is read once per run into a slice of MountRecord values which
// are never modified afterwards.
package dmnt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jdefrancesco/fsident/internal/ddev"
	"github.com/jdefrancesco/fsident/internal/dsklog"
)

// DefaultPath is where illumos exposes the mount table.
const DefaultPath = "/etc/mnttab"

// Number of tab separated fields in a mnttab line.
const nFields = 5

// MountRecord is one row of the mount table.
type MountRecord struct {
	Special    string
	Mountpoint string
	FSType     string
	Options    Options
	Time       string

	// Major and Minor are the components of the mounted device, the same
	// numbers getextmntent(3C) reports.
	Major uint32
	Minor uint32
}

// Dev returns the "dev" mount option, the compressed device id in hex.
func (r MountRecord) Dev() (string, bool) {
	return r.Options.Lookup("dev")
}

// OpenError reports that the mount table could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open mount table %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports a mount table entry that could not be decoded.
type ReadError struct {
	Path string
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("read mount table %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("read mount table %s: line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

var errFieldCount = errors.New("wrong number of fields")

// ReadAll loads every record from the mount table at path.
func ReadAll(path string) ([]MountRecord, error) {
	// #nosec G304
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			dsklog.Dlogger.Debugf("Error closing mount table %s: %v", path, err)
		}
	}()

	records, err := Decode(f)
	if err != nil {
		var rerr *ReadError
		if errors.As(err, &rerr) {
			rerr.Path = path
		}
		return nil, err
	}

	dsklog.Dlogger.Debugf("Loaded %d mount records from %s", len(records), path)
	return records, nil
}

// Decode reads mnttab formatted records from r until EOF. Nothing is
// returned if any entry fails to decode.
func Decode(r io.Reader) ([]MountRecord, error) {
	var records []MountRecord

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := parseRecord(line)
		if err != nil {
			return nil, &ReadError{Line: lineNo, Err: err}
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, &ReadError{Err: err}
	}

	return records, nil
}

func parseRecord(line string) (MountRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != nFields {
		return MountRecord{}, fmt.Errorf("%w: got %d, want %d", errFieldCount, len(fields), nFields)
	}

	rec := MountRecord{
		Special:    fields[0],
		Mountpoint: fields[1],
		FSType:     fields[2],
		Options:    ParseOptions(fields[3]),
		Time:       fields[4],
	}

	if dev, ok := rec.Dev(); ok {
		d, err := ddev.ParseCompressed(dev)
		if err != nil {
			return MountRecord{}, err
		}
		rec.Major, rec.Minor = d.Major(), d.Minor()
	}

	return rec, nil
}
