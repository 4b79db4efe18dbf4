package report

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/jdefrancesco/fsident/internal/ddev"
	"github.com/jdefrancesco/fsident/internal/dfs"
	"github.com/jdefrancesco/fsident/internal/dident"
	"github.com/jdefrancesco/fsident/internal/dmnt"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestDescriptors(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	r.Descriptors("/pool/data/file",
		dfs.FilesystemDescriptor{Basetype: "zfs", Fsid: 0x3f2a1, Capacity: 2048, Free: 1024},
		dfs.PathDescriptor{FSType: "zfs", Device: ddev.Mkdev(0x97, 7)})

	want := []string{
		"path:        /pool/data/file",
		`f_basetype:  "zfs"`,
		"read only:   no (not set for zfs snapshots either)",
		"f_fsid:      3f2a1",
		"st_dev:      9700000007 (major 151, minor 7)",
		`st_fstype:   "zfs"`,
		"capacity:    2.00 KiB (1.00 KiB free)",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestReadOnly(t *testing.T) {
	r := New(&bytes.Buffer{}, true)

	tests := []struct {
		desc dfs.FilesystemDescriptor
		want string
	}{
		{dfs.FilesystemDescriptor{Basetype: "zfs", ReadOnly: true}, "yes"},
		{dfs.FilesystemDescriptor{Basetype: "ufs", ReadOnly: true}, "yes"},
		{dfs.FilesystemDescriptor{Basetype: "ufs"}, "no"},
		{dfs.FilesystemDescriptor{Basetype: "zfs"}, "no (not set for zfs snapshots either)"},
	}

	for _, tc := range tests {
		if got := r.readOnly(tc.desc); got != tc.want {
			t.Errorf("readOnly(%+v) = %q; want %q", tc.desc, got, tc.want)
		}
	}
}

func TestClassification(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	r.Classification(dident.Classification{Kind: dident.Live, Device: "pool/data"})
	r.Classification(dident.Classification{Kind: dident.Snapshot, Device: "pool/data"})

	want := "live file system: pool/data\n\nsnapshot of:      pool/data\n\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
}

func TestCandidates(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Candidates([]dmnt.MountRecord{{Special: "pool/data", Mountpoint: "/data", Major: 151, Minor: 3}})

	if got := buf.String(); got != "candidate:   pool/data on /data (major 151, minor 3)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestMounts(t *testing.T) {
	var buf bytes.Buffer
	records := []dmnt.MountRecord{
		{Special: "rpool/home", Mountpoint: "/home", FSType: "zfs", Options: dmnt.ParseOptions("rw,dev=25c0003"), Major: 151, Minor: 3},
		{Special: "swap", Mountpoint: "/tmp", FSType: "tmpfs"},
	}

	if err := New(&buf, true).Mounts(records); err != nil {
		t.Fatalf("Mounts returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Special", "rpool/home", "/home", "25c0003", "swap", "tmpfs"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
