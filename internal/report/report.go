// Package report renders per-path diagnostics.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/jdefrancesco/fsident/internal/dfs"
	"github.com/jdefrancesco/fsident/internal/dident"
	"github.com/jdefrancesco/fsident/internal/dmnt"
	"github.com/jdefrancesco/fsident/pkg/utils"
)

// Width of the label column.
const labelWidth = 12

// Reporter writes one block per path to w.
type Reporter struct {
	w io.Writer

	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	liveStyle     lipgloss.Style
	snapshotStyle lipgloss.Style
	noteStyle     lipgloss.Style
}

// New returns a Reporter writing to w. Styling is dropped when noColor is
// set or w is not a terminal.
func New(w io.Writer, noColor bool) *Reporter {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Reporter{
		w:             w,
		labelStyle:    r.NewStyle().Foreground(lipgloss.Color("241")),
		valueStyle:    r.NewStyle().Foreground(lipgloss.Color("252")),
		liveStyle:     r.NewStyle().Foreground(lipgloss.Color("35")).Bold(true),
		snapshotStyle: r.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		noteStyle:     r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

func (r *Reporter) field(label, value string) {
	fmt.Fprintf(r.w, "%s %s\n",
		r.labelStyle.Render(runewidth.FillRight(label+":", labelWidth)),
		r.valueStyle.Render(value))
}

// Descriptors prints what the probes returned for path.
func (r *Reporter) Descriptors(path string, fsDesc dfs.FilesystemDescriptor, pathDesc dfs.PathDescriptor) {
	r.field("path", path)
	r.field("f_basetype", strconv.Quote(fsDesc.Basetype))
	r.field("read only", r.readOnly(fsDesc))
	r.field("f_fsid", fsDesc.FsidHex())
	r.field("st_dev", fmt.Sprintf("%s (major %d, minor %d)",
		pathDesc.Device, pathDesc.Device.Major(), pathDesc.Device.Minor()))
	r.field("st_fstype", strconv.Quote(pathDesc.FSType))
	if fsDesc.Capacity > 0 {
		r.field("capacity", fmt.Sprintf("%s (%s free)",
			utils.DisplaySize(fsDesc.Capacity), utils.DisplaySize(fsDesc.Free)))
	}
}

// readOnly renders ST_RDONLY as reported. ZFS snapshots never carry the
// flag so a clear flag on zfs says nothing about the path.
func (r *Reporter) readOnly(fsDesc dfs.FilesystemDescriptor) string {
	if fsDesc.ReadOnly {
		return "yes"
	}
	if fsDesc.Basetype == "zfs" {
		return "no " + r.noteStyle.Render("(not set for zfs snapshots either)")
	}
	return "no"
}

// Candidates lists the mount records that matched, for verbose output.
func (r *Reporter) Candidates(records []dmnt.MountRecord) {
	for _, rec := range records {
		r.field("candidate", fmt.Sprintf("%s on %s (major %d, minor %d)",
			rec.Special, rec.Mountpoint, rec.Major, rec.Minor))
	}
}

// Classification prints the verdict and closes the block.
func (r *Reporter) Classification(c dident.Classification) {
	style := r.liveStyle
	if c.Kind == dident.Snapshot {
		style = r.snapshotStyle
	}
	fmt.Fprintln(r.w, style.Render(c.String()))
	fmt.Fprintln(r.w)
}

// Mounts prints the mount table.
func (r *Reporter) Mounts(records []dmnt.MountRecord) error {
	data := pterm.TableData{{"Special", "Mounted On", "Type", "Major", "Minor", "Dev"}}
	for _, rec := range records {
		dev, _ := rec.Dev()
		data = append(data, []string{
			rec.Special,
			rec.Mountpoint,
			rec.FSType,
			strconv.FormatUint(uint64(rec.Major), 10),
			strconv.FormatUint(uint64(rec.Minor), 10),
			dev,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(r.w).Render()
}
