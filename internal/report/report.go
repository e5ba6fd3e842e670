package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dnspurge/dnspurge/domain/model"
)

// Reporter renders per-record progress lines and the final summary block.
type Reporter struct {
	out      io.Writer
	padWidth int
	verbose  bool
}

// New returns a Reporter writing to out. The pad width is derived from the
// longest selected record type so the arrow columns line up.
func New(out io.Writer, types []model.RecordType, verbose bool) *Reporter {
	pad := 0
	for _, t := range types {
		if len(t) > pad {
			pad = len(t)
		}
	}
	return &Reporter{out: out, padWidth: pad, verbose: verbose}
}

// Outcome prints a progress line for one record type. No-op unless verbose.
func (r *Reporter) Outcome(o model.PurgeOutcome) {
	if !r.verbose {
		return
	}
	icon := "✅"
	if !o.Success() {
		icon = "❌"
	}
	fmt.Fprintf(r.out, "[%s %s] %-*s → %s\n", icon, o.Status, r.padWidth, o.Type, o.Message)
}

// Summary prints the partitioned summary block for a finished run.
func (r *Reporter) Summary(rs *model.ResultSet) {
	names := make([]string, 0, len(rs.Successes))
	for _, o := range rs.Successes {
		names = append(names, string(o.Type))
	}
	joined := "None"
	if len(names) > 0 {
		joined = strings.Join(names, ", ")
	}
	fmt.Fprintf(r.out, "\n=== SUMMARY ===\n")
	fmt.Fprintf(r.out, "✅ Successes: %d → %s\n", len(rs.Successes), joined)
	fmt.Fprintf(r.out, "❌ Failures: %d\n", len(rs.Failures))
	for _, o := range rs.Failures {
		fmt.Fprintf(r.out, "  - %-*s → %s\n", r.padWidth, o.Type, o.Message)
	}
}
