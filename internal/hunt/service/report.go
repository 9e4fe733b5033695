package service

import (
	"fmt"
	"io"

	"primehunt/internal/common/console"
	"primehunt/internal/hunt/model"
	appErr "primehunt/pkg/errors"

	"github.com/fatih/color"
)

const closingLine = "\"Everybody good? Plenty of slaves for my robot colony?\" - TARS (25% humor)"

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(c *color.Color, format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	if c == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, args...)
		return
	}
	_, ew.err = c.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) result() error {
	if ew.err != nil {
		return appErr.Wrap(ew.err, appErr.OutputWriteFailed)
	}
	return nil
}

// WriteBanner prints the greeting shown before the prompts.
func WriteBanner(w io.Writer, p console.Palette) error {
	ew := &errWriter{w: w}
	ew.printf(p.Heading, "╔═══════════════════════════════════════╗\n")
	ew.printf(p.Heading, "║     PRIME NUMBER HUNTER v0.1.0        ║\n")
	ew.printf(p.Heading, "║  \"Efficiency: not just for robots\"   ║\n")
	ew.printf(p.Heading, "╚═══════════════════════════════════════╝\n\n")
	return ew.result()
}

// WriteAnnouncement prints the parameters about to be searched.
func WriteAnnouncement(w io.Writer, params model.SearchParameters) error {
	ew := &errWriter{w: w}
	minutes := params.Timeout.Minutes()
	ew.printf(nil, "\n🔍 Searching for primes up to %d...\n", params.UpperBound)
	ew.printf(nil, "⏰ Timeout set to %.2f minutes (%.1f seconds)\n\n", minutes, params.Timeout.Seconds())
	return ew.result()
}

// WriteReport prints the final report. The last number checked and the
// coverage only appear for timed-out searches.
func WriteReport(w io.Writer, p console.Palette, report model.Report) error {
	ew := &errWriter{w: w}
	out := report.Outcome

	ew.printf(p.Heading, "\n╔═══════════════════════════════════════╗\n")
	ew.printf(p.Heading, "║            MISSION REPORT             ║\n")
	ew.printf(p.Heading, "╚═══════════════════════════════════════╝\n")
	ew.printf(nil, "📊 Search Range:        1 to %d\n", report.Params.UpperBound)
	ew.printf(nil, "🎯 Primes Found:        %d\n", out.PrimeCount)
	ew.printf(nil, "👑 Highest Prime:       %d\n", out.HighestPrime)
	ew.printf(nil, "⏱️  Execution Time:      %.3f seconds\n", out.Elapsed.Seconds())
	ew.printf(nil, "⏰ Timeout Limit:       %.2f minutes\n", report.Params.Timeout.Minutes())

	if out.TimedOut {
		ew.printf(p.Warning, "\n⚠️  TIMEOUT: Search terminated before completion.\n")
		ew.printf(nil, "   Last number checked: %d\n", report.LastExamined)
		ew.printf(nil, "   Coverage: %.2f%%\n", report.Coverage())
	} else {
		ew.printf(p.Success, "\n✅ Search completed successfully!\n")
	}

	if report.RunID != "" {
		ew.printf(nil, "🔖 Run ID: %s\n", report.RunID)
	}
	ew.printf(nil, "\n%s\n", closingLine)
	return ew.result()
}
