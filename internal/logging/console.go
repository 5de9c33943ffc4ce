// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Cursor control sequences for the in-place redraw protocol.
const (
	ansiCursorUp   = "\x1b[1A"
	ansiClearLine  = "\x1b[2K"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// fallbackWidth is used when the terminal width cannot be probed.
const fallbackWidth = 80

// Console renders leveled lines to a terminal stream and owns the redraw
// state: how many physical rows the previously written line occupied.
// The state is explicit per Console rather than package-global, and a
// mutex serializes concurrent callers.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	// width probes the terminal width; injectable for tests.
	width func() int

	callerOnce sync.Once
	caller     string

	// lastLineCount is the number of terminal rows the most recently
	// written line consumed. awaitingRedraw distinguishes the Fresh state
	// (nothing written yet) from AwaitingRedraw.
	lastLineCount  int
	awaitingRedraw bool
}

// NewConsole creates a console renderer writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, width: probeWidth}
}

// probeWidth returns the current terminal width, degrading to
// fallbackWidth when stdout is not a terminal or the probe fails.
func probeWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// Caller returns the cached identity of the invoking process, resolved
// once and reused for every subsequent line.
func (c *Console) Caller() string {
	c.callerOnce.Do(func() {
		c.caller = resolveCaller()
	})
	return c.caller
}

func resolveCaller() string {
	exe, err := os.Executable()
	if err != nil {
		if len(os.Args) > 0 && os.Args[0] != "" {
			exe = os.Args[0]
		} else {
			return "modkit"
		}
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

// Write renders one event to the terminal per the redraw protocol.
//
// State machine: in the Fresh state (or with overwrite disabled) the line
// is simply appended. With InitialWrite set, a blank separator line is
// emitted first and the console transitions to AwaitingRedraw without
// erasing, since there is nothing to erase yet. In AwaitingRedraw with
// overwrite enabled, the rows recorded for the previous line are erased
// with cursor-up + carriage-return + clear-line before the new line is
// drawn; the cursor stays hidden for the whole redraw.
func (c *Console) Write(ev *Event, segs []segment, cfg Config) error {
	line := c.renderStyled(ev, segs, cfg)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !cfg.Overwrite {
		_, err := fmt.Fprintln(c.out, line)
		return err
	}

	var b strings.Builder
	b.WriteString(ansiHideCursor)
	switch {
	case cfg.InitialWrite, !c.awaitingRedraw:
		b.WriteString("\n")
	default:
		for i := 0; i < c.lastLineCount; i++ {
			b.WriteString(ansiCursorUp)
			b.WriteString("\r")
			b.WriteString(ansiClearLine)
		}
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(ansiShowCursor)

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return err
	}

	c.lastLineCount = rowCount(lipgloss.Width(line), c.width())
	c.awaitingRedraw = true
	return nil
}

// rowCount computes how many physical rows a line of the given visible
// length occupies at the given terminal width: ceil(len / (width-1)).
// A line never occupies fewer than one row.
func rowCount(length, width int) int {
	if width < 2 {
		width = fallbackWidth
	}
	rows := (length + width - 2) / (width - 1)
	if rows < 1 {
		rows = 1
	}
	return rows
}

// renderStyled assembles the colored console line. The level tag sits
// inside the caller bracket, matching the historical line layout:
//
//	[yyyy-MM-dd HH:mm:ss:ff][TAG caller] message
func (c *Console) renderStyled(ev *Event, segs []segment, cfg Config) string {
	lit := literalStyle
	if cfg.UseBackgroundColor {
		lit = lit.Background(colorBack)
	}

	var b strings.Builder
	b.WriteString(lit.Render("[" + formatTimestamp(ev.Timestamp) + "]["))
	b.WriteString(levelStyles[ev.Level].Render(ev.Level.Tag()))
	b.WriteString(lit.Render(" " + c.Caller() + "] "))

	for _, seg := range segs {
		if !seg.placeholder {
			b.WriteString(lit.Render(seg.text))
			continue
		}
		v, _ := ev.Params.Get(seg.text)
		b.WriteString(styleFor(v).Render(formatValue(v)))
	}
	return b.String()
}

// renderPlain assembles the uncolored line written to the file sink.
func renderPlain(ev *Event, caller string) string {
	return "[" + formatTimestamp(ev.Timestamp) + "][" + ev.Level.Tag() + " " + caller + "] " + ev.Message
}

// formatTimestamp renders the fixed "yyyy-MM-dd HH:mm:ss:ff" layout; the
// trailing field is hundredths of a second, which Go's reference layout
// cannot express directly.
func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05") + fmt.Sprintf(":%02d", t.Nanosecond()/1e7)
}
