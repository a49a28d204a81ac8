// Package text measures terminal text: display widths, wrapping and
// truncation, and the intrinsic size of a text leaf for the layout solver.
package text

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/jask/boxtree/internal/solver"
	"github.com/jask/boxtree/internal/style"
)

const ellipsis = "…"

// NaturalSize is the unwrapped size of s: its widest line in display
// columns and its number of lines. The empty string measures 0x0.
func NaturalSize(s string) solver.Size[float64] {
	if s == "" {
		return solver.Size[float64]{}
	}
	return solver.Size[float64]{
		Width:  float64(lipgloss.Width(s)),
		Height: float64(lipgloss.Height(s)),
	}
}

// CharWidth is the number of display columns r occupies.
func CharWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// Wrap fits s into width columns using policy. "wrap" reflows on word
// boundaries, keeps leading whitespace and hard-breaks words that are too
// long; the truncate policies cut each line and mark the cut with an
// ellipsis. Unknown policies reflow. No line of the result is wider than
// width unless width is below 1.
func Wrap(s string, width int, policy string) string {
	switch policy {
	case style.WrapTruncate, style.WrapTruncateEnd, style.WrapEnd:
		return eachLine(s, func(line string) string { return truncateEnd(line, width) })
	case style.WrapTruncateStart:
		return eachLine(s, func(line string) string { return truncateStart(line, width) })
	case style.WrapTruncateMiddle, style.WrapMiddle:
		return eachLine(s, func(line string) string { return truncateMiddle(line, width) })
	default:
		return eachLine(s, func(line string) string { return reflow(line, width) })
	}
}

func reflow(line string, width int) string {
	if width < 1 {
		return line
	}
	wrapped := ansi.Wordwrap(line, width, "")
	// Wordwrap breaks before a first word that does not fit beside the
	// indentation and drops the indentation; put it back and let Hardwrap
	// split the line instead.
	if strings.HasPrefix(wrapped, "\n") {
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		wrapped = indent + wrapped[1:]
	}
	return ansi.Hardwrap(wrapped, width, true)
}

func eachLine(s string, fn func(string) string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}

func truncateEnd(line string, width int) string {
	if width < 1 {
		return ""
	}
	if ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, ellipsis)
}

func truncateStart(line string, width int) string {
	if width < 1 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w <= width {
		return line
	}
	return ellipsis + lastColumns(line, w, width-1)
}

func truncateMiddle(line string, width int) string {
	if width < 1 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w <= width {
		return line
	}
	if width == 1 {
		return ellipsis
	}
	head := ansi.Truncate(line, width/2, "")
	return head + ellipsis + lastColumns(line, w, width-1-ansi.StringWidth(head))
}

// lastColumns returns the longest suffix of line, which is w columns wide,
// that fits in n columns. A wide character straddling the cut is dropped.
func lastColumns(line string, w, n int) string {
	if n < 1 {
		return ""
	}
	for cut := w - n; cut < w; cut++ {
		if tail := ansi.TruncateLeft(line, cut, ""); ansi.StringWidth(tail) <= n {
			return tail
		}
	}
	return ""
}
