package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"drawer-cabinet/internal/api"
	"drawer-cabinet/internal/cabinet"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleRow     = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleMatch   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleSmall   = lipgloss.NewStyle().Foreground(colorWhite)
	styleMedium  = lipgloss.NewStyle().Foreground(colorCyan)
	styleLarge   = lipgloss.NewStyle().Foreground(colorGreen)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// Terminal cells per column in each section.
const (
	leftCellWidth  = 7
	rightCellWidth = 10
)

const sectionSeparator = " │ "

// renderCabinet draws the cabinet one line per row. When visible is non-nil
// drawers missing from it are dimmed and the rest highlighted.
func renderCabinet(drawers []cabinet.Drawer, visible map[string]bool) string {
	grid := cabinet.GroupByRow(drawers)

	var b strings.Builder
	b.WriteString(renderHeader())
	b.WriteByte('\n')
	for _, row := range cabinet.Rows() {
		b.WriteString(styleRow.Render(row))
		b.WriteString("  ")
		for i, d := range grid[row] {
			if i > 0 && d.IsRightSection() && !grid[row][i-1].IsRightSection() {
				b.WriteString(sectionSeparator)
			}
			b.WriteString(renderDrawer(d, visible))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderHeader() string {
	var b strings.Builder
	b.WriteString("   ")
	for c := 1; c <= cabinet.ColumnCount; c++ {
		if c == cabinet.MinColumn(cabinet.RightSection) {
			b.WriteString(sectionSeparator)
		}
		width := leftCellWidth
		if cabinet.IsRightSection(c) {
			width = rightCellWidth
		}
		b.WriteString(fit(fmt.Sprintf("%d", c), width))
	}
	return styleDim.Render(b.String())
}

func renderDrawer(d cabinet.Drawer, visible map[string]bool) string {
	width := leftCellWidth
	if d.IsRightSection() {
		width = rightCellWidth
	}
	width *= len(d.Positions())

	text := fit("["+d.DisplayText(), width-1) + "]"

	switch {
	case visible == nil:
	case !visible[d.ID()]:
		return styleDim.Render(text)
	default:
		return styleMatch.Render(text)
	}

	switch d.Size() {
	case cabinet.Large:
		return styleLarge.Render(text)
	case cabinet.Medium:
		return styleMedium.Render(text)
	default:
		return styleSmall.Render(text)
	}
}

// fit truncates or pads s to exactly width terminal cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// toDrawers rebuilds drawers from their wire form. Records that do not
// describe a valid drawer are returned as errors.
func toDrawers(in []api.DrawerJSON) ([]cabinet.Drawer, []error) {
	out := make([]cabinet.Drawer, 0, len(in))
	var errs []error
	for _, j := range in {
		rec, err := j.Record()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		d, err := rec.Drawer()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, d)
	}
	return out, errs
}
