// Package render draws flasks for a terminal with lipgloss.
// Colour lives here only; the board package never references it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
)

const (
	slot      = "|  |"
	sealedCap = "+--+"
	base      = "+--+"
	gap       = "  "
	unitCol   = 2
)

// Renderer turns flask state into text. It is safe to reuse across frames.
type Renderer struct {
	palette map[board.Chemical]lipgloss.Style
	perRow  int

	plain   lipgloss.Style
	source  lipgloss.Style
	dest    lipgloss.Style
	title   lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
}

// New builds a Renderer. palette maps chemical labels to lipgloss colours
// (ANSI index or "#rrggbb"); labels without an entry are drawn uncoloured.
// A nil re uses lipgloss's default renderer.
func New(re *lipgloss.Renderer, palette map[string]string, perRow int) *Renderer {
	if re == nil {
		re = lipgloss.DefaultRenderer()
	}
	r := &Renderer{
		palette: make(map[board.Chemical]lipgloss.Style, len(palette)),
		perRow:  max(perRow, 1),
		plain:   re.NewStyle(),
		source:  re.NewStyle().Foreground(lipgloss.Color("1")),
		dest:    re.NewStyle().Foreground(lipgloss.Color("2")),
		title:   re.NewStyle().Bold(true),
		warning: re.NewStyle().Foreground(lipgloss.Color("3")),
		success: re.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
	for label, colour := range palette {
		r.palette[board.Chemical(label)] = re.NewStyle().Background(lipgloss.Color(colour))
	}
	return r
}

// Title renders the game heading.
func (r *Renderer) Title() string {
	return r.title.Render("Magical Flask Game")
}

// Warning renders a rejection or input error.
func (r *Renderer) Warning(msg string) string {
	return r.warning.Render(msg)
}

// Success renders the win banner.
func (r *Renderer) Success(msg string) string {
	return r.success.Render(msg)
}

// Flasks draws every flask top to bottom in rows of perRow, with the
// one-based number under each. src and dst are zero-based indices to
// highlight, or negative for none.
func (r *Renderer) Flasks(flasks []*board.Flask, src, dst int) string {
	var sb strings.Builder
	for start := 0; start < len(flasks); start += r.perRow {
		end := min(start+r.perRow, len(flasks))
		r.writeRow(&sb, flasks[start:end], start, src, dst)
	}
	return sb.String()
}

func (r *Renderer) writeRow(sb *strings.Builder, row []*board.Flask, offset, src, dst int) {
	cells := make([]string, len(row))

	for level := board.FlaskCapacity; level >= 1; level-- {
		for j, f := range row {
			switch {
			case level <= f.Size():
				// Reversed is top first, so the unit at height level sits
				// size-level entries from the top.
				unit := f.Reversed()[f.Size()-level]
				cells[j] = "|" + r.unit(unit) + "|"
			case f.IsSealed():
				cells[j] = sealedCap
			default:
				cells[j] = slot
			}
		}
		sb.WriteString(strings.Join(cells, gap))
		sb.WriteByte('\n')
	}

	for j := range row {
		cells[j] = base
	}
	sb.WriteString(strings.Join(cells, gap))
	sb.WriteByte('\n')

	for j := range row {
		i := offset + j
		label := center(fmt.Sprintf("%d", i+1), len(base))
		switch i {
		case src:
			cells[j] = r.source.Render(label)
		case dst:
			cells[j] = r.dest.Render(label)
		default:
			cells[j] = label
		}
	}
	sb.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	sb.WriteByte('\n')
}

// unit draws one chemical label in its palette colour, fitted to two columns.
func (r *Renderer) unit(c board.Chemical) string {
	label := fmt.Sprintf("%-*.*s", unitCol, unitCol, string(c))
	style, ok := r.palette[c]
	if !ok {
		style = r.plain
	}
	return style.Render(label)
}

// center pads s with spaces to width, extra space going right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
