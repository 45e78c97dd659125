// Package render draws the sorted view. It is a thin consumer of the widget
// core: ordered records plus selection in, rows out.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/filegrid/filegrid/internal/browser"
	"github.com/filegrid/filegrid/internal/textutil"
)

const (
	headerRows = 2 // breadcrumb + separator
	sizeColumn = 10
)

// Renderer draws one widget instance onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RowAt maps screen coordinates to a display row index, -1 when the position
// is outside the listing. offset is the first visible display row.
func RowAt(_, y, offset, total int) int {
	row := y - headerRows + offset
	if y < headerRows || row < 0 || row >= total {
		return -1
	}
	return row
}

// VisibleRows reports how many listing rows fit on screen.
func VisibleRows(screenHeight int) int {
	rows := screenHeight - headerRows - 1 // status line at the bottom
	if rows < 0 {
		return 0
	}
	return rows
}

// Render draws the breadcrumb, the listing window and a status line.
// focus is the focused display row, offset the first visible one.
func (r *Renderer) Render(inst *browser.Instance, focus, offset int) {
	r.screen.Clear()
	width, height := r.screen.Size()

	r.drawText(0, 0, width, breadcrumbLine(inst.FolderChain()), tcell.StyleDefault.Bold(true))
	r.drawText(0, 1, width, strings.Repeat("─", max(width, 0)), tcell.StyleDefault.Foreground(tcell.ColorGray))

	ordered := inst.Ordered()
	rows := VisibleRows(height)
	for i := 0; i < rows; i++ {
		idx := offset + i
		if idx >= len(ordered) {
			break
		}
		r.drawRow(inst, ordered[idx], idx, headerRows+i, width, idx == focus)
	}

	status := fmt.Sprintf(" %d items  %s  sort: %s %s  [space] select  [enter] open  [bksp] up  [q] quit",
		len(ordered), inst.View(), inst.SortProperty(), inst.SortOrder())
	r.drawText(0, height-1, width, status, tcell.StyleDefault.Reverse(true))

	r.screen.Show()
}

func (r *Renderer) drawRow(inst *browser.Instance, f *browser.FileRecord, displayIndex, y, width int, focused bool) {
	style := tcell.StyleDefault
	marker := "  "

	if f == nil {
		r.drawText(0, y, width, "  …", style.Foreground(tcell.ColorGray))
		return
	}
	if inst.IsSelected(f.ID) {
		marker = "▸ "
		style = style.Foreground(tcell.ColorYellow)
	}
	if focused {
		style = style.Reverse(true)
	}
	if f.IsDir {
		style = style.Bold(true)
	}

	name := textutil.SanitizeName(displayName(f, inst.Options()))
	if f.IsDir {
		name += "/"
	}

	nameWidth := width - len(marker) - sizeColumn - 1
	if nameWidth < 1 {
		nameWidth = 1
	}
	name = runewidth.Truncate(name, nameWidth, "…")
	name = runewidth.FillRight(name, nameWidth)

	size := ""
	if !f.IsDir {
		size = formatSize(f.Size)
	}
	line := marker + name + " " + fmt.Sprintf("%*s", sizeColumn, size)
	r.drawText(0, y, width, line, style)
}

func displayName(f *browser.FileRecord, opts browser.Options) string {
	if opts.ShowExtensions || f.Ext == "" {
		return f.Name
	}
	return strings.TrimSuffix(f.Name, f.Ext)
}

func breadcrumbLine(chain browser.FolderChain) string {
	if len(chain) == 0 {
		return " (no folder)"
	}
	parts := make([]string, 0, len(chain))
	for _, f := range chain {
		if f == nil {
			parts = append(parts, "…")
			continue
		}
		parts = append(parts, textutil.SanitizeName(f.Name))
	}
	return " " + strings.Join(parts, " ▸ ")
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if col+w > x+maxWidth {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
}
