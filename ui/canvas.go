package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Seebass22/tab-visualizer/pipeline"
)

// Projected-coordinate extents mapped onto the terminal cell grid. The
// projection puts the trail head at y=0 with |x| up to ~800 and older
// points converging toward y≈333 as depth grows.
const (
	projHalfWidth = 800.0
	projMaxHeight = 360.0
)

// blendSteps is the resolution of the left/right color gradient.
const blendSteps = 32

// Cell color markers outside the gradient range.
const (
	cellBlank  = -1 // unstyled
	cellSymbol = -2 // tab symbol text
)

// Glyph per line weight: louder input draws a heavier trail.
var weightGlyphs = []struct {
	minWeight float64
	glyph     rune
}{
	{7, '█'},
	{4, '●'},
	{0, '·'},
}

// Canvas rasterizes a pipeline frame into colored terminal cells. The
// cell grid and gradient styles are reused across frames to avoid
// per-frame allocation.
type Canvas struct {
	width, height int
	cells         []rune
	colors        []int // gradient index per cell, or a special marker

	left, right string // hex endpoints the gradient was built from
	gradient    [blendSteps]lipgloss.Style
}

// NewCanvas creates an empty canvas. Call Resize before rendering.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Resize adjusts the cell grid to the terminal size. A no-op when the
// size is unchanged.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = width
	c.height = height
	c.cells = make([]rune, width*height)
	c.colors = make([]int, width*height)
}

// rebuildGradient recomputes the blend lookup when an endpoint changed.
// Blending happens in RGB space between the two user colors, matching the
// stereo left/right mapping of the trail's x axis.
func (c *Canvas) rebuildGradient(left, right string) {
	if c.left == left && c.right == right {
		return
	}
	c.left, c.right = left, right
	l, err := colorful.Hex(left)
	if err != nil {
		l = colorful.Color{B: 0.8}
	}
	r, err := colorful.Hex(right)
	if err != nil {
		r = colorful.Color{R: 1, B: 0.8}
	}
	for i := range c.gradient {
		t := float64(i) / float64(blendSteps-1)
		c.gradient[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(l.BlendRgb(r, t).Hex()))
	}
}

// Render draws the frame's trail points and, while running, the current
// tab symbol at the trail head.
func (c *Canvas) Render(frame pipeline.Frame, left, right string) string {
	if c.width == 0 || c.height == 0 {
		return ""
	}
	c.rebuildGradient(left, right)

	for i := range c.cells {
		c.cells[i] = ' '
		c.colors[i] = cellBlank
	}

	glyph := glyphForWeight(frame.Weight)
	for _, p := range frame.Points {
		col, row, ok := c.toCell(p.X, p.Y)
		if !ok {
			continue
		}
		c.cells[row*c.width+col] = glyph
		c.colors[row*c.width+col] = blendIndex(p.Mix)
	}

	if frame.Running && frame.Symbol != "" {
		c.overlaySymbol(frame)
	}

	var sb strings.Builder
	for row := 0; row < c.height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		c.renderRow(&sb, row)
	}
	return sb.String()
}

// renderRow writes one grid row, grouping runs of equally-colored cells
// into a single styled segment.
func (c *Canvas) renderRow(sb *strings.Builder, row int) {
	start := row * c.width
	i := 0
	for i < c.width {
		idx := c.colors[start+i]
		j := i
		for j < c.width && c.colors[start+j] == idx {
			j++
		}
		segment := string(c.cells[start+i : start+j])
		switch {
		case idx == cellSymbol:
			sb.WriteString(symbolStyle.Render(segment))
		case idx == cellBlank:
			sb.WriteString(segment)
		default:
			sb.WriteString(c.gradient[idx].Render(segment))
		}
		i = j
	}
}

// overlaySymbol writes the current tab symbol next to the trail head.
func (c *Canvas) overlaySymbol(frame pipeline.Frame) {
	col, row, ok := c.toCell(frame.SymbolX, frame.SymbolY)
	if !ok {
		return
	}
	// Nudge the text off the trail point itself.
	col += 2
	for i, r := range frame.Symbol {
		x := col + i
		if x < 0 || x >= c.width {
			break
		}
		c.cells[row*c.width+x] = r
		c.colors[row*c.width+x] = cellSymbol
	}
}

// toCell maps projected coordinates to a grid cell. The head row sits at
// the bottom; older points rise toward the top as they shrink.
func (c *Canvas) toCell(x, y float64) (col, row int, ok bool) {
	col = int((x + projHalfWidth) / (2 * projHalfWidth) * float64(c.width-1))
	row = c.height - 1 - int(y/projMaxHeight*float64(c.height-1))
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return 0, 0, false
	}
	return col, row, true
}

func glyphForWeight(weight float64) rune {
	for _, w := range weightGlyphs {
		if weight >= w.minWeight {
			return w.glyph
		}
	}
	return '·'
}

func blendIndex(mix float64) int {
	idx := int(mix * float64(blendSteps-1))
	return max(0, min(idx, blendSteps-1))
}
