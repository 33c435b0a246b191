// pkg/render/hex_renderer.go
package render

import (
	"image/color"

	"go-hex-grid/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
)

// HexRenderer draws the static outline once into a prerendered image and
// repaints only the highlighted cells on top of it every frame. It reads
// snapshots from the controller and never mutates them.
type HexRenderer struct {
	grid         *hexmap.Grid
	layout       hexmap.Layout
	offsetX      float64
	offsetY      float64
	screenWidth  int
	screenHeight int
	verts        [6]hexmap.Point
	fillImg      *ebiten.Image
	strokeImg    *ebiten.Image
	sortedHexes  []hexmap.Hex
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	colors       *MapColors
	mapImage     *ebiten.Image
}

func NewHexRenderer(grid *hexmap.Grid, layout hexmap.Layout, offsetX, offsetY float64, screenWidth, screenHeight int, colors *MapColors, fontFace font.Face) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	renderer := &HexRenderer{
		grid:         grid,
		layout:       layout,
		offsetX:      offsetX,
		offsetY:      offsetY,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		verts:        layout.Vertices(),
		fillImg:      fillImg,
		strokeImg:    strokeImg,
		sortedHexes:  grid.Hexes(),
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     fontFace,
		colors:       colors,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}

	renderer.RenderMapImage()

	return renderer
}

// RenderMapImage draws the static backdrop: every cell in its default
// style plus its coordinate label. Called once at construction.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	for _, hex := range r.sortedHexes {
		r.drawHexFill(r.mapImage, hex, r.colors.CellColor, true)
	}
	for _, hex := range r.sortedHexes {
		r.drawHexOutline(r.mapImage, hex, LightenColor(r.colors.CellColor, 40))
	}
}

// Draw paints one frame: backdrop, then the highlighted cells, then the
// hover outline. The highlight map is a snapshot owned by this call.
func (r *HexRenderer) Draw(screen *ebiten.Image, highlight map[hexmap.Hex]struct{}, center hexmap.Hex, hasCenter bool, hovered hexmap.Hex, hasHovered bool) {
	screen.DrawImage(r.mapImage, nil)

	for hex := range highlight {
		fillColor := r.colors.HighlightColor
		if hasCenter && hex == center {
			fillColor = r.colors.CenterColor
		}
		r.drawHexFill(screen, hex, fillColor, true)
		r.drawHexOutline(screen, hex, LightenColor(fillColor, 40))
	}

	if hasHovered && r.grid.Contains(hovered) {
		r.drawHexOutline(screen, hovered, r.colors.HoverColor)
	}
}

// hexPath builds the screen-space polygon of a cell by adding the shared
// vertex offsets to its projected center.
func (r *HexRenderer) hexPath(hex hexmap.Hex) vector.Path {
	x, y := r.layout.Center(hex)
	x += r.offsetX
	y += r.offsetY

	path := vector.Path{}
	for i, v := range r.verts {
		px := float32(x + v.X)
		py := float32(y + v.Y)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, hex hexmap.Hex, fillColor color.RGBA, withLabel bool) {
	path := r.hexPath(hex)

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	if !withLabel {
		return
	}

	x, y := r.layout.Center(hex)
	x += r.offsetX
	y += r.offsetY

	label := hex.String()
	var textColor color.RGBA
	if (int(fillColor.R)+int(fillColor.G)+int(fillColor.B))/3 > 128 {
		textColor = r.colors.TextDarkColor
	} else {
		textColor = r.colors.TextLightColor
	}
	bounds := text.BoundString(r.fontFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-textWidth/2, int(y)+textHeight/2, textColor)
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, hex hexmap.Hex, strokeColor color.RGBA) {
	path := r.hexPath(hex)

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(strokeColor.R) / 255
		r.strokeVs[i].ColorG = float32(strokeColor.G) / 255
		r.strokeVs[i].ColorB = float32(strokeColor.B) / 255
		r.strokeVs[i].ColorA = float32(strokeColor.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
