// internal/state/grid_state.go
package state

import (
	"log"

	"go-hex-grid/internal/app"
	"go-hex-grid/internal/assets"
	"go-hex-grid/internal/config"
	"go-hex-grid/internal/event"
	"go-hex-grid/internal/ui"
	"go-hex-grid/pkg/hexmap"
	"go-hex-grid/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GridState is the interactive screen. It translates raw ebiten input into
// controller interactions and draws the result; all grid logic stays in the
// controller.
type GridState struct {
	sm         *StateMachine
	controller *app.GridController
	renderer   *render.HexRenderer
	panel      *ui.InfoPanel
	offsetX    float64
	offsetY    float64

	hovered    hexmap.Hex
	hasHovered bool
}

func NewGridState(sm *StateMachine, settings config.Settings) *GridState {
	dispatcher := event.NewDispatcher()
	controller, err := app.NewGridController(settings, dispatcher)
	if err != nil {
		log.Fatal(err)
	}

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		CellColor:       config.CellColor,
		HighlightColor:  config.HighlightColor,
		CenterColor:     config.CenterColor,
		HoverColor:      config.HoverColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}

	fontFace := assets.NewFontFace(12)
	offsetX := float64(config.ScreenWidth) / 2
	offsetY := float64(config.ScreenHeight-config.PanelHeight) / 2
	renderer := render.NewHexRenderer(controller.Grid(), controller.Layout(), offsetX, offsetY, config.ScreenWidth, config.ScreenHeight, mapColors, fontFace)
	panel := ui.NewInfoPanel(assets.NewFontFace(14), settings.Range, dispatcher)

	return &GridState{
		sm:         sm,
		controller: controller,
		renderer:   renderer,
		panel:      panel,
		offsetX:    offsetX,
		offsetY:    offsetY,
	}
}

func (g *GridState) Enter() {}

func (g *GridState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	x, y := ebiten.CursorPosition()
	hex := g.controller.Layout().PixelToHex(float64(x)-g.offsetX, float64(y)-g.offsetY)
	onGrid := g.controller.Grid().Contains(hex)

	g.trackHover(hex, onGrid)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onGrid {
		g.controller.OnInteraction(app.Click, hex)
	}
}

// trackHover turns the cursor position into enter/leave interactions.
// Hover never mutates the highlight; the controller only forwards it.
func (g *GridState) trackHover(hex hexmap.Hex, onGrid bool) {
	switch {
	case onGrid && (!g.hasHovered || hex != g.hovered):
		if g.hasHovered {
			g.controller.OnInteraction(app.HoverEnd, g.hovered)
		}
		g.controller.OnInteraction(app.HoverStart, hex)
		g.hovered = hex
		g.hasHovered = true
	case !onGrid && g.hasHovered:
		g.controller.OnInteraction(app.HoverEnd, g.hovered)
		g.hasHovered = false
	}
}

func (g *GridState) Draw(screen *ebiten.Image) {
	center, hasCenter := g.controller.Center()
	g.renderer.Draw(screen, g.controller.HighlightSet(), center, hasCenter, g.hovered, g.hasHovered)
	g.panel.Draw(screen)
}

func (g *GridState) Exit() {}
