// internal/state/menu_state.go
package state

import (
	"go-hex-grid/internal/assets"
	"go-hex-grid/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState is the start screen.
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, settings config.Settings) *MenuState {
	return &MenuState{
		sm:       sm,
		settings: settings,
		fontFace: assets.NewFontFace(24),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGridState(m.sm, m.settings))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "Hexagonal Grid"
	prompt := "press SPACE to start"
	titleBounds := text.BoundString(m.fontFace, title)
	promptBounds := text.BoundString(m.fontFace, prompt)
	text.Draw(screen, title, m.fontFace, (config.ScreenWidth-(titleBounds.Max.X-titleBounds.Min.X))/2, config.ScreenHeight/2-40, config.TextLightColor)
	text.Draw(screen, prompt, m.fontFace, (config.ScreenWidth-(promptBounds.Max.X-promptBounds.Min.X))/2, config.ScreenHeight/2+20, config.TextLightColor)
}

func (m *MenuState) Exit() {}
