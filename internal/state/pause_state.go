// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-hex-grid/internal/assets"
	"go-hex-grid/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the previous state and draws it under a dark overlay.
type PauseState struct {
	sm            *StateMachine
	previousState State
	fontFace      font.Face
}

func NewPauseState(sm *StateMachine, previousState State) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: previousState,
		fontFace:      assets.NewFontFace(40),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.fontFace, pauseText)
	textWidth := bounds.Max.X - bounds.Min.X
	text.Draw(screen, pauseText, s.fontFace, (config.ScreenWidth-textWidth)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
