// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"go-hex-grid/internal/config"
	"go-hex-grid/internal/event"
	"go-hex-grid/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// InfoPanel is a passive strip at the bottom of the screen showing the
// current selection, the highlight range and the hovered cell. It learns
// about changes only through dispatcher events.
type InfoPanel struct {
	fontFace font.Face
	rng      int

	selected    hexmap.Hex
	hasSelected bool
	hovered     hexmap.Hex
	hasHovered  bool
}

// NewInfoPanel subscribes itself to the grid notifications.
func NewInfoPanel(fontFace font.Face, rng int, dispatcher *event.Dispatcher) *InfoPanel {
	p := &InfoPanel{
		fontFace: fontFace,
		rng:      rng,
	}
	dispatcher.Subscribe(event.CellSelected, p)
	dispatcher.Subscribe(event.HoverStarted, p)
	dispatcher.Subscribe(event.HoverEnded, p)
	return p
}

// OnEvent implements event.Listener.
func (p *InfoPanel) OnEvent(e event.Event) {
	hex, ok := e.Data.(hexmap.Hex)
	if !ok {
		return
	}
	switch e.Type {
	case event.CellSelected:
		p.selected = hex
		p.hasSelected = true
	case event.HoverStarted:
		p.hovered = hex
		p.hasHovered = true
	case event.HoverEnded:
		if p.hovered == hex {
			p.hasHovered = false
		}
	}
}

// Draw renders the panel background and one line of status text.
func (p *InfoPanel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(config.ScreenHeight-config.PanelHeight), float32(config.ScreenWidth), float32(config.PanelHeight), config.PanelColor, false)

	selected := "-"
	if p.hasSelected {
		selected = p.selected.String()
	}
	hovered := "-"
	if p.hasHovered {
		hovered = p.hovered.String()
	}
	line := fmt.Sprintf("selected: %s    range: %d    hover: %s", selected, p.rng, hovered)
	text.Draw(screen, line, p.fontFace, 16, config.ScreenHeight-config.PanelHeight/2+6, config.TextLightColor)
}
