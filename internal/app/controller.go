// internal/app/controller.go
package app

import (
	"go-hex-grid/internal/config"
	"go-hex-grid/internal/event"
	"go-hex-grid/pkg/hexmap"
)

// InteractionKind distinguishes the pointer events fed into the controller.
type InteractionKind int

const (
	Click InteractionKind = iota
	HoverStart
	HoverEnd
)

// GridController is the single writer of the highlight state. It validates
// every interaction and forwards accepted ones through the dispatcher.
// Everything runs synchronously on the caller's goroutine, one event at a
// time.
type GridController struct {
	grid       *hexmap.Grid
	layout     hexmap.Layout
	highlight  *HighlightState
	dispatcher *event.Dispatcher
	rng        int
}

// NewGridController validates the settings, builds the static outline and
// computes the initial highlight disk. With Highlight disabled the
// controller degenerates to a plain grid: every in-bounds click is
// accepted and forwarded, nothing is recomputed.
func NewGridController(settings config.Settings, dispatcher *event.Dispatcher) (*GridController, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	gc := &GridController{
		grid:       hexmap.NewGrid(settings.Levels),
		layout:     hexmap.Layout{Size: settings.CellSize},
		dispatcher: dispatcher,
		rng:        settings.Range,
	}
	if settings.Highlight {
		center := hexmap.NewHex(settings.CenterX, settings.CenterY)
		gc.highlight = NewHighlightState(center, settings.Range)
	}
	return gc, nil
}

// OnInteraction is the only entry point for pointer events. Hover events
// pass straight through to the subscribers and never touch the highlight;
// clicks go through selection.
func (gc *GridController) OnInteraction(kind InteractionKind, target hexmap.Hex) {
	switch kind {
	case Click:
		gc.onSelect(target)
	case HoverStart:
		gc.dispatcher.Dispatch(event.Event{Type: event.HoverStarted, Data: target})
	case HoverEnd:
		gc.dispatcher.Dispatch(event.Event{Type: event.HoverEnded, Data: target})
	}
}

// onSelect accepts a click only if the target is currently reachable.
// A rejected click is not an error: no state change, no notification.
func (gc *GridController) onSelect(target hexmap.Hex) {
	if !gc.grid.Contains(target) {
		return
	}
	if gc.highlight == nil {
		gc.dispatcher.Dispatch(event.Event{Type: event.CellSelected, Data: target})
		return
	}
	if !gc.highlight.Contains(target) {
		return
	}
	gc.highlight.Recenter(target, gc.rng)
	gc.dispatcher.Dispatch(event.Event{Type: event.CellSelected, Data: target})
}

// HighlightSet returns a snapshot of the selectable cells, or nil when
// highlighting is disabled.
func (gc *GridController) HighlightSet() map[hexmap.Hex]struct{} {
	if gc.highlight == nil {
		return nil
	}
	return gc.highlight.Snapshot()
}

// Center returns the cell the highlight disk is built around.
func (gc *GridController) Center() (hexmap.Hex, bool) {
	if gc.highlight == nil {
		return hexmap.Hex{}, false
	}
	return gc.highlight.Center(), true
}

// Grid exposes the static outline for drawing and containment checks.
func (gc *GridController) Grid() *hexmap.Grid {
	return gc.grid
}

// Layout exposes the pixel projection shared by every cell.
func (gc *GridController) Layout() hexmap.Layout {
	return gc.layout
}

// CellCenter returns the pixel center of a cell.
func (gc *GridController) CellCenter(h hexmap.Hex) (float64, float64) {
	return gc.layout.Center(h)
}

// CellVertices returns the six corner offsets shared by every cell.
func (gc *GridController) CellVertices() [6]hexmap.Point {
	return gc.layout.Vertices()
}
