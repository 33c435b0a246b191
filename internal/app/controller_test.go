package app

import (
	"errors"
	"testing"

	"go-hex-grid/internal/config"
	"go-hex-grid/internal/event"
	"go-hex-grid/pkg/hexmap"
)

type captureListener struct {
	events []event.Event
}

func (c *captureListener) OnEvent(e event.Event) {
	c.events = append(c.events, e)
}

func newTestController(t *testing.T, settings config.Settings) (*GridController, *captureListener) {
	t.Helper()
	dispatcher := event.NewDispatcher()
	listener := &captureListener{}
	dispatcher.Subscribe(event.CellSelected, listener)
	dispatcher.Subscribe(event.HoverStarted, listener)
	dispatcher.Subscribe(event.HoverEnded, listener)

	gc, err := NewGridController(settings, dispatcher)
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return gc, listener
}

func rangeOneSettings() config.Settings {
	return config.Settings{Levels: 4, Range: 1, CellSize: 1, Highlight: true}
}

func TestInvalidSettingsRejected(t *testing.T) {
	dispatcher := event.NewDispatcher()
	bad := []config.Settings{
		{Levels: -1, Range: 1, CellSize: 1, Highlight: true},
		{Levels: 2, Range: -1, CellSize: 1, Highlight: true},
		{Levels: 2, Range: 1, CellSize: 0, Highlight: true},
	}
	for _, s := range bad {
		if _, err := NewGridController(s, dispatcher); !errors.Is(err, config.ErrInvalidSetting) {
			t.Errorf("settings %+v: expected ErrInvalidSetting, got %v", s, err)
		}
	}
}

func TestInitialHighlightComputedAtConstruction(t *testing.T) {
	gc, _ := newTestController(t, rangeOneSettings())

	set := gc.HighlightSet()
	if len(set) != 7 {
		t.Fatalf("initial set has %d cells, want 7", len(set))
	}
	want := []hexmap.Hex{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 1, Y: 0, Z: -1}, {X: 0, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: 0}, {X: -1, Y: 0, Z: 1}, {X: 0, Y: -1, Z: 1},
	}
	for _, h := range want {
		if _, ok := set[h]; !ok {
			t.Errorf("initial set misses %v", h)
		}
	}
}

func TestSelectOutsideHighlightIsIgnored(t *testing.T) {
	gc, listener := newTestController(t, rangeOneSettings())

	gc.OnInteraction(Click, hexmap.Hex{X: 2, Y: -2, Z: 0})

	if len(listener.events) != 0 {
		t.Fatalf("rejected click dispatched %d events", len(listener.events))
	}
	center, ok := gc.Center()
	if !ok || center != (hexmap.Hex{X: 0, Y: 0, Z: 0}) {
		t.Fatalf("center moved to %v after rejected click", center)
	}
}

func TestSelectInsideHighlightRecenters(t *testing.T) {
	gc, listener := newTestController(t, rangeOneSettings())
	target := hexmap.Hex{X: 1, Y: 0, Z: -1}

	gc.OnInteraction(Click, target)

	if len(listener.events) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(listener.events))
	}
	if listener.events[0].Type != event.CellSelected {
		t.Fatalf("unexpected event type %q", listener.events[0].Type)
	}
	if got := listener.events[0].Data.(hexmap.Hex); got != target {
		t.Fatalf("event carries %v, want %v", got, target)
	}

	center, _ := gc.Center()
	if center != target {
		t.Fatalf("center is %v, want %v", center, target)
	}
	set := gc.HighlightSet()
	if len(set) != 7 {
		t.Fatalf("recentered set has %d cells, want 7", len(set))
	}
	if _, ok := set[hexmap.Hex{X: 2, Y: -1, Z: -1}]; !ok {
		t.Error("recentered set misses a neighbor of the new center")
	}
	if _, ok := set[hexmap.Hex{X: -1, Y: 1, Z: 0}]; ok {
		t.Error("recentered set still contains a cell of the old disk")
	}
}

func TestReselectingCenterIsIdempotent(t *testing.T) {
	gc, listener := newTestController(t, rangeOneSettings())
	before := gc.HighlightSet()

	gc.OnInteraction(Click, hexmap.Hex{X: 0, Y: 0, Z: 0})
	gc.OnInteraction(Click, hexmap.Hex{X: 0, Y: 0, Z: 0})

	after := gc.HighlightSet()
	if len(after) != len(before) {
		t.Fatalf("set size changed from %d to %d", len(before), len(after))
	}
	for h := range before {
		if _, ok := after[h]; !ok {
			t.Errorf("cell %v lost after reselect", h)
		}
	}
	// The set is unchanged but the callback still fires per accepted click.
	if len(listener.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(listener.events))
	}
}

func TestHoverPassesThroughWithoutMutating(t *testing.T) {
	gc, listener := newTestController(t, rangeOneSettings())
	far := hexmap.Hex{X: 3, Y: -3, Z: 0}

	gc.OnInteraction(HoverStart, far)
	gc.OnInteraction(HoverEnd, far)

	if len(listener.events) != 2 {
		t.Fatalf("expected 2 hover events, got %d", len(listener.events))
	}
	if listener.events[0].Type != event.HoverStarted || listener.events[1].Type != event.HoverEnded {
		t.Fatalf("unexpected hover event order: %v, %v", listener.events[0].Type, listener.events[1].Type)
	}
	center, _ := gc.Center()
	if center != (hexmap.Hex{X: 0, Y: 0, Z: 0}) {
		t.Fatalf("hover moved the center to %v", center)
	}
	if gc.highlight.Contains(far) {
		t.Fatal("hover extended the highlight set")
	}
}

func TestZeroRangeOnlyAcceptsCenter(t *testing.T) {
	settings := rangeOneSettings()
	settings.Range = 0
	gc, listener := newTestController(t, settings)

	if len(gc.HighlightSet()) != 1 {
		t.Fatalf("range 0 set has %d cells, want 1", len(gc.HighlightSet()))
	}

	gc.OnInteraction(Click, hexmap.Hex{X: 1, Y: 0, Z: -1})
	if len(listener.events) != 0 {
		t.Fatal("range 0 accepted a neighbor click")
	}

	gc.OnInteraction(Click, hexmap.Hex{X: 0, Y: 0, Z: 0})
	if len(listener.events) != 1 {
		t.Fatal("range 0 rejected reselecting the center")
	}
}

func TestDisabledHighlightAcceptsAnyGridCell(t *testing.T) {
	settings := rangeOneSettings()
	settings.Highlight = false
	gc, listener := newTestController(t, settings)

	if gc.HighlightSet() != nil {
		t.Fatal("disabled highlight still exposes a set")
	}
	if _, ok := gc.Center(); ok {
		t.Fatal("disabled highlight reports a center")
	}

	gc.OnInteraction(Click, hexmap.Hex{X: 3, Y: -1, Z: -2})
	if len(listener.events) != 1 {
		t.Fatalf("in-bounds click dispatched %d events, want 1", len(listener.events))
	}

	gc.OnInteraction(Click, hexmap.Hex{X: 5, Y: 0, Z: -5})
	if len(listener.events) != 1 {
		t.Fatal("out-of-bounds click was forwarded")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	gc, _ := newTestController(t, rangeOneSettings())

	snapshot := gc.HighlightSet()
	delete(snapshot, hexmap.Hex{X: 0, Y: 0, Z: 0})

	if !gc.highlight.Contains(hexmap.Hex{X: 0, Y: 0, Z: 0}) {
		t.Fatal("mutating a snapshot changed the authoritative set")
	}
}
