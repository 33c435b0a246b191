// internal/app/highlight.go
package app

import "go-hex-grid/pkg/hexmap"

// HighlightState owns the set of currently selectable cells: the disk of a
// fixed range around the latest accepted center. Only Recenter mutates it.
type HighlightState struct {
	current map[hexmap.Hex]struct{}
	center  hexmap.Hex
	rng     int
}

// NewHighlightState computes the initial disk immediately, before any
// interaction happens.
func NewHighlightState(center hexmap.Hex, rng int) *HighlightState {
	hs := &HighlightState{}
	hs.Recenter(center, rng)
	return hs
}

// Recenter replaces the whole set with the disk around newCenter.
// A full recompute on every call keeps the set exactly equal to the disk;
// there is no incremental patching to drift.
func (hs *HighlightState) Recenter(newCenter hexmap.Hex, rng int) {
	next := make(map[hexmap.Hex]struct{}, 3*rng*rng+3*rng+1)
	for _, h := range hexmap.Disk(newCenter, rng) {
		next[h] = struct{}{}
	}
	hs.current = next
	hs.center = newCenter
	hs.rng = rng
}

// Contains reports whether the cell is currently highlighted.
func (hs *HighlightState) Contains(h hexmap.Hex) bool {
	_, exists := hs.current[h]
	return exists
}

// Center returns the cell the current disk is built around.
func (hs *HighlightState) Center() hexmap.Hex {
	return hs.center
}

// Range returns the disk radius.
func (hs *HighlightState) Range() int {
	return hs.rng
}

// Snapshot returns a copy of the set. The renderer reads snapshots only;
// it must never see, let alone mutate, the live map.
func (hs *HighlightState) Snapshot() map[hexmap.Hex]struct{} {
	snapshot := make(map[hexmap.Hex]struct{}, len(hs.current))
	for h := range hs.current {
		snapshot[h] = struct{}{}
	}
	return snapshot
}
