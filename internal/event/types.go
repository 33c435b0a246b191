// internal/event/types.go
package event

const (
	CellSelected EventType = "CellSelected" // a click landed on a selectable cell
	HoverStarted EventType = "HoverStarted" // the cursor entered a cell
	HoverEnded   EventType = "HoverEnded"   // the cursor left a cell
)
