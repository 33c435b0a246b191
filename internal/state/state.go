// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is implemented by every screen of the application.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine holds the active state and drives its lifecycle.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine without an initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState exits the active state and enters the next one. Either side of
// the transition may be nil.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

// Update advances the active state.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

// Draw renders the active state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
