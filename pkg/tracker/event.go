package tracker

import "github.com/trailscad/trails/pkg/geometry"

// EventType classifies viewport input events
type EventType int

const (
	EventButton EventType = iota
	EventMove
	EventKey
)

// Button identifies a pointer button
type Button int

const (
	ButtonNone Button = iota
	Button1
	Button2
	Button3
)

// ButtonState is a press or release
type ButtonState int

const (
	ButtonUp ButtonState = iota
	ButtonDown
)

// Modifier is a bit set of held modifier keys
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
)

// Event is one abstract input event from the viewport. Component is
// the id of the picked visual element, empty when nothing was under
// the pointer.
type Event struct {
	Type        EventType
	Button      Button
	State       ButtonState
	Key         string
	Modifiers   Modifier
	Component   string
	Coordinates geometry.Vector3
}

// ButtonEvent builds a pointer button event
func ButtonEvent(button Button, state ButtonState, component string, coords geometry.Vector3, mods Modifier) Event {
	return Event{
		Type:        EventButton,
		Button:      button,
		State:       state,
		Component:   component,
		Coordinates: coords,
		Modifiers:   mods,
	}
}

// MoveEvent builds a pointer motion event
func MoveEvent(component string, coords geometry.Vector3, mods Modifier) Event {
	return Event{
		Type:        EventMove,
		Component:   component,
		Coordinates: coords,
		Modifiers:   mods,
	}
}
