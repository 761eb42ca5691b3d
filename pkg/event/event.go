package event

import "fmt"

type InputType int

const (
	InputQuit InputType = iota
	InputKeyDown
	InputKeyUp
	InputFocusGained
	InputFocusLost
)

func (t InputType) String() string {
	switch t {
	case InputQuit:
		return "Quit"
	case InputKeyDown:
		return "KeyDown"
	case InputKeyUp:
		return "KeyUp"
	case InputFocusGained:
		return "FocusGained"
	case InputFocusLost:
		return "FocusLost"
	default:
		return "Unknown"
	}
}

// Input is a discrete event delivered by a frontend. Action is only set for
// key events.
type Input struct {
	Type   InputType
	Action GameAction
}

func (i Input) String() string {
	if i.Type == InputKeyDown || i.Type == InputKeyUp {
		return fmt.Sprintf("%s(%s)", i.Type, i.Action)
	}

	return i.Type.String()
}

func Quit() Input { return Input{Type: InputQuit} }
func KeyDown(a GameAction) Input { return Input{Type: InputKeyDown, Action: a} }
func KeyUp(a GameAction) Input { return Input{Type: InputKeyUp, Action: a} }
func Focus(focused bool) Input {
	if focused {
		return Input{Type: InputFocusGained}
	}

	return Input{Type: InputFocusLost}
}
