package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotateCW
	ActionRotateCCW
	ActionPauseToggle
	ActionConfirm
)

func (a GameAction) String() string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionSoftDrop:
		return "Soft Drop"
	case ActionRotateCW:
		return "Rotate CW"
	case ActionRotateCCW:
		return "Rotate CCW"
	case ActionPauseToggle:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}
