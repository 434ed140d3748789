package inputfsm

// ActionType enumerates the closed vocabulary of events that can mutate
// input state.
type ActionType int

const (
	// ActionSyncValue is the untagged direct value assignment used for
	// externally-driven updates. It bypasses the transition table and
	// never touches the dirty or error flags.
	ActionSyncValue ActionType = iota
	// ActionPressUp is an up-arrow or increment-stepper key press
	ActionPressUp
	// ActionPressDown is a down-arrow or decrement-stepper key press
	ActionPressDown
	// ActionPressEnter is an enter key press; embedding widgets normally
	// follow it with a Commit of the displayed value
	ActionPressEnter
	// ActionDragStart begins a pointer drag adjustment
	ActionDragStart
	// ActionDrag is an in-flight pointer drag movement
	ActionDrag
	// ActionDragEnd terminates a pointer drag adjustment
	ActionDragEnd
	// ActionChange is a user edit of the displayed value
	ActionChange
	// ActionCommit confirms the displayed value
	ActionCommit
	// ActionReset restores the value seeded at construction
	ActionReset
	// ActionInvalidate records a validation failure
	ActionInvalidate
)

// String returns the action type name for logging and diagnostics
func (t ActionType) String() string {
	switch t {
	case ActionSyncValue:
		return "SYNC_VALUE"
	case ActionPressUp:
		return "PRESS_UP"
	case ActionPressDown:
		return "PRESS_DOWN"
	case ActionPressEnter:
		return "PRESS_ENTER"
	case ActionDragStart:
		return "DRAG_START"
	case ActionDrag:
		return "DRAG"
	case ActionDragEnd:
		return "DRAG_END"
	case ActionChange:
		return "CHANGE"
	case ActionCommit:
		return "COMMIT"
	case ActionReset:
		return "RESET"
	case ActionInvalidate:
		return "INVALIDATE"
	default:
		return "UNKNOWN"
	}
}

// DragDelta describes the pointer movement of a drag action. Y grows
// downward in screen coordinates, so a negative Y is an upward drag.
type DragDelta struct {
	X        float64
	Y        float64
	ShiftKey bool
}

// Action is a tagged request for a state change. Each action carries only
// the payload its transition needs.
type Action struct {
	Type ActionType

	// Value is the payload value for Change, Commit and Reset. A nil
	// value on Reset falls back to the state's InitialValue.
	Value *string

	// Err is the payload of Invalidate.
	Err error

	// Event is the originating external event handle, if any.
	Event Event

	// Drag carries pointer geometry for Drag actions.
	Drag *DragDelta

	// Raw is the uncoerced payload of a SyncValue assignment.
	Raw any
}

// NewChangeAction creates a user-edit action for the given value
func NewChangeAction(value string, ev Event) Action {
	return Action{Type: ActionChange, Value: &value, Event: ev}
}

// NewCommitAction creates a commit action confirming the given value
func NewCommitAction(value string, ev Event) Action {
	return Action{Type: ActionCommit, Value: &value, Event: ev}
}

// NewResetAction creates a reset action. A nil value restores the
// InitialValue captured at construction.
func NewResetAction(value *string, ev Event) Action {
	return Action{Type: ActionReset, Value: value, Event: ev}
}

// NewInvalidateAction creates a validation-failure action
func NewInvalidateAction(err error, ev Event) Action {
	return Action{Type: ActionInvalidate, Err: err, Event: ev}
}

// NewPressUpAction creates an increment key press action
func NewPressUpAction(ev Event) Action {
	return Action{Type: ActionPressUp, Event: ev}
}

// NewPressDownAction creates a decrement key press action
func NewPressDownAction(ev Event) Action {
	return Action{Type: ActionPressDown, Event: ev}
}

// NewPressEnterAction creates an enter key press action
func NewPressEnterAction(ev Event) Action {
	return Action{Type: ActionPressEnter, Event: ev}
}

// NewDragStartAction creates a drag-start action
func NewDragStartAction(ev Event) Action {
	return Action{Type: ActionDragStart, Event: ev}
}

// NewDragAction creates an in-flight drag action with pointer geometry
func NewDragAction(delta DragDelta, ev Event) Action {
	return Action{Type: ActionDrag, Drag: &delta, Event: ev}
}

// NewDragEndAction creates a drag-end action
func NewDragEndAction(ev Event) Action {
	return Action{Type: ActionDragEnd, Event: ev}
}

// NewSyncValueAction creates a direct value assignment for externally
// driven updates. The payload is coerced to a string by the transition:
// nil keeps the current value, an empty string is preserved, and any other
// value is stringified.
func NewSyncValueAction(value any) Action {
	return Action{Type: ActionSyncValue, Raw: value}
}
