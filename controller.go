package inputfsm

import (
	"sync"

	"github.com/google/uuid"
)

// ChangeMeta accompanies a change-callback firing and reports which
// originating event triggered the settled value change.
type ChangeMeta struct {
	Event Event
}

// ChangeFunc is the callback invoked when the internal value settles and
// differs from the last externally observed value.
type ChangeFunc func(value string, meta ChangeMeta)

// Controller owns the reducer instance for a single input widget. It
// exposes bound dispatchers for the action vocabulary, records the
// originating event handle of each dispatch, and synchronizes the
// externally supplied value with internal state.
//
// Each widget instance owns an independent Controller; nothing is shared
// across controllers. Dispatch is serialized, so actions are applied
// strictly in dispatch order and never merged or reordered.
type Controller struct {
	mutex     sync.Mutex
	id        string
	state     State
	override  Reducer
	onChange  ChangeFunc
	observers *ObserverManager

	// pendingEvent is the originating event handle of the latest tagged
	// dispatch. It is overwritten on each dispatch and cleared once the
	// change callback consumes it.
	pendingEvent Event

	// lastValue is the internal value at the last settled observation.
	lastValue *string

	// lastExternal is the external value prop at the last Sync call. The
	// first Sync only records it, matching an update-effect that skips
	// the initial render.
	lastExternal    *string
	lastExternalSet bool
}

// NewController creates a controller seeded from a partial state. The
// override reducer runs after the base transition for every tagged action;
// nil means no override. The onChange callback may be nil.
func NewController(seed State, override Reducer, onChange ChangeFunc) *Controller {
	state := NewState(seed)
	return &Controller{
		id:        uuid.New().String(),
		state:     state,
		override:  override,
		onChange:  onChange,
		observers: NewObserverManager(),
		lastValue: state.Value,
	}
}

// ID returns the unique controller instance identifier
func (c *Controller) ID() string {
	return c.id
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state
}

// AddObserver registers an observer for this controller's transitions
func (c *Controller) AddObserver(observer Observer) {
	c.observers.AddObserver(observer)
}

// RemoveObserver unregisters a previously added observer
func (c *Controller) RemoveObserver(observer Observer) {
	c.observers.RemoveObserver(observer)
}

// applyLocked resolves an action through the base transition and, for
// tagged actions, the override reducer. Direct value assignments skip the
// override and never record an originating event.
func (c *Controller) applyLocked(action Action) (State, State) {
	from := c.state
	to := Reduce(from, action)
	if action.Type != ActionSyncValue {
		if c.override != nil {
			to = c.override(to, action)
		}
		c.pendingEvent = action.Event
	}
	c.state = to
	return from, to
}

// Dispatch is the raw escape hatch for applying an arbitrary action. The
// bound dispatchers below are the usual entry points.
func (c *Controller) Dispatch(action Action) State {
	c.mutex.Lock()
	from, to := c.applyLocked(action)
	c.mutex.Unlock()

	c.observers.NotifyAction(action, from, to)
	return to
}

// Change dispatches a user edit of the displayed value
func (c *Controller) Change(value string, ev Event) State {
	return c.Dispatch(NewChangeAction(value, ev))
}

// Commit dispatches an explicit confirmation of the given value
func (c *Controller) Commit(value string, ev Event) State {
	return c.Dispatch(NewCommitAction(value, ev))
}

// Reset restores the value seeded at construction
func (c *Controller) Reset(ev Event) State {
	return c.Dispatch(NewResetAction(nil, ev))
}

// ResetTo resets the widget to the given value instead of the initial one
func (c *Controller) ResetTo(value string, ev Event) State {
	return c.Dispatch(NewResetAction(&value, ev))
}

// Invalidate records a validation failure without erasing user input
func (c *Controller) Invalidate(err error, ev Event) State {
	return c.Dispatch(NewInvalidateAction(err, ev))
}

// DragStart dispatches the beginning of a pointer drag
func (c *Controller) DragStart(ev Event) State {
	return c.Dispatch(NewDragStartAction(ev))
}

// Drag dispatches an in-flight pointer drag movement
func (c *Controller) Drag(delta DragDelta, ev Event) State {
	return c.Dispatch(NewDragAction(delta, ev))
}

// DragEnd dispatches the end of a pointer drag
func (c *Controller) DragEnd(ev Event) State {
	return c.Dispatch(NewDragEndAction(ev))
}

// PressUp dispatches an increment key press
func (c *Controller) PressUp(ev Event) State {
	return c.Dispatch(NewPressUpAction(ev))
}

// PressDown dispatches a decrement key press
func (c *Controller) PressDown(ev Event) State {
	return c.Dispatch(NewPressDownAction(ev))
}

// PressEnter dispatches an enter key press. The base transition leaves the
// state untouched; embedding widgets normally follow it with a Commit of
// the displayed value.
func (c *Controller) PressEnter(ev Event) State {
	return c.Dispatch(NewPressEnterAction(ev))
}

// Sync runs the post-render synchronization algorithm against the
// externally supplied value. Hosts call it after every render, or after
// every dispatch in loop-driven UIs.
//
// Two independent rules apply, both suppressed while the state is dirty so
// that user input in flight always wins:
//
//  1. If the internal value settled on a new, error-free value and an
//     originating event is recorded, the change callback fires exactly
//     once with that event, which is then cleared.
//  2. If no originating event is pending and the external value changed
//     since the last observation and differs from internal state, a
//     direct value assignment resyncs internal state to it.
//
// When rule 1 fires, rule 2 is deferred to the next Sync so a stale
// external value cannot overwrite the change just reported.
func (c *Controller) Sync(external *string) {
	var (
		fire      bool
		fireValue string
		fireMeta  ChangeMeta

		resync     bool
		syncAction Action
		from, to   State
	)

	c.mutex.Lock()
	state := c.state

	if !state.IsDirty && !strPtrEqual(state.Value, c.lastValue) {
		// A value carrying a validation error is not settled; it is
		// observed but never reported to the owner.
		if c.pendingEvent != nil && state.Err == nil {
			fire = true
			fireValue = state.ValueOr("")
			fireMeta = ChangeMeta{Event: c.pendingEvent}
			c.pendingEvent = nil
		}
		c.lastValue = state.Value
	}

	if !fire && c.lastExternalSet && c.pendingEvent == nil && !state.IsDirty &&
		!strPtrEqual(external, c.lastExternal) && !strPtrEqual(external, state.Value) {
		resync = true
		syncAction = NewSyncValueAction(external)
		from, to = c.applyLocked(syncAction)
		// A pushed external value is already known to the owner and must
		// not fire the callback later.
		c.lastValue = to.Value
	}
	c.lastExternal = external
	c.lastExternalSet = true
	c.mutex.Unlock()

	if fire {
		if c.onChange != nil {
			c.onChange(fireValue, fireMeta)
		}
		c.observers.NotifyChangeCallback(fireValue, fireMeta)
	}
	if resync {
		c.observers.NotifyAction(syncAction, from, to)
	}
}
