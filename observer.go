package inputfsm

// Observer represents an entity that observes a controller's transitions
type Observer interface {
	// OnAction is called after every dispatched action with the states
	// before and after the transition
	OnAction(action Action, from State, to State)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnValueChange is called when a transition changes the value
	OnValueChange(previous *string, next *string, action Action)

	// OnValueCommit is called when a Commit action resolves the value
	OnValueCommit(value *string, action Action)

	// OnValidationError is called when an Invalidate action records an error
	OnValidationError(err error, action Action)

	// OnDragStart is called when a drag gesture begins
	OnDragStart(action Action)

	// OnDragEnd is called when a drag gesture terminates
	OnDragEnd(action Action)

	// OnReset is called when the widget is reset
	OnReset(action Action)

	// OnChangeCallback is called when the controller fires its change
	// callback for a settled value change
	OnChangeCallback(value string, meta ChangeMeta)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnAction implements the required Observer method
func (o *BaseObserver) OnAction(action Action, from State, to State) {
	// Default implementation - no operation
}

// OnValueChange implements the optional ExtendedObserver method
func (o *BaseObserver) OnValueChange(previous *string, next *string, action Action) {
	// Default implementation - no operation
}

// OnValueCommit implements the optional ExtendedObserver method
func (o *BaseObserver) OnValueCommit(value *string, action Action) {
	// Default implementation - no operation
}

// OnValidationError implements the optional ExtendedObserver method
func (o *BaseObserver) OnValidationError(err error, action Action) {
	// Default implementation - no operation
}

// OnDragStart implements the optional ExtendedObserver method
func (o *BaseObserver) OnDragStart(action Action) {
	// Default implementation - no operation
}

// OnDragEnd implements the optional ExtendedObserver method
func (o *BaseObserver) OnDragEnd(action Action) {
	// Default implementation - no operation
}

// OnReset implements the optional ExtendedObserver method
func (o *BaseObserver) OnReset(action Action) {
	// Default implementation - no operation
}

// OnChangeCallback implements the optional ExtendedObserver method
func (o *BaseObserver) OnChangeCallback(value string, meta ChangeMeta) {
	// Default implementation - no operation
}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver registers an observer
func (m *ObserverManager) AddObserver(observer Observer) {
	if observer == nil {
		return
	}
	m.observers = append(m.observers, observer)
}

// RemoveObserver unregisters a previously added observer
func (m *ObserverManager) RemoveObserver(observer Observer) {
	for i, o := range m.observers {
		if o == observer {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// Count returns the number of registered observers
func (m *ObserverManager) Count() int {
	return len(m.observers)
}

// NotifyAction fans an applied transition out to all observers, routing
// extended notifications from the action type and the state delta
func (m *ObserverManager) NotifyAction(action Action, from State, to State) {
	for _, observer := range m.observers {
		observer.OnAction(action, from, to)

		extended, ok := observer.(ExtendedObserver)
		if !ok {
			continue
		}
		if !strPtrEqual(from.Value, to.Value) {
			extended.OnValueChange(from.Value, to.Value, action)
		}
		switch action.Type {
		case ActionCommit:
			extended.OnValueCommit(to.Value, action)
		case ActionInvalidate:
			extended.OnValidationError(to.Err, action)
		case ActionDragStart:
			extended.OnDragStart(action)
		case ActionDragEnd:
			extended.OnDragEnd(action)
		case ActionReset:
			extended.OnReset(action)
		}
	}
}

// NotifyChangeCallback informs observers that the change callback fired
func (m *ObserverManager) NotifyChangeCallback(value string, meta ChangeMeta) {
	for _, observer := range m.observers {
		if extended, ok := observer.(ExtendedObserver); ok {
			extended.OnChangeCallback(value, meta)
		}
	}
}
