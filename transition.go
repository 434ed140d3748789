package inputfsm

import "fmt"

// Reducer maps a state and an action to the next state. Reducers must be
// pure: no side effects and no mutation of the input state.
type Reducer func(State, Action) State

// Reduce is the base transition function. It is total over the action
// vocabulary; unrecognized action types produce an identity copy.
func Reduce(state State, action Action) State {
	// Direct assignment bypasses the transition table so that purely
	// externally driven updates never touch the dirty or error flags.
	if action.Type == ActionSyncValue {
		next := state
		next.Value = coerceValue(action.Raw, state.Value)
		return next
	}

	next := state

	switch action.Type {
	case ActionPressUp, ActionPressDown:
		// Stepper navigation always commits immediately.
		next.IsDirty = false
	case ActionDragStart:
		next.IsDragging = true
	case ActionDragEnd:
		next.IsDragging = false
	case ActionChange:
		next.Err = nil
		next.Value = action.Value
		if state.IsPressEnterToChange {
			// Displayed value is provisional until committed.
			next.IsDirty = true
		}
	case ActionCommit:
		next.Value = action.Value
		next.IsDirty = false
	case ActionReset:
		next.Err = nil
		next.IsDirty = false
		if action.Value != nil {
			next.Value = action.Value
		} else {
			next.Value = state.InitialValue
		}
	case ActionInvalidate:
		// Validation failure does not erase user input.
		next.Err = action.Err
	}

	return next
}

// IdentityReducer returns the state unchanged. It is the default override.
func IdentityReducer(state State, _ Action) State {
	return state
}

// ComposeReducers chains an override after the base reducer. The base
// always runs first; the override sees the post-base state and the
// original action, never the reverse. A nil override degrades to the base
// alone.
func ComposeReducers(base, override Reducer) Reducer {
	if base == nil {
		base = Reduce
	}
	if override == nil {
		return base
	}
	return func(state State, action Action) State {
		return override(base(state, action), action)
	}
}

// ChainReducers composes any number of reducers left to right, each seeing
// the state produced by the previous one.
func ChainReducers(reducers ...Reducer) Reducer {
	return func(state State, action Action) State {
		for _, r := range reducers {
			if r == nil {
				continue
			}
			state = r(state, action)
		}
		return state
	}
}

// coerceValue turns a direct-assignment payload into an optional string.
// Empty string input is preserved, non-empty input is stringified, and an
// absent payload falls back to the current value.
func coerceValue(raw any, current *string) *string {
	switch v := raw.(type) {
	case nil:
		return current
	case *string:
		if v == nil {
			return current
		}
		s := *v
		return &s
	case string:
		s := v
		return &s
	default:
		s := fmt.Sprint(v)
		return &s
	}
}
