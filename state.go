package inputfsm

// State is the value object governing a single editable input widget. It is
// replaced wholesale on every dispatched action and never mutated in place.
//
// Value and InitialValue are string pointers so that an absent value is
// distinguishable from an empty one, and so that partial user input such as
// "-" or ".5" round-trips without premature numeric coercion.
type State struct {
	// Value is the current textual representation of the input, nil when
	// the widget has no value yet.
	Value *string

	// InitialValue is the value the widget was seeded with. Reset falls
	// back to it when dispatched without a payload.
	InitialValue *string

	// IsDirty is true when the displayed value has diverged from the last
	// committed value and commit-on-enter semantics are active.
	IsDirty bool

	// IsDragging is true while a pointer drag is adjusting the value. An
	// abandoned drag that never receives DragEnd leaves the flag latched
	// until the next DragStart or DragEnd.
	IsDragging bool

	// Err holds the last validation failure, nil when the value is valid.
	// The payload is opaque to the state machine.
	Err error

	// IsPressEnterToChange is fixed at construction and never mutated by
	// transitions. When set, Change actions mark the state dirty until an
	// explicit Commit resolves them.
	IsPressEnterToChange bool
}

// NewState builds the initial state for a widget from a partial seed. The
// seed's Value becomes the InitialValue unless one was supplied explicitly.
func NewState(seed State) State {
	state := seed
	if state.InitialValue == nil {
		state.InitialValue = state.Value
	}
	return state
}

// Str returns a pointer to s, a convenience for seeding and asserting on
// state values.
func Str(s string) *string {
	return &s
}

// ValueOr returns the current value, or fallback when the value is absent.
func (s State) ValueOr(fallback string) string {
	if s.Value == nil {
		return fallback
	}
	return *s.Value
}

// HasValue reports whether the state carries a value at all.
func (s State) HasValue() bool {
	return s.Value != nil
}

// strPtrEqual compares two optional strings by content.
func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
