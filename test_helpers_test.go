package inputfsm

import (
	"math"
	"strconv"
	"testing"
)

// TestObserver is a recording observer that captures all notifications
type TestObserver struct {
	Actions          []ActionRecord
	ValueChanges     []ValueChangeRecord
	Commits          []*string
	ValidationErrors []error
	DragStarts       int
	DragEnds         int
	Resets           int
	Callbacks        []CallbackRecord
}

type ActionRecord struct {
	Action Action
	From   State
	To     State
}

type ValueChangeRecord struct {
	Previous *string
	Next     *string
	Action   Action
}

type CallbackRecord struct {
	Value string
	Meta  ChangeMeta
}

func NewTestObserver() *TestObserver {
	return &TestObserver{}
}

func (o *TestObserver) OnAction(action Action, from State, to State) {
	o.Actions = append(o.Actions, ActionRecord{Action: action, From: from, To: to})
}

func (o *TestObserver) OnValueChange(previous *string, next *string, action Action) {
	o.ValueChanges = append(o.ValueChanges, ValueChangeRecord{Previous: previous, Next: next, Action: action})
}

func (o *TestObserver) OnValueCommit(value *string, action Action) {
	o.Commits = append(o.Commits, value)
}

func (o *TestObserver) OnValidationError(err error, action Action) {
	o.ValidationErrors = append(o.ValidationErrors, err)
}

func (o *TestObserver) OnDragStart(action Action) {
	o.DragStarts++
}

func (o *TestObserver) OnDragEnd(action Action) {
	o.DragEnds++
}

func (o *TestObserver) OnReset(action Action) {
	o.Resets++
}

func (o *TestObserver) OnChangeCallback(value string, meta ChangeMeta) {
	o.Callbacks = append(o.Callbacks, CallbackRecord{Value: value, Meta: meta})
}

func (o *TestObserver) ActionCount() int {
	return len(o.Actions)
}

func (o *TestObserver) LastAction() *ActionRecord {
	if len(o.Actions) == 0 {
		return nil
	}
	return &o.Actions[len(o.Actions)-1]
}

// AssertValue fails the test when the state's value differs from expected
func AssertValue(t *testing.T, state State, expected string) {
	t.Helper()
	if state.Value == nil {
		t.Fatalf("Expected value '%s', got absent value", expected)
	}
	if *state.Value != expected {
		t.Errorf("Expected value '%s', got '%s'", expected, *state.Value)
	}
}

// AssertNoValue fails the test when the state carries a value
func AssertNoValue(t *testing.T, state State) {
	t.Helper()
	if state.Value != nil {
		t.Errorf("Expected absent value, got '%s'", *state.Value)
	}
}

// AssertDirty fails the test when the dirty flag differs from expected
func AssertDirty(t *testing.T, state State, expected bool) {
	t.Helper()
	if state.IsDirty != expected {
		t.Errorf("Expected IsDirty=%v, got %v", expected, state.IsDirty)
	}
}

// clampReducer is a sample override clamping every parseable value to
// [min, max], leaving unparseable values alone
func clampReducer(min, max float64) Reducer {
	return func(state State, action Action) State {
		if state.Value == nil {
			return state
		}
		n, err := strconv.ParseFloat(*state.Value, 64)
		if err != nil {
			return state
		}
		clamped := math.Min(max, math.Max(min, n))
		if clamped == n {
			return state
		}
		next := state
		next.Value = Str(strconv.FormatFloat(clamped, 'f', -1, 64))
		return next
	}
}

// recordingChangeFunc collects change-callback firings
func recordingChangeFunc(records *[]CallbackRecord) ChangeFunc {
	return func(value string, meta ChangeMeta) {
		*records = append(*records, CallbackRecord{Value: value, Meta: meta})
	}
}
