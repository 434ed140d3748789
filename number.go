package inputfsm

import (
	"math"
	"strconv"
	"strings"
)

// NumberOptions configures a numeric override reducer. Use
// DefaultNumberOptions as the base so the unbounded Min/Max defaults are
// preserved.
type NumberOptions struct {
	// Min and Max bound committed and stepped values.
	Min float64
	Max float64

	// Step is the increment applied by PressUp/PressDown and per unit of
	// drag movement. Stepped values are rounded to a multiple of it.
	Step float64

	// ShiftStep replaces Step while the shift modifier is held.
	ShiftStep float64
}

// DefaultNumberOptions returns unbounded options with a step of 1 and a
// shift step of 10.
func DefaultNumberOptions() NumberOptions {
	return NumberOptions{
		Min:       math.Inf(-1),
		Max:       math.Inf(1),
		Step:      1,
		ShiftStep: 10,
	}
}

// Validate checks the options for inconsistencies
func (o NumberOptions) Validate() error {
	if o.Step <= 0 {
		return NewConfigurationError("NumberOptions", "step must be positive")
	}
	if o.ShiftStep <= 0 {
		return NewConfigurationError("NumberOptions", "shift step must be positive")
	}
	if o.Min > o.Max {
		return NewConfigurationError("NumberOptions", "min must not exceed max")
	}
	return nil
}

// NewNumberReducer builds the override reducer for a numeric input widget.
// Layered after the base transition it adds:
//
//   - PressUp/PressDown spin the value by Step (ShiftStep while shift is
//     held), rounded to a step multiple and clamped to [Min, Max].
//   - Drag movements spin by one step per unit of upward pointer travel.
//   - Commit clamps the value to [Min, Max]; a value that does not parse
//     as a number keeps the displayed text and records a validation error.
//
// Change actions are left untouched so partial input such as "-" or "1e"
// survives until commit.
func NewNumberReducer(opts NumberOptions) Reducer {
	o := opts.normalize()
	return func(state State, action Action) State {
		switch action.Type {
		case ActionPressUp:
			return o.spin(state, 1, IsShiftEvent(action.Event))
		case ActionPressDown:
			return o.spin(state, -1, IsShiftEvent(action.Event))
		case ActionDrag:
			if action.Drag == nil {
				return state
			}
			// Upward pointer travel increases the value.
			amount := math.Round(-action.Drag.Y)
			if amount == 0 {
				return state
			}
			return o.spin(state, amount, action.Drag.ShiftKey)
		case ActionCommit:
			n, err := parseNumber(state.Value)
			if err != nil {
				next := state
				next.Err = NewNotANumberError(state.Value)
				return next
			}
			next := state
			next.Err = nil
			next.Value = Str(formatNumber(o.clamp(n)))
			return next
		}
		return state
	}
}

// normalize fills zero-valued steps with defaults
func (o NumberOptions) normalize() NumberOptions {
	if o.Step <= 0 {
		o.Step = 1
	}
	if o.ShiftStep <= 0 {
		o.ShiftStep = 10 * o.Step
	}
	return o
}

// spin adjusts the value by amount steps. An absent or unparseable value
// spins from zero.
func (o NumberOptions) spin(state State, amount float64, shift bool) State {
	step := o.Step
	if shift {
		step = o.ShiftStep
	}
	current, err := parseNumber(state.Value)
	if err != nil {
		current = 0
	}
	next := o.clamp(roundToStep(current+amount*step, step))

	out := state
	out.Err = nil
	out.Value = Str(formatNumber(next))
	return out
}

func (o NumberOptions) clamp(v float64) float64 {
	return math.Min(o.Max, math.Max(o.Min, v))
}

// roundToStep rounds v to the nearest multiple of step
func roundToStep(v, step float64) float64 {
	return math.Round(v/step) * step
}

func parseNumber(value *string) (float64, error) {
	if value == nil {
		return 0, NewNotANumberError(nil)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(*value), 64)
	if err != nil {
		return 0, NewNotANumberError(value)
	}
	return n, nil
}

// formatNumber renders a number the way it was typed: no exponent, no
// trailing zeros. Values are snapped to nine decimals first to absorb
// float rounding noise from repeated stepping.
func formatNumber(v float64) string {
	if !math.IsInf(v, 0) {
		v = math.Round(v*1e9) / 1e9
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
