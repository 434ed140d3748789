package inputfsm

// ControllerBuilder provides a fluent interface for configuring input
// controllers.
type ControllerBuilder struct {
	seed      State
	override  Reducer
	onChange  ChangeFunc
	observers []Observer
	errs      []error
}

// NewControllerBuilder creates a new controller builder
func NewControllerBuilder() *ControllerBuilder {
	return &ControllerBuilder{}
}

// WithValue seeds the widget with a value. It also becomes the
// InitialValue unless WithInitialValue is used.
func (b *ControllerBuilder) WithValue(value string) *ControllerBuilder {
	b.seed.Value = &value
	return b
}

// WithInitialValue overrides the value Reset falls back to
func (b *ControllerBuilder) WithInitialValue(value string) *ControllerBuilder {
	b.seed.InitialValue = &value
	return b
}

// WithPressEnterToChange enables commit-on-enter semantics: Change actions
// mark the state dirty until an explicit Commit resolves them.
func (b *ControllerBuilder) WithPressEnterToChange() *ControllerBuilder {
	b.seed.IsPressEnterToChange = true
	return b
}

// WithReducer sets the override reducer chained after the base transition
func (b *ControllerBuilder) WithReducer(reducer Reducer) *ControllerBuilder {
	if reducer == nil {
		b.errs = append(b.errs, NewConfigurationError("ControllerBuilder", "override reducer must not be nil"))
		return b
	}
	if b.override == nil {
		b.override = reducer
	} else {
		b.override = ChainReducers(b.override, reducer)
	}
	return b
}

// WithNumberReducer installs a numeric override reducer built from opts
func (b *ControllerBuilder) WithNumberReducer(opts NumberOptions) *ControllerBuilder {
	if err := opts.Validate(); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.WithReducer(NewNumberReducer(opts))
}

// WithOnChange sets the change callback
func (b *ControllerBuilder) WithOnChange(onChange ChangeFunc) *ControllerBuilder {
	b.onChange = onChange
	return b
}

// WithObserver registers an observer on the built controller
func (b *ControllerBuilder) WithObserver(observer Observer) *ControllerBuilder {
	if observer == nil {
		b.errs = append(b.errs, NewConfigurationError("ControllerBuilder", "observer must not be nil"))
		return b
	}
	b.observers = append(b.observers, observer)
	return b
}

// Build validates the configuration and creates the controller
func (b *ControllerBuilder) Build() (*Controller, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	controller := NewController(b.seed, b.override, b.onChange)
	for _, observer := range b.observers {
		controller.AddObserver(observer)
	}
	return controller, nil
}
