// Package inputfsm provides a state container for editable input widgets,
// supporting controlled and uncontrolled value flow, dirty tracking,
// drag adjustment, and pluggable interception of state transitions by the
// embedding component.
//
// A widget owns one Controller, seeded from a partial State. UI events are
// dispatched as tagged Actions; the pure base transition resolves each
// action and an optional override reducer layers domain rules such as
// numeric clamping on top, always after the base. After each render the
// host calls Controller.Sync with the externally supplied value, which
// fires the change callback once per settled value change and resyncs
// internal state to external updates, never while user input is in flight.
package inputfsm
