package inputfsm

import "testing"

func TestNewEvent(t *testing.T) {
	ev := NewEvent("keydown")

	if ev.GetName() != "keydown" {
		t.Errorf("Expected event name 'keydown', got %s", ev.GetName())
	}
	if ev.GetID() == "" {
		t.Error("Expected non-empty event ID")
	}
	if ev.GetTimestamp().IsZero() {
		t.Error("Expected event timestamp set")
	}
	if ev.GetMetadata() == nil {
		t.Error("Expected non-nil metadata map")
	}
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	a := NewEvent("input")
	b := NewEvent("input")

	if a.GetID() == b.GetID() {
		t.Error("Expected unique event IDs")
	}
}

func TestNewEventWithMeta(t *testing.T) {
	ev := NewEventWithMeta("keydown", map[string]any{MetaShiftKey: true, "key": "ArrowUp"})

	if ev.GetMetadata()["key"] != "ArrowUp" {
		t.Error("Expected metadata carried through")
	}

	nilMeta := NewEventWithMeta("keydown", nil)
	if nilMeta.GetMetadata() == nil {
		t.Error("Expected nil metadata replaced with empty map")
	}
}

func TestIsShiftEvent(t *testing.T) {
	if IsShiftEvent(nil) {
		t.Error("Expected false for nil event")
	}
	if IsShiftEvent(NewEvent("keydown")) {
		t.Error("Expected false without shift metadata")
	}
	if IsShiftEvent(NewEventWithMeta("keydown", map[string]any{MetaShiftKey: false})) {
		t.Error("Expected false for explicit false flag")
	}
	if IsShiftEvent(NewEventWithMeta("keydown", map[string]any{MetaShiftKey: "yes"})) {
		t.Error("Expected false for non-bool flag")
	}
	if !IsShiftEvent(NewEventWithMeta("keydown", map[string]any{MetaShiftKey: true})) {
		t.Error("Expected true for shift flag")
	}
}
