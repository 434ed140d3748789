package inputfsm

import (
	"bytes"
	"strings"
	"testing"
)

func TestObserverManager_AddRemoveCount(t *testing.T) {
	manager := NewObserverManager()
	if manager.Count() != 0 {
		t.Fatalf("Expected empty manager, got %d observers", manager.Count())
	}

	a := NewTestObserver()
	b := NewTestObserver()
	manager.AddObserver(a)
	manager.AddObserver(b)
	manager.AddObserver(nil)

	if manager.Count() != 2 {
		t.Errorf("Expected 2 observers, got %d", manager.Count())
	}

	manager.RemoveObserver(a)
	if manager.Count() != 1 {
		t.Errorf("Expected 1 observer after removal, got %d", manager.Count())
	}
}

func TestObserverManager_RoutesExtendedNotifications(t *testing.T) {
	manager := NewObserverManager()
	observer := NewTestObserver()
	manager.AddObserver(observer)

	from := NewState(State{Value: Str("1")})
	to := Reduce(from, NewCommitAction("2", nil))
	manager.NotifyAction(NewCommitAction("2", nil), from, to)

	if len(observer.Commits) != 1 {
		t.Error("Expected commit notification")
	}
	if len(observer.ValueChanges) != 1 {
		t.Error("Expected value change notification")
	}

	// Same value commit: no value-change notification.
	observer = NewTestObserver()
	manager = NewObserverManager()
	manager.AddObserver(observer)
	to = Reduce(to, NewCommitAction("2", nil))
	manager.NotifyAction(NewCommitAction("2", nil), to, to)

	if len(observer.ValueChanges) != 0 {
		t.Error("Expected no value change notification for identical values")
	}
}

func TestBaseObserver_ImplementsExtendedObserver(t *testing.T) {
	var observer Observer = &BaseObserver{}
	if _, ok := observer.(ExtendedObserver); !ok {
		t.Error("Expected BaseObserver to satisfy ExtendedObserver")
	}
}

func TestLoggingObserver_WritesCommitsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	observer := NewLoggingObserver(LogInfo, "Test", &buf)

	c := NewController(State{Value: Str("1")}, nil, nil)
	c.AddObserver(observer)
	c.Commit("2", nil)

	out := buf.String()
	if !strings.Contains(out, "[Test]") {
		t.Errorf("Expected prefix in output, got: %s", out)
	}
	if !strings.Contains(out, "Committed value: '2'") {
		t.Errorf("Expected commit log line, got: %s", out)
	}
}

func TestLoggingObserver_LevelFiltersActions(t *testing.T) {
	var buf bytes.Buffer
	observer := NewLoggingObserver(LogInfo, "", &buf)

	c := NewController(State{Value: Str("1")}, nil, nil)
	c.AddObserver(observer)
	c.Change("2", nil)

	if buf.Len() != 0 {
		t.Errorf("Expected per-action debug log suppressed at info level, got: %s", buf.String())
	}

	observer.SetFormatter(DefaultLogFormatter)
	debug := NewLoggingObserver(LogDebug, "", &buf)
	c.AddObserver(debug)
	c.Change("3", nil)

	if !strings.Contains(buf.String(), "[DEBUG] Action CHANGE") {
		t.Errorf("Expected debug action log, got: %s", buf.String())
	}
}

func TestLoggingObserver_LogsValidationErrors(t *testing.T) {
	var buf bytes.Buffer
	observer := NewLoggingObserver(LogError, "", &buf)

	c := NewController(State{Value: Str("abc")}, nil, nil)
	c.AddObserver(observer)
	c.Invalidate(NewValidationError("amount", Str("abc"), "must be numeric"), nil)

	if !strings.Contains(buf.String(), "[ERROR] Validation failed") {
		t.Errorf("Expected error log, got: %s", buf.String())
	}
}

func TestDefaultLogFormatter(t *testing.T) {
	got := DefaultLogFormatter(LogWarning, "value %s", "x")
	if got != "[WARN] value x" {
		t.Errorf("Unexpected formatted message: %s", got)
	}
}
