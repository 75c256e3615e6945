package reactive

import (
	"testing"
)

func TestEffectRunsImmediately(t *testing.T) {
	runs := 0
	CreateEffect(func() Cleanup {
		runs++
		return nil
	})

	if runs != 1 {
		t.Errorf("expected 1 run, got %d", runs)
	}
}

func TestEffectRerunsOnChange(t *testing.T) {
	count := NewSignal(0)
	runs := 0

	CreateEffect(func() Cleanup {
		_ = count.Get()
		runs++
		return nil
	})

	count.Set(1)
	count.Set(2)
	if runs != 3 {
		t.Errorf("expected 3 runs, got %d", runs)
	}
}

func TestEffectCleanupBetweenRuns(t *testing.T) {
	count := NewSignal(0)
	cleanups := 0

	CreateEffect(func() Cleanup {
		_ = count.Get()
		return func() { cleanups++ }
	})

	count.Set(1)
	if cleanups != 1 {
		t.Errorf("expected 1 cleanup before rerun, got %d", cleanups)
	}

	count.Set(2)
	if cleanups != 2 {
		t.Errorf("expected 2 cleanups, got %d", cleanups)
	}
}

func TestEffectDisposeRunsCleanup(t *testing.T) {
	owner := NewOwner(nil)
	cleanups := 0

	WithOwner(owner, func() {
		CreateEffect(func() Cleanup {
			return func() { cleanups++ }
		})
	})

	owner.Dispose()
	if cleanups != 1 {
		t.Errorf("expected 1 cleanup on dispose, got %d", cleanups)
	}
}

func TestEffectStopsAfterDispose(t *testing.T) {
	owner := NewOwner(nil)
	count := NewSignal(0)
	runs := 0

	WithOwner(owner, func() {
		CreateEffect(func() Cleanup {
			_ = count.Get()
			runs++
			return nil
		})
	})

	owner.Dispose()
	count.Set(1)
	if runs != 1 {
		t.Errorf("disposed effect should not rerun, got %d runs", runs)
	}
}

func TestEffectWriteToOwnDependency(t *testing.T) {
	count := NewSignal(0)
	runs := 0

	CreateEffect(func() Cleanup {
		runs++
		if count.Get() < 1 {
			count.Set(count.Peek() + 1)
		}
		return nil
	})

	// One initial run plus one deferred rerun for the in-run write
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}
	if count.Get() != 1 {
		t.Errorf("expected count 1, got %d", count.Get())
	}
}

func TestOnMount(t *testing.T) {
	count := NewSignal(0)
	runs := 0

	OnMount(func() {
		runs++
	})

	count.Set(1)
	if runs != 1 {
		t.Errorf("OnMount should run exactly once, got %d", runs)
	}
}

func TestOnUnmount(t *testing.T) {
	owner := NewOwner(nil)
	called := false

	WithOwner(owner, func() {
		OnUnmount(func() { called = true })
	})

	if called {
		t.Error("OnUnmount fired before dispose")
	}
	owner.Dispose()
	if !called {
		t.Error("OnUnmount did not fire on dispose")
	}
}

func TestOnUpdateSkipsFirstRun(t *testing.T) {
	count := NewSignal(0)
	updates := 0

	OnUpdate(func() { _ = count.Get() }, func() { updates++ })

	if updates != 0 {
		t.Error("OnUpdate callback fired on first run")
	}

	count.Set(1)
	if updates != 1 {
		t.Errorf("expected 1 update, got %d", updates)
	}
}

func TestOwnerDisposeChildren(t *testing.T) {
	parent := NewOwner(nil)
	child := NewOwner(parent)
	order := []string{}

	child.OnCleanup(func() { order = append(order, "child") })
	parent.OnCleanup(func() { order = append(order, "parent") })

	parent.Dispose()

	if len(order) != 2 || order[0] != "child" || order[1] != "parent" {
		t.Errorf("expected children disposed before parent cleanups, got %v", order)
	}
	if !child.Disposed() {
		t.Error("child not disposed")
	}
}

func TestOwnerOnCleanupAfterDispose(t *testing.T) {
	owner := NewOwner(nil)
	owner.Dispose()

	called := false
	owner.OnCleanup(func() { called = true })
	if !called {
		t.Error("cleanup registered after dispose should run immediately")
	}
}
