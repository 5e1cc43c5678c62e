package spmd

import "testing"

// TestNewFactory verifies a fresh factory starts with nothing registered
// and an empty shared-buffer slot.
func TestNewFactory(t *testing.T) {
	f := NewFactory()

	if f.Sync != nil {
		t.Error("fresh factory has a SyncFunc registered")
	}
	if f.SyncData != nil {
		t.Error("fresh factory has auxiliary data")
	}
	if f.shared != nil {
		t.Error("fresh factory has a live shared buffer")
	}
	if f.sharedErr != nil {
		t.Errorf("fresh factory carries shared error %v", f.sharedErr)
	}
}

// TestNewControl_Placeholders verifies controls start with placeholder
// identity and reference their factory.
func TestNewControl_Placeholders(t *testing.T) {
	f := NewFactory()
	c := f.NewControl()

	if c.Tid != 0 || c.Tsize != 0 {
		t.Errorf("fresh control = {Tid: %d, Tsize: %d}, want placeholder zeros", c.Tid, c.Tsize)
	}
	if c.Factory() != f {
		t.Error("control does not reference its factory")
	}
}

// TestSync_InvokesCallback verifies Sync forwards the control's identity and
// the factory's auxiliary data to the registered callback.
func TestSync_InvokesCallback(t *testing.T) {
	type call struct {
		tid, tsize int
		data       any
	}

	var got call
	aux := &struct{ tag string }{tag: "aux"}

	f := NewFactory()
	f.Sync = func(tid, tsize int, data any) {
		got = call{tid: tid, tsize: tsize, data: data}
	}
	f.SyncData = aux

	c := f.NewControl()
	c.Tid = 3
	c.Tsize = 7
	c.Sync()

	if got.tid != 3 || got.tsize != 7 {
		t.Errorf("callback saw (tid=%d, tsize=%d), want (3, 7)", got.tid, got.tsize)
	}
	if got.data != any(aux) {
		t.Errorf("callback saw data %v, want the factory's SyncData", got.data)
	}
}

// TestSync_PanicsWithoutCallback verifies the fail-fast path for the
// unregistered-callback misuse.
func TestSync_PanicsWithoutCallback(t *testing.T) {
	f := NewFactory()
	c := f.NewControl()
	c.Tsize = 1

	defer func() {
		if recover() == nil {
			t.Error("Sync without a registered SyncFunc did not panic")
		}
	}()
	c.Sync()
}
