package interrupts

import "testing"

func TestRequestAndClear(t *testing.T) {
	s := NewService()
	s.Request(Timer)
	if s.Flag&(1<<Timer) == 0 {
		t.Errorf("Request(Timer) did not set the Timer bit in Flag")
	}
	s.Clear(Timer)
	if s.Flag&(1<<Timer) != 0 {
		t.Errorf("Clear(Timer) did not clear the Timer bit in Flag")
	}
}

func TestHasPendingRequiresEnable(t *testing.T) {
	s := NewService()
	s.Request(VBlank)
	if s.HasPending() {
		t.Errorf("HasPending() = true before VBlank was enabled in IE")
	}
	s.Enable |= 1 << VBlank
	if !s.HasPending() {
		t.Errorf("HasPending() = false after VBlank enabled and requested")
	}
}

func TestNextPriorityOrder(t *testing.T) {
	s := NewService()
	s.Enable = 0x1F
	s.Request(Joypad)
	s.Request(Timer)
	s.Request(VBlank)

	src, ok := s.Next()
	if !ok || src != VBlank {
		t.Errorf("Next() = (%v, %v), want (VBlank, true)", src, ok)
	}

	s.Clear(VBlank)
	src, ok = s.Next()
	if !ok || src != Timer {
		t.Errorf("Next() = (%v, %v), want (Timer, true) after VBlank cleared", src, ok)
	}
}

func TestNextNoneReady(t *testing.T) {
	s := NewService()
	s.Request(VBlank) // not enabled
	if _, ok := s.Next(); ok {
		t.Errorf("Next() reported a pending source with IE=0")
	}
}

func TestVectors(t *testing.T) {
	cases := map[Source]uint16{
		VBlank: 0x0040,
		LCD:    0x0048,
		Timer:  0x0050,
		Serial: 0x0058,
		Joypad: 0x0060,
	}
	for src, want := range cases {
		if got := Vector(src); got != want {
			t.Errorf("Vector(%v) = %#04x, want %#04x", src, got, want)
		}
	}
}
