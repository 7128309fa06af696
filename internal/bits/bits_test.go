package bits

import "testing"

func TestSetClearBit(t *testing.T) {
	var v uint8 = 0x00
	v = SetBit(v, 3)
	if v != 0x08 {
		t.Errorf("SetBit(0x00, 3) = %#02x, want 0x08", v)
	}
	v = ClearBit(v, 3)
	if v != 0x00 {
		t.Errorf("ClearBit(0x08, 3) = %#02x, want 0x00", v)
	}
}

func TestIsBitSet(t *testing.T) {
	if !IsBitSet(uint8(0x80), 7) {
		t.Errorf("IsBitSet(0x80, 7) = false, want true")
	}
	if IsBitSet(uint8(0x80), 6) {
		t.Errorf("IsBitSet(0x80, 6) = true, want false")
	}
}

func TestToggleBit(t *testing.T) {
	v := ToggleBit(uint8(0x00), 0)
	if v != 0x01 {
		t.Errorf("ToggleBit(0x00, 0) = %#02x, want 0x01", v)
	}
	v = ToggleBit(v, 0)
	if v != 0x00 {
		t.Errorf("ToggleBit(0x01, 0) = %#02x, want 0x00", v)
	}
}

func TestConditionalBitToggle(t *testing.T) {
	v := ConditionalBitToggle(uint8(0x00), 4, true)
	if v != 0x10 {
		t.Errorf("ConditionalBitToggle(0x00, 4, true) = %#02x, want 0x10", v)
	}
	v = ConditionalBitToggle(v, 4, false)
	if v != 0x00 {
		t.Errorf("ConditionalBitToggle(0x10, 4, false) = %#02x, want 0x00", v)
	}
}

func TestFromPairRoundTrip(t *testing.T) {
	for _, v := range []uint16{0x0000, 0xFFFF, 0x1234, 0xABCD, 0x00FF, 0xFF00} {
		got := FromPair(FromHigh(v), FromLow(v))
		if got != v {
			t.Errorf("FromPair(FromHigh(%#04x), FromLow(%#04x)) = %#04x, want %#04x", v, v, got, v)
		}
	}
}

func TestFromHighFromLow(t *testing.T) {
	if got := FromHigh(0xABCD); got != 0xAB {
		t.Errorf("FromHigh(0xABCD) = %#02x, want 0xAB", got)
	}
	if got := FromLow(0xABCD); got != 0xCD {
		t.Errorf("FromLow(0xABCD) = %#02x, want 0xCD", got)
	}
}
