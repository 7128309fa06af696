package bus

import "testing"

func TestReadWriteByte(t *testing.T) {
	r := NewRAM()
	r.WriteByte(0xC000, 0x42)
	if got := r.ReadByte(0xC000); got != 0x42 {
		t.Errorf("ReadByte(0xC000) = %#02x, want 0x42", got)
	}
}

func TestWriteWordHighAtLowAddress(t *testing.T) {
	r := NewRAM()
	r.WriteWord(0xC000, 0x1234)
	if got := r.ReadByte(0xC000); got != 0x12 {
		t.Errorf("byte at 0xC000 = %#02x, want 0x12 (high byte)", got)
	}
	if got := r.ReadByte(0xC001); got != 0x34 {
		t.Errorf("byte at 0xC001 = %#02x, want 0x34 (low byte)", got)
	}
}

func TestReadWordRoundTrip(t *testing.T) {
	r := NewRAM()
	r.WriteWord(0xD000, 0xBEEF)
	if got := r.ReadWord(0xD000); got != 0xBEEF {
		t.Errorf("ReadWord(0xD000) = %#04x, want 0xBEEF", got)
	}
}

func TestIORegisterAccess(t *testing.T) {
	r := NewRAM()
	r.WriteIORegister(LY, 0x90)
	if got := r.ReadIORegister(LY); got != 0x90 {
		t.Errorf("ReadIORegister(LY) = %#02x, want 0x90", got)
	}
	r.WriteIORegister(IE, 0x1F)
	if got := r.ReadIORegister(IE); got != 0x1F {
		t.Errorf("ReadIORegister(IE) = %#02x, want 0x1F", got)
	}
}

func TestWaveRAMAddressing(t *testing.T) {
	r := NewRAM()
	r.WriteIORegister(WaveRAM(0), 0xAA)
	r.WriteIORegister(WaveRAM(15), 0xBB)
	if got := r.ReadIORegister(WaveRAM(0)); got != 0xAA {
		t.Errorf("WaveRAM(0) = %#02x, want 0xAA", got)
	}
	if got := r.ReadIORegister(WaveRAM(15)); got != 0xBB {
		t.Errorf("WaveRAM(15) = %#02x, want 0xBB", got)
	}
	if WaveRAM(15) != WaveRAMEnd {
		t.Errorf("WaveRAM(15) = %#04x, want WaveRAMEnd %#04x", WaveRAM(15), WaveRAMEnd)
	}
}

func TestLoadAt(t *testing.T) {
	r := NewRAM()
	r.LoadAt(0x0100, []byte{0x3E, 0x42})
	if got := r.ReadByte(0x0100); got != 0x3E {
		t.Errorf("ReadByte(0x0100) = %#02x, want 0x3E", got)
	}
	if got := r.ReadByte(0x0101); got != 0x42 {
		t.Errorf("ReadByte(0x0101) = %#02x, want 0x42", got)
	}
}
