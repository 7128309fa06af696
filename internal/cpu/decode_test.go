package cpu

import "testing"

var illegalPrimaryOpcodes = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
	0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

func TestPrimaryTableCompleteness(t *testing.T) {
	for opcode := 0; opcode < 256; opcode++ {
		desc := primaryTable[opcode]
		illegal := illegalPrimaryOpcodes[uint8(opcode)]
		if illegal {
			if desc.Action != nil {
				t.Errorf("opcode %#02x is in the illegal set but has an action", opcode)
			}
			continue
		}
		if desc.Action == nil {
			t.Errorf("opcode %#02x has no action and is not in the illegal set", opcode)
		}
		if desc.Length < 1 || desc.Length > 3 {
			t.Errorf("opcode %#02x declares length %d, want 1..3", opcode, desc.Length)
		}
	}
}

func TestCBTableCompleteness(t *testing.T) {
	for opcode := 0; opcode < 256; opcode++ {
		desc := cbTable[opcode]
		if desc.Action == nil {
			t.Errorf("CB opcode %#02x has no action", opcode)
		}
		if desc.Length != 2 {
			t.Errorf("CB opcode %#02x declares length %d, want 2", opcode, desc.Length)
		}
	}
}

func TestIllegalPrimarySetSize(t *testing.T) {
	if len(illegalPrimaryOpcodes) != 11 {
		t.Errorf("illegal primary opcode set has %d entries, want 11", len(illegalPrimaryOpcodes))
	}
}
