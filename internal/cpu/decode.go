package cpu

// Instruction is a decode-table entry: everything Step needs to trace,
// validate, and execute one opcode. Mnemonic and Length exist for tracing
// and for the table-completeness invariant; neither drives PC advancement
// or cycle accounting at runtime — the action does that by reading
// operands (which advance PC as they go) and by calling addExtraCycles for
// a taken branch, while Step itself folds BaseMCycles in afterward.
type Instruction struct {
	Mnemonic    string
	Length      uint8
	BaseMCycles uint8
	Action      func(c *CPU)
}

// primaryTable and cbTable are the two 256-entry decode tables described
// in spec. Every non-illegal primary slot and every CB slot is populated
// by an init() function in one of this package's instruction-semantics
// files; illegal slots are left at their zero value (Action == nil).
var primaryTable [256]Instruction
var cbTable [256]Instruction

// define installs one decode-table entry. It panics on a double
// definition, since that always indicates a typo in an opcode constant
// rather than a legitimate runtime condition.
func define(table *[256]Instruction, opcode uint8, mnemonic string, length, mcycles uint8, action func(c *CPU)) {
	if table[opcode].Action != nil {
		panic("cpu: opcode redefined")
	}
	table[opcode] = Instruction{Mnemonic: mnemonic, Length: length, BaseMCycles: mcycles, Action: action}
}

func init() {
	// 0xCB itself is handled specially by Step, which fetches a second
	// byte and dispatches through cbTable before ever consulting this
	// slot. It is given a harmless placeholder so the table-completeness
	// invariant (every non-illegal opcode has an action) holds without
	// exception for the one opcode whose dispatch is special-cased.
	define(&primaryTable, 0xCB, "PREFIX CB", 1, 1, func(c *CPU) {})
}
