package cpu

import "testing"

func TestDecodeFields(t *testing.T) {
	// Op=9 (CLA), Flag=1, Sp=5, C=0o52, S=0o77
	w := uint32(9)<<20 | 1<<19 | 5<<15 | 0o52<<9 | 0o77<<2
	in := Decode(w)

	if in.Op != 9 {
		t.Errorf("Op = %d, want 9", in.Op)
	}
	if !in.Flag {
		t.Errorf("Flag = false, want true")
	}
	if in.Sp != 5 {
		t.Errorf("Sp = %d, want 5", in.Sp)
	}
	if in.C != 0o52 {
		t.Errorf("C = %#o, want %#o", in.C, 0o52)
	}
	if in.S != 0o77 {
		t.Errorf("S = %#o, want %#o", in.S, 0o77)
	}
}

func TestFlagCodeIsLow3BitsOfS(t *testing.T) {
	in := Instruction{S: 0o73} // binary ...011
	if got := in.FlagCode(); got != 0o3 {
		t.Errorf("FlagCode() = %#o, want %#o", got, 0o3)
	}
}

func TestShiftSubOpAndCount(t *testing.T) {
	in := Instruction{S: uint8(0x0B<<3 | 5)}
	if got := in.ShiftSubOp(); got != 0x0B {
		t.Errorf("ShiftSubOp() = %#x, want 0x0B", got)
	}
	if got := in.ShiftCount(); got != 5 {
		t.Errorf("ShiftCount() = %d, want 5", got)
	}
}

func TestShiftCountZeroMeansEight(t *testing.T) {
	in := Instruction{S: uint8(0x0B << 3)}
	if got := in.ShiftCount(); got != 8 {
		t.Errorf("ShiftCount() = %d, want 8", got)
	}
}

func TestSpecialSubOp(t *testing.T) {
	in := Instruction{S: 0x09 << 1}
	if got := in.SpecialSubOp(); got != 0x09 {
		t.Errorf("SpecialSubOp() = %#x, want 0x09", got)
	}
}
