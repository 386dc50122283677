package cpu

import (
	"testing"

	"github.com/sdc-labs/d17b/memory"
	"github.com/sdc-labs/d17b/opcode"
	"github.com/sdc-labs/d17b/word"
)

func specialInstr(subOp uint8) Instruction {
	return Instruction{Op: opcode.Special, S: subOp << 1}
}

func TestSpecialHPRHalts(t *testing.T) {
	s := New(memory.D17BWords, false)
	s.special(specialInstr(opcode.SubHPR))

	if !s.Halted {
		t.Errorf("Halted = false, want true")
	}
}

func TestSpecialDIALoadsDiscreteInputA(t *testing.T) {
	s := New(memory.D17BWords, false)
	s.DiscreteInA = 0x123456
	s.special(specialInstr(opcode.SubDIA))

	if s.A != 0x123456 {
		t.Errorf("A = %#x, want %#x", s.A, 0x123456)
	}
}

func TestSpecialANAMasksWithL(t *testing.T) {
	s := New(memory.D17BWords, false)
	s.A = 0xFF00FF
	s.L = 0x0F0F0F
	s.special(specialInstr(opcode.SubANA))

	if s.A != 0x0F000F {
		t.Errorf("A = %#x, want %#x", s.A, 0x0F000F)
	}
}

func TestSpecialORAOnlyOnD37C(t *testing.T) {
	s17 := New(memory.D17BWords, false)
	s17.A = 0xF00000
	s17.L = 0x000F00
	s17.special(specialInstr(opcode.SubORA))
	if s17.A != 0xF00000 {
		t.Errorf("D17B: ORA should be a no-op, A = %#x", s17.A)
	}

	s37 := New(memory.D37CWords, true)
	s37.A = 0xF00000
	s37.L = 0x000F00
	s37.special(specialInstr(opcode.SubORA))
	if s37.A != 0xF00F00 {
		t.Errorf("D37C: ORA = %#x, want %#x", s37.A, 0xF00F00)
	}
}

func TestSpecialMIMSetsSignBit(t *testing.T) {
	s := New(memory.D17BWords, false)
	s.A = 5
	s.special(specialInstr(opcode.SubMIM))

	if !word.Negative(s.A) {
		t.Errorf("A sign not set after MIM")
	}
}

func TestSpecialCOMTogglesSignBit(t *testing.T) {
	s := New(memory.D17BWords, false)
	s.A = word.FromSigned(5)
	s.special(specialInstr(opcode.SubCOM))
	if !word.Negative(s.A) {
		t.Errorf("expected sign set after first COM")
	}
	s.special(specialInstr(opcode.SubCOM))
	if word.Negative(s.A) {
		t.Errorf("expected sign clear after second COM")
	}
}

func TestSpecialVOAReducesFromBit15(t *testing.T) {
	s := New(memory.D17BWords, false)
	s.A = 5
	s.special(specialInstr(opcode.SubVOA))
	if s.VoltageOut[0] != 0 {
		t.Errorf("VoltageOut[0] = %d, want 0 (to_signed(5>>15) == 0)", s.VoltageOut[0])
	}

	s.A = 0xFFFFFF // sign set, all magnitude bits set
	s.special(specialInstr(opcode.SubVOA))
	if s.VoltageOut[0] != -255 {
		t.Errorf("VoltageOut[0] = %d, want -255", s.VoltageOut[0])
	}
}

func TestSpecialBOATopTwoBits(t *testing.T) {
	s := New(memory.D17BWords, false)
	s.A = 0x800000 // sign bit set, magnitude 0
	s.special(specialInstr(opcode.SubBOA))
	if s.BinaryOut[0] != 0b10 {
		t.Errorf("BinaryOut[0] = %#b, want 0b10", s.BinaryOut[0])
	}
}

func TestSpecialUnknownSubOpIsNoOp(t *testing.T) {
	s := New(memory.D17BWords, false)
	s.A = 0x42
	s.special(Instruction{Op: opcode.Special, S: 0}) // sub-op 0, unassigned

	if s.A != 0x42 {
		t.Errorf("A = %#x, want unchanged", s.A)
	}
}
