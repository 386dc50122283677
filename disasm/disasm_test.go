package disasm

import (
	"strings"
	"testing"

	"github.com/sdc-labs/d17b/cpu"
	"github.com/sdc-labs/d17b/memory"
)

func TestInstructionFormatsFlagAndOperand(t *testing.T) {
	// Op=13 (ADD), Flag set, C=0o52, S=0o17
	w := uint32(13)<<20 | 1<<19 | 0o52<<9 | 0o17<<2
	got := Instruction(w)

	if got != "ADD* 52,017" {
		t.Errorf("Instruction(w) = %q, want %q", got, "ADD* 52,017")
	}
}

func TestInstructionWithoutFlag(t *testing.T) {
	w := uint32(9) << 20 // CLA, flag clear, C=0, S=0
	got := Instruction(w)

	if strings.Contains(got, "*") {
		t.Errorf("Instruction(w) = %q, want no flag marker", got)
	}
}

func TestStateReportsHaltedAndError(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)
	s.Halted = true
	s.Error = true

	got := State(s)
	if !strings.Contains(got, "halted=true") || !strings.Contains(got, "error=true") {
		t.Errorf("State(s) = %q, want halted=true and error=true", got)
	}
}
