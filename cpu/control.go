package cpu

import "github.com/sdc-labs/d17b/word"

// tra is an unconditional jump: I <- (C, S).
func (s *State) tra(in Instruction) {
	s.I = MakeLocation(in.C, in.S)
}

// tmi branches if A's sign bit is set, regardless of mode.
func (s *State) tmi(in Instruction) bool {
	if word.Negative(s.A) {
		s.I = MakeLocation(in.C, in.S)
		return true
	}
	return false
}

// tmiTze is the mode-overloaded opcode 2: D37C branches on A's
// magnitude being zero (TZE); D17B branches on A's sign bit (TMI).
func (s *State) tmiTze(in Instruction) bool {
	taken := false
	if s.D37CMode {
		taken = word.IsZero(s.A)
	} else {
		taken = word.Negative(s.A)
	}
	if taken {
		s.I = MakeLocation(in.C, in.S)
	}
	return taken
}
