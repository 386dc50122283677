package cpu

import "github.com/sdc-labs/d17b/word"

// opCla loads A from the operand (Clear and Add).
func (s *State) opCla(in Instruction) {
	s.A = s.Memory.Read(in.C, in.S)
}

// opAdd adds the operand to A with saturation.
func (s *State) opAdd(in Instruction) {
	operand := s.Memory.Read(in.C, in.S)
	s.A = word.Add(s.A, operand)
}

// opSub subtracts the operand from A with saturation.
func (s *State) opSub(in Instruction) {
	operand := s.Memory.Read(in.C, in.S)
	s.A = word.Sub(s.A, operand)
}

// opSad performs the split (per-lane) add into A.
func (s *State) opSad(in Instruction) {
	operand := s.Memory.Read(in.C, in.S)
	s.A = word.SplitAdd(s.A, operand)
}

// opSsu performs the split (per-lane) subtract into A.
func (s *State) opSsu(in Instruction) {
	operand := s.Memory.Read(in.C, in.S)
	s.A = word.SplitSub(s.A, operand)
}

// opScl performs Split Compare and Limit on A against the operand.
func (s *State) opScl(in Instruction) {
	operand := s.Memory.Read(in.C, in.S)
	s.A = word.SplitCompareLimit(s.A, operand)
}

// opSto writes A to the operand address without modifying A.
func (s *State) opSto(in Instruction) {
	s.Memory.Write(in.C, in.S, s.A)
}

// opSmp runs the reduced-operand split multiply.
func (s *State) opSmp(in Instruction) {
	operand := s.Memory.Read(in.C, in.S)
	s.multiplySplit(operand)
}

// opMpy runs the full sign-magnitude multiply.
func (s *State) opMpy(in Instruction) {
	operand := s.Memory.Read(in.C, in.S)
	s.multiplyFull(operand)
}

// opMpmOrDiv dispatches opcode 7 between D37C's divider and D17B's
// unsigned multiply (MPM), the spec's canonical mode-overloaded opcode.
func (s *State) opMpmOrDiv(in Instruction) {
	operand := s.Memory.Read(in.C, in.S)
	if s.D37CMode {
		s.divide(operand)
	} else {
		s.multiplyUnsigned(operand)
	}
}
