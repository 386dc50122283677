package cpu

import (
	"github.com/sdc-labs/d17b/opcode"
	"github.com/sdc-labs/d17b/word"
)

// special decodes and executes the SPECIAL/IO family (opcode Special).
// (C, S) carries no operand address here; SpecialSubOp selects the
// sub-operation from S.
func (s *State) special(in Instruction) {
	switch in.SpecialSubOp() {
	case opcode.SubHPR: // halt and proceed
		s.Halted = true
	case opcode.SubRSD: // reset detector
		s.Detector = false
	case opcode.SubEFC: // enable fine countdown
		s.CountdownEnabled = true
	case opcode.SubHFC: // halt fine countdown
		s.CountdownEnabled = false
	case opcode.SubLPRa, opcode.SubLPRb: // load phase register from low 3 bits of S
		s.P = in.S & 0x7
	case opcode.SubDIA: // discrete input A into the accumulator
		s.A = s.DiscreteInA & word.Mask
	case opcode.SubDIB: // discrete input B into the accumulator
		s.A = s.DiscreteInB & word.Mask
	case opcode.SubDOA: // accumulator out to discrete output A
		s.DiscreteOutA = s.A
	case opcode.SubVOA: // emit signed voltage from to_signed(A >> 15)
		s.VoltageOut[0] = word.ReduceVoltage(s.A)
	case opcode.SubVOB:
		s.VoltageOut[1] = word.ReduceVoltage(s.A)
	case opcode.SubVOC:
		s.VoltageOut[2] = word.ReduceVoltage(s.A)
	case opcode.SubBOA: // emit the top 2 bits of A
		s.BinaryOut[0] = uint8((s.A >> 22) & 0x3)
	case opcode.SubBOB:
		s.BinaryOut[1] = uint8((s.A >> 22) & 0x3)
	case opcode.SubBOC:
		s.BinaryOut[2] = uint8((s.A >> 22) & 0x3)
	case opcode.SubANA: // AND accumulator with L
		s.A &= s.L
	case opcode.SubORA: // OR accumulator with L; D37C only
		if s.D37CMode {
			s.A |= s.L
		}
	case opcode.SubMIM: // set the sign bit (make minus)
		s.A |= word.SignBit
	case opcode.SubCOM: // complement the sign bit
		s.A = word.Complement(s.A)
	default:
		// unknown sub-op: no-op
	}
}
