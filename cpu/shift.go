package cpu

import (
	"github.com/sdc-labs/d17b/opcode"
	"github.com/sdc-labs/d17b/word"
)

// shift decodes and executes the shift/rotate family (opcode SHIFT).
// (C, S) is not an operand address here: S instead carries the
// sub-operation and count.
func (s *State) shift(in Instruction) {
	n := in.ShiftCount()
	switch in.ShiftSubOp() {
	case opcode.SubSAL: // split left shift, both lanes, truncating
		high := (word.HighLane(s.A) << n) & 0xFFF
		low := (word.LowLane(s.A) << n) & 0xFFF
		s.A = word.JoinLanes(high, low)
	case opcode.SubALS: // left shift full 24 bits, masking
		s.A = (s.A << n) & word.Mask
	case opcode.SubSLL: // left-shift high lane only
		high := (word.HighLane(s.A) << n) & 0xFFF
		s.A = word.JoinLanes(high, word.LowLane(s.A))
	case opcode.SubSRL:
		if s.D37CMode { // ALC: rotate left 24 bits
			s.A = word.RotateLeft24(s.A, n)
		} else { // D17B SRL: left-shift low lane only
			low := (word.LowLane(s.A) << n) & 0xFFF
			s.A = word.JoinLanes(word.HighLane(s.A), low)
		}
	case opcode.SubSAR: // split right shift, both lanes, logical
		high := word.HighLane(s.A) >> n
		low := word.LowLane(s.A) >> n
		s.A = word.JoinLanes(high, low)
	case opcode.SubARS: // right shift full 24 bits, logical
		s.A = (s.A >> n) & word.Mask
	case opcode.SubSLR: // right-shift high lane only
		high := word.HighLane(s.A) >> n
		s.A = word.JoinLanes(high, word.LowLane(s.A))
	case opcode.SubSRR:
		if s.D37CMode { // ARC: rotate right 24 bits
			s.A = word.RotateRight24(s.A, n)
		} else { // D17B SRR: right-shift low lane only
			low := word.LowLane(s.A) >> n
			s.A = word.JoinLanes(word.HighLane(s.A), low)
		}
	case opcode.SubCOA: // emit low 4 bits to character output boundary
		s.CharOut = uint8(s.A & 0xF)
	default:
		// unknown sub-op: no-op
	}
}
