package cpu

import "github.com/sdc-labs/d17b/opcode"

// Step fetches, decodes, and executes a single instruction, then
// advances the location register, current sector, cycle count, and
// (if enabled) the fine countdown timer.
//
// Step checks Halted only on entry: a step that itself runs HPR still
// executes normally and reports StatusRunning, since the machine
// wasn't halted when the step began. The following Step call finds
// Halted already set, does no work beyond the cycle tick, and reports
// StatusHalted — the "end-of-run signal" the sequencer spec describes.
func (s *State) Step() Status {
	if s.Halted {
		s.CycleCount++
		return StatusHalted
	}

	ch := Channel(s.I)
	sec := Sector(s.I)
	w := s.Memory.Read(ch, sec)
	in := Decode(w)

	branched := s.dispatch(in)

	if !branched {
		s.I = MakeLocation(ch, in.Sp)
	}

	s.CurrentSector = (s.CurrentSector + 1) % 128
	s.CycleCount++
	if s.CountdownEnabled && s.FineCountdown > 0 {
		s.FineCountdown--
	}

	return StatusRunning
}

// dispatch routes a decoded instruction to its execution unit and
// reports whether it branched (and so already set I itself).
func (s *State) dispatch(in Instruction) bool {
	switch in.Op {
	case opcode.Shift:
		s.shift(in)
	case opcode.Scl:
		s.opScl(in)
		s.flagStore(in)
	case opcode.TmiTze:
		return s.tmiTze(in)
	case opcode.Reserved:
		// unassigned opcode: no-op
	case opcode.Smp:
		s.opSmp(in)
		s.flagStore(in)
	case opcode.Mpy:
		s.opMpy(in)
		s.flagStore(in)
	case opcode.Tmi:
		return s.tmi(in)
	case opcode.MpmDiv:
		s.opMpmOrDiv(in)
		s.flagStore(in)
	case opcode.Special:
		s.special(in)
	case opcode.Cla:
		s.opCla(in)
		s.flagStore(in)
	case opcode.Tra:
		s.tra(in)
		return true
	case opcode.Sto:
		s.opSto(in)
	case opcode.Sad:
		s.opSad(in)
		s.flagStore(in)
	case opcode.Add:
		s.opAdd(in)
		s.flagStore(in)
	case opcode.Ssu:
		s.opSsu(in)
		s.flagStore(in)
	case opcode.Sub:
		s.opSub(in)
		s.flagStore(in)
	}
	return false
}

// Run calls Step repeatedly until a Step call reports StatusHalted
// (the CPU was already halted when that call began) or maxCycles
// steps have executed, whichever comes first.
func (s *State) Run(maxCycles int) Status {
	for i := 0; i < maxCycles; i++ {
		if s.Step() == StatusHalted {
			return StatusHalted
		}
	}
	if s.Halted {
		return StatusHalted
	}
	return StatusRunning
}
