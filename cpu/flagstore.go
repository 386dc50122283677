package cpu

// flagStore writes the (already-updated) accumulator to the
// destination selected by in's 3-bit flag code, after the main
// instruction effect has already happened.
//
// The source manuals label these codes 0, 2, 4, 6, 10, 12, 14, 16 in
// octal, i.e. twice the raw 3-bit field below; we decode the 3-bit
// field directly and keep the octal labels only in comments so the
// two don't drift apart.
func (s *State) flagStore(in Instruction) {
	if !in.Flag {
		return
	}
	code := in.FlagCode()
	sec := in.S
	switch code {
	case 0: // octal 0: none
	case 1: // octal 2: F-loop
		s.Memory.Write(0o52, sec%4, s.A)
	case 2: // octal 4: telemetry pulse, no data, externally observed only
	case 3: // octal 6: channel 50 (modifiable bulk)
		idx := (int(sec) - 2 + 128) % 128
		s.Memory.Write(0o50, uint8(idx), s.A)
	case 4: // octal 10: E-loop
		s.Memory.Write(0o56, sec%8, s.A)
	case 5: // octal 12: L
		s.L = s.A & 0xFFFFFF
	case 6: // octal 14: H-loop
		s.Memory.Write(0o54, sec%16, s.A)
	case 7: // octal 16: U
		s.U = s.A & 0xFFFFFF
	}
}
