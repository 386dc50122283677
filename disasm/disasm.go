/*
	   D17B/D37C Disassembler

		Copyright (c) 2024, Richard Cornwell

		Permission is hereby granted, free of charge, to any person obtaining a
		copy of this software and associated documentation files (the "Software"),
		to deal in the Software without restriction, including without limitation
		the rights to use, copy, modify, merge, publish, distribute, sublicense,
		and/or sell copies of the Software, and to permit persons to whom the
		Software is furnished to do so, subject to the following conditions:

		The above copyright notice and this permission notice shall be included in
		all copies or substantial portions of the Software.

		THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
		IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
		FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
		RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
		IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
		CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

// Package disasm renders a single instruction word as a short
// mnemonic, the debug surface's read-only view into program text.
package disasm

import (
	"strings"

	"github.com/sdc-labs/d17b/cpu"
	"github.com/sdc-labs/d17b/opcode"
	"github.com/sdc-labs/d17b/util/octal"
)

// Instruction renders w as "NAME[*] CC,SSS": NAME is the primary
// opcode's mnemonic (both names, slash-joined, for mode-overloaded
// opcodes), "*" appears when FLAG is set, and CC/SSS are the operand
// channel and sector in octal.
func Instruction(w uint32) string {
	in := cpu.Decode(w)

	var b strings.Builder
	b.WriteString(opcode.Mnemonic[in.Op])
	if in.Flag {
		b.WriteByte('*')
	}
	b.WriteByte(' ')
	octal.FormatChannel(&b, in.C)
	b.WriteByte(',')
	octal.FormatSector(&b, in.S)
	return b.String()
}

// State renders a one-line machine snapshot: A, L, the location
// register, the cycle count, and the halted and error flags. It does
// not include the mode, the other registers, the loops, or any memory
// contents. It observes state only; it never mutates it.
func State(s *cpu.State) string {
	var b strings.Builder
	b.WriteString("A=")
	b.WriteString(octal.Word(s.A))
	b.WriteString(" L=")
	b.WriteString(octal.Word(s.L))
	b.WriteString(" I=")
	octal.FormatChannel(&b, cpu.Channel(s.I))
	b.WriteByte(',')
	octal.FormatSector(&b, cpu.Sector(s.I))
	b.WriteString(" cycles=")
	b.WriteString(decimal(s.CycleCount))
	b.WriteString(" halted=")
	if s.Halted {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
	b.WriteString(" error=")
	if s.Error {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
	return b.String()
}

func decimal(v uint64) string {
	if v == 0 {
		return "0"
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}
