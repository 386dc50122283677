/*
   Primary opcode table for the D17B/D37C instruction set.

   Modeled on this lineage's opcodemap package: a flat table of
   constants shared by the decoder and the disassembler so the two
   never drift apart.
*/
package opcode

// Primary opcode values, the top 4 bits of every instruction word.
const (
	Shift    = 0
	Scl      = 1
	TmiTze   = 2
	Reserved = 3
	Smp      = 4
	Mpy      = 5
	Tmi      = 6
	MpmDiv   = 7
	Special  = 8
	Cla      = 9
	Tra      = 10
	Sto      = 11
	Sad      = 12
	Add      = 13
	Ssu      = 14
	Sub      = 15
)

// Mnemonic gives each primary opcode's disassembly name, indexed by
// the 4-bit opcode. Mode-overloaded opcodes carry both names.
var Mnemonic = [16]string{
	Shift:    "SHIFT",
	Scl:      "SCL",
	TmiTze:   "TMI/TZE",
	Reserved: "?",
	Smp:      "SMP",
	Mpy:      "MPY",
	Tmi:      "TMI",
	MpmDiv:   "MPM/DIV",
	Special:  "SPEC",
	Cla:      "CLA",
	Tra:      "TRA",
	Sto:      "STO",
	Sad:      "SAD",
	Add:      "ADD",
	Ssu:      "SSU",
	Sub:      "SUB",
}

// Shift sub-opcodes, decoded from bits (S>>3)&0x1F.
const (
	SubSAL = 0x08
	SubALS = 0x09
	SubSLL = 0x0A
	SubSRL = 0x0B // D17B: SRL (left-shift low lane). D37C: ALC (rotate left).
	SubSAR = 0x0C
	SubARS = 0x0D
	SubSLR = 0x0E
	SubSRR = 0x0F // D17B: SRR (right-shift low lane). D37C: ARC (rotate right).
	SubCOA = 0x10
)

// Special/IO sub-opcodes, decoded from bits (S>>1)&0x3F.
const (
	SubBOC = 0x01
	SubBOA = 0x04
	SubBOB = 0x05
	SubRSD = 0x08
	SubHPR = 0x09
	SubDOA = 0x0B
	SubVOA = 0x0C
	SubVOB = 0x0D
	SubVOC = 0x0E
	SubORA = 0x10
	SubANA = 0x11
	SubMIM = 0x12
	SubCOM = 0x13
	SubDIB = 0x14
	SubDIA = 0x15
	SubHFC = 0x18
	SubEFC = 0x19
	SubLPRa = 0x1E
	SubLPRb = 0x1F
)
