/*
   Unified memory substrate for the D17B/D37C guidance computer.

   A single read(ch, sec) / write(ch, sec, word) surface dispatches
   between the bulk disc memory and the seven rapid-access loops.
   Loop channels are structural fields, not map entries, so the hot
   path never hashes a channel number.

   Modeled on this lineage's low-level memory package: fixed-size
   backing storage, masked stores, and silent no-ops outside the
   populated range.
*/
package memory

const wordMask = 0xFFFFFF

// Loop channel numbers, given in the machine's native octal.
const (
	ChanF = 0o52
	ChanH = 0o54
	ChanE = 0o56
	ChanU = 0o60
	ChanL = 0o64
	ChanV = 0o70
	ChanR = 0o72
)

// Bulk channels below this number (and sectors below 128) address the
// disc array; everything else either hits a loop or misses entirely.
const bulkChannelLimit = 47

const sectorsPerChannel = 128

// D17BWords and D37CWords are the populated bulk-memory sizes named
// in the machine's data model.
const (
	D17BWords = 2944
	D37CWords = 7222
)

// Memory is the unified disc + rapid-access-loop substrate. It is
// meant to be embedded by value in CPU state: the L loop and the
// CPU's lower accumulator are the same field.
type Memory struct {
	Bulk []uint32 // flat (channel*128 + sector) backing store, len == limit

	F [4]uint32
	H [16]uint32
	E [8]uint32
	U uint32
	L uint32
	V [4]uint32
	R [4]uint32
}

// New returns a Memory with bulk storage sized to limit words.
func New(limit int) Memory {
	return Memory{Bulk: make([]uint32, limit)}
}

// Reset clears every loop and bulk cell without reallocating backing
// storage.
func (m *Memory) Reset() {
	for i := range m.Bulk {
		m.Bulk[i] = 0
	}
	m.F = [4]uint32{}
	m.H = [16]uint32{}
	m.E = [8]uint32{}
	m.U = 0
	m.L = 0
	m.V = [4]uint32{}
	m.R = [4]uint32{}
}

// Read returns the word at (channel, sector), or 0 if the address is
// out of range. Loop reads reduce the sector modulo the loop's size.
func (m *Memory) Read(ch, sec uint8) uint32 {
	switch ch {
	case ChanF:
		return m.F[sec%4]
	case ChanH:
		return m.H[sec%16]
	case ChanE:
		return m.E[sec%8]
	case ChanU:
		return m.U
	case ChanL:
		return m.L
	case ChanV:
		return m.V[sec%4]
	case ChanR:
		return m.R[sec%4]
	default:
		if ch < bulkChannelLimit && int(sec) < sectorsPerChannel {
			addr := int(ch)*sectorsPerChannel + int(sec)
			if addr < len(m.Bulk) {
				return m.Bulk[addr]
			}
		}
		return 0
	}
}

// Write stores w at (channel, sector), masked to 24 bits. Out-of-range
// writes, including unpopulated bulk addresses, are silently ignored.
func (m *Memory) Write(ch, sec uint8, w uint32) {
	w &= wordMask
	switch ch {
	case ChanF:
		m.F[sec%4] = w
	case ChanH:
		m.H[sec%16] = w
	case ChanE:
		m.E[sec%8] = w
	case ChanU:
		m.U = w
	case ChanL:
		m.L = w
	case ChanV:
		m.V[sec%4] = w
	case ChanR:
		m.R[sec%4] = w
	default:
		if ch < bulkChannelLimit && int(sec) < sectorsPerChannel {
			addr := int(ch)*sectorsPerChannel + int(sec)
			if addr < len(m.Bulk) {
				m.Bulk[addr] = w
			}
		}
	}
}

// IsLoopChannel reports whether ch addresses one of the rapid-access
// loops rather than bulk disc memory.
func IsLoopChannel(ch uint8) bool {
	switch ch {
	case ChanF, ChanH, ChanE, ChanU, ChanL, ChanV, ChanR:
		return true
	default:
		return false
	}
}
