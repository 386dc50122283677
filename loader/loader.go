// Package loader reads a plain-text program listing and preloads it
// into a CPU's memory before a run starts. This is host-side
// convenience, not part of the CPU core: the core only ever sees
// memory.Write calls.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sdc-labs/d17b/cpu"
)

// Load reads one "CH SEC WORD" triple per line, all fields in octal,
// and writes each word into s's memory. Blank lines and lines whose
// first non-space character is '#' are skipped.
func Load(s *cpu.State, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("loader: line %d: expected 3 fields, got %d", lineNo, len(fields))
		}

		ch, err := strconv.ParseUint(fields[0], 8, 8)
		if err != nil {
			return fmt.Errorf("loader: line %d: bad channel %q: %w", lineNo, fields[0], err)
		}
		sec, err := strconv.ParseUint(fields[1], 8, 8)
		if err != nil {
			return fmt.Errorf("loader: line %d: bad sector %q: %w", lineNo, fields[1], err)
		}
		word, err := strconv.ParseUint(fields[2], 8, 32)
		if err != nil {
			return fmt.Errorf("loader: line %d: bad word %q: %w", lineNo, fields[2], err)
		}

		s.Memory.Write(uint8(ch), uint8(sec), uint32(word))
	}
	return scanner.Err()
}
