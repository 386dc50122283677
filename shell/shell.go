/*
 * D17B/D37C - Interactive shell.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package shell is the interactive REPL around a cpu.State: step,
// run, dump, peek/poke memory, and disassemble. It is a CLI boundary
// concern, not part of the CPU core; it only ever calls State's
// public surface.
package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/sdc-labs/d17b/cpu"
	"github.com/sdc-labs/d17b/disasm"
)

var commandNames = []string{"s", "r", "d", "m", "l", "q"}

// Run starts the console REPL against s, blocking until the user
// quits or aborts the prompt.
func Run(s *cpu.State) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var matches []string
		for _, name := range commandNames {
			if strings.HasPrefix(name, partial) {
				matches = append(matches, name)
			}
		}
		return matches
	})

	for {
		input, err := line.Prompt("d17b> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			slog.Error("error reading line: " + err.Error())
			return
		}

		line.AppendHistory(input)
		quit, err := dispatch(s, input)
		if err != nil {
			fmt.Println("Error: " + err.Error())
		}
		if quit {
			return
		}
	}
}

// dispatch processes a single command line against s and reports
// whether the shell should quit.
func dispatch(s *cpu.State, commandLine string) (bool, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "s": // step one instruction
		status := s.Step()
		fmt.Println(disasm.State(s))
		if status == cpu.StatusHalted {
			fmt.Println("halted")
		}
		return false, nil

	case "r": // run to completion or 100000 cycles
		status := s.Run(100000)
		fmt.Println(disasm.State(s))
		if status == cpu.StatusHalted {
			fmt.Println("halted")
		} else {
			fmt.Println("cycle budget exhausted")
		}
		return false, nil

	case "d": // dump machine state
		fmt.Println(disasm.State(s))
		return false, nil

	case "m": // m CH SEC [WORD] - peek or poke memory
		return false, memCommand(s, fields[1:])

	case "l": // l CH SEC - disassemble the word at (CH, SEC)
		return false, disasmCommand(s, fields[1:])

	case "q": // quit
		return true, nil

	default:
		return false, fmt.Errorf("unknown command: %s", fields[0])
	}
}

func memCommand(s *cpu.State, args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return errors.New("usage: m CH SEC [WORD]")
	}
	ch, err := strconv.ParseUint(args[0], 8, 8)
	if err != nil {
		return fmt.Errorf("bad channel %q: %w", args[0], err)
	}
	sec, err := strconv.ParseUint(args[1], 8, 8)
	if err != nil {
		return fmt.Errorf("bad sector %q: %w", args[1], err)
	}

	if len(args) == 3 {
		word, err := strconv.ParseUint(args[2], 8, 32)
		if err != nil {
			return fmt.Errorf("bad word %q: %w", args[2], err)
		}
		s.Memory.Write(uint8(ch), uint8(sec), uint32(word))
		return nil
	}

	fmt.Printf("%06o %06o: %08o\n", ch, sec, s.Memory.Read(uint8(ch), uint8(sec)))
	return nil
}

func disasmCommand(s *cpu.State, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: l CH SEC")
	}
	ch, err := strconv.ParseUint(args[0], 8, 8)
	if err != nil {
		return fmt.Errorf("bad channel %q: %w", args[0], err)
	}
	sec, err := strconv.ParseUint(args[1], 8, 8)
	if err != nil {
		return fmt.Errorf("bad sector %q: %w", args[1], err)
	}

	w := s.Memory.Read(uint8(ch), uint8(sec))
	fmt.Println(disasm.Instruction(w))
	return nil
}
