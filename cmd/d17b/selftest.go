package main

import (
	"fmt"
	"os"

	"github.com/sdc-labs/d17b/cpu"
	"github.com/sdc-labs/d17b/memory"
	"github.com/sdc-labs/d17b/opcode"
)

// instrWord packs a primary opcode, flag bit, next-sector pointer,
// and operand (channel, sector) into a raw instruction word.
func instrWord(op uint8, flag bool, sp uint8, c uint8, s uint8) uint32 {
	w := uint32(op&0xF) << 20
	if flag {
		w |= 1 << 19
	}
	w |= uint32(sp&0xF) << 15
	w |= uint32(c&0x3F) << 9
	w |= uint32(s&0x7F) << 2
	return w
}

type scenario struct {
	name string
	run  func() error
}

// runSelfTests executes the fixed scenarios from the machine's
// acceptance suite and reports pass/fail for each.
func runSelfTests() {
	scenarios := []scenario{
		{"S1 add program", scenarioAdd},
		{"S2 division", scenarioDivide},
		{"S3 division by zero", scenarioDivideByZero},
		{"S4 rotate left", scenarioRotateLeft},
		{"S5 sign-magnitude subtract", scenarioSubtract},
		{"S6 TMI vs TZE dispatch", scenarioModeDispatch},
	}

	failed := 0
	for _, sc := range scenarios {
		if err := sc.run(); err != nil {
			fmt.Printf("FAIL %s: %s\n", sc.name, err)
			failed++
			continue
		}
		fmt.Printf("PASS %s\n", sc.name)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func scenarioAdd() error {
	s := cpu.New(memory.D17BWords, false)
	s.Memory.Write(0, 0, instrWord(opcode.Cla, false, 2, 0, 1))
	s.Memory.Write(0, 1, 5)
	s.Memory.Write(0, 2, instrWord(opcode.Add, false, 4, 0, 3))
	s.Memory.Write(0, 3, 3)
	s.Memory.Write(0, 4, instrWord(opcode.Sto, false, 5, 0, 6))
	s.Memory.Write(0, 5, instrWord(opcode.Special, false, 6, 0, 0x09<<1))
	s.Memory.Write(0, 6, 0)

	s.Run(10)

	if !s.Halted {
		return fmt.Errorf("expected halted")
	}
	if s.A != 8 {
		return fmt.Errorf("expected A=8, got %d", s.A)
	}
	if s.Memory.Read(0, 6) != 8 {
		return fmt.Errorf("expected [0,6]=8, got %d", s.Memory.Read(0, 6))
	}
	if s.CycleCount != 5 {
		return fmt.Errorf("expected cycle_count=5, got %d", s.CycleCount)
	}
	return nil
}

func scenarioDivide() error {
	s := cpu.New(memory.D37CWords, true)
	s.A = 0
	s.L = 24
	s.Memory.Write(0, 0, instrWord(opcode.MpmDiv, false, 2, 0, 1))
	s.Memory.Write(0, 1, 4)
	s.Memory.Write(0, 2, instrWord(opcode.Special, false, 0, 0, 0x09<<1))

	s.Run(10)

	if s.A != 6 {
		return fmt.Errorf("expected A=6, got %d", s.A)
	}
	if s.L != 0 {
		return fmt.Errorf("expected L=0, got %d", s.L)
	}
	if s.Error {
		return fmt.Errorf("expected error=false")
	}
	return nil
}

func scenarioDivideByZero() error {
	s := cpu.New(memory.D37CWords, true)
	s.A = 0
	s.L = 100
	s.Memory.Write(0, 0, instrWord(opcode.MpmDiv, false, 2, 0, 1))
	s.Memory.Write(0, 1, 0)
	s.Memory.Write(0, 2, instrWord(opcode.Special, false, 0, 0, 0x09<<1))

	s.Run(10)

	if !s.Error {
		return fmt.Errorf("expected error=true")
	}
	if s.A != 0 || s.L != 100 {
		return fmt.Errorf("expected A, L unchanged, got A=%d L=%d", s.A, s.L)
	}
	return nil
}

func scenarioRotateLeft() error {
	s := cpu.New(memory.D17BWords, false)
	s.A = 0x800001
	shiftS := uint8(opcode.SubSRL)<<3 | 1 // sub-op SubSRL, count 1
	s.Memory.Write(0, 0, instrWord(opcode.Shift, false, 0, 0, shiftS))
	s.D37CMode = true // SubSRL dispatches to ALC (rotate left) only in D37C mode

	s.Step()

	if s.A != 0x000003 {
		return fmt.Errorf("expected A=0x000003, got 0x%06x", s.A)
	}
	return nil
}

func scenarioSubtract() error {
	s := cpu.New(memory.D17BWords, false)
	s.A = 2
	s.Memory.Write(0, 0, instrWord(opcode.Sub, false, 0, 0, 1))
	s.Memory.Write(0, 1, 5)

	s.Step()

	if s.A != 0x800003 {
		return fmt.Errorf("expected A=0x800003, got 0x%06x", s.A)
	}
	return nil
}

func scenarioModeDispatch() error {
	s37 := cpu.New(memory.D37CWords, true)
	s37.A = 0
	s37.Memory.Write(0, 0, instrWord(opcode.TmiTze, false, 0, 0, 40))
	s37.Step()
	if cpu.Channel(s37.I) != 0 || cpu.Sector(s37.I) != 40 {
		return fmt.Errorf("D37C: expected branch taken to (0,40), I=%#x", s37.I)
	}

	s17 := cpu.New(memory.D17BWords, false)
	s17.A = 0
	s17.Memory.Write(0, 0, instrWord(opcode.TmiTze, false, 3, 0, 40))
	s17.Step()
	if cpu.Sector(s17.I) != 3 {
		return fmt.Errorf("D17B: expected branch NOT taken, next sector=3, got I=%#x", s17.I)
	}
	return nil
}
