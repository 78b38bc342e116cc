// This file is part of core6502.
//
// core6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// core6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with core6502.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/core6502/hardware/cpu/execution"
	"github.com/jetsetilly/core6502/hardware/cpu/instructions"
	"github.com/jetsetilly/core6502/hardware/cpu/registers"
	"github.com/jetsetilly/core6502/hardware/memory/cpubus"
	"github.com/jetsetilly/core6502/logger"
)

// CPU implements the instruction core of the 6502. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// read-modify-write instructions operate on memory through this register
	acc8 registers.Register

	mem          cpubus.Memory
	instructions *instructions.Table

	// the most recent instruction. the Final field will be false if the CPU
	// has been reset and no instruction has been executed since
	LastResult execution.Result

	// the cpu has encountered a BRK instruction. cleared by Reset()
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. All
// registers are zero and the status register has the default value.
func NewCPU(mem cpubus.Memory) (*CPU, error) {
	tab, err := instructions.NewTable()
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: tab,
	}, nil
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// Instructions returns the instruction table used by the CPU.
func (mc *CPU) Instructions() *instructions.Table {
	return mc.instructions
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Load copies the program into memory at cpubus.ProgramOrigin and points the
// reset vector at the origin. Registers are not changed. Use Reset() to start
// execution at the beginning of the program.
func (mc *CPU) Load(program []uint8) error {
	if len(program) > int(cpubus.Reset-cpubus.ProgramOrigin) {
		return fmt.Errorf("%w: %d bytes", ProgramTooLarge, len(program))
	}

	for i, b := range program {
		err := mc.mem.Write(cpubus.ProgramOrigin+uint16(i), b)
		if err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
	}

	err := cpubus.Write16(mc.mem, cpubus.Reset, cpubus.ProgramOrigin)
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	logger.Logf(logger.Allow, "cpu", "loaded %d bytes at %#04x", len(program), cpubus.ProgramOrigin)

	return nil
}

// Reset zeroes the A, X and Y registers, sets the status register to
// registers.DefaultStatus and loads the PC with the address stored in the
// reset vector.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.Halted = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.Status.Reset()

	address, err := cpubus.Read16(mc.mem, cpubus.Reset)
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	mc.PC.Load(address)

	logger.Logf(logger.Allow, "cpu", "reset: PC=%#04x", address)

	return nil
}

// LoadAndRun loads the program, resets the CPU and runs the program until a
// BRK instruction is encountered.
func (mc *CPU) LoadAndRun(program []uint8) error {
	if err := mc.Load(program); err != nil {
		return err
	}
	if err := mc.Reset(); err != nil {
		return err
	}
	return mc.Run()
}

// Run executes instructions until a BRK instruction is encountered or an
// error occurs.
func (mc *CPU) Run() error {
	for {
		halted, err := mc.ExecuteInstruction()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// RunFor executes at most n instructions. Returns true if a BRK instruction
// was encountered. Execution can be resumed with another call to RunFor() if
// the CPU has not halted.
func (mc *CPU) RunFor(n int) (bool, error) {
	for range n {
		halted, err := mc.ExecuteInstruction()
		if err != nil {
			return false, err
		}
		if halted {
			return true, nil
		}
	}
	return mc.Halted, nil
}

// ExecuteInstruction steps the CPU forward one instruction. Returns true if
// the instruction was BRK. Once halted the CPU will execute no further
// instructions until it is reset.
func (mc *CPU) ExecuteInstruction() (bool, error) {
	if mc.Halted {
		return true, nil
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return false, fmt.Errorf("cpu: %w", err)
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	defn, ok := mc.instructions.Lookup(opcode)
	if !ok {
		mc.LastResult.Final = true
		err := &OpcodeError{Opcode: opcode, Address: mc.LastResult.Address}
		logger.Log(logger.Allow, "cpu", err)
		return false, err
	}
	mc.LastResult.Defn = defn

	if defn.IsHalt() {
		mc.Halted = true
		mc.LastResult.Final = true
		logger.Logf(logger.Allow, "cpu", "halted at %#04x", mc.LastResult.Address)
		return true, nil
	}

	err = mc.readOperand(defn)
	if err != nil {
		return false, err
	}

	switch defn.Family {
	case instructions.Access:
		err = mc.access(defn)
	case instructions.Transfer:
		err = mc.transfer(defn)
	case instructions.Arithmetic:
		err = mc.arithmetic(defn)
	case instructions.Shift:
		err = mc.shift(defn)
	case instructions.Bitwise:
		err = mc.bitwise(defn)
	default:
		err = fmt.Errorf("cpu: unhandled instruction family (%s)", defn.Family)
	}
	if err != nil {
		return false, err
	}

	// operand bytes were read relative to the PC as it was before this
	// advance
	mc.PC.Add(uint16(defn.Bytes - 1))

	mc.LastResult.ByteCount = defn.Bytes
	mc.LastResult.Final = true

	return false, nil
}

// readOperand records the operand bytes of the instruction in LastResult
func (mc *CPU) readOperand(defn *instructions.Definition) error {
	var err error

	switch defn.Bytes {
	case 2:
		var v uint8
		v, err = mc.mem.Read(mc.PC.Address())
		mc.LastResult.InstructionData = uint16(v)
	case 3:
		mc.LastResult.InstructionData, err = cpubus.Read16(mc.mem, mc.PC.Address())
	}

	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	return nil
}

// address returns the effective address for the addressing mode using the
// current state of the CPU
func (mc *CPU) address(mode instructions.AddressingMode) (uint16, error) {
	return EffectiveAddress(mc.mem, mode, mc.PC.Address(), mc.X.Value(), mc.Y.Value())
}

// read returns the value at the effective address for the addressing mode
func (mc *CPU) read(mode instructions.AddressingMode) (uint8, error) {
	address, err := mc.address(mode)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(address)
}
