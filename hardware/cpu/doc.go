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

// Package cpu emulates the instruction core of the 6502 microprocessor. Like
// all 8-bit processors of the era, the 6502 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. The interface defines the
// memory operations required by the CPU.
//
// A program is copied into memory with Load(), after which Reset() will point
// the program counter at the start of the program. Run() executes instructions
// until a BRK instruction is encountered.
//
//	mc, _ := cpu.NewCPU(memory.NewRAM())
//
//	_ = mc.Load([]uint8{0xa9, 0x05, 0xaa, 0x00})
//	_ = mc.Reset()
//	_ = mc.Run()
//
// LoadAndRun() does all three steps in one call. For finer control,
// ExecuteInstruction() executes exactly one instruction and RunFor() executes
// a bounded number of instructions.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// An opcode that does not appear in the instruction table is an error. The
// error can be tested for with errors.Is(err, UnrecognisedOpcode) and will be
// of type *OpcodeError, which gives the opcode and the address at which it
// was found.
package cpu
