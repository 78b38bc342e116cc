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

	"github.com/jetsetilly/core6502/hardware/cpu/instructions"
	"github.com/jetsetilly/core6502/hardware/memory/cpubus"
)

// EffectiveAddress returns the address an instruction operates on, for the
// addressing mode. The pc argument is the address of the first operand byte,
// ie. the address immediately following the opcode. The program counter is
// never changed.
//
// All index arithmetic wraps. Zero page addressing wraps at 8 bits and all
// other addressing wraps at 16 bits.
func EffectiveAddress(mem cpubus.Memory, mode instructions.AddressingMode, pc uint16, x uint8, y uint8) (uint16, error) {
	switch mode {
	case instructions.Immediate:
		// the operand is the byte at the PC itself
		return pc, nil

	case instructions.ZeroPage:
		v, err := mem.Read(pc)
		if err != nil {
			return 0, err
		}
		return uint16(v), nil

	case instructions.ZeroPageIndexedX:
		v, err := mem.Read(pc)
		if err != nil {
			return 0, err
		}
		return uint16(v + x), nil

	case instructions.ZeroPageIndexedY:
		v, err := mem.Read(pc)
		if err != nil {
			return 0, err
		}
		return uint16(v + y), nil

	case instructions.Absolute, instructions.Indirect:
		// no dereference of the indirect address. the only instruction that
		// uses indirect addressing is JMP and that is not part of the
		// instruction set
		return cpubus.Read16(mem, pc)

	case instructions.AbsoluteIndexedX:
		v, err := cpubus.Read16(mem, pc)
		if err != nil {
			return 0, err
		}
		return v + uint16(x), nil

	case instructions.AbsoluteIndexedY:
		v, err := cpubus.Read16(mem, pc)
		if err != nil {
			return 0, err
		}
		return v + uint16(y), nil

	case instructions.IndexedIndirect:
		v, err := mem.Read(pc)
		if err != nil {
			return 0, err
		}
		return readZeroPagePointer(mem, v+x)

	case instructions.IndirectIndexed:
		v, err := mem.Read(pc)
		if err != nil {
			return 0, err
		}
		ptr, err := readZeroPagePointer(mem, v)
		if err != nil {
			return 0, err
		}
		return ptr + uint16(y), nil

	case instructions.Relative:
		v, err := mem.Read(pc)
		if err != nil {
			return 0, err
		}
		return pc + uint16(v), nil
	}

	return 0, fmt.Errorf("%w: %s", UnsupportedAddressingMode, mode)
}

// readZeroPagePointer reads a 16 bit pointer from the zero page. the high
// byte of a pointer at 0xff is read from 0x00.
func readZeroPagePointer(mem cpubus.Memory, zp uint8) (uint16, error) {
	lo, err := mem.Read(uint16(zp))
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(uint16(zp + 1))
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}
