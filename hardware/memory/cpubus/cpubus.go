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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses cover the full 16 bit address space.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Reset is the address where the reset address is stored. The address is
// stored little-endian in Reset and Reset+1.
const Reset = uint16(0xfffc)

// ProgramOrigin is the address at which programs are loaded.
const ProgramOrigin = uint16(0x8000)

// Read16 reads a little-endian 16 bit value from the address. The high byte is
// read from the address immediately following, wrapping at the top of memory.
func Read16(mem Memory, address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Write16 writes a 16 bit value to the address in little-endian order.
func Write16(mem Memory, address uint16, data uint16) error {
	if err := mem.Write(address, uint8(data)); err != nil {
		return err
	}
	return mem.Write(address+1, uint8(data>>8))
}
