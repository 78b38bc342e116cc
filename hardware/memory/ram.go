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

package memory

import (
	"fmt"
	"strings"
)

// Size of the address space in bytes.
const Size = 0x10000

// RAM is a flat area of memory covering the entire address space.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, Size),
	}
}

// String returns a hex dump of the zero page.
func (ram *RAM) String() string {
	return ram.Dump(0)
}

// Dump returns a hex dump of a single page of memory.
func (ram *RAM) Dump(page uint8) string {
	origin := uint16(page) << 8

	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%02X%X- | ", page, y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[origin+uint16((y*16)+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Read is an implementation of cpubus.Memory. It never returns an error.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Write is an implementation of cpubus.Memory. It never returns an error.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address] = data
	return nil
}

// Peek returns the value at the address.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.memory[address]
}

// Poke sets the value at the address.
func (ram *RAM) Poke(address uint16, data uint8) {
	ram.memory[address] = data
}

// Clear sets every address to zero.
func (ram *RAM) Clear() {
	clear(ram.memory)
}

// Load copies data into memory starting at origin. Data that does not fit
// between origin and the top of memory is not copied and the function returns
// false.
func (ram *RAM) Load(origin uint16, data []uint8) bool {
	if int(origin)+len(data) > Size {
		return false
	}
	copy(ram.memory[origin:], data)
	return true
}
