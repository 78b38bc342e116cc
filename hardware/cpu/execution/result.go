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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/core6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. will be nil if the opcode at Address
	// was not recognised
	Defn *instructions.Definition

	// the operand bytes read during decode, little-endian. only the first
	// ByteCount-1 bytes are meaningful
	InstructionData uint16

	// the number of bytes read during decode, including the opcode
	ByteCount int

	// whether this data has been finalised. the values of the other fields
	// may be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Final = false
}

// String returns the result in the form of a single line of assembly.
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x ", r.Address))

	if r.Defn == nil {
		s.WriteString("???")
		return s.String()
	}

	s.WriteString(r.Defn.Mnemonic())

	operand := r.operand()
	if operand != "" {
		s.WriteRune(' ')
		s.WriteString(operand)
	}

	return s.String()
}

func (r Result) operand() string {
	b := uint8(r.InstructionData)
	w := r.InstructionData

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", b)
	case instructions.Relative:
		return fmt.Sprintf("$%02x", b)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", b)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", b)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", b)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", b)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", b)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", w)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", w)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", w)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", w)
	}

	return ""
}
