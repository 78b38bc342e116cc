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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode

	// family is filled in when the definition is added to a Table
	Family Family
}

// Mnemonic returns the assembler mnemonic of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Unknown {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s family=%s]",
		defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Family)
}

// IsHalt returns true if the instruction stops the execution loop.
func (defn Definition) IsHalt() bool {
	return defn.Family == Halt
}
