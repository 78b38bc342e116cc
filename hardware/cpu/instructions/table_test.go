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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/core6502/hardware/cpu/instructions"
	"github.com/jetsetilly/core6502/test"
)

func TestTable(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Len(), 108)

	defns := tab.Definitions()
	test.DemandEquality(t, len(defns), tab.Len())

	for i, d := range defns {
		// sorted by opcode
		if i > 0 {
			test.ExpectEquality(t, defns[i-1].OpCode < d.OpCode, true, d.OpCode)
		}

		// consistent with the lookup
		l, ok := tab.Lookup(d.OpCode)
		test.DemandSuccess(t, ok, d.OpCode)
		test.ExpectEquality(t, *l, d)

		test.ExpectEquality(t, d.Bytes, d.AddressingMode.Bytes(), d.OpCode)
		test.ExpectInequality(t, d.Operator, instructions.Unknown, d.OpCode)
		test.ExpectEquality(t, d.Cycles >= 2, true, d.OpCode)
	}
}

func TestLookup(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	type expected struct {
		opcode   uint8
		mnemonic string
		mode     instructions.AddressingMode
		family   instructions.Family
	}

	for _, e := range []expected{
		{0x00, "BRK", instructions.Implied, instructions.Halt},
		{0xa9, "LDA", instructions.Immediate, instructions.Access},
		{0xa5, "LDA", instructions.ZeroPage, instructions.Access},
		{0xb5, "LDA", instructions.ZeroPageIndexedX, instructions.Access},
		{0xad, "LDA", instructions.Absolute, instructions.Access},
		{0xbd, "LDA", instructions.AbsoluteIndexedX, instructions.Access},
		{0xb9, "LDA", instructions.AbsoluteIndexedY, instructions.Access},
		{0xa1, "LDA", instructions.IndexedIndirect, instructions.Access},
		{0xb1, "LDA", instructions.IndirectIndexed, instructions.Access},
		{0xb6, "LDX", instructions.ZeroPageIndexedY, instructions.Access},
		{0x85, "STA", instructions.ZeroPage, instructions.Access},
		{0xaa, "TAX", instructions.Implied, instructions.Transfer},
		{0x8a, "TXA", instructions.Implied, instructions.Transfer},
		{0x69, "ADC", instructions.Immediate, instructions.Arithmetic},
		{0xe9, "SBC", instructions.Immediate, instructions.Arithmetic},
		{0xe8, "INX", instructions.Implied, instructions.Arithmetic},
		{0xe6, "INC", instructions.ZeroPage, instructions.Arithmetic},
		{0x0a, "ASL", instructions.Accumulator, instructions.Shift},
		{0x2a, "ROL", instructions.Accumulator, instructions.Shift},
		{0x66, "ROR", instructions.ZeroPage, instructions.Shift},
		{0x29, "AND", instructions.Immediate, instructions.Bitwise},
		{0x49, "EOR", instructions.Immediate, instructions.Bitwise},
		{0x09, "ORA", instructions.Immediate, instructions.Bitwise},
	} {
		d, ok := tab.Lookup(e.opcode)
		test.DemandSuccess(t, ok, e.opcode)
		test.ExpectEquality(t, d.OpCode, e.opcode)
		test.ExpectEquality(t, d.Mnemonic(), e.mnemonic, e.opcode)
		test.ExpectEquality(t, d.AddressingMode, e.mode, e.opcode)
		test.ExpectEquality(t, d.Family, e.family, e.opcode)
		test.ExpectEquality(t, d.IsHalt(), e.family == instructions.Halt, e.opcode)
	}

	// opcodes that are not in the table. these are either undocumented or
	// belong to instructions that are not emulated (JMP, BEQ, NOP, PHA)
	for _, opcode := range []uint8{0x02, 0x4c, 0xf0, 0xea, 0x48, 0xff, 0x89} {
		d, ok := tab.Lookup(opcode)
		test.ExpectFailure(t, ok, opcode)
		test.ExpectEquality(t, d == nil, true, opcode)
	}
}

func TestDefinitionString(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	d, _ := tab.Lookup(0xa9)
	test.ExpectEquality(t, d.String(), "a9 LDA +2bytes (2 cycles) [mode=Immediate family=Access]")

	var u instructions.Definition
	test.ExpectEquality(t, u.String(), "undecoded instruction")
	test.ExpectEquality(t, u.Mnemonic(), "???")
}

func TestAddressingModeBytes(t *testing.T) {
	test.ExpectEquality(t, instructions.Implied.Bytes(), 1)
	test.ExpectEquality(t, instructions.Accumulator.Bytes(), 1)
	test.ExpectEquality(t, instructions.Immediate.Bytes(), 2)
	test.ExpectEquality(t, instructions.ZeroPageIndexedY.Bytes(), 2)
	test.ExpectEquality(t, instructions.IndirectIndexed.Bytes(), 2)
	test.ExpectEquality(t, instructions.Absolute.Bytes(), 3)
	test.ExpectEquality(t, instructions.AbsoluteIndexedY.Bytes(), 3)
	test.ExpectEquality(t, instructions.Indirect.Bytes(), 3)

	test.ExpectEquality(t, instructions.Implied.HasAddress(), false)
	test.ExpectEquality(t, instructions.Accumulator.HasAddress(), false)
	test.ExpectEquality(t, instructions.ZeroPage.HasAddress(), true)
}
