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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/core6502/hardware/cpu/execution"
	"github.com/jetsetilly/core6502/hardware/cpu/instructions"
	"github.com/jetsetilly/core6502/test"
)

func lookup(t *testing.T, tab *instructions.Table, opcode uint8) *instructions.Definition {
	t.Helper()
	defn, ok := tab.Lookup(opcode)
	if !ok {
		t.Fatalf("opcode %#02x not in table", opcode)
	}
	return defn
}

func TestResultString(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	var r execution.Result
	test.ExpectEquality(t, r.String(), "0000 ???")

	r = execution.Result{Address: 0x8000, Defn: lookup(t, tab, 0xa9), InstructionData: 0x05, ByteCount: 2, Final: true}
	test.ExpectEquality(t, r.String(), "8000 LDA #$05")

	r = execution.Result{Address: 0x8002, Defn: lookup(t, tab, 0xaa), ByteCount: 1, Final: true}
	test.ExpectEquality(t, r.String(), "8002 TAX")

	r = execution.Result{Address: 0x8003, Defn: lookup(t, tab, 0x0a), ByteCount: 1, Final: true}
	test.ExpectEquality(t, r.String(), "8003 ASL A")

	r = execution.Result{Address: 0x8004, Defn: lookup(t, tab, 0x9d), InstructionData: 0x0200, ByteCount: 3, Final: true}
	test.ExpectEquality(t, r.String(), "8004 STA $0200,X")

	r = execution.Result{Address: 0x8007, Defn: lookup(t, tab, 0xb1), InstructionData: 0x10, ByteCount: 2, Final: true}
	test.ExpectEquality(t, r.String(), "8007 LDA ($10),Y")

	r = execution.Result{Address: 0x8009, Defn: lookup(t, tab, 0xa1), InstructionData: 0x20, ByteCount: 2, Final: true}
	test.ExpectEquality(t, r.String(), "8009 LDA ($20,X)")
}

func TestResultValidity(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	r = execution.Result{Address: 0x8000, Defn: lookup(t, tab, 0xa9), InstructionData: 0x05, ByteCount: 2}
	test.ExpectFailure(t, r.IsValid())

	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 3
	test.ExpectFailure(t, r.IsValid())

	r.ByteCount = 2
	r.InstructionData = 0x0105
	test.ExpectFailure(t, r.IsValid())

	r = execution.Result{Address: 0x8000, Defn: lookup(t, tab, 0xe8), InstructionData: 0x01, ByteCount: 1, Final: true}
	test.ExpectFailure(t, r.IsValid())

	r.Reset()
	test.ExpectEquality(t, r.Final, false)
	test.ExpectEquality(t, r.Defn == nil, true)
	test.ExpectFailure(t, r.IsValid())
}
