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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/core6502/hardware/cpu/registers"
	rtest "github.com/jetsetilly/core6502/hardware/cpu/registers/test"
	"github.com/jetsetilly/core6502/test"
)

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	rtest.EquateRegisters(t, pc, 0)
	test.ExpectEquality(t, pc.Label(), "PC")

	// loading & addition
	pc.Load(127)
	rtest.EquateRegisters(t, pc, 127)
	pc.Add(2)
	rtest.EquateRegisters(t, pc, 129)
	test.ExpectEquality(t, pc.String(), "0081")

	// wrap around top of memory
	pc.Load(0xffff)
	wrapped := pc.Add(1)
	test.ExpectEquality(t, wrapped, true)
	rtest.EquateRegisters(t, pc, 0)

	pc.Load(0xfffe)
	wrapped = pc.Add(1)
	test.ExpectEquality(t, wrapped, false)
	rtest.EquateRegisters(t, pc, 0xffff)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0)
	rtest.EquateRegisters(t, sp, 0)
	test.ExpectEquality(t, sp.Label(), "SP")

	sp.Load(0xfd)
	rtest.EquateRegisters(t, sp, 0xfd)
	test.ExpectEquality(t, sp.Address(), uint16(0x01fd))
}
