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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/core6502/hardware/memory"
	"github.com/jetsetilly/core6502/hardware/memory/cpubus"
	"github.com/jetsetilly/core6502/test"
)

func TestRAM(t *testing.T) {
	ram := memory.NewRAM()

	// every address is readable and writable, including the very top
	for _, a := range []uint16{0x0000, 0x00ff, 0x0100, 0x8000, 0xfffc, 0xffff} {
		v, err := ram.Read(a)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(0), a)

		test.ExpectSuccess(t, ram.Write(a, uint8(a)^0x5a))
		v, err = ram.Read(a)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(a)^0x5a, a)
		test.ExpectEquality(t, ram.Peek(a), uint8(a)^0x5a, a)
	}

	ram.Poke(0x1234, 0x99)
	v, _ := ram.Read(0x1234)
	test.ExpectEquality(t, v, uint8(0x99))

	ram.Clear()
	test.ExpectEquality(t, ram.Peek(0x1234), uint8(0))
	test.ExpectEquality(t, ram.Peek(0xffff), uint8(0))
}

func TestRAMLoad(t *testing.T) {
	ram := memory.NewRAM()

	test.ExpectSuccess(t, ram.Load(cpubus.ProgramOrigin, []uint8{0xa9, 0x05, 0x00}))
	test.ExpectEquality(t, ram.Peek(0x8000), uint8(0xa9))
	test.ExpectEquality(t, ram.Peek(0x8001), uint8(0x05))
	test.ExpectEquality(t, ram.Peek(0x8002), uint8(0x00))

	// exactly fills memory to the top
	test.ExpectSuccess(t, ram.Load(0xfffe, []uint8{0x01, 0x02}))
	test.ExpectEquality(t, ram.Peek(0xffff), uint8(0x02))

	// one byte too many
	test.ExpectFailure(t, ram.Load(0xfffe, []uint8{0x01, 0x02, 0x03}))
}

func TestRAMDump(t *testing.T) {
	ram := memory.NewRAM()
	ram.Poke(0x0010, 0xab)
	ram.Poke(0x02ff, 0xcd)

	s := ram.String()
	lines := strings.Split(s, "\n")
	test.DemandEquality(t, len(lines), 18)
	test.ExpectEquality(t, strings.HasPrefix(lines[3], "001- |  ab"), true)

	lines = strings.Split(ram.Dump(0x02), "\n")
	test.DemandEquality(t, len(lines), 18)
	test.ExpectEquality(t, strings.HasSuffix(lines[17], "cd"), true)
	test.ExpectEquality(t, strings.HasPrefix(lines[17], "02F- | "), true)
}

func TestWords(t *testing.T) {
	ram := memory.NewRAM()

	test.ExpectSuccess(t, cpubus.Write16(ram, cpubus.Reset, 0x8000))
	test.ExpectEquality(t, ram.Peek(0xfffc), uint8(0x00))
	test.ExpectEquality(t, ram.Peek(0xfffd), uint8(0x80))

	w, err := cpubus.Read16(ram, cpubus.Reset)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x8000))

	// high byte wraps to the bottom of memory
	ram.Poke(0xffff, 0x34)
	ram.Poke(0x0000, 0x12)
	w, err = cpubus.Read16(ram, 0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x1234))

	for _, v := range []uint16{0x0000, 0x00ff, 0xff00, 0xffff, 0x1234} {
		test.ExpectSuccess(t, cpubus.Write16(ram, 0x4000, v))
		w, err = cpubus.Read16(ram, 0x4000)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, w, v)
	}
}
