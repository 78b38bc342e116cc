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

package cpu_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/core6502/hardware/cpu"
	"github.com/jetsetilly/core6502/hardware/cpu/registers"
	"github.com/jetsetilly/core6502/hardware/memory"
	"github.com/jetsetilly/core6502/test"
)

// errFault is returned by the mock memory when an address has been marked as
// faulty
var errFault = errors.New("memory fault")

// mockMem is a flat memory that can be made to fail on a specified address.
type mockMem struct {
	internal []uint8
	fault    map[uint16]bool
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, memory.Size),
		fault:    make(map[uint16]bool),
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if mem.fault[address] {
		return 0, fmt.Errorf("%w: read %#04x", errFault, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if mem.fault[address] {
		return fmt.Errorf("%w: write %#04x", errFault, address)
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

// newCPU returns a new CPU attached to a new RAM instance
func newCPU(t *testing.T) (*cpu.CPU, *memory.RAM) {
	t.Helper()
	mem := memory.NewRAM()
	mc, err := cpu.NewCPU(mem)
	test.DemandSuccess(t, err)
	return mc, mem
}

// loadAndRun is a wrapper for CPU.LoadAndRun() that fails the test on error
func loadAndRun(t *testing.T, mc *cpu.CPU, program ...uint8) {
	t.Helper()
	test.DemandSuccess(t, mc.LoadAndRun(program))
}

// step executes a single instruction and checks the validity of the result
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	halted, err := mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.DemandFailure(t, halted)
	test.DemandSuccess(t, mc.LastResult.IsValid())
}

func flag(mc *cpu.CPU, f registers.Flag) bool {
	return mc.Status.Get(f)
}
