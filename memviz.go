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

package main

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/core6502/hardware/cpu"
	"github.com/jetsetilly/core6502/hardware/cpu/execution"
)

// cpuState is the part of the CPU that is rendered by memviz. the CPU type
// itself is not suitable because memviz would render the entirety of memory
type cpuState struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status string
	Halted bool

	LastResult *execution.Result
}

func newCPUState(mc *cpu.CPU) *cpuState {
	last := mc.LastResult
	return &cpuState{
		PC:         mc.PC.Address(),
		A:          mc.A.Value(),
		X:          mc.X.Value(),
		Y:          mc.Y.Value(),
		SP:         mc.SP.Value(),
		Status:     mc.Status.String(),
		Halted:     mc.Halted,
		LastResult: &last,
	}
}

// writeMemviz writes a graphviz rendering of the CPU state to the named file
func writeMemviz(filename string, mc *cpu.CPU) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, newCPUState(mc))

	return nil
}
