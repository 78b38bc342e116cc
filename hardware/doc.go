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

// Package hardware is the base package for the emulated machine. It contains
// no code of its own.
//
// The cpu sub-package is the instruction core: the register file, the opcode
// table and the fetch-decode-execute loop. The memory sub-package provides the
// flat address space the CPU reads and writes through the cpubus.Memory
// interface. The two are joined with cpu.NewCPU() or the CPU.Plumb() function.
package hardware
