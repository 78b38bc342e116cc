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

// Package memory implements the memory the CPU is attached to. In this
// emulation memory is a single flat area covering the entire 16 bit address
// space, every address of which can be read and written.
//
//	CPU ---- cpu bus ---- RAM
//
// The RAM type satisfies the cpubus.Memory interface. Additional Peek and Poke
// functions access memory without going through the cpu bus and are intended
// for use by the front end and by tests.
package memory
