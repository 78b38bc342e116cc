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

// Package registers implements the four types of registers found in the 6502:
// the 8 bit Register used for A, X and Y; the program counter; the stack
// pointer; and the status register.
//
// The 8 bit registers define all the basic operations available to the 6502:
// load, add, subtract, logical operations and shifts/rotates. In addition it
// implements the tests required for status updates: is the value zero, is the
// number negative.
//
// The program counter by comparison is 16 bits wide and defines only the load
// and add operations.
//
// The status register is a single 8 bit value. Flags are accessed by name with
// the Get() and Set() functions. For instance, in the CPU, we might have this
// sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.UpdateZeroAndNegative(a.Value())
//
// In this case, the zero flag in the status register will be false and the
// negative flag will be true.
package registers
