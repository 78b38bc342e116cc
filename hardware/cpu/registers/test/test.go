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

// Package test contains helper functions for testing the registers package
// and any package that makes use of registers.
package test

import (
	"testing"

	"github.com/jetsetilly/core6502/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between a register and an integer
// value. Supported register types are Register, ProgramCounter, StackPointer
// and StatusRegister.
func EquateRegisters(t *testing.T, r any, x int) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Fatalf("unhandled register type (%T)", r)

	case registers.Register:
		if int(r.Value()) != x {
			t.Errorf("register %s is %#02x - wanted %#02x", r.Label(), r.Value(), x)
		}

	case registers.ProgramCounter:
		if int(r.Address()) != x {
			t.Errorf("program counter is %#04x - wanted %#04x", r.Address(), x)
		}

	case registers.StackPointer:
		if int(r.Value()) != x {
			t.Errorf("stack pointer is %#02x - wanted %#02x", r.Value(), x)
		}

	case registers.StatusRegister:
		if int(r.Value()) != x {
			t.Errorf("status register is %#02x - wanted %#02x", r.Value(), x)
		}
	}
}

// EquateStatus tests the status register against a string of the form
// returned by StatusRegister.String(). The unassigned bits are not compared.
func EquateStatus(t *testing.T, sr registers.StatusRegister, x string) {
	t.Helper()

	if len(x) != 8 {
		t.Fatalf("status flags must be a string of 8 chars (%q)", x)
	}

	s := sr.String()
	for i := range x {
		if i == 2 || i == 3 {
			continue
		}
		if s[i] != x[i] {
			t.Errorf("status register is %s - wanted %s", s, x)
			return
		}
	}
}
