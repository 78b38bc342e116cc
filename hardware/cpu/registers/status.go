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

package registers

import (
	"strings"
)

// Flag names one of the status register flags.
type Flag int

// List of status register flags.
const (
	Carry Flag = iota
	Zero
	InterruptDisable
	DecimalMode
	Overflow
	Negative
)

func (f Flag) String() string {
	switch f {
	case Carry:
		return "Carry"
	case Zero:
		return "Zero"
	case InterruptDisable:
		return "InterruptDisable"
	case DecimalMode:
		return "DecimalMode"
	case Overflow:
		return "Overflow"
	case Negative:
		return "Negative"
	}
	return "unknown flag"
}

// bit positions of each flag in the status register. bits 4 and 5 are not
// assigned to a flag.
var flagMasks = [...]uint8{
	Carry:            0x01,
	Zero:             0x02,
	InterruptDisable: 0x04,
	DecimalMode:      0x08,
	Overflow:         0x40,
	Negative:         0x80,
}

// DefaultStatus is the value of the status register after a reset. Interrupts
// are disabled and every other flag is clear. Bit 5 is set as it would be on
// the real hardware.
const DefaultStatus uint8 = 0b0010_0100

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{value: DefaultStatus}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the state of the flags as a string of eight characters, one
// for each bit. Upper case indicates that a flag is set. Unassigned bits are
// shown as a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	pen := func(f Flag, r rune) {
		if sr.Get(f) {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	pen(Negative, 'n')
	pen(Overflow, 'v')
	s.WriteString("--")
	pen(DecimalMode, 'd')
	pen(InterruptDisable, 'i')
	pen(Zero, 'z')
	pen(Carry, 'c')

	return s.String()
}

// Get returns the state of the named flag.
func (sr StatusRegister) Get(f Flag) bool {
	return sr.value&flagMasks[f] != 0
}

// Set the state of the named flag.
func (sr *StatusRegister) Set(f Flag, v bool) {
	if v {
		sr.value |= flagMasks[f]
	} else {
		sr.value &^= flagMasks[f]
	}
}

// UpdateZeroAndNegative sets the Zero and Negative flags according to the
// result of an operation.
func (sr *StatusRegister) UpdateZeroAndNegative(result uint8) {
	sr.Set(Zero, result == 0)
	sr.Set(Negative, result&0x80 == 0x80)
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.value = DefaultStatus
}

// Value returns the status register as an 8 bit value.
func (sr StatusRegister) Value() uint8 {
	return sr.value
}

// Load an 8 bit value into the status register.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v
}
