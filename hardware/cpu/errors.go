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

package cpu

import (
	"errors"
	"fmt"
)

// UnrecognisedOpcode is returned by ExecuteInstruction() when the opcode is
// not in the instruction table. The returned error is of type *OpcodeError.
var UnrecognisedOpcode = errors.New("cpu: unrecognised opcode")

// UnsupportedAddressingMode is returned when an addressing mode has no memory
// address. This indicates a fault in the instruction table.
var UnsupportedAddressingMode = errors.New("cpu: unsupported addressing mode")

// ProgramTooLarge is returned by Load() when a program does not fit between
// the program origin and the reset vector.
var ProgramTooLarge = errors.New("cpu: program too large")

// OpcodeError records the unrecognised opcode and the address it was read
// from.
type OpcodeError struct {
	Opcode  uint8
	Address uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%v (0x%02x) at 0x%04x", UnrecognisedOpcode, e.Opcode, e.Address)
}

// Unwrap allows OpcodeError to be tested with errors.Is().
func (e *OpcodeError) Unwrap() error {
	return UnrecognisedOpcode
}
