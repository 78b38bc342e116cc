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

package instructions

// Family groups operators by the kind of work they do. The CPU dispatches on
// the family of an instruction before dispatching on the operator.
type Family int

// List of instruction families.
const (
	Access Family = iota
	Transfer
	Arithmetic
	Shift
	Bitwise
	Halt
)

func (f Family) String() string {
	switch f {
	case Access:
		return "Access"
	case Transfer:
		return "Transfer"
	case Arithmetic:
		return "Arithmetic"
	case Shift:
		return "Shift"
	case Bitwise:
		return "Bitwise"
	case Halt:
		return "Halt"
	}
	return "unknown family"
}

// Operator identifies the operation performed by an instruction. Several
// opcodes share the same operator, differing only in addressing mode.
type Operator int

// List of operators.
const (
	Unknown Operator = iota

	// access
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty

	// transfer
	Tax
	Txa
	Tay
	Tya

	// arithmetic
	Adc
	Sbc
	Inc
	Dec
	Inx
	Iny
	Dex
	Dey

	// shift
	Asl
	Lsr
	Rol
	Ror

	// bitwise
	And
	Ora
	Eor

	// halt
	Brk
)

var mnemonics = map[Operator]string{
	Lda: "LDA", Ldx: "LDX", Ldy: "LDY",
	Sta: "STA", Stx: "STX", Sty: "STY",
	Tax: "TAX", Txa: "TXA", Tay: "TAY", Tya: "TYA",
	Adc: "ADC", Sbc: "SBC",
	Inc: "INC", Dec: "DEC",
	Inx: "INX", Iny: "INY", Dex: "DEX", Dey: "DEY",
	Asl: "ASL", Lsr: "LSR", Rol: "ROL", Ror: "ROR",
	And: "AND", Ora: "ORA", Eor: "EOR",
	Brk: "BRK",
}

func (o Operator) String() string {
	if m, ok := mnemonics[o]; ok {
		return m
	}
	return "???"
}

// family returns the Family the operator belongs to. The second return value
// is false if the operator has no family (ie. Unknown).
func (o Operator) family() (Family, bool) {
	switch o {
	case Lda, Ldx, Ldy, Sta, Stx, Sty:
		return Access, true
	case Tax, Txa, Tay, Tya:
		return Transfer, true
	case Adc, Sbc, Inc, Dec, Inx, Iny, Dex, Dey:
		return Arithmetic, true
	case Asl, Lsr, Rol, Ror:
		return Shift, true
	case And, Ora, Eor:
		return Bitwise, true
	case Brk:
		return Halt, true
	}
	return Halt, false
}

// supports returns true if the operator can be used with the addressing mode.
// the operators that work exclusively on registers are the only ones that may
// use implied addressing. the shift operators are the only ones that may use
// the accumulator.
func (o Operator) supports(mode AddressingMode) bool {
	switch o {
	case Tax, Txa, Tay, Tya, Inx, Iny, Dex, Dey, Brk:
		return mode == Implied
	case Asl, Lsr, Rol, Ror:
		return mode == Accumulator || (mode != Implied && mode != Immediate && mode != Relative && mode != Indirect)
	case Sta, Stx, Sty, Inc, Dec:
		// there is nothing to store to or modify with immediate addressing
		return mode.HasAddress() && mode != Immediate && mode != Relative && mode != Indirect
	}
	return mode.HasAddress() && mode != Relative && mode != Indirect
}
