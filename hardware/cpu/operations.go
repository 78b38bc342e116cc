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
	"fmt"

	"github.com/jetsetilly/core6502/hardware/cpu/instructions"
	"github.com/jetsetilly/core6502/hardware/cpu/registers"
)

func unhandledOperator(defn *instructions.Definition) error {
	return fmt.Errorf("cpu: unhandled operator in %s family (%s)", defn.Family, defn.Mnemonic())
}

func (mc *CPU) access(defn *instructions.Definition) error {
	var r *registers.Register

	switch defn.Operator {
	case instructions.Lda, instructions.Sta:
		r = &mc.A
	case instructions.Ldx, instructions.Stx:
		r = &mc.X
	case instructions.Ldy, instructions.Sty:
		r = &mc.Y
	default:
		return unhandledOperator(defn)
	}

	address, err := mc.address(defn.AddressingMode)
	if err != nil {
		return err
	}

	switch defn.Operator {
	case instructions.Sta, instructions.Stx, instructions.Sty:
		return mc.mem.Write(address, r.Value())
	}

	value, err := mc.mem.Read(address)
	if err != nil {
		return err
	}
	r.Load(value)
	mc.Status.UpdateZeroAndNegative(r.Value())

	return nil
}

func (mc *CPU) transfer(defn *instructions.Definition) error {
	var src, dest *registers.Register

	switch defn.Operator {
	case instructions.Tax:
		src, dest = &mc.A, &mc.X
	case instructions.Txa:
		src, dest = &mc.X, &mc.A
	case instructions.Tay:
		src, dest = &mc.A, &mc.Y
	case instructions.Tya:
		src, dest = &mc.Y, &mc.A
	default:
		return unhandledOperator(defn)
	}

	dest.Load(src.Value())
	mc.Status.UpdateZeroAndNegative(dest.Value())

	return nil
}

func (mc *CPU) arithmetic(defn *instructions.Definition) error {
	switch defn.Operator {
	case instructions.Adc, instructions.Sbc:
		value, err := mc.read(defn.AddressingMode)
		if err != nil {
			return err
		}

		var carry, overflow bool
		if defn.Operator == instructions.Adc {
			carry, overflow = mc.A.Add(value, mc.Status.Get(registers.Carry))
		} else {
			carry, overflow = mc.A.Subtract(value, mc.Status.Get(registers.Carry))
		}
		mc.Status.Set(registers.Carry, carry)
		mc.Status.Set(registers.Overflow, overflow)
		mc.Status.UpdateZeroAndNegative(mc.A.Value())

	case instructions.Inc, instructions.Dec:
		address, err := mc.address(defn.AddressingMode)
		if err != nil {
			return err
		}
		value, err := mc.mem.Read(address)
		if err != nil {
			return err
		}

		mc.acc8.Load(value)
		if defn.Operator == instructions.Inc {
			mc.acc8.Add(1, false)
		} else {
			mc.acc8.Add(0xff, false)
		}

		err = mc.mem.Write(address, mc.acc8.Value())
		if err != nil {
			return err
		}
		mc.Status.UpdateZeroAndNegative(mc.acc8.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.UpdateZeroAndNegative(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.UpdateZeroAndNegative(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.UpdateZeroAndNegative(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.UpdateZeroAndNegative(mc.Y.Value())

	default:
		return unhandledOperator(defn)
	}

	return nil
}

func (mc *CPU) shift(defn *instructions.Definition) error {
	// accumulator addressing operates directly on the A register. all other
	// addressing modes operate on memory through acc8
	var r *registers.Register
	var address uint16

	if defn.AddressingMode == instructions.Accumulator {
		r = &mc.A
	} else {
		var err error
		address, err = mc.address(defn.AddressingMode)
		if err != nil {
			return err
		}
		value, err := mc.mem.Read(address)
		if err != nil {
			return err
		}
		r = &mc.acc8
		r.Load(value)
	}

	// carry in must be sampled before the carry out is written
	carry := mc.Status.Get(registers.Carry)

	switch defn.Operator {
	case instructions.Asl:
		carry = r.ASL()
	case instructions.Lsr:
		carry = r.LSR()
	case instructions.Rol:
		carry = r.ROL(carry)
	case instructions.Ror:
		carry = r.ROR(carry)
	default:
		return unhandledOperator(defn)
	}

	if r == &mc.acc8 {
		err := mc.mem.Write(address, r.Value())
		if err != nil {
			return err
		}
	}

	mc.Status.Set(registers.Carry, carry)
	mc.Status.UpdateZeroAndNegative(r.Value())

	return nil
}

func (mc *CPU) bitwise(defn *instructions.Definition) error {
	value, err := mc.read(defn.AddressingMode)
	if err != nil {
		return err
	}

	switch defn.Operator {
	case instructions.And:
		mc.A.AND(value)
	case instructions.Ora:
		mc.A.ORA(value)
	case instructions.Eor:
		mc.A.EOR(value)
	default:
		return unhandledOperator(defn)
	}
	mc.Status.UpdateZeroAndNegative(mc.A.Value())

	return nil
}
