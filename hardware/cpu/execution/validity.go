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

package execution

import (
	"fmt"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: result not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return fmt.Errorf("execution: result has no instruction definition")
	}

	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// operand data wider than the instruction allows
	switch r.ByteCount {
	case 1:
		if r.InstructionData != 0 {
			return fmt.Errorf("execution: unexpected operand data for %s (%#04x)", r.Defn.Mnemonic(), r.InstructionData)
		}
	case 2:
		if r.InstructionData > 0xff {
			return fmt.Errorf("execution: operand data too wide for %s (%#04x)", r.Defn.Mnemonic(), r.InstructionData)
		}
	}

	return nil
}
