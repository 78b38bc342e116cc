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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/core6502/logger"
)

// hexProgram implements the flag.Value interface. The flag value is a list of
// hex bytes separated by spaces or commas. Each byte may be prefixed with 0x
// or $.
type hexProgram []uint8

func (h *hexProgram) String() string {
	s := make([]string, len(*h))
	for i, b := range *h {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

func (h *hexProgram) Set(v string) error {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	p := make([]uint8, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(f), "0x"), "$")
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return fmt.Errorf("not a hex byte: %q", f)
		}
		p = append(p, uint8(b))
	}

	*h = p
	return nil
}

// echoWriter returns the writer to use for echoing the log. log entries are
// colourised when the output is a terminal
func echoWriter(output io.Writer) io.Writer {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return logger.NewColorizer(output)
	}
	return output
}
