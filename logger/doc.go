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

// Package logger is the central log used by the CPU emulation and the front
// end. Entries are made up of a tag and a detail. Consecutive identical entries
// are folded into a single entry with a repeat count.
//
// Logging is gated by a Permission. The Allow value can be used when there is
// no reason to deny logging.
//
//	logger.Logf(logger.Allow, "cpu", "reset vector points to %#04x", address)
//
// The central log is protected by a mutex and is safe to use from more than
// one goroutine. Independent instances can be created with NewLogger(), which
// is mostly useful for testing.
package logger
