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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions test for equality, success and failure under generic
// conditions. A failed expectation is reported with t.Errorf() and the test
// continues. The Demand*() functions are the same except that a failure is
// fatal to the test.
//
// It is worth describing how success and failure are decided because it is
// not obvious. The nil type is considered a success and consequently will
// cause ExpectFailure to fail and ExpectSuccess to succeed. This is because of
// how errors usually work (nil to indicate no error).
//
// The Writer type meanwhile, implements the io.Writer interface and should be
// used to capture output. The Writer.Compare() function can then be used to
// test for equality.
package test
