// This file is part of GopherSMS.
//
// GopherSMS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSMS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSMS.  If not, see <https://www.gnu.org/licenses/>.

// Package z80 emulates the Zilog Z80 as found in the Sega Master System.
//
// The CPU is driven with the Step() function, which executes exactly one
// instruction and returns the number of T-states consumed. The host is
// expected to feed that count to whatever else is on the machine (the VDP
// in particular) before calling Step() again.
//
// Memory and I/O ports are reached through handler functions supplied with
// SetBusHandlers() and SetPortHandlers(). The CPU makes no assumptions
// about what is on the other side.
//
// Instruction dispatch is a flat 256 entry table per prefix group. The DD
// and FD tables begin life as copies of the unprefixed table, overriding
// only the rows where the prefix changes meaning; this mirrors how the
// prefix works in the silicon, where it simply redirects HL accesses for
// one instruction.
//
// The undocumented flag bits (bits 3 and 5 of F) are maintained everywhere,
// including the block instructions and BIT, which take them from values
// other than the nominal result. The emulation passes the zexdoc and
// zexall testing programs (see the cpm package).
package z80
