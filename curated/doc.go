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

// Package curated provides error values that can be compared by the pattern
// they were created with, rather than by message content or sentinel
// identity.
//
// The emulation uses curated errors for conditions that the host needs to
// identify precisely: an unimplemented opcode, an illegal prefix sequence, an
// unsupported I/O port. For example:
//
//	return curated.Errorf(UnsupportedPort, port)
//
// and elsewhere:
//
//	if curated.Is(err, UnsupportedPort) {
//		...
//	}
package curated
