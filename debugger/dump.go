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

// Package debugger contains inspection aids for the running machine.
package debugger

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gophersms/hardware"
)

// DumpStructure writes a graphviz description of the machine aggregate to
// the writer. render with:
//
//	dot -Tsvg -o sms.svg <file>
func DumpStructure(w io.Writer, sms *hardware.SMS) {
	memviz.Map(w, sms)
}

// DumpState writes a one line summary of the CPU state to the writer.
func DumpState(w io.Writer, sms *hardware.SMS) {
	io.WriteString(w, sms.CPU.String())
	io.WriteString(w, "\n")
}
