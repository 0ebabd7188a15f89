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

// Package logger is the central log for the emulation. Entries are stored in
// a bounded in-memory list and can optionally be echoed to a writer as they
// arrive.
//
// Log entries are submitted through the package level Log() and Logf()
// functions with a short tag naming the subsystem:
//
//	logger.Logf("mapper", "slot 2 -> bank %d", bank)
package logger

import (
	"fmt"
	"io"
)

const maxCentral = 256

var central = newLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, format string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// Clear the central logger of all entries.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to the output writer.
func Write(output io.Writer) {
	central.write(output)
}

// SetEcho sets the writer that new entries are echoed to as they arrive. A
// nil writer turns echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}
