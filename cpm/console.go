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

package cpm

import (
	"github.com/pkg/term"
)

// TermConsole is a Console backed by the controlling terminal in raw mode,
// so that console input reaches the guest one keypress at a time and
// without local echo. Close() restores the terminal.
type TermConsole struct {
	t *term.Term
}

// OpenTermConsole puts the controlling terminal into raw mode.
func OpenTermConsole() (*TermConsole, error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, err
	}
	return &TermConsole{t: t}, nil
}

// ReadByte implements the Console interface.
func (c *TermConsole) ReadByte() (uint8, error) {
	b := make([]byte, 1)
	if _, err := c.t.Read(b); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Close restores the terminal state.
func (c *TermConsole) Close() error {
	if err := c.t.Restore(); err != nil {
		return err
	}
	return c.t.Close()
}
