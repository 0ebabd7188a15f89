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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	logger.Log("test", "this is a test")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")
}

func TestRepeatCoalescing(t *testing.T) {
	logger.Clear()
	logger.Logf("test", "entry %d", 1)
	logger.Logf("test", "entry %d", 1)
	logger.Logf("test", "entry %d", 1)

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: entry 1 (repeat x3)\n")
}

func TestNewlinesRemoved(t *testing.T) {
	logger.Clear()
	logger.Log("test", "two\nlines")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: twolines\n")
}
