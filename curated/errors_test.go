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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/test"
)

const testPattern = "test: %v"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, 10)
	test.Equate(t, err.Error(), "test: 10")

	test.Equate(t, curated.Is(err, testPattern), true)
	test.Equate(t, curated.Is(err, "other: %v"), false)
	test.Equate(t, curated.Is(nil, testPattern), false)
	test.Equate(t, curated.IsAny(err), true)
	test.Equate(t, curated.IsAny(errors.New("plain")), false)
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, 10)
	outer := curated.Errorf("outer: %v", inner)

	test.Equate(t, curated.Has(outer, testPattern), true)
	test.Equate(t, curated.Has(outer, "outer: %v"), true)
	test.Equate(t, curated.Has(inner, "outer: %v"), false)
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("mapper: %v", "bad write")
	outer := curated.Errorf("mapper: %v", inner)

	test.Equate(t, outer.Error(), "mapper: bad write")
}
