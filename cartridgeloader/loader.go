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

// Package cartridgeloader reads ROM and BIOS images from disk on behalf of
// the emulation. a missing ROM is an error; a missing BIOS is normal and
// simply leaves the machine without a BIOS contribution on the bus.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/logger"
)

// error patterns for the loader.
const (
	LoadError = "cartridgeloader: %v"
)

// biosPaths are the locations tried, in order, for a BIOS image.
var biosPaths = []string{
	"bios13fx.sms",
	"bios/bios13fx.sms",
}

// Loader is the result of loading a cartridge file.
type Loader struct {
	Filename string
	Hash     string
	Data     []uint8
}

// NewLoader reads the named ROM file. the hash field is computed as part
// of loading and can be used to identify the cartridge in logs.
func NewLoader(filename string) (Loader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Loader{}, curated.Errorf(LoadError, err)
	}

	return Loader{
		Filename: filename,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		Data:     data,
	}, nil
}

// LoadBIOS searches the fixed relative paths for a BIOS image. a nil
// return means no BIOS was found.
func LoadBIOS() []uint8 {
	for _, path := range biosPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		logger.Logf("cartridgeloader", "BIOS found at %s", path)
		return data
	}
	logger.Log("cartridgeloader", "no BIOS found")
	return nil
}
