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

package z80_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware/z80"
)

// testBus is a flat 64k of RAM and 256 ports, sufficient to run any
// instruction sequence.
type testBus struct {
	mem   [0x10000]uint8
	ports [256]uint8
}

func (b *testBus) read(address uint16) uint8 {
	return b.mem[address]
}

func (b *testBus) write(address uint16, value uint8) {
	b.mem[address] = value
}

func (b *testBus) portIn(port uint8) uint8 {
	return b.ports[port]
}

func (b *testBus) portOut(port uint8, value uint8) {
	b.ports[port] = value
}

// newTestCPU returns a reset CPU attached to a fresh testBus.
func newTestCPU() (*z80.CPU, *testBus) {
	bus := &testBus{}
	mc := z80.NewCPU()
	mc.SetBusHandlers(bus.read, bus.write)
	mc.SetPortHandlers(bus.portIn, bus.portOut)
	return mc, bus
}

// poke a program into memory at the address and point PC at it.
func poke(mc *z80.CPU, bus *testBus, origin uint16, program ...uint8) {
	copy(bus.mem[origin:], program)
	mc.SetPC(origin)
}

// step the CPU once, failing the test on any fault.
func step(t *testing.T, mc *z80.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	if err != nil {
		t.Fatalf("unexpected fault: %s", err)
	}
	return cycles
}
