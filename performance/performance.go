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

// Package performance measures the throughput of the emulation by running
// a machine flat out for a wall-clock duration and comparing the number of
// frames generated against the 60 frames per second of real hardware.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/statsview"
)

// frameCounter counts presented frames. it satisfies the vdp.Renderer
// interface.
type frameCounter struct {
	frames int
}

func (f *frameCounter) Present(_ *[vdp.ScreenHeight][vdp.ScreenWidth]uint8) error {
	f.frames++
	return nil
}

// Check runs the machine for the duration and reports the effective frame
// rate to the output writer.
func Check(output io.Writer, rom []uint8, bios []uint8, duration string, profile Profile, stats bool) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	if stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "statsview not available. compile with correct build constraint")
		}
	}

	sms := hardware.NewSMS(rom, bios)

	counter := &frameCounter{}
	sms.VDP.AttachRenderer(counter)

	runner := func() error {
		deadline := time.Now().Add(d)

		// check the clock once per thousand steps. the syscall cost of
		// time.Now() would otherwise dominate the measurement
		steps := 0
		return sms.Run(func() bool {
			steps++
			if steps%1000 != 0 {
				return true
			}
			return time.Now().Before(deadline)
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	fps := float64(counter.frames) / d.Seconds()
	fmt.Fprintf(output, "%.2f fps (%.1f%% of real hardware)\n", fps, fps/float64(vdp.FPS)*100)

	return nil
}
