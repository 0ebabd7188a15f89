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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gophersms/cartridgeloader"
	"github.com/jetsetilly/gophersms/cpm"
	"github.com/jetsetilly/gophersms/debugger"
	"github.com/jetsetilly/gophersms/gui/sdltv"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/performance"
)

const usage = `usage: gophersms [mode] [flags] file
modes: RUN (default), CPM, PERFORMANCE, DUMP`

func main() {
	os.Exit(launch(os.Args[1:]))
}

func launch(args []string) int {
	mode := "RUN"
	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case "RUN", "CPM", "PERFORMANCE", "DUMP":
			mode = strings.ToUpper(args[0])
			args = args[1:]
		}
	}

	var err error

	switch mode {
	case "RUN":
		err = playMode(args)
	case "CPM":
		err = cpmMode(args)
	case "PERFORMANCE":
		err = performanceMode(args)
	case "DUMP":
		err = dumpMode(args)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 1
	}

	return 0
}

// playMode runs a cartridge with an SDL window attached.
func playMode(args []string) error {
	flags := flag.NewFlagSet("RUN", flag.ExitOnError)
	scale := flags.Int("scale", sdltv.IdealScale, "window scale")
	echoLog := flags.Bool("log", false, "echo log entries to stderr")
	flags.Parse(args)

	if flags.NArg() != 1 {
		return fmt.Errorf("%s", usage)
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	loader, err := cartridgeloader.NewLoader(flags.Arg(0))
	if err != nil {
		return err
	}
	logger.Logf("main", "%s (%s)", loader.Filename, loader.Hash)

	tv, err := sdltv.NewTV(*scale)
	if err != nil {
		return err
	}
	defer tv.Destroy()

	sms := hardware.NewSMS(loader.Data, cartridgeloader.LoadBIOS())
	sms.VDP.AttachRenderer(tv)

	// service SDL events once per machine step. cheap enough and keeps
	// everything on the main thread, which SDL requires
	return sms.Run(tv.Service)
}

// cpmMode runs a CP/M program (a .com file) with the console on
// stdin/stdout. this is how the zexdoc/zexall/prelim processor tests are
// run outside of the test suite.
func cpmMode(args []string) error {
	flags := flag.NewFlagSet("CPM", flag.ExitOnError)
	interactive := flags.Bool("interactive", false, "raw terminal for console input")
	flags.Parse(args)

	if flags.NArg() != 1 {
		return fmt.Errorf("%s", usage)
	}

	program, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}

	m, err := cpm.NewMachine(program, os.Stdout)
	if err != nil {
		return err
	}

	if *interactive {
		console, err := cpm.OpenTermConsole()
		if err != nil {
			return err
		}
		defer console.Close()
		m.SetConsole(console)
	}

	return m.Run()
}

// performanceMode measures emulation throughput.
func performanceMode(args []string) error {
	flags := flag.NewFlagSet("PERFORMANCE", flag.ExitOnError)
	duration := flags.String("duration", "5s", "run duration")
	profile := flags.String("profile", "none", "gather profile: cpu, mem, all")
	stats := flags.Bool("statsview", false, "launch statistics server")
	flags.Parse(args)

	if flags.NArg() != 1 {
		return fmt.Errorf("%s", usage)
	}

	loader, err := cartridgeloader.NewLoader(flags.Arg(0))
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, loader.Data, cartridgeloader.LoadBIOS(),
		*duration, prf, *stats)
}

// dumpMode writes a graphviz description of the machine structure.
func dumpMode(args []string) error {
	flags := flag.NewFlagSet("DUMP", flag.ExitOnError)
	flags.Parse(args)

	if flags.NArg() != 1 {
		return fmt.Errorf("%s", usage)
	}

	loader, err := cartridgeloader.NewLoader(flags.Arg(0))
	if err != nil {
		return err
	}

	sms := hardware.NewSMS(loader.Data, nil)
	debugger.DumpStructure(os.Stdout, sms)
	debugger.DumpState(os.Stderr, sms)

	return nil
}
