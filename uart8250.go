// This file is part of uart8250.
//
// uart8250 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uart8250 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uart8250.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/uart8250/console"
	"github.com/jetsetilly/uart8250/console/easyterm"
	"github.com/jetsetilly/uart8250/hardware/ns16550"
	"github.com/jetsetilly/uart8250/hardware/preferences"
	"github.com/jetsetilly/uart8250/hardware/uart"
	"github.com/jetsetilly/uart8250/hardware/uart/divisor"
	"github.com/jetsetilly/uart8250/hardware/uart/interrupts"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
	"github.com/jetsetilly/uart8250/line"
	"github.com/jetsetilly/uart8250/logger"
	"github.com/jetsetilly/uart8250/modalflag"
	"github.com/jetsetilly/uart8250/paths"
	"github.com/jetsetilly/uart8250/prefs"
	"github.com/jetsetilly/uart8250/statsview"
	"github.com/jetsetilly/uart8250/version"
	"github.com/jetsetilly/uart8250/waveform"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the top level of the command line and runs the selected
// mode. the return value is the exit code for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("CONSOLE", "BRIDGE", "PORTS", "DECODE", "DIVISOR", "WAVEFORM", "DUMP", "VERSION")

	prefsGroup := md.AddString("prefs", "", "preference overrides. eg. \"uart.baud::9600; uart.clock::24000000\"")
	log := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *prefsGroup != "" {
		prefs.PushCommandLineStack(*prefsGroup)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	pref, err := preferences.NewPreferences()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log || pref.Log.Get().(bool) {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "CONSOLE":
		err = runConsole(md, pref)

	case "BRIDGE":
		err = runBridge(md, pref, output)

	case "PORTS":
		err = listPorts(md, output)

	case "DECODE":
		err = decode(md, output)

	case "DIVISOR":
		err = showDivisor(md, pref, output)

	case "WAVEFORM":
		err = drawWaveform(md, output)

	case "DUMP":
		err = dump(md, pref, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func runConsole(md *modalflag.Modes, pref *preferences.Preferences) error {
	md.NewMode()

	baud := md.AddUint("baud", pref.BaudRate(), "baud rate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term easyterm.Terminal
	err = term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	con, err := console.NewConsole(&term, pref.ClockRate(), *baud, pref.BaseAddress())
	if err != nil {
		return err
	}
	con.Device().SetTrace(pref.Trace.Get().(int))

	term.RawMode()
	term.Print("%s %s: ctrl-c to quit, ctrl-t for status\r\n", version.ApplicationName, con.UART())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = con.Run(ctx, &term)

	for _, a := range con.Device().Trace() {
		term.Print("%s\r\n", a)
	}

	return err
}

func runBridge(md *modalflag.Modes, pref *preferences.Preferences, output io.Writer) error {
	md.NewMode()

	baud := md.AddUint("baud", pref.BaudRate(), "baud rate")
	cfgFlag := md.AddString("line", "8N1", "character format")
	echo := md.AddBool("echo", false, "simulated driver echoes every byte it receives")
	save := md.AddBool("save", false, "save port as the default for future sessions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	name := md.GetArg(0)
	if name == "" {
		name = pref.Port.String()
	}
	if name == "" {
		return fmt.Errorf("host port required for %s mode", md)
	}

	cfg, err := linecontrol.ParseConfig(*cfgFlag)
	if err != nil {
		return err
	}

	brd := ns16550.NewBoard()
	dev := ns16550.NewDevice(name, nil)
	dev.SetTrace(pref.Trace.Get().(int))
	err = brd.Attach(pref.BaseAddress(), dev)
	if err != nil {
		return err
	}

	br, err := line.Open(name, dev, pref.ClockRate())
	if err != nil {
		return err
	}
	defer br.Close()

	// programming the device through the facade reconfigures the host port
	u := uart.New(brd, pref.BaseAddress())
	u.Init(pref.ClockRate(), *baud)
	err = u.SetLineConfig(cfg)
	if err != nil {
		return err
	}
	u.SetModemControl(registers.DTR | registers.RTS)

	if *save {
		err = pref.Port.Set(name)
		if err != nil {
			return err
		}
		err = pref.Save()
		if err != nil {
			return err
		}
	}

	mode := br.Mode()
	fmt.Fprintf(output, "%s bridged to %s (%s)\n", u, name, line.ModeString(&mode))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- br.Run(ctx)
	}()

	// the simulated driver polls the receiver
	poll := time.NewTicker(time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case err := <-done:
			return err
		case <-poll.C:
			if err := drainReceiver(u, output, *echo); err != nil {
				return err
			}
		}
	}
}

// drainReceiver copies every byte waiting in the receiver to output,
// optionally transmitting it back.
func drainReceiver(u *uart.UART, output io.Writer, echo bool) error {
	for {
		b, ok := u.Receive()
		if !ok {
			return nil
		}
		if _, err := output.Write([]byte{b}); err != nil {
			return err
		}
		if echo {
			u.Transmit(b)
		}
	}
}

func listPorts(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ports, err := line.Ports()
	if err != nil {
		return err
	}

	if len(ports) == 0 {
		fmt.Fprintln(output, "no serial ports found")
		return nil
	}

	for _, n := range ports {
		fmt.Fprintln(output, n)
	}

	return nil
}

func decode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("registers: IER, IIR, FCR, LCR, MCR, LSR, MSR")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("register and value required for %s mode", md)
	}

	reg := registers.Register(strings.ToUpper(md.GetArg(0)))

	v, err := strconv.ParseUint(md.GetArg(1), 0, 8)
	if err != nil {
		return fmt.Errorf("value must be a byte: %s", md.GetArg(1))
	}

	return decodeRegister(output, reg, uint8(v))
}

// decodeRegister writes a description of a register value.
func decodeRegister(output io.Writer, reg registers.Register, v uint8) error {
	switch reg {
	case registers.RegIER:
		fmt.Fprintf(output, "IER %#02x: %s\n", v, registers.NewIER(v))

	case registers.RegIIR:
		if c, ok := interrupts.Decode(v); ok {
			fmt.Fprintf(output, "IIR %#02x: %s (priority %d, reset by %s)\n", v, c, c.Priority(), c.ResetMethod())
		} else {
			fmt.Fprintf(output, "IIR %#02x: no interrupt pending\n", v)
		}
		fmt.Fprintf(output, "  fifo: %s", interrupts.DecodeFIFO(v))
		if interrupts.Has64ByteFIFO(v) {
			fmt.Fprint(output, " (64 byte)")
		}
		fmt.Fprintln(output)

	case registers.RegFCR:
		fmt.Fprintf(output, "FCR %#02x: %s\n", v, registers.FCR(v))

	case registers.RegLCR:
		cfg, err := linecontrol.Decode(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "LCR %#02x: %s", v, cfg)
		if linecontrol.GetDLAB(v) {
			fmt.Fprint(output, " DLAB")
		}
		if linecontrol.GetBreak(v) {
			fmt.Fprint(output, " BREAK")
		}
		fmt.Fprintln(output)

	case registers.RegMCR:
		fmt.Fprintf(output, "MCR %#02x: %s\n", v, registers.NewMCR(v))

	case registers.RegLSR:
		fmt.Fprintf(output, "LSR %#02x: %s\n", v, registers.NewLSR(v))

	case registers.RegMSR:
		fmt.Fprintf(output, "MSR %#02x: %s\n", v, registers.NewMSR(v))

	default:
		return fmt.Errorf("cannot decode register: %s", reg)
	}

	return nil
}

func showDivisor(md *modalflag.Modes, pref *preferences.Preferences, output io.Writer) error {
	md.NewMode()

	clock := md.AddUint("clock", pref.ClockRate(), "input clock in Hz")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one baud rate required for %s mode", md)
	}

	for _, a := range md.RemainingArgs() {
		baud, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return fmt.Errorf("not a baud rate: %s", a)
		}
		writeDivisor(output, *clock, uint(baud))
	}

	return nil
}

// writeDivisor writes the divisor for the clock and baud rate along with the
// baud rate the divisor actually produces.
func writeDivisor(output io.Writer, clock uint, baud uint) {
	d := divisor.Divisor(clock, baud)
	actual := divisor.BaudRate(clock, d)

	fmt.Fprintf(output, "%d baud: divisor %d (DLL=%#02x DLH=%#02x)", baud, d, uint8(d), uint8(d>>8))
	if d == 0 {
		fmt.Fprintln(output, " unusable")
		return
	}
	if actual != baud {
		fmt.Fprintf(output, " actual %d (%+.2f%%)", actual, (float64(actual)-float64(baud))*100/float64(baud))
	}
	fmt.Fprintln(output)
}

func drawWaveform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("the output file is optional. a unique filename is used if it is omitted")

	cfgFlag := md.AddString("line", "8N1", "character format")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var fn, data string
	switch len(md.RemainingArgs()) {
	case 1:
		data = md.GetArg(0)
	case 2:
		fn = md.GetArg(0)
		data = md.GetArg(1)
	default:
		return fmt.Errorf("data required for %s mode", md)
	}

	cfg, err := linecontrol.ParseConfig(*cfgFlag)
	if err != nil {
		return err
	}

	return writeWaveform(output, fn, cfg, []uint8(data))
}

// writeWaveform renders the data to the named PNG file. An empty filename is
// replaced by a unique filename.
func writeWaveform(output io.Writer, fn string, cfg linecontrol.Config, data []uint8) error {
	fn = outputFilename(fn, "waveform", cfg.String(), "png")

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	err = waveform.Render(f, cfg, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d frames of %s written to %s\n", len(data), cfg, fn)
	return nil
}

func dump(md *modalflag.Modes, pref *preferences.Preferences, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("the output file is optional. a unique filename is used if it is omitted")

	baud := md.AddUint("baud", pref.BaudRate(), "baud rate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	brd, err := initialisedBoard(pref.ClockRate(), *baud, pref.BaseAddress())
	if err != nil {
		return err
	}

	return writeDump(output, md.GetArg(0), brd)
}

// writeDump writes a memviz graph of the board to the named file. An empty
// filename is replaced by a unique filename.
func writeDump(output io.Writer, fn string, brd *ns16550.Board) error {
	fn = outputFilename(fn, "dump", "", "dot")

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, brd)

	fmt.Fprintf(output, "board with %d device written to %s\n", len(brd.Bases()), fn)
	return nil
}

// outputFilename returns fn or, if fn is empty, a unique filename.
func outputFilename(fn string, prepend string, label string, ext string) string {
	if fn != "" {
		return fn
	}
	return paths.UniqueFilename(prepend, label, ext)
}

// initialisedBoard returns a board with a single device that has been
// initialised through the facade.
func initialisedBoard(clock uint, baud uint, base uintptr) (*ns16550.Board, error) {
	brd := ns16550.NewBoard()
	dev := ns16550.NewDevice("dump", io.Discard)
	dev.SetTrace(16)
	err := brd.Attach(base, dev)
	if err != nil {
		return nil, err
	}
	uart.New(brd, base).Init(clock, baud)
	return brd, nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.String())
	if *revision {
		gv, pth := version.GoVersion()
		fmt.Fprintf(output, "%s %s\n", pth, gv)
	}

	return nil
}
