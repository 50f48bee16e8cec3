package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/urfave/cli"

	"github.com/arlojansen/drumcore/clock"
	"github.com/arlojansen/drumcore/config"
	"github.com/arlojansen/drumcore/drumcore"
	"github.com/arlojansen/drumcore/hw"
	"github.com/arlojansen/drumcore/monitor"
	"github.com/arlojansen/drumcore/pacing"
	"github.com/arlojansen/drumcore/padcfg"
	"github.com/arlojansen/drumcore/pedal"
	"github.com/arlojansen/drumcore/sensor"
	"github.com/arlojansen/drumcore/session"
	"github.com/arlojansen/drumcore/voice"
)

func main() {
	app := cli.NewApp()
	app.Name = "drumcore"
	app.Usage = "electronic drum module firmware core"
	app.Version = "1.0.0"
	app.Commands = []cli.Command{
		runCommand,
		replayCommand,
	}
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "pretty-log", Usage: "use a colorized console log handler instead of the default slog text handler"},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("pretty-log") {
			slog.SetDefault(slog.New(charmlog.New(os.Stderr)))
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("drumcore exited with an error", "error", err)
		os.Exit(1)
	}
}

var runCommand = cli.Command{
	Name:  "run",
	Usage: "drive the module from a real sensor and pedal backend",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "path to a YAML pad/tunables config (defaults to the built-in roster)"},
		cli.StringFlag{Name: "serial-port", Usage: "serial device to write MIDI frames to", Value: "/dev/ttyUSB0"},
		cli.StringFlag{Name: "gpio-chip", Usage: "GPIO chip the hi-hat pedal line is on", Value: "gpiochip0"},
		cli.IntFlag{Name: "gpio-line", Usage: "GPIO line offset the pedal is wired to", Value: padcfg.PedalPin},
		cli.BoolFlag{Name: "monitor", Usage: "show a live terminal monitor of pad state"},
		cli.StringFlag{Name: "session-dir", Usage: "if set, record every emitted event under this directory"},
		cli.IntFlag{Name: "scan-rate", Usage: "sensor poll rate in Hz", Value: pacing.DefaultScanRate},
	},
	Action: runAction,
}

func runAction(c *cli.Context) error {
	roster := padcfg.DefaultRoster()
	tunables := padcfg.DefaultTunables()
	if path := c.String("config"); path != "" {
		var err error
		roster, tunables, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	transportDev, err := hw.NewSerialTransport(c.String("serial-port"))
	if err != nil {
		return fmt.Errorf("opening serial transport: %w", err)
	}
	defer transportDev.Close()

	pedalReader, err := hw.NewGpioPedal(c.String("gpio-chip"), c.Int("gpio-line"))
	if err != nil {
		return fmt.Errorf("opening pedal gpio: %w", err)
	}
	defer pedalReader.Close()

	channels := 0
	for _, cfg := range roster {
		channels = max(channels, cfg.Channel+1)
		if cfg.IsDualZone {
			channels = max(channels, cfg.SecondaryChannel+1)
		}
	}
	sampler, err := sensor.NewSoundCardSampler(channels)
	if err != nil {
		return fmt.Errorf("opening soundcard sampler: %w", err)
	}
	defer sampler.Close()

	var transport voice.Transport = transportDev
	if dir := c.String("session-dir"); dir != "" {
		rec, err := session.NewRecorder(dir, "session-%Y%m%d-%H%M%S.log")
		if err != nil {
			return fmt.Errorf("opening session recorder: %w", err)
		}
		defer rec.Close()
		transport = voice.NewMultiTransport(transportDev, rec)
	}

	module := drumcore.New(roster, tunables, sampler, pedalReader, transport)

	var view *monitor.View
	var eventLog *monitor.EventLog
	if c.Bool("monitor") {
		eventLog = monitor.NewEventLog(50)
		view, err = monitor.New(eventLog)
		if err != nil {
			return fmt.Errorf("starting monitor: %w", err)
		}
		defer view.Close()
	}

	slog.Info("drumcore running", "pads", len(roster), "scan_rate_hz", c.Int("scan-rate"))

	src := clock.NewSystem()
	limiter := pacing.NewAdaptiveLimiter(c.Int("scan-rate"))
	for {
		now := src.Now()
		module.Tick(now)

		if view != nil {
			labels := make([]monitor.PadLabel, len(module.Pads()))
			for i, p := range module.Pads() {
				labels[i] = monitor.PadLabel{Name: fmt.Sprintf("pad-%d", i), Unit: p}
			}
			view.Render(labels)
		}
		limiter.WaitForNextScan()
	}
}

var replayCommand = cli.Command{
	Name:  "replay",
	Usage: "feed a scripted reading sequence through the module and print the emitted wire bytes",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "script", Usage: "path to a replay script (one 'tick channel value' line per reading)"},
	},
	Action: replayAction,
}

// replayAction parses a plain-text script ("<tick> <channel> <value>" per
// line) and prints every emitted wire frame as it is produced, for
// deterministic offline testing of a config without real hardware.
func replayAction(c *cli.Context) error {
	scriptPath := c.String("script")
	if scriptPath == "" {
		return fmt.Errorf("replay requires --script")
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("opening replay script: %w", err)
	}
	defer f.Close()

	var frames []sensor.Frame
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("malformed replay line %q: expected 'tick channel value'", line)
		}
		tick, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing tick in %q: %w", line, err)
		}
		channel, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("parsing channel in %q: %w", line, err)
		}
		value, err := strconv.ParseUint(fields[2], 10, 16)
		if err != nil {
			return fmt.Errorf("parsing value in %q: %w", line, err)
		}
		frames = append(frames, sensor.Frame{At: uint32(tick), Readings: map[int]uint16{channel: uint16(value)}})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading replay script: %w", err)
	}

	replay := sensor.NewReplay(frames)
	transport := &printTransport{}
	module := drumcore.New(padcfg.DefaultRoster(), padcfg.DefaultTunables(), replay, pedal.Zero{}, transport)

	lastTick := uint32(0)
	if len(frames) > 0 {
		lastTick = frames[len(frames)-1].At
	}
	for now := uint32(0); now <= lastTick; now++ {
		replay.Advance(now)
		module.Tick(now)
	}

	return nil
}

// printTransport prints every wire frame to stdout, one per line, as the
// three raw bytes in hex.
type printTransport struct{}

func (printTransport) Write(frame [3]byte) {
	fmt.Printf("%02X %02X %02X\n", frame[0], frame[1], frame[2])
}
