package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/urfave/cli"
	"github.com/valerio/go-kolorful/kolorful"
	"github.com/valerio/go-kolorful/kolorful/backend/terminal"
	"github.com/valerio/go-kolorful/kolorful/rom"
)

func main() {
	app := cli.NewApp()
	app.Name = "kolorful"
	app.Description = "A Game Boy Color CPU core with a terminal debugger"
	app.Usage = "kolorful [options] <ROM file>"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the cartridge image (.gb, .gbc, .zip, .7z, .gz)",
		},
		cli.StringFlag{
			Name:  "boot",
			Usage: "Path to a DMG or CGB boot ROM to run before the cartridge",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without the debugger, printing serial output to stdout",
		},
		cli.IntFlag{
			Name:  "steps",
			Usage: "Number of instructions to execute in headless mode (0 = until stopped)",
		},
		cli.StringSliceFlag{
			Name:  "break",
			Usage: "Stop before executing the instruction at this hex address (repeatable)",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every executed instruction at debug level",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Minimum log level: debug, info, warn or error",
			Value: "info",
		},
		cli.BoolFlag{
			Name:  "debug-sink",
			Usage: "Log accesses to unemulated hardware instead of stopping on them",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
		romPath = c.Args().Get(0)
	}

	image, err := rom.Load(romPath)
	if err != nil {
		return err
	}
	logHeader(romPath, image)

	var opts []kolorful.Option
	if path := c.String("boot"); path != "" {
		boot, err := rom.LoadBoot(path)
		if err != nil {
			return err
		}
		slog.Info("boot rom loaded", "path", path, "size", len(boot), "xxhash", rom.FingerprintString(boot))
		opts = append(opts, kolorful.WithBootROM(boot))
	}
	if c.Bool("trace") {
		opts = append(opts, kolorful.WithTrace())
	}
	if c.Bool("debug-sink") {
		opts = append(opts, kolorful.WithDebugSink())
	}
	headless := c.Bool("headless")
	if headless {
		opts = append(opts, kolorful.WithSerialWriter(os.Stdout))
	}

	console := kolorful.New(image, opts...)
	for _, s := range c.StringSlice("break") {
		address, err := parseAddress(s)
		if err != nil {
			return err
		}
		console.Breakpoints().Add(address)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runHeadless(ctx, console, c.Int("steps"))
	}

	debugger := terminal.New(console)
	if err := debugger.Init(nil, level); err != nil {
		return err
	}
	return debugger.Run(context.Background())
}

func runHeadless(ctx context.Context, console *kolorful.Console, steps int) error {
	slog.Info("Running headless mode", "steps", steps, "breakpoints", console.Breakpoints().Len())

	n, err := console.RunFor(ctx, steps)
	console.Serial().Flush()

	state := console.CPU().Snapshot()
	attrs := []any{
		"steps", n,
		"pc", fmt.Sprintf("0x%04X", state.Registers.PC),
		"cycles", state.Cycles,
		"flags", state.Flags,
	}

	switch {
	case err == nil:
		slog.Info("Headless execution completed", attrs...)
		return nil
	case errors.Is(err, kolorful.ErrBreakpoint):
		slog.Info("Stopped at breakpoint", attrs...)
		return nil
	case errors.Is(err, context.Canceled):
		slog.Info("Interrupted", attrs...)
		return nil
	default:
		slog.Error("Execution stopped", append(attrs, "error", err)...)
		return err
	}
}

func logHeader(path string, image []byte) {
	h, err := rom.ParseHeader(image)
	if err != nil {
		slog.Warn("no cartridge header", "path", path, "error", err)
		return
	}
	slog.Info("cartridge loaded",
		"title", h.Title,
		"cgb", h.CGB(),
		"type", h.CartridgeTypeName(),
		"rom_size", h.ROMSize(),
		"ram_size", h.RAMSize(),
		"xxhash", rom.FingerprintString(image),
	)
	if err := rom.Verify(image); err != nil {
		slog.Warn("header checksum mismatch", "path", path, "error", err)
	}
}

// parseAddress accepts a 16-bit hex address with or without a 0x or $ prefix.
func parseAddress(s string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x"), "$")
	v, err := strconv.ParseUint(trimmed, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid breakpoint address %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
