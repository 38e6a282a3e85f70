// Command nesgo loads a ROM image, runs the 6502 core for a cycle
// budget, and reports the final architectural state. It is a batch tool,
// not an interactive debugger: no UI, no stepping, no breakpoints.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/nesgo/nesgo/bus"
	"github.com/nesgo/nesgo/cpu"
	"github.com/nesgo/nesgo/rom"
)

func main() {
	// slog.Default already writes text-formatted records to stderr, which
	// is all construction-time failures (bad ROM header, I/O errors) need.
	app := &cli.App{
		Name:    "nesgo",
		Usage:   "run a 6502 program against a simulated NES memory map",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rom",
				Aliases:  []string{"r"},
				Usage:    "path to an iNES ROM image",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "treat --rom as a headerless binary image loaded at --base instead of iNES",
			},
			&cli.UintFlag{
				Name:  "base",
				Usage: "load address for --raw images",
				Value: 0x8000,
			},
			&cli.Uint64Flag{
				Name:  "cycles",
				Usage: "cycle budget to run before reporting state",
				Value: 100000,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "dump the full Cpu struct with go-spew instead of a one-line summary",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	b := bus.New()

	var cart bus.Device
	if c.Bool("raw") {
		r, err := rom.NewRaw(c.String("rom"), uint16(c.Uint("base")))
		if err != nil {
			slog.Error("failed to load raw ROM image", "path", c.String("rom"), "err", err)
			return fmt.Errorf("nesgo: %w", err)
		}
		cart = r
	} else {
		r, err := rom.New(c.String("rom"))
		if err != nil {
			slog.Error("failed to load iNES ROM image", "path", c.String("rom"), "err", err)
			return fmt.Errorf("nesgo: %w", err)
		}
		fmt.Printf("loaded %s: %d PRG bank(s), %d CHR bank(s), mapper %d, %v mirroring\n",
			c.String("rom"), r.PRGBanks(), r.CHRBanks(), r.Mapper(), r.Mirroring())
		cart = r
	}
	b.AttachCartridge(cart)

	mpu := cpu.New(b)
	mpu.Reset()
	mpu.Run(c.Uint64("cycles"))

	if c.Bool("verbose") {
		spew.Dump(mpu)
		return nil
	}

	fmt.Printf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X cycles=%d\n",
		mpu.ProgramCounter, mpu.A, mpu.X, mpu.Y, mpu.SP, mpu.P, mpu.Cycles)
	return nil
}
