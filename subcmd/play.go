package subcmd

import (
	"os"
	"strconv"
	"time"

	"github.com/mpckit/mpc1k/pgm"
	"github.com/mpckit/mpc1k/pgm/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Play triggers pads of a program file on a MIDI output port, sending
// each pad's assigned note the way the hardware would emit it.
var Play = cli.Command{
	Name:      "play",
	Aliases:   []string{"p"},
	Usage:     "Triggers pads of a program file on a MIDI output port",
	ArgsUsage: "<filename> <pad> [pad...]",
	Flags: append([]cli.Flag{
		cli.IntFlag{
			Name:  "port, P",
			Usage: `MIDI output port index`,
			Value: 0,
		},
		cli.IntFlag{
			Name:  "channel, c",
			Usage: `MIDI channel (1..16)`,
			Value: 1,
		},
		cli.IntFlag{
			Name:  "velocity, V",
			Usage: `Note velocity (1..127)`,
			Value: 100,
		},
		cli.IntFlag{
			Name:  "gate, g",
			Usage: `Gate time in milliseconds`,
			Value: 200,
		},
	}, logFlags()...),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)
		ch := uint8(ctx.Int("channel") - 1)
		vel := ctx.Int("velocity")
		if ctx.NArg() < 2 || ctx.Int("channel") < 1 || 16 < ctx.Int("channel") ||
			vel < 1 || 127 < vel {
			cli.ShowCommandHelp(ctx, "play")
			os.Exit(1)
		}
		args := ctx.Args()
		p, err := pgm.LoadFile(args[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		pads := []int{}
		for _, a := range args[1:] {
			n, err := strconv.Atoi(a)
			if err != nil || n < 0 || pgm.NumPads <= n {
				return cli.NewExitError(errors.Errorf("bad pad number %q", a), 1)
			}
			pads = append(pads, n)
		}

		out, err := openOut(ctx.Int("port"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		// Interrupted playback must not leave notes hanging.
		closer.Bind(func() {
			_ = out.Send(midi.ControlChange(ch, 123, 0).Bytes()) // all notes off
			_ = out.Close()
			drivers.Close()
		})

		gate := time.Duration(ctx.Int("gate")) * time.Millisecond
		for _, n := range pads {
			note := uint8(p.Pad(n).MidiNote())
			log.Infof("pad %d -> note %d", n, note)
			if err := out.Send(midi.NoteOn(ch, note, uint8(vel)).Bytes()); err != nil {
				return cli.NewExitError(err, 1)
			}
			time.Sleep(gate)
			if err := out.Send(midi.NoteOff(ch, note).Bytes()); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		_ = out.Close()
		drivers.Close()
		return nil
	},
}

func openOut(index int) (drivers.Out, error) {
	outs, err := drivers.Outs()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if index < 0 || len(outs) <= index {
		return nil, errors.Errorf("MIDI output port index %d out of range (%d ports)", index, len(outs))
	}
	out := outs[index]
	if err := out.Open(); err != nil {
		return nil, errors.WithStack(err)
	}
	log.Debugf("opened MIDI output port %s", out.String())
	return out, nil
}
