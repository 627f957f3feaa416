package subcmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mpckit/mpc1k/pgm"
	"github.com/mpckit/mpc1k/pgm/log"
	"github.com/urfave/cli"
)

func applyLogFlags(ctx *cli.Context) {
	if ctx.Bool("debug") {
		log.Level = log.LogLevel_Debug
	} else if ctx.Bool("silent") {
		log.Level = log.LogLevel_None
	} else if ctx.Bool("quiet") {
		log.Level = log.LogLevel_Warn
	}
}

func logFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: `Show debug messages`,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Suppress information messages`,
		},
		cli.BoolFlag{
			Name:  "silent, Q",
			Usage: `Do not output any messages`,
		},
	}
}

// loadArg loads the program named by the first argument, or the
// built-in factory default when no argument is given.
func loadArg(ctx *cli.Context) (*pgm.Program, error) {
	if ctx.NArg() < 1 {
		return pgm.NewProgram()
	}
	return pgm.LoadFile(ctx.Args()[0])
}

var Dump = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps MPC 1000 program files (.pgm)",
	ArgsUsage: "[filename]",
	Flags: append([]cli.Flag{
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
		cli.IntFlag{
			Name:  "pad, p",
			Usage: `Dumps a single pad (0..63)`,
			Value: -1,
		},
	}, logFlags()...),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)
		p, err := loadArg(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		var data fmt.Stringer = p
		if n := ctx.Int("pad"); 0 <= n {
			if pgm.NumPads <= n {
				cli.ShowCommandHelp(ctx, "dump")
				os.Exit(1)
			}
			data = p.Pad(n)
		}
		if ctx.Bool("json") {
			j, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Println(string(j))
		} else {
			fmt.Println(data.String())
		}
		return nil
	},
}
