package main

import (
	"os"

	"github.com/mpckit/mpc1k/subcmd"
	"github.com/urfave/cli"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "mpc1k"
	app.Version = version
	app.Usage = "Edits Akai MPC 1000 program files (.pgm)"
	app.HelpName = "mpc1k"

	app.Commands = []cli.Command{
		subcmd.Dump,
		subcmd.Verify,
		subcmd.Set,
		subcmd.Play,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
