package subcmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mpckit/mpc1k/pgm"
	"github.com/mpckit/mpc1k/pgm/enums"
	"github.com/mpckit/mpc1k/pgm/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Set edits one named field of a program file in place. Field paths
// look like:
//
//	midi_program_change
//	slider_1.tune_low
//	pad_12.mute_group
//	pad_12.midi_note
//	pad_12.sample_0.name
var Set = cli.Command{
	Name:      "set",
	Aliases:   []string{"s"},
	Usage:     "Sets one field of a program file and writes it back",
	ArgsUsage: "<filename> <field> <value>",
	Flags: append([]cli.Flag{
		cli.StringFlag{
			Name:  "output, o",
			Usage: `Write to this file instead of editing in place`,
		},
	}, logFlags()...),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)
		if ctx.NArg() < 3 {
			cli.ShowCommandHelp(ctx, "set")
			os.Exit(1)
		}
		args := ctx.Args()
		p, err := pgm.LoadFile(args[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := setField(p, args[1], args[2]); err != nil {
			return cli.NewExitError(err, 1)
		}
		out := ctx.String("output")
		if out == "" {
			out = args[0]
		}
		if err := os.WriteFile(out, p.Encode(), 0644); err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("wrote %s", out)
		return nil
	},
}

func setField(p *pgm.Program, path, value string) error {
	parts := strings.Split(path, ".")
	head, rest := parts[0], parts[1:]

	switch {
	case head == "midi_program_change" && len(rest) == 0:
		n, err := atoi(path, value)
		if err != nil {
			return err
		}
		return p.SetMidiProgramChange(n)

	case strings.HasPrefix(head, "slider_") && len(rest) == 1:
		n, err := indexOf(head, "slider_", 1, 2)
		if err != nil {
			return err
		}
		sliders := []*pgm.Slider{p.Slider1(), p.Slider2()}
		return setSliderField(sliders[n-1], path, rest[0], value)

	case strings.HasPrefix(head, "pad_"):
		n, err := indexOf(head, "pad_", 0, pgm.NumPads-1)
		if err != nil {
			return err
		}
		return setPadField(p.Pad(n), path, rest, value)
	}
	return errors.Errorf("unknown field: %s", path)
}

func setSliderField(s *pgm.Slider, path, field, value string) error {
	if field == "parameter" {
		n, err := atoi(path, value)
		if err != nil {
			return err
		}
		return s.SetParameter(enums.SliderParameter(n))
	}
	setters := map[string]func(int) error{
		"pad":         s.SetPad,
		"unknown":     s.SetUnknown,
		"tune_low":    s.SetTuneLow,
		"tune_high":   s.SetTuneHigh,
		"filter_low":  s.SetFilterLow,
		"filter_high": s.SetFilterHigh,
		"layer_low":   s.SetLayerLow,
		"layer_high":  s.SetLayerHigh,
		"attack_low":  s.SetAttackLow,
		"attack_high": s.SetAttackHigh,
		"decay_low":   s.SetDecayLow,
		"decay_high":  s.SetDecayHigh,
	}
	set, ok := setters[field]
	if !ok {
		return errors.Errorf("unknown field: %s", path)
	}
	n, err := atoi(path, value)
	if err != nil {
		return err
	}
	return set(n)
}

func setPadField(pad *pgm.Pad, path string, rest []string, value string) error {
	if len(rest) == 2 && strings.HasPrefix(rest[0], "sample_") {
		n, err := indexOf(rest[0], "sample_", 0, pgm.SamplesPerPad-1)
		if err != nil {
			return err
		}
		return setSampleField(pad.Sample(n), path, rest[1], value)
	}
	if len(rest) != 1 {
		return errors.Errorf("unknown field: %s", path)
	}
	field := rest[0]

	intSetters := map[string]func(int) error{
		"mute_group":           pad.SetMuteGroup,
		"unknown":              pad.SetUnknown,
		"attack":               pad.SetAttack,
		"decay":                pad.SetDecay,
		"vel_to_level":         pad.SetVelToLevel,
		"filter_1_freq":        pad.SetFilter1Freq,
		"filter_1_res":         pad.SetFilter1Res,
		"filter_1_vel_to_freq": pad.SetFilter1VelToFreq,
		"filter_2_freq":        pad.SetFilter2Freq,
		"filter_2_res":         pad.SetFilter2Res,
		"filter_2_vel_to_freq": pad.SetFilter2VelToFreq,
		"mixer_level":          pad.SetMixerLevel,
		"fx_send_level":        pad.SetFXSendLevel,
		"midi_note":            pad.SetMidiNote,
	}
	if set, ok := intSetters[field]; ok {
		n, err := atoi(path, value)
		if err != nil {
			return err
		}
		return set(n)
	}

	n, err := atoi(path, value)
	if err != nil {
		return err
	}
	switch field {
	case "voice_overlap":
		return pad.SetVoiceOverlap(enums.VoiceOverlap(n))
	case "decay_mode":
		return pad.SetDecayMode(enums.DecayMode(n))
	case "filter_1_type":
		return pad.SetFilter1Type(enums.FilterType(n))
	case "filter_2_type":
		return pad.SetFilter2Type(enums.FilterType(n))
	case "mixer_pan":
		return pad.SetMixerPan(enums.Pan(n))
	case "output":
		return pad.SetOutput(enums.Output(n))
	case "fx_send":
		return pad.SetFXSend(enums.FXSend(n))
	case "filter_attenuation":
		return pad.SetFilterAttenuation(enums.FilterAttenuation(n))
	}
	return errors.Errorf("unknown field: %s", path)
}

func setSampleField(s *pgm.Sample, path, field, value string) error {
	switch field {
	case "name":
		return s.SetName(value)
	case "play_mode":
		n, err := atoi(path, value)
		if err != nil {
			return err
		}
		return s.SetPlayMode(enums.PlayMode(n))
	}
	setters := map[string]func(int) error{
		"level":       s.SetLevel,
		"range_upper": s.SetRangeUpper,
		"range_lower": s.SetRangeLower,
		"tuning":      s.SetTuning,
	}
	set, ok := setters[field]
	if !ok {
		return errors.Errorf("unknown field: %s", path)
	}
	n, err := atoi(path, value)
	if err != nil {
		return err
	}
	return set(n)
}

func atoi(path, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Errorf("%s needs an integer value, got %q", path, value)
	}
	return n, nil
}

func indexOf(s, prefix string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, prefix))
	if err != nil || n < min || max < n {
		return 0, fmt.Errorf("%s: index must be %s%d..%s%d", s, prefix, min, prefix, max)
	}
	return n, nil
}
