package pgm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mpckit/mpc1k/pgm/enums"
	"github.com/mpckit/mpc1k/pgm/layout"
	"github.com/mpckit/mpc1k/pgm/util"
	"github.com/pkg/errors"
)

// SamplesPerPad is the fixed number of sample slots per pad.
const SamplesPerPad = 4

var padLayout = layout.New(
	layout.Pad(2),
	layout.I8Field("voice_overlap"),
	layout.I8Field("mute_group"),
	layout.Pad(1),
	layout.U8Field("unknown"),
	layout.U8Field("attack"),
	layout.U8Field("decay"),
	layout.U8Field("decay_mode"),
	layout.Pad(2),
	layout.U8Field("vel_to_level"),
	layout.Pad(5),
	layout.I8Field("filter_1_type"),
	layout.U8Field("filter_1_freq"),
	layout.U8Field("filter_1_res"),
	layout.Pad(4),
	layout.U8Field("filter_1_vel_to_freq"),
	layout.U8Field("filter_2_type"),
	layout.U8Field("filter_2_freq"),
	layout.U8Field("filter_2_res"),
	layout.Pad(4),
	layout.U8Field("filter_2_vel_to_freq"),
	layout.Pad(14),
	layout.U8Field("mixer_level"),
	layout.U8Field("mixer_pan"),
	layout.U8Field("output"),
	layout.U8Field("fx_send"),
	layout.U8Field("fx_send_level"),
	layout.U8Field("filter_attenuation"),
	layout.Pad(15),
)

// PadSize is the packed size of one pad record: four sample slots
// followed by the pad body.
var PadSize = SamplesPerPad*SampleSize + padLayout.Size()

// Pad is one of the 64 trigger pads of a program: four sample slots
// plus envelope, filter and mixer settings. Its MIDI note lives in the
// program's note tables, not in the pad's own byte region; the owning
// Program assigns it after decoding the pad.
type Pad struct {
	samples [SamplesPerPad]*Sample

	voiceOverlap enums.VoiceOverlap
	muteGroup    int
	unknown      int
	attack       int
	decay        int
	decayMode    enums.DecayMode
	velToLevel   int

	filter1Type      enums.FilterType
	filter1Freq      int
	filter1Res       int
	filter1VelToFreq int
	filter2Type      enums.FilterType
	filter2Freq      int
	filter2Res       int
	filter2VelToFreq int

	mixerLevel        int
	mixerPan          enums.Pan
	output            enums.Output
	fxSend            enums.FXSend
	fxSendLevel       int
	filterAttenuation enums.FilterAttenuation

	midiNote int
}

// DecodePad decodes one 164-byte pad record: the four sample slots in
// slot order, then the pad body.
func DecodePad(b []byte) (*Pad, error) {
	if len(b) < PadSize {
		return nil, errors.Wrap(&layout.TruncatedInputError{Want: PadSize, Got: len(b)}, "decoding pad")
	}
	p := &Pad{}
	off := 0
	for i := 0; i < SamplesPerPad; i++ {
		s, err := DecodeSample(b[off:])
		if err != nil {
			return nil, errors.Wrapf(err, "sample slot %d", i)
		}
		p.samples[i] = s
		off += SampleSize
	}
	vals, err := padLayout.Decode(b[off:])
	if err != nil {
		return nil, errors.Wrap(err, "decoding pad")
	}
	steps := []error{
		p.SetVoiceOverlap(enums.VoiceOverlap(vals[0].Int)),
		p.SetMuteGroup(vals[1].Int),
		p.SetUnknown(vals[2].Int),
		p.SetAttack(vals[3].Int),
		p.SetDecay(vals[4].Int),
		p.SetDecayMode(enums.DecayMode(vals[5].Int)),
		p.SetVelToLevel(vals[6].Int),
		p.SetFilter1Type(enums.FilterType(vals[7].Int)),
		p.SetFilter1Freq(vals[8].Int),
		p.SetFilter1Res(vals[9].Int),
		p.SetFilter1VelToFreq(vals[10].Int),
		p.SetFilter2Type(enums.FilterType(vals[11].Int)),
		p.SetFilter2Freq(vals[12].Int),
		p.SetFilter2Res(vals[13].Int),
		p.SetFilter2VelToFreq(vals[14].Int),
		p.SetMixerLevel(vals[15].Int),
		p.SetMixerPan(enums.Pan(vals[16].Int)),
		p.SetOutput(enums.Output(vals[17].Int)),
		p.SetFXSend(enums.FXSend(vals[18].Int)),
		p.SetFXSendLevel(vals[19].Int),
		p.SetFilterAttenuation(enums.FilterAttenuation(vals[20].Int)),
	}
	for _, err := range steps {
		if err != nil {
			return nil, errors.Wrap(err, "decoding pad")
		}
	}
	return p, nil
}

// Encode packs the pad back into its 164-byte wire form. The MIDI note
// is not part of it; the owning Program writes the note tables.
func (p *Pad) Encode() []byte {
	b := make([]byte, 0, PadSize)
	for _, s := range p.samples {
		b = append(b, s.Encode()...)
	}
	return append(b, padLayout.Encode([]layout.Value{
		layout.Int(int(p.voiceOverlap)),
		layout.Int(p.muteGroup),
		layout.Int(p.unknown),
		layout.Int(p.attack),
		layout.Int(p.decay),
		layout.Int(int(p.decayMode)),
		layout.Int(p.velToLevel),
		layout.Int(int(p.filter1Type)),
		layout.Int(p.filter1Freq),
		layout.Int(p.filter1Res),
		layout.Int(p.filter1VelToFreq),
		layout.Int(int(p.filter2Type)),
		layout.Int(p.filter2Freq),
		layout.Int(p.filter2Res),
		layout.Int(p.filter2VelToFreq),
		layout.Int(p.mixerLevel),
		layout.Int(int(p.mixerPan)),
		layout.Int(int(p.output)),
		layout.Int(int(p.fxSend)),
		layout.Int(p.fxSendLevel),
		layout.Int(int(p.filterAttenuation)),
	})...)
}

// Sample returns the sample slot at the given index (0 to 3).
func (p *Pad) Sample(i int) *Sample {
	return p.samples[i]
}

func (p *Pad) VoiceOverlap() enums.VoiceOverlap           { return p.voiceOverlap }
func (p *Pad) MuteGroup() int                             { return p.muteGroup }
func (p *Pad) Unknown() int                               { return p.unknown }
func (p *Pad) Attack() int                                { return p.attack }
func (p *Pad) Decay() int                                 { return p.decay }
func (p *Pad) DecayMode() enums.DecayMode                 { return p.decayMode }
func (p *Pad) VelToLevel() int                            { return p.velToLevel }
func (p *Pad) Filter1Type() enums.FilterType              { return p.filter1Type }
func (p *Pad) Filter1Freq() int                           { return p.filter1Freq }
func (p *Pad) Filter1Res() int                            { return p.filter1Res }
func (p *Pad) Filter1VelToFreq() int                      { return p.filter1VelToFreq }
func (p *Pad) Filter2Type() enums.FilterType              { return p.filter2Type }
func (p *Pad) Filter2Freq() int                           { return p.filter2Freq }
func (p *Pad) Filter2Res() int                            { return p.filter2Res }
func (p *Pad) Filter2VelToFreq() int                      { return p.filter2VelToFreq }
func (p *Pad) MixerLevel() int                            { return p.mixerLevel }
func (p *Pad) MixerPan() enums.Pan                        { return p.mixerPan }
func (p *Pad) Output() enums.Output                       { return p.output }
func (p *Pad) FXSend() enums.FXSend                       { return p.fxSend }
func (p *Pad) FXSendLevel() int                           { return p.fxSendLevel }
func (p *Pad) FilterAttenuation() enums.FilterAttenuation { return p.filterAttenuation }
func (p *Pad) MidiNote() int                              { return p.midiNote }

func (p *Pad) SetVoiceOverlap(v enums.VoiceOverlap) error {
	val, err := intInRange("voice_overlap", int(v), 0, 1)
	if err != nil {
		return err
	}
	p.voiceOverlap = enums.VoiceOverlap(val)
	return nil
}

// SetMuteGroup assigns the pad to a mute group, 0 meaning none.
func (p *Pad) SetMuteGroup(v int) error {
	val, err := intInRange("mute_group", v, 0, 32)
	if err != nil {
		return err
	}
	p.muteGroup = val
	return nil
}

// SetUnknown writes the undocumented body byte. It is preserved across
// a load/save cycle but not interpreted.
func (p *Pad) SetUnknown(v int) error {
	val, err := intInRange("unknown", v, 0, 255)
	if err != nil {
		return err
	}
	p.unknown = val
	return nil
}

func (p *Pad) SetAttack(v int) error {
	val, err := intInRange("attack", v, 0, 100)
	if err != nil {
		return err
	}
	p.attack = val
	return nil
}

func (p *Pad) SetDecay(v int) error {
	val, err := intInRange("decay", v, 0, 100)
	if err != nil {
		return err
	}
	p.decay = val
	return nil
}

func (p *Pad) SetDecayMode(v enums.DecayMode) error {
	val, err := intInRange("decay_mode", int(v), 0, 1)
	if err != nil {
		return err
	}
	p.decayMode = enums.DecayMode(val)
	return nil
}

func (p *Pad) SetVelToLevel(v int) error {
	val, err := intInRange("vel_to_level", v, 0, 100)
	if err != nil {
		return err
	}
	p.velToLevel = val
	return nil
}

func (p *Pad) SetFilter1Type(v enums.FilterType) error {
	val, err := intInRange("filter_1_type", int(v), 0, 3)
	if err != nil {
		return err
	}
	p.filter1Type = enums.FilterType(val)
	return nil
}

func (p *Pad) SetFilter1Freq(v int) error {
	val, err := intInRange("filter_1_freq", v, 0, 100)
	if err != nil {
		return err
	}
	p.filter1Freq = val
	return nil
}

func (p *Pad) SetFilter1Res(v int) error {
	val, err := intInRange("filter_1_res", v, 0, 100)
	if err != nil {
		return err
	}
	p.filter1Res = val
	return nil
}

func (p *Pad) SetFilter1VelToFreq(v int) error {
	val, err := intInRange("filter_1_vel_to_freq", v, 0, 100)
	if err != nil {
		return err
	}
	p.filter1VelToFreq = val
	return nil
}

// SetFilter2Type accepts Link in addition to the first filter's types.
func (p *Pad) SetFilter2Type(v enums.FilterType) error {
	val, err := intInRange("filter_2_type", int(v), 0, 4)
	if err != nil {
		return err
	}
	p.filter2Type = enums.FilterType(val)
	return nil
}

func (p *Pad) SetFilter2Freq(v int) error {
	val, err := intInRange("filter_2_freq", v, 0, 100)
	if err != nil {
		return err
	}
	p.filter2Freq = val
	return nil
}

func (p *Pad) SetFilter2Res(v int) error {
	val, err := intInRange("filter_2_res", v, 0, 100)
	if err != nil {
		return err
	}
	p.filter2Res = val
	return nil
}

func (p *Pad) SetFilter2VelToFreq(v int) error {
	val, err := intInRange("filter_2_vel_to_freq", v, 0, 100)
	if err != nil {
		return err
	}
	p.filter2VelToFreq = val
	return nil
}

func (p *Pad) SetMixerLevel(v int) error {
	val, err := intInRange("mixer_level", v, 0, 100)
	if err != nil {
		return err
	}
	p.mixerLevel = val
	return nil
}

func (p *Pad) SetMixerPan(v enums.Pan) error {
	val, err := intInRange("mixer_pan", int(v), 0, 100)
	if err != nil {
		return err
	}
	p.mixerPan = enums.Pan(val)
	return nil
}

func (p *Pad) SetOutput(v enums.Output) error {
	val, err := intInRange("output", int(v), 0, 2)
	if err != nil {
		return err
	}
	p.output = enums.Output(val)
	return nil
}

func (p *Pad) SetFXSend(v enums.FXSend) error {
	val, err := intInRange("fx_send", int(v), 0, 2)
	if err != nil {
		return err
	}
	p.fxSend = enums.FXSend(val)
	return nil
}

func (p *Pad) SetFXSendLevel(v int) error {
	val, err := intInRange("fx_send_level", v, 0, 100)
	if err != nil {
		return err
	}
	p.fxSendLevel = val
	return nil
}

func (p *Pad) SetFilterAttenuation(v enums.FilterAttenuation) error {
	val, err := intInRange("filter_attenuation", int(v), 0, 2)
	if err != nil {
		return err
	}
	p.filterAttenuation = enums.FilterAttenuation(val)
	return nil
}

// SetMidiNote assigns the MIDI note that triggers this pad. The value
// is stored in the program's note tables on encode.
func (p *Pad) SetMidiNote(v int) error {
	val, err := intInRange("midi_note", v, 0, 127)
	if err != nil {
		return err
	}
	p.midiNote = val
	return nil
}

func (p *Pad) String() string {
	lines := []string{
		fmt.Sprintf("MIDI Note          %d", p.midiNote),
		fmt.Sprintf("Voice Overlap      %s", p.voiceOverlap),
		fmt.Sprintf("Mute Group         %d", p.muteGroup),
		fmt.Sprintf("Attack             %d", p.attack),
		fmt.Sprintf("Decay              %d", p.decay),
		fmt.Sprintf("Decay Mode         %s", p.decayMode),
		fmt.Sprintf("Vel to Level       %d", p.velToLevel),
		fmt.Sprintf("Filter 1           %s freq=%d res=%d vel=%d", p.filter1Type, p.filter1Freq, p.filter1Res, p.filter1VelToFreq),
		fmt.Sprintf("Filter 2           %s freq=%d res=%d vel=%d", p.filter2Type, p.filter2Freq, p.filter2Res, p.filter2VelToFreq),
		fmt.Sprintf("Mixer Level        %d", p.mixerLevel),
		fmt.Sprintf("Mixer Pan          %s", p.mixerPan),
		fmt.Sprintf("Output             %s", p.output),
		fmt.Sprintf("FX Send            %s level=%d", p.fxSend, p.fxSendLevel),
		fmt.Sprintf("Filter Attenuation %s", p.filterAttenuation),
	}
	for i, s := range p.samples {
		lines = append(lines, fmt.Sprintf("Sample %d", i))
		lines = append(lines, util.Indent(s.String(), "\t"))
	}
	return strings.Join(lines, "\n")
}

type padJSON struct {
	Samples           []*Sample               `json:"samples"`
	MidiNote          int                     `json:"midi_note"`
	VoiceOverlap      enums.VoiceOverlap      `json:"voice_overlap"`
	MuteGroup         int                     `json:"mute_group"`
	Unknown           int                     `json:"unknown"`
	Attack            int                     `json:"attack"`
	Decay             int                     `json:"decay"`
	DecayMode         enums.DecayMode         `json:"decay_mode"`
	VelToLevel        int                     `json:"vel_to_level"`
	Filter1Type       enums.FilterType        `json:"filter_1_type"`
	Filter1Freq       int                     `json:"filter_1_freq"`
	Filter1Res        int                     `json:"filter_1_res"`
	Filter1VelToFreq  int                     `json:"filter_1_vel_to_freq"`
	Filter2Type       enums.FilterType        `json:"filter_2_type"`
	Filter2Freq       int                     `json:"filter_2_freq"`
	Filter2Res        int                     `json:"filter_2_res"`
	Filter2VelToFreq  int                     `json:"filter_2_vel_to_freq"`
	MixerLevel        int                     `json:"mixer_level"`
	MixerPan          enums.Pan               `json:"mixer_pan"`
	Output            enums.Output            `json:"output"`
	FXSend            enums.FXSend            `json:"fx_send"`
	FXSendLevel       int                     `json:"fx_send_level"`
	FilterAttenuation enums.FilterAttenuation `json:"filter_attenuation"`
}

func (p *Pad) MarshalJSON() ([]byte, error) {
	return json.Marshal(&padJSON{
		Samples:           p.samples[:],
		MidiNote:          p.midiNote,
		VoiceOverlap:      p.voiceOverlap,
		MuteGroup:         p.muteGroup,
		Unknown:           p.unknown,
		Attack:            p.attack,
		Decay:             p.decay,
		DecayMode:         p.decayMode,
		VelToLevel:        p.velToLevel,
		Filter1Type:       p.filter1Type,
		Filter1Freq:       p.filter1Freq,
		Filter1Res:        p.filter1Res,
		Filter1VelToFreq:  p.filter1VelToFreq,
		Filter2Type:       p.filter2Type,
		Filter2Freq:       p.filter2Freq,
		Filter2Res:        p.filter2Res,
		Filter2VelToFreq:  p.filter2VelToFreq,
		MixerLevel:        p.mixerLevel,
		MixerPan:          p.mixerPan,
		Output:            p.output,
		FXSend:            p.fxSend,
		FXSendLevel:       p.fxSendLevel,
		FilterAttenuation: p.filterAttenuation,
	})
}
