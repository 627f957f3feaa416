package pgm

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mpckit/mpc1k/pgm/enums"
	"github.com/mpckit/mpc1k/pgm/layout"
	"github.com/mpckit/mpc1k/pgm/log"
	"github.com/mpckit/mpc1k/pgm/util"
	"github.com/pkg/errors"
)

const (
	// NumPads is the fixed number of trigger pads per program.
	NumPads = 64

	// NoPad is the sentinel in the note-to-pad table for a MIDI note
	// that no pad is assigned to.
	NoPad = 64

	padMidiNoteTableSize = 64
	midiNotePadTableSize = 128
)

var headerLayout = layout.New(
	layout.U16Field("file_size"),
	layout.Pad(2),
	layout.BytesField("file_type", 16),
	layout.Pad(4),
)

var globalLayout = layout.New(
	layout.U8Field("midi_program_change"),
	layout.U8Field("slider_1_pad"),
	layout.U8Field("slider_1_unknown"),
	layout.U8Field("slider_1_parameter"),
	layout.I8Field("slider_1_tune_low"),
	layout.I8Field("slider_1_tune_high"),
	layout.I8Field("slider_1_filter_low"),
	layout.I8Field("slider_1_filter_high"),
	layout.U8Field("slider_1_layer_low"),
	layout.U8Field("slider_1_layer_high"),
	layout.U8Field("slider_1_attack_low"),
	layout.U8Field("slider_1_attack_high"),
	layout.U8Field("slider_1_decay_low"),
	layout.U8Field("slider_1_decay_high"),
	layout.U8Field("slider_2_pad"),
	layout.U8Field("slider_2_unknown"),
	layout.U8Field("slider_2_parameter"),
	layout.I8Field("slider_2_tune_low"),
	layout.I8Field("slider_2_tune_high"),
	layout.I8Field("slider_2_filter_low"),
	layout.I8Field("slider_2_filter_high"),
	layout.U8Field("slider_2_layer_low"),
	layout.U8Field("slider_2_layer_high"),
	layout.U8Field("slider_2_attack_low"),
	layout.U8Field("slider_2_attack_high"),
	layout.U8Field("slider_2_decay_low"),
	layout.U8Field("slider_2_decay_high"),
	layout.Pad(17),
)

// ProgramSize is the exact size of a v1.00 program file: header, 64
// pads, the two note tables and the global block.
var ProgramSize = headerLayout.Size() + NumPads*PadSize +
	padMidiNoteTableSize + midiNotePadTableSize + globalLayout.Size()

// Program is the decoded form of one MPC 1000 program file. It owns
// its 64 pads and 2 sliders for its whole lifetime; treat one Program
// as a single-writer value.
type Program struct {
	fileSize          int
	fileType          [16]byte
	pads              [NumPads]*Pad
	midiProgramChange int
	sliders           [2]*Slider
}

// DecodeProgram decodes a complete program file buffer. The five
// regions are decoded in file order; any invalid field aborts the
// whole program.
func DecodeProgram(b []byte) (*Program, error) {
	if len(b) < ProgramSize {
		return nil, errors.WithStack(&layout.TruncatedInputError{Want: ProgramSize, Got: len(b)})
	}
	p := &Program{
		sliders: [2]*Slider{newSlider("slider_1"), newSlider("slider_2")},
	}

	log.Debugf("decoding header (%d bytes)", headerLayout.Size())
	vals, err := headerLayout.Decode(b)
	if err != nil {
		return nil, errors.Wrap(err, "decoding header")
	}
	p.fileSize = vals[0].Int
	copy(p.fileType[:], vals[1].Bytes)
	off := headerLayout.Size()

	log.Debugf("decoding %d pads (%d bytes each)", NumPads, PadSize)
	for i := 0; i < NumPads; i++ {
		pad, err := DecodePad(b[off:])
		if err != nil {
			return nil, errors.Wrapf(err, "pad %d", i)
		}
		p.pads[i] = pad
		off += PadSize
	}

	log.Debugf("decoding pad MIDI note table")
	for i := 0; i < padMidiNoteTableSize; i++ {
		if err := p.pads[i].SetMidiNote(int(b[off+i])); err != nil {
			return nil, errors.Wrapf(err, "pad %d", i)
		}
	}
	off += padMidiNoteTableSize

	// The stored note-to-pad table is redundant with the table above
	// and is regenerated on encode, so its contents are only worth a
	// warning when they disagree.
	stored := util.BytesToInts(b[off : off+midiNotePadTableSize])
	derived := p.MidiNotePads()
	for i := range stored {
		if stored[i] != derived[i] {
			log.Warnf("stored note-to-pad table is inconsistent; it will be regenerated on save")
			break
		}
	}
	off += midiNotePadTableSize

	log.Debugf("decoding MIDI and slider block (%d bytes)", globalLayout.Size())
	vals, err = globalLayout.Decode(b[off:])
	if err != nil {
		return nil, errors.Wrap(err, "decoding MIDI and slider block")
	}
	if err := p.applyGlobal(vals); err != nil {
		return nil, errors.Wrap(err, "decoding MIDI and slider block")
	}
	return p, nil
}

func (p *Program) applyGlobal(vals []layout.Value) error {
	steps := []error{
		p.SetMidiProgramChange(vals[0].Int),
	}
	for i, s := range p.sliders {
		base := 1 + i*13
		// Lows are applied before highs, matching file order; the
		// pair correction never fires for a well-formed file.
		steps = append(steps,
			s.SetPad(vals[base].Int),
			s.SetUnknown(vals[base+1].Int),
			s.SetParameter(enums.SliderParameter(vals[base+2].Int)),
			s.SetTuneLow(vals[base+3].Int),
			s.SetTuneHigh(vals[base+4].Int),
			s.SetFilterLow(vals[base+5].Int),
			s.SetFilterHigh(vals[base+6].Int),
			s.SetLayerLow(vals[base+7].Int),
			s.SetLayerHigh(vals[base+8].Int),
			s.SetAttackLow(vals[base+9].Int),
			s.SetAttackHigh(vals[base+10].Int),
			s.SetDecayLow(vals[base+11].Int),
			s.SetDecayHigh(vals[base+12].Int),
		)
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}

// NewProgram returns a program decoded from the built-in factory
// default data.
func NewProgram() (*Program, error) {
	return DecodeProgram(DefaultProgramData())
}

// LoadFile decodes a program file from disk.
func LoadFile(file string) (*Program, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	p, err := DecodeProgram(b)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", file)
	}
	return p, nil
}

// Encode packs the program back into its file form. The note-to-pad
// table is not preserved from decode: it is rebuilt as the inverse of
// the live pad MIDI notes, with NoPad for unclaimed notes. When two
// pads claim the same note the higher pad index wins.
func (p *Program) Encode() []byte {
	b := make([]byte, 0, ProgramSize)
	b = append(b, headerLayout.Encode([]layout.Value{
		layout.Int(p.fileSize),
		layout.Str(p.fileType[:]),
	})...)
	for _, pad := range p.pads {
		b = append(b, pad.Encode()...)
	}
	for _, pad := range p.pads {
		b = append(b, byte(pad.midiNote))
	}
	for _, v := range p.MidiNotePads() {
		b = append(b, byte(v))
	}

	vals := []layout.Value{layout.Int(p.midiProgramChange)}
	for _, s := range p.sliders {
		vals = append(vals,
			layout.Int(s.pad),
			layout.Int(s.unknown),
			layout.Int(int(s.parameter)),
			layout.Int(s.tune.low),
			layout.Int(s.tune.high),
			layout.Int(s.filter.low),
			layout.Int(s.filter.high),
			layout.Int(s.layer.low),
			layout.Int(s.layer.high),
			layout.Int(s.attack.low),
			layout.Int(s.attack.high),
			layout.Int(s.decay.low),
			layout.Int(s.decay.high),
		)
	}
	return append(b, globalLayout.Encode(vals)...)
}

// FileSize is the size field stored in the header. It is preserved
// as read, not recomputed.
func (p *Program) FileSize() int {
	return p.fileSize
}

// FileType is the header's format tag ("MPC1000 PGM 1.00").
func (p *Program) FileType() string {
	return util.ZeroPadSliceToString(p.fileType[:])
}

// Pad returns the pad at the given index (0 to 63). The index is the
// pad number the note tables refer to.
func (p *Program) Pad(i int) *Pad {
	return p.pads[i]
}

func (p *Program) Slider1() *Slider { return p.sliders[0] }
func (p *Program) Slider2() *Slider { return p.sliders[1] }

func (p *Program) MidiProgramChange() int { return p.midiProgramChange }

// SetMidiProgramChange sets the program change number, 0 meaning off.
func (p *Program) SetMidiProgramChange(v int) error {
	val, err := intInRange("midi_program_change", v, 0, 128)
	if err != nil {
		return err
	}
	p.midiProgramChange = val
	return nil
}

// PadMidiNotes is the pad-to-note table, taken live from the pads.
func (p *Program) PadMidiNotes() []int {
	notes := make([]int, NumPads)
	for i, pad := range p.pads {
		notes[i] = pad.midiNote
	}
	return notes
}

// MidiNotePads is the note-to-pad table derived from PadMidiNotes:
// index = MIDI note, value = pad number or NoPad.
func (p *Program) MidiNotePads() []int {
	table := make([]int, midiNotePadTableSize)
	for i := range table {
		table[i] = NoPad
	}
	for i, pad := range p.pads {
		table[pad.midiNote] = i
	}
	return table
}

func (p *Program) String() string {
	lines := []string{
		strings.Repeat("=", 50),
		fmt.Sprintf("%25s", "Program"),
		strings.Repeat("=", 50),
		fmt.Sprintf("File Size            %d", p.fileSize),
		fmt.Sprintf("File Type            %s", p.FileType()),
		fmt.Sprintf("MIDI Program Change  %d", p.midiProgramChange),
		"Slider 1",
		util.Indent(p.sliders[0].String(), "    "),
		"Slider 2",
		util.Indent(p.sliders[1].String(), "    "),
		"Pad MIDI Note Values",
		util.HexGrid(p.PadMidiNotes(), "    ", 8),
		"MIDI Note Pad Values",
		util.HexGrid(p.MidiNotePads(), "    ", 8),
	}
	for i, pad := range p.pads {
		lines = append(lines,
			strings.Repeat("=", 50),
			fmt.Sprintf("Pad %d", i),
			strings.Repeat("=", 50),
			pad.String(),
		)
	}
	return strings.Join(lines, "\n")
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		FileSize          int     `json:"file_size"`
		FileType          string  `json:"file_type"`
		MidiProgramChange int     `json:"midi_program_change"`
		Slider1           *Slider `json:"slider_1"`
		Slider2           *Slider `json:"slider_2"`
		Pads              []*Pad  `json:"pads"`
	}{p.fileSize, p.FileType(), p.midiProgramChange, p.sliders[0], p.sliders[1], p.pads[:]})
}
