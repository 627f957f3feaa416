package pgm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mpckit/mpc1k/pgm/layout"
)

const (
	padRegionStart    = 24
	noteTableStart    = padRegionStart + NumPads*164
	inverseTableStart = noteTableStart + 64
	globalRegionStart = inverseTableStart + 128
)

func TestProgramSize(t *testing.T) {
	if ProgramSize != 10756 {
		t.Fatalf("ProgramSize = %d, want 10756", ProgramSize)
	}
	if got := len(DefaultProgramData()); got != ProgramSize {
		t.Fatalf("default data is %d bytes, want %d", got, ProgramSize)
	}
}

func TestNewProgram(t *testing.T) {
	p, err := NewProgram()
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if got := p.FileSize(); got != ProgramSize {
		t.Errorf("FileSize = %d, want %d", got, ProgramSize)
	}
	if got := p.FileType(); got != "MPC1000 PGM 1.00" {
		t.Errorf("FileType = %q", got)
	}
	if got := p.MidiProgramChange(); got != 0 {
		t.Errorf("MidiProgramChange = %d, want 0", got)
	}
	if got := p.Slider1().Unknown(); got != 1 {
		t.Errorf("Slider1 unknown = %d, want 1", got)
	}
}

func TestProgramRoundTrip(t *testing.T) {
	data := DefaultProgramData()
	p, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	enc := p.Encode()
	if !bytes.Equal(enc, data) {
		t.Fatal("Encode differs from source buffer")
	}
	// Encoding is idempotent without mutation in between.
	if !bytes.Equal(p.Encode(), enc) {
		t.Fatal("second Encode differs from first")
	}
}

func TestProgramRegeneratesInverseTable(t *testing.T) {
	data := DefaultProgramData()
	// Corrupt the stored note-to-pad table; it is ignored on load and
	// rebuilt from the pad notes on save.
	for i := inverseTableStart; i < globalRegionStart; i++ {
		data[i] = 0xFF
	}
	p, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	if got, want := p.Encode(), DefaultProgramData(); !bytes.Equal(got, want) {
		t.Fatal("corrupted inverse table was not regenerated")
	}

	table := p.MidiNotePads()
	if got := table[p.Pad(0).MidiNote()]; got != 0 {
		t.Errorf("table[pad 0 note] = %d, want 0", got)
	}
}

func TestMidiNoteCollisionHigherPadWins(t *testing.T) {
	p, err := NewProgram()
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if err := p.Pad(3).SetMidiNote(60); err != nil {
		t.Fatalf("SetMidiNote: %v", err)
	}
	if err := p.Pad(7).SetMidiNote(60); err != nil {
		t.Fatalf("SetMidiNote: %v", err)
	}
	if got := p.MidiNotePads()[60]; got != 7 {
		t.Errorf("table[60] = %d, want 7", got)
	}
}

func TestUnclaimedNotesAreSentinel(t *testing.T) {
	p, err := NewProgram()
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	claimed := map[int]bool{}
	for _, n := range p.PadMidiNotes() {
		claimed[n] = true
	}
	for note, pad := range p.MidiNotePads() {
		if !claimed[note] && pad != NoPad {
			t.Errorf("table[%d] = %d, want sentinel %d", note, pad, NoPad)
		}
	}
}

func TestMutationLocality(t *testing.T) {
	data := DefaultProgramData()
	p, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	if err := p.Pad(0).Sample(0).SetName("Example"); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	enc := p.Encode()
	if bytes.Equal(enc, data) {
		t.Fatal("encoded buffer unchanged after mutation")
	}
	// Only the 16-byte name field of pad 0, sample 0 may differ.
	nameStart := padRegionStart
	nameEnd := nameStart + 16
	if !bytes.Equal(enc[:nameStart], data[:nameStart]) {
		t.Error("bytes before the name field changed")
	}
	if !bytes.Equal(enc[nameEnd:], data[nameEnd:]) {
		t.Error("bytes after the name field changed")
	}
	want := append([]byte("Example"), make([]byte, 9)...)
	if !bytes.Equal(enc[nameStart:nameEnd], want) {
		t.Errorf("name field = % X, want % X", enc[nameStart:nameEnd], want)
	}
}

func TestDecodeProgramTruncated(t *testing.T) {
	_, err := DecodeProgram(DefaultProgramData()[:ProgramSize-1])
	var te *layout.TruncatedInputError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TruncatedInputError", err)
	}
}

func TestDecodeProgramRejectsOutOfRangeField(t *testing.T) {
	data := DefaultProgramData()
	data[padRegionStart+17] = 200 // pad 0, sample 0 level
	_, err := DecodeProgram(data)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *RangeError", err)
	}
}

func TestDecodeProgramRejectsOutOfRangeMidiNote(t *testing.T) {
	data := DefaultProgramData()
	data[noteTableStart] = 200
	_, err := DecodeProgram(data)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *RangeError", err)
	}
	if re.Field != "midi_note" {
		t.Errorf("Field = %q, want midi_note", re.Field)
	}
}

func TestMidiProgramChangeRange(t *testing.T) {
	p, err := NewProgram()
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if err := p.SetMidiProgramChange(128); err != nil {
		t.Errorf("SetMidiProgramChange(128): %v", err)
	}
	if err := p.SetMidiProgramChange(129); err == nil {
		t.Error("SetMidiProgramChange(129) accepted")
	}
}

func TestDecodeAppliesSliderValues(t *testing.T) {
	data := DefaultProgramData()
	// slider_1 tune low/high live at global offsets 4 and 5.
	tuneLow := int8(-20)
	data[globalRegionStart+4] = byte(tuneLow)
	data[globalRegionStart+5] = 30
	p, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	if got := p.Slider1().TuneLow(); got != -20 {
		t.Errorf("TuneLow = %d, want -20", got)
	}
	if got := p.Slider1().TuneHigh(); got != 30 {
		t.Errorf("TuneHigh = %d, want 30", got)
	}
}
