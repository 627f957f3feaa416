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

var sampleLayout = layout.New(
	layout.BytesField("sample_name", 16),
	layout.Pad(1),
	layout.U8Field("level"),
	layout.U8Field("range_upper"),
	layout.U8Field("range_lower"),
	layout.I16Field("tuning"),
	layout.U8Field("play_mode"),
	layout.Pad(1),
)

// SampleSize is the packed size of one sample slot record.
var SampleSize = sampleLayout.Size()

// Sample is one of the four sample slots of a pad. All fields are
// written through validated setters; a failed write leaves the slot
// unchanged.
type Sample struct {
	name       string
	level      int
	rangeUpper int
	rangeLower int
	tuning     int
	playMode   enums.PlayMode
}

// DecodeSample decodes one 24-byte sample slot record. Every field is
// validated; a record with a legal length but an out-of-range value
// fails rather than being clamped.
func DecodeSample(b []byte) (*Sample, error) {
	vals, err := sampleLayout.Decode(b)
	if err != nil {
		return nil, errors.Wrap(err, "decoding sample")
	}
	s := &Sample{}
	steps := []error{
		s.SetName(util.ZeroPadSliceToString(vals[0].Bytes)),
		s.SetLevel(vals[1].Int),
		s.SetRangeUpper(vals[2].Int),
		s.SetRangeLower(vals[3].Int),
		s.SetTuning(vals[4].Int),
		s.SetPlayMode(enums.PlayMode(vals[5].Int)),
	}
	for _, err := range steps {
		if err != nil {
			return nil, errors.Wrap(err, "decoding sample")
		}
	}
	return s, nil
}

// Encode packs the slot back into its 24-byte wire form, NUL-padding
// the name.
func (s *Sample) Encode() []byte {
	return sampleLayout.Encode([]layout.Value{
		layout.Str([]byte(s.name)),
		layout.Int(s.level),
		layout.Int(s.rangeUpper),
		layout.Int(s.rangeLower),
		layout.Int(s.tuning),
		layout.Int(int(s.playMode)),
	})
}

func (s *Sample) Name() string             { return s.name }
func (s *Sample) Level() int               { return s.level }
func (s *Sample) RangeUpper() int          { return s.rangeUpper }
func (s *Sample) RangeLower() int          { return s.rangeLower }
func (s *Sample) Tuning() int              { return s.tuning }
func (s *Sample) PlayMode() enums.PlayMode { return s.playMode }

func (s *Sample) SetName(v string) error {
	name, err := validateName("sample_name", v)
	if err != nil {
		return err
	}
	s.name = name
	return nil
}

func (s *Sample) SetLevel(v int) error {
	level, err := intInRange("level", v, 0, 100)
	if err != nil {
		return err
	}
	s.level = level
	return nil
}

func (s *Sample) SetRangeUpper(v int) error {
	upper, err := intInRange("range_upper", v, 0, 127)
	if err != nil {
		return err
	}
	s.rangeUpper = upper
	return nil
}

func (s *Sample) SetRangeLower(v int) error {
	lower, err := intInRange("range_lower", v, 0, 127)
	if err != nil {
		return err
	}
	s.rangeLower = lower
	return nil
}

func (s *Sample) SetTuning(v int) error {
	tuning, err := intInRange("tuning", v, -3600, 3600)
	if err != nil {
		return err
	}
	s.tuning = tuning
	return nil
}

func (s *Sample) SetPlayMode(v enums.PlayMode) error {
	mode, err := intInRange("play_mode", int(v), 0, 1)
	if err != nil {
		return err
	}
	s.playMode = enums.PlayMode(mode)
	return nil
}

func (s *Sample) String() string {
	lines := []string{
		fmt.Sprintf("Name        [%s]", s.name),
		fmt.Sprintf("Level       %d", s.level),
		fmt.Sprintf("Range Upper %d", s.rangeUpper),
		fmt.Sprintf("Range Lower %d", s.rangeLower),
		fmt.Sprintf("Tuning      %d", s.tuning),
		fmt.Sprintf("Play Mode   %s", s.playMode),
	}
	return strings.Join(lines, "\n")
}

func (s *Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name       string         `json:"name"`
		Level      int            `json:"level"`
		RangeUpper int            `json:"range_upper"`
		RangeLower int            `json:"range_lower"`
		Tuning     int            `json:"tuning"`
		PlayMode   enums.PlayMode `json:"play_mode"`
	}{s.name, s.level, s.rangeUpper, s.rangeLower, s.tuning, s.playMode})
}
