package pgm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mpckit/mpc1k/pgm/enums"
)

// rangePair is a low/high field pair with the invariant low <= high.
// Both ends write through set so the self-correction rule lives in one
// place: moving low above high drags high up, moving high below low
// drags low down. The incoming value is bounds-checked before either
// end moves, so a rejected write changes nothing.
type rangePair struct {
	field string
	min   int
	max   int
	low   int
	high  int
}

func (r *rangePair) set(value int, highEnd bool) error {
	suffix := "_low"
	if highEnd {
		suffix = "_high"
	}
	v, err := intInRange(r.field+suffix, value, r.min, r.max)
	if err != nil {
		return err
	}
	if highEnd {
		r.high = v
		if v < r.low {
			r.low = v
		}
	} else {
		r.low = v
		if r.high < v {
			r.high = v
		}
	}
	return nil
}

// Slider is one of the two Q-Link slider assignments: the pad it
// controls, the swept parameter, and one low/high range per parameter.
type Slider struct {
	field     string
	pad       int
	unknown   int
	parameter enums.SliderParameter
	tune      rangePair
	filter    rangePair
	layer     rangePair
	attack    rangePair
	decay     rangePair
}

// newSlider returns a slider with the ranges the hardware initializes
// them to. field is the name prefix used in errors ("slider_1" or
// "slider_2").
func newSlider(field string) *Slider {
	return &Slider{
		field:  field,
		tune:   rangePair{field: field + "_tune", min: -120, max: 120, low: -120, high: 120},
		filter: rangePair{field: field + "_filter", min: -50, max: 50, low: -50, high: 50},
		layer:  rangePair{field: field + "_layer", min: 0, max: 127, low: 0, high: 127},
		attack: rangePair{field: field + "_attack", min: 0, max: 100, low: 0, high: 100},
		decay:  rangePair{field: field + "_decay", min: 0, max: 100, low: 0, high: 100},
	}
}

func (s *Slider) Pad() int                         { return s.pad }
func (s *Slider) Unknown() int                     { return s.unknown }
func (s *Slider) Parameter() enums.SliderParameter { return s.parameter }
func (s *Slider) TuneLow() int                     { return s.tune.low }
func (s *Slider) TuneHigh() int                    { return s.tune.high }
func (s *Slider) FilterLow() int                   { return s.filter.low }
func (s *Slider) FilterHigh() int                  { return s.filter.high }
func (s *Slider) LayerLow() int                    { return s.layer.low }
func (s *Slider) LayerHigh() int                   { return s.layer.high }
func (s *Slider) AttackLow() int                   { return s.attack.low }
func (s *Slider) AttackHigh() int                  { return s.attack.high }
func (s *Slider) DecayLow() int                    { return s.decay.low }
func (s *Slider) DecayHigh() int                   { return s.decay.high }

func (s *Slider) SetPad(v int) error {
	val, err := intInRange(s.field+"_pad", v, 0, 63)
	if err != nil {
		return err
	}
	s.pad = val
	return nil
}

// SetUnknown writes the undocumented slider byte (1 in factory
// programs); preserved, not interpreted.
func (s *Slider) SetUnknown(v int) error {
	val, err := intInRange(s.field+"_unknown", v, 0, 255)
	if err != nil {
		return err
	}
	s.unknown = val
	return nil
}

func (s *Slider) SetParameter(v enums.SliderParameter) error {
	val, err := intInRange(s.field+"_parameter", int(v), 0, 4)
	if err != nil {
		return err
	}
	s.parameter = enums.SliderParameter(val)
	return nil
}

func (s *Slider) SetTuneLow(v int) error    { return s.tune.set(v, false) }
func (s *Slider) SetTuneHigh(v int) error   { return s.tune.set(v, true) }
func (s *Slider) SetFilterLow(v int) error  { return s.filter.set(v, false) }
func (s *Slider) SetFilterHigh(v int) error { return s.filter.set(v, true) }
func (s *Slider) SetLayerLow(v int) error   { return s.layer.set(v, false) }
func (s *Slider) SetLayerHigh(v int) error  { return s.layer.set(v, true) }
func (s *Slider) SetAttackLow(v int) error  { return s.attack.set(v, false) }
func (s *Slider) SetAttackHigh(v int) error { return s.attack.set(v, true) }
func (s *Slider) SetDecayLow(v int) error   { return s.decay.set(v, false) }
func (s *Slider) SetDecayHigh(v int) error  { return s.decay.set(v, true) }

func (s *Slider) String() string {
	lines := []string{
		fmt.Sprintf("Pad         %d", s.pad),
		fmt.Sprintf("Parameter   %s", s.parameter),
		fmt.Sprintf("Tune        %d to %d", s.tune.low, s.tune.high),
		fmt.Sprintf("Filter      %d to %d", s.filter.low, s.filter.high),
		fmt.Sprintf("Layer       %d to %d", s.layer.low, s.layer.high),
		fmt.Sprintf("Attack      %d to %d", s.attack.low, s.attack.high),
		fmt.Sprintf("Decay       %d to %d", s.decay.low, s.decay.high),
		fmt.Sprintf("Unknown     %d", s.unknown),
	}
	return strings.Join(lines, "\n")
}

func (s *Slider) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Pad        int                   `json:"pad"`
		Unknown    int                   `json:"unknown"`
		Parameter  enums.SliderParameter `json:"parameter"`
		TuneLow    int                   `json:"tune_low"`
		TuneHigh   int                   `json:"tune_high"`
		FilterLow  int                   `json:"filter_low"`
		FilterHigh int                   `json:"filter_high"`
		LayerLow   int                   `json:"layer_low"`
		LayerHigh  int                   `json:"layer_high"`
		AttackLow  int                   `json:"attack_low"`
		AttackHigh int                   `json:"attack_high"`
		DecayLow   int                   `json:"decay_low"`
		DecayHigh  int                   `json:"decay_high"`
	}{
		s.pad, s.unknown, s.parameter,
		s.tune.low, s.tune.high,
		s.filter.low, s.filter.high,
		s.layer.low, s.layer.high,
		s.attack.low, s.attack.high,
		s.decay.low, s.decay.high,
	})
}
