package enums

import (
	"encoding/json"
	"fmt"
)

type PlayMode int

const (
	PlayMode_OneShot PlayMode = iota
	PlayMode_NoteOn
)

func (m PlayMode) String() string {
	s := "unknown"
	switch m {
	case 0:
		s = "One Shot"
	case 1:
		s = "Note On"
	}
	return fmt.Sprintf("%s(%d)", s, m)
}

func (m PlayMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

type VoiceOverlap int

const (
	VoiceOverlap_Poly VoiceOverlap = iota
	VoiceOverlap_Mono
)

func (v VoiceOverlap) String() string {
	s := "unknown"
	switch v {
	case 0:
		s = "Poly"
	case 1:
		s = "Mono"
	}
	return fmt.Sprintf("%s(%d)", s, v)
}

func (v VoiceOverlap) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// DecayMode selects which end of the sample the decay envelope is
// anchored to.
type DecayMode int

const (
	DecayMode_End DecayMode = iota
	DecayMode_Start
)

func (m DecayMode) String() string {
	s := "unknown"
	switch m {
	case 0:
		s = "End"
	case 1:
		s = "Start"
	}
	return fmt.Sprintf("%s(%d)", s, m)
}

func (m DecayMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// FilterType_Link is only legal on the second filter of a pad.
type FilterType int

const (
	FilterType_Off FilterType = iota
	FilterType_Lowpass
	FilterType_Bandpass
	FilterType_Highpass
	FilterType_Link
)

func (t FilterType) String() string {
	s := "unknown"
	switch t {
	case 0:
		s = "Off"
	case 1:
		s = "Lowpass"
	case 2:
		s = "Bandpass"
	case 3:
		s = "Highpass"
	case 4:
		s = "Link"
	}
	return fmt.Sprintf("%s(%d)", s, t)
}

func (t FilterType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

type Output int

const (
	Output_Stereo Output = iota
	Output_12
	Output_34
)

func (o Output) String() string {
	s := "unknown"
	switch o {
	case 0:
		s = "Stereo"
	case 1:
		s = "1-2"
	case 2:
		s = "3-4"
	}
	return fmt.Sprintf("%s(%d)", s, o)
}

func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

type FXSend int

const (
	FXSend_Off FXSend = iota
	FXSend_1
	FXSend_2
)

func (f FXSend) String() string {
	s := "unknown"
	switch f {
	case 0:
		s = "Off"
	case 1:
		s = "1"
	case 2:
		s = "2"
	}
	return fmt.Sprintf("%s(%d)", s, f)
}

func (f FXSend) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

type FilterAttenuation int

const (
	FilterAttenuation_0dB FilterAttenuation = iota
	FilterAttenuation_6dB
	FilterAttenuation_12dB
)

func (a FilterAttenuation) String() string {
	s := "unknown"
	switch a {
	case 0:
		s = "0dB"
	case 1:
		s = "-6dB"
	case 2:
		s = "-12dB"
	}
	return fmt.Sprintf("%s(%d)", s, a)
}

func (a FilterAttenuation) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// SliderParameter is the pad parameter a Q-Link slider sweeps.
type SliderParameter int

const (
	SliderParameter_Tune SliderParameter = iota
	SliderParameter_Filter
	SliderParameter_Layer
	SliderParameter_Attack
	SliderParameter_Decay
)

func (p SliderParameter) String() string {
	s := "unknown"
	switch p {
	case 0:
		s = "Tune"
	case 1:
		s = "Filter"
	case 2:
		s = "Layer"
	case 3:
		s = "Attack"
	case 4:
		s = "Decay"
	}
	return fmt.Sprintf("%s(%d)", s, p)
}

func (p SliderParameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Pan positions a pad in the stereo field. 50 is center, lower values
// pan left, higher values pan right.
type Pan int

const (
	Pan_Center Pan = 50
)

func (p Pan) String() string {
	v := int(p)
	if v == 50 {
		return "C"
	} else if 0 <= v && v < 50 {
		return fmt.Sprintf("L%d", 50-v)
	} else if 50 < v && v <= 100 {
		return fmt.Sprintf("R%d", v-50)
	} else {
		return "undefined"
	}
}

func (p Pan) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
