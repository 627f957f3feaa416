package pgm

import (
	"errors"
	"testing"
)

func TestSliderDefaults(t *testing.T) {
	s := newSlider("slider_1")
	pairs := []struct {
		name      string
		low, high int
	}{
		{"tune", s.TuneLow(), s.TuneHigh()},
		{"filter", s.FilterLow(), s.FilterHigh()},
		{"layer", s.LayerLow(), s.LayerHigh()},
		{"attack", s.AttackLow(), s.AttackHigh()},
		{"decay", s.DecayLow(), s.DecayHigh()},
	}
	wants := [][2]int{{-120, 120}, {-50, 50}, {0, 127}, {0, 100}, {0, 100}}
	for i, p := range pairs {
		if p.low != wants[i][0] || p.high != wants[i][1] {
			t.Errorf("%s = %d..%d, want %d..%d", p.name, p.low, p.high, wants[i][0], wants[i][1])
		}
	}
}

func TestSliderTunePairCorrection(t *testing.T) {
	s := newSlider("slider_1")

	// Raising the low end within the current range leaves the high end
	// alone.
	if err := s.SetTuneLow(50); err != nil {
		t.Fatalf("SetTuneLow(50): %v", err)
	}
	if got := s.TuneHigh(); got != 120 {
		t.Errorf("TuneHigh = %d, want 120", got)
	}

	// Out-of-bounds writes fail before any partner adjustment.
	err := s.SetTuneLow(130)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("SetTuneLow(130) error = %v, want *RangeError", err)
	}
	if got := s.TuneLow(); got != 50 {
		t.Errorf("TuneLow after failed write = %d, want 50", got)
	}
	if err := s.SetTuneHigh(-130); err == nil {
		t.Error("SetTuneHigh(-130) accepted")
	}
	if got := s.TuneHigh(); got != 120 {
		t.Errorf("TuneHigh after failed write = %d, want 120", got)
	}

	// Dropping the high end below the low end drags the low end down.
	if err := s.SetTuneHigh(-10); err != nil {
		t.Fatalf("SetTuneHigh(-10): %v", err)
	}
	if got := s.TuneLow(); got != -10 {
		t.Errorf("TuneLow = %d, want -10", got)
	}
}

func TestSliderPairCorrectionPerPair(t *testing.T) {
	cases := []struct {
		name     string
		setLow   func(*Slider, int) error
		setHigh  func(*Slider, int) error
		getLow   func(*Slider) int
		getHigh  func(*Slider) int
		min, max int
	}{
		{"tune", (*Slider).SetTuneLow, (*Slider).SetTuneHigh, (*Slider).TuneLow, (*Slider).TuneHigh, -120, 120},
		{"filter", (*Slider).SetFilterLow, (*Slider).SetFilterHigh, (*Slider).FilterLow, (*Slider).FilterHigh, -50, 50},
		{"layer", (*Slider).SetLayerLow, (*Slider).SetLayerHigh, (*Slider).LayerLow, (*Slider).LayerHigh, 0, 127},
		{"attack", (*Slider).SetAttackLow, (*Slider).SetAttackHigh, (*Slider).AttackLow, (*Slider).AttackHigh, 0, 100},
		{"decay", (*Slider).SetDecayLow, (*Slider).SetDecayHigh, (*Slider).DecayLow, (*Slider).DecayHigh, 0, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newSlider("slider_2")

			// Push the low end above the current high end: the high
			// end must follow.
			if err := c.setHigh(s, c.min); err != nil {
				t.Fatalf("setHigh(%d): %v", c.min, err)
			}
			if err := c.setLow(s, c.max); err != nil {
				t.Fatalf("setLow(%d): %v", c.max, err)
			}
			if got := c.getHigh(s); got != c.max {
				t.Errorf("high = %d, want %d", got, c.max)
			}

			// And back down from the other side.
			if err := c.setHigh(s, c.min); err != nil {
				t.Fatalf("setHigh(%d): %v", c.min, err)
			}
			if got := c.getLow(s); got != c.min {
				t.Errorf("low = %d, want %d", got, c.min)
			}

			if err := c.setLow(s, c.min-1); err == nil {
				t.Errorf("setLow(%d) accepted", c.min-1)
			}
			if err := c.setHigh(s, c.max+1); err == nil {
				t.Errorf("setHigh(%d) accepted", c.max+1)
			}
		})
	}
}

func TestSliderPairsAreIndependent(t *testing.T) {
	s := newSlider("slider_1")
	if err := s.SetLayerLow(127); err != nil {
		t.Fatalf("SetLayerLow(127): %v", err)
	}
	// Only the layer pair moved.
	if s.TuneLow() != -120 || s.FilterLow() != -50 || s.AttackLow() != 0 || s.DecayLow() != 0 {
		t.Error("other pairs moved with the layer pair")
	}
}

func TestSliderPadAndParameterRanges(t *testing.T) {
	s := newSlider("slider_1")
	if err := s.SetPad(63); err != nil {
		t.Errorf("SetPad(63): %v", err)
	}
	if err := s.SetPad(64); err == nil {
		t.Error("SetPad(64) accepted")
	}
	if err := s.SetParameter(5); err == nil {
		t.Error("SetParameter(5) accepted")
	}
}
