package ui

import (
	"math"
	"strconv"
)

// Slider is a keyboard driven stand-in for a range input; its value is read back as text
type Slider struct {
	value, min, max, step float64
	disabled              bool
}

func NewSlider(value, min, max, step float64) *Slider {
	s := &Slider{min: min, max: max, step: step}
	s.set(value)
	return s
}

func (s *Slider) set(v float64) {
	// Snap to the step grid so repeated moves do not accumulate float error
	v = math.Round(v/s.step) * s.step
	s.value = math.Max(s.min, math.Min(s.max, v))
}

func (s *Slider) Increase() {
	if !s.disabled {
		s.set(s.value + s.step)
	}
}

func (s *Slider) Decrease() {
	if !s.disabled {
		s.set(s.value - s.step)
	}
}

func (s *Slider) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Text returns the value the way a range input reports it
func (s *Slider) Text() string {
	return strconv.FormatFloat(s.value, 'f', 2, 64)
}
