package gmath

import (
	"fmt"
	"math"
)

// SineWave is a value generator describing a sine wave by wavelength,
// amplitude range and phase shift. Handy for animating radii or offsets.
type SineWave struct {
	wavelength float64
	amplitude  Range
	phaseShift float64
}

// NewSineWave creates a sine wave. phaseShift is a fraction of a full
// wavelength and must lie in [0, 1].
func NewSineWave(wavelength float64, amplitude Range, phaseShift float64) SineWave {
	if phaseShift < 0 || phaseShift > 1 {
		panic(fmt.Sprintf("gmath: SineWave phase shift %f must be between 0 and 1", phaseShift))
	}
	return SineWave{wavelength: wavelength, amplitude: amplitude, phaseShift: phaseShift}
}

// At returns the wave value at position t.
func (w SineWave) At(t float64) float64 {
	amp := w.amplitude.Span() / 2.0
	return amp*math.Sin((2*math.Pi*t)/w.wavelength+2*math.Pi*w.phaseShift) + w.amplitude.Mid()
}

// PulseWave is a value generator that alternates between the low and high
// bounds of its amplitude range.
type PulseWave struct {
	wavelength float64
	amplitude  Range
	phaseShift float64
	pulseWidth float64
}

// NewPulseWave creates a pulse wave. phaseShift and pulseWidth are fractions
// of a full wavelength; pulseWidth is the portion spent at the low level.
func NewPulseWave(wavelength float64, amplitude Range, phaseShift, pulseWidth float64) PulseWave {
	if phaseShift < 0 || phaseShift > 1 {
		panic(fmt.Sprintf("gmath: PulseWave phase shift %f must be between 0 and 1", phaseShift))
	}
	if pulseWidth < 0 || pulseWidth > 1 {
		panic(fmt.Sprintf("gmath: PulseWave pulse width %f must be between 0 and 1", pulseWidth))
	}
	return PulseWave{wavelength: wavelength, amplitude: amplitude, phaseShift: phaseShift, pulseWidth: pulseWidth}
}

// At returns the wave value at position t.
func (w PulseWave) At(t float64) float64 {
	_, fractional := math.Modf(t/w.wavelength + w.phaseShift)
	if fractional < 0 {
		fractional += 1.0
	}
	if fractional < w.pulseWidth {
		return w.amplitude.Lo()
	}
	return w.amplitude.Hi()
}
