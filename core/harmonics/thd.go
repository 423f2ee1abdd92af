// Package harmonics provides harmonic spectrum and distortion calculators.
package harmonics

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"gridcalc/core/quantity"
	"gridcalc/internal/errors"
)

// Component is one line of a magnitude spectrum.
type Component struct {
	// Frequency in Hz
	Frequency float64 `json:"frequency_hz"`

	// Magnitude is the amplitude of the component
	Magnitude float64 `json:"magnitude"`
}

// THD computes total harmonic distortion in percent from a magnitude
// spectrum whose first entry is the fundamental and whose remaining entries
// are the harmonics, rounded to 2 decimals.
func THD(magnitudes []float64) (float64, error) {
	if len(magnitudes) == 0 {
		return 0, errors.Input("THD requires at least the fundamental magnitude")
	}
	fundamental := magnitudes[0]
	if fundamental <= 0 || !quantity.IsFinite(fundamental) {
		return 0, errors.Inputf("fundamental magnitude must be positive, got %v", fundamental)
	}

	sumSq := 0.0
	for i, m := range magnitudes[1:] {
		if m < 0 || !quantity.IsFinite(m) {
			return 0, errors.Inputf("harmonic magnitude at index %d is invalid: %v", i+1, m)
		}
		sumSq += m * m
	}

	return quantity.Round2(math.Sqrt(sumSq) / fundamental * 100), nil
}

// Spectrum computes the one-sided amplitude spectrum of a real signal
// sampled at sampleRate Hz.
func Spectrum(samples []float64, sampleRate float64) ([]Component, error) {
	if len(samples) < 2 {
		return nil, errors.Input("spectrum requires at least two samples")
	}
	if sampleRate <= 0 {
		return nil, errors.Inputf("sample rate must be positive, got %v", sampleRate)
	}

	n := len(samples)
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)

	spectrum := make([]Component, len(coeffs))
	for i, c := range coeffs {
		// One-sided amplitude: double everything except DC (and Nyquist
		// for even n, where the doubling error is negligible for THD).
		scale := 2.0 / float64(n)
		if i == 0 {
			scale = 1.0 / float64(n)
		}
		spectrum[i] = Component{
			Frequency: float64(i) * sampleRate / float64(n),
			Magnitude: cmplx.Abs(c) * scale,
		}
	}
	return spectrum, nil
}

// SignalTHD computes THD of a sampled signal with a known fundamental
// frequency, reading harmonic magnitudes at integer multiples of the
// fundamental up to maxHarmonic (or the Nyquist limit, whichever is lower).
func SignalTHD(samples []float64, sampleRate, fundamentalHz float64, maxHarmonic int) (float64, error) {
	if fundamentalHz <= 0 {
		return 0, errors.Inputf("fundamental frequency must be positive, got %v", fundamentalHz)
	}
	if maxHarmonic < 1 {
		return 0, errors.Inputf("max harmonic must be at least 1, got %d", maxHarmonic)
	}

	spectrum, err := Spectrum(samples, sampleRate)
	if err != nil {
		return 0, err
	}

	binWidth := sampleRate / float64(len(samples))
	magnitudes := make([]float64, 0, maxHarmonic)
	for h := 1; h <= maxHarmonic; h++ {
		freq := float64(h) * fundamentalHz
		if freq > sampleRate/2 {
			break
		}
		bin := int(math.Round(freq / binWidth))
		if bin >= len(spectrum) {
			break
		}
		magnitudes = append(magnitudes, spectrum[bin].Magnitude)
	}

	return THD(magnitudes)
}
