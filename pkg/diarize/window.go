package diarize

import (
	"math"
	"time"

	// Packages
	audio "github.com/mutablelogic/go-transcribe/pkg/audio"
	fourier "gonum.org/v1/gonum/dsp/fourier"
	window "gonum.org/v1/gonum/dsp/window"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Window is a fixed-length slice of the waveform, the unit of feature
// extraction for clustering. Features is nil for near-silent windows, which
// are excluded from clustering.
type Window struct {
	Start    time.Duration
	End      time.Duration
	RMS      float64
	Features []float64
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	fftSize  = 1024
	fftHop   = 512
	numBands = 16

	// Feature vector: per-band log energies, spectral centroid, rolloff
	featureDim = numBands + 2

	// Fraction of spectral magnitude below the rolloff frequency
	rolloffFraction = 0.85
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Partition a waveform into fixed-length windows with the given stride and
// compute a feature vector for each window above the silence floor. A
// trailing partial window is kept when it covers at least half a stride.
func makeWindows(w *audio.Waveform, size, stride time.Duration, silenceFloor float64) []Window {
	sizeSamples := int(size.Seconds() * float64(w.Rate))
	strideSamples := int(stride.Seconds() * float64(w.Rate))
	if sizeSamples < 1 || strideSamples < 1 || len(w.Samples) < sizeSamples {
		return nil
	}

	fft := fourier.NewFFT(fftSize)

	var windows []Window
	for offset := 0; offset < len(w.Samples); offset += strideSamples {
		end := offset + sizeSamples
		if end > len(w.Samples) {
			// Trailing partial window
			if len(w.Samples)-offset < strideSamples/2 {
				break
			}
			end = len(w.Samples)
		}

		win := Window{
			Start: sampleToDuration(offset, w.Rate),
			End:   sampleToDuration(end, w.Rate),
			RMS:   w.RMS(offset, end),
		}
		if win.RMS >= silenceFloor {
			win.Features = extractFeatures(fft, w.Samples[offset:end])
		}
		windows = append(windows, win)

		if end == len(w.Samples) {
			break
		}
	}
	return windows
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Reduce a window of samples to a fixed-length feature vector: the mean
// magnitude spectrum over Hann-windowed FFT frames, summarized as log band
// energies plus spectral centroid and rolloff. Deterministic for a fixed
// input.
func extractFeatures(fft *fourier.FFT, samples []float32) []float64 {
	numBins := fftSize/2 + 1
	spectrum := make([]float64, numBins)
	frame := make([]float64, fftSize)
	coeffs := make([]complex128, numBins)

	frames := 0
	for offset := 0; offset == 0 || offset+fftSize <= len(samples); offset += fftHop {
		// Copy the frame, zero-padding a short final window
		for i := range frame {
			if offset+i < len(samples) {
				frame[i] = float64(samples[offset+i])
			} else {
				frame[i] = 0
			}
		}
		window.Hann(frame)
		coeffs = fft.Coefficients(coeffs, frame)
		for i, c := range coeffs {
			spectrum[i] += cmplxAbs(c)
		}
		frames++
	}
	for i := range spectrum {
		spectrum[i] /= float64(frames)
	}

	features := make([]float64, 0, featureDim)

	// Log energy per frequency band
	binsPerBand := numBins / numBands
	for band := 0; band < numBands; band++ {
		from := band * binsPerBand
		to := from + binsPerBand
		if band == numBands-1 {
			to = numBins
		}
		var energy float64
		for _, m := range spectrum[from:to] {
			energy += m
		}
		features = append(features, math.Log1p(energy/float64(to-from)))
	}

	// Spectral centroid, normalized by the Nyquist frequency
	var weighted, total float64
	for i, m := range spectrum {
		weighted += float64(i) * m
		total += m
	}
	if total > 0 {
		features = append(features, weighted/total/float64(numBins-1))
	} else {
		features = append(features, 0)
	}

	// Spectral rolloff, normalized by the Nyquist frequency
	var cumulative float64
	rolloff := numBins - 1
	for i, m := range spectrum {
		cumulative += m
		if cumulative >= rolloffFraction*total {
			rolloff = i
			break
		}
	}
	features = append(features, float64(rolloff)/float64(numBins-1))

	return features
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func sampleToDuration(sample, rate int) time.Duration {
	return time.Duration(float64(sample) / float64(rate) * float64(time.Second))
}
