package audio

import (
	"math"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Waveform is decoded mono audio at a fixed sample rate. The sample rate is
// constant for the lifetime of the waveform.
type Waveform struct {
	Samples []float32
	Rate    int
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the duration of the waveform
func (w *Waveform) Duration() time.Duration {
	if w.Rate == 0 {
		return 0
	}
	return time.Duration(float64(len(w.Samples)) / float64(w.Rate) * float64(time.Second))
}

// Return the root-mean-square amplitude of the sample range [from, to)
func (w *Waveform) RMS(from, to int) float64 {
	if from < 0 {
		from = 0
	}
	if to > len(w.Samples) {
		to = len(w.Samples)
	}
	if to <= from {
		return 0
	}
	var sum float64
	for _, sample := range w.Samples[from:to] {
		sum += float64(sample) * float64(sample)
	}
	return math.Sqrt(sum / float64(to-from))
}
