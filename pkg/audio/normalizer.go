package audio

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	segmenter "github.com/mutablelogic/go-media/pkg/segmenter"
	wav "github.com/mutablelogic/go-transcribe/pkg/wav"
	gomplerate "github.com/zeozeozeo/gomplerate"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Normalizer decodes an audio file in any supported container into a mono
// waveform at a fixed target sample rate.
type Normalizer struct {
	rate int
}

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewNormalizer(rate int) (*Normalizer, error) {
	if rate <= 0 {
		return nil, errors.ErrBadParameter.Withf("invalid sample rate: %d", rate)
	}
	return &Normalizer{rate: rate}, nil
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the target sample rate
func (n *Normalizer) Rate() int {
	return n.rate
}

// Decode an audio file into a normalized waveform. WAV files are decoded
// natively, all other containers go through the media decoder. A missing or
// unreadable file returns the underlying I/O error, a file the decoder cannot
// open returns ErrBadParameter.
func (n *Normalizer) ReadFile(ctx context.Context, path string) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return n.decodeWav(f)
	}
	return n.decodeMedia(ctx, f, path)
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Decode a WAV file, downmix to mono and resample to the target rate
func (n *Normalizer) decodeWav(r io.ReadSeeker) (*Waveform, error) {
	samples, rate, err := wav.DecodeFloat32(r)
	if err != nil {
		return nil, err
	}
	if rate != n.rate {
		samples = resample(samples, rate, n.rate)
	}
	return &Waveform{Samples: samples, Rate: n.rate}, nil
}

// Decode any other container through the media decoder, which outputs mono
// float32 at the requested rate
func (n *Normalizer) decodeMedia(ctx context.Context, r io.Reader, path string) (*Waveform, error) {
	seg, err := segmenter.NewReader(r, 0, n.rate)
	if err != nil {
		return nil, errors.ErrBadParameter.Withf("unsupported audio format: %q", filepath.Base(path))
	}
	defer seg.Close()

	var samples []float32
	if err := seg.DecodeFloat32(ctx, func(ts time.Duration, buf []float32) error {
		samples = append(samples, buf...)
		return nil
	}); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.ErrBadParameter.Withf("unsupported audio format: %q", filepath.Base(path))
	}

	return &Waveform{Samples: samples, Rate: n.rate}, nil
}

// Resample mono audio between sample rates
func resample(samples []float32, from, to int) []float32 {
	resampler, err := gomplerate.NewResampler(1, from, to)
	if err != nil {
		return samples
	}
	pcm := make([]int16, len(samples))
	for i, sample := range samples {
		switch {
		case sample > 1.0:
			pcm[i] = 32767
		case sample < -1.0:
			pcm[i] = -32768
		default:
			pcm[i] = int16(sample * 32767)
		}
	}
	pcm = resampler.ResampleInt16(pcm)
	out := make([]float32, len(pcm))
	for i, sample := range pcm {
		out[i] = float32(sample) / 32768.0
	}
	return out
}
