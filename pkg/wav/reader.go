package wav

import (
	"io"

	// Packages
	errors "github.com/djthorpe/go-errors"
	wav "github.com/go-audio/wav"
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode a WAV file into float32 samples in the range [-1, 1], downmixing
// multi-channel audio to mono by averaging channels. Returns the samples and
// the source sample rate.
func DecodeFloat32(r io.ReadSeeker) ([]float32, int, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, 0, errors.ErrBadParameter.With("not a valid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, 0, errors.ErrBadParameter.With("no audio channels")
	}

	// Scale factor from the source bit depth
	scale := float32(int(1) << (decoder.BitDepth - 1))

	frames := len(buf.Data) / channels
	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += float32(buf.Data[i*channels+ch]) / scale
		}
		samples[i] = sum / float32(channels)
	}

	return samples, buf.Format.SampleRate, nil
}
