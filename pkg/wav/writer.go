package wav

import (
	"io"

	// Packages
	audio "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
	writerseeker "github.com/orcaman/writerseeker"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type WaveAudio struct {
	io.Reader
}

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new mono WAV file with 16-bit signed integer samples
func NewInt16(data []int16, sampleRate int) (*WaveAudio, error) {
	buf := new(writerseeker.WriterSeeker)
	encoder := wav.NewEncoder(buf, sampleRate, 16, 1, 1)
	pcmbuf := audio.PCMBuffer{
		I16:      data,
		DataType: audio.DataTypeI16,
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
	}
	if err := encoder.Write(pcmbuf.AsIntBuffer()); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	// Return a new WaveAudio with the writerseeker as the reader
	return &WaveAudio{
		Reader: buf.Reader(),
	}, nil
}

// Create a new mono WAV file from float32 samples in the range [-1, 1]
func NewFloat32(data []float32, sampleRate int) (*WaveAudio, error) {
	pcm := make([]int16, len(data))
	for i, sample := range data {
		switch {
		case sample > 1.0:
			pcm[i] = 32767
		case sample < -1.0:
			pcm[i] = -32768
		default:
			pcm[i] = int16(sample * 32767)
		}
	}
	return NewInt16(pcm, sampleRate)
}
