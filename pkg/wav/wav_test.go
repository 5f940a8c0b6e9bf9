package wav_test

import (
	"bytes"
	"io"
	"math"
	"testing"

	// Packages
	wav "github.com/mutablelogic/go-transcribe/pkg/wav"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Wav_001(t *testing.T) {
	// Float32 samples survive a round trip through the WAV encoder
	assert := assert.New(t)

	samples := make([]float32, 16000)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/16000))
	}

	encoded, err := wav.NewFloat32(samples, 16000)
	assert.NoError(err)

	data, err := io.ReadAll(encoded)
	assert.NoError(err)

	decoded, rate, err := wav.DecodeFloat32(bytes.NewReader(data))
	assert.NoError(err)
	assert.Equal(16000, rate)
	assert.Len(decoded, len(samples))
	for i := range samples {
		assert.InDelta(samples[i], decoded[i], 0.001)
	}
}

func Test_Wav_002(t *testing.T) {
	// Out-of-range samples clip rather than wrap
	assert := assert.New(t)

	encoded, err := wav.NewFloat32([]float32{2.0, -2.0, 0}, 16000)
	assert.NoError(err)

	data, err := io.ReadAll(encoded)
	assert.NoError(err)

	decoded, _, err := wav.DecodeFloat32(bytes.NewReader(data))
	assert.NoError(err)
	assert.InDelta(1.0, decoded[0], 0.001)
	assert.InDelta(-1.0, decoded[1], 0.001)
}

func Test_Wav_003(t *testing.T) {
	// Garbage input is rejected
	assert := assert.New(t)

	_, _, err := wav.DecodeFloat32(bytes.NewReader([]byte("not a wav file")))
	assert.Error(err)
}
