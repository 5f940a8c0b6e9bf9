package audio_test

import (
	"context"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	audio "github.com/mutablelogic/go-transcribe/pkg/audio"
	wav "github.com/mutablelogic/go-transcribe/pkg/wav"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Waveform_001(t *testing.T) {
	assert := assert.New(t)

	w := &audio.Waveform{Samples: make([]float32, 16000*2), Rate: 16000}
	assert.Equal(2*time.Second, w.Duration())
	assert.Equal(0.0, w.RMS(0, len(w.Samples)))
}

func Test_Waveform_002(t *testing.T) {
	// RMS of a full-scale sine is 1/sqrt(2)
	assert := assert.New(t)

	samples := make([]float32, 16000)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * 100 * float64(i) / 16000))
	}
	w := &audio.Waveform{Samples: samples, Rate: 16000}
	assert.InDelta(1/math.Sqrt2, w.RMS(0, len(samples)), 0.01)

	// Out-of-range bounds clamp
	assert.Equal(0.0, w.RMS(100, 100))
	assert.InDelta(w.RMS(0, len(samples)), w.RMS(-10, len(samples)+10), 0.0001)
}

func Test_Normalizer_001(t *testing.T) {
	// A missing file surfaces the I/O error
	assert := assert.New(t)

	normalizer, err := audio.NewNormalizer(16000)
	assert.NoError(err)
	_, err = normalizer.ReadFile(context.Background(), "/does/not/exist.wav")
	assert.Error(err)
	assert.True(os.IsNotExist(err))
}

func Test_Normalizer_002(t *testing.T) {
	// A WAV file at the target rate decodes through the fast path
	assert := assert.New(t)

	samples := make([]float32, 16000)
	for i := range samples {
		samples[i] = float32(0.25 * math.Sin(2*math.Pi*200*float64(i)/16000))
	}
	path := writeWav(t, samples, 16000)

	normalizer, err := audio.NewNormalizer(16000)
	assert.NoError(err)
	waveform, err := normalizer.ReadFile(context.Background(), path)
	assert.NoError(err)
	assert.Equal(16000, waveform.Rate)
	assert.Len(waveform.Samples, len(samples))
	assert.InDelta(time.Second.Seconds(), waveform.Duration().Seconds(), 0.01)
}

func Test_Normalizer_003(t *testing.T) {
	// A WAV file at another rate is resampled to the target rate
	assert := assert.New(t)

	samples := make([]float32, 44100)
	for i := range samples {
		samples[i] = float32(0.25 * math.Sin(2*math.Pi*200*float64(i)/44100))
	}
	path := writeWav(t, samples, 44100)

	normalizer, err := audio.NewNormalizer(16000)
	assert.NoError(err)
	waveform, err := normalizer.ReadFile(context.Background(), path)
	assert.NoError(err)
	assert.Equal(16000, waveform.Rate)
	assert.InDelta(time.Second.Seconds(), waveform.Duration().Seconds(), 0.05)
}

func Test_Normalizer_004(t *testing.T) {
	// An invalid sample rate is rejected
	assert := assert.New(t)

	_, err := audio.NewNormalizer(0)
	assert.Error(err)
}

func Test_TempWAV_001(t *testing.T) {
	// The exported temp file exists until closed, then is removed
	assert := assert.New(t)

	normalizer, err := audio.NewNormalizer(16000)
	assert.NoError(err)

	waveform := &audio.Waveform{Samples: make([]float32, 16000), Rate: 16000}
	temp, err := normalizer.ExportWAV(waveform)
	assert.NoError(err)

	path := temp.Path()
	_, err = os.Stat(path)
	assert.NoError(err)

	assert.NoError(temp.Close())
	_, err = os.Stat(path)
	assert.True(os.IsNotExist(err))

	// Closing twice is harmless
	assert.NoError(temp.Close())
}

///////////////////////////////////////////////////////////////////////////////////
// HELPERS

func writeWav(t *testing.T, samples []float32, rate int) string {
	t.Helper()
	encoded, err := wav.NewFloat32(samples, rate)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := io.Copy(f, encoded); err != nil {
		t.Fatal(err)
	}
	return path
}
