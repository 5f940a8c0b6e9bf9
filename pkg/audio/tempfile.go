package audio

import (
	"io"
	"os"

	// Packages
	wav "github.com/mutablelogic/go-transcribe/pkg/wav"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// TempWAV is a decoded waveform written to a temporary WAV file. The file is
// exclusively owned by the caller and removed on Close.
type TempWAV struct {
	path string
}

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Write the waveform to a temporary 16-bit PCM WAV file
func (n *Normalizer) ExportWAV(w *Waveform) (*TempWAV, error) {
	r, err := wav.NewFloat32(w.Samples, w.Rate)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "transcribe-*.wav")
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, err
	}

	return &TempWAV{path: f.Name()}, nil
}

// Remove the temporary file
func (t *TempWAV) Close() error {
	if t.path == "" {
		return nil
	}
	err := os.Remove(t.path)
	t.path = ""
	return err
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the path to the temporary file
func (t *TempWAV) Path() string {
	return t.path
}
