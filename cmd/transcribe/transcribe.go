package main

import (
	"os"

	// Packages
	transcribe "github.com/mutablelogic/go-transcribe"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranscribeCmd struct {
	Path        string `arg:"" help:"Path to audio file"`
	Model       string `flag:"" help:"Model variant" default:"${TRANSCRIBE_MODEL}"`
	Language    string `flag:"language" help:"Language hint, or auto to detect" default:"auto"`
	MaxSpeakers int    `flag:"max-speakers" help:"Upper bound on diarized speakers" default:"6"`
	NoDiarize   bool   `flag:"no-diarize" help:"Skip speaker diarization"`
	Threads     uint   `flag:"" help:"Model threads, 0 for auto"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TranscribeCmd) Run(app *Globals) error {
	pipeline, err := transcribe.New(transcribe.Config{
		Model:       cmd.Model,
		ModelDir:    app.ModelDir,
		Language:    cmd.Language,
		MaxSpeakers: cmd.MaxSpeakers,
		NoDiarize:   cmd.NoDiarize,
		Threads:     cmd.Threads,
	}, os.Stdout, app.log)
	if err != nil {
		return err
	}
	return pipeline.Run(app.ctx, cmd.Path)
}
