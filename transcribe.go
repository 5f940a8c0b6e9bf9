/*
Package transcribe implements an offline speech transcription pipeline: audio
normalization, segment transcription through a local whisper model, and
unsupervised speaker diarization by clustering spectral features of the
audio. The pipeline is single-threaded; each stage runs to completion before
the next starts.
*/
package transcribe

import (
	"context"
	"io"
	"time"

	// Packages
	zerolog "github.com/rs/zerolog"

	audio "github.com/mutablelogic/go-transcribe/pkg/audio"
	diarize "github.com/mutablelogic/go-transcribe/pkg/diarize"
	model "github.com/mutablelogic/go-transcribe/pkg/model"
	transcript "github.com/mutablelogic/go-transcribe/pkg/transcript"
	whisper "github.com/mutablelogic/go-transcribe/pkg/whisper"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the explicit configuration surface of the pipeline. Zero values
// take the package defaults.
type Config struct {
	Model       string // Model variant or weights filename
	ModelDir    string // Directory holding downloaded weights
	Language    string // Language hint, or "auto" to detect
	MaxSpeakers int    // Upper bound on diarized speakers
	SampleRate  int    // Normalization target rate
	Threads     uint   // Model threads, zero for auto
	NoDiarize   bool   // Skip speaker diarization
}

// Pipeline runs the offline transcription flow for one audio file at a time
type Pipeline struct {
	config Config
	store  *model.Store
	log    zerolog.Logger
	out    io.Writer
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// SampleRate is the canonical rate all stages agree on
	SampleRate = 16000

	// DefaultModel is the default whisper variant
	DefaultModel = "large-v3"
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a pipeline. The out writer receives transcript lines, the logger
// receives progress and warnings.
func New(config Config, out io.Writer, log zerolog.Logger) (*Pipeline, error) {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.SampleRate == 0 {
		config.SampleRate = SampleRate
	}
	if config.MaxSpeakers == 0 {
		config.MaxSpeakers = diarize.DefaultMaxSpeakers
	}

	store, err := model.NewStore(config.ModelDir)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		config: config,
		store:  store,
		log:    log,
		out:    out,
	}, nil
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run transcribes one audio file, printing transcript lines as they are
// produced and writing a CSV file next to the input. Normalization and
// transcription failures abort the run; diarization failures degrade to an
// unknown speaker and continue.
func (p *Pipeline) Run(ctx context.Context, path string) error {
	// Normalize the input to a mono waveform at the target rate
	normalizer, err := audio.NewNormalizer(p.config.SampleRate)
	if err != nil {
		return err
	}
	p.log.Info().Str("path", path).Msg("converting audio")
	waveform, err := normalizer.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	// Load the model
	weights, err := p.store.Path(p.config.Model)
	if err != nil {
		return err
	}
	p.log.Info().Str("model", p.config.Model).Msg("loading model")
	engine, err := whisper.New(weights,
		whisper.WithLanguage(p.config.Language),
		whisper.WithThreads(p.config.Threads),
	)
	if err != nil {
		return err
	}
	defer engine.Close()

	// Transcribe
	p.log.Info().Dur("duration", waveform.Duration()).Msg("transcribing audio")
	t := time.Now()
	transcription, err := engine.Transcribe(ctx, waveform)
	if err != nil {
		return err
	}
	p.log.Debug().Int("segments", len(transcription.Segments)).Dur("elapsed", time.Since(t)).Msg("transcription done")

	// Diarize. Degradation is reported but never aborts the run
	var turns []diarize.Segment
	if !p.config.NoDiarize {
		diarizer, err := diarize.New(diarize.WithMaxSpeakers(p.config.MaxSpeakers))
		if err != nil {
			return err
		}
		result := diarizer.Diarize(waveform)
		if result.Degraded {
			p.log.Warn().Str("reason", result.Reason).Msg("diarization degraded, speakers unknown")
		}
		turns = result.Segments
	}

	// Assemble and emit
	writer, err := transcript.NewWriter(p.out, transcript.CSVPath(path))
	if err != nil {
		return err
	}
	for _, record := range transcript.Assemble(transcription.Segments, turns) {
		if err := writer.Write(record); err != nil {
			writer.Close()
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	p.log.Info().Str("csv", transcript.CSVPath(path)).Msg("transcript saved")
	return nil
}
