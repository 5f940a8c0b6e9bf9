package whisper

import (
	"context"
	"io"
	"os"
	"strings"

	// Packages
	errors "github.com/djthorpe/go-errors"
	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	audio "github.com/mutablelogic/go-transcribe/pkg/audio"
	schema "github.com/mutablelogic/go-transcribe/pkg/schema"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Engine wraps a loaded whisper.cpp model. The model is opaque: the engine
// maps waveforms in and timestamped segments out, nothing more.
type Engine struct {
	model    whisper.Model
	language string
	threads  uint
}

type Opt func(*Engine) error

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Load a whisper model from a ggml weights file
func New(modelPath string, opts ...Opt) (*Engine, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, errors.ErrNotFound.Withf("model weights: %q", modelPath)
	}

	model, err := whisper.New(modelPath)
	if err != nil {
		return nil, errors.ErrInternalAppError.Withf("load model: %v", err)
	}

	engine := &Engine{model: model}
	for _, opt := range opts {
		if err := opt(engine); err != nil {
			model.Close()
			return nil, err
		}
	}
	return engine, nil
}

// Release the model
func (e *Engine) Close() error {
	if e.model == nil {
		return nil
	}
	err := e.model.Close()
	e.model = nil
	return err
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - OPTIONS

// Set the language hint, or "auto" to detect
func WithLanguage(language string) Opt {
	return func(e *Engine) error {
		e.language = language
		return nil
	}
}

// Set the number of threads to use, zero for auto
func WithThreads(threads uint) Opt {
	return func(e *Engine) error {
		e.threads = threads
		return nil
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe a normalized waveform, returning the ordered transcript
// segments. Engine failures are surfaced as ErrInternalAppError.
func (e *Engine) Transcribe(ctx context.Context, w *audio.Waveform) (*schema.Transcription, error) {
	taskctx, err := e.model.NewContext()
	if err != nil {
		return nil, errors.ErrInternalAppError.Withf("create context: %v", err)
	}

	if e.language != "" && e.model.IsMultilingual() {
		// Auto-detection is not supported by every model, so only an
		// explicit language hint fails hard
		if err := taskctx.SetLanguage(e.language); err != nil && e.language != "auto" {
			return nil, errors.ErrBadParameter.Withf("language: %q", e.language)
		}
	}
	if e.threads > 0 {
		taskctx.SetThreads(e.threads)
	}

	if err := taskctx.Process(w.Samples, nil, nil, nil); err != nil {
		return nil, errors.ErrInternalAppError.Withf("process audio: %v", err)
	}

	// Collect segments until EOF
	var segments []*schema.Segment
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		segment, err := taskctx.NextSegment()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.ErrInternalAppError.Withf("read segment: %v", err)
		}
		segments = append(segments, newSegment(int32(len(segments)), segment))
	}

	language := e.language
	if language == "auto" {
		language = ""
	}
	return &schema.Transcription{
		Language: language,
		Duration: schema.Timestamp(w.Duration()),
		Segments: segments,
	}, nil
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newSegment(id int32, seg whisper.Segment) *schema.Segment {
	// Dumb copy function
	return &schema.Segment{
		Id:    id,
		Start: schema.Timestamp(seg.Start),
		End:   schema.Timestamp(seg.End),
		Text:  strings.TrimSpace(seg.Text),
	}
}
