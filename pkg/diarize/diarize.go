package diarize

import (
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	audio "github.com/mutablelogic/go-transcribe/pkg/audio"
	schema "github.com/mutablelogic/go-transcribe/pkg/schema"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Segment is a contiguous span of audio attributed to one speaker. Speaker
// is one-indexed, zero when no speaker could be assigned.
type Segment struct {
	Start   schema.Timestamp
	End     schema.Timestamp
	Speaker int
}

// Result of diarizing one waveform. When Degraded is set the segments carry
// no speaker information and Reason says why; this is a warning, never a
// failure.
type Result struct {
	Segments []Segment
	Degraded bool
	Reason   string
}

// Engine assigns a speaker label to every point in time of a waveform using
// only signal features, no external speaker model.
type Engine struct {
	windowSize   time.Duration
	stride       time.Duration
	silenceFloor float64
	maxSpeakers  int
	clusterer    Clusterer
}

type Opt func(*Engine) error

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultMaxSpeakers  = 6
	DefaultWindowSize   = 2 * time.Second
	DefaultStride       = time.Second
	DefaultSilenceFloor = 0.004
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func New(opts ...Opt) (*Engine, error) {
	engine := &Engine{
		windowSize:   DefaultWindowSize,
		stride:       DefaultStride,
		silenceFloor: DefaultSilenceFloor,
		maxSpeakers:  DefaultMaxSpeakers,
		clusterer:    KMeans{},
	}
	for _, opt := range opts {
		if err := opt(engine); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - OPTIONS

// Set the upper bound on the number of speakers
func WithMaxSpeakers(n int) Opt {
	return func(e *Engine) error {
		if n < 1 {
			return errors.ErrBadParameter.Withf("max speakers: %d", n)
		}
		e.maxSpeakers = n
		return nil
	}
}

// Set the analysis window size and stride
func WithWindow(size, stride time.Duration) Opt {
	return func(e *Engine) error {
		if size <= 0 || stride <= 0 || stride > size {
			return errors.ErrBadParameter.With("window size and stride")
		}
		e.windowSize = size
		e.stride = stride
		return nil
	}
}

// Set the RMS floor below which a window is treated as silence
func WithSilenceFloor(floor float64) Opt {
	return func(e *Engine) error {
		if floor < 0 {
			return errors.ErrBadParameter.Withf("silence floor: %f", floor)
		}
		e.silenceFloor = floor
		return nil
	}
}

// Replace the clustering algorithm
func WithClusterer(c Clusterer) Opt {
	return func(e *Engine) error {
		if c == nil {
			return errors.ErrBadParameter.With("clusterer")
		}
		e.clusterer = c
		return nil
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Diarize a waveform. The result is degraded rather than failing when the
// audio is too short, all windows are silent, or clustering fails.
func (e *Engine) Diarize(w *audio.Waveform) *Result {
	duration := w.Duration()

	windows := makeWindows(w, e.windowSize, e.stride, e.silenceFloor)
	if len(windows) == 0 {
		return degraded(duration, "audio shorter than one analysis window")
	}

	// Gather feature vectors for the non-silent windows
	var vectors [][]float64
	var usable []int
	for i, win := range windows {
		if win.Features != nil {
			vectors = append(vectors, win.Features)
			usable = append(usable, i)
		}
	}
	if len(vectors) == 0 {
		return degraded(duration, "no windows above the silence floor")
	}

	// Effective cluster count is bounded by the usable window count
	k := e.maxSpeakers
	if k > len(vectors) {
		k = len(vectors)
	}

	labels, err := e.clusterer.Cluster(scaleFeatures(vectors), k)
	if err != nil {
		return degraded(duration, "clustering failed: "+err.Error())
	}

	// Speaker per window: cluster index + 1, zero for silent windows
	speakers := make([]int, len(windows))
	for i, wi := range usable {
		speakers[wi] = labels[i] + 1
	}

	return &Result{
		Segments: collapse(windows, speakers, e.stride),
	}
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Collapse per-window speakers into contiguous segments. Each window is
// attributed its stride-length span so that overlapping windows do not
// produce overlapping segments, and adjacent spans with the same speaker
// merge. Spans separated by more than the stride never merge.
func collapse(windows []Window, speakers []int, stride time.Duration) []Segment {
	var segments []Segment
	for i, win := range windows {
		end := win.Start + stride
		if end > win.End || i == len(windows)-1 {
			end = win.End
		}
		span := Segment{
			Start:   schema.Timestamp(win.Start),
			End:     schema.Timestamp(end),
			Speaker: speakers[i],
		}

		if n := len(segments); n > 0 {
			last := &segments[n-1]
			gap := time.Duration(span.Start) - time.Duration(last.End)
			if last.Speaker == span.Speaker && gap <= stride && gap >= 0 {
				if span.End > last.End {
					last.End = span.End
				}
				continue
			}
		}
		segments = append(segments, span)
	}
	return segments
}

func degraded(duration time.Duration, reason string) *Result {
	return &Result{
		Segments: []Segment{
			{Start: 0, End: schema.Timestamp(duration), Speaker: 0},
		},
		Degraded: true,
		Reason:   reason,
	}
}
