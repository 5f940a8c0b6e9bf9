package transcript

import (
	// Packages
	diarize "github.com/mutablelogic/go-transcribe/pkg/diarize"
	schema "github.com/mutablelogic/go-transcribe/pkg/schema"
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Assemble merges transcript segments with diarized speaker turns, producing
// one record per transcript segment in order. Each segment takes the speaker
// of the turn with the greatest temporal overlap; ties resolve to the
// earlier-starting turn, and a segment with no overlapping turn is labeled
// unknown.
func Assemble(segments []*schema.Segment, turns []diarize.Segment) []*schema.Segment {
	records := make([]*schema.Segment, 0, len(segments))
	for _, segment := range segments {
		record := *segment
		record.Speaker = speakerFor(segment, turns)
		records = append(records, &record)
	}
	return records
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Pick the speaker of the turn with the greatest overlap. Turns are ordered
// by start time, so keeping the first of any equal-overlap pair resolves
// ties to the earlier turn.
func speakerFor(segment *schema.Segment, turns []diarize.Segment) string {
	best := 0
	var bestOverlap schema.Timestamp
	for _, turn := range turns {
		if d := overlap(segment, turn); d > bestOverlap {
			bestOverlap = d
			best = turn.Speaker
		}
	}
	if bestOverlap <= 0 || best < 1 {
		return schema.SpeakerUnknown
	}
	return schema.SpeakerLabel(best)
}

// Intersection duration of a transcript segment and a speaker turn
func overlap(segment *schema.Segment, turn diarize.Segment) schema.Timestamp {
	start := segment.Start
	if turn.Start > start {
		start = turn.Start
	}
	end := segment.End
	if turn.End < end {
		end = turn.End
	}
	if end <= start {
		return 0
	}
	return end - start
}
