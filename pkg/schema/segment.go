package schema

import (
	"encoding/json"
	"strconv"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type Segment struct {
	Id      int32     `json:"id" writer:",right,width:5"`
	Start   Timestamp `json:"start" writer:",right,width:12"`
	End     Timestamp `json:"end" writer:",right,width:12"`
	Speaker string    `json:"speaker,omitempty" writer:",width:10"`
	Text    string    `json:"text" writer:",wrap,width:70"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Speaker label used when diarization could not assign a speaker
const SpeakerUnknown = "unknown"

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the label for the n'th speaker, where n is one-indexed
func SpeakerLabel(n int) string {
	if n < 1 {
		return SpeakerUnknown
	}
	return strconv.Itoa(n)
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s *Segment) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
