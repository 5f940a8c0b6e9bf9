package transcript_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-transcribe/pkg/schema"
	transcript "github.com/mutablelogic/go-transcribe/pkg/transcript"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Writer_001(t *testing.T) {
	// CSV path derives from the audio path: same directory and base name
	assert := assert.New(t)
	assert.Equal("/tmp/meeting.csv", transcript.CSVPath("/tmp/meeting.m4a"))
	assert.Equal("recording.csv", transcript.CSVPath("recording.wav"))
	assert.Equal("noext.csv", transcript.CSVPath("noext"))
}

func Test_Writer_002(t *testing.T) {
	// Console lines and CSV rows are written for each record
	assert := assert.New(t)

	csvPath := filepath.Join(t.TempDir(), "out.csv")
	var console bytes.Buffer
	writer, err := transcript.NewWriter(&console, csvPath)
	assert.NoError(err)

	records := []*schema.Segment{
		{Start: schema.SecToTimestamp(0), End: schema.SecToTimestamp(4.5), Speaker: "1", Text: "hello there"},
		{Start: schema.SecToTimestamp(4.5), End: schema.SecToTimestamp(9), Speaker: schema.SpeakerUnknown, Text: "general kenobi"},
	}
	for _, record := range records {
		assert.NoError(writer.Write(record))
	}
	assert.NoError(writer.Close())

	// Console has a header and one line per record
	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	assert.Len(lines, 3)
	assert.Equal("time;speaker;text", lines[0])
	assert.Equal("00:00:00.000;1;hello there", lines[1])
	assert.Equal("00:00:04.500;unknown;general kenobi", lines[2])

	// CSV has the fixed header and one row per record
	data, err := os.ReadFile(csvPath)
	assert.NoError(err)
	rows := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(rows, 3)
	assert.Equal("start,end,speaker,text", rows[0])
	assert.Equal("00:00:00.000,00:00:04.500,1,hello there", rows[1])
}

func Test_Writer_003(t *testing.T) {
	// Records with empty text are skipped
	assert := assert.New(t)

	csvPath := filepath.Join(t.TempDir(), "out.csv")
	var console bytes.Buffer
	writer, err := transcript.NewWriter(&console, csvPath)
	assert.NoError(err)
	assert.NoError(writer.Write(&schema.Segment{Speaker: "1", Text: "  "}))
	assert.NoError(writer.Close())

	data, err := os.ReadFile(csvPath)
	assert.NoError(err)
	rows := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(rows, 1)
}
