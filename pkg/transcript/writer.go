package transcript

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-transcribe/pkg/schema"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Writer renders transcript records to the console and a CSV file as they
// are produced.
type Writer struct {
	console io.Writer
	file    *os.File
	csv     *csv.Writer
}

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a writer which emits console lines and CSV rows. The CSV header is
// written immediately.
func NewWriter(console io.Writer, csvPath string) (*Writer, error) {
	file, err := os.Create(csvPath)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		console: console,
		file:    file,
		csv:     csv.NewWriter(file),
	}
	if err := w.csv.Write([]string{"start", "end", "speaker", "text"}); err != nil {
		file.Close()
		return nil, err
	}
	fmt.Fprintln(console, "time;speaker;text")

	return w, nil
}

// Flush and close the CSV file
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Write one transcript record. Records with empty text are skipped.
func (w *Writer) Write(segment *schema.Segment) error {
	text := strings.TrimSpace(segment.Text)
	if text == "" {
		return nil
	}
	fmt.Fprintf(w.console, "%s;%s;%s\n", segment.Start.Format(), segment.Speaker, text)
	return w.csv.Write([]string{
		segment.Start.Format(),
		segment.End.Format(),
		segment.Speaker,
		text,
	})
}

// CSVPath derives the CSV output path from the audio input path: same
// directory and base name, with a csv extension.
func CSVPath(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return strings.TrimSuffix(audioPath, ext) + ".csv"
}
