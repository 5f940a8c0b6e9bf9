package model

import (
	"encoding/json"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type Model struct {
	Id         string    `json:"id" writer:",width:28"`
	Path       string    `json:"path,omitempty" writer:",width:40"`
	Size       int64     `json:"size,omitempty" writer:",right,width:12"`
	ModifiedAt time.Time `json:"modified_at,omitempty" writer:",width:20"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Known model variants and their ggml weights files, from
// https://huggingface.co/ggerganov/whisper.cpp
var variants = map[string]string{
	"tiny":      "ggml-tiny.bin",
	"tiny.en":   "ggml-tiny.en.bin",
	"base":      "ggml-base.bin",
	"base.en":   "ggml-base.en.bin",
	"small":     "ggml-small.bin",
	"small.en":  "ggml-small.en.bin",
	"medium":    "ggml-medium.bin",
	"medium.en": "ggml-medium.en.bin",
	"large-v2":  "ggml-large-v2.bin",
	"large-v3":  "ggml-large-v3.bin",
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the weights filename for a model variant, or the argument unchanged
// when it already names a weights file
func FileForVariant(variant string) string {
	if file, exists := variants[variant]; exists {
		return file
	}
	return variant
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
