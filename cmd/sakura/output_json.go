package main

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// sentenceData is the JSON shape of one segmented sentence.
type sentenceData struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// jsonFormatter buffers every sentence and emits a single pretty-printed
// JSON array on finish, matching the original's JsonFormatter.
type jsonFormatter struct {
	w         *bufio.Writer
	sentences []sentenceData
}

func newJSONFormatter(w io.Writer) *jsonFormatter {
	return &jsonFormatter{w: bufio.NewWriter(w)}
}

func (f *jsonFormatter) formatSentence(text string, offset int) error {
	trimmed := strings.TrimSpace(text)
	f.sentences = append(f.sentences, sentenceData{
		Text:   trimmed,
		Offset: offset,
		Length: len(text),
	})
	return nil
}

func (f *jsonFormatter) finish() error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f.sentences); err != nil {
		return err
	}
	return f.w.Flush()
}
