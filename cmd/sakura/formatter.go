package main

import (
	"io"

	"github.com/sakura-sbd/sakura"
)

// formatter mirrors the original CLI's OutputFormatter trait: one sentence
// at a time, then a final call to close out whatever framing the format
// needs (a JSON array, a markdown footer).
type formatter interface {
	formatSentence(text string, offset int) error
	finish() error
}

func newFormatter(format string, w io.Writer) (formatter, error) {
	switch format {
	case "text", "":
		return newTextFormatter(w), nil
	case "json":
		return newJSONFormatter(w), nil
	case "markdown", "md":
		return newMarkdownFormatter(w), nil
	default:
		return nil, unknownFormatError(format)
	}
}

// sentences splits text at the given boundaries into its constituent
// sentences, alongside each sentence's starting byte offset.
func sentences(text []byte, boundaries []sakura.Boundary) []sentenceSpan {
	spans := make([]sentenceSpan, 0, len(boundaries))
	start := 0
	for _, b := range boundaries {
		if b.ByteOffset <= start {
			continue
		}
		spans = append(spans, sentenceSpan{text: string(text[start:b.ByteOffset]), offset: start})
		start = b.ByteOffset
	}
	if start < len(text) {
		spans = append(spans, sentenceSpan{text: string(text[start:]), offset: start})
	}
	return spans
}

type sentenceSpan struct {
	text   string
	offset int
}

func writeAll(w formatter, text []byte, boundaries []sakura.Boundary) error {
	for _, s := range sentences(text, boundaries) {
		if err := w.formatSentence(s.text, s.offset); err != nil {
			return err
		}
	}
	return w.finish()
}
