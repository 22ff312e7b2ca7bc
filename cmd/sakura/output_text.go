package main

import (
	"bufio"
	"io"
	"strings"
)

// textFormatter writes one sentence per line.
type textFormatter struct {
	w *bufio.Writer
}

func newTextFormatter(w io.Writer) *textFormatter {
	return &textFormatter{w: bufio.NewWriter(w)}
}

func (f *textFormatter) formatSentence(text string, _ int) error {
	_, err := f.w.WriteString(strings.TrimSpace(text) + "\n")
	return err
}

func (f *textFormatter) finish() error {
	return f.w.Flush()
}
