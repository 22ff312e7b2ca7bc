package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// markdownFormatter writes sentences as a numbered markdown list, with a
// total-count footer on finish.
type markdownFormatter struct {
	w     *bufio.Writer
	count int
}

func newMarkdownFormatter(w io.Writer) *markdownFormatter {
	return &markdownFormatter{w: bufio.NewWriter(w)}
}

func (f *markdownFormatter) formatSentence(text string, _ int) error {
	f.count++
	_, err := fmt.Fprintf(f.w, "%d. %s\n", f.count, strings.TrimSpace(text))
	return err
}

func (f *markdownFormatter) finish() error {
	fmt.Fprintln(f.w)
	fmt.Fprintln(f.w, "---")
	fmt.Fprintf(f.w, "*Total sentences: %d*\n", f.count)
	return f.w.Flush()
}
