package main

import "fmt"

func unknownFormatError(format string) error {
	return fmt.Errorf("sakura: unknown output format %q (want text, json, or markdown)", format)
}

func unknownModeError(mode string) error {
	return fmt.Errorf("sakura: unknown execution mode %q (want adaptive, sequential, parallel, or streaming)", mode)
}
