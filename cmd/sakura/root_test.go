package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureLoggingAcceptsKnownLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		assert.NoError(t, configureLogging(lvl))
	}
}

func TestConfigureLoggingRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, configureLogging("not-a-level"))
}

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["segment"])
	assert.True(t, names["validate"])
}
