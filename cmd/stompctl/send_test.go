package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblet/stomp-parser/message"
)

func TestSendCommandExecutesWithRequiredFlags(t *testing.T) {
	cmd := newSendCmd()
	cmd.SetArgs([]string{"--destination", "queue/jobs", "--body", "hello"})
	require.NoError(t, cmd.Execute())
}

func TestPrintFrameDoesNotPanicOnKnownTypes(t *testing.T) {
	f, err := message.NewConnectedFrameBuilder().Version(message.V12).Build()
	require.NoError(t, err)
	assert.NotPanics(t, func() { printFrame(f) })
}
