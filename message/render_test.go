package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblet/stomp-parser/message"
)

func TestRenderIsDeterministic(t *testing.T) {
	f, err := message.NewSendFrameBuilder().
		Destination("d").
		CustomHeader("a", "1").
		CustomHeader("b", "2").
		Body([]byte("payload")).
		Build()
	require.NoError(t, err)

	first := message.Render(f)
	second := message.Render(f)
	assert.Equal(t, first, second)
}

func TestConnectAliasAlwaysRendersCanonicalCommand(t *testing.T) {
	in := []byte("STOMP\nhost:foo\naccept-version:1.2\n\n\x00")
	f, err := message.ParseClient(in)
	require.NoError(t, err)

	out := message.Render(f)
	assert.Contains(t, string(out), "CONNECT\n")
	assert.NotContains(t, string(out), "STOMP\n")
}

func TestRoundTripSendWithCustomHeaders(t *testing.T) {
	f, err := message.NewSendFrameBuilder().
		Destination("stairway/to/heaven").
		ContentType("text/plain").
		CustomHeader("funky", "doodle").
		Body([]byte("payload bytes")).
		Build()
	require.NoError(t, err)

	out := message.Render(f)
	parsed, err := message.ParseClient(out)
	require.NoError(t, err)

	send := parsed.(*message.SendFrame)
	assert.Equal(t, "stairway/to/heaven", send.Destination())
	ct, ok := send.ContentType()
	require.True(t, ok)
	assert.Equal(t, "text/plain", ct)
	body, ok := send.Body()
	require.True(t, ok)
	assert.Equal(t, "payload bytes", string(body))
	custom := send.Custom()
	require.Len(t, custom, 1)
	assert.Equal(t, "funky", custom[0].Name())
	assert.Equal(t, "doodle", custom[0].Value())
}

func TestRoundTripErrorFrameFromMessage(t *testing.T) {
	f := message.NewErrorFrameFromMessage("malformed frame received")

	out := message.Render(f)
	parsed, err := message.ParseServer(out)
	require.NoError(t, err)

	errFrame := parsed.(*message.ErrorFrame)
	body, ok := errFrame.Body()
	require.True(t, ok)
	assert.Equal(t, "malformed frame received", string(body))
}
