package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblet/stomp-parser/message"
)

func TestEscapingBijection(t *testing.T) {
	cases := []string{
		"plain",
		"with\\backslash",
		"with\nnewline",
		"with\rcarriage",
		"with:colon",
		"a\\b\nc\rd:e",
		"",
	}

	for _, s := range cases {
		f, err := message.NewSendFrameBuilder().
			Destination("d").
			CustomHeader("x-case", s).
			Build()
		require.NoError(t, err)

		out := message.Render(f)
		parsed, err := message.ParseClient(out)
		require.NoError(t, err)

		send := parsed.(*message.SendFrame)
		custom := send.Custom()
		require.Len(t, custom, 1)
		assert.Equal(t, s, custom[0].Value())
	}
}

func TestEscapeDisabledForConnectFamily(t *testing.T) {
	f, err := message.NewConnectFrameBuilder().
		Host("host:with:colons").
		AcceptVersion(message.V12).
		Build()
	require.NoError(t, err)

	out := message.Render(f)
	assert.Contains(t, string(out), "host:host:with:colons\n")
}
