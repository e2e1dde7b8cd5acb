package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblet/stomp-parser/message"
)

func TestBuilderMissingRequiredField(t *testing.T) {
	_, err := message.NewSendFrameBuilder().Build()
	require.Error(t, err)
	var target *message.MissingRequiredError
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, message.Destination, target.Field)
}

func TestBuilderDefaultMaterializedOnlyAtBuild(t *testing.T) {
	f, err := message.NewSubscribeFrameBuilder().
		Destination("d").
		ID("s1").
		Build()
	require.NoError(t, err)

	ack, ok := f.Ack()
	require.True(t, ok)
	assert.Equal(t, message.AckAuto, ack)
}

func TestParseDoesNotMaterializeDefaults(t *testing.T) {
	in := []byte("SUBSCRIBE\ndestination:d\nid:s1\n\n\x00")
	f, err := message.ParseClient(in)
	require.NoError(t, err)

	sub := f.(*message.SubscribeFrame)
	_, ok := sub.Ack()
	assert.False(t, ok, "ack should not be materialized by the parser")
}

func TestConnectHeartBeatDefault(t *testing.T) {
	f, err := message.NewConnectFrameBuilder().
		Host("h").
		AcceptVersion(message.V12).
		Build()
	require.NoError(t, err)

	hb, ok := f.HeartBeat()
	require.True(t, ok)
	assert.Equal(t, message.HeartBeatValue{Supplied: 0, Expected: 0}, hb)
}

func TestRequiredHeaderEnforcementAcrossFrameTypes(t *testing.T) {
	_, err := message.NewConnectFrameBuilder().Build()
	require.Error(t, err)

	_, err = message.NewDisconnectFrameBuilder().Build()
	require.Error(t, err)

	_, err = message.NewAbortFrameBuilder().Build()
	require.Error(t, err)
}
