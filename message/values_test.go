package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/herblet/stomp-parser/message"
)

func TestParseVersionSetPreservesOrder(t *testing.T) {
	vs, err := message.ParseVersionSet([]byte("1.2,1.0,1.1"))
	assert.NoError(t, err)
	assert.Equal(t, message.VersionSet{message.V12, message.V10, message.V11}, vs)
	assert.Equal(t, "1.2,1.0,1.1", vs.String())
}

func TestParseVersionSetRejectsUnknownTag(t *testing.T) {
	_, err := message.ParseVersionSet([]byte("1.2,9.9"))
	assert.Error(t, err)
	var target *message.InvalidHeaderValueError
	assert.ErrorAs(t, err, &target)
}

func TestParseHeartBeatValue(t *testing.T) {
	hb, err := message.ParseHeartBeatValue([]byte("10,20"))
	assert.NoError(t, err)
	assert.Equal(t, message.HeartBeatValue{Supplied: 10, Expected: 20}, hb)
	assert.Equal(t, "10,20", hb.String())
}

func TestParseHeartBeatValueMalformed(t *testing.T) {
	_, err := message.ParseHeartBeatValue([]byte("not-a-number"))
	assert.Error(t, err)
}

func TestParseAckMode(t *testing.T) {
	m, err := message.ParseAckMode([]byte("client-individual"))
	assert.NoError(t, err)
	assert.Equal(t, message.AckClientIndividual, m)

	_, err = message.ParseAckMode([]byte("bogus"))
	assert.Error(t, err)
}

func TestParseContentLengthValue(t *testing.T) {
	n, err := message.ParseContentLengthValue([]byte("27"))
	assert.NoError(t, err)
	assert.Equal(t, message.ContentLengthValue(27), n)

	_, err = message.ParseContentLengthValue([]byte("-1"))
	assert.Error(t, err)
}
