package message_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herblet/stomp-parser/message"
)

// Scenario 1: parse STOMP as an alias for CONNECT.
func TestScenario1_ParseStompAlias(t *testing.T) {
	in := []byte("STOMP\nhost:foo\naccept-version:1.1\nheart-beat:10,20\n\n\x00")
	f, err := message.ParseClient(in)
	require.NoError(t, err)

	connect, ok := f.(*message.ConnectFrame)
	require.True(t, ok)
	assert.Equal(t, "foo", connect.Host())
	assert.Equal(t, message.VersionSet{message.V11}, connect.AcceptVersion())
	hb, ok := connect.HeartBeat()
	require.True(t, ok)
	assert.Equal(t, message.HeartBeatValue{Supplied: 10, Expected: 20}, hb)
}

// Scenario 2: render CONNECTED.
func TestScenario2_RenderConnected(t *testing.T) {
	f, err := message.NewConnectedFrameBuilder().
		Version(message.V11).
		HeartBeat(20, 10).
		Build()
	require.NoError(t, err)

	out := message.Render(f)
	assert.Equal(t, "CONNECTED\nversion:1.1\nheart-beat:20,10\n\n\x00", string(out))
}

// Scenario 3: render MESSAGE with a textual body.
func TestScenario3_RenderMessageTextualBody(t *testing.T) {
	f, err := message.NewMessageFrameBuilder().
		MessageID("msg-1").
		Destination("path/to/hell").
		Subscription("annual").
		ContentType("foo/bar").
		Body([]byte("Lorem ipsum dolor sit amet,")).
		Build()
	require.NoError(t, err)

	out := message.Render(f)
	want := "MESSAGE\nmessage-id:msg-1\ndestination:path/to/hell\nsubscription:annual\ncontent-type:foo/bar\n\nLorem ipsum dolor sit amet,\x00"
	assert.Equal(t, want, string(out))
}

// Scenario 4: render MESSAGE with a binary body.
func TestScenario4_RenderMessageBinaryBody(t *testing.T) {
	body := []byte{0x00, 0x01, 0x01, 0x02, 0x03, 0x05, 0x08, 0x0d}
	f, err := message.NewMessageFrameBuilder().
		MessageID("msg-1").
		Destination("path/to/hell").
		Subscription("annual").
		ContentType("foo/bar").
		Body(body).
		Build()
	require.NoError(t, err)

	out := message.Render(f)
	wantHeaders := "MESSAGE\nmessage-id:msg-1\ndestination:path/to/hell\nsubscription:annual\ncontent-type:foo/bar\n\n"
	want := append([]byte(wantHeaders), body...)
	want = append(want, 0x00)
	assert.Equal(t, want, out)
}

// Scenario 5: parse SEND with a body.
func TestScenario5_ParseSendWithBody(t *testing.T) {
	in := []byte("SEND\ndestination:stairway/to/heaven\n\nLorem ipsum dolor sit amet,...\x00")
	f, err := message.ParseClient(in)
	require.NoError(t, err)

	send, ok := f.(*message.SendFrame)
	require.True(t, ok)
	assert.Equal(t, "stairway/to/heaven", send.Destination())
	body, ok := send.Body()
	require.True(t, ok)
	assert.Equal(t, "Lorem ipsum dolor sit amet,...", string(body))
}

// Scenario 6: every borrowed slice of a parsed frame points into the input buffer.
func TestScenario6_ZeroCopyCustomHeaderParse(t *testing.T) {
	in := []byte("SEND\ndestination:stairway/to/heaven\nfunky:doodle\n\nLorem ipsum dolor sit amet,...\x00")
	f, err := message.ParseClient(in)
	require.NoError(t, err)

	send, ok := f.(*message.SendFrame)
	require.True(t, ok)

	lo := uintptr(unsafe.Pointer(&in[0]))
	hi := lo + uintptr(len(in))
	within := func(s string) bool {
		if len(s) == 0 {
			return true
		}
		p := uintptr(unsafe.Pointer(unsafe.StringData(s)))
		return p >= lo && p < hi
	}

	assert.True(t, within(send.Destination()))

	body, ok := send.Body()
	require.True(t, ok)
	assert.True(t, within(unsafe.String(unsafe.SliceData(body), len(body))))

	custom := send.Custom()
	require.Len(t, custom, 1)
	assert.Equal(t, "funky", custom[0].Name())
	assert.Equal(t, "doodle", custom[0].Value())
	assert.True(t, within(custom[0].Name()))
	assert.True(t, within(custom[0].Value()))
}

// Scenario 7: a body whose first byte is itself NUL still parses in full;
// the terminator is the buffer's last byte, not the first NUL encountered.
func TestScenario7_ParseBinarySend(t *testing.T) {
	payload := []byte{0, 1, 1, 2, 3, 5, 8, 13}
	in := append([]byte("SEND\ndestination:stairway/to/heaven\n\n"), payload...)
	in = append(in, 0x00)

	f, err := message.ParseClient(in)
	require.NoError(t, err)

	send, ok := f.(*message.SendFrame)
	require.True(t, ok)
	body, ok := send.Body()
	require.True(t, ok)
	assert.Equal(t, payload, body)
}

func TestThreadMoveSafety(t *testing.T) {
	in := []byte("SEND\ndestination:stairway/to/heaven\n\nhello\x00")
	f, err := message.ParseClient(in)
	require.NoError(t, err)

	results := make(chan string, 1)
	go func() {
		send := f.(*message.SendFrame)
		body, _ := send.Body()
		results <- send.Destination() + "|" + string(body)
	}()

	assert.Equal(t, "stairway/to/heaven|hello", <-results)
}

func TestDuplicateHeaderPolicyFirstWins(t *testing.T) {
	in := []byte("SEND\ndestination:first\ndestination:second\n\nbody\x00")
	f, err := message.ParseClient(in)
	require.NoError(t, err)

	send := f.(*message.SendFrame)
	assert.Equal(t, "first", send.Destination())
}

func TestContentLengthAgreement(t *testing.T) {
	in := []byte("SEND\ndestination:d\ncontent-length:5\n\nhello\x00")
	f, err := message.ParseClient(in)
	require.NoError(t, err)

	send := f.(*message.SendFrame)
	body, ok := send.Body()
	require.True(t, ok)
	assert.Len(t, body, 5)
	cl, ok := send.ContentLength()
	require.True(t, ok)
	assert.Equal(t, message.ContentLengthValue(5), cl)
}

func TestContentLengthTrailingNulMismatch(t *testing.T) {
	in := []byte("SEND\ndestination:d\ncontent-length:3\n\nhello\x00")
	_, err := message.ParseClient(in)
	require.Error(t, err)
	var target *message.InvalidBodyError
	assert.ErrorAs(t, err, &target)
}

func TestWrongDirectionError(t *testing.T) {
	in := []byte("CONNECTED\nversion:1.2\n\n\x00")
	_, err := message.ParseClient(in)
	require.Error(t, err)
	var target *message.WrongDirectionError
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, message.DirectionClient, target.Expected)
}

func TestUnknownCommandError(t *testing.T) {
	in := []byte("FROBNICATE\n\n\x00")
	_, err := message.ParseClient(in)
	require.Error(t, err)
	var target *message.UnknownCommandError
	assert.ErrorAs(t, err, &target)
}

func TestMissingHeaderError(t *testing.T) {
	in := []byte("SEND\n\nbody\x00")
	_, err := message.ParseClient(in)
	require.Error(t, err)
	var target *message.MissingHeaderError
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, message.Destination, target.Header)
}
