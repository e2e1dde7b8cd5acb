package message

// ServerFrame is the tagged union of every frame a STOMP server may send.
// Its concrete implementations are ConnectedFrame, ReceiptFrame,
// ErrorFrame and MessageFrame.
type ServerFrame interface {
	framer
	isServerFrame()
}

func wrapServerFrame(raw *rawFrame) ServerFrame {
	switch raw.spec.command {
	case cmdConnected:
		return &ConnectedFrame{r: raw}
	case cmdReceipt:
		return &ReceiptFrame{r: raw}
	case cmdError:
		return &ErrorFrame{r: raw}
	case cmdMessage:
		return &MessageFrame{r: raw}
	default:
		panic("stomp: unreachable: unknown server command " + raw.spec.command)
	}
}

// --- CONNECTED ---

// ConnectedFrame is a broker's reply to a successful CONNECT/STOMP frame.
type ConnectedFrame struct{ r *rawFrame }

func (f *ConnectedFrame) isServerFrame() {}
func (f *ConnectedFrame) raw() *rawFrame { return f.r }
func (f *ConnectedFrame) Version() VersionTag {
	v, _ := f.r.getVersionTag(Version)
	return v
}
func (f *ConnectedFrame) HeartBeat() (HeartBeatValue, bool) { return f.r.getHeartBeat(HeartBeat) }
func (f *ConnectedFrame) Session() (string, bool)           { return f.r.getString(Session) }
func (f *ConnectedFrame) Server() (string, bool)            { return f.r.getString(Server) }

// NewConnectedFrame constructs a ConnectedFrame directly. heartbeat,
// session and server may be nil.
func NewConnectedFrame(version VersionTag, heartbeat *HeartBeatValue, session, server *string) *ConnectedFrame {
	raw := newRawFrame(serverSchema[cmdConnected])
	raw.fields[Version] = version
	if heartbeat != nil {
		raw.fields[HeartBeat] = *heartbeat
	}
	if session != nil {
		raw.fields[Session] = *session
	}
	if server != nil {
		raw.fields[Server] = *server
	}
	return &ConnectedFrame{r: raw}
}

// ConnectedFrameBuilder builds a ConnectedFrame incrementally.
type ConnectedFrameBuilder struct{ b frameBuilder }

func NewConnectedFrameBuilder() *ConnectedFrameBuilder {
	return &ConnectedFrameBuilder{b: newFrameBuilder(serverSchema[cmdConnected])}
}

func (bld *ConnectedFrameBuilder) Version(v VersionTag) *ConnectedFrameBuilder {
	bld.b.setField(Version, v)
	return bld
}

func (bld *ConnectedFrameBuilder) HeartBeat(supplied, expected int) *ConnectedFrameBuilder {
	bld.b.setField(HeartBeat, HeartBeatValue{Supplied: supplied, Expected: expected})
	return bld
}

func (bld *ConnectedFrameBuilder) Session(v string) *ConnectedFrameBuilder {
	bld.b.setField(Session, v)
	return bld
}

func (bld *ConnectedFrameBuilder) Server(v string) *ConnectedFrameBuilder {
	bld.b.setField(Server, v)
	return bld
}

func (bld *ConnectedFrameBuilder) Build() (*ConnectedFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &ConnectedFrame{r: raw}, nil
}

// --- RECEIPT ---

// ReceiptFrame acknowledges that a client's requested receipt has been
// processed.
type ReceiptFrame struct{ r *rawFrame }

func (f *ReceiptFrame) isServerFrame() {}
func (f *ReceiptFrame) raw() *rawFrame { return f.r }
func (f *ReceiptFrame) ReceiptID() string { return f.r.getRequiredString(ReceiptID) }

// NewReceiptFrame constructs a ReceiptFrame directly.
func NewReceiptFrame(receiptID string) *ReceiptFrame {
	raw := newRawFrame(serverSchema[cmdReceipt])
	raw.fields[ReceiptID] = receiptID
	return &ReceiptFrame{r: raw}
}

// ReceiptFrameBuilder builds a ReceiptFrame incrementally.
type ReceiptFrameBuilder struct{ b frameBuilder }

func NewReceiptFrameBuilder() *ReceiptFrameBuilder {
	return &ReceiptFrameBuilder{b: newFrameBuilder(serverSchema[cmdReceipt])}
}

func (bld *ReceiptFrameBuilder) ReceiptID(v string) *ReceiptFrameBuilder {
	bld.b.setField(ReceiptID, v)
	return bld
}

func (bld *ReceiptFrameBuilder) Build() (*ReceiptFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &ReceiptFrame{r: raw}, nil
}

// --- ERROR ---

// ErrorFrame reports a protocol or processing error; the broker closes
// the connection immediately after sending it.
type ErrorFrame struct{ r *rawFrame }

func (f *ErrorFrame) isServerFrame()       {}
func (f *ErrorFrame) raw() *rawFrame       { return f.r }
func (f *ErrorFrame) Custom() []CustomHeader { return f.r.Custom() }
func (f *ErrorFrame) Body() ([]byte, bool) { return f.r.Body() }

// NewErrorFrame constructs an ErrorFrame directly. custom and body may
// be empty/nil.
func NewErrorFrame(custom []CustomHeader, body []byte) *ErrorFrame {
	raw := newRawFrame(serverSchema[cmdError])
	raw.custom = custom
	if body != nil {
		raw.body = body
		raw.hasBody = true
	}
	return &ErrorFrame{r: raw}
}

// NewErrorFrameFromMessage is the ERROR-frame convenience constructor
// named in the protocol surface: it builds an ERROR frame with no custom
// headers whose body is exactly the given message's UTF-8 bytes.
func NewErrorFrameFromMessage(message string) *ErrorFrame {
	return NewErrorFrame(nil, []byte(message))
}

// ErrorFrameBuilder builds an ErrorFrame incrementally.
type ErrorFrameBuilder struct{ b frameBuilder }

func NewErrorFrameBuilder() *ErrorFrameBuilder {
	return &ErrorFrameBuilder{b: newFrameBuilder(serverSchema[cmdError])}
}

func (bld *ErrorFrameBuilder) CustomHeader(name, value string) *ErrorFrameBuilder {
	bld.b.addCustom(name, value)
	return bld
}

func (bld *ErrorFrameBuilder) Body(v []byte) *ErrorFrameBuilder {
	bld.b.setBody(v)
	return bld
}

func (bld *ErrorFrameBuilder) Build() (*ErrorFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &ErrorFrame{r: raw}, nil
}

// --- MESSAGE ---

// MessageFrame delivers a message to a subscribed client.
type MessageFrame struct{ r *rawFrame }

func (f *MessageFrame) isServerFrame() {}
func (f *MessageFrame) raw() *rawFrame { return f.r }
func (f *MessageFrame) MessageID() string    { return f.r.getRequiredString(MessageID) }
func (f *MessageFrame) Destination() string  { return f.r.getRequiredString(Destination) }
func (f *MessageFrame) Subscription() string { return f.r.getRequiredString(Subscription) }
func (f *MessageFrame) ContentType() (string, bool) { return f.r.getString(ContentType) }
func (f *MessageFrame) ContentLength() (ContentLengthValue, bool) {
	return f.r.getContentLength(ContentLength)
}
func (f *MessageFrame) Body() ([]byte, bool) { return f.r.Body() }

// NewMessageFrame constructs a MessageFrame directly. contentType and
// contentLength may be nil; body may be nil (an absent body, not a
// zero-length one -- pass an empty, non-nil slice for that).
func NewMessageFrame(messageID, destination, subscription string, contentType *string, contentLength *ContentLengthValue, body []byte) *MessageFrame {
	raw := newRawFrame(serverSchema[cmdMessage])
	raw.fields[MessageID] = messageID
	raw.fields[Destination] = destination
	raw.fields[Subscription] = subscription
	if contentType != nil {
		raw.fields[ContentType] = *contentType
	}
	if contentLength != nil {
		raw.fields[ContentLength] = *contentLength
	}
	if body != nil {
		raw.body = body
		raw.hasBody = true
	}
	return &MessageFrame{r: raw}
}

// MessageFrameBuilder builds a MessageFrame incrementally.
type MessageFrameBuilder struct{ b frameBuilder }

func NewMessageFrameBuilder() *MessageFrameBuilder {
	return &MessageFrameBuilder{b: newFrameBuilder(serverSchema[cmdMessage])}
}

func (bld *MessageFrameBuilder) MessageID(v string) *MessageFrameBuilder {
	bld.b.setField(MessageID, v)
	return bld
}

func (bld *MessageFrameBuilder) Destination(v string) *MessageFrameBuilder {
	bld.b.setField(Destination, v)
	return bld
}

func (bld *MessageFrameBuilder) Subscription(v string) *MessageFrameBuilder {
	bld.b.setField(Subscription, v)
	return bld
}

func (bld *MessageFrameBuilder) ContentType(v string) *MessageFrameBuilder {
	bld.b.setField(ContentType, v)
	return bld
}

func (bld *MessageFrameBuilder) ContentLength(v int) *MessageFrameBuilder {
	bld.b.setField(ContentLength, ContentLengthValue(v))
	return bld
}

func (bld *MessageFrameBuilder) Body(v []byte) *MessageFrameBuilder {
	bld.b.setBody(v)
	return bld
}

func (bld *MessageFrameBuilder) Build() (*MessageFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &MessageFrame{r: raw}, nil
}
