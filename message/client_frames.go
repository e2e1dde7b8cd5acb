package message

// ClientFrame is the tagged union of every frame a STOMP client may send.
// Its concrete implementations are AbortFrame, AckFrame, BeginFrame,
// CommitFrame, ConnectFrame, DisconnectFrame, NackFrame, SendFrame,
// SubscribeFrame and UnsubscribeFrame.
type ClientFrame interface {
	framer
	isClientFrame()
}

func wrapClientFrame(raw *rawFrame) ClientFrame {
	switch raw.spec.command {
	case cmdAbort:
		return &AbortFrame{r: raw}
	case cmdAck:
		return &AckFrame{r: raw}
	case cmdBegin:
		return &BeginFrame{r: raw}
	case cmdCommit:
		return &CommitFrame{r: raw}
	case cmdConnect:
		return &ConnectFrame{r: raw}
	case cmdDisconnect:
		return &DisconnectFrame{r: raw}
	case cmdNack:
		return &NackFrame{r: raw}
	case cmdSend:
		return &SendFrame{r: raw}
	case cmdSubscribe:
		return &SubscribeFrame{r: raw}
	case cmdUnsubscribe:
		return &UnsubscribeFrame{r: raw}
	default:
		panic("stomp: unreachable: unknown client command " + raw.spec.command)
	}
}

// --- ABORT ---

// AbortFrame aborts a transaction that has begun but not yet been committed.
type AbortFrame struct{ r *rawFrame }

func (f *AbortFrame) isClientFrame()     {}
func (f *AbortFrame) raw() *rawFrame     { return f.r }
func (f *AbortFrame) Transaction() string { return f.r.getRequiredString(Transaction) }

// NewAbortFrame constructs an AbortFrame directly.
func NewAbortFrame(transaction string) *AbortFrame {
	raw := newRawFrame(clientSchema[cmdAbort])
	raw.fields[Transaction] = transaction
	return &AbortFrame{r: raw}
}

// AbortFrameBuilder builds an AbortFrame incrementally.
type AbortFrameBuilder struct{ b frameBuilder }

// NewAbortFrameBuilder returns a new, empty AbortFrameBuilder.
func NewAbortFrameBuilder() *AbortFrameBuilder {
	return &AbortFrameBuilder{b: newFrameBuilder(clientSchema[cmdAbort])}
}

func (bld *AbortFrameBuilder) Transaction(v string) *AbortFrameBuilder {
	bld.b.setField(Transaction, v)
	return bld
}

func (bld *AbortFrameBuilder) Build() (*AbortFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &AbortFrame{r: raw}, nil
}

// --- ACK ---

// AckFrame acknowledges a received message.
type AckFrame struct{ r *rawFrame }

func (f *AckFrame) isClientFrame() {}
func (f *AckFrame) raw() *rawFrame { return f.r }
func (f *AckFrame) ID() string     { return f.r.getRequiredString(ID) }
func (f *AckFrame) Transaction() string { return f.r.getRequiredString(Transaction) }
func (f *AckFrame) Receipt() (string, bool) { return f.r.getString(Receipt) }

// NewAckFrame constructs an AckFrame directly. receipt may be nil.
func NewAckFrame(id, transaction string, receipt *string) *AckFrame {
	raw := newRawFrame(clientSchema[cmdAck])
	raw.fields[ID] = id
	raw.fields[Transaction] = transaction
	if receipt != nil {
		raw.fields[Receipt] = *receipt
	}
	return &AckFrame{r: raw}
}

// AckFrameBuilder builds an AckFrame incrementally.
type AckFrameBuilder struct{ b frameBuilder }

func NewAckFrameBuilder() *AckFrameBuilder {
	return &AckFrameBuilder{b: newFrameBuilder(clientSchema[cmdAck])}
}

func (bld *AckFrameBuilder) ID(v string) *AckFrameBuilder {
	bld.b.setField(ID, v)
	return bld
}

func (bld *AckFrameBuilder) Transaction(v string) *AckFrameBuilder {
	bld.b.setField(Transaction, v)
	return bld
}

func (bld *AckFrameBuilder) Receipt(v string) *AckFrameBuilder {
	bld.b.setField(Receipt, v)
	return bld
}

func (bld *AckFrameBuilder) Build() (*AckFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &AckFrame{r: raw}, nil
}

// --- BEGIN ---

// BeginFrame begins a transaction.
type BeginFrame struct{ r *rawFrame }

func (f *BeginFrame) isClientFrame()        {}
func (f *BeginFrame) raw() *rawFrame        { return f.r }
func (f *BeginFrame) Transaction() string   { return f.r.getRequiredString(Transaction) }
func (f *BeginFrame) Receipt() (string, bool) { return f.r.getString(Receipt) }

// NewBeginFrame constructs a BeginFrame directly. receipt may be nil.
func NewBeginFrame(transaction string, receipt *string) *BeginFrame {
	raw := newRawFrame(clientSchema[cmdBegin])
	raw.fields[Transaction] = transaction
	if receipt != nil {
		raw.fields[Receipt] = *receipt
	}
	return &BeginFrame{r: raw}
}

// BeginFrameBuilder builds a BeginFrame incrementally.
type BeginFrameBuilder struct{ b frameBuilder }

func NewBeginFrameBuilder() *BeginFrameBuilder {
	return &BeginFrameBuilder{b: newFrameBuilder(clientSchema[cmdBegin])}
}

func (bld *BeginFrameBuilder) Transaction(v string) *BeginFrameBuilder {
	bld.b.setField(Transaction, v)
	return bld
}

func (bld *BeginFrameBuilder) Receipt(v string) *BeginFrameBuilder {
	bld.b.setField(Receipt, v)
	return bld
}

func (bld *BeginFrameBuilder) Build() (*BeginFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &BeginFrame{r: raw}, nil
}

// --- COMMIT ---

// CommitFrame commits a transaction.
type CommitFrame struct{ r *rawFrame }

func (f *CommitFrame) isClientFrame()        {}
func (f *CommitFrame) raw() *rawFrame        { return f.r }
func (f *CommitFrame) Transaction() string   { return f.r.getRequiredString(Transaction) }
func (f *CommitFrame) Receipt() (string, bool) { return f.r.getString(Receipt) }

// NewCommitFrame constructs a CommitFrame directly. receipt may be nil.
func NewCommitFrame(transaction string, receipt *string) *CommitFrame {
	raw := newRawFrame(clientSchema[cmdCommit])
	raw.fields[Transaction] = transaction
	if receipt != nil {
		raw.fields[Receipt] = *receipt
	}
	return &CommitFrame{r: raw}
}

// CommitFrameBuilder builds a CommitFrame incrementally.
type CommitFrameBuilder struct{ b frameBuilder }

func NewCommitFrameBuilder() *CommitFrameBuilder {
	return &CommitFrameBuilder{b: newFrameBuilder(clientSchema[cmdCommit])}
}

func (bld *CommitFrameBuilder) Transaction(v string) *CommitFrameBuilder {
	bld.b.setField(Transaction, v)
	return bld
}

func (bld *CommitFrameBuilder) Receipt(v string) *CommitFrameBuilder {
	bld.b.setField(Receipt, v)
	return bld
}

func (bld *CommitFrameBuilder) Build() (*CommitFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &CommitFrame{r: raw}, nil
}

// --- CONNECT (alias STOMP) ---

// ConnectFrame initiates a STOMP session. It is produced by parsing
// either a CONNECT or a STOMP command; Render always emits CONNECT.
type ConnectFrame struct{ r *rawFrame }

func (f *ConnectFrame) isClientFrame() {}
func (f *ConnectFrame) raw() *rawFrame { return f.r }
func (f *ConnectFrame) Host() string   { return f.r.getRequiredString(Host) }
func (f *ConnectFrame) AcceptVersion() VersionSet {
	v, _ := f.r.getVersionSet(AcceptVersion)
	return v
}
func (f *ConnectFrame) HeartBeat() (HeartBeatValue, bool) { return f.r.getHeartBeat(HeartBeat) }
func (f *ConnectFrame) Login() (string, bool)             { return f.r.getString(Login) }
func (f *ConnectFrame) Passcode() (string, bool)          { return f.r.getString(Passcode) }

// NewConnectFrame constructs a ConnectFrame directly. heartbeat, login
// and passcode may be nil.
func NewConnectFrame(host string, acceptVersion VersionSet, heartbeat *HeartBeatValue, login, passcode *string) *ConnectFrame {
	raw := newRawFrame(clientSchema[cmdConnect])
	raw.fields[Host] = host
	raw.fields[AcceptVersion] = acceptVersion
	if heartbeat != nil {
		raw.fields[HeartBeat] = *heartbeat
	}
	if login != nil {
		raw.fields[Login] = *login
	}
	if passcode != nil {
		raw.fields[Passcode] = *passcode
	}
	return &ConnectFrame{r: raw}
}

// ConnectFrameBuilder builds a ConnectFrame incrementally.
type ConnectFrameBuilder struct{ b frameBuilder }

func NewConnectFrameBuilder() *ConnectFrameBuilder {
	return &ConnectFrameBuilder{b: newFrameBuilder(clientSchema[cmdConnect])}
}

func (bld *ConnectFrameBuilder) Host(v string) *ConnectFrameBuilder {
	bld.b.setField(Host, v)
	return bld
}

func (bld *ConnectFrameBuilder) AcceptVersion(v ...VersionTag) *ConnectFrameBuilder {
	bld.b.setField(AcceptVersion, VersionSet(v))
	return bld
}

func (bld *ConnectFrameBuilder) HeartBeat(supplied, expected int) *ConnectFrameBuilder {
	bld.b.setField(HeartBeat, HeartBeatValue{Supplied: supplied, Expected: expected})
	return bld
}

func (bld *ConnectFrameBuilder) Login(v string) *ConnectFrameBuilder {
	bld.b.setField(Login, v)
	return bld
}

func (bld *ConnectFrameBuilder) Passcode(v string) *ConnectFrameBuilder {
	bld.b.setField(Passcode, v)
	return bld
}

func (bld *ConnectFrameBuilder) Build() (*ConnectFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &ConnectFrame{r: raw}, nil
}

// --- DISCONNECT ---

// DisconnectFrame ends a STOMP session.
type DisconnectFrame struct{ r *rawFrame }

func (f *DisconnectFrame) isClientFrame() {}
func (f *DisconnectFrame) raw() *rawFrame { return f.r }
func (f *DisconnectFrame) Receipt() string { return f.r.getRequiredString(Receipt) }

// NewDisconnectFrame constructs a DisconnectFrame directly.
func NewDisconnectFrame(receipt string) *DisconnectFrame {
	raw := newRawFrame(clientSchema[cmdDisconnect])
	raw.fields[Receipt] = receipt
	return &DisconnectFrame{r: raw}
}

// DisconnectFrameBuilder builds a DisconnectFrame incrementally.
type DisconnectFrameBuilder struct{ b frameBuilder }

func NewDisconnectFrameBuilder() *DisconnectFrameBuilder {
	return &DisconnectFrameBuilder{b: newFrameBuilder(clientSchema[cmdDisconnect])}
}

func (bld *DisconnectFrameBuilder) Receipt(v string) *DisconnectFrameBuilder {
	bld.b.setField(Receipt, v)
	return bld
}

func (bld *DisconnectFrameBuilder) Build() (*DisconnectFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &DisconnectFrame{r: raw}, nil
}

// --- NACK ---

// NackFrame indicates that the client did not, or could not, process a message.
type NackFrame struct{ r *rawFrame }

func (f *NackFrame) isClientFrame()        {}
func (f *NackFrame) raw() *rawFrame        { return f.r }
func (f *NackFrame) ID() string            { return f.r.getRequiredString(ID) }
func (f *NackFrame) Transaction() string   { return f.r.getRequiredString(Transaction) }
func (f *NackFrame) Receipt() (string, bool) { return f.r.getString(Receipt) }

// NewNackFrame constructs a NackFrame directly. receipt may be nil.
func NewNackFrame(id, transaction string, receipt *string) *NackFrame {
	raw := newRawFrame(clientSchema[cmdNack])
	raw.fields[ID] = id
	raw.fields[Transaction] = transaction
	if receipt != nil {
		raw.fields[Receipt] = *receipt
	}
	return &NackFrame{r: raw}
}

// NackFrameBuilder builds a NackFrame incrementally.
type NackFrameBuilder struct{ b frameBuilder }

func NewNackFrameBuilder() *NackFrameBuilder {
	return &NackFrameBuilder{b: newFrameBuilder(clientSchema[cmdNack])}
}

func (bld *NackFrameBuilder) ID(v string) *NackFrameBuilder {
	bld.b.setField(ID, v)
	return bld
}

func (bld *NackFrameBuilder) Transaction(v string) *NackFrameBuilder {
	bld.b.setField(Transaction, v)
	return bld
}

func (bld *NackFrameBuilder) Receipt(v string) *NackFrameBuilder {
	bld.b.setField(Receipt, v)
	return bld
}

func (bld *NackFrameBuilder) Build() (*NackFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &NackFrame{r: raw}, nil
}

// --- SEND ---

// SendFrame sends a message to a specific destination.
type SendFrame struct{ r *rawFrame }

func (f *SendFrame) isClientFrame()   {}
func (f *SendFrame) raw() *rawFrame   { return f.r }
func (f *SendFrame) Destination() string { return f.r.getRequiredString(Destination) }
func (f *SendFrame) ContentType() (string, bool) { return f.r.getString(ContentType) }
func (f *SendFrame) ContentLength() (ContentLengthValue, bool) {
	return f.r.getContentLength(ContentLength)
}
func (f *SendFrame) Transaction() (string, bool) { return f.r.getString(Transaction) }
func (f *SendFrame) Receipt() (string, bool)     { return f.r.getString(Receipt) }
func (f *SendFrame) Custom() []CustomHeader      { return f.r.Custom() }
func (f *SendFrame) Body() ([]byte, bool)        { return f.r.Body() }

// NewSendFrame constructs a SendFrame directly. contentType, contentLength,
// transaction and receipt may be nil; custom and body may be empty/nil.
func NewSendFrame(destination string, contentType *string, contentLength *ContentLengthValue, transaction, receipt *string, custom []CustomHeader, body []byte) *SendFrame {
	raw := newRawFrame(clientSchema[cmdSend])
	raw.fields[Destination] = destination
	if contentType != nil {
		raw.fields[ContentType] = *contentType
	}
	if contentLength != nil {
		raw.fields[ContentLength] = *contentLength
	}
	if transaction != nil {
		raw.fields[Transaction] = *transaction
	}
	if receipt != nil {
		raw.fields[Receipt] = *receipt
	}
	raw.custom = custom
	if body != nil {
		raw.body = body
		raw.hasBody = true
	}
	return &SendFrame{r: raw}
}

// SendFrameBuilder builds a SendFrame incrementally.
type SendFrameBuilder struct{ b frameBuilder }

func NewSendFrameBuilder() *SendFrameBuilder {
	return &SendFrameBuilder{b: newFrameBuilder(clientSchema[cmdSend])}
}

func (bld *SendFrameBuilder) Destination(v string) *SendFrameBuilder {
	bld.b.setField(Destination, v)
	return bld
}

func (bld *SendFrameBuilder) ContentType(v string) *SendFrameBuilder {
	bld.b.setField(ContentType, v)
	return bld
}

func (bld *SendFrameBuilder) ContentLength(v int) *SendFrameBuilder {
	bld.b.setField(ContentLength, ContentLengthValue(v))
	return bld
}

func (bld *SendFrameBuilder) Transaction(v string) *SendFrameBuilder {
	bld.b.setField(Transaction, v)
	return bld
}

func (bld *SendFrameBuilder) Receipt(v string) *SendFrameBuilder {
	bld.b.setField(Receipt, v)
	return bld
}

func (bld *SendFrameBuilder) CustomHeader(name, value string) *SendFrameBuilder {
	bld.b.addCustom(name, value)
	return bld
}

func (bld *SendFrameBuilder) Body(v []byte) *SendFrameBuilder {
	bld.b.setBody(v)
	return bld
}

func (bld *SendFrameBuilder) Build() (*SendFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &SendFrame{r: raw}, nil
}

// --- SUBSCRIBE ---

// SubscribeFrame subscribes to a specific destination.
type SubscribeFrame struct{ r *rawFrame }

func (f *SubscribeFrame) isClientFrame()   {}
func (f *SubscribeFrame) raw() *rawFrame   { return f.r }
func (f *SubscribeFrame) Destination() string { return f.r.getRequiredString(Destination) }
func (f *SubscribeFrame) ID() string       { return f.r.getRequiredString(ID) }
func (f *SubscribeFrame) Ack() (AckMode, bool) { return f.r.getAckMode(Ack) }
func (f *SubscribeFrame) Receipt() (string, bool) { return f.r.getString(Receipt) }
func (f *SubscribeFrame) Custom() []CustomHeader  { return f.r.Custom() }

// NewSubscribeFrame constructs a SubscribeFrame directly. ackMode and
// receipt may be nil; custom may be empty/nil.
func NewSubscribeFrame(destination, id string, ackMode *AckMode, receipt *string, custom []CustomHeader) *SubscribeFrame {
	raw := newRawFrame(clientSchema[cmdSubscribe])
	raw.fields[Destination] = destination
	raw.fields[ID] = id
	if ackMode != nil {
		raw.fields[Ack] = *ackMode
	}
	if receipt != nil {
		raw.fields[Receipt] = *receipt
	}
	raw.custom = custom
	return &SubscribeFrame{r: raw}
}

// SubscribeFrameBuilder builds a SubscribeFrame incrementally.
type SubscribeFrameBuilder struct{ b frameBuilder }

func NewSubscribeFrameBuilder() *SubscribeFrameBuilder {
	return &SubscribeFrameBuilder{b: newFrameBuilder(clientSchema[cmdSubscribe])}
}

func (bld *SubscribeFrameBuilder) Destination(v string) *SubscribeFrameBuilder {
	bld.b.setField(Destination, v)
	return bld
}

func (bld *SubscribeFrameBuilder) ID(v string) *SubscribeFrameBuilder {
	bld.b.setField(ID, v)
	return bld
}

func (bld *SubscribeFrameBuilder) Ack(v AckMode) *SubscribeFrameBuilder {
	bld.b.setField(Ack, v)
	return bld
}

func (bld *SubscribeFrameBuilder) Receipt(v string) *SubscribeFrameBuilder {
	bld.b.setField(Receipt, v)
	return bld
}

func (bld *SubscribeFrameBuilder) CustomHeader(name, value string) *SubscribeFrameBuilder {
	bld.b.addCustom(name, value)
	return bld
}

func (bld *SubscribeFrameBuilder) Build() (*SubscribeFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &SubscribeFrame{r: raw}, nil
}

// --- UNSUBSCRIBE ---

// UnsubscribeFrame cancels a specific subscription.
type UnsubscribeFrame struct{ r *rawFrame }

func (f *UnsubscribeFrame) isClientFrame() {}
func (f *UnsubscribeFrame) raw() *rawFrame { return f.r }
func (f *UnsubscribeFrame) ID() string     { return f.r.getRequiredString(ID) }
func (f *UnsubscribeFrame) Receipt() (string, bool) { return f.r.getString(Receipt) }

// NewUnsubscribeFrame constructs an UnsubscribeFrame directly. receipt
// may be nil.
func NewUnsubscribeFrame(id string, receipt *string) *UnsubscribeFrame {
	raw := newRawFrame(clientSchema[cmdUnsubscribe])
	raw.fields[ID] = id
	if receipt != nil {
		raw.fields[Receipt] = *receipt
	}
	return &UnsubscribeFrame{r: raw}
}

// UnsubscribeFrameBuilder builds an UnsubscribeFrame incrementally.
type UnsubscribeFrameBuilder struct{ b frameBuilder }

func NewUnsubscribeFrameBuilder() *UnsubscribeFrameBuilder {
	return &UnsubscribeFrameBuilder{b: newFrameBuilder(clientSchema[cmdUnsubscribe])}
}

func (bld *UnsubscribeFrameBuilder) ID(v string) *UnsubscribeFrameBuilder {
	bld.b.setField(ID, v)
	return bld
}

func (bld *UnsubscribeFrameBuilder) Receipt(v string) *UnsubscribeFrameBuilder {
	bld.b.setField(Receipt, v)
	return bld
}

func (bld *UnsubscribeFrameBuilder) Build() (*UnsubscribeFrame, error) {
	raw, err := bld.b.build()
	if err != nil {
		return nil, err
	}
	return &UnsubscribeFrame{r: raw}, nil
}
