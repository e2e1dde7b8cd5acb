package message

// Known header names, per the STOMP 1.2 specification. These are the
// wire-form tokens used on the left of the ':' in a header line.
const (
	Destination    = "destination"
	MessageID      = "message-id"
	HeartBeat      = "heart-beat"
	AcceptVersion  = "accept-version"
	ContentType    = "content-type"
	ContentLength  = "content-length"
	Ack            = "ack"
	Receipt        = "receipt"
	ReceiptID      = "receipt-id"
	Session        = "session"
	Server         = "server"
	Version        = "version"
	Host           = "host"
	Login          = "login"
	Passcode       = "passcode"
	Transaction    = "transaction"
	ID             = "id"
	Subscription   = "subscription"
	MessageBodyKey = "message" // name of the conventional ERROR 'message' header; not in the known-header table, and NewErrorFrameFromMessage does not set it
)

// Command tokens, as they appear on the wire.
const (
	cmdAbort       = "ABORT"
	cmdAck         = "ACK"
	cmdBegin       = "BEGIN"
	cmdCommit      = "COMMIT"
	cmdConnect     = "CONNECT"
	cmdStomp       = "STOMP"
	cmdDisconnect  = "DISCONNECT"
	cmdNack        = "NACK"
	cmdSend        = "SEND"
	cmdSubscribe   = "SUBSCRIBE"
	cmdUnsubscribe = "UNSUBSCRIBE"

	cmdConnected = "CONNECTED"
	cmdReceipt   = "RECEIPT"
	cmdError     = "ERROR"
	cmdMessage   = "MESSAGE"
)
