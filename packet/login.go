package packet

import "github.com/google/uuid"

// Hello is sent by the client with its chosen name and offline-mode uuid
// (serverbound 0x00 in Login state).
type Hello struct {
	Name       string    `mc:"string"`
	PlayerUUID uuid.UUID `mc:"uuid"`
}

func (Hello) PacketID() int32 { return 0x00 }

// EncryptionKeyRequest starts the key exchange (clientbound 0x01). ShouldAuthenticate
// is false for offline-mode servers, in which case the session-server round trip
// is skipped entirely.
type EncryptionKeyRequest struct {
	ServerID           string `mc:"string"`
	PublicKey          []byte `mc:"bytearray"`
	VerifyToken        []byte `mc:"bytearray"`
	ShouldAuthenticate bool   `mc:"bool"`
}

func (EncryptionKeyRequest) PacketID() int32 { return 0x01 }

// EncryptionKeyResponse carries the client's encrypted shared secret and
// verify token (serverbound 0x01).
type EncryptionKeyResponse struct {
	SharedSecret []byte `mc:"bytearray"`
	VerifyToken  []byte `mc:"bytearray"`
}

func (EncryptionKeyResponse) PacketID() int32 { return 0x01 }

// LoginCompression switches compression on for frames from this point
// forward (clientbound 0x03).
type LoginCompression struct {
	Threshold int32 `mc:"varint"`
}

func (LoginCompression) PacketID() int32 { return 0x03 }

// LoginFinished ends the Login state with the server-assigned profile
// (clientbound 0x02). Property data (skins/capes) is a nested array the
// declarative codec doesn't model; callers decode it from Raw with the
// world/nbt-adjacent helpers in the client package.
type LoginFinished struct {
	PlayerUUID uuid.UUID `mc:"uuid"`
	Username   string    `mc:"string"`
	Raw        []byte    `mc:"rest"`
}

func (LoginFinished) PacketID() int32 { return 0x02 }

// LoginAcknowledged is sent by the client to move from Login into
// Configuration (serverbound 0x03).
type LoginAcknowledged struct{}

func (LoginAcknowledged) PacketID() int32 { return 0x03 }

// CustomQuery is a server-initiated plugin query during login (clientbound 0x04).
type CustomQuery struct {
	TransactionID int32  `mc:"varint"`
	Channel       string `mc:"string"`
	Data          []byte `mc:"rest"`
}

func (CustomQuery) PacketID() int32 { return 0x04 }

// CustomQueryAnswer answers a CustomQuery; Payload is nil when the id is
// unrecognized (serverbound 0x02).
type CustomQueryAnswer struct {
	TransactionID int32   `mc:"varint"`
	Payload       *[]byte `mc:"option:bytearray"`
}

func (CustomQueryAnswer) PacketID() int32 { return 0x02 }

// LoginDisconnect aborts login with a reason (clientbound 0x00).
type LoginDisconnect struct {
	Reason string `mc:"string"`
}

func (LoginDisconnect) PacketID() int32 { return 0x00 }

// CookieRequestLogin asks the client for a previously stored cookie (clientbound 0x05).
type CookieRequestLogin struct {
	Key string `mc:"string"`
}

func (CookieRequestLogin) PacketID() int32 { return 0x05 }

// CookieResponseLogin answers a cookie request; nil payload means unset (serverbound 0x04).
type CookieResponseLogin struct {
	Key     string  `mc:"string"`
	Payload *[]byte `mc:"option:bytearray"`
}

func (CookieResponseLogin) PacketID() int32 { return 0x04 }
