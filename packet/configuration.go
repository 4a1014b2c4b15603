package packet

// ClientInformation tells the server the client's locale, view distance and
// other display preferences (serverbound 0x00, sent at the start of every
// Configuration phase, including re-entry from Game).
type ClientInformation struct {
	Locale              string `mc:"string"`
	ViewDistance        int8   `mc:"i8"`
	ChatMode            int32  `mc:"varint"`
	ChatColors          bool   `mc:"bool"`
	DisplayedSkinParts  uint8  `mc:"u8"`
	MainHand            int32  `mc:"varint"`
	TextFilteringOn     bool   `mc:"bool"`
	AllowServerListings bool   `mc:"bool"`
	ParticleStatus      int32  `mc:"varint"`
}

func (ClientInformation) PacketID() int32 { return 0x00 }

// CookieRequestConfiguration asks the client for a stored cookie (clientbound 0x00).
type CookieRequestConfiguration struct {
	Key string `mc:"string"`
}

func (CookieRequestConfiguration) PacketID() int32 { return 0x00 }

// CookieResponseConfiguration answers a cookie request; nil payload means
// unset (serverbound 0x01).
type CookieResponseConfiguration struct {
	Key     string  `mc:"string"`
	Payload *[]byte `mc:"option:bytearray"`
}

func (CookieResponseConfiguration) PacketID() int32 { return 0x01 }

// PluginMessageConfiguration carries a custom payload on a named channel
// (clientbound 0x01; the serverbound direction uses a distinct id handled
// separately by callers that need to originate one).
type PluginMessageConfiguration struct {
	Channel string `mc:"string"`
	Data    []byte `mc:"rest"`
}

func (PluginMessageConfiguration) PacketID() int32 { return 0x01 }

// FinishConfiguration tells the client the configuration state is done
// (clientbound 0x03).
type FinishConfiguration struct{}

func (FinishConfiguration) PacketID() int32 { return 0x03 }

// FinishConfigurationAck is sent back by the client to complete the
// handoff into Game (serverbound 0x03).
type FinishConfigurationAck struct{}

func (FinishConfigurationAck) PacketID() int32 { return 0x03 }

// KeepAliveConfiguration is a keep-alive exchanged while configuring
// (clientbound/serverbound 0x04).
type KeepAliveConfiguration struct {
	KeepAliveID int64 `mc:"i64"`
}

func (KeepAliveConfiguration) PacketID() int32 { return 0x04 }

// RegistryData defines or redefines a named registry's entries. Entry is a
// raw NBT blob per id; the registry collaborator (see client/registry.go)
// decodes it on demand rather than eagerly, since most entries are never
// looked up (clientbound 0x07).
type RegistryData struct {
	RegistryID string `mc:"string"`
	Entries    []byte `mc:"rest"`
}

func (RegistryData) PacketID() int32 { return 0x07 }

// ResetChat clears any chat-session state carried from a previous instance
// (clientbound 0x06).
type ResetChat struct{}

func (ResetChat) PacketID() int32 { return 0x06 }

// SelectKnownPacks lists the datapacks the server assumes the client
// already has (clientbound 0x0E).
type SelectKnownPacks struct {
	Packs []byte `mc:"rest"`
}

func (SelectKnownPacks) PacketID() int32 { return 0x0E }

// SelectKnownPacksResponse echoes SelectKnownPacks back verbatim, which
// declares every pack the server listed as known to the client
// (serverbound 0x07). Distinct type from SelectKnownPacks because the two
// directions use different ids — sending the echo with the clientbound id
// would desync Configuration on any real server.
type SelectKnownPacksResponse struct {
	Packs []byte `mc:"rest"`
}

func (SelectKnownPacksResponse) PacketID() int32 { return 0x07 }

// DisconnectConfiguration aborts configuration with a reason (clientbound 0x02).
type DisconnectConfiguration struct {
	Reason string `mc:"string"`
}

func (DisconnectConfiguration) PacketID() int32 { return 0x02 }

// UpdateTags pushes the server's tag-registry associations (block/item/
// entity/fluid tags). Interpreting tags is out of scope, so the payload is
// stored opaquely rather than decoded per-registry (clientbound 0x0D).
type UpdateTags struct {
	Raw []byte `mc:"rest"`
}

func (UpdateTags) PacketID() int32 { return 0x0D }
