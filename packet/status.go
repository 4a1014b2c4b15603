package packet

// StatusRequest asks the server for its status JSON (serverbound 0x00 in Status state).
type StatusRequest struct{}

func (StatusRequest) PacketID() int32 { return 0x00 }

// StatusResponse carries the server's status JSON (clientbound 0x00 in Status state).
type StatusResponse struct {
	JSONResponse string `mc:"string"`
}

func (StatusResponse) PacketID() int32 { return 0x00 }

// PingRequest carries a client-chosen timestamp (serverbound 0x01 in Status state).
type PingRequest struct {
	Payload int64 `mc:"i64"`
}

func (PingRequest) PacketID() int32 { return 0x01 }

// PongResponse echoes the ping payload back (clientbound 0x01 in Status state).
type PongResponse struct {
	Payload int64 `mc:"i64"`
}

func (PongResponse) PacketID() int32 { return 0x01 }
