package client

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	mcnet "github.com/OCharnyshevich/gocraft-bot/net"
	"github.com/OCharnyshevich/gocraft-bot/packet"
)

// handshake sends the Intention packet that opens every connection,
// declaring the next state as login.
func (c *Client) handshake(host string, port uint16) error {
	hs := &packet.Intention{
		ProtocolVersion: c.cfg.ProtocolVersion,
		ServerAddress:   host,
		ServerPort:      port,
		NextState:       packet.NextStateLogin,
	}
	if err := c.pipeline.WritePacket(hs); err != nil {
		return fmt.Errorf("write handshake: %w", err)
	}
	c.setState(StateLogin)
	return nil
}

// login drives the login state to completion: Hello, optional encryption
// key exchange, optional compression, and LoginFinished/LoginAcknowledged.
func (c *Client) login(ctx context.Context, auth Authenticator) error {
	hello := &packet.Hello{
		Name:       c.identity.Username,
		PlayerUUID: c.identity.UUID,
	}
	if err := c.pipeline.WritePacket(hello); err != nil {
		return fmt.Errorf("write hello: %w", err)
	}

	for {
		id, data, err := c.pipeline.ReadFrame()
		if err != nil {
			return fmt.Errorf("read login packet: %w", err)
		}

		switch id {
		case (packet.EncryptionKeyRequest{}).PacketID():
			var req packet.EncryptionKeyRequest
			if err := unmarshalInto(data, &req); err != nil {
				return err
			}
			if err := c.handleEncryptionRequest(ctx, auth, &req); err != nil {
				return err
			}

		case (packet.LoginCompression{}).PacketID():
			var comp packet.LoginCompression
			if err := unmarshalInto(data, &comp); err != nil {
				return err
			}
			c.pipeline.EnableCompression(comp.Threshold)

		case (packet.LoginFinished{}).PacketID():
			var finished packet.LoginFinished
			if err := unmarshalInto(data, &finished); err != nil {
				return err
			}
			ack := &packet.LoginAcknowledged{}
			if err := c.pipeline.WritePacket(ack); err != nil {
				return fmt.Errorf("write login acknowledged: %w", err)
			}
			c.setState(StateConfiguration)
			return nil

		case (packet.LoginDisconnect{}).PacketID():
			var dc packet.LoginDisconnect
			if err := unmarshalInto(data, &dc); err != nil {
				return err
			}
			return fmt.Errorf("login disconnected: %s", dc.Reason)

		case (packet.CookieRequestLogin{}).PacketID():
			var req packet.CookieRequestLogin
			if err := unmarshalInto(data, &req); err != nil {
				return err
			}
			resp := &packet.CookieResponseLogin{Key: req.Key, Payload: nil}
			if err := c.pipeline.WritePacket(resp); err != nil {
				return fmt.Errorf("write cookie response: %w", err)
			}

		case (packet.CustomQuery{}).PacketID():
			var req packet.CustomQuery
			if err := unmarshalInto(data, &req); err != nil {
				return err
			}
			// No upper layer claims any login-time plugin channel, so every
			// query is answered with a nil payload, which the protocol
			// treats as "unrecognized" rather than "no response" — most
			// servers require an answer of some kind to proceed past login.
			resp := &packet.CustomQueryAnswer{TransactionID: req.TransactionID, Payload: nil}
			if err := c.pipeline.WritePacket(resp); err != nil {
				return fmt.Errorf("write custom query answer: %w", err)
			}

		default:
			c.log.Warn("unexpected login packet", "id", fmt.Sprintf("0x%02X", id))
		}
	}
}

func (c *Client) handleEncryptionRequest(ctx context.Context, auth Authenticator, req *packet.EncryptionKeyRequest) error {
	pub, err := x509.ParsePKIXPublicKey(req.PublicKey)
	if err != nil {
		return fmt.Errorf("parse server public key: %w", err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("server public key is not RSA")
	}

	sharedSecret := make([]byte, 16)
	if _, err := rand.Read(sharedSecret); err != nil {
		return fmt.Errorf("generate shared secret: %w", err)
	}

	if req.ShouldAuthenticate {
		if err := auth.Join(ctx, c.identity.Username, req.ServerID, sharedSecret, req.PublicKey); err != nil {
			return fmt.Errorf("session join: %w", err)
		}
	}

	encryptedSecret, err := rsa.EncryptPKCS1v15(rand.Reader, rsaPub, sharedSecret)
	if err != nil {
		return fmt.Errorf("encrypt shared secret: %w", err)
	}
	encryptedToken, err := rsa.EncryptPKCS1v15(rand.Reader, rsaPub, req.VerifyToken)
	if err != nil {
		return fmt.Errorf("encrypt verify token: %w", err)
	}

	resp := &packet.EncryptionKeyResponse{
		SharedSecret: encryptedSecret,
		VerifyToken:  encryptedToken,
	}
	if err := c.pipeline.WritePacket(resp); err != nil {
		return fmt.Errorf("write encryption response: %w", err)
	}

	if err := c.pipeline.EnableEncryption(sharedSecret); err != nil {
		return fmt.Errorf("enable encryption: %w", err)
	}
	return nil
}

// unmarshalInto is a thin wrapper so handler files don't need to import
// mcnet just for one call each.
func unmarshalInto(data []byte, p mcnet.Packet) error {
	return mcnet.Unmarshal(data, p)
}
