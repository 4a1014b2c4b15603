package client

import (
	"fmt"

	"github.com/OCharnyshevich/gocraft-bot/packet"
)

// configure drives the configuration state: answers cookie/keep-alive/known-
// packs exchanges, records registry data, and finishes once the server
// signals it with FinishConfiguration.
func (c *Client) configure() error {
	info := &packet.ClientInformation{
		Locale:              c.cfg.ClientInfo.Locale,
		ViewDistance:        c.cfg.ClientInfo.ViewDistance,
		ChatMode:            0,
		ChatColors:          true,
		DisplayedSkinParts:  0x7F,
		MainHand:            c.cfg.ClientInfo.MainHand,
		TextFilteringOn:     false,
		AllowServerListings: true,
		ParticleStatus:      0,
	}
	if err := c.pipeline.WritePacket(info); err != nil {
		return fmt.Errorf("write client information: %w", err)
	}

	for {
		id, data, err := c.pipeline.ReadFrame()
		if err != nil {
			return fmt.Errorf("read configuration packet: %w", err)
		}

		switch id {
		case (packet.CookieRequestConfiguration{}).PacketID():
			var req packet.CookieRequestConfiguration
			if err := unmarshalInto(data, &req); err != nil {
				return err
			}
			resp := &packet.CookieResponseConfiguration{Key: req.Key, Payload: nil}
			if err := c.pipeline.WritePacket(resp); err != nil {
				return fmt.Errorf("write cookie response: %w", err)
			}

		case (packet.PluginMessageConfiguration{}).PacketID():
			var msg packet.PluginMessageConfiguration
			if err := unmarshalInto(data, &msg); err != nil {
				return err
			}
			c.log.Debug("configuration plugin message", "channel", msg.Channel, "bytes", len(msg.Data))

		case (packet.KeepAliveConfiguration{}).PacketID():
			var ka packet.KeepAliveConfiguration
			if err := unmarshalInto(data, &ka); err != nil {
				return err
			}
			if err := c.pipeline.WritePacket(&ka); err != nil {
				return fmt.Errorf("write keep alive: %w", err)
			}

		case (packet.RegistryData{}).PacketID():
			var reg packet.RegistryData
			if err := unmarshalInto(data, &reg); err != nil {
				return err
			}
			entries, err := decodeRegistryEntries(reg.Entries)
			if err != nil {
				c.log.Warn("decode registry data", "registry", reg.RegistryID, "error", err)
				continue
			}
			c.registry.Set(reg.RegistryID, entries)

		case (packet.ResetChat{}).PacketID():
			// no client-side chat-session state to clear yet.

		case (packet.UpdateTags{}).PacketID():
			var tags packet.UpdateTags
			if err := unmarshalInto(data, &tags); err != nil {
				return err
			}
			c.log.Debug("configuration update tags", "bytes", len(tags.Raw))

		case (packet.SelectKnownPacks{}).PacketID():
			// echo the server's own known-packs list back verbatim, declaring
			// every listed pack as known to this client. The reply is a distinct
			// serverbound type since the two directions don't share an id.
			resp := &packet.SelectKnownPacksResponse{Packs: data}
			if err := c.pipeline.WritePacket(resp); err != nil {
				return fmt.Errorf("write select known packs: %w", err)
			}

		case (packet.FinishConfiguration{}).PacketID():
			ack := &packet.FinishConfigurationAck{}
			if err := c.pipeline.WritePacket(ack); err != nil {
				return fmt.Errorf("write finish configuration ack: %w", err)
			}
			return nil

		case (packet.DisconnectConfiguration{}).PacketID():
			var dc packet.DisconnectConfiguration
			if err := unmarshalInto(data, &dc); err != nil {
				return err
			}
			return fmt.Errorf("configuration disconnected: %s", dc.Reason)

		default:
			c.log.Warn("unexpected configuration packet", "id", fmt.Sprintf("0x%02X", id))
		}
	}
}
