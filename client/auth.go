package client

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/google/uuid"
)

// Identity is the account identity a Client presents during login.
type Identity struct {
	Username string
	UUID     uuid.UUID
}

// Authenticator supplies the login identity and performs whatever
// session-join step a server's login flow requires after the shared secret
// has been negotiated. The Client calls Identity on every Connect; it calls
// Join only when Hello is answered with an EncryptionKeyRequest that asks
// for authentication, so offline-mode servers never reach Join.
type Authenticator interface {
	// Identity returns the account identity to present in Hello.
	Identity(ctx context.Context, username string) (Identity, error)

	// Join is called after the shared secret and public key are known,
	// before the encrypted EncryptionKeyResponse is sent. A no-op
	// implementation (OfflineAuthenticator) is fine for offline servers.
	Join(ctx context.Context, username, serverID string, sharedSecret, publicKeyDER []byte) error
}

// OfflineAuthenticator derives a deterministic offline-mode UUID from the
// username (the same "OfflinePlayer:<name>" MD5-based scheme the vanilla
// client uses) and never contacts Mojang.
type OfflineAuthenticator struct{}

func (OfflineAuthenticator) Identity(_ context.Context, username string) (Identity, error) {
	sum := md5.Sum([]byte("OfflinePlayer:" + username))
	sum[6] = (sum[6] & 0x0f) | 0x30 // version 3
	sum[8] = (sum[8] & 0x3f) | 0x80 // IETF variant
	return Identity{Username: username, UUID: uuid.UUID(sum)}, nil
}

func (OfflineAuthenticator) Join(context.Context, string, string, []byte, []byte) error {
	return nil
}

// MojangAuthenticator performs the online-mode session join against
// Mojang's session server, the client-side counterpart of the vanilla
// server's hasJoined check.
type MojangAuthenticator struct {
	// AccessToken is sent as the accessToken field of the join request body. Left
	// empty, Join still computes and posts the server hash, which is
	// enough for servers that only check a session exists, though a real
	// Mojang account requires a valid token to have one.
	AccessToken string
	PlayerUUID  string

	httpClient *http.Client
}

func (m *MojangAuthenticator) client() *http.Client {
	if m.httpClient != nil {
		return m.httpClient
	}
	return http.DefaultClient
}

func (m *MojangAuthenticator) Identity(ctx context.Context, username string) (Identity, error) {
	id, err := uuid.Parse(m.PlayerUUID)
	if err != nil {
		return Identity{}, fmt.Errorf("parse configured player uuid %q: %w", m.PlayerUUID, err)
	}
	return Identity{Username: username, UUID: id}, nil
}

func (m *MojangAuthenticator) Join(ctx context.Context, username, serverID string, sharedSecret, publicKeyDER []byte) error {
	hash := minecraftSHA1HexDigest(serverID, sharedSecret, publicKeyDER)

	body, err := json.Marshal(struct {
		AccessToken     string `json:"accessToken"`
		SelectedProfile string `json:"selectedProfile"`
		ServerID        string `json:"serverId"`
	}{
		AccessToken:     m.AccessToken,
		SelectedProfile: m.PlayerUUID,
		ServerID:        hash,
	})
	if err != nil {
		return fmt.Errorf("encode join request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://sessionserver.mojang.com/session/minecraft/join", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create join request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client().Do(req)
	if err != nil {
		return fmt.Errorf("join request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mojang join failed (status %d)", resp.StatusCode)
	}
	return nil
}

// minecraftSHA1HexDigest computes the Minecraft-style SHA1 hex digest: a
// signed two's complement hex string (no zero-padding, negative values
// prefixed with "-"). Used identically by the server's hasJoined check and
// the client's join call, since both sides derive the same server hash.
func minecraftSHA1HexDigest(serverID string, sharedSecret, publicKeyDER []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKeyDER)
	hash := h.Sum(nil)

	n := new(big.Int).SetBytes(hash)
	if hash[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), 160))
	}
	return n.Text(16)
}
