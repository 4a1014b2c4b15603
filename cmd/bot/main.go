// Command bot is a minimal worked example embedding the client library: it
// joins a server, logs chat and lifecycle events, and reconnects on drop.
// It is a demonstration driver, not part of the library's core scope.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/gocraft-bot/client"
	"github.com/OCharnyshevich/gocraft-bot/entity"
	"github.com/OCharnyshevich/gocraft-bot/gamedata"
	_ "github.com/OCharnyshevich/gocraft-bot/gamedata/versions/pc_769"
)

func main() {
	_ = godotenv.Load()

	var (
		address      string
		port         uint16
		username     string
		accessToken  string
		playerUUID   string
		onlineMode   bool
		viewDistance int8
	)

	root := &cobra.Command{
		Use:   "bot",
		Short: "Connect a headless Minecraft client to a server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), address, port, username, accessToken, playerUUID, onlineMode, viewDistance)
		},
	}

	flags := root.Flags()
	flags.StringVar(&address, "address", envOr("MC_ADDRESS", "localhost"), "server address (host[:port] or host for SRV lookup)")
	flags.Uint16Var(&port, "port", 25565, "server port, ignored when an SRV record resolves the host")
	flags.StringVar(&username, "username", envOr("MC_USERNAME", "gocraft-bot"), "player username")
	flags.StringVar(&accessToken, "access-token", os.Getenv("MC_ACCESS_TOKEN"), "Mojang session access token; omit for offline mode")
	flags.StringVar(&playerUUID, "player-uuid", os.Getenv("MC_PLAYER_UUID"), "authenticated player UUID, required with --access-token")
	flags.BoolVar(&onlineMode, "online", accessToken != "", "use Mojang authentication instead of offline mode")
	flags.Int8Var(&viewDistance, "view-distance", 10, "requested view distance in chunks")

	if err := root.Execute(); err != nil {
		slog.Error("bot exited", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(ctx context.Context, address string, port uint16, username, accessToken, playerUUID string, onlineMode bool, viewDistance int8) error {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	gameData, err := gamedata.Load("pc_769")
	if err != nil {
		return fmt.Errorf("load game data: %w", err)
	}

	cfg := client.DefaultConfig(address, username)
	cfg.ServerPort = port
	cfg.ClientInfo.ViewDistance = viewDistance

	if onlineMode {
		cfg.Authenticator = &client.MojangAuthenticator{AccessToken: accessToken, PlayerUUID: playerUUID}
	}

	events := &client.Events{
		Init: func(c *client.Client) {
			log.Info("entered play state")
		},
		Login: func(c *client.Client, player *entity.LocalPlayer) {
			log.Info("spawned", "server_id", player.ServerID, "game_mode", player.GameMode)
		},
		Chat: func(c *client.Client, message string) {
			log.Info("chat", "message", message)
		},
		Death: func(c *client.Client) {
			log.Warn("died")
		},
		Disconnect: func(c *client.Client, reason string, err error) {
			log.Warn("disconnected", "reason", reason, "error", err)
		},
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bot := client.New(cfg, gameData, events, log)
	return bot.RunForever(ctx)
}
