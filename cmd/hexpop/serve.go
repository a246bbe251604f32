package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ormakov/hexpop/internal/config"
	"github.com/ormakov/hexpop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hex Pop SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game sized to its terminal.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hexpop/host_key

Examples:
  hexpop serve                           # Listen on :23234 with auto-generated key
  hexpop serve --ssh :2222               # Listen on port 2222
  hexpop serve --host-key ./my_host_key  # Use specific host key
  hexpop serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		GameConfig:  gameCfg,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Hex Pop SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
