// reminders-mcp bridges MCP tool calls to the macOS Reminders store.
//
// Reads go through a compiled reader binary; writes go through osascript.
// See internal/config for how the backends are located.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vthunder/reminders-mcp/internal/config"
	"github.com/vthunder/reminders-mcp/internal/mcptools"
	"github.com/vthunder/reminders-mcp/internal/reminders"
)

const version = "0.1.0"

func main() {
	// Log to stderr so stdout is clean for JSON-RPC
	log.SetOutput(os.Stderr)
	log.SetPrefix("[reminders-mcp] ")

	// Load .env file if present (don't error if missing)
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("Starting reminders MCP server (reader=%s, timeout=%s)", cfg.ReaderBin, cfg.Timeout)
	if cfg.TestMode {
		log.Println("Test mode: native backends disabled")
	}

	s := server.NewMCPServer(
		"reminders-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	mcptools.Register(s, reminders.NewReader(cfg), reminders.NewWriter(cfg))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
