// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/config"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/metrics"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/logger"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/version"
)

// GetVersion returns the built-in version string.
func GetVersion() string { return version.Version }

// Run starts the MCP server on stdio and blocks until the client
// disconnects or SIGINT/SIGTERM is received.
//
// Parameters:
//   - version: Version announced to clients
//   - configPath: Configuration file; when empty, [config.EnvConfigFile] is
//     consulted
//
// Returns:
//   - error: Configuration or transport failure; nil on graceful shutdown
func Run(version, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol, so logs go to stderr.
	log := logger.NewMCPLogger(os.Stderr, false)
	return serve(ctx, cfg, version, os.Stdin, os.Stdout, log)
}

// serve runs the stdio transport over in and out until ctx is done or in
// is exhausted.
func serve(ctx context.Context, cfg *config.Config, version string, in io.Reader, out io.Writer, log logger.Logger) error {
	s, err := newServer(cfg, version, log, metrics.NewPrometheus())
	if err != nil {
		return err
	}

	log.Printf("%s %s listening on stdio", cfg.Server.Name, version)

	stdio := server.NewStdioServer(s)
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Printf("%s shut down", cfg.Server.Name)
	return nil
}

// newServer assembles the MCP server with every tool, resource and prompt.
func newServer(cfg *config.Config, version string, log logger.Logger, m MetricsRecorder) (*server.MCPServer, error) {
	tools := createTools()

	instructions, err := loadInstructions(cfg.Server.Name, tools)
	if err != nil {
		return nil, err
	}

	return NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithMetrics(m).
		WithTools(tools...).
		WithResources(createResources(cfg.Server.Name, version, tools)...).
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		Build()
}
