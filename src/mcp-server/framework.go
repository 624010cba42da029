// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"crypto/x509"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/config"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/metrics"
	x509certs "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/logger"
)

// ErrMissingConfig is returned by [ServerBuilder.Build] when no
// configuration was supplied.
var ErrMissingConfig = errors.New("mcpserver: configuration is required")

// CertificateManager decodes certificate bundles and encodes results.
//
// [x509certs.Certificate] is the default implementation.
type CertificateManager interface {
	DecodeBundle(data []byte) ([]*x509.Certificate, error)
	Decode(data []byte) (*x509.Certificate, error)
	EncodeRawPEM(der []byte) []byte
	EncodeMultiplePEM(certs []*x509.Certificate) []byte
	EncodeMultipleDER(certs []*x509.Certificate) []byte
}

// MetricsRecorder is a [metrics.Reporter] that can also report what it
// recorded so far.
type MetricsRecorder interface {
	metrics.Reporter
	Snapshot() ([]metrics.Sample, error)
}

// Services bundles what tool handlers need from the running server.
type Services struct {
	Config  *config.Config
	Certs   CertificateManager
	Metrics MetricsRecorder
	Log     logger.Logger
}

// ToolHandler processes one tool call with access to the server's [Services].
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, svc *Services) (*mcp.CallToolResult, error)

// ToolDefinition pairs an [MCP] tool with its handler.
//
// Role is a short description of the tool's purpose, rendered into the
// server instructions.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ServerBuilder constructs the [MCP] server with its dependencies using a
// fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithTools(createTools()...).
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct {
	version      string
	instructions string
	services     Services
	tools        []ToolDefinition
	resources    []server.ServerResource
	prompts      []server.ServerPrompt
}

// NewServerBuilder creates a builder with no dependencies configured.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration shared with tool handlers.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.services.Config = cfg
	return b
}

// WithVersion sets the version announced during initialization.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.version = version
	return b
}

// WithCertManager replaces the default [x509certs.Certificate] codec.
func (b *ServerBuilder) WithCertManager(cm CertificateManager) *ServerBuilder {
	b.services.Certs = cm
	return b
}

// WithMetrics sets where tool outcomes are recorded. A fresh
// [metrics.Prometheus] is used when none is set.
func (b *ServerBuilder) WithMetrics(m MetricsRecorder) *ServerBuilder {
	b.services.Metrics = m
	return b
}

// WithLogger sets the logger handed to tool handlers. Without one, logs are
// discarded.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.services.Log = log
	return b
}

// WithTools adds tool definitions.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.tools = append(b.tools, tools...)
	return b
}

// WithResources adds static or dynamic resources.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.resources = append(b.resources, resources...)
	return b
}

// WithPrompts adds predefined prompts.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.prompts = append(b.prompts, prompts...)
	return b
}

// WithInstructions sets the instructions returned to clients on initialize.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.instructions = instructions
	return b
}

// Services returns the dependencies tool handlers will receive, with
// defaults filled in.
func (b *ServerBuilder) Services() *Services {
	svc := b.services
	if svc.Certs == nil {
		svc.Certs = x509certs.New()
	}
	if svc.Metrics == nil {
		svc.Metrics = metrics.NewPrometheus()
	}
	if svc.Log == nil {
		svc.Log = logger.NewMCPLogger(nil, true)
	}
	return &svc
}

// Build creates the MCP server with every registered tool, resource and
// prompt.
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.services.Config == nil {
		return nil, ErrMissingConfig
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	}
	if b.instructions != "" {
		opts = append(opts, server.WithInstructions(b.instructions))
	}

	s := server.NewMCPServer(b.services.Config.Server.Name, b.version, opts...)
	svc := b.Services()

	for _, tool := range bindTools(svc, b.tools) {
		s.AddTool(tool.Tool, tool.Handler)
	}

	for _, resource := range b.resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range b.prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}

// bindTools closes each definition over svc, producing handlers the MCP
// server can register directly.
func bindTools(svc *Services, defs []ToolDefinition) []server.ServerTool {
	tools := make([]server.ServerTool, 0, len(defs))
	for _, def := range defs {
		handler := def.Handler
		tools = append(tools, server.ServerTool{
			Tool: def.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, request, svc)
			},
		})
	}
	return tools
}
