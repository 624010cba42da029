// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/config"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/mcp-server/templates"
)

// versionInfo is the document served by info://version.
type versionInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Tools        []string `json:"tools"`
	Formats      []string `json:"formats"`
	InputFormats []string `json:"inputFormats"`
}

func handleConfigResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := config.Template()
	if err != nil {
		return nil, fmt.Errorf("failed to render config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func versionResourceHandler(name, version string, tools []ToolDefinition) server.ResourceHandlerFunc {
	info := versionInfo{
		Name:         name,
		Version:      version,
		Formats:      orderFormats,
		InputFormats: []string{"PEM", "DER", "PKCS#7"},
	}
	for _, tool := range tools {
		info.Tools = append(info.Tools, tool.Tool.Name)
	}

	return func(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal version info: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleCertificateFormatsResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("certificate-formats.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate formats documentation: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
