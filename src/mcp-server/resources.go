// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	resourceConfigTemplate     = "config://template"
	resourceVersionInfo        = "info://version"
	resourceCertificateFormats = "docs://certificate-formats"
)

// createResources returns every resource the server exposes. The version
// resource reports name, version and the names of tools.
func createResources(name, version string, tools []ToolDefinition) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(
				resourceConfigTemplate,
				"Server Configuration Template",
				mcp.WithResourceDescription("Configuration file with every setting at its default value"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(
				resourceVersionInfo,
				"Version Information",
				mcp.WithResourceDescription("Server version and available tools"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: versionResourceHandler(name, version, tools),
		},
		{
			Resource: mcp.NewResource(
				resourceCertificateFormats,
				"Certificate Format Documentation",
				mcp.WithResourceDescription("Input formats accepted by the segmentation tools"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleCertificateFormatsResource,
		},
	}
}
