// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/config"
)

// Tool names.
const (
	toolFindChainRoot        = "find_chain_root"
	toolSegmentIntermediates = "segment_intermediates"
	toolOrderChain           = "order_chain"
	toolGetMetrics           = "get_metrics"
)

// Metrics output formats accepted by get_metrics.
const (
	metricsFormatTable = "table"
	metricsFormatJSON  = "json"
)

const certificatesDescription = "Comma-separated list of certificate file paths or base64-encoded certificate data. " +
	"Each entry may hold a PEM, DER or PKCS#7 bundle; entries are concatenated in the given order."

// createTools returns every tool the server exposes.
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(toolFindChainRoot,
				mcp.WithDescription("Walk an unordered certificate list from its leaf along issuer links and return the topmost certificate reached. "+
					"The result is structural: no signature or trust checks are performed."),
				mcp.WithString("certificates",
					mcp.Required(),
					mcp.Description(certificatesDescription),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'pem', 'der' (base64) or 'json'"),
					mcp.Enum(config.FormatPEM, config.FormatDER, config.FormatJSON),
				),
			),
			Handler: handleFindChainRoot,
			Role:    "Topmost certificate of a chain",
		},
		{
			Tool: mcp.NewTool(toolSegmentIntermediates,
				mcp.WithDescription("Walk an unordered certificate list and return the certificates strictly between the leaf and the topmost certificate, leaf-adjacent first."),
				mcp.WithString("certificates",
					mcp.Required(),
					mcp.Description(certificatesDescription),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'pem', 'der' (base64) or 'json'"),
					mcp.Enum(config.FormatPEM, config.FormatDER, config.FormatJSON),
				),
			),
			Handler: handleSegmentIntermediates,
			Role:    "Intermediates between leaf and topmost certificate",
		},
		{
			Tool: mcp.NewTool(toolOrderChain,
				mcp.WithDescription("Order an unordered certificate list leaf first and report certificates that are not part of the walked chain."),
				mcp.WithString("certificates",
					mcp.Required(),
					mcp.Description(certificatesDescription),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'pem', 'der' (base64), 'json', 'tree' or 'table'"),
					mcp.Enum(config.FormatPEM, config.FormatDER, config.FormatJSON, config.FormatTree, config.FormatTable),
				),
			),
			Handler: handleOrderChain,
			Role:    "Full chain ordering with visualization",
		},
		{
			Tool: mcp.NewTool(toolGetMetrics,
				mcp.WithDescription("Report how many segmentation operations ran, grouped by outcome, and the observed chain lengths."),
				mcp.WithString("format",
					mcp.Description("Output format: 'table' (markdown, default) or 'json'"),
					mcp.Enum(metricsFormatTable, metricsFormatJSON),
				),
			),
			Handler: handleGetMetrics,
			Role:    "Operation counters",
		},
	}
}
