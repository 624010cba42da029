// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// mcp-server is a Model Context Protocol (MCP) server that exposes X.509
// chain segmentation to AI assistants and automation clients over stdio.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-chain-segmenter/cmd/mcp-server@latest
//
// # Flags
//
//	--config        Path to configuration file (JSON or YAML)
//	--instructions  Print the tool workflows sent to clients and exit
//	--help          Show help information
//	--version       Show version information
//
// # Environment Variables
//
//	X509_SEGMENTER_CONFIG_FILE  Path to configuration file (alternative to --config)
//
// # MCP Tools
//
//   - find_chain_root: Topmost certificate of the walked chain
//   - segment_intermediates: Certificates between leaf and topmost, leaf-adjacent first
//   - order_chain: Whole chain in PEM, DER, JSON, ASCII tree or markdown table form
//   - get_metrics: Operation counters and chain lengths
//
// # MCP Resources
//
//   - config://template: Configuration template
//   - info://version: Version and tool list
//   - docs://certificate-formats: Accepted certificate formats
//
// # MCP Prompts
//
//   - chain-segmentation: Step-by-step segmentation workflow
//
// The server stops on SIGINT or SIGTERM.
package main
