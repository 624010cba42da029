// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes [X509] chain segmentation over the Model Context
// Protocol ([MCP]) on stdio.
//
// Tools:
//   - find_chain_root: topmost certificate of the walked chain
//   - segment_intermediates: certificates between leaf and topmost, leaf-adjacent first
//   - order_chain: the whole chain with unplaced certificates, as PEM, DER, JSON, tree or table
//   - get_metrics: operation counters as a markdown table or JSON
//
// Resources are config://template, info://version and
// docs://certificate-formats. The server is assembled with [ServerBuilder].
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
