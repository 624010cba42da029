// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// x509-chain-segmenter is a command-line tool that orders an unordered
// bundle of X.509 certificates and splits it into leaf, intermediates and
// topmost certificate.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-chain-segmenter/cmd/x509-chain-segmenter@latest
//
// # Usage
//
//	x509-chain-segmenter [root|intermediates|order] -f BUNDLE [FLAGS]
//
// # Flags
//
//	-f, --file    Input bundle (PEM, DER or PKCS#7), repeatable [required]
//	-o, --output  Destination file (default: stdout)
//	    --format  pem, der or json; order also accepts tree and table
//	-c, --config  Configuration file (JSON or YAML)
//
// # Examples
//
// Print the whole chain leaf first:
//
//	x509-chain-segmenter -f bundle.pem
//
// Extract the intermediates from a server bundle and a CA bag:
//
//	x509-chain-segmenter intermediates -f server.pem -f ca.p7b -o intermediates.pem
//
// Show the topmost certificate as JSON:
//
//	x509-chain-segmenter root -f bundle.pem --format json
//
// Visualize the chain:
//
//	x509-chain-segmenter order -f bundle.pem --format tree
//
// Names are matched byte for byte and no signature is verified, so the
// topmost certificate is not necessarily a trusted root.
package main
