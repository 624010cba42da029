// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 chain segmenter.
// It implements a Cobra-based CLI with three commands: root prints the topmost
// certificate, intermediates prints the certificates between leaf and root,
// and order prints the whole chain as PEM, DER, JSON, an ASCII tree, or a table.
// Inputs are one or more files holding PEM, DER, or PKCS#7 bundles.
package cli
