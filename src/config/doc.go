// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the settings shared by the x509-chain-segmenter CLI
// and MCP server from a JSON or [YAML] file.
//
// Configuration Priority:
//  1. Built-in defaults ([Default])
//  2. The file named by the caller, or by the X509_SEGMENTER_CONFIG_FILE
//     environment variable when the caller names none
//
// Loaded values are checked with [validator] struct tags.
//
// [YAML]: https://yaml.org
// [validator]: https://github.com/go-playground/validator
package config
