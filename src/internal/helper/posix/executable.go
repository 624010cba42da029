// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutableName returns the base name of the running executable without
// a trailing .exe, for use in command usage lines.
//
//   - Linux/macOS: "x509-chain-segmenter" from "/usr/local/bin/x509-chain-segmenter"
//   - Windows: "x509-chain-segmenter" from "C:\bin\x509-chain-segmenter.exe"
//
// fallback is returned when os.Args[0] is empty.
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 {
		return fallback
	}
	return baseName(os.Args[0], fallback)
}

func baseName(arg0, fallback string) string {
	if arg0 == "" {
		return fallback
	}

	name := filepath.Base(arg0)

	// A Windows path seen on Unix (or the reverse) survives filepath.Base.
	if strings.ContainsAny(name, `\/`) {
		parts := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
		if len(parts) == 0 {
			return fallback
		}
		name = parts[len(parts)-1]
	}

	return strings.TrimSuffix(name, ".exe")
}
