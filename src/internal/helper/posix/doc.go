// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers that behave the same on [POSIX] systems
// and Windows.
//
// The commands use [ExecutableName] so their usage lines show the name the
// binary was invoked with:
//
//	cmd := &cobra.Command{
//	    Use: posix.ExecutableName("x509-chain-segmenter") + " [command]",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
