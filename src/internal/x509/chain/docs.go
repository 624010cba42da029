// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain orders and segments [X.509] certificate chains supplied by
// the caller. It provides capabilities to:
//   - Walk an unordered list from the end-entity certificate to the topmost
//     certificate reachable by issuer names.
//   - Find that topmost certificate ("root" in the structural sense only).
//   - Segment the encoded intermediates between leaf and root, nearest to the
//     leaf first.
//   - Render an ordered chain as an ASCII tree, a markdown table, or JSON.
//
// The package never fetches certificates, verifies signatures, checks
// revocation, or applies trust policy. A certificate called root here is
// only the last one reached within the supplied list.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509chain
