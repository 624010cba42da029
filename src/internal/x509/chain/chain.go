// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/x509"

	x509certs "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/certs"
)

// Chain holds [X.509] certificates ordered from the end-entity certificate
// to the topmost certificate found in the supplied list.
//
// A Chain is built once by [Order] and is read-only afterwards, so its
// methods are safe for concurrent use.
//
// [X.509]: https://grokipedia.com/page/X.509
type Chain struct {
	Certs    []*x509.Certificate // Leaf first, topmost last
	Unplaced []*x509.Certificate // Input certificates the walk did not reach
	*x509certs.Certificate
}

// Order builds a Chain from an unordered list of parsed certificates.
//
// It adapts each certificate with [x509certs.Handle] and runs [Partition],
// so the ordering rules are exactly those of [Walk].
//
// Parameters:
//   - certs: Parsed certificates in any order
//
// Returns:
//   - *Chain: Ordered chain with the unplaced remainder
//   - error: [ErrEmptyList], [ErrNilCertificate] or any error from [Walk]
func Order(certs []*x509.Certificate) (*Chain, error) {
	if len(certs) == 0 {
		return nil, ErrEmptyList
	}

	list, err := handles(certs)
	if err != nil {
		return nil, err
	}

	ordered, rest, err := Partition(list)
	if err != nil {
		return nil, err
	}

	return &Chain{
		Certs:       unwrap(ordered),
		Unplaced:    unwrap(rest),
		Certificate: x509certs.New(),
	}, nil
}

// Handles adapts parsed certificates to the [Certificate] capability.
func Handles(certs []*x509.Certificate) ([]Certificate, error) {
	return handles(certs)
}

func handles(certs []*x509.Certificate) ([]Certificate, error) {
	list := make([]Certificate, len(certs))
	for i, h := range x509certs.NewHandles(certs) {
		if h.Certificate == nil {
			return nil, ErrNilCertificate
		}
		list[i] = h
	}
	return list, nil
}

// unwrap recovers the parsed certificates behind handles built by [handles].
func unwrap(list []Certificate) []*x509.Certificate {
	if len(list) == 0 {
		return nil
	}

	certs := make([]*x509.Certificate, len(list))
	for i, c := range list {
		certs[i] = c.(x509certs.Handle).Certificate
	}
	return certs
}

// Leaf returns the end-entity certificate.
func (ch *Chain) Leaf() *x509.Certificate { return ch.Certs[0] }

// Root returns the topmost certificate of the chain.
//
// The root is structural only: it is not necessarily self-issued and no
// signature or trust check has been made.
func (ch *Chain) Root() *x509.Certificate { return ch.Certs[len(ch.Certs)-1] }

// IsSelfIssued reports whether cert names itself as issuer.
//
// Parameters:
//   - cert: Certificate to check
//
// Returns:
//   - bool: true if the raw subject and issuer are identical
func (ch *Chain) IsSelfIssued(cert *x509.Certificate) bool {
	return IsSelfIssued(x509certs.Handle{Certificate: cert})
}

// FilterIntermediates filters out the root and leaf certificates, returning only intermediates.
//
// It returns a slice containing all certificates in the chain except the first
// (leaf) and last (root).
//
// Returns:
//   - []*x509.Certificate: Slice of intermediate certificates, or nil if none
func (ch *Chain) FilterIntermediates() []*x509.Certificate {
	if len(ch.Certs) <= 2 {
		return nil // No intermediates if 2 or fewer certs
	}
	return ch.Certs[1 : len(ch.Certs)-1] // Skip the first (leaf) and last (root)
}

// IntermediatesDER returns the DER bytes of each intermediate, nearest to
// the leaf first. It never returns nil.
func (ch *Chain) IntermediatesDER() [][]byte {
	intermediates := ch.FilterIntermediates()

	ders := make([][]byte, 0, len(intermediates))
	for _, cert := range intermediates {
		ders = append(ders, ch.EncodeDER(cert))
	}
	return ders
}
