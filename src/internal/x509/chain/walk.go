// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a list that fails a structural precondition
	// of the requested operation.
	ErrInvalidArgument = errors.New("x509chain: invalid argument")

	// ErrNotFound reports a list whose content does not form a chain.
	ErrNotFound = errors.New("x509chain: chain not found")

	// ErrEmptyList is returned when no certificates were supplied.
	ErrEmptyList = fmt.Errorf("%w: empty certificate list", ErrInvalidArgument)

	// ErrTooFewCertificates is returned when segmenting fewer than two certificates.
	ErrTooFewCertificates = fmt.Errorf("%w: at least two certificates are required", ErrInvalidArgument)

	// ErrNilCertificate is returned when the list holds a nil handle or one
	// with an empty encoding.
	ErrNilCertificate = fmt.Errorf("%w: nil certificate in list", ErrInvalidArgument)

	// ErrEmptyChain is returned by [Walk] when there is nothing to walk.
	ErrEmptyChain = fmt.Errorf("%w: no certificates to walk", ErrNotFound)

	// ErrNoLeaf is returned when every certificate issues another one in the
	// list, so no end-entity certificate can be chosen.
	ErrNoLeaf = fmt.Errorf("%w: no end-entity certificate in list", ErrNotFound)
)

// Certificate is the minimal view of a certificate needed to order a chain.
//
// Names are opaque values compared with ==. Encoded returns the canonical
// encoding that segmentation passes through untouched; it must not be empty.
type Certificate interface {
	SubjectName() string
	IssuerName() string
	Encoded() []byte
}

// IsSelfIssued reports whether the subject and issuer names are equal.
// It does not check the signature.
func IsSelfIssued(cert Certificate) bool {
	return cert.SubjectName() == cert.IssuerName()
}

// Walk orders certs from the end-entity certificate up to the topmost
// certificate that can be reached by following issuer names.
//
// The leaf is the first certificate, in input order, whose subject is not
// the issuer of any other certificate in the list. From there the walk
// appends the first not yet placed certificate whose subject matches the
// current tail's issuer, and stops at a self-issued certificate or when no
// match remains. Certificates that never join the chain are left out; see
// [Partition].
//
// Parameters:
//   - certs: Caller-owned list in any order; it is not modified
//
// Returns:
//   - []Certificate: Chain ordered leaf first, with at least one element
//   - error: [ErrEmptyChain], [ErrNilCertificate] or [ErrNoLeaf]
//
// Thread Safety: Safe for concurrent use as long as certs is not mutated.
func Walk(certs []Certificate) ([]Certificate, error) {
	chain, _, err := Partition(certs)
	return chain, err
}

// Partition walks certs like [Walk] and also returns the certificates the
// walk did not place, in input order.
func Partition(certs []Certificate) (chain, unplaced []Certificate, err error) {
	order, placed, err := walkIndices(certs)
	if err != nil {
		return nil, nil, err
	}

	chain = make([]Certificate, len(order))
	for i, idx := range order {
		chain[i] = certs[idx]
	}

	for i, cert := range certs {
		if !placed[i] {
			unplaced = append(unplaced, cert)
		}
	}

	return chain, unplaced, nil
}

// walkIndices returns the chain as indices into certs together with the
// placement mask.
func walkIndices(certs []Certificate) ([]int, []bool, error) {
	if len(certs) == 0 {
		return nil, nil, ErrEmptyChain
	}
	if err := checkHandles(certs); err != nil {
		return nil, nil, err
	}

	leaf := findLeaf(certs)
	if leaf < 0 {
		return nil, nil, ErrNoLeaf
	}

	placed := make([]bool, len(certs))
	placed[leaf] = true
	order := []int{leaf}

	for tail := certs[leaf]; !IsSelfIssued(tail); {
		next := findIssuer(certs, placed, tail.IssuerName())
		if next < 0 {
			break
		}

		placed[next] = true
		tail = certs[next]
		order = append(order, next)
	}

	return order, placed, nil
}

// Segmentation is the outcome of one walk over a list. It answers both
// [FindRoot] and [SegmentIntermediates] without walking again, and keeps
// the certificates the walk left out.
//
// The zero value is not useful; build one with [Segment].
type Segmentation struct {
	// Chain is ordered leaf first. It is nil when the walk failed.
	Chain []Certificate

	// Unplaced holds the certificates the walk did not place, in input order.
	Unplaced []Certificate

	size int
	err  error
}

// Segment walks certs once and keeps the outcome. A walk error is not
// returned here; it surfaces from [Segmentation.Root],
// [Segmentation.Intermediates] or [Segmentation.Err], after the
// precondition of each operation is checked.
//
// Thread Safety: Safe for concurrent use as long as certs is not mutated.
// The returned value is read-only and may be shared.
func Segment(certs []Certificate) *Segmentation {
	s := &Segmentation{size: len(certs)}
	if s.size == 0 {
		s.err = ErrEmptyChain
		return s
	}
	s.Chain, s.Unplaced, s.err = Partition(certs)
	return s
}

// Err returns the walk error, if any.
func (s *Segmentation) Err() error { return s.err }

// Root returns the topmost certificate of the walked chain.
//
// Returns:
//   - Certificate: Topmost certificate
//   - error: [ErrEmptyList] for an empty list, or the walk error
func (s *Segmentation) Root() (Certificate, error) {
	if s.size == 0 {
		return nil, ErrEmptyList
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.Chain[len(s.Chain)-1], nil
}

// Intermediates returns the encoded form of every certificate strictly
// between the leaf and the topmost certificate, nearest to the leaf first.
//
// Returns:
//   - [][]byte: Encoded intermediates, never nil on success
//   - error: [ErrTooFewCertificates] for fewer than two certificates, or the walk error
func (s *Segmentation) Intermediates() ([][]byte, error) {
	if s.size < 2 {
		return nil, ErrTooFewCertificates
	}
	if s.err != nil {
		return nil, s.err
	}
	if len(s.Chain) <= 2 {
		return [][]byte{}, nil
	}

	intermediates := make([][]byte, 0, len(s.Chain)-2)
	for _, cert := range s.Chain[1 : len(s.Chain)-1] {
		intermediates = append(intermediates, cert.Encoded())
	}
	return intermediates, nil
}

// FindRoot returns the topmost certificate of the chain built by [Walk].
//
// The result is structural: it is the last certificate reachable through
// issuer names within certs. It may not be self-issued when the list is
// truncated, and nothing here makes it a trust anchor.
//
// Parameters:
//   - certs: Caller-owned list in any order
//
// Returns:
//   - Certificate: Topmost certificate
//   - error: [ErrEmptyList] for an empty list, or any error from [Walk]
func FindRoot(certs []Certificate) (Certificate, error) {
	if len(certs) == 0 {
		return nil, ErrEmptyList
	}
	return Segment(certs).Root()
}

// SegmentIntermediates returns the encoded form of every certificate strictly
// between the leaf and the topmost certificate, nearest to the leaf first.
//
// A chain of n certificates yields max(0, n-2) entries. The returned slices
// share memory with the Encoded values of the handles.
//
// Parameters:
//   - certs: Caller-owned list in any order
//
// Returns:
//   - [][]byte: Encoded intermediates, never nil on success
//   - error: [ErrTooFewCertificates] for fewer than two certificates, or any error from [Walk]
func SegmentIntermediates(certs []Certificate) ([][]byte, error) {
	if len(certs) < 2 {
		return nil, ErrTooFewCertificates
	}
	return Segment(certs).Intermediates()
}

// checkHandles rejects nil entries before any name is compared. A handle
// with no encoding, such as an x509certs.Handle wrapping a nil certificate,
// counts as nil.
func checkHandles(certs []Certificate) error {
	for _, cert := range certs {
		if cert == nil || len(cert.Encoded()) == 0 {
			return ErrNilCertificate
		}
	}
	return nil
}

// findLeaf returns the index of the first certificate that issues no other
// certificate in the list, or -1.
func findLeaf(certs []Certificate) int {
	for i := range certs {
		if !issuesAnother(certs, i) {
			return i
		}
	}
	return -1
}

// issuesAnother reports whether certs[i]'s subject is the issuer of any
// other entry. A self-issued certificate does not count as issuing itself.
func issuesAnother(certs []Certificate, i int) bool {
	subject := certs[i].SubjectName()
	for j, other := range certs {
		if j != i && other.IssuerName() == subject {
			return true
		}
	}
	return false
}

// findIssuer returns the index of the first unplaced certificate whose
// subject equals issuer, or -1.
func findIssuer(certs []Certificate, placed []bool, issuer string) int {
	for i, cert := range certs {
		if !placed[i] && cert.SubjectName() == issuer {
			return i
		}
	}
	return -1
}
