// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import "crypto/x509"

// Handle exposes a parsed certificate through its subject name, issuer name
// and encoded form.
//
// Names are the raw DER encodings of the subject and issuer fields, so two
// names compare equal only when they were encoded identically. This matches
// how issuers are matched when a child certificate copies its parent's
// subject bytes.
//
// A Handle must wrap a non-nil certificate to take part in a walk. The zero
// Handle reports empty names and a nil encoding, which the walk rejects as
// a nil certificate.
type Handle struct{ *x509.Certificate }

// NewHandles wraps each certificate in a Handle, keeping input order.
func NewHandles(certs []*x509.Certificate) []Handle {
	handles := make([]Handle, len(certs))
	for i, cert := range certs {
		handles[i] = Handle{Certificate: cert}
	}
	return handles
}

// SubjectName returns the raw DER subject as an opaque comparable string.
func (h Handle) SubjectName() string {
	if h.Certificate == nil {
		return ""
	}
	return string(h.RawSubject)
}

// IssuerName returns the raw DER issuer as an opaque comparable string.
func (h Handle) IssuerName() string {
	if h.Certificate == nil {
		return ""
	}
	return string(h.RawIssuer)
}

// Encoded returns the DER bytes of the certificate without copying.
func (h Handle) Encoded() []byte {
	if h.Certificate == nil {
		return nil
	}
	return h.Raw
}
