// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/testcerts"
	x509certs "github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/x509/certs"
)

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `
-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`
)

func TestCertificateOperations(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate)
	}{
		{
			name: "Decode PEM Certificate",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, _ *x509.Certificate) {
				cert, err := decoder.Decode([]byte(testcerts.EndEntityPEM))
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, "ee", cert.Subject.CommonName)
			},
		},
		{
			name: "Decode DER Certificate",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				decoded, err := decoder.Decode(cert.Raw)
				require.NoError(t, err, "Decode() error")

				assert.True(t, cert.Equal(decoded), "decoded certificate does not match original")
			},
		},
		{
			name: "Decode PKCS7 Returns First Certificate",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, _ *x509.Certificate) {
				block, _ := pem.Decode([]byte(testcerts.IntermediateBagPKCS7))
				require.NotNil(t, block)

				cert, err := decoder.Decode(block.Bytes)
				require.NoError(t, err, "Decode() error")

				assert.Contains(t, []string{"ca", "ca-intermediate"}, cert.Subject.CommonName)
			},
		},
		{
			name: "Encode PEM",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				block, _ := pem.Decode(decoder.EncodePEM(cert))
				require.NotNil(t, block, "failed to decode encoded PEM")

				assert.Equal(t, "CERTIFICATE", block.Type)
				assert.Equal(t, cert.Raw, block.Bytes)
			},
		},
		{
			name: "Encode Raw PEM",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				assert.Equal(t, decoder.EncodePEM(cert), decoder.EncodeRawPEM(cert.Raw))
			},
		},
		{
			name: "Encode DER",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				assert.Equal(t, cert.Raw, decoder.EncodeDER(cert))
			},
		},
		{
			name: "Encode Multiple DER",
			testFunc: func(t *testing.T, decoder *x509certs.Certificate, cert *x509.Certificate) {
				ca := testcerts.MustParse(testcerts.CAPEM)
				encoded := decoder.EncodeMultipleDER([]*x509.Certificate{cert, ca})

				parsed, err := x509.ParseCertificates(encoded)
				require.NoError(t, err)
				require.Len(t, parsed, 2)
				assert.True(t, parsed[0].Equal(cert))
				assert.True(t, parsed[1].Equal(ca))
			},
		},
	}

	decoder := x509certs.New()
	cert := testcerts.MustParse(testcerts.EndEntityPEM)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, decoder, cert)
		})
	}
}

func TestDecodeCertificate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected error
	}{
		{
			name:     "Invalid PEM Block",
			input:    []byte(invalidPEM),
			expected: x509certs.ErrInvalidBlockType,
		},
		{
			name:     "Invalid Certificate",
			input:    []byte(invalidCERT),
			expected: x509certs.ErrParsePKCS7,
		},
		{
			name:     "Garbage DER",
			input:    []byte("not a certificate"),
			expected: x509certs.ErrParsePKCS7,
		},
	}

	decoder := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decoder.Decode(tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCertificate_IsPEM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{
			name:     "Valid PEM",
			input:    []byte(testcerts.CAPEM),
			expected: true,
		},
		{
			name:     "PKCS7 PEM",
			input:    []byte(testcerts.IntermediateBagPKCS7),
			expected: true,
		},
		{
			name:     "Invalid PEM",
			input:    []byte("not a pem block"),
			expected: false,
		},
		{
			name:     "Empty Input",
			input:    []byte(""),
			expected: false,
		},
		{
			name:     "DER format (binary)",
			input:    []byte{0x30, 0x82, 0x01, 0x23},
			expected: false,
		},
	}

	decoder := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decoder.IsPEM(tt.input))
		})
	}
}

func TestCertificate_DecodeMultiple(t *testing.T) {
	decoder := x509certs.New()
	hierarchy := testcerts.Hierarchy()

	tests := []struct {
		name        string
		input       []byte
		expectCount int
		expectError error
	}{
		{
			name:        "Single PEM Certificate",
			input:       []byte(testcerts.EndEntityPEM),
			expectCount: 1,
		},
		{
			name:        "Multiple PEM Certificates",
			input:       decoder.EncodeMultiplePEM(hierarchy),
			expectCount: 4,
		},
		{
			name:        "Concatenated DER",
			input:       decoder.EncodeMultipleDER(hierarchy[:2]),
			expectCount: 2,
		},
		{
			name:        "Invalid PEM Type",
			input:       []byte(invalidPEM),
			expectError: x509certs.ErrInvalidBlockType,
		},
		{
			name:        "Invalid Certificate Data",
			input:       []byte(invalidCERT),
			expectError: x509certs.ErrParseCertificate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, err := decoder.DecodeMultiple(tt.input)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Len(t, certs, tt.expectCount)
		})
	}
}

func TestCertificate_DecodeBundle(t *testing.T) {
	decoder := x509certs.New()
	hierarchy := testcerts.Hierarchy()

	pkcs7Block, _ := pem.Decode([]byte(testcerts.IntermediateBagPKCS7))
	require.NotNil(t, pkcs7Block)

	tests := []struct {
		name        string
		input       []byte
		expectCNs   []string
		anyOrder    bool
		expectError error
	}{
		{
			name:      "PEM Keeps Input Order",
			input:     decoder.EncodeMultiplePEM([]*x509.Certificate{hierarchy[3], hierarchy[0], hierarchy[2]}),
			expectCNs: []string{"ca", "ee", "ca-intermediate"},
		},
		{
			name:      "Concatenated DER",
			input:     decoder.EncodeMultipleDER(hierarchy),
			expectCNs: []string{"ee", "ca-second-intermediate", "ca-intermediate", "ca"},
		},
		{
			name:      "DER PKCS7",
			input:     pkcs7Block.Bytes,
			expectCNs: []string{"ca-intermediate", "ca"},
			anyOrder:  true,
		},
		{
			name:      "PEM Mixing Certificate And PKCS7 Blocks",
			input:     append([]byte(testcerts.EndEntityPEM), testcerts.IntermediateBagPKCS7...),
			expectCNs: []string{"ee", "ca-intermediate", "ca"},
			anyOrder:  true,
		},
		{
			name:        "Unsupported Block Type",
			input:       []byte(invalidPEM),
			expectError: x509certs.ErrInvalidBlockType,
		},
		{
			name:        "Broken Certificate Block",
			input:       []byte(invalidCERT),
			expectError: x509certs.ErrParseCertificate,
		},
		{
			name:        "Garbage",
			input:       []byte("definitely not a certificate"),
			expectError: x509certs.ErrParsePKCS7,
		},
		{
			name:        "Empty Input",
			input:       []byte{},
			expectError: x509certs.ErrEmptyBundle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, err := decoder.DecodeBundle(tt.input)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, certs)
				return
			}

			require.NoError(t, err)

			cns := make([]string, len(certs))
			for i, cert := range certs {
				cns[i] = cert.Subject.CommonName
			}
			if tt.anyOrder {
				assert.ElementsMatch(t, tt.expectCNs, cns)
				return
			}
			assert.Equal(t, tt.expectCNs, cns)
		})
	}
}

func TestHandle(t *testing.T) {
	hierarchy := testcerts.Hierarchy()
	handles := x509certs.NewHandles(hierarchy)
	require.Len(t, handles, len(hierarchy))

	ee, second, ca := handles[0], handles[1], handles[3]

	assert.Equal(t, string(hierarchy[0].RawSubject), ee.SubjectName())
	assert.Equal(t, second.SubjectName(), ee.IssuerName(), "ee must name its issuer by raw subject")
	assert.Equal(t, ca.SubjectName(), ca.IssuerName(), "ca is self-issued")
	assert.Equal(t, hierarchy[2].Raw, handles[2].Encoded())
}

func TestHandle_Zero(t *testing.T) {
	var h x509certs.Handle

	require.NotPanics(t, func() {
		assert.Empty(t, h.SubjectName())
		assert.Empty(t, h.IssuerName())
		assert.Nil(t, h.Encoded())
	})
}
